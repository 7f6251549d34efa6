package token

import "time"

// SetNowForTest overrides the codec clock so tests can cross the expiry
// boundary without sleeping.
func (c *Codec) SetNowForTest(now func() time.Time) {
	c.now = now
}
