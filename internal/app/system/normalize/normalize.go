// Package normalize canonicalizes user-entered values before storage
// queries so lookups behave the same regardless of how the value was typed.
package normalize

import "strings"

// Email lowercases and trims an email address. Emails compare
// case-insensitively everywhere in this app.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}
