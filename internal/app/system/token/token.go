// Package token issues and verifies the signed identity tokens that carry a
// user between requests.
//
// A token is an HS256 JWT holding the user's id and email with a fixed
// lifetime (4 hours unless configured otherwise). The signing secret is
// process-wide configuration loaded once at startup; there is no per-user
// key material and no server-side session behind the token.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultTTL is the token lifetime used when the codec is built
	// without an explicit TTL.
	DefaultTTL = 4 * time.Hour

	issuer = "volunteerhub"
)

// Verification failure classes. Callers treat all three as "not signed in"
// but log them distinctly.
var (
	ErrMalformed        = errors.New("token: malformed")
	ErrInvalidSignature = errors.New("token: invalid signature")
	ErrExpired          = errors.New("token: expired")
)

// Identity is the payload a verified token proves: the user's stable id
// (ObjectID hex) and email. It is never persisted by this service.
type Identity struct {
	UserID string
	Email  string
}

type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Codec signs and verifies identity tokens with a shared secret.
type Codec struct {
	secret []byte
	ttl    time.Duration

	// now is swappable in tests to drive expiry without sleeping.
	now func() time.Time
}

// New builds a Codec. A non-positive ttl falls back to DefaultTTL.
func New(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is empty")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue produces a signed token encoding the identity with an expiration
// ttl from now.
func (c *Codec) Issue(id Identity) (string, error) {
	now := c.now()
	cl := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
		UserID: id.UserID,
		Email:  id.Email,
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, cl)
	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// TTL reports the configured token lifetime. The auth boundary uses it to
// align the cookie Max-Age with the token expiry.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Verify decodes and checks signature and expiration, returning the
// identity the token proves. Failures are classified as ErrMalformed,
// ErrInvalidSignature, or ErrExpired.
func (c *Codec) Verify(raw string) (Identity, error) {
	var cl claims
	_, err := jwt.ParseWithClaims(raw, &cl,
		func(_ *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Identity{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Identity{}, ErrInvalidSignature
		default:
			return Identity{}, ErrMalformed
		}
	}
	return Identity{UserID: cl.UserID, Email: cl.Email}, nil
}
