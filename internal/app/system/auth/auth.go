package auth

import (
	"context"
	"net/http"
	"time"

	apierr "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	"github.com/dalemusser/volunteerhub/internal/app/system/token"
	"go.uber.org/zap"
)

// CookieName is the cookie the client replays on every protected request.
const CookieName = "token"

type ctxKey string

const currentIdentityKey ctxKey = "currentIdentity"

// CurrentIdentity returns the verified identity placed in the request
// context by RequireToken, plus a found flag.
func CurrentIdentity(r *http.Request) (token.Identity, bool) {
	id, ok := r.Context().Value(currentIdentityKey).(token.Identity)
	return id, ok
}

// WithTestIdentity injects an identity into the request context, bypassing
// token verification. Test-only; simulates what RequireToken does.
func WithTestIdentity(r *http.Request, id token.Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentIdentityKey, id))
}

// Authenticator guards protected routes: it extracts the token cookie,
// verifies it, and attaches the resolved identity to the request context.
// It never touches storage.
type Authenticator struct {
	codec  *token.Codec
	secure bool
	log    *zap.Logger
}

// NewAuthenticator builds the gate around a token codec. The secure flag
// controls the cookie policy (Secure + SameSite=None in production so the
// cookie survives cross-site use over HTTPS; Lax over plain http in dev).
func NewAuthenticator(codec *token.Codec, secure bool, logger *zap.Logger) *Authenticator {
	return &Authenticator{codec: codec, secure: secure, log: logger}
}

// RequireToken is middleware for protected routes. A missing cookie or a
// token that fails verification for any reason short-circuits the request
// with 401; on success the identity is available via CurrentIdentity for
// the remainder of the request.
func (a *Authenticator) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(CookieName)
		if err != nil || c.Value == "" {
			apierr.Unauthorized(w)
			return
		}

		id, err := a.codec.Verify(c.Value)
		if err != nil {
			a.log.Debug("token rejected",
				zap.String("path", r.URL.Path),
				zap.Error(err))
			apierr.Unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), currentIdentityKey, id)))
	})
}

// SetCookie writes the signed token as the HTTP-only identity cookie with
// Max-Age matching the token lifetime.
func (a *Authenticator) SetCookie(w http.ResponseWriter, signed string) {
	http.SetCookie(w, a.cookie(signed, a.codec.TTL()))
}

// ClearCookie expires the identity cookie.
func (a *Authenticator) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, a.cookie("", -time.Second))
}

func (a *Authenticator) cookie(value string, maxAge time.Duration) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge / time.Second),
		HttpOnly: true,
		Secure:   a.secure,
	}
	if a.secure {
		c.SameSite = http.SameSiteNoneMode
	} else {
		c.SameSite = http.SameSiteLaxMode
	}
	return c
}
