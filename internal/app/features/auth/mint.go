// internal/app/features/auth/mint.go
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	apierr "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	userstore "github.com/dalemusser/volunteerhub/internal/app/store/users"
	"github.com/dalemusser/volunteerhub/internal/app/system/limits"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/volunteerhub/internal/app/system/token"
)

type mintRequest struct {
	Email string `json:"email"`
}

type mintResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Mint handles POST /jwt. The email must belong to an already provisioned
// user; there is no signup path here. On success the signed token is set
// as an HTTP-only cookie and echoed identity fields are returned.
func (h *Handler) Mint(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBodySize)

	var body mintRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		apierr.InvalidArgument(w, "malformed JSON body")
		return
	}
	email := strings.TrimSpace(body.Email)
	if email == "" {
		apierr.InvalidArgument(w, "email is required")
		return
	}

	if ok, reason := h.Limit.Check(r, email); !ok {
		apierr.TooManyRequests(w, reason)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			apierr.NotFound(w, "user not found")
			return
		}
		h.ErrLog.Internal(w, r, "auth.mint: lookup user", err)
		return
	}

	signed, err := h.Codec.Issue(token.Identity{UserID: u.ID.Hex(), Email: u.Email})
	if err != nil {
		h.ErrLog.Internal(w, r, "auth.mint: sign token", err)
		return
	}

	h.Limit.ResetEmail(u.Email)
	h.Auth.SetCookie(w, signed)
	writeJSON(w, http.StatusOK, mintResponse{UserID: u.ID.Hex(), Email: u.Email})
}
