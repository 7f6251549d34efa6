// internal/app/features/auth/userdata.go
package auth

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	userstore "github.com/dalemusser/volunteerhub/internal/app/store/users"
	"github.com/dalemusser/volunteerhub/internal/app/system/authz"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
)

// UserData handles GET /api/user_data: the caller's own user document,
// looked up fresh so a deleted account stops resolving even while its
// token is still valid.
func (h *Handler) UserData(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := authz.IdentityCtx(r)
	if !ok {
		apierr.Unauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			apierr.NotFound(w, "user not found")
			return
		}
		h.ErrLog.Internal(w, r, "auth.userdata: load user", err)
		return
	}

	writeJSON(w, http.StatusOK, u)
}
