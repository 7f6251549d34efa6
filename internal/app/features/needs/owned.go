// internal/app/features/needs/owned.go
package needs

import (
	"context"
	"net/http"

	apierr "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	"github.com/dalemusser/volunteerhub/internal/app/system/authz"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
)

// ListOwned handles GET /api/user_volunteer_post/{id}. The path id is
// required to match the caller's own id; asking for anyone else's needs
// is a 403, not an empty list.
func (h *Handler) ListOwned(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := authz.IdentityCtx(r)
	if !ok {
		apierr.Unauthorized(w)
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if !authz.IsOwner(r, id) {
		apierr.Forbidden(w, "cannot list another user's needs")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	needs, err := h.Store.ListByOwner(ctx, callerID)
	if err != nil {
		h.ErrLog.Internal(w, r, "needs.owned: list", err)
		return
	}
	if needs == nil {
		needs = []models.Need{}
	}
	writeJSON(w, http.StatusOK, needs)
}
