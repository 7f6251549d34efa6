// internal/app/features/requests/owned.go
package requests

import (
	"context"
	"net/http"

	apierr "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	"github.com/dalemusser/volunteerhub/internal/app/system/authz"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
)

// ListOwned handles GET /api/user_request_volunteer/{id}. Same path
// guard as the needs listing: the id must be the caller's own.
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
		apierr.Forbidden(w, "cannot list another user's requests")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	reqs, err := h.Requests.ListByOwner(ctx, callerID)
	if err != nil {
		h.ErrLog.Internal(w, r, "requests.owned: list", err)
		return
	}
	if reqs == nil {
		reqs = []models.Request{}
	}
	writeJSON(w, http.StatusOK, reqs)
}
