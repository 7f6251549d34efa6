// internal/app/features/needs/delete.go
package needs

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	needstore "github.com/dalemusser/volunteerhub/internal/app/store/needs"
	"github.com/dalemusser/volunteerhub/internal/app/system/authz"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
)

// Delete handles DELETE /api/add_volunteer_post/{id}. Requests filed
// against the need are left in place; they keep their need_id and simply
// point at a gone document.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := authz.IdentityCtx(r)
	if !ok {
		apierr.Unauthorized(w)
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id, callerID); err != nil {
		if errors.Is(err, needstore.ErrNotFound) {
			apierr.NotFound(w, "need not found")
			return
		}
		h.ErrLog.Internal(w, r, "needs.delete: remove", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
