// internal/app/features/requests/delete.go
package requests

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	requeststore "github.com/dalemusser/volunteerhub/internal/app/store/requests"
	"github.com/dalemusser/volunteerhub/internal/app/system/authz"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
)

// Delete handles DELETE /api/request_volunteer/{id}. Cancelling a
// request does not restore the opening it consumed; the organizer may
// have planned around it already.
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

	if err := h.Requests.Delete(ctx, id, callerID); err != nil {
		if errors.Is(err, requeststore.ErrNotFound) {
			apierr.NotFound(w, "request not found")
			return
		}
		h.ErrLog.Internal(w, r, "requests.delete: remove", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
