// internal/app/features/needs/list.go
package needs

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	needstore "github.com/dalemusser/volunteerhub/internal/app/store/needs"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
)

// upcomingLimit caps the public listing. The landing page shows the six
// needs closing soonest.
const upcomingLimit = 6

// ListUpcoming handles GET /api/add_volunteer_post (public): up to six
// needs in ascending deadline order.
func (h *Handler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	needs, err := h.Store.ListUpcoming(ctx, upcomingLimit)
	if err != nil {
		h.ErrLog.Internal(w, r, "needs.list: upcoming", err)
		return
	}
	if needs == nil {
		needs = []models.Need{}
	}
	writeJSON(w, http.StatusOK, needs)
}

// Get handles GET /api/add_volunteer_post/{id} (public): a single need
// for the detail page.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	need, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, needstore.ErrNotFound) {
			apierr.NotFound(w, "need not found")
			return
		}
		h.ErrLog.Internal(w, r, "needs.get: load", err)
		return
	}
	writeJSON(w, http.StatusOK, need)
}
