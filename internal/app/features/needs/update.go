// internal/app/features/needs/update.go
package needs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	apierr "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	needstore "github.com/dalemusser/volunteerhub/internal/app/store/needs"
	"github.com/dalemusser/volunteerhub/internal/app/system/authz"
	"github.com/dalemusser/volunteerhub/internal/app/system/limits"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
)

// needPatchPayload distinguishes absent fields (nil) from zero values,
// so a PUT only touches what the body names.
type needPatchPayload struct {
	Thumbnail      *string    `json:"thumbnail"`
	PostTitle      *string    `json:"post_title"`
	Description    *string    `json:"description"`
	Category       *string    `json:"category"`
	Location       *string    `json:"location"`
	OpeningsNeeded *int       `json:"volunteers_needed"`
	Deadline       *time.Time `json:"deadline"`
	OrganizerName  *string    `json:"organizer_name"`
	OrganizerEmail *string    `json:"organizer_email"`
}

// Update handles PUT /api/add_volunteer_post/{id}. A non-owner gets the
// same 404 as a missing id; the ownership filter sits in the store query.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := authz.IdentityCtx(r)
	if !ok {
		apierr.Unauthorized(w)
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBodySize)

	var body needPatchPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		apierr.InvalidArgument(w, "malformed JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.Store.Update(ctx, id, callerID, needstore.Patch{
		Thumbnail:      body.Thumbnail,
		PostTitle:      body.PostTitle,
		Description:    body.Description,
		Category:       body.Category,
		Location:       body.Location,
		OpeningsNeeded: body.OpeningsNeeded,
		Deadline:       body.Deadline,
		OrganizerName:  body.OrganizerName,
		OrganizerEmail: body.OrganizerEmail,
	})
	if err != nil {
		switch {
		case errors.Is(err, needstore.ErrNotFound):
			apierr.NotFound(w, "need not found")
		case errors.Is(err, needstore.ErrInvalidOpenings), errors.Is(err, needstore.ErrTitleRequired):
			apierr.InvalidArgument(w, err.Error())
		default:
			h.ErrLog.Internal(w, r, "needs.update: apply patch", err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
