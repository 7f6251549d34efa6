// internal/app/features/needs/create.go
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
	"github.com/dalemusser/volunteerhub/internal/domain/models"
)

type needPayload struct {
	Thumbnail      string    `json:"thumbnail"`
	PostTitle      string    `json:"post_title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Location       string    `json:"location"`
	OpeningsNeeded int       `json:"volunteers_needed"`
	Deadline       time.Time `json:"deadline"`
	OrganizerName  string    `json:"organizer_name"`
	OrganizerEmail string    `json:"organizer_email"`
}

// Create handles POST /api/add_volunteer_post. The new need is owned by
// the caller; ownership comes from the verified token, never the body.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := authz.IdentityCtx(r)
	if !ok {
		apierr.Unauthorized(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBodySize)

	var body needPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		apierr.InvalidArgument(w, "malformed JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, models.Need{
		Thumbnail:      body.Thumbnail,
		PostTitle:      body.PostTitle,
		Description:    body.Description,
		Category:       body.Category,
		Location:       body.Location,
		OpeningsNeeded: body.OpeningsNeeded,
		Deadline:       body.Deadline,
		OrganizerName:  body.OrganizerName,
		OrganizerEmail: body.OrganizerEmail,
		OwnerID:        callerID,
	})
	if err != nil {
		if errors.Is(err, needstore.ErrInvalidOpenings) || errors.Is(err, needstore.ErrTitleRequired) {
			apierr.InvalidArgument(w, err.Error())
			return
		}
		h.ErrLog.Internal(w, r, "needs.create: insert", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": created.ID.Hex()})
}
