// internal/app/features/requests/create.go
package requests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	apierr "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	needstore "github.com/dalemusser/volunteerhub/internal/app/store/needs"
	"github.com/dalemusser/volunteerhub/internal/app/system/authz"
	"github.com/dalemusser/volunteerhub/internal/app/system/limits"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createPayload struct {
	NeedID         string `json:"need_id"`
	VolunteerName  string `json:"volunteer_name"`
	VolunteerEmail string `json:"volunteer_email"`
	Suggestion     string `json:"suggestion"`
}

// Create handles POST /api/request_volunteer. The conditional decrement
// on the need is the admission guard: it either reserves an opening or
// tells us the need is gone or full, all in one query. Only after a
// successful reservation is the request document inserted; a failed
// insert gives the opening back.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := authz.IdentityCtx(r)
	if !ok {
		apierr.Unauthorized(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBodySize)

	var body createPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		apierr.InvalidArgument(w, "malformed JSON body")
		return
	}
	needID, err := primitive.ObjectIDFromHex(strings.TrimSpace(body.NeedID))
	if err != nil {
		apierr.InvalidArgument(w, "malformed need_id")
		return
	}
	if strings.TrimSpace(body.VolunteerName) == "" {
		apierr.InvalidArgument(w, "volunteer_name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Needs.DecrementOpenings(ctx, needID); err != nil {
		switch {
		case errors.Is(err, needstore.ErrNotFound):
			apierr.NotFound(w, "need not found")
		case errors.Is(err, needstore.ErrExhausted):
			apierr.Exhausted(w, "need has no openings remaining")
		default:
			h.ErrLog.Internal(w, r, "requests.create: reserve opening", err)
		}
		return
	}

	created, err := h.Requests.Create(ctx, models.Request{
		NeedID:         needID,
		VolunteerName:  body.VolunteerName,
		VolunteerEmail: body.VolunteerEmail,
		Suggestion:     body.Suggestion,
		OwnerID:        callerID,
	})
	if err != nil {
		// Give the reserved opening back. Best effort: if this also
		// fails the counter stays low, which is the safe direction.
		if incErr := h.Needs.IncrementOpenings(ctx, needID); incErr != nil {
			h.Log.Error("requests.create: compensating increment failed",
				zap.String("need_id", needID.Hex()),
				zap.Error(incErr))
		}
		h.ErrLog.Internal(w, r, "requests.create: insert", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": created.ID.Hex()})
}
