// internal/app/features/needs/handler.go
package needs

import (
	"encoding/json"
	"net/http"

	apierr "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	needstore "github.com/dalemusser/volunteerhub/internal/app/store/needs"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the volunteer need endpoints: the public listing and
// detail views, plus ownership-scoped create, update, delete, and the
// per-user listing.
type Handler struct {
	Store  *needstore.Store
	Log    *zap.Logger
	ErrLog *apierr.ErrorLogger
}

// NewHandler constructs a needs Handler.
func NewHandler(db *mongo.Database, errLog *apierr.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  needstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}

// pathID parses the {id} URL parameter. A malformed hex string is
// reported as a 400 here, never passed through as a silent non-match.
func pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierr.InvalidArgument(w, "malformed id")
		return primitive.NilObjectID, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
