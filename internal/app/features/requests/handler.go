// internal/app/features/requests/handler.go
package requests

import (
	"encoding/json"
	"net/http"

	apierr "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	needstore "github.com/dalemusser/volunteerhub/internal/app/store/needs"
	requeststore "github.com/dalemusser/volunteerhub/internal/app/store/requests"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the volunteer request endpoints. Creating a request
// consumes an opening on the target need, so this handler holds both
// stores.
type Handler struct {
	Needs    *needstore.Store
	Requests *requeststore.Store
	Log      *zap.Logger
	ErrLog   *apierr.ErrorLogger
}

// NewHandler constructs a requests Handler.
func NewHandler(db *mongo.Database, errLog *apierr.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Needs:    needstore.New(db),
		Requests: requeststore.New(db),
		Log:      logger,
		ErrLog:   errLog,
	}
}

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
