// internal/app/features/auth/handler.go
package auth

import (
	"encoding/json"
	"net/http"

	apierr "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	userstore "github.com/dalemusser/volunteerhub/internal/app/store/users"
	sysauth "github.com/dalemusser/volunteerhub/internal/app/system/auth"
	"github.com/dalemusser/volunteerhub/internal/app/system/ratelimit"
	"github.com/dalemusser/volunteerhub/internal/app/system/token"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns identity minting and the current-user endpoint.
type Handler struct {
	Users  *userstore.Store
	Codec  *token.Codec
	Auth   *sysauth.Authenticator
	Limit  *ratelimit.MintLimiter
	Log    *zap.Logger
	ErrLog *apierr.ErrorLogger
}

// NewHandler constructs an auth Handler.
func NewHandler(db *mongo.Database, codec *token.Codec, authn *sysauth.Authenticator, errLog *apierr.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  userstore.New(db),
		Codec:  codec,
		Auth:   authn,
		Limit:  ratelimit.NewMintLimiter(),
		Log:    logger,
		ErrLog: errLog,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
