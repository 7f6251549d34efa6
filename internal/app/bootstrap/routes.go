// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authfeature "github.com/dalemusser/volunteerhub/internal/app/features/auth"
	errorsfeature "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/volunteerhub/internal/app/features/health"
	needsfeature "github.com/dalemusser/volunteerhub/internal/app/features/needs"
	requestsfeature "github.com/dalemusser/volunteerhub/internal/app/features/requests"
	sysauth "github.com/dalemusser/volunteerhub/internal/app/system/auth"
	"github.com/dalemusser/volunteerhub/internal/app/system/token"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// The surface splits three ways:
//   - root: liveness and health probes, token minting
//   - /api public: need listing and detail reads
//   - /api protected: everything scoped to the caller's identity, behind
//     the token middleware
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	codec, err := token.New(appCfg.TokenSecret, appCfg.TokenTTL)
	if err != nil {
		logger.Error("token codec init failed", zap.Error(err))
		return nil, err
	}

	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	authn := sysauth.NewAuthenticator(codec, secure, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	authHandler := authfeature.NewHandler(deps.MongoDatabase, codec, authn, errLog, logger)
	needsHandler := needsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	requestsHandler := requestsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)

	r := chi.NewRouter()

	// Probes for load balancers and orchestrators.
	healthHandler.MountRoutes(r)

	// Token minting stays outside /api; it is how a caller gets in.
	authHandler.MountPublic(r)

	r.Route("/api", func(api chi.Router) {
		needsHandler.MountPublic(api)

		api.Group(func(protected chi.Router) {
			protected.Use(authn.RequireToken)
			authHandler.MountProtected(protected)
			needsHandler.MountProtected(protected)
			requestsHandler.MountProtected(protected)
		})
	})

	return r, nil
}
