// internal/app/features/health/routes.go
package health

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the liveness and health endpoints at the root.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.Live)
	r.Get("/health", h.Serve)
}
