// internal/app/features/requests/routes.go
package requests

import "github.com/go-chi/chi/v5"

// MountProtected mounts all request routes behind the token middleware.
// Paths are relative to the /api subrouter; there is no public surface.
func (h *Handler) MountProtected(r chi.Router) {
	r.Post("/request_volunteer", h.Create)
	r.Delete("/request_volunteer/{id}", h.Delete)
	r.Get("/user_request_volunteer/{id}", h.ListOwned)
}
