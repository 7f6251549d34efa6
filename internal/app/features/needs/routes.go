// internal/app/features/needs/routes.go
package needs

import "github.com/go-chi/chi/v5"

// MountPublic mounts the routes that work without a token. Paths are
// relative to the /api subrouter.
func (h *Handler) MountPublic(r chi.Router) {
	r.Get("/add_volunteer_post", h.ListUpcoming)
	r.Get("/add_volunteer_post/{id}", h.Get)
}

// MountProtected mounts the routes behind the token middleware.
func (h *Handler) MountProtected(r chi.Router) {
	r.Post("/add_volunteer_post", h.Create)
	r.Put("/add_volunteer_post/{id}", h.Update)
	r.Delete("/add_volunteer_post/{id}", h.Delete)
	r.Get("/user_volunteer_post/{id}", h.ListOwned)
}
