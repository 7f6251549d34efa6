// internal/app/features/auth/routes.go
package auth

import "github.com/go-chi/chi/v5"

// MountPublic mounts the routes that work without a token.
func (h *Handler) MountPublic(r chi.Router) {
	r.Post("/jwt", h.Mint)
}

// MountProtected mounts the routes behind the token middleware. These
// paths are relative to the /api subrouter.
func (h *Handler) MountProtected(r chi.Router) {
	r.Get("/user_data", h.UserData)
}
