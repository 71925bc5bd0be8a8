// internal/app/features/users/routes.go
package users

import (
	"github.com/go-chi/chi/v5"
	"github.com/postdeck/postdeck/internal/app/system/auth"
	"github.com/postdeck/postdeck/internal/app/system/authz"
	"github.com/postdeck/postdeck/internal/app/system/gates"
)

// Routes returns the subrouter mounted under /api/users. Both routes need
// only an authenticated identity; a directory record is not required (the
// access request is how a record comes to exist).
func Routes(h *Handler, verifier *auth.Verifier) chi.Router {
	r := chi.NewRouter()
	r.Use(verifier.Middleware)
	r.Post("/", h.RequestAccess)
	r.Get("/me", h.Me)
	return r
}

// AccessRequestRoutes returns the subrouter mounted under
// /api/access-requests. Admin only.
func AccessRequestRoutes(h *Handler, verifier *auth.Verifier, gate *gates.Gate) chi.Router {
	r := chi.NewRouter()
	r.Use(verifier.Middleware)
	r.Use(gate.Require(authz.AdminOnly))
	r.Get("/", h.ListPending)
	r.Patch("/{id}/approve", h.Approve)
	return r
}
