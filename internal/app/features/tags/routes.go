// internal/app/features/tags/routes.go
package tags

import (
	"github.com/go-chi/chi/v5"
	"github.com/postdeck/postdeck/internal/app/system/auth"
	"github.com/postdeck/postdeck/internal/app/system/authz"
	"github.com/postdeck/postdeck/internal/app/system/gates"
)

// Routes returns the subrouter mounted under /api/tags. Admin only.
func Routes(h *Handler, verifier *auth.Verifier, gate *gates.Gate) chi.Router {
	r := chi.NewRouter()
	r.Use(verifier.Middleware)
	r.Use(gate.Require(authz.AdminOnly))
	r.Post("/", h.Create)
	return r
}
