// internal/app/features/posts/routes.go
package posts

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/postdeck/postdeck/internal/app/system/auth"
	"github.com/postdeck/postdeck/internal/app/system/authz"
	"github.com/postdeck/postdeck/internal/app/system/gates"
)

// Routes returns the subrouter mounted under /api/posts.
//
// Create and the status toggle sit behind the ingest guard instead of
// bearer auth: they serve a trusted automation caller and stay open unless
// an ingest key is configured. Listing needs any approved caller; content
// edits need admin or creator.
func Routes(h *Handler, verifier *auth.Verifier, gate *gates.Gate, ingestGuard func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.With(ingestGuard).Post("/", h.Create)
	r.With(ingestGuard).Patch("/{id}/status", h.SetStatus)

	r.With(verifier.Middleware, gate.Require(authz.Approved)).Get("/", h.List)
	r.With(verifier.Middleware, gate.Require(authz.AdminOrCreator)).Patch("/{id}", h.Update)

	return r
}
