// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	healthfeature "github.com/postdeck/postdeck/internal/app/features/health"
	homefeature "github.com/postdeck/postdeck/internal/app/features/home"
	postsfeature "github.com/postdeck/postdeck/internal/app/features/posts"
	tagsfeature "github.com/postdeck/postdeck/internal/app/features/tags"
	usersfeature "github.com/postdeck/postdeck/internal/app/features/users"
	poststore "github.com/postdeck/postdeck/internal/app/store/posts"
	tagstore "github.com/postdeck/postdeck/internal/app/store/tags"
	userstore "github.com/postdeck/postdeck/internal/app/store/users"
	"github.com/postdeck/postdeck/internal/app/system/auth"
	"github.com/postdeck/postdeck/internal/app/system/gates"
	"github.com/postdeck/postdeck/internal/app/system/ingest"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// Every protected route is gated declaratively here: the bearer-token
// verifier authenticates the caller, and the gate checks the caller's
// directory record against the route's allowed-role set. Handlers never
// re-derive those checks inline.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	verifier := auth.NewVerifier([]byte(appCfg.TokenHMACSecret), logger)

	users := userstore.New(deps.PostdeckMongoDatabase)
	posts := poststore.New(deps.PostdeckMongoDatabase)
	tags := tagstore.New(deps.PostdeckMongoDatabase)

	gate := gates.New(users, logger)

	// Guard for the deliberately unauthenticated ingest routes. Open when
	// no key hash is configured, key-checked otherwise.
	ingestGuard := ingest.Guard(appCfg.IngestKeyHash, logger)

	r := chi.NewRouter()

	// Liveness root and health check for load balancers and orchestrators.
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	healthHandler := healthfeature.NewHandler(deps.PostdeckMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// User directory: access requests and the caller's own snapshot.
	usersHandler := usersfeature.NewHandler(users, logger)
	r.Mount("/api/users", usersfeature.Routes(usersHandler, verifier))
	r.Mount("/api/access-requests", usersfeature.AccessRequestRoutes(usersHandler, verifier, gate))

	// Scheduled content.
	postsHandler := postsfeature.NewHandler(posts, appCfg.PostListLimit, logger)
	r.Mount("/api/posts", postsfeature.Routes(postsHandler, verifier, gate, ingestGuard))

	// Account-scoped labels.
	tagsHandler := tagsfeature.NewHandler(tags, logger)
	r.Mount("/api/tags", tagsfeature.Routes(tagsHandler, verifier, gate))

	return r, nil
}
