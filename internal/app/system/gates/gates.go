// Package gates provides the access gate applied to protected routes.
//
// A gate runs after the bearer-token middleware has authenticated the
// caller. It loads the caller's directory record and checks it against the
// route's approval policy, failing closed with 403 when the record is
// missing, still pending, or holds a role outside the allowed set.
//
// Gates are applied declaratively in routes.go; handlers never re-derive
// the approval check inline.
package gates

import (
	"context"
	"errors"
	"net/http"

	"github.com/postdeck/postdeck/internal/app/system/auth"
	"github.com/postdeck/postdeck/internal/app/system/authz"
	"github.com/postdeck/postdeck/internal/app/system/httpjson"
	"github.com/postdeck/postdeck/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DirectoryReader is the slice of the user store a gate needs.
type DirectoryReader interface {
	GetBySubject(ctx context.Context, subjectID string) (*models.User, error)
}

// Gate checks directory records against route policies.
type Gate struct {
	dir DirectoryReader
	log *zap.Logger
}

// New creates a Gate backed by the given directory.
func New(dir DirectoryReader, logger *zap.Logger) *Gate {
	return &Gate{dir: dir, log: logger}
}

// Require returns middleware enforcing the given policy. The bearer-token
// middleware must run first; a request with no identity in context gets
// 401 rather than 403 so missing credentials are never reported as a
// policy failure.
func (g *Gate) Require(policy authz.Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := auth.CurrentIdentity(r)
			if !ok {
				httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			record, err := g.dir.GetBySubject(r.Context(), id.Subject)
			if err != nil {
				if errors.Is(err, mongo.ErrNoDocuments) {
					httpjson.Error(w, http.StatusForbidden, "access not approved")
					return
				}
				g.log.Error("gate: directory lookup failed",
					zap.String("subject", id.Subject), zap.Error(err))
				httpjson.Internal(w, err)
				return
			}

			if !policy.Allows(record) {
				httpjson.Error(w, http.StatusForbidden, "access not approved")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
