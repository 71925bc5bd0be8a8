// Package ingest guards the deliberately unauthenticated ingest routes
// (post creation and post status toggling), which serve a trusted
// automation caller rather than an interactive user.
//
// With no key configured the guard is a pass-through, preserving the open
// surface. Configuring ingest_key_hash closes it: callers must present the
// matching key in X-Ingest-Key.
package ingest

import (
	"net/http"

	"github.com/postdeck/postdeck/internal/app/system/httpjson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// KeyHeader carries the shared ingest key.
const KeyHeader = "X-Ingest-Key"

// Guard returns middleware enforcing the configured ingest key. keyHash is
// a bcrypt hash of the shared key; blank disables the check.
func Guard(keyHash string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if keyHash == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(KeyHeader)
			if key == "" {
				httpjson.Error(w, http.StatusUnauthorized, "ingest key required")
				return
			}
			if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
				logger.Info("ingest key rejected", zap.String("path", r.URL.Path))
				httpjson.Error(w, http.StatusUnauthorized, "ingest key rejected")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
