// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/postdeck/postdeck/internal/app/system/indexes"
	"go.uber.org/zap"
)

// EnsureSchema reconciles the indexes the app depends on. The unique index
// on users.subject_id is load-bearing: duplicate access requests are
// rejected by the storage layer, not by a racy check-then-insert.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return indexes.EnsureAll(ctx, deps.PostdeckMongoDatabase, logger)
}
