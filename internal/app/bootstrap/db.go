// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/campushub/internal/app/system/indexes"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnsureSchema reconciles the MongoDB indexes the service queries depend on.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return indexes.EnsureAll(ctx, deps.CampusHubMongoDatabase)
}
