// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	teacherstore "github.com/dalemusser/campushub/internal/app/store/teachers"
	"github.com/dalemusser/campushub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// The only work needed here is teacher directory seeding: write operations
// are authorized by directory membership, so a fresh deployment with an
// empty directory could never accept a create/update/delete.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.SeedTeacherUsername == "" {
		return nil
	}
	return ensureSeedTeacher(ctx, deps, appCfg.SeedTeacherUsername, appCfg.SeedTeacherName, logger)
}

// ensureSeedTeacher upserts the configured teacher into the directory.
// Idempotent: re-running against an existing entry refreshes the display
// name and nothing else.
func ensureSeedTeacher(ctx context.Context, deps DBDeps, username, displayName string, logger *zap.Logger) error {
	if displayName == "" {
		displayName = username
	}

	store := teacherstore.New(deps.CampusHubMongoDatabase)
	if err := store.Upsert(ctx, models.Teacher{Username: username, DisplayName: displayName}); err != nil {
		logger.Error("failed to seed teacher directory",
			zap.String("username", username), zap.Error(err))
		return err
	}

	logger.Info("seeded teacher directory entry", zap.String("username", username))
	return nil
}
