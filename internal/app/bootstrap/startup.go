// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. HireLens
// has no caches to warm; it only records that the platform is ready.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("hirelens starting",
		zap.String("env", coreCfg.Env),
		zap.Int("analytics_recent_limit", appCfg.AnalyticsRecentLimit))
	return nil
}
