package bootstrap

import (
	"log/slog"

	"go.uber.org/fx"

	"supplier-marketplace/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logServices),
)

// logServices records which route groups this process mounts and the business settings
// shared by all of them.
func logServices(cfg config.Config) {
	slog.Info("service configuration",
		"services", cfg.Server.Services,
		"region_inn_prefix", cfg.Region.INNPrefix,
		"registry_new_window", cfg.Region.NewCompaniesSince.String(),
		"events_enabled", cfg.AMQP.Enabled())
}
