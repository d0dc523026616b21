package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/fx"

	"supplier-marketplace/internal/infra/db"
	"supplier-marketplace/internal/pkg/config"
	"supplier-marketplace/internal/pkg/errs"
	"supplier-marketplace/migrations"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
	fx.Invoke(RunMigrations),
)

// NewDB connects during construction and closes the pool when the app stops.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		pool.Close()
		slog.Info("database pool closed")
	}))
	return pool, nil
}

// RunMigrations applies the embedded schema when MIGRATE_ON_START is set.
func RunMigrations(cfg config.Config, pool *pgxpool.Pool) error {
	if !cfg.Server.MigrateOnStart {
		return nil
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	if err := migrations.Up(sqlDB); err != nil {
		return errs.Wrap(err, "apply migrations")
	}
	slog.Info("database migrations applied", "database", cfg.DB.DBName)
	return nil
}
