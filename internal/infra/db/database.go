package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"supplier-marketplace/internal/pkg/config"
	"supplier-marketplace/internal/pkg/errs"
)

const (
	pingTimeout     = 5 * time.Second
	maxConnLifetime = time.Hour
	maxConnIdleTime = 30 * time.Minute
	healthCheck     = time.Minute
)

// Connect opens a pool and pings it once, so an unreachable database fails fast. The caller owns
// Close.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, errs.Wrap(err, "parse database config")
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MaxConnLifetime = maxConnLifetime
	poolCfg.MaxConnIdleTime = maxConnIdleTime
	poolCfg.HealthCheckPeriod = healthCheck

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errs.Wrap(err, "open database pool")
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errs.Wrapf(err, "ping %s:%s/%s", cfg.Host, cfg.Port, cfg.DBName)
	}
	return pool, nil
}
