package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumen-gallery/albums/internal/config"
)

// NewPool creates a PostgreSQL connection pool configured from DatabaseConfig.
// Every connection runs with its session timezone set to storage, so that
// server-side now() and casts agree with the naive values the application
// writes. The pool is pinged before it is returned.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, storage *time.Location) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	if storage != nil {
		poolCfg.ConnConfig.RuntimeParams["timezone"] = storage.String()
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// SessionTimezone reports the timezone the server uses for the current session.
func SessionTimezone(ctx context.Context, q Querier) (string, error) {
	var tz string
	if err := q.QueryRow(ctx, "SHOW timezone").Scan(&tz); err != nil {
		return "", fmt.Errorf("show timezone: %w", err)
	}
	return tz, nil
}
