// Package sqlite opens the embedded SQLite album store and provides the
// transaction plumbing shared by its repositories.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/lumen-gallery/albums/internal/config"
	"github.com/lumen-gallery/albums/migrations"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Open opens the database file named in cfg with foreign keys enforced and
// WAL journaling, and pings it. SQLite allows a single writer, so the pool is
// capped at one connection.
func Open(ctx context.Context, cfg config.SQLiteConfig) (*sql.DB, error) {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", cfg.BusyTimeout.Milliseconds()))

	db, err := sql.Open(DriverName, cfg.Path+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", cfg.Path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", cfg.Path, err)
	}

	return db, nil
}

// Migrate applies the embedded SQLite migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := migrations.Up(ctx, db, goose.DialectSQLite3)
	return err
}
