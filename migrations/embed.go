// Package migrations embeds the goose migrations of every supported store.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// FS returns the migration directory for a goose dialect.
func FS(dialect goose.Dialect) (fs.FS, error) {
	var dir string
	switch dialect {
	case goose.DialectPostgres:
		dir = "postgres"
	case goose.DialectSQLite3:
		dir = "sqlite"
	default:
		return nil, fmt.Errorf("migrations: unsupported dialect %q", dialect)
	}
	return fs.Sub(files, dir)
}

// NewProvider returns a goose provider over the embedded migrations.
// goose.NewProvider handles $$-delimited bodies, unlike the legacy goose.Up.
func NewProvider(db *sql.DB, dialect goose.Dialect) (*goose.Provider, error) {
	fsys, err := FS(dialect)
	if err != nil {
		return nil, err
	}
	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("migrations: new provider: %w", err)
	}
	return provider, nil
}

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB, dialect goose.Dialect) ([]*goose.MigrationResult, error) {
	provider, err := NewProvider(db, dialect)
	if err != nil {
		return nil, err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return results, fmt.Errorf("migrations: up: %w", err)
	}
	return results, nil
}

// Status reports every known migration and whether it has been applied.
func Status(ctx context.Context, db *sql.DB, dialect goose.Dialect) ([]*goose.MigrationStatus, error) {
	provider, err := NewProvider(db, dialect)
	if err != nil {
		return nil, err
	}
	status, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrations: status: %w", err)
	}
	return status, nil
}
