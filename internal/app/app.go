package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/lumen-gallery/albums/internal/adapter/postgres"
	pgalbum "github.com/lumen-gallery/albums/internal/adapter/postgres/album"
	"github.com/lumen-gallery/albums/internal/adapter/sqlite"
	sqlitealbum "github.com/lumen-gallery/albums/internal/adapter/sqlite/album"
	"github.com/lumen-gallery/albums/internal/config"
	"github.com/lumen-gallery/albums/internal/datetime"
	"github.com/lumen-gallery/albums/internal/service/album"
	"github.com/lumen-gallery/albums/migrations"
)

// App holds the components wired for the configured store.
type App struct {
	Config     *config.Config
	Log        *slog.Logger
	Normalizer *datetime.Normalizer
	Albums     *album.Service

	db      *sql.DB
	dialect goose.Dialect
	closers []func()
}

// NewNormalizer builds the timestamp normalizer from the time settings.
// An empty display timezone follows the process local zone.
func NewNormalizer(cfg config.TimeConfig) (*datetime.Normalizer, error) {
	var display datetime.ZoneSource = datetime.LocalZone
	if cfg.DisplayLocation != nil {
		display = datetime.FixedZone(cfg.DisplayLocation)
	}

	n, err := datetime.New(
		datetime.WithStorageZone(cfg.StorageLocation),
		datetime.WithStorageLayout(cfg.StorageLayout),
		datetime.WithDisplayZone(display),
	)
	if err != nil {
		return nil, fmt.Errorf("build normalizer: %w", err)
	}
	return n, nil
}

// New connects to the configured store and wires the album service on top
// of it. Close releases the connections.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	n, err := NewNormalizer(cfg.Time)
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg, Log: log, Normalizer: n}

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database, cfg.Time.StorageLocation)
		if err != nil {
			return nil, err
		}
		a.db = stdlib.OpenDBFromPool(pool)
		a.dialect = goose.DialectPostgres
		a.closers = append(a.closers, pool.Close, func() { a.db.Close() })

		repo := pgalbum.New(pool, n)
		a.Albums = album.NewService(log, repo, postgres.NewTxManager(pool), n, cfg.Album)

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite)
		if err != nil {
			return nil, err
		}
		a.db = db
		a.dialect = goose.DialectSQLite3
		a.closers = append(a.closers, func() { db.Close() })

		repo := sqlitealbum.New(db, n)
		a.Albums = album.NewService(log, repo, sqlite.NewTxManager(db), n, cfg.Album)

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}

	log.InfoContext(ctx, "store connected",
		slog.String("driver", cfg.Store.Driver),
		slog.String("storage_timezone", n.StorageZone().String()),
		slog.String("version", BuildVersion()),
	)

	return a, nil
}

// Migrate applies pending migrations for the configured store.
func (a *App) Migrate(ctx context.Context) ([]*goose.MigrationResult, error) {
	results, err := migrations.Up(ctx, a.db, a.dialect)
	for _, r := range results {
		a.Log.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}
	return results, err
}

// MigrationStatus reports applied and pending migrations.
func (a *App) MigrationStatus(ctx context.Context) ([]*goose.MigrationStatus, error) {
	return migrations.Status(ctx, a.db, a.dialect)
}

// Close releases store connections in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
