package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lumen-gallery/albums/internal/datetime"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverPostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required for the %s driver", DriverPostgres)
		}
	case DriverSQLite:
		if strings.TrimSpace(c.SQLite.Path) == "" {
			return fmt.Errorf("sqlite.path is required for the %s driver", DriverSQLite)
		}
	default:
		return fmt.Errorf("store.driver must be %q or %q (got %q)", DriverPostgres, DriverSQLite, c.Store.Driver)
	}

	if err := c.Time.validate(); err != nil {
		return fmt.Errorf("time: %w", err)
	}

	if err := c.Album.validate(); err != nil {
		return fmt.Errorf("album: %w", err)
	}

	return nil
}

func (t *TimeConfig) validate() error {
	storage, err := ParseTimezone(t.StorageTimezone)
	if err != nil {
		return fmt.Errorf("storage_timezone: %w", err)
	}
	if storage == nil {
		return fmt.Errorf("storage_timezone is required")
	}
	t.StorageLocation = storage

	display, err := ParseTimezone(t.DisplayTimezone)
	if err != nil {
		return fmt.Errorf("display_timezone: %w", err)
	}
	t.DisplayLocation = display

	if err := datetime.ValidateLayout(t.StorageLayout); err != nil {
		return fmt.Errorf("storage_layout: %w", err)
	}

	return nil
}

func (a *AlbumConfig) validate() error {
	switch strings.ToUpper(a.DefaultSortingOrder) {
	case "ASC", "DESC":
		a.DefaultSortingOrder = strings.ToUpper(a.DefaultSortingOrder)
	default:
		return fmt.Errorf("default_sorting_order must be ASC or DESC (got %q)", a.DefaultSortingOrder)
	}
	if a.ExportLimit <= 0 {
		return fmt.Errorf("export_limit must be > 0 (got %d)", a.ExportLimit)
	}
	if a.MaxTags <= 0 {
		return fmt.Errorf("max_tags must be > 0 (got %d)", a.MaxTags)
	}
	if a.PasswordHashCost < bcrypt.MinCost || a.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("password_hash_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, a.PasswordHashCost)
	}
	return nil
}

// ParseTimezone loads an IANA zone name. An empty name returns a nil
// location, meaning "process local at call time".
func ParseTimezone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}
