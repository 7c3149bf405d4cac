package config

import (
	"time"
)

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the root application configuration.
type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Time     TimeConfig     `yaml:"time"`
	Log      LogConfig      `yaml:"log"`
	Album    AlbumConfig    `yaml:"album"`
}

// StoreConfig selects the album store backend.
type StoreConfig struct {
	Driver string `yaml:"driver" env:"STORE_DRIVER" env-default:"postgres"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// SQLiteConfig holds embedded SQLite settings.
type SQLiteConfig struct {
	Path        string        `yaml:"path"         env:"SQLITE_PATH"         env-default:"albums.db"`
	BusyTimeout time.Duration `yaml:"busy_timeout" env:"SQLITE_BUSY_TIMEOUT" env-default:"5s"`
}

// TimeConfig controls how timestamps are stored and displayed.
type TimeConfig struct {
	StorageTimezone string `yaml:"storage_timezone" env:"TIME_STORAGE_TIMEZONE" env-default:"UTC"`
	StorageLayout   string `yaml:"storage_layout"   env:"TIME_STORAGE_LAYOUT"   env-default:"2006-01-02 15:04:05"`
	// DisplayTimezone empty means the process local zone, read at call time.
	DisplayTimezone string `yaml:"display_timezone" env:"TIME_DISPLAY_TIMEZONE"`

	// StorageLocation is resolved from StorageTimezone during validation.
	StorageLocation *time.Location `yaml:"-" env:"-"`
	// DisplayLocation is resolved from DisplayTimezone during validation.
	// It stays nil when DisplayTimezone is empty.
	DisplayLocation *time.Location `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// AlbumConfig holds album defaults and limits.
type AlbumConfig struct {
	DefaultSortingCol   string `yaml:"default_sorting_col"   env:"ALBUM_DEFAULT_SORTING_COL"   env-default:"taken_at"`
	DefaultSortingOrder string `yaml:"default_sorting_order" env:"ALBUM_DEFAULT_SORTING_ORDER" env-default:"ASC"`
	ExportLimit         int    `yaml:"export_limit"          env:"ALBUM_EXPORT_LIMIT"          env-default:"1000"`
	MaxTags             int    `yaml:"max_tags"              env:"ALBUM_MAX_TAGS"              env-default:"50"`
	PasswordHashCost    int    `yaml:"password_hash_cost"    env:"ALBUM_PASSWORD_HASH_COST"    env-default:"10"`
}
