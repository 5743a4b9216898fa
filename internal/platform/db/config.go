package db

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	// DriverPostgres selects PostgreSQL through pgx.
	DriverPostgres = "postgres"
	// DriverSQLite selects a local SQLite file.
	DriverSQLite = "sqlite"
)

// Config holds the store connection settings.
type Config struct {
	Driver   string `env:"DB_DRIVER" envDefault:"postgres"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// InstanceName is a Cloud SQL instance connection name. When set, the
	// unix socket under /cloudsql is used instead of Host/Port.
	InstanceName string `env:"INSTANCE_CONNECTION_NAME"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"./onboarding.db"`

	RunMigrations  bool          `env:"RUN_MIGRATIONS"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"60s"`
}

// LoadConfigFromEnv reads the store configuration from environment variables.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse db env: %w", err)
	}
	switch cfg.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
	return cfg, nil
}
