// Package db opens the relational store through GORM and applies the schema migrations.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// retryInterval is the pause between connection attempts.
var retryInterval = 3 * time.Second

// Opener opens a GORM connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN builds the connection string for cfg.Driver.
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverSQLite {
		return cfg.SQLitePath + "?_foreign_keys=on"
	}

	host, port := cfg.Host, cfg.Port
	if cfg.InstanceName != "" {
		host = "/cloudsql/" + cfg.InstanceName
		port = "5432"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		host, cfg.User, cfg.Password, cfg.Name, port, cfg.SSLMode)
}

// GormConfig is shared by the server, the management commands and the tests.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}
}

// NewOpener returns an Opener for the configured driver.
func NewOpener(cfg Config) Opener {
	return func(dsn string) (*gorm.DB, error) {
		if cfg.Driver == DriverSQLite {
			return gorm.Open(sqlite.Open(dsn), GormConfig())
		}
		return gorm.Open(postgres.Open(dsn), GormConfig())
	}
}

// ConnectWithRetry calls open until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

// Open connects to the store described by cfg and, when RUN_MIGRATIONS is set,
// brings the schema up to date.
func Open(ctx context.Context, cfg Config) (*gorm.DB, error) {
	db, err := ConnectWithRetry(BuildDSN(cfg), cfg.ConnectTimeout, NewOpener(cfg))
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := Migrate(ctx, db, cfg.Driver); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Ping checks that the underlying connection pool can reach the store.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
