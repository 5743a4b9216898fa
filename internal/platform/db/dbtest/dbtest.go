// Package dbtest opens migrated SQLite databases for repository tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"onboarding_backend/internal/platform/db"
)

// New returns a GORM handle on a fresh SQLite file in t.TempDir with every
// migration applied. The connection is closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	cfg := db.GormConfig()
	cfg.Logger = logger.Default.LogMode(logger.Silent)

	gdb, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), cfg)
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, db.Migrate(context.Background(), gdb, db.DriverSQLite), "failed to migrate test database")

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}
