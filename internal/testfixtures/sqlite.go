// Package testfixtures provides a migrated SQLite database for package tests.
package testfixtures

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Angger-Raka/aplikasi-absensi/config"
	"github.com/Angger-Raka/aplikasi-absensi/pkg/database"
)

// NewSQLiteDB opens a fresh temp-file database with the schema applied.
// The database is closed when the test finishes.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "absensi_test.db"),
	}
	logger := zap.NewNop()

	db, err := database.NewDB(cfg, "warn", logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.RunMigrations(db, config.DriverSQLite, logger); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
