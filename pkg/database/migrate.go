package database

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Angger-Raka/aplikasi-absensi/config"
)

//go:embed migrations/*/*.sql
var migrationsFS embed.FS

// RunMigrations brings the schema up to date for the given driver.
// PostgreSQL and MySQL go through golang-migrate; the SQLite schema is
// idempotent DDL applied directly.
func RunMigrations(db *gorm.DB, driver string, logger *zap.Logger) error {
	switch driver {
	case config.DriverPostgres, config.DriverMySQL:
		return runVersioned(db, driver, logger)
	case config.DriverSQLite:
		return runSQLite(db, logger)
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}
}

func runVersioned(db *gorm.DB, driver string, logger *zap.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	var dbDriver database.Driver
	switch driver {
	case config.DriverPostgres:
		dbDriver, err = migratepg.WithInstance(sqlDB, &migratepg.Config{})
	case config.DriverMySQL:
		dbDriver, err = migratemysql.WithInstance(sqlDB, &migratemysql.Config{})
	}
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, dbDriver)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("database migration is dirty", zap.Uint("version", version))
	} else {
		logger.Info("database migrations applied", zap.Uint("version", version))
	}

	return nil
}

func runSQLite(db *gorm.DB, logger *zap.Logger) error {
	dir := "migrations/" + config.DriverSQLite
	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	var files []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		content, err := migrationsFS.ReadFile(path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		for _, stmt := range splitStatements(string(content)) {
			if err := db.Exec(stmt).Error; err != nil {
				return fmt.Errorf("failed to apply migration %s: %w", name, err)
			}
		}
	}

	logger.Info("database schema ensured", zap.String("driver", config.DriverSQLite), zap.Int("files", len(files)))
	return nil
}

// splitStatements splits a DDL script on ';'. Migration files must not
// contain semicolons inside literals.
func splitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if s := strings.TrimSpace(part); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
