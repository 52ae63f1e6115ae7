package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load should succeed with defaults: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("expected sqlite driver, got %s", cfg.Database.Driver)
	}
	if cfg.Import.LockTTL != 5*time.Minute {
		t.Errorf("expected lock ttl 5m, got %s", cfg.Import.LockTTL)
	}
	if cfg.Redis.Enabled {
		t.Error("redis should be disabled by default")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ABSENSI_SERVER_PORT", "9090")
	t.Setenv("ABSENSI_DB_PATH", "other.db")
	t.Setenv("ABSENSI_IMPORT_LOCK_TTL", "30s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load should succeed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Database.Path != "other.db" {
		t.Errorf("expected path other.db, got %s", cfg.Database.Path)
	}
	if cfg.Import.LockTTL != 30*time.Second {
		t.Errorf("expected lock ttl 30s, got %s", cfg.Import.LockTTL)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "db:\n  driver: postgres\n  host: db.local\n  name: absensi_prod\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should succeed: %v", err)
	}
	if cfg.Database.Driver != DriverPostgres || cfg.Database.Host != "db.local" {
		t.Errorf("unexpected db config: %+v", cfg.Database)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Log.Level)
	}
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("ABSENSI_DB_DRIVER", "oracle")

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Driver: DriverSQLite, Path: "absensi.db"}
	if got := c.DSN(); got != "file:absensi.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)" {
		t.Errorf("unexpected sqlite dsn: %s", got)
	}

	c = DatabaseConfig{Driver: DriverMySQL, User: "root", Host: "127.0.0.1", Port: 3306, Name: "absensi", Timezone: "Local"}
	if got := c.DSN(); got != "root:@tcp(127.0.0.1:3306)/absensi?charset=utf8mb4&parseTime=True&loc=Local&multiStatements=true" {
		t.Errorf("unexpected mysql dsn: %s", got)
	}
}
