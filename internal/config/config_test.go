package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/employee-management/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "DB_DRIVER", "API_BASE_URL", "API_TIMEOUT", "LOG_LEVEL", "CORS_ORIGIN"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	if cfg.Server.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		t.Errorf("expected postgres driver, got %s", cfg.Database.Driver)
	}
	if cfg.Admin.APIBaseURL != "http://localhost:8080" {
		t.Errorf("unexpected api base url %s", cfg.Admin.APIBaseURL)
	}
	if cfg.Admin.RequestTimeout != 10*time.Second {
		t.Errorf("unexpected timeout %s", cfg.Admin.RequestTimeout)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %s", cfg.LogLevel)
	}
	if cfg.Server.CORSOrigin != "http://localhost:3000" {
		t.Errorf("unexpected cors origin %s", cfg.Server.CORSOrigin)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("API_BASE_URL", "http://api:9000/")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := config.Load()

	if cfg.Database.Driver != config.DriverSQLite {
		t.Errorf("expected sqlite driver, got %s", cfg.Database.Driver)
	}
	if cfg.Admin.APIBaseURL != "http://api:9000" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.Admin.APIBaseURL)
	}
	if cfg.Admin.RequestTimeout != 3*time.Second {
		t.Errorf("unexpected timeout %s", cfg.Admin.RequestTimeout)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %s", cfg.LogLevel)
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", DBName: "ems", SSLMode: "disable",
	}

	want := "host=db port=5432 user=u password=p dbname=ems sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
