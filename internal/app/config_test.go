package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
)

// clearEnv blanks the variables these tests assert on.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_FILE", "APP_ENV", "PORT", "JWT_SECRET_KEY", "ACCESS_TOKEN_TTL", "DB_DRIVER", "SQLITE_PATH",
		"REDIS_ADDR", "CODE_RESERVATION_TTL", "CODE_MAX_ATTEMPTS", "CORS_ALLOWED_ORIGINS",
		"DEFAULT_COUNTRY", "OTEL_ENABLED", "OTEL_SAMPLER_RATIO",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig(logger.Nop())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "8080" || cfg.DefaultCountry != "India" || cfg.CodeMaxAttempts != 10 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.AccessTokenTTL != time.Hour || cfg.DB.Driver != "postgres" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
port: "9090"
access_token_ttl: 900
database:
  driver: sqlite
  sqlite_path: /tmp/fleet.db
redis:
  addr: redis:6379
  reservation_ttl: 15
code_max_attempts: 5
cors_allowed_origins:
  - https://admin.example.com
tracing:
  enabled: true
  sample_ratio: 0.5
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	clearEnv(t)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7070")

	cfg, err := LoadConfig(logger.Nop())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "7070" {
		t.Fatalf("env should win over file: port=%q", cfg.Port)
	}
	if cfg.AccessTokenTTL != 15*time.Minute || cfg.DB.Driver != "sqlite" || cfg.DB.SQLitePath != "/tmp/fleet.db" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Redis.TTL != 15*time.Second || cfg.CodeMaxAttempts != 5 {
		t.Fatalf("redis/code settings: %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 1 || !cfg.Tracing.Enabled || cfg.Tracing.SampleRatio != 0.5 {
		t.Fatalf("origins/tracing: %+v", cfg)
	}
}

func TestLoadConfigRejectsBadDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "mysql")
	if _, err := LoadConfig(logger.Nop()); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestLoadConfigRequiresSecretInProduction(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	if _, err := LoadConfig(logger.Nop()); err == nil {
		t.Fatalf("expected error for default secret in production")
	}
	t.Setenv("JWT_SECRET_KEY", "prod-secret")
	if _, err := LoadConfig(logger.Nop()); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
}

func TestNewCoreWithSQLite(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_MODE", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "fleet.db"))

	a, err := NewCore(t.Context())
	if err != nil {
		t.Fatalf("NewCore: %v", err)
	}
	defer a.Close()
	if a.Server != nil {
		t.Fatalf("core app should not build a server")
	}
	if err := a.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if a.Services.Auth == nil || a.Services.Consignor == nil {
		t.Fatalf("services not wired")
	}
}
