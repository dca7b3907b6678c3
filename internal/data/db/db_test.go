package db

import (
	"testing"

	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
)

func TestPostgresDSNDefaultsSSLMode(t *testing.T) {
	cfg := Config{PostgresUser: "u", PostgresPassword: "p", PostgresHost: "h", PostgresPort: "5432", PostgresName: "fleet"}
	if got := cfg.PostgresDSN(); got != "postgres://u:p@h:5432/fleet?sslmode=disable" {
		t.Fatalf("dsn=%s", got)
	}
}

func TestOpenSQLiteAndMigrate(t *testing.T) {
	gdb, err := Open(Config{Driver: DriverSQLite, SQLitePath: ":memory:", MaxOpenConns: 1, Silent: true}, logger.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = Close(gdb) })
	if err := AutoMigrateAll(gdb); err != nil {
		t.Fatalf("AutoMigrateAll: %v", err)
	}
	for _, table := range []string{"user", "user_token", "station", "broker", "driver", "owner", "lorry", "party"} {
		if !gdb.Migrator().HasTable(table) {
			t.Fatalf("missing table %s", table)
		}
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(Config{Driver: "oracle"}, logger.Nop()); err == nil {
		t.Fatalf("expected error")
	}
}
