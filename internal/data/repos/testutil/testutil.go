package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/freightdesk/fleetadmin/internal/data/db"
	"github.com/freightdesk/fleetadmin/internal/pkg/dbctx"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logg, err := logger.New("test")
	if err != nil {
		tb.Fatalf("failed to init logger: %v", err)
	}
	return logg
}

// DB opens a fresh migrated in-memory SQLite database for one test. The pool
// is pinned to a single connection so every query sees the same memory DB.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()
	gdb, err := db.Open(db.Config{
		Driver:       db.DriverSQLite,
		SQLitePath:   ":memory:",
		MaxOpenConns: 1,
		Silent:       true,
	}, Logger(tb))
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	tb.Cleanup(func() { _ = db.Close(gdb) })
	if err := db.AutoMigrateAll(gdb); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}
	return gdb
}

// Tx begins a transaction rolled back at cleanup. Everything in the test must
// go through the returned handle while it is open.
func Tx(tb testing.TB, gdb *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := gdb.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

func Ctx(tx *gorm.DB) dbctx.Context {
	return dbctx.Context{Ctx: context.Background(), Tx: tx}
}
