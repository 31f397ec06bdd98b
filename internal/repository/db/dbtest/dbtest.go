// Package dbtest opens throwaway in-memory SQLite stores for tests.
package dbtest

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"minifeed/internal/repository/db"
	"minifeed/pkg/config"
)

// Open returns a migrated in-memory store that is closed when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	gdb, err := db.Open(&config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    "file::memory:?_foreign_keys=1",
	}, "ERROR")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gdb) })

	if err := db.Migrate(context.Background(), gdb); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return gdb
}
