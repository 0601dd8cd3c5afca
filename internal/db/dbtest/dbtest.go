// Package dbtest opens migrated, seeded in-memory databases for tests.
package dbtest

import (
	"testing"

	"employee_management/internal/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open returns a fresh in-memory SQLite database holding the schema and the
// bootstrap administrator. It is closed when t finishes.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	return OpenWithAdmin(t, "")
}

// OpenWithAdmin is Open with the bootstrap administrator seeded under adminEmail
func OpenWithAdmin(t testing.TB, adminEmail string) *gorm.DB {
	t.Helper()
	gdb, err := db.OpenDialector(sqlite.Open(":memory:"), true)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1) // every connection to :memory: is a separate database
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.SeedAdmin(gdb, adminEmail); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return gdb
}
