package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/chapterhub/internal/db"
	"github.com/alexanderramin/chapterhub/internal/source"
)

// NewTestDB opens a migrated in-memory store that is closed on cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// SeedTestDB writes f into a fresh test database and returns it.
func SeedTestDB(t *testing.T, f *source.Fixture) *sql.DB {
	t.Helper()
	database := NewTestDB(t)
	if _, err := source.SeedFixture(context.Background(), NewTestUoW(database), f); err != nil {
		t.Fatalf("seeding test database: %v", err)
	}
	return database
}
