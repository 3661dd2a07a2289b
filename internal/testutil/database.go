// Package testutil provides shared test helpers for the settings database.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/sideline/internal/storage"
)

// TestDB is a migrated in-memory settings database bound to a test.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
}

// TestDBOptions provides configuration options for test database setup.
type TestDBOptions struct {
	// Settings are written after migrations, before the test sees the database.
	Settings       map[string]string
	SkipMigrations bool
}

// SetupTestDB creates a new in-memory test database with migrations applied.
// It is closed automatically when the test ends.
//
// Example:
//
//	db := testutil.SetupTestDB(t)
//	svc := settings.NewService(db.Storage, nil)
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	return SetupTestDBWithOptions(t, TestDBOptions{})
}

// SetupTestDBWithOptions creates a test database with custom options.
func SetupTestDBWithOptions(t *testing.T, opts TestDBOptions) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(storage.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	// Register cleanup
	t.Cleanup(func() {
		if closeErr := store.Close(); closeErr != nil {
			t.Logf("failed to close test database: %v", closeErr)
		}
	})

	ctx := context.Background()

	// Run migrations unless skipped
	if !opts.SkipMigrations {
		if err := store.Migrate(ctx); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Seed settings
	for key, value := range opts.Settings {
		if err := store.SetSetting(ctx, key, value); err != nil {
			t.Fatalf("failed to seed setting %q: %v", key, err)
		}
	}

	return &TestDB{
		Storage: store,
		t:       t,
	}
}

// MustGetSetting returns the stored value of key or fails the test.
func (db *TestDB) MustGetSetting(key string) string {
	db.t.Helper()
	value, err := db.Storage.GetSetting(context.Background(), key)
	if err != nil {
		db.t.Fatalf("failed to read setting %q: %v", key, err)
	}
	return value
}
