package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/sideline/internal/common"
	"github.com/Veraticus/sideline/internal/storage"
)

func TestSetupTestDB(t *testing.T) {
	db := SetupTestDB(t)

	version, err := db.Storage.SchemaVersion(context.Background())
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if version != storage.ExpectedSchemaVersion {
		t.Errorf("version = %d, want %d", version, storage.ExpectedSchemaVersion)
	}

	if _, err := db.Storage.GetSetting(context.Background(), "theme.dark"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("GetSetting on empty db: got %v, want ErrNotFound", err)
	}
}

func TestSetupTestDBWithOptions_Seeds(t *testing.T) {
	db := SetupTestDBWithOptions(t, TestDBOptions{
		Settings: map[string]string{"theme.dark": "true", "language.russian": "false"},
	})

	if got := db.MustGetSetting("theme.dark"); got != "true" {
		t.Errorf("theme.dark = %q, want %q", got, "true")
	}
	if got := db.MustGetSetting("language.russian"); got != "false" {
		t.Errorf("language.russian = %q, want %q", got, "false")
	}
}

func TestSetupTestDBWithOptions_SkipMigrations(t *testing.T) {
	db := SetupTestDBWithOptions(t, TestDBOptions{SkipMigrations: true})

	version, err := db.Storage.SchemaVersion(context.Background())
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if version != 0 {
		t.Errorf("version = %d, want 0", version)
	}
}
