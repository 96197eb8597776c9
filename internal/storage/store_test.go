package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "prefs", "test.db")
	store, err := NewStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestStore_SetAndGetPreference(t *testing.T) {
	store := setupTestStore(t)

	if err := store.SetPreference("theme", "dark"); err != nil {
		t.Fatalf("failed to set preference: %v", err)
	}

	value, err := store.GetPreference("theme")
	if err != nil {
		t.Fatalf("failed to get preference: %v", err)
	}
	if value != "dark" {
		t.Errorf("expected theme dark, got %q", value)
	}
}

func TestStore_GetPreference_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetPreference("theme")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_DeletePreference(t *testing.T) {
	store := setupTestStore(t)

	if err := store.SetPreference("theme", "dark"); err != nil {
		t.Fatalf("failed to set preference: %v", err)
	}
	if err := store.DeletePreference("theme"); err != nil {
		t.Fatalf("failed to delete preference: %v", err)
	}

	if _, err := store.GetPreference("theme"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting again is a no-op
	if err := store.DeletePreference("theme"); err != nil {
		t.Errorf("deleting a missing key should not fail: %v", err)
	}
}

func TestStore_Preferences(t *testing.T) {
	store := setupTestStore(t)

	if err := store.SetPreference("theme", "dark"); err != nil {
		t.Fatal(err)
	}
	if err := store.SetPreference("other", "value"); err != nil {
		t.Fatal(err)
	}

	prefs, err := store.Preferences()
	if err != nil {
		t.Fatalf("failed to list preferences: %v", err)
	}
	if len(prefs) != 2 {
		t.Errorf("expected 2 preferences, got %d", len(prefs))
	}
	if prefs["theme"] != "dark" {
		t.Errorf("expected theme dark, got %q", prefs["theme"])
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SetPreference("theme", "dark"); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	value, err := reopened.GetPreference("theme")
	if err != nil {
		t.Fatalf("failed to get preference after reopen: %v", err)
	}
	if value != "dark" {
		t.Errorf("expected theme dark after reopen, got %q", value)
	}
}
