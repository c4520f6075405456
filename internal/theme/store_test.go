package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_DefaultsToLight(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if got := store.Load(); got != Light {
		t.Errorf("expected Light with no saved preference, got %s", got)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if err := store.Save(Dark); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// A fresh store over the same directory models an app restart.
	reopened, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed on reopen: %v", err)
	}
	if got := reopened.Load(); got != Dark {
		t.Errorf("preference did not survive restart: got %s", got)
	}

	if err := reopened.Save(Light); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got := store.Load(); got != Light {
		t.Errorf("expected Light after second save, got %s", got)
	}
}

func TestStore_CorruptFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to corrupt settings: %v", err)
	}

	if got := store.Load(); got != Light {
		t.Errorf("corrupt settings should fall back to Light, got %s", got)
	}
}

func TestStore_UnknownModeFallsBack(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(`{"theme":"sepia"}`), 0644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	if got := store.Load(); got != Light {
		t.Errorf("unknown mode should fall back to Light, got %s", got)
	}
}

func TestModeToggle(t *testing.T) {
	if Light.Toggle() != Dark || Dark.Toggle() != Light {
		t.Error("Toggle should flip between light and dark")
	}
}
