// ABOUTME: Tests for the SQLite snapshot backend.
// ABOUTME: Verifies first-run ErrNotFound, upsert, and reopen round trip.
package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func setupSQLite(t *testing.T, path string) *SQLiteBackend {
	t.Helper()
	backend, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { backend.Close() })
	return backend
}

func TestSQLiteFirstRun(t *testing.T) {
	backend := setupSQLite(t, filepath.Join(t.TempDir(), "plate.db"))

	_, err := backend.Load(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load on empty db = %v, want ErrNotFound", err)
	}
}

func TestSQLiteSaveLoadRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "plate.db")
	backend := setupSQLite(t, dbPath)
	ctx := context.Background()

	snap := DefaultSnapshot()
	snap.Settings.CalorieGoal = 1750
	snap.WaterIntake["2025-03-09"] = 1250

	if err := backend.Save(ctx, snap); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := backend.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Settings.CalorieGoal != 1750 {
		t.Errorf("CalorieGoal = %v, want 1750", got.Settings.CalorieGoal)
	}
	if got.WaterIntake["2025-03-09"] != 1250 {
		t.Errorf("water = %d, want 1250", got.WaterIntake["2025-03-09"])
	}
	if len(got.Foods) != len(snap.Foods) {
		t.Errorf("foods = %d, want %d", len(got.Foods), len(snap.Foods))
	}

	// A second save replaces the single row.
	snap.Settings.CalorieGoal = 2100
	if err := backend.Save(ctx, snap); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	got, err = backend.Load(ctx)
	if err != nil {
		t.Fatalf("Load after upsert failed: %v", err)
	}
	if got.Settings.CalorieGoal != 2100 {
		t.Errorf("CalorieGoal = %v, want 2100 after upsert", got.Settings.CalorieGoal)
	}

	// State survives reopen.
	if err := backend.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	reopened := setupSQLite(t, dbPath)
	got, err = reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load after reopen failed: %v", err)
	}
	if got.Settings.CalorieGoal != 2100 {
		t.Errorf("CalorieGoal = %v, want 2100 after reopen", got.Settings.CalorieGoal)
	}
}
