// ABOUTME: Tests for export/import: round trips and additive key semantics.
// ABOUTME: Round trip excludes the export timestamp by construction.
package store

import (
	"context"
	"testing"
	"time"

	"github.com/plate-sh/plate/internal/models"
)

func exportTestStore(t *testing.T) *Store {
	t.Helper()
	return Open(context.Background(), &memBackend{},
		WithDebounce(time.Hour),
		WithLogger(func(format string, args ...any) {}))
}

func TestExportImportRoundTrip(t *testing.T) {
	src := exportTestStore(t)

	src.AddFood(*models.NewFoodItem("Salmon", 208, 20, 0, 13).WithCategory("protein"))
	meal := models.NewMeal("Salmon Bowl")
	src.AddMeal(*meal)
	if _, err := src.AddIngredient("Salmon Bowl", "Salmon", 180); err != nil {
		t.Fatalf("AddIngredient failed: %v", err)
	}
	settings := models.DefaultSettings()
	settings.CalorieGoal = 1850
	src.SetSettings(settings)
	badges := src.State().Badges
	badges[0].Unlock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	src.SetBadges(badges)

	data, err := src.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	dst := exportTestStore(t)
	if err := dst.ImportJSON(data); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	got, want := dst.State(), src.State()
	if len(got.Foods) != len(want.Foods) {
		t.Fatalf("foods = %d, want %d", len(got.Foods), len(want.Foods))
	}
	if got.Foods[len(got.Foods)-1].Name != "Salmon" {
		t.Error("imported catalog missing Salmon")
	}
	if len(got.Meals) != 1 || got.Meals[0].Totals != want.Meals[0].Totals {
		t.Errorf("meal totals = %+v, want %+v", got.Meals[0].Totals, want.Meals[0].Totals)
	}
	if got.Settings != want.Settings {
		t.Errorf("settings = %+v, want %+v", got.Settings, want.Settings)
	}
	if !got.Badges[0].Unlocked || got.Badges[0].UnlockedAt == nil {
		t.Error("imported badge lost its unlock state")
	}
}

func TestImportIsAdditivePerKey(t *testing.T) {
	s := exportTestStore(t)
	s.SetCategories([]string{"keep", "these"})
	originalFoods := len(s.State().Foods)

	// Payload carries only settings; everything else must stay untouched.
	partial := []byte(`{"version":"1.0","tool":"plate","settings":{"calorie_goal":1600,"protein_goal":100,"carbs_goal":200,"fat_goal":55,"water_target_ml":1800,"water_glass_ml":250,"reminder_start_hour":8,"reminder_end_hour":22,"reminder_interval_min":60,"reminders_enabled":false,"items_per_page":10}}`)
	if err := s.ImportJSON(partial); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	snap := s.State()
	if snap.Settings.CalorieGoal != 1600 {
		t.Errorf("CalorieGoal = %v, want 1600", snap.Settings.CalorieGoal)
	}
	if len(snap.Foods) != originalFoods {
		t.Errorf("foods = %d, want untouched %d", len(snap.Foods), originalFoods)
	}
	if len(snap.Categories) != 2 || snap.Categories[0] != "keep" {
		t.Errorf("Categories = %v, want [keep these]", snap.Categories)
	}

	// A present key fully replaces its slice.
	replace := []byte(`{"version":"1.0","tool":"plate","categories":["only"]}`)
	if err := s.ImportJSON(replace); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}
	snap = s.State()
	if len(snap.Categories) != 1 || snap.Categories[0] != "only" {
		t.Errorf("Categories = %v, want [only]", snap.Categories)
	}
	if snap.Settings.CalorieGoal != 1600 {
		t.Errorf("CalorieGoal = %v, want 1600 left untouched", snap.Settings.CalorieGoal)
	}
}

func TestImportMalformedJSON(t *testing.T) {
	s := exportTestStore(t)
	if err := s.ImportJSON([]byte("{not json")); err == nil {
		t.Error("expected error for malformed import payload")
	}
}

func TestExportYAML(t *testing.T) {
	s := exportTestStore(t)
	data, err := s.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected YAML output")
	}
}
