// ABOUTME: Export and import of the full application state.
// ABOUTME: Flat document with all collections; import replaces per key.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/plate-sh/plate/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData is the flat export document: every collection plus an export
// timestamp. On import, a present key fully replaces the matching store
// slice and an absent key leaves it untouched.
type ExportData struct {
	Version    string    `json:"version" yaml:"version"`
	ExportedAt time.Time `json:"exported_at" yaml:"exported_at"`
	Tool       string    `json:"tool" yaml:"tool"`

	Foods             []models.FoodItem            `json:"foods,omitempty" yaml:"foods,omitempty"`
	Meals             []models.Meal                `json:"meals,omitempty" yaml:"meals,omitempty"`
	DailyMeals        map[string]models.DailyMeal  `json:"daily_meals,omitempty" yaml:"daily_meals,omitempty"`
	WeeklyAssignments []models.WeeklyAssignment    `json:"weekly_assignments,omitempty" yaml:"weekly_assignments,omitempty"`
	ShoppingLists     []models.ShoppingList        `json:"shopping_lists,omitempty" yaml:"shopping_lists,omitempty"`
	Settings          *models.Settings             `json:"settings,omitempty" yaml:"settings,omitempty"`
	Categories        []string                     `json:"categories,omitempty" yaml:"categories,omitempty"`
	Badges            []models.Badge               `json:"badges,omitempty" yaml:"badges,omitempty"`
	HealthData        map[string]models.HealthData `json:"health_data,omitempty" yaml:"health_data,omitempty"`
	WaterIntake       map[string]int               `json:"water_intake,omitempty" yaml:"water_intake,omitempty"`
}

// Export builds the flat export document from the current snapshot.
func (s *Store) Export() *ExportData {
	snap := s.State()
	settings := snap.Settings
	return &ExportData{
		Version:           "1.0",
		ExportedAt:        time.Now(),
		Tool:              "plate",
		Foods:             snap.Foods,
		Meals:             snap.Meals,
		DailyMeals:        snap.DailyMeals,
		WeeklyAssignments: snap.WeeklyAssignments,
		ShoppingLists:     snap.ShoppingLists,
		Settings:          &settings,
		Categories:        snap.Categories,
		Badges:            snap.Badges,
		HealthData:        snap.HealthData,
		WaterIntake:       snap.WaterIntake,
	}
}

// Import applies an export document. Each present top-level key replaces
// the corresponding collection; absent keys are left untouched.
func (s *Store) Import(data *ExportData) {
	s.Update(func(snap *Snapshot) {
		if data.Foods != nil {
			snap.Foods = data.Foods
		}
		if data.Meals != nil {
			snap.Meals = data.Meals
		}
		if data.DailyMeals != nil {
			snap.DailyMeals = data.DailyMeals
		}
		if data.WeeklyAssignments != nil {
			snap.WeeklyAssignments = data.WeeklyAssignments
		}
		if data.ShoppingLists != nil {
			snap.ShoppingLists = data.ShoppingLists
		}
		if data.Settings != nil {
			snap.Settings = *data.Settings
		}
		if data.Categories != nil {
			snap.Categories = data.Categories
		}
		if data.Badges != nil {
			snap.Badges = data.Badges
		}
		if data.HealthData != nil {
			snap.HealthData = data.HealthData
		}
		if data.WaterIntake != nil {
			snap.WaterIntake = data.WaterIntake
		}
		snap.normalize()
	})
}

// ExportJSON renders the export document as indented JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(s.Export(), "", "  ")
}

// ExportYAML renders the export document as YAML.
func (s *Store) ExportYAML() ([]byte, error) {
	return yaml.Marshal(s.Export())
}

// ImportJSON applies an export document from JSON bytes.
func (s *Store) ImportJSON(data []byte) error {
	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		return fmt.Errorf("unmarshal export: %w", err)
	}
	s.Import(&export)
	return nil
}
