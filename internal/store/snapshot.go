// ABOUTME: Application-state snapshot: every domain collection in one struct.
// ABOUTME: Persisted as a single JSON blob; DefaultSnapshot seeds first runs.
package store

import (
	"github.com/plate-sh/plate/internal/models"
)

// Snapshot is the full application state. The persistence layer saves and
// loads it as one document; the Store is its only writer.
type Snapshot struct {
	Foods             []models.FoodItem           `json:"foods"`
	Meals             []models.Meal               `json:"meals"`
	DailyMeals        map[string]models.DailyMeal `json:"daily_meals"`
	WeeklyAssignments []models.WeeklyAssignment   `json:"weekly_assignments"`
	ShoppingLists     []models.ShoppingList       `json:"shopping_lists"`
	Settings          models.Settings             `json:"settings"`
	Categories        []string                    `json:"categories"`
	Badges            []models.Badge              `json:"badges"`
	HealthData        map[string]models.HealthData `json:"health_data"`
	WaterIntake       map[string]int              `json:"water_intake"`
}

// DefaultCategories is the starter category list.
var DefaultCategories = []string{
	"protein", "grains", "vegetables", "fruit", "dairy", "snacks", "drinks",
}

// DefaultSnapshot returns the state used when nothing has been persisted
// yet, or when the persisted blob cannot be read.
func DefaultSnapshot() *Snapshot {
	return &Snapshot{
		Foods:       defaultFoods(),
		DailyMeals:  make(map[string]models.DailyMeal),
		Settings:    models.DefaultSettings(),
		Categories:  append([]string(nil), DefaultCategories...),
		Badges:      models.DefaultBadges(),
		HealthData:  make(map[string]models.HealthData),
		WaterIntake: make(map[string]int),
	}
}

// defaultFoods seeds the catalog with a few common staples.
func defaultFoods() []models.FoodItem {
	return []models.FoodItem{
		*models.NewFoodItem("Chicken Breast", 165, 31, 0, 3.6).WithCategory("protein"),
		*models.NewFoodItem("White Rice (cooked)", 130, 2.7, 28.2, 0.3).WithCategory("grains"),
		*models.NewFoodItem("Rolled Oats", 389, 16.9, 66.3, 6.9).WithCategory("grains"),
		*models.NewFoodItem("Egg", 155, 13, 1.1, 11).WithCategory("protein"),
		*models.NewFoodItem("Banana", 89, 1.1, 22.8, 0.3).WithCategory("fruit"),
		*models.NewFoodItem("Broccoli", 34, 2.8, 6.6, 0.4).WithCategory("vegetables"),
		*models.NewFoodItem("Whole Milk", 61, 3.2, 4.8, 3.3).WithCategory("dairy"),
		*models.NewFoodItem("Olive Oil", 884, 0, 0, 100).WithCategory("snacks"),
	}
}

// normalize replaces nil maps after JSON decoding so lookups and writes
// never hit a nil map.
func (s *Snapshot) normalize() {
	if s.DailyMeals == nil {
		s.DailyMeals = make(map[string]models.DailyMeal)
	}
	if s.HealthData == nil {
		s.HealthData = make(map[string]models.HealthData)
	}
	if s.WaterIntake == nil {
		s.WaterIntake = make(map[string]int)
	}
}

// Catalog builds a food lookup index from the snapshot's catalog slice.
func (s *Snapshot) Catalog() models.Catalog {
	return models.NewCatalog(s.Foods)
}
