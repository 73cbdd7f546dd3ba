// ABOUTME: Collection-level setters for the application snapshot.
// ABOUTME: Each setter replaces its slice whole and schedules a save.
package store

import (
	"github.com/plate-sh/plate/internal/models"
)

// SetFoods replaces the food catalog.
func (s *Store) SetFoods(foods []models.FoodItem) {
	s.Update(func(snap *Snapshot) { snap.Foods = foods })
}

// SetMeals replaces the meal list.
func (s *Store) SetMeals(meals []models.Meal) {
	s.Update(func(snap *Snapshot) { snap.Meals = meals })
}

// SetDailyMeals replaces the diary.
func (s *Store) SetDailyMeals(diary map[string]models.DailyMeal) {
	s.Update(func(snap *Snapshot) {
		snap.DailyMeals = diary
		snap.normalize()
	})
}

// SetWeeklyAssignments replaces the weekly plan.
func (s *Store) SetWeeklyAssignments(assignments []models.WeeklyAssignment) {
	s.Update(func(snap *Snapshot) { snap.WeeklyAssignments = assignments })
}

// SetShoppingLists replaces the shopping lists.
func (s *Store) SetShoppingLists(lists []models.ShoppingList) {
	s.Update(func(snap *Snapshot) { snap.ShoppingLists = lists })
}

// SetSettings replaces the settings singleton.
func (s *Store) SetSettings(settings models.Settings) {
	s.Update(func(snap *Snapshot) { snap.Settings = settings })
}

// SetCategories replaces the category list.
func (s *Store) SetCategories(categories []string) {
	s.Update(func(snap *Snapshot) { snap.Categories = categories })
}

// SetBadges replaces the badge set.
func (s *Store) SetBadges(badges []models.Badge) {
	s.Update(func(snap *Snapshot) { snap.Badges = badges })
}

// SetHealthData replaces the per-date health records.
func (s *Store) SetHealthData(data map[string]models.HealthData) {
	s.Update(func(snap *Snapshot) {
		snap.HealthData = data
		snap.normalize()
	})
}

// SetWaterIntake replaces the per-date water map.
func (s *Store) SetWaterIntake(water map[string]int) {
	s.Update(func(snap *Snapshot) {
		snap.WaterIntake = water
		snap.normalize()
	})
}
