// ABOUTME: Diary, water, and health-data operations on the Store.
// ABOUTME: All three collections are keyed by ISO date string.
package store

import (
	"fmt"

	"github.com/plate-sh/plate/internal/models"
	"github.com/plate-sh/plate/internal/nutrition"
)

// LogFood scales a catalog food to the given grams and appends it to the
// diary for the date key.
func (s *Store) LogFood(date, foodRef string, grams float64) (*models.DailyMealItem, error) {
	if grams <= 0 {
		return nil, fmt.Errorf("grams must be positive, got %v", grams)
	}
	var item models.DailyMealItem
	var err error
	s.Update(func(snap *Snapshot) {
		var fi int
		fi, err = findFoodIndex(snap.Foods, foodRef)
		if err != nil {
			return
		}
		item = nutrition.ScaledItem(snap.Foods[fi], grams)
		day := snap.DailyMeals[date]
		day.Date = date
		day.Items = append(day.Items, item)
		snap.DailyMeals[date] = day
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// LogMeal appends every ingredient of a meal to the diary for the date key,
// each scaled to its own gram quantity. Ingredients whose food no longer
// resolves are logged by their denormalized name with zero nutrition.
func (s *Store) LogMeal(date, mealRef string) ([]models.DailyMealItem, error) {
	var items []models.DailyMealItem
	var err error
	s.Update(func(snap *Snapshot) {
		var mi int
		mi, err = findMealIndex(snap.Meals, mealRef)
		if err != nil {
			return
		}
		catalog := snap.Catalog()
		day := snap.DailyMeals[date]
		day.Date = date
		for _, ing := range snap.Meals[mi].Ingredients {
			food, ok := catalog[ing.FoodID]
			var item models.DailyMealItem
			if ok {
				item = nutrition.ScaledItem(food, ing.Grams)
			} else {
				item = models.DailyMealItem{FoodID: ing.FoodID, Name: ing.Name, Grams: ing.Grams}
			}
			day.Items = append(day.Items, item)
			items = append(items, item)
		}
		snap.DailyMeals[date] = day
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveLogItem removes the diary line at position idx (0-based) for the
// date key. Emptied days keep their entry with an empty item list.
func (s *Store) RemoveLogItem(date string, idx int) error {
	var err error
	s.Update(func(snap *Snapshot) {
		day, ok := snap.DailyMeals[date]
		if !ok || idx < 0 || idx >= len(day.Items) {
			err = fmt.Errorf("no diary item at %s position %d", date, idx)
			return
		}
		day.Items = append(day.Items[:idx], day.Items[idx+1:]...)
		snap.DailyMeals[date] = day
	})
	return err
}

// Day returns the diary entry for a date key (zero value when unlogged).
func (s *Store) Day(date string) models.DailyMeal {
	snap := s.State()
	day := snap.DailyMeals[date]
	day.Date = date
	return day
}

// AddWater adds milliliters to a date's cumulative intake and returns the
// new total. Intake within a day only ever grows from user action.
func (s *Store) AddWater(date string, ml int) (int, error) {
	if ml <= 0 {
		return 0, fmt.Errorf("water amount must be positive, got %d", ml)
	}
	var total int
	s.Update(func(snap *Snapshot) {
		snap.WaterIntake[date] += ml
		total = snap.WaterIntake[date]
	})
	return total, nil
}

// Water returns a date's cumulative intake in ml.
func (s *Store) Water(date string) int {
	snap := s.State()
	return snap.WaterIntake[date]
}

// SetHealthEntry records body measurements for a date.
func (s *Store) SetHealthEntry(date string, data models.HealthData) {
	s.Update(func(snap *Snapshot) {
		data.Date = date
		snap.HealthData[date] = data
	})
}
