// ABOUTME: Food catalog and meal operations on the Store.
// ABOUTME: Entities resolve by UUID prefix or case-insensitive name.
package store

import (
	"fmt"
	"strings"

	"github.com/plate-sh/plate/internal/models"
	"github.com/plate-sh/plate/internal/nutrition"
)

// AddFood appends a food to the catalog.
func (s *Store) AddFood(f models.FoodItem) {
	s.Update(func(snap *Snapshot) {
		snap.Foods = append(snap.Foods, f)
	})
}

// FindFood resolves a food by ID prefix or exact name (case-insensitive).
func (s *Store) FindFood(ref string) (*models.FoodItem, error) {
	snap := s.State()
	idx, err := findFoodIndex(snap.Foods, ref)
	if err != nil {
		return nil, err
	}
	f := snap.Foods[idx]
	return &f, nil
}

// UpdateFood applies fn to the matching food. Identity is immutable:
// fn receives a pointer but the ID it was found under stays the key.
func (s *Store) UpdateFood(ref string, fn func(*models.FoodItem)) error {
	var err error
	s.Update(func(snap *Snapshot) {
		var idx int
		idx, err = findFoodIndex(snap.Foods, ref)
		if err != nil {
			return
		}
		id := snap.Foods[idx].ID
		fn(&snap.Foods[idx])
		snap.Foods[idx].ID = id
		recomputeMeals(snap)
	})
	return err
}

// ToggleFavoriteFood flips the favorite flag on the matching food.
func (s *Store) ToggleFavoriteFood(ref string) (bool, error) {
	var fav bool
	err := s.UpdateFood(ref, func(f *models.FoodItem) {
		f.IsFavorite = !f.IsFavorite
		fav = f.IsFavorite
	})
	return fav, err
}

// DeleteFood removes a food from the catalog. Meals and diary entries that
// reference it keep their denormalized names; the food simply stops
// contributing to recomputed totals.
func (s *Store) DeleteFood(ref string) error {
	var err error
	s.Update(func(snap *Snapshot) {
		var idx int
		idx, err = findFoodIndex(snap.Foods, ref)
		if err != nil {
			return
		}
		snap.Foods = append(snap.Foods[:idx], snap.Foods[idx+1:]...)
		recomputeMeals(snap)
	})
	return err
}

// AddMeal appends a meal with freshly computed totals.
func (s *Store) AddMeal(m models.Meal) {
	s.Update(func(snap *Snapshot) {
		nutrition.Recompute(&m, snap.Catalog())
		snap.Meals = append(snap.Meals, m)
	})
}

// FindMeal resolves a meal by ID prefix or exact name (case-insensitive).
func (s *Store) FindMeal(ref string) (*models.Meal, error) {
	snap := s.State()
	idx, err := findMealIndex(snap.Meals, ref)
	if err != nil {
		return nil, err
	}
	m := snap.Meals[idx]
	return &m, nil
}

// AddIngredient adds a food at a gram quantity to a meal and recomputes
// the meal's totals.
func (s *Store) AddIngredient(mealRef, foodRef string, grams float64) (*models.Meal, error) {
	if grams <= 0 {
		return nil, fmt.Errorf("grams must be positive, got %v", grams)
	}
	var out *models.Meal
	var err error
	s.Update(func(snap *Snapshot) {
		var mi, fi int
		mi, err = findMealIndex(snap.Meals, mealRef)
		if err != nil {
			return
		}
		fi, err = findFoodIndex(snap.Foods, foodRef)
		if err != nil {
			return
		}
		food := snap.Foods[fi]
		meal := &snap.Meals[mi]
		meal.Ingredients = append(meal.Ingredients, models.MealIngredient{
			FoodID: food.ID,
			Name:   food.Name,
			Grams:  grams,
		})
		nutrition.Recompute(meal, snap.Catalog())
		m := *meal
		out = &m
	})
	return out, err
}

// RemoveIngredient removes the ingredient at position idx (0-based) and
// recomputes the meal's totals.
func (s *Store) RemoveIngredient(mealRef string, idx int) error {
	var err error
	s.Update(func(snap *Snapshot) {
		var mi int
		mi, err = findMealIndex(snap.Meals, mealRef)
		if err != nil {
			return
		}
		meal := &snap.Meals[mi]
		if idx < 0 || idx >= len(meal.Ingredients) {
			err = fmt.Errorf("no ingredient at position %d", idx)
			return
		}
		meal.Ingredients = append(meal.Ingredients[:idx], meal.Ingredients[idx+1:]...)
		nutrition.Recompute(meal, snap.Catalog())
	})
	return err
}

// ToggleFavoriteMeal flips the favorite flag on the matching meal.
func (s *Store) ToggleFavoriteMeal(ref string) (bool, error) {
	var fav bool
	var err error
	s.Update(func(snap *Snapshot) {
		var mi int
		mi, err = findMealIndex(snap.Meals, ref)
		if err != nil {
			return
		}
		snap.Meals[mi].IsFavorite = !snap.Meals[mi].IsFavorite
		fav = snap.Meals[mi].IsFavorite
	})
	return fav, err
}

// DeleteMeal removes a meal.
func (s *Store) DeleteMeal(ref string) error {
	var err error
	s.Update(func(snap *Snapshot) {
		var mi int
		mi, err = findMealIndex(snap.Meals, ref)
		if err != nil {
			return
		}
		snap.Meals = append(snap.Meals[:mi], snap.Meals[mi+1:]...)
	})
	return err
}

// recomputeMeals refreshes every meal's totals after a catalog change.
func recomputeMeals(snap *Snapshot) {
	catalog := snap.Catalog()
	for i := range snap.Meals {
		nutrition.Recompute(&snap.Meals[i], catalog)
	}
}

func findFoodIndex(foods []models.FoodItem, ref string) (int, error) {
	matches := make([]int, 0, 2)
	for i, f := range foods {
		if strings.HasPrefix(f.ID.String(), ref) {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		for i, f := range foods {
			if strings.EqualFold(f.Name, ref) {
				matches = append(matches, i)
			}
		}
	}
	return pickMatch(matches, ref)
}

func findMealIndex(meals []models.Meal, ref string) (int, error) {
	matches := make([]int, 0, 2)
	for i, m := range meals {
		if strings.HasPrefix(m.ID.String(), ref) {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		for i, m := range meals {
			if strings.EqualFold(m.Name, ref) {
				matches = append(matches, i)
			}
		}
	}
	return pickMatch(matches, ref)
}

func pickMatch(matches []int, ref string) (int, error) {
	if len(matches) == 0 {
		return 0, fmt.Errorf("not found: %s", ref)
	}
	if len(matches) > 1 {
		return 0, fmt.Errorf("ambiguous prefix %s: matches multiple records", ref)
	}
	return matches[0], nil
}
