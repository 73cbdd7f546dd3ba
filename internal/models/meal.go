// ABOUTME: Meal and MealIngredient models with derived nutrition totals.
// ABOUTME: Totals are always recomputed from ingredients, never hand-edited.
package models

import (
	"github.com/google/uuid"
)

// MealIngredient references a catalog food by ID with a gram quantity.
// Name is denormalized for display when the food is later deleted.
type MealIngredient struct {
	FoodID uuid.UUID `json:"food_id" yaml:"food_id"`
	Name   string    `json:"name" yaml:"name"`
	Grams  float64   `json:"grams" yaml:"grams"`
}

// MealTotals holds nutrition totals derived from a meal's ingredients.
// Calories are a whole number; macros are rounded to one decimal place.
type MealTotals struct {
	Calories        int     `json:"total_calories" yaml:"total_calories"`
	Protein         float64 `json:"total_protein" yaml:"total_protein"`
	Carbs           float64 `json:"total_carbs" yaml:"total_carbs"`
	Fat             float64 `json:"total_fat" yaml:"total_fat"`
	IngredientCount int     `json:"ingredient_count" yaml:"ingredient_count"`
}

// Meal is a named, reusable composition of ingredients.
type Meal struct {
	ID          uuid.UUID        `json:"id" yaml:"id"`
	Name        string           `json:"name" yaml:"name"`
	Ingredients []MealIngredient `json:"ingredients" yaml:"ingredients"`
	IsFavorite  bool             `json:"is_favorite" yaml:"is_favorite"`
	Totals      MealTotals       `json:"totals" yaml:"totals"`
}

// NewMeal creates a new empty Meal with a generated UUID.
func NewMeal(name string) *Meal {
	return &Meal{
		ID:   uuid.New(),
		Name: name,
	}
}
