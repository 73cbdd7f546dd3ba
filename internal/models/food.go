// ABOUTME: FoodItem model with per-100g nutrient values.
// ABOUTME: Identity is a UUID; nutrient fields are editable, the ID is not.
package models

import (
	"github.com/google/uuid"
)

// FoodItem describes a food in the catalog. Nutrient values are per 100g.
type FoodItem struct {
	ID       uuid.UUID `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Category string    `json:"category,omitempty" yaml:"category,omitempty"`
	Calories float64   `json:"calories" yaml:"calories"`
	Protein  float64   `json:"protein" yaml:"protein"`
	Carbs    float64   `json:"carbs" yaml:"carbs"`
	Fat      float64   `json:"fat" yaml:"fat"`
	Fiber    *float64  `json:"fiber,omitempty" yaml:"fiber,omitempty"`
	Sugar    *float64  `json:"sugar,omitempty" yaml:"sugar,omitempty"`
	Sodium   *float64  `json:"sodium,omitempty" yaml:"sodium,omitempty"`

	IsFavorite bool `json:"is_favorite" yaml:"is_favorite"`
}

// NewFoodItem creates a new FoodItem with a generated UUID.
func NewFoodItem(name string, calories, protein, carbs, fat float64) *FoodItem {
	return &FoodItem{
		ID:       uuid.New(),
		Name:     name,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
}

// WithCategory sets the category on the food item.
func (f *FoodItem) WithCategory(category string) *FoodItem {
	f.Category = category
	return f
}

// WithFiber sets the optional fiber value (g per 100g).
func (f *FoodItem) WithFiber(g float64) *FoodItem {
	f.Fiber = &g
	return f
}

// WithSugar sets the optional sugar value (g per 100g).
func (f *FoodItem) WithSugar(g float64) *FoodItem {
	f.Sugar = &g
	return f
}

// WithSodium sets the optional sodium value (mg per 100g).
func (f *FoodItem) WithSodium(mg float64) *FoodItem {
	f.Sodium = &mg
	return f
}

// Catalog indexes foods by ID for ingredient resolution.
type Catalog map[uuid.UUID]FoodItem

// NewCatalog builds a Catalog from a food slice.
func NewCatalog(foods []FoodItem) Catalog {
	c := make(Catalog, len(foods))
	for _, f := range foods {
		c[f.ID] = f
	}
	return c
}
