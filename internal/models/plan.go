// ABOUTME: Shopping list and weekly meal-plan models.
// ABOUTME: Auxiliary entities keyed by UUID or date; not part of scoring.
package models

import (
	"github.com/google/uuid"
)

// ShoppingItem is one line on a shopping list.
type ShoppingItem struct {
	Name     string `json:"name" yaml:"name"`
	Quantity string `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Checked  bool   `json:"checked" yaml:"checked"`
}

// ShoppingList is a named collection of shopping items.
type ShoppingList struct {
	ID    uuid.UUID      `json:"id" yaml:"id"`
	Name  string         `json:"name" yaml:"name"`
	Items []ShoppingItem `json:"items" yaml:"items"`
}

// NewShoppingList creates an empty shopping list with a generated UUID.
func NewShoppingList(name string) *ShoppingList {
	return &ShoppingList{
		ID:   uuid.New(),
		Name: name,
	}
}

// WeeklyAssignment plans a meal for a calendar date.
// MealName is denormalized for display when the meal is later deleted.
type WeeklyAssignment struct {
	Date     string    `json:"date" yaml:"date"`
	MealID   uuid.UUID `json:"meal_id" yaml:"meal_id"`
	MealName string    `json:"meal_name" yaml:"meal_name"`
}
