// ABOUTME: Pure nutrition aggregation over meal ingredients and diary items.
// ABOUTME: Scales per-100g values by grams; unresolved foods contribute zero.
package nutrition

import (
	"math"

	"github.com/plate-sh/plate/internal/models"
)

// RoundCalories rounds a calorie value to the nearest whole kcal.
func RoundCalories(v float64) int {
	return int(math.Round(v))
}

// RoundMacro rounds a gram value to one decimal place, half up.
func RoundMacro(v float64) float64 {
	return math.Round(v*10) / 10
}

// MealTotals computes a meal's derived totals from its ingredients and the
// current food catalog. Ingredients whose FoodID is missing from the catalog
// are skipped. The result is deterministic and safe to recompute at any time.
func MealTotals(ingredients []models.MealIngredient, catalog models.Catalog) models.MealTotals {
	var calories, protein, carbs, fat float64
	for _, ing := range ingredients {
		food, ok := catalog[ing.FoodID]
		if !ok {
			continue
		}
		factor := ing.Grams / 100
		calories += food.Calories * factor
		protein += food.Protein * factor
		carbs += food.Carbs * factor
		fat += food.Fat * factor
	}
	return models.MealTotals{
		Calories:        RoundCalories(calories),
		Protein:         RoundMacro(protein),
		Carbs:           RoundMacro(carbs),
		Fat:             RoundMacro(fat),
		IngredientCount: len(ingredients),
	}
}

// Recompute refreshes a meal's derived totals in place.
func Recompute(m *models.Meal, catalog models.Catalog) {
	m.Totals = MealTotals(m.Ingredients, catalog)
}

// ScaledItem builds a diary item for a food logged at a gram quantity,
// with nutrition scaled and rounded the same way as meal totals.
func ScaledItem(food models.FoodItem, grams float64) models.DailyMealItem {
	factor := grams / 100
	return models.DailyMealItem{
		FoodID:   food.ID,
		Name:     food.Name,
		Calories: RoundCalories(food.Calories * factor),
		Protein:  RoundMacro(food.Protein * factor),
		Carbs:    RoundMacro(food.Carbs * factor),
		Fat:      RoundMacro(food.Fat * factor),
		Grams:    grams,
	}
}
