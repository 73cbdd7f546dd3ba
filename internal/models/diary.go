// ABOUTME: Daily diary models keyed by ISO date string.
// ABOUTME: Diary items carry nutrition already scaled to logged grams.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DateKeyLayout is the layout for diary, water, and health-data keys.
const DateKeyLayout = "2006-01-02"

// DateKey returns the ISO date key for a point in time.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses an ISO date key back into a time.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(DateKeyLayout, key)
}

// DailyMealItem is one diary line: a food logged at a gram quantity,
// with nutrition scaled to that quantity at log time.
type DailyMealItem struct {
	FoodID   uuid.UUID `json:"food_id" yaml:"food_id"`
	Name     string    `json:"name" yaml:"name"`
	Calories int       `json:"calories" yaml:"calories"`
	Protein  float64   `json:"protein" yaml:"protein"`
	Carbs    float64   `json:"carbs" yaml:"carbs"`
	Fat      float64   `json:"fat" yaml:"fat"`
	Grams    float64   `json:"grams" yaml:"grams"`
}

// DailyMeal holds everything logged on one calendar date.
// One entry per date key.
type DailyMeal struct {
	Date  string          `json:"date" yaml:"date"`
	Items []DailyMealItem `json:"items" yaml:"items"`
}

// HealthData is an auxiliary per-date record of body measurements.
type HealthData struct {
	Date       string   `json:"date" yaml:"date"`
	WeightKg   *float64 `json:"weight_kg,omitempty" yaml:"weight_kg,omitempty"`
	Steps      *int     `json:"steps,omitempty" yaml:"steps,omitempty"`
	SleepHours *float64 `json:"sleep_hours,omitempty" yaml:"sleep_hours,omitempty"`
}
