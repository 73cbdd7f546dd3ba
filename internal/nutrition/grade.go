// ABOUTME: Letter-grade scoring of a day's intake against goals.
// ABOUTME: Averages four actual/goal ratios and maps to A+..F thresholds.
package nutrition

import (
	"github.com/plate-sh/plate/internal/models"
)

// DayTotals holds the summed nutrition of one diary day.
type DayTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// SumDay sums a day's diary items into DayTotals.
func SumDay(day models.DailyMeal) DayTotals {
	var t DayTotals
	for _, item := range day.Items {
		t.Calories += float64(item.Calories)
		t.Protein += item.Protein
		t.Carbs += item.Carbs
		t.Fat += item.Fat
	}
	return t
}

// Score averages the four actual/goal ratios into a single score.
// A zero actual contributes a zero ratio. Ratios are deliberately not
// capped at 1.0: overshooting a goal still counts toward the average.
func Score(totals DayTotals, goals models.Settings) float64 {
	sum := ratio(totals.Calories, goals.CalorieGoal) +
		ratio(totals.Protein, goals.ProteinGoal) +
		ratio(totals.Carbs, goals.CarbsGoal) +
		ratio(totals.Fat, goals.FatGoal)
	return sum / 4
}

func ratio(actual, goal float64) float64 {
	if actual == 0 || goal <= 0 {
		return 0
	}
	return actual / goal
}

// gradeSteps maps descending score thresholds to letter grades.
var gradeSteps = []struct {
	min   float64
	grade string
}{
	{0.95, "A+"},
	{0.90, "A"},
	{0.85, "A-"},
	{0.80, "B+"},
	{0.75, "B"},
	{0.70, "B-"},
	{0.60, "C+"},
	{0.50, "C"},
	{0.40, "C-"},
	{0.20, "D"},
}

// Grade maps a score to its letter grade.
func Grade(score float64) string {
	for _, step := range gradeSteps {
		if score >= step.min {
			return step.grade
		}
	}
	return "F"
}

// GradeDay scores one diary day against the given goals.
func GradeDay(day models.DailyMeal, goals models.Settings) string {
	return Grade(Score(SumDay(day), goals))
}
