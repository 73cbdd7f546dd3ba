// ABOUTME: Achievement evaluation over the trailing 7-day diary window.
// ABOUTME: Checks are stateless; Evaluate applies one-way badge unlocks.
package achievements

import (
	"time"

	"github.com/plate-sh/plate/internal/models"
	"github.com/plate-sh/plate/internal/nutrition"
)

const windowDays = 7

// Evaluator runs achievement checks against diary and water history.
// The clock is injectable for tests; it defaults to time.Now.
type Evaluator struct {
	Now func() time.Time
}

// New returns an Evaluator using the wall clock.
func New() *Evaluator {
	return &Evaluator{Now: time.Now}
}

// windowKeys returns the date keys for today and the 6 preceding days.
func (e *Evaluator) windowKeys() []string {
	now := e.Now()
	keys := make([]string, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		keys = append(keys, models.DateKey(now.AddDate(0, 0, -i)))
	}
	return keys
}

// Streak reports whether every day in the window has at least one diary item.
func (e *Evaluator) Streak(diary map[string]models.DailyMeal) bool {
	for _, key := range e.windowKeys() {
		if len(diary[key].Items) == 0 {
			return false
		}
	}
	return true
}

// GoalConsistency reports whether every day in the window logged food and
// kept each nutrient total within ±10% of its goal, bounds inclusive.
func (e *Evaluator) GoalConsistency(diary map[string]models.DailyMeal, goals models.Settings) bool {
	for _, key := range e.windowKeys() {
		day := diary[key]
		if len(day.Items) == 0 {
			return false
		}
		t := nutrition.SumDay(day)
		if !withinTolerance(t.Calories, goals.CalorieGoal) ||
			!withinTolerance(t.Protein, goals.ProteinGoal) ||
			!withinTolerance(t.Carbs, goals.CarbsGoal) ||
			!withinTolerance(t.Fat, goals.FatGoal) {
			return false
		}
	}
	return true
}

func withinTolerance(actual, goal float64) bool {
	return actual >= goal*0.9 && actual <= goal*1.1
}

// PerfectWeek reports whether every day in the window graded exactly A+.
func (e *Evaluator) PerfectWeek(diary map[string]models.DailyMeal, goals models.Settings) bool {
	for _, key := range e.windowKeys() {
		if nutrition.GradeDay(diary[key], goals) != "A+" {
			return false
		}
	}
	return true
}

// WaterGoalToday reports whether today's cumulative intake met the target.
func (e *Evaluator) WaterGoalToday(water map[string]int, goals models.Settings) bool {
	return water[models.DateKey(e.Now())] >= goals.WaterTargetML
}

// Evaluate runs every check and unlocks the corresponding badges in place.
// Unlock timestamps are the evaluation time, not the day the condition
// first held; already-unlocked badges are never restamped. Returns the
// badges newly unlocked by this pass.
func (e *Evaluator) Evaluate(badges []models.Badge, diary map[string]models.DailyMeal, water map[string]int, goals models.Settings) []models.Badge {
	satisfied := map[string]bool{
		models.BadgeStreakWeek:   e.Streak(diary),
		models.BadgeBalancedWeek: e.GoalConsistency(diary, goals),
		models.BadgePerfectWeek:  e.PerfectWeek(diary, goals),
		models.BadgeHydratedDay:  e.WaterGoalToday(water, goals),
	}

	now := e.Now()
	var unlocked []models.Badge
	for i := range badges {
		if satisfied[badges[i].ID] && badges[i].Unlock(now) {
			unlocked = append(unlocked, badges[i])
		}
	}
	return unlocked
}
