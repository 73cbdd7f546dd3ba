// ABOUTME: MCP tool implementations for the plate nutrition tracker.
// ABOUTME: Covers diary logging, catalog, water, goals, and badge checks.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/plate-sh/plate/internal/models"
	"github.com/plate-sh/plate/internal/nutrition"
)

func (s *Server) registerTools() {
	// log_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Log a catalog food to the diary at a gram quantity",
	}, s.handleLogFood)

	// log_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_meal",
		Description: "Log every ingredient of a saved meal to the diary",
	}, s.handleLogMeal)

	// add_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_food",
		Description: "Add a food to the catalog with per-100g nutrition",
	}, s.handleAddFood)

	// list_foods
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_foods",
		Description: "List catalog foods, optionally filtered by category or name",
	}, s.handleListFoods)

	// add_water
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_water",
		Description: "Add water intake in ml (or glasses) for a date",
	}, s.handleAddWater)

	// day_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "day_summary",
		Description: "Get a day's diary items, nutrient totals, water, and letter grade",
	}, s.handleDaySummary)

	// check_badges
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "check_badges",
		Description: "Re-evaluate achievements and report badge status",
	}, s.handleCheckBadges)

	// set_goals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_goals",
		Description: "Update daily calorie, macro, and water goals",
	}, s.handleSetGoals)
}

// Tool input/output types

type logFoodInput struct {
	Food  string  `json:"food" jsonschema:"Food name or ID prefix"`
	Grams float64 `json:"grams" jsonschema:"Quantity in grams"`
	Date  string  `json:"date,omitempty" jsonschema:"ISO date (YYYY-MM-DD), defaults to today"`
}

type logFoodOutput struct {
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Message  string  `json:"message"`
}

type logMealInput struct {
	Meal string `json:"meal" jsonschema:"Meal name or ID prefix"`
	Date string `json:"date,omitempty" jsonschema:"ISO date (YYYY-MM-DD), defaults to today"`
}

type addFoodInput struct {
	Name     string  `json:"name" jsonschema:"Food name"`
	Calories float64 `json:"calories" jsonschema:"kcal per 100g"`
	Protein  float64 `json:"protein" jsonschema:"Protein g per 100g"`
	Carbs    float64 `json:"carbs" jsonschema:"Carbs g per 100g"`
	Fat      float64 `json:"fat" jsonschema:"Fat g per 100g"`
	Category string  `json:"category,omitempty" jsonschema:"Catalog category"`
}

type listFoodsInput struct {
	Category  string `json:"category,omitempty" jsonschema:"Filter by category"`
	Query     string `json:"query,omitempty" jsonschema:"Substring match on name"`
	Favorites bool   `json:"favorites,omitempty" jsonschema:"Only favorite foods"`
}

type addWaterInput struct {
	ML      int    `json:"ml,omitempty" jsonschema:"Milliliters to add"`
	Glasses int    `json:"glasses,omitempty" jsonschema:"Glasses to add (uses configured glass size)"`
	Date    string `json:"date,omitempty" jsonschema:"ISO date (YYYY-MM-DD), defaults to today"`
}

type daySummaryInput struct {
	Date string `json:"date,omitempty" jsonschema:"ISO date (YYYY-MM-DD), defaults to today"`
}

type daySummaryOutput struct {
	Date     string                 `json:"date"`
	Items    []models.DailyMealItem `json:"items"`
	Calories float64                `json:"calories"`
	Protein  float64                `json:"protein"`
	Carbs    float64                `json:"carbs"`
	Fat      float64                `json:"fat"`
	WaterML  int                    `json:"water_ml"`
	Grade    string                 `json:"grade"`
}

type setGoalsInput struct {
	Calories      float64 `json:"calories,omitempty" jsonschema:"Daily calorie goal (kcal)"`
	Protein       float64 `json:"protein,omitempty" jsonschema:"Daily protein goal (g)"`
	Carbs         float64 `json:"carbs,omitempty" jsonschema:"Daily carbs goal (g)"`
	Fat           float64 `json:"fat,omitempty" jsonschema:"Daily fat goal (g)"`
	WaterTargetML int     `json:"water_target_ml,omitempty" jsonschema:"Daily water target (ml)"`
}

type checkBadgesInput struct{}

type simpleOutput struct {
	Message string `json:"message"`
}

type badgeStatusOutput struct {
	NewlyUnlocked []models.Badge `json:"newly_unlocked"`
	Badges        []models.Badge `json:"badges"`
}

// Tool handlers

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, logFoodOutput, error) {
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, logFoodOutput{}, err
	}

	item, err := s.store.LogFood(date, input.Food, input.Grams)
	if err != nil {
		return nil, logFoodOutput{}, fmt.Errorf("failed to log food: %w", err)
	}

	return nil, logFoodOutput{
		Name:     item.Name,
		Calories: item.Calories,
		Protein:  item.Protein,
		Carbs:    item.Carbs,
		Fat:      item.Fat,
		Message:  fmt.Sprintf("Logged %s (%.0fg, %d kcal) on %s", item.Name, item.Grams, item.Calories, date),
	}, nil
}

func (s *Server) handleLogMeal(ctx context.Context, req *mcp.CallToolRequest, input logMealInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	items, err := s.store.LogMeal(date, input.Meal)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log meal: %w", err)
	}

	total := 0
	for _, item := range items {
		total += item.Calories
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %d items (%d kcal) on %s", len(items), total, date),
	}, nil
}

func (s *Server) handleAddFood(ctx context.Context, req *mcp.CallToolRequest, input addFoodInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Name == "" {
		return nil, simpleOutput{}, fmt.Errorf("food name is required")
	}

	f := models.NewFoodItem(input.Name, input.Calories, input.Protein, input.Carbs, input.Fat)
	if input.Category != "" {
		f.WithCategory(input.Category)
	}
	s.store.AddFood(*f)

	return nil, simpleOutput{
		Message: fmt.Sprintf("Added %s (%.0f kcal/100g, ID: %s)", f.Name, f.Calories, f.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListFoods(ctx context.Context, req *mcp.CallToolRequest, input listFoodsInput) (*mcp.CallToolResult, any, error) {
	snap := s.store.State()

	var foods []models.FoodItem
	for _, f := range snap.Foods {
		if input.Category != "" && f.Category != input.Category {
			continue
		}
		if input.Favorites && !f.IsFavorite {
			continue
		}
		if input.Query != "" && !strings.Contains(strings.ToLower(f.Name), strings.ToLower(input.Query)) {
			continue
		}
		foods = append(foods, f)
	}

	if len(foods) == 0 {
		return nil, map[string]interface{}{"message": "No foods found."}, nil
	}
	return nil, foods, nil
}

func (s *Server) handleAddWater(ctx context.Context, req *mcp.CallToolRequest, input addWaterInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	ml := input.ML
	if ml == 0 && input.Glasses > 0 {
		ml = input.Glasses * s.store.State().Settings.WaterGlassML
	}

	total, err := s.store.AddWater(date, ml)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add water: %w", err)
	}

	target := s.store.State().Settings.WaterTargetML
	return nil, simpleOutput{
		Message: fmt.Sprintf("Water on %s: %dml of %dml target", date, total, target),
	}, nil
}

func (s *Server) handleDaySummary(ctx context.Context, req *mcp.CallToolRequest, input daySummaryInput) (*mcp.CallToolResult, daySummaryOutput, error) {
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, daySummaryOutput{}, err
	}

	snap := s.store.State()
	day := snap.DailyMeals[date]
	totals := nutrition.SumDay(day)

	return nil, daySummaryOutput{
		Date:     date,
		Items:    day.Items,
		Calories: totals.Calories,
		Protein:  totals.Protein,
		Carbs:    totals.Carbs,
		Fat:      totals.Fat,
		WaterML:  snap.WaterIntake[date],
		Grade:    nutrition.Grade(nutrition.Score(totals, snap.Settings)),
	}, nil
}

func (s *Server) handleCheckBadges(ctx context.Context, req *mcp.CallToolRequest, input checkBadgesInput) (*mcp.CallToolResult, badgeStatusOutput, error) {
	snap := s.store.State()
	unlocked := s.evaluator.Evaluate(snap.Badges, snap.DailyMeals, snap.WaterIntake, snap.Settings)
	if len(unlocked) > 0 {
		s.store.SetBadges(snap.Badges)
	}

	return nil, badgeStatusOutput{
		NewlyUnlocked: unlocked,
		Badges:        snap.Badges,
	}, nil
}

func (s *Server) handleSetGoals(ctx context.Context, req *mcp.CallToolRequest, input setGoalsInput) (*mcp.CallToolResult, simpleOutput, error) {
	settings := s.store.State().Settings
	if input.Calories > 0 {
		settings.CalorieGoal = input.Calories
	}
	if input.Protein > 0 {
		settings.ProteinGoal = input.Protein
	}
	if input.Carbs > 0 {
		settings.CarbsGoal = input.Carbs
	}
	if input.Fat > 0 {
		settings.FatGoal = input.Fat
	}
	if input.WaterTargetML > 0 {
		settings.WaterTargetML = input.WaterTargetML
	}
	s.store.SetSettings(settings)

	return nil, simpleOutput{
		Message: fmt.Sprintf("Goals set: %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat, %dml water",
			settings.CalorieGoal, settings.ProteinGoal, settings.CarbsGoal, settings.FatGoal, settings.WaterTargetML),
	}, nil
}

// resolveDate validates an ISO date input, defaulting to today.
func resolveDate(date string) (string, error) {
	if date == "" {
		return models.DateKey(time.Now()), nil
	}
	if _, err := models.ParseDateKey(date); err != nil {
		return "", fmt.Errorf("invalid date %q (use YYYY-MM-DD)", date)
	}
	return date, nil
}
