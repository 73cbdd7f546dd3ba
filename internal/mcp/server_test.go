// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Exercises handlers directly over a sqlite-backed test store.
package mcp

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/plate-sh/plate/internal/models"
	"github.com/plate-sh/plate/internal/store"
)

// setupTestStore creates a sqlite-backed store in a temp directory.
func setupTestStore(t *testing.T) *store.Store {
	t.Helper()

	backend, err := store.OpenSQLite(filepath.Join(t.TempDir(), "plate.db"))
	if err != nil {
		t.Fatalf("Failed to open backend: %v", err)
	}

	st := store.Open(context.Background(), backend,
		store.WithDebounce(time.Hour),
		store.WithLogger(func(format string, args ...any) {}))
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestNewServer(t *testing.T) {
	st := setupTestStore(t)

	server, err := NewServer(st)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	if server == nil {
		t.Fatal("Expected non-nil server")
	}
	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.store == nil {
		t.Error("Expected non-nil store")
	}
}

func TestHandleLogFood(t *testing.T) {
	st := setupTestStore(t)
	server, _ := NewServer(st)
	ctx := context.Background()

	_, out, err := server.handleLogFood(ctx, nil, logFoodInput{
		Food:  "Chicken Breast",
		Grams: 150,
		Date:  "2025-03-09",
	})
	if err != nil {
		t.Fatalf("handleLogFood failed: %v", err)
	}
	if out.Calories != 248 {
		t.Errorf("Calories = %d, want 248", out.Calories)
	}
	if out.Protein != 46.5 {
		t.Errorf("Protein = %v, want 46.5", out.Protein)
	}

	day := st.Day("2025-03-09")
	if len(day.Items) != 1 {
		t.Errorf("expected 1 diary item, got %d", len(day.Items))
	}

	// Unknown food surfaces an error.
	if _, _, err := server.handleLogFood(ctx, nil, logFoodInput{Food: "Unobtainium", Grams: 50}); err == nil {
		t.Error("expected error for unknown food")
	}

	// Bad date surfaces an error.
	if _, _, err := server.handleLogFood(ctx, nil, logFoodInput{Food: "Banana", Grams: 50, Date: "soon"}); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestHandleAddFoodAndList(t *testing.T) {
	st := setupTestStore(t)
	server, _ := NewServer(st)
	ctx := context.Background()

	_, out, err := server.handleAddFood(ctx, nil, addFoodInput{
		Name:     "Greek Yogurt",
		Calories: 59,
		Protein:  10,
		Carbs:    3.6,
		Fat:      0.4,
		Category: "dairy",
	})
	if err != nil {
		t.Fatalf("handleAddFood failed: %v", err)
	}
	if out.Message == "" {
		t.Error("expected confirmation message")
	}

	_, result, err := server.handleListFoods(ctx, nil, listFoodsInput{Query: "yogurt"})
	if err != nil {
		t.Fatalf("handleListFoods failed: %v", err)
	}
	foods, ok := result.([]models.FoodItem)
	if !ok || len(foods) != 1 {
		t.Fatalf("expected exactly one match, got %#v", result)
	}
	if foods[0].Name != "Greek Yogurt" {
		t.Errorf("Name = %s, want Greek Yogurt", foods[0].Name)
	}

	if _, _, err := server.handleAddFood(ctx, nil, addFoodInput{}); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestHandleDaySummary(t *testing.T) {
	st := setupTestStore(t)
	server, _ := NewServer(st)
	ctx := context.Background()

	date := "2025-03-09"
	if _, err := st.LogFood(date, "Chicken Breast", 150); err != nil {
		t.Fatalf("LogFood failed: %v", err)
	}
	if _, err := st.AddWater(date, 500); err != nil {
		t.Fatalf("AddWater failed: %v", err)
	}

	_, out, err := server.handleDaySummary(ctx, nil, daySummaryInput{Date: date})
	if err != nil {
		t.Fatalf("handleDaySummary failed: %v", err)
	}
	if out.Calories != 248 {
		t.Errorf("Calories = %v, want 248", out.Calories)
	}
	if out.WaterML != 500 {
		t.Errorf("WaterML = %d, want 500", out.WaterML)
	}
	if out.Grade == "" {
		t.Error("expected a letter grade")
	}
}

func TestHandleSetGoals(t *testing.T) {
	st := setupTestStore(t)
	server, _ := NewServer(st)
	ctx := context.Background()

	_, _, err := server.handleSetGoals(ctx, nil, setGoalsInput{Calories: 1800, Protein: 140})
	if err != nil {
		t.Fatalf("handleSetGoals failed: %v", err)
	}

	settings := st.State().Settings
	if settings.CalorieGoal != 1800 {
		t.Errorf("CalorieGoal = %v, want 1800", settings.CalorieGoal)
	}
	if settings.ProteinGoal != 140 {
		t.Errorf("ProteinGoal = %v, want 140", settings.ProteinGoal)
	}
	// Unspecified goals keep their previous values.
	if settings.CarbsGoal != 250 {
		t.Errorf("CarbsGoal = %v, want untouched 250", settings.CarbsGoal)
	}
}

func TestHandleCheckBadges(t *testing.T) {
	st := setupTestStore(t)
	server, _ := NewServer(st)
	ctx := context.Background()

	// Hit today's water target, then expect the hydration badge.
	target := st.State().Settings.WaterTargetML
	if _, err := st.AddWater(models.DateKey(time.Now()), target); err != nil {
		t.Fatalf("AddWater failed: %v", err)
	}

	_, out, err := server.handleCheckBadges(ctx, nil, checkBadgesInput{})
	if err != nil {
		t.Fatalf("handleCheckBadges failed: %v", err)
	}

	found := false
	for _, b := range out.Badges {
		if b.ID == models.BadgeHydratedDay && b.Unlocked {
			found = true
		}
	}
	if !found {
		t.Error("expected hydration badge unlocked")
	}
}

func TestResources(t *testing.T) {
	st := setupTestStore(t)
	server, _ := NewServer(st)
	ctx := context.Background()

	today, err := server.handleTodayResource(ctx, nil)
	if err != nil {
		t.Fatalf("today resource failed: %v", err)
	}
	if len(today.Contents) != 1 || today.Contents[0].URI != "plate://today" {
		t.Errorf("unexpected today resource contents: %+v", today.Contents)
	}

	week, err := server.handleWeekResource(ctx, nil)
	if err != nil {
		t.Fatalf("week resource failed: %v", err)
	}
	if len(week.Contents) != 1 {
		t.Errorf("expected one content block, got %d", len(week.Contents))
	}

	catalog, err := server.handleCatalogResource(ctx, nil)
	if err != nil {
		t.Fatalf("catalog resource failed: %v", err)
	}
	if len(catalog.Contents) != 1 {
		t.Errorf("expected one content block, got %d", len(catalog.Contents))
	}
}
