// ABOUTME: MCP resource implementations for the plate nutrition tracker.
// ABOUTME: Provides plate://today, plate://week, and plate://catalog resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/plate-sh/plate/internal/models"
	"github.com/plate-sh/plate/internal/nutrition"
)

func (s *Server) registerResources() {
	// plate://today - today's diary, totals, water, and grade
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "plate://today",
		Name:        "Today's Diary",
		Description: "Everything logged today with totals, water, and grade",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// plate://week - grades and totals for the trailing 7 days
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "plate://week",
		Name:        "Weekly Summary",
		Description: "Grades and nutrient totals for the last 7 days",
		MIMEType:    "application/json",
	}, s.handleWeekResource)

	// plate://catalog - the food catalog
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "plate://catalog",
		Name:        "Food Catalog",
		Description: "All foods with per-100g nutrition values",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	snap := s.store.State()
	date := models.DateKey(time.Now())
	day := snap.DailyMeals[date]
	totals := nutrition.SumDay(day)

	result := map[string]interface{}{
		"date":     date,
		"items":    day.Items,
		"calories": totals.Calories,
		"protein":  totals.Protein,
		"carbs":    totals.Carbs,
		"fat":      totals.Fat,
		"water_ml": snap.WaterIntake[date],
		"grade":    nutrition.Grade(nutrition.Score(totals, snap.Settings)),
	}

	return resourceJSON("plate://today", result)
}

func (s *Server) handleWeekResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	snap := s.store.State()
	now := time.Now()

	type dayRow struct {
		Date     string  `json:"date"`
		Items    int     `json:"items"`
		Calories float64 `json:"calories"`
		WaterML  int     `json:"water_ml"`
		Grade    string  `json:"grade"`
	}

	days := make([]dayRow, 0, 7)
	for i := 6; i >= 0; i-- {
		date := models.DateKey(now.AddDate(0, 0, -i))
		day := snap.DailyMeals[date]
		totals := nutrition.SumDay(day)
		days = append(days, dayRow{
			Date:     date,
			Items:    len(day.Items),
			Calories: totals.Calories,
			WaterML:  snap.WaterIntake[date],
			Grade:    nutrition.Grade(nutrition.Score(totals, snap.Settings)),
		})
	}

	return resourceJSON("plate://week", map[string]interface{}{"days": days})
}

func (s *Server) handleCatalogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	snap := s.store.State()
	return resourceJSON("plate://catalog", map[string]interface{}{
		"foods":      snap.Foods,
		"categories": snap.Categories,
	})
}

func resourceJSON(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
