// ABOUTME: Tests for date-key helpers and diary models.
// ABOUTME: Validates ISO key formatting and round-trip parsing.
package models

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"midday", time.Date(2025, 3, 9, 13, 45, 0, 0, time.UTC), "2025-03-09"},
		{"midnight", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), "2024-12-31"},
		{"single digit month", time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC), "2025-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateKey(tt.in); got != tt.want {
				t.Errorf("DateKey(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDateKeyRoundTrip(t *testing.T) {
	key := "2025-03-09"
	parsed, err := ParseDateKey(key)
	if err != nil {
		t.Fatalf("ParseDateKey failed: %v", err)
	}
	if DateKey(parsed) != key {
		t.Errorf("round trip gave %s, want %s", DateKey(parsed), key)
	}

	if _, err := ParseDateKey("03/09/2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestNewFoodItem(t *testing.T) {
	f := NewFoodItem("Chicken Breast", 165, 31, 0, 3.6)

	if f.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if f.Calories != 165 || f.Protein != 31 {
		t.Errorf("nutrients = %v/%v, want 165/31", f.Calories, f.Protein)
	}

	f.WithCategory("protein").WithFiber(0)
	if f.Category != "protein" {
		t.Errorf("Category = %s, want protein", f.Category)
	}
	if f.Fiber == nil {
		t.Error("expected fiber to be set")
	}
}
