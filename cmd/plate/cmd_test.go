// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Tests resolveDate, padRight, gradeColor, waterBar, and command flags.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/plate-sh/plate/internal/models"
)

func TestResolveDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "empty defaults to today",
			input: "",
			want:  models.DateKey(time.Now()),
		},
		{
			name:  "valid date",
			input: "2025-03-08",
			want:  "2025-03-08",
		},
		{
			name:    "wrong order",
			input:   "08-03-2025",
			wantErr: true,
		},
		{
			name:    "random string",
			input:   "yesterday",
			wantErr: true,
		},
		{
			name:    "missing day",
			input:   "2025-03",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveDate(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("resolveDate(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("resolveDate(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.want {
				t.Errorf("resolveDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{
			name:   "needs padding",
			input:  "hi",
			length: 5,
			want:   "hi   ",
		},
		{
			name:   "exact length",
			input:  "hello",
			length: 5,
			want:   "hello",
		},
		{
			name:   "longer than length",
			input:  "hello world",
			length: 5,
			want:   "hello world",
		},
		{
			name:   "empty string",
			input:  "",
			length: 5,
			want:   "     ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padRight(tt.input, tt.length)
			if got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestGradeColor(t *testing.T) {
	// Color codes vary with terminal detection; check the grade text survives.
	for _, grade := range []string{"A+", "A-", "B", "C+", "D", "F"} {
		got := gradeColor(grade)
		if !strings.Contains(got, grade) {
			t.Errorf("gradeColor(%q) = %q, want it to contain the grade", grade, got)
		}
	}
}

func TestWaterBar(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		target int
		want   string
	}{
		{
			name:   "zero target shows raw total",
			total:  500,
			target: 0,
			want:   "500ml",
		},
		{
			name:   "empty",
			total:  0,
			target: 2000,
			want:   "0/2000ml",
		},
		{
			name:   "partial",
			total:  1000,
			target: 2000,
			want:   "1000/2000ml",
		},
		{
			name:   "met",
			total:  2000,
			target: 2000,
			want:   "2000/2000ml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := waterBar(tt.total, tt.target)
			if !strings.Contains(got, tt.want) {
				t.Errorf("waterBar(%d, %d) = %q, want it to contain %q",
					tt.total, tt.target, got, tt.want)
			}
		})
	}
}

func TestRootCmdFlags(t *testing.T) {
	if rootCmd.Use != "plate" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "plate")
	}
	if rootCmd.Short == "" {
		t.Error("Expected rootCmd.Short to be non-empty")
	}
	if rootCmd.Long == "" {
		t.Error("Expected rootCmd.Long to be non-empty")
	}
}

func TestFoodAddCmdFlags(t *testing.T) {
	for _, name := range []string{"category", "fiber", "sugar", "sodium"} {
		if foodAddCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected --%s flag on food add command", name)
		}
	}
}

func TestFoodListCmdFlags(t *testing.T) {
	if foodListCmd.Flags().Lookup("category") == nil {
		t.Error("Expected --category flag on food list command")
	}
	if foodListCmd.Flags().Lookup("favorites") == nil {
		t.Error("Expected --favorites flag on food list command")
	}
}

func TestLogCmdDateFlag(t *testing.T) {
	if logCmd.PersistentFlags().Lookup("date") == nil {
		t.Error("Expected persistent --date flag on log command")
	}
}

func TestWaterAddCmdFlags(t *testing.T) {
	if waterAddCmd.Flags().Lookup("ml") == nil {
		t.Error("Expected --ml flag on water add command")
	}
	if waterCmd.PersistentFlags().Lookup("date") == nil {
		t.Error("Expected persistent --date flag on water command")
	}
}

func TestGoalsSetCmdFlags(t *testing.T) {
	for _, name := range []string{"calories", "protein", "carbs", "fat", "water", "glass"} {
		if goalsSetCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected --%s flag on goals set command", name)
		}
	}
}

func TestExportCmdFlags(t *testing.T) {
	if exportCmd.Flags().Lookup("output") == nil {
		t.Error("Expected --output flag on export command")
	}
}

func TestGradeCmdFlags(t *testing.T) {
	if gradeCmd.Flags().Lookup("week") == nil {
		t.Error("Expected --week flag on grade command")
	}
}

func TestMealCmdSubcommands(t *testing.T) {
	expected := []string{"add", "ingredient", "remove", "list", "show", "favorite", "delete"}

	cmdNames := make(map[string]bool)
	for _, cmd := range mealCmd.Commands() {
		cmdNames[cmd.Name()] = true
	}

	for _, name := range expected {
		if !cmdNames[name] {
			t.Errorf("Expected meal subcommand %q not found", name)
		}
	}
}

func TestShopCmdSubcommands(t *testing.T) {
	expected := []string{"new", "add", "check", "list", "delete"}

	cmdNames := make(map[string]bool)
	for _, cmd := range shopCmd.Commands() {
		cmdNames[cmd.Name()] = true
	}

	for _, name := range expected {
		if !cmdNames[name] {
			t.Errorf("Expected shop subcommand %q not found", name)
		}
	}
}

func TestPlanCmdSubcommands(t *testing.T) {
	expected := []string{"set", "week", "clear"}

	cmdNames := make(map[string]bool)
	for _, cmd := range planCmd.Commands() {
		cmdNames[cmd.Name()] = true
	}

	for _, name := range expected {
		if !cmdNames[name] {
			t.Errorf("Expected plan subcommand %q not found", name)
		}
	}
}

func TestSyncCmdSubcommands(t *testing.T) {
	expected := []string{"link", "unlink", "status", "reset", "wipe"}

	cmdNames := make(map[string]bool)
	for _, cmd := range syncCmd.Commands() {
		cmdNames[cmd.Name()] = true
	}

	for _, name := range expected {
		if !cmdNames[name] {
			t.Errorf("Expected sync subcommand %q not found", name)
		}
	}
}

func TestTopLevelCommandsRegistered(t *testing.T) {
	expected := []string{"food", "meal", "log", "water", "grade", "badges",
		"plan", "shop", "goals", "body", "export", "import", "sync", "mcp"}

	cmdNames := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdNames[cmd.Name()] = true
	}

	for _, name := range expected {
		if !cmdNames[name] {
			t.Errorf("Expected command %q to be registered", name)
		}
	}
}

func TestBadgesCmdAliases(t *testing.T) {
	found := false
	for _, alias := range badgesCmd.Aliases {
		if alias == "b" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'b' alias for badgesCmd")
	}
}

func TestFoodListCmdAliases(t *testing.T) {
	found := false
	for _, alias := range foodListCmd.Aliases {
		if alias == "ls" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'ls' alias for foodListCmd")
	}
}

func TestMcpCmdLongDescription(t *testing.T) {
	if mcpCmd.Long == "" {
		t.Error("Expected mcpCmd.Long to be non-empty")
	}
}

func TestImportCmdLongDescription(t *testing.T) {
	if importCmd.Long == "" {
		t.Error("Expected importCmd.Long to be non-empty")
	}
}

// setupTestCLI points the CLI at a fresh sqlite database in a temp
// directory. The charm backend would reach for the network.
func setupTestCLI(t *testing.T) {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("PLATE_BACKEND", "sqlite")
	t.Setenv("PLATE_DATA_DIR", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
}

func TestFoodAddCmdWithStore(t *testing.T) {
	setupTestCLI(t)

	rootCmd.SetArgs([]string{"food", "add", "Cottage Cheese", "98", "11", "3.4", "4.3"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("food add command failed: %v", err)
	}

	found := false
	for _, f := range st.State().Foods {
		if f.Name == "Cottage Cheese" {
			found = true
			if f.Calories != 98 {
				t.Errorf("Expected 98 calories, got %g", f.Calories)
			}
		}
	}
	if !found {
		t.Error("Expected Cottage Cheese in the catalog")
	}
}

func TestFoodAddCmdNegativeValue(t *testing.T) {
	setupTestCLI(t)

	rootCmd.SetArgs([]string{"food", "add", "Bad Food", "-5", "0", "0", "0"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for negative calories")
	}
}

func TestFoodEditCmdWithStore(t *testing.T) {
	setupTestCLI(t)

	rootCmd.SetArgs([]string{"food", "edit", "Chicken Breast", "--calories", "170"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("food edit command failed: %v", err)
	}

	f, err := st.FindFood("Chicken Breast")
	if err != nil {
		t.Fatalf("FindFood failed: %v", err)
	}
	if f.Calories != 170 {
		t.Errorf("Expected 170 calories after edit, got %g", f.Calories)
	}
	if f.Protein != 31 {
		t.Errorf("Expected protein untouched at 31, got %g", f.Protein)
	}
}

func TestLogCmdWithStore(t *testing.T) {
	setupTestCLI(t)

	// Chicken Breast ships in the default catalog.
	rootCmd.SetArgs([]string{"log", "Chicken Breast", "150"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("log command failed: %v", err)
	}

	day := st.State().DailyMeals[models.DateKey(time.Now())]
	if len(day.Items) != 1 {
		t.Fatalf("Expected 1 diary item, got %d", len(day.Items))
	}
	if day.Items[0].Calories != 248 {
		t.Errorf("Expected 248 kcal for 150g chicken, got %d", day.Items[0].Calories)
	}
}

func TestLogCmdUnknownFood(t *testing.T) {
	setupTestCLI(t)

	rootCmd.SetArgs([]string{"log", "Unobtainium", "100"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for unknown food")
	}
}

func TestWaterAddCmdWithStore(t *testing.T) {
	setupTestCLI(t)

	// Two default glasses of 250ml.
	rootCmd.SetArgs([]string{"water", "add", "2"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("water add command failed: %v", err)
	}

	total := st.State().WaterIntake[models.DateKey(time.Now())]
	if total != 500 {
		t.Errorf("Expected 500ml total, got %d", total)
	}
}

func TestBodyCmdWithStore(t *testing.T) {
	setupTestCLI(t)

	rootCmd.SetArgs([]string{"body", "weight", "82.5"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("body weight command failed: %v", err)
	}

	entry := st.State().HealthData[models.DateKey(time.Now())]
	if entry.WeightKg == nil || *entry.WeightKg != 82.5 {
		t.Errorf("Expected weight 82.5, got %+v", entry)
	}
}

func TestBodyCmdInvalidType(t *testing.T) {
	setupTestCLI(t)

	rootCmd.SetArgs([]string{"body", "mood", "7"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for unknown measurement type")
	}
}

func TestGradeCmdWithStore(t *testing.T) {
	setupTestCLI(t)

	rootCmd.SetArgs([]string{"grade"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("grade command failed: %v", err)
	}
}

func TestShopCmdLifecycle(t *testing.T) {
	setupTestCLI(t)

	rootCmd.SetArgs([]string{"shop", "new", "Groceries"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("shop new failed: %v", err)
	}

	rootCmd.SetArgs([]string{"shop", "add", "Groceries", "Oats"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("shop add failed: %v", err)
	}

	rootCmd.SetArgs([]string{"shop", "check", "Groceries", "1"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("shop check failed: %v", err)
	}

	lists := st.State().ShoppingLists
	if len(lists) != 1 || len(lists[0].Items) != 1 {
		t.Fatalf("Expected one list with one item, got %+v", lists)
	}
	if !lists[0].Items[0].Checked {
		t.Error("Expected item to be checked")
	}
}

func TestPlanCmdWithStore(t *testing.T) {
	setupTestCLI(t)

	rootCmd.SetArgs([]string{"meal", "add", "Chicken Bowl"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("meal add failed: %v", err)
	}

	rootCmd.SetArgs([]string{"plan", "set", "2025-03-10", "Chicken Bowl"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("plan set failed: %v", err)
	}

	a := st.Assignment("2025-03-10")
	if a == nil || a.MealName != "Chicken Bowl" {
		t.Errorf("Expected Chicken Bowl planned for 2025-03-10, got %+v", a)
	}

	rootCmd.SetArgs([]string{"plan", "clear", "2025-03-10"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("plan clear failed: %v", err)
	}
	if st.Assignment("2025-03-10") != nil {
		t.Error("Expected assignment to be cleared")
	}
}

func TestExportToFileCmd(t *testing.T) {
	setupTestCLI(t)

	exportOutput = ""
	tmpFile := filepath.Join(t.TempDir(), "export.json")

	rootCmd.SetArgs([]string{"export", "json", "--output", tmpFile})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("export to file command failed: %v", err)
	}

	if _, err := os.Stat(tmpFile); os.IsNotExist(err) {
		t.Error("Expected export file to be created")
	}
}

func TestExportInvalidFormat(t *testing.T) {
	setupTestCLI(t)

	exportOutput = ""
	rootCmd.SetArgs([]string{"export", "xml"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for invalid export format")
	}
}

func TestImportCmdWithFile(t *testing.T) {
	setupTestCLI(t)

	importFile := filepath.Join(t.TempDir(), "import.json")
	jsonData := `{
		"version": "1.0",
		"exported_at": "2025-03-01T12:00:00Z",
		"tool": "plate",
		"categories": ["Imported"]
	}`
	if err := os.WriteFile(importFile, []byte(jsonData), 0644); err != nil {
		t.Fatalf("Failed to write import file: %v", err)
	}

	rootCmd.SetArgs([]string{"import", importFile})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("import command failed: %v", err)
	}

	cats := st.State().Categories
	if len(cats) != 1 || cats[0] != "Imported" {
		t.Errorf("Expected imported categories, got %v", cats)
	}
}

func TestImportCmdFileNotFound(t *testing.T) {
	setupTestCLI(t)

	rootCmd.SetArgs([]string{"import", "/nonexistent/file.json"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestSyncCmdRequiresCharmBackend(t *testing.T) {
	setupTestCLI(t)

	rootCmd.SetArgs([]string{"sync", "status"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected sync status to fail on the sqlite backend")
	}
}
