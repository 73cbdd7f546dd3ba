// ABOUTME: CLI commands for the daily food diary.
// ABOUTME: Logs foods or whole meals to a date, shows totals and grade.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/plate-sh/plate/internal/nutrition"
	"github.com/spf13/cobra"
)

var logDate string

var logCmd = &cobra.Command{
	Use:     "log <food> <grams>",
	Aliases: []string{"eat"},
	Short:   "Log a food to the diary",
	Long: `Log a catalog food to the diary at a gram quantity.

The diary line carries nutrition already scaled to the logged grams,
so later catalog edits never rewrite history.

Examples:
  plate log "Chicken Breast" 150
  plate log Banana 120 --date 2025-03-08
  plate log meal "Chicken and Rice"
  plate log show`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("usage: plate log <food> <grams>")
		}

		grams, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid grams: %s", args[1])
		}
		date, err := resolveDate(logDate)
		if err != nil {
			return err
		}

		item, err := st.LogFood(date, args[0], grams)
		if err != nil {
			return err
		}

		color.Green("✓ Logged %s", item.Name)
		fmt.Printf("  %.0fg  %d kcal  %.1fp %.1fc %.1ff  on %s\n",
			item.Grams, item.Calories, item.Protein, item.Carbs, item.Fat, date)
		return nil
	},
}

var logMealCmd = &cobra.Command{
	Use:   "meal <meal>",
	Short: "Log every ingredient of a saved meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(logDate)
		if err != nil {
			return err
		}

		items, err := st.LogMeal(date, args[0])
		if err != nil {
			return err
		}

		total := 0
		for _, item := range items {
			total += item.Calories
		}
		color.Green("✓ Logged %s", args[0])
		fmt.Printf("  %d items  %d kcal  on %s\n", len(items), total, date)
		return nil
	},
}

var logShowCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show a day's diary with totals and grade",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flag := logDate
		if len(args) == 1 {
			flag = args[0]
		}
		date, err := resolveDate(flag)
		if err != nil {
			return err
		}

		snap := st.State()
		day := snap.DailyMeals[date]
		if len(day.Items) == 0 {
			fmt.Printf("Nothing logged on %s.\n", date)
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s\n", color.New(color.Bold).Sprint(date))
		for i, item := range day.Items {
			fmt.Printf("  %d. %s %s %d kcal  %.1fp %.1fc %.1ff\n",
				i+1, padRight(item.Name, 24),
				faint.Sprintf("%.0fg", item.Grams),
				item.Calories, item.Protein, item.Carbs, item.Fat)
		}

		totals := nutrition.SumDay(day)
		grade := nutrition.Grade(nutrition.Score(totals, snap.Settings))
		fmt.Printf("  total %.0f kcal  %.1fp %.1fc %.1ff  water %dml  grade %s\n",
			totals.Calories, totals.Protein, totals.Carbs, totals.Fat,
			snap.WaterIntake[date], gradeColor(grade))
		return nil
	},
}

var logRemoveCmd = &cobra.Command{
	Use:   "remove <position>",
	Short: "Remove a diary line by position (1-based)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := strconv.Atoi(args[0])
		if err != nil || pos < 1 {
			return fmt.Errorf("invalid position: %s", args[0])
		}
		date, err := resolveDate(logDate)
		if err != nil {
			return err
		}

		if err := st.RemoveLogItem(date, pos-1); err != nil {
			return err
		}
		color.Green("✓ Removed item %d from %s", pos, date)
		return nil
	},
}

// gradeColor renders a grade green for A range, yellow for B/C, red below.
func gradeColor(grade string) string {
	switch grade[0] {
	case 'A':
		return color.GreenString(grade)
	case 'B', 'C':
		return color.YellowString(grade)
	default:
		return color.RedString(grade)
	}
}

func init() {
	logCmd.PersistentFlags().StringVar(&logDate, "date", "", "diary date (YYYY-MM-DD, default today)")

	logCmd.AddCommand(logMealCmd)
	logCmd.AddCommand(logShowCmd)
	logCmd.AddCommand(logRemoveCmd)
	rootCmd.AddCommand(logCmd)
}
