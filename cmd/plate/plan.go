// ABOUTME: CLI commands for the weekly meal plan.
// ABOUTME: One assignment per date; setting a date replaces its entry.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/plate-sh/plate/internal/models"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:     "plan",
	Aliases: []string{"p"},
	Short:   "Weekly meal planning",
	Long: `Plan meals for the week ahead.

Each date holds at most one planned meal. Planning a meal for a date
that already has one replaces the old assignment.

Examples:
  plate plan set 2025-03-10 "Chicken Bowl"
  plate plan week
  plate plan clear 2025-03-10`,
}

var planSetCmd = &cobra.Command{
	Use:   "set <date> <meal>",
	Short: "Plan a meal for a date",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(args[0])
		if err != nil {
			return err
		}
		a, err := st.Assign(date, args[1])
		if err != nil {
			return err
		}
		color.Green("✓ Planned %s for %s", a.MealName, a.Date)
		return nil
	},
}

var planWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the next 7 days of the plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		now := time.Now()
		for i := 0; i < 7; i++ {
			day := now.AddDate(0, 0, i)
			date := models.DateKey(day)
			label := fmt.Sprintf("%s %s", date, day.Format("Mon"))
			if a := st.Assignment(date); a != nil {
				fmt.Printf("%s  %s\n", label, a.MealName)
			} else {
				fmt.Printf("%s  %s\n", label, faint.Sprint("—"))
			}
		}
		return nil
	},
}

var planClearCmd = &cobra.Command{
	Use:   "clear <date>",
	Short: "Remove the plan entry for a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(args[0])
		if err != nil {
			return err
		}
		st.ClearAssignment(date)
		color.Green("✓ Cleared plan for %s", date)
		return nil
	},
}

func init() {
	planCmd.AddCommand(planSetCmd)
	planCmd.AddCommand(planWeekCmd)
	planCmd.AddCommand(planClearCmd)
	rootCmd.AddCommand(planCmd)
}
