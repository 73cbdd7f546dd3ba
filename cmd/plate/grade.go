// ABOUTME: CLI commands for letter grades and achievement badges.
// ABOUTME: Grades score a day's totals; badges evaluate the 7-day window.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/plate-sh/plate/internal/achievements"
	"github.com/plate-sh/plate/internal/models"
	"github.com/plate-sh/plate/internal/nutrition"
	"github.com/spf13/cobra"
)

var gradeWeek bool

var gradeCmd = &cobra.Command{
	Use:   "grade [date]",
	Short: "Letter grade for a day's nutrition",
	Long: `Grade a day's intake against your goals.

The grade averages four actual/goal ratios (calories, protein, carbs,
fat) and maps the result onto A+ through F. A day with nothing logged
grades F.

Examples:
  plate grade                  # Today
  plate grade 2025-03-08       # A specific day
  plate grade --week           # The trailing 7 days`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := st.State()

		if gradeWeek {
			now := time.Now()
			for i := 6; i >= 0; i-- {
				date := models.DateKey(now.AddDate(0, 0, -i))
				day := snap.DailyMeals[date]
				totals := nutrition.SumDay(day)
				grade := nutrition.Grade(nutrition.Score(totals, snap.Settings))
				fmt.Printf("%s  %s  %4.0f kcal  %d items\n",
					date, gradeColor(grade), totals.Calories, len(day.Items))
			}
			return nil
		}

		flag := ""
		if len(args) == 1 {
			flag = args[0]
		}
		date, err := resolveDate(flag)
		if err != nil {
			return err
		}

		day := snap.DailyMeals[date]
		totals := nutrition.SumDay(day)
		score := nutrition.Score(totals, snap.Settings)
		fmt.Printf("%s  %s  (score %.2f)\n", date, gradeColor(nutrition.Grade(score)), score)
		fmt.Printf("  %.0f/%.0f kcal  %.1f/%.0fg protein  %.1f/%.0fg carbs  %.1f/%.0fg fat\n",
			totals.Calories, snap.Settings.CalorieGoal,
			totals.Protein, snap.Settings.ProteinGoal,
			totals.Carbs, snap.Settings.CarbsGoal,
			totals.Fat, snap.Settings.FatGoal)
		return nil
	},
}

var badgesCmd = &cobra.Command{
	Use:     "badges",
	Aliases: []string{"b"},
	Short:   "Achievement badges",
}

var badgesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List badges and unlock status",
	RunE: func(cmd *cobra.Command, args []string) error {
		printBadges(st.State().Badges)
		return nil
	},
}

var badgesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Re-evaluate achievements over the trailing 7 days",
	Long: `Re-run every achievement check.

Badges unlock one way: once earned they keep their original unlock
time even if a later week breaks the streak.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := st.State()
		evaluator := achievements.New()
		unlocked := evaluator.Evaluate(snap.Badges, snap.DailyMeals, snap.WaterIntake, snap.Settings)
		if len(unlocked) > 0 {
			st.SetBadges(snap.Badges)
			for _, b := range unlocked {
				color.Green("✓ Unlocked %s — %s", b.Name, b.Description)
			}
		} else {
			fmt.Println("No new badges.")
		}
		printBadges(snap.Badges)
		return nil
	},
}

func printBadges(badges []models.Badge) {
	faint := color.New(color.Faint)
	for _, b := range badges {
		mark := faint.Sprint("✗")
		when := ""
		if b.Unlocked {
			mark = color.GreenString("✓")
			if b.UnlockedAt != nil {
				when = faint.Sprintf("  %s", b.UnlockedAt.Format("2006-01-02 15:04"))
			}
		}
		fmt.Printf("%s %s %s%s\n", mark, padRight(b.Name, 16), faint.Sprint(b.Description), when)
	}
}

func init() {
	gradeCmd.Flags().BoolVar(&gradeWeek, "week", false, "grade the trailing 7 days")

	badgesCmd.AddCommand(badgesListCmd)
	badgesCmd.AddCommand(badgesCheckCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(badgesCmd)
}
