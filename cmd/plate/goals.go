// ABOUTME: CLI commands for nutrition goals and water settings.
// ABOUTME: Flags not passed leave the matching setting untouched.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	goalCalories float64
	goalProtein  float64
	goalCarbs    float64
	goalFat      float64
	goalWater    int
	goalGlass    int
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Daily nutrition goals",
	Long: `View and set daily nutrition goals.

Goals drive the letter grade and the balanced-week badge. Only the
flags you pass change; everything else keeps its current value.

Examples:
  plate goals show
  plate goals set --calories 2200 --protein 140
  plate goals set --water 2500 --glass 330`,
}

var goalsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := st.State().Settings
		fmt.Printf("Calories: %.0f kcal\n", s.CalorieGoal)
		fmt.Printf("Protein:  %.0fg\n", s.ProteinGoal)
		fmt.Printf("Carbs:    %.0fg\n", s.CarbsGoal)
		fmt.Printf("Fat:      %.0fg\n", s.FatGoal)
		fmt.Printf("Water:    %dml (glass %dml)\n", s.WaterTargetML, s.WaterGlassML)
		return nil
	},
}

var goalsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := st.State().Settings
		if cmd.Flags().Changed("calories") {
			if goalCalories <= 0 {
				return fmt.Errorf("calorie goal must be positive, got %.0f", goalCalories)
			}
			s.CalorieGoal = goalCalories
		}
		if cmd.Flags().Changed("protein") {
			if goalProtein <= 0 {
				return fmt.Errorf("protein goal must be positive, got %.0f", goalProtein)
			}
			s.ProteinGoal = goalProtein
		}
		if cmd.Flags().Changed("carbs") {
			if goalCarbs <= 0 {
				return fmt.Errorf("carbs goal must be positive, got %.0f", goalCarbs)
			}
			s.CarbsGoal = goalCarbs
		}
		if cmd.Flags().Changed("fat") {
			if goalFat <= 0 {
				return fmt.Errorf("fat goal must be positive, got %.0f", goalFat)
			}
			s.FatGoal = goalFat
		}
		if cmd.Flags().Changed("water") {
			if goalWater <= 0 {
				return fmt.Errorf("water target must be positive, got %d", goalWater)
			}
			s.WaterTargetML = goalWater
		}
		if cmd.Flags().Changed("glass") {
			if goalGlass <= 0 {
				return fmt.Errorf("glass size must be positive, got %d", goalGlass)
			}
			s.WaterGlassML = goalGlass
		}
		st.SetSettings(s)
		color.Green("✓ Goals updated")
		return nil
	},
}

func init() {
	goalsSetCmd.Flags().Float64Var(&goalCalories, "calories", 0, "daily calorie goal (kcal)")
	goalsSetCmd.Flags().Float64Var(&goalProtein, "protein", 0, "daily protein goal (g)")
	goalsSetCmd.Flags().Float64Var(&goalCarbs, "carbs", 0, "daily carbs goal (g)")
	goalsSetCmd.Flags().Float64Var(&goalFat, "fat", 0, "daily fat goal (g)")
	goalsSetCmd.Flags().IntVar(&goalWater, "water", 0, "daily water target (ml)")
	goalsSetCmd.Flags().IntVar(&goalGlass, "glass", 0, "glass size (ml)")

	goalsCmd.AddCommand(goalsShowCmd)
	goalsCmd.AddCommand(goalsSetCmd)
	rootCmd.AddCommand(goalsCmd)
}
