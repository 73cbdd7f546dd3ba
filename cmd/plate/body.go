// ABOUTME: CLI commands for per-date body measurements.
// ABOUTME: Records weight, steps, and sleep alongside the diary.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var bodyDate string

var bodyCmd = &cobra.Command{
	Use:   "body <type> <value>",
	Short: "Record body measurements",
	Long: `Record body measurements for a date.

MEASUREMENT TYPES:

  weight    Body weight in kg
  steps     Step count
  sleep     Sleep duration in hours

Examples:
  plate body weight 82.5
  plate body steps 10000 --date 2025-03-08
  plate body sleep 7.5
  plate body show`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(bodyDate)
		if err != nil {
			return err
		}

		entry := st.State().HealthData[date]
		switch args[0] {
		case "weight":
			v, err := strconv.ParseFloat(args[1], 64)
			if err != nil || v <= 0 {
				return fmt.Errorf("invalid weight: %s", args[1])
			}
			entry.WeightKg = &v
		case "steps":
			v, err := strconv.Atoi(args[1])
			if err != nil || v < 0 {
				return fmt.Errorf("invalid step count: %s", args[1])
			}
			entry.Steps = &v
		case "sleep":
			v, err := strconv.ParseFloat(args[1], 64)
			if err != nil || v < 0 {
				return fmt.Errorf("invalid sleep hours: %s", args[1])
			}
			entry.SleepHours = &v
		default:
			return fmt.Errorf("unknown measurement type %q (want weight, steps, or sleep)", args[0])
		}

		st.SetHealthEntry(date, entry)
		color.Green("✓ Recorded %s %s", args[0], args[1])
		fmt.Printf("  on %s\n", date)
		return nil
	},
}

var bodyShowCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show a date's measurements",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flag := bodyDate
		if len(args) == 1 {
			flag = args[0]
		}
		date, err := resolveDate(flag)
		if err != nil {
			return err
		}

		entry, ok := st.State().HealthData[date]
		if !ok {
			fmt.Printf("No measurements for %s.\n", date)
			return nil
		}
		fmt.Println(date)
		if entry.WeightKg != nil {
			fmt.Printf("  Weight: %.1fkg\n", *entry.WeightKg)
		}
		if entry.Steps != nil {
			fmt.Printf("  Steps:  %d\n", *entry.Steps)
		}
		if entry.SleepHours != nil {
			fmt.Printf("  Sleep:  %.1fh\n", *entry.SleepHours)
		}
		return nil
	},
}

func init() {
	bodyCmd.PersistentFlags().StringVar(&bodyDate, "date", "", "date (YYYY-MM-DD, default today)")
	bodyCmd.AddCommand(bodyShowCmd)
	rootCmd.AddCommand(bodyCmd)
}
