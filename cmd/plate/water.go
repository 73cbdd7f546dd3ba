// ABOUTME: CLI commands for water-intake tracking.
// ABOUTME: Adds glasses or ml to a date's cumulative total.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	waterDate string
	waterML   int
)

var waterCmd = &cobra.Command{
	Use:     "water",
	Aliases: []string{"w"},
	Short:   "Track water intake",
	Long: `Track daily water intake in ml.

'water add' with no flags logs one glass at the configured glass size.

Examples:
  plate water add              # One glass
  plate water add 3            # Three glasses
  plate water add --ml 500     # Exact amount
  plate water show`,
}

var waterAddCmd = &cobra.Command{
	Use:   "add [glasses]",
	Short: "Add water for a date",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(waterDate)
		if err != nil {
			return err
		}

		settings := st.State().Settings
		ml := waterML
		if ml == 0 {
			glasses := 1
			if len(args) == 1 {
				glasses, err = strconv.Atoi(args[0])
				if err != nil || glasses < 1 {
					return fmt.Errorf("invalid glass count: %s", args[0])
				}
			}
			ml = glasses * settings.WaterGlassML
		}

		total, err := st.AddWater(date, ml)
		if err != nil {
			return err
		}

		color.Green("✓ Added %dml", ml)
		fmt.Printf("  %s  %s\n", date, waterBar(total, settings.WaterTargetML))
		return nil
	},
}

var waterShowCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show a date's water intake against the target",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flag := waterDate
		if len(args) == 1 {
			flag = args[0]
		}
		date, err := resolveDate(flag)
		if err != nil {
			return err
		}

		settings := st.State().Settings
		fmt.Printf("%s  %s\n", date, waterBar(st.Water(date), settings.WaterTargetML))
		return nil
	},
}

// waterBar renders "1250/2000ml [██████----]".
func waterBar(total, target int) string {
	if target <= 0 {
		return fmt.Sprintf("%dml", total)
	}
	filled := total * 10 / target
	if filled > 10 {
		filled = 10
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("-", 10-filled)
	s := fmt.Sprintf("%d/%dml [%s]", total, target, bar)
	if total >= target {
		return color.GreenString(s)
	}
	return s
}

func init() {
	waterCmd.PersistentFlags().StringVar(&waterDate, "date", "", "date (YYYY-MM-DD, default today)")
	waterAddCmd.Flags().IntVar(&waterML, "ml", 0, "exact amount in ml (overrides glasses)")

	waterCmd.AddCommand(waterAddCmd)
	waterCmd.AddCommand(waterShowCmd)
	rootCmd.AddCommand(waterCmd)
}
