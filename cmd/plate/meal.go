// ABOUTME: CLI commands for composing reusable meals.
// ABOUTME: Ingredient changes always recompute the meal's derived totals.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/plate-sh/plate/internal/models"
	"github.com/spf13/cobra"
)

var mealCmd = &cobra.Command{
	Use:     "meal",
	Aliases: []string{"m"},
	Short:   "Manage reusable meals",
	Long: `Compose meals from catalog foods at gram quantities.

A meal's totals (calories, protein, carbs, fat, ingredient count) are
derived from its ingredients and recomputed on every change.

EXAMPLES:

  plate meal add "Chicken and Rice"
  plate meal ingredient "Chicken and Rice" "Chicken Breast" 150
  plate meal ingredient "Chicken and Rice" "White Rice (cooked)" 200
  plate meal show "Chicken and Rice"`,
}

var mealAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new empty meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := models.NewMeal(args[0])
		st.AddMeal(*m)

		color.Green("✓ Added meal %s", m.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(m.ID.String()[:8]))
		return nil
	},
}

var mealIngredientCmd = &cobra.Command{
	Use:     "ingredient <meal> <food> <grams>",
	Aliases: []string{"ing"},
	Short:   "Add a food to a meal at a gram quantity",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		grams, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid grams: %s", args[2])
		}

		meal, err := st.AddIngredient(args[0], args[1], grams)
		if err != nil {
			return err
		}

		color.Green("✓ Added %s (%.0fg) to %s", args[1], grams, meal.Name)
		fmt.Printf("  now %d kcal, %d ingredients\n",
			meal.Totals.Calories, meal.Totals.IngredientCount)
		return nil
	},
}

var mealRemoveIngredientCmd = &cobra.Command{
	Use:   "remove <meal> <position>",
	Short: "Remove an ingredient by list position (1-based)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := strconv.Atoi(args[1])
		if err != nil || pos < 1 {
			return fmt.Errorf("invalid position: %s", args[1])
		}
		if err := st.RemoveIngredient(args[0], pos-1); err != nil {
			return err
		}
		color.Green("✓ Removed ingredient %d from %s", pos, args[0])
		return nil
	},
}

var mealListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := st.State()
		if len(snap.Meals) == 0 {
			fmt.Println("No meals found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range snap.Meals {
			star := "  "
			if m.IsFavorite {
				star = "★ "
			}
			fmt.Printf("%s %s%s %d kcal  %d ingredients\n",
				faint.Sprint(m.ID.String()[:8]),
				star,
				padRight(m.Name, 24),
				m.Totals.Calories, m.Totals.IngredientCount)
		}
		return nil
	},
}

var mealShowCmd = &cobra.Command{
	Use:   "show <meal>",
	Short: "Show a meal with its ingredients and totals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := st.FindMeal(args[0])
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n", color.New(color.Bold).Sprint(m.Name),
			faint.Sprint(m.ID.String()[:8]))
		for i, ing := range m.Ingredients {
			fmt.Printf("  %d. %s %.0fg\n", i+1, padRight(ing.Name, 24), ing.Grams)
		}
		fmt.Printf("  %d kcal  %.1fp %.1fc %.1ff\n",
			m.Totals.Calories, m.Totals.Protein, m.Totals.Carbs, m.Totals.Fat)
		return nil
	},
}

var mealFavoriteCmd = &cobra.Command{
	Use:     "favorite <meal>",
	Aliases: []string{"fav"},
	Short:   "Toggle a meal's favorite flag",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fav, err := st.ToggleFavoriteMeal(args[0])
		if err != nil {
			return err
		}
		if fav {
			color.Green("✓ Favorited %s", args[0])
		} else {
			fmt.Printf("Unfavorited %s\n", args[0])
		}
		return nil
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:     "delete <meal>",
	Aliases: []string{"rm"},
	Short:   "Delete a meal",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := st.DeleteMeal(args[0]); err != nil {
			return err
		}
		color.Green("✓ Deleted %s", args[0])
		return nil
	},
}

func init() {
	mealCmd.AddCommand(mealAddCmd)
	mealCmd.AddCommand(mealIngredientCmd)
	mealCmd.AddCommand(mealRemoveIngredientCmd)
	mealCmd.AddCommand(mealListCmd)
	mealCmd.AddCommand(mealShowCmd)
	mealCmd.AddCommand(mealFavoriteCmd)
	mealCmd.AddCommand(mealDeleteCmd)
	rootCmd.AddCommand(mealCmd)
}
