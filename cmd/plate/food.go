// ABOUTME: CLI commands for managing the food catalog.
// ABOUTME: Supports add, list, favorite, and delete with prefix lookup.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/plate-sh/plate/internal/models"
	"github.com/spf13/cobra"
)

var (
	foodCategory string
	foodFiber    float64
	foodSugar    float64
	foodSodium   float64

	foodListCategory  string
	foodListFavorites bool
)

var foodCmd = &cobra.Command{
	Use:     "food",
	Aliases: []string{"f"},
	Short:   "Manage the food catalog",
}

var foodAddCmd = &cobra.Command{
	Use:   "add <name> <calories> <protein> <carbs> <fat>",
	Short: "Add a food with per-100g nutrition",
	Long: `Add a food to the catalog. Values are per 100g.

Examples:
  plate food add "Chicken Breast" 165 31 0 3.6
  plate food add "Rolled Oats" 389 16.9 66.3 6.9 --category grains
  plate food add "Lentils" 116 9 20 0.4 --fiber 7.9`,
	Args: cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		values := make([]float64, 4)
		for i, arg := range args[1:] {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil || v < 0 {
				return fmt.Errorf("invalid nutrient value: %s", arg)
			}
			values[i] = v
		}

		f := models.NewFoodItem(name, values[0], values[1], values[2], values[3])
		if foodCategory != "" {
			f.WithCategory(foodCategory)
		}
		if cmd.Flags().Changed("fiber") {
			f.WithFiber(foodFiber)
		}
		if cmd.Flags().Changed("sugar") {
			f.WithSugar(foodSugar)
		}
		if cmd.Flags().Changed("sodium") {
			f.WithSodium(foodSodium)
		}
		st.AddFood(*f)

		color.Green("✓ Added %s", name)
		fmt.Printf("  %s %.0f kcal  %.1fp %.1fc %.1ff per 100g\n",
			color.New(color.Faint).Sprint(f.ID.String()[:8]),
			f.Calories, f.Protein, f.Carbs, f.Fat)
		return nil
	},
}

var foodListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List catalog foods",
	Long: `List foods in the catalog.

OUTPUT FORMAT:

  Each line shows: ID  NAME  KCAL  PROTEIN/CARBS/FAT  CATEGORY

  The ID is an 8-character prefix you can use with other food commands.

EXAMPLES:

  plate food list                    # Whole catalog
  plate food list --category grains  # One category
  plate food list --favorites        # Only favorites`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := st.State()

		faint := color.New(color.Faint)
		shown := 0
		for _, f := range snap.Foods {
			if foodListCategory != "" && f.Category != foodListCategory {
				continue
			}
			if foodListFavorites && !f.IsFavorite {
				continue
			}
			star := "  "
			if f.IsFavorite {
				star = "★ "
			}
			fmt.Printf("%s %s%s %.0f kcal  %.1fp %.1fc %.1ff%s\n",
				faint.Sprint(f.ID.String()[:8]),
				star,
				padRight(f.Name, 24),
				f.Calories, f.Protein, f.Carbs, f.Fat,
				faint.Sprintf("  %s", f.Category))
			shown++
		}
		if shown == 0 {
			fmt.Println("No foods found.")
		}
		return nil
	},
}

var foodShowCmd = &cobra.Command{
	Use:   "show <food>",
	Short: "Show one food's full nutrition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := st.FindFood(args[0])
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s  %s\n", f.Name, faint.Sprint(f.ID.String()[:8]))
		if f.Category != "" {
			fmt.Printf("  Category: %s\n", f.Category)
		}
		fmt.Printf("  Per 100g: %.0f kcal  %.1fp %.1fc %.1ff\n",
			f.Calories, f.Protein, f.Carbs, f.Fat)
		if f.Fiber != nil {
			fmt.Printf("  Fiber:    %.1fg\n", *f.Fiber)
		}
		if f.Sugar != nil {
			fmt.Printf("  Sugar:    %.1fg\n", *f.Sugar)
		}
		if f.Sodium != nil {
			fmt.Printf("  Sodium:   %.0fmg\n", *f.Sodium)
		}
		return nil
	},
}

var (
	foodEditCalories float64
	foodEditProtein  float64
	foodEditCarbs    float64
	foodEditFat      float64
	foodEditCategory string
	foodEditName     string
)

var foodEditCmd = &cobra.Command{
	Use:   "edit <food>",
	Short: "Edit a food's nutrition",
	Long: `Edit a catalog food. Only the flags you pass change.

Meal totals that use the food are recomputed; diary entries keep the
nutrition they were logged with.

Examples:
  plate food edit "Chicken Breast" --calories 170
  plate food edit "Rolled Oats" --name "Oats" --category grains`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, flag := range []struct {
			name  string
			value float64
		}{
			{"calories", foodEditCalories},
			{"protein", foodEditProtein},
			{"carbs", foodEditCarbs},
			{"fat", foodEditFat},
		} {
			if cmd.Flags().Changed(flag.name) && flag.value < 0 {
				return fmt.Errorf("invalid %s value: %g", flag.name, flag.value)
			}
		}

		err := st.UpdateFood(args[0], func(f *models.FoodItem) {
			if cmd.Flags().Changed("name") {
				f.Name = foodEditName
			}
			if cmd.Flags().Changed("category") {
				f.Category = foodEditCategory
			}
			if cmd.Flags().Changed("calories") {
				f.Calories = foodEditCalories
			}
			if cmd.Flags().Changed("protein") {
				f.Protein = foodEditProtein
			}
			if cmd.Flags().Changed("carbs") {
				f.Carbs = foodEditCarbs
			}
			if cmd.Flags().Changed("fat") {
				f.Fat = foodEditFat
			}
		})
		if err != nil {
			return err
		}
		color.Green("✓ Updated %s", args[0])
		return nil
	},
}

var foodFavoriteCmd = &cobra.Command{
	Use:     "favorite <food>",
	Aliases: []string{"fav"},
	Short:   "Toggle a food's favorite flag",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fav, err := st.ToggleFavoriteFood(args[0])
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

var foodDeleteCmd = &cobra.Command{
	Use:     "delete <food>",
	Aliases: []string{"rm"},
	Short:   "Delete a food from the catalog",
	Long: `Delete a food by name or ID prefix.

Meals and diary entries keep their denormalized names; the deleted food
simply stops contributing to recomputed meal totals.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := st.DeleteFood(args[0]); err != nil {
			return err
		}
		color.Green("✓ Deleted %s", args[0])
		return nil
	},
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	foodAddCmd.Flags().StringVarP(&foodCategory, "category", "c", "", "catalog category")
	foodAddCmd.Flags().Float64Var(&foodFiber, "fiber", 0, "fiber g per 100g")
	foodAddCmd.Flags().Float64Var(&foodSugar, "sugar", 0, "sugar g per 100g")
	foodAddCmd.Flags().Float64Var(&foodSodium, "sodium", 0, "sodium mg per 100g")

	foodListCmd.Flags().StringVarP(&foodListCategory, "category", "c", "", "filter by category")
	foodListCmd.Flags().BoolVar(&foodListFavorites, "favorites", false, "only favorites")

	foodEditCmd.Flags().StringVar(&foodEditName, "name", "", "rename the food")
	foodEditCmd.Flags().StringVarP(&foodEditCategory, "category", "c", "", "catalog category")
	foodEditCmd.Flags().Float64Var(&foodEditCalories, "calories", 0, "kcal per 100g")
	foodEditCmd.Flags().Float64Var(&foodEditProtein, "protein", 0, "protein g per 100g")
	foodEditCmd.Flags().Float64Var(&foodEditCarbs, "carbs", 0, "carbs g per 100g")
	foodEditCmd.Flags().Float64Var(&foodEditFat, "fat", 0, "fat g per 100g")

	foodCmd.AddCommand(foodAddCmd)
	foodCmd.AddCommand(foodListCmd)
	foodCmd.AddCommand(foodShowCmd)
	foodCmd.AddCommand(foodEditCmd)
	foodCmd.AddCommand(foodFavoriteCmd)
	foodCmd.AddCommand(foodDeleteCmd)
	rootCmd.AddCommand(foodCmd)
}
