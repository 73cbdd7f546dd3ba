// ABOUTME: CLI commands for shopping lists.
// ABOUTME: Lists are referenced by UUID prefix or exact name, items by position.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/plate-sh/plate/internal/models"
	"github.com/spf13/cobra"
)

var shopQuantity string

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Shopping lists",
	Long: `Manage shopping lists.

Lists are referenced by ID prefix or exact name, items by their
1-based position on the list.

Examples:
  plate shop new "Weekly groceries"
  plate shop add "Weekly groceries" "Chicken breast" --qty 1kg
  plate shop check "Weekly groceries" 1
  plate shop list
  plate shop delete "Weekly groceries"`,
}

var shopNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a shopping list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list := models.NewShoppingList(args[0])
		st.AddShoppingList(*list)
		color.Green("✓ Created list %s", list.Name)
		fmt.Printf("  ID: %s\n", list.ID.String()[:8])
		return nil
	},
}

var shopAddCmd = &cobra.Command{
	Use:   "add <list> <item>",
	Short: "Add an item to a list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := st.AddShoppingItem(args[0], args[1], shopQuantity); err != nil {
			return err
		}
		color.Green("✓ Added %s", args[1])
		return nil
	},
}

var shopCheckCmd = &cobra.Command{
	Use:   "check <list> <position>",
	Short: "Toggle an item's checked state",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := strconv.Atoi(args[1])
		if err != nil || pos < 1 {
			return fmt.Errorf("position must be a positive number, got %q", args[1])
		}
		checked, err := st.ToggleShoppingItem(args[0], pos-1)
		if err != nil {
			return err
		}
		if checked {
			color.Green("✓ Checked item %d", pos)
		} else {
			fmt.Printf("Unchecked item %d\n", pos)
		}
		return nil
	},
}

var shopListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show all shopping lists",
	RunE: func(cmd *cobra.Command, args []string) error {
		lists := st.State().ShoppingLists
		if len(lists) == 0 {
			fmt.Println("No shopping lists. Create one with 'plate shop new'.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, l := range lists {
			done := 0
			for _, item := range l.Items {
				if item.Checked {
					done++
				}
			}
			fmt.Printf("%s %s %s\n",
				faint.Sprint(l.ID.String()[:8]), l.Name,
				faint.Sprintf("(%d/%d)", done, len(l.Items)))
			for i, item := range l.Items {
				mark := " "
				if item.Checked {
					mark = color.GreenString("✓")
				}
				line := item.Name
				if item.Quantity != "" {
					line += faint.Sprintf(" (%s)", item.Quantity)
				}
				fmt.Printf("  %d. [%s] %s\n", i+1, mark, line)
			}
		}
		return nil
	},
}

var shopDeleteCmd = &cobra.Command{
	Use:     "delete <list>",
	Aliases: []string{"rm"},
	Short:   "Delete a shopping list",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := st.DeleteShoppingList(args[0]); err != nil {
			return err
		}
		color.Green("✓ Deleted list")
		return nil
	},
}

func init() {
	shopAddCmd.Flags().StringVar(&shopQuantity, "qty", "", "quantity note, e.g. '1kg' or '2 packs'")

	shopCmd.AddCommand(shopNewCmd)
	shopCmd.AddCommand(shopAddCmd)
	shopCmd.AddCommand(shopCheckCmd)
	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopDeleteCmd)
	rootCmd.AddCommand(shopCmd)
}
