// ABOUTME: Root Cobra command for plate CLI.
// ABOUTME: Handles config, backend, and store lifecycle via PersistentPre/PostRunE.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/plate-sh/plate/internal/config"
	"github.com/plate-sh/plate/internal/models"
	"github.com/plate-sh/plate/internal/store"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	st  *store.Store

	// backend is kept for the sync commands, which need Charm specifics.
	backend store.Backend
)

var rootCmd = &cobra.Command{
	Use:   "plate",
	Short: "Personal nutrition tracker",
	Long: `Plate is a CLI tool for tracking what you eat.

WHAT IT TRACKS:

  Catalog    foods with per-100g calories, protein, carbs, fat
  Meals      reusable ingredient compositions with derived totals
  Diary      what you actually ate each day, scaled to grams
  Water      cumulative daily intake in ml
  Extras     weekly meal plan, shopping lists, body measurements

QUICK START:

  $ plate log "Chicken Breast" 150      # Log 150g of chicken today
  $ plate log show                      # See today's diary and grade
  $ plate water add                     # Log one glass of water
  $ plate grade                         # Letter grade for today
  $ plate badges check                  # Re-evaluate achievements

MEALS:

  $ plate meal add "Chicken and Rice"           # Create a meal
  $ plate meal ingredient "Chicken and Rice" "Chicken Breast" 150
  $ plate log meal "Chicken and Rice"           # Log all its ingredients

SYNC (CHARM BACKEND):

  Sync nutrition data across devices using Charm Cloud.
  Data is E2E encrypted with your SSH key.

  $ plate sync link      # Link device to your Charm account
  $ plate sync status    # Check sync status

MCP INTEGRATION:

  Run 'plate mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  One JSON snapshot of all app state, stored in Charm KV by default or
  SQLite with 'backend: sqlite' in ~/.config/plate/config.json.
  Writes are debounced and flushed on exit.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		backend, err = cfg.OpenBackend()
		if err != nil {
			return fmt.Errorf("failed to open storage backend: %w", err)
		}

		st = store.Open(cmd.Context(), backend)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if st != nil {
			// Close flushes any pending debounced write.
			return st.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

// resolveDate validates a --date flag value, defaulting to today.
func resolveDate(s string) (string, error) {
	if s == "" {
		return models.DateKey(time.Now()), nil
	}
	if _, err := models.ParseDateKey(s); err != nil {
		return "", fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return s, nil
}
