// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/plate-sh/plate/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your nutrition data
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "plate": {
        "command": "plate",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  log_food      Log a food to the diary by name or ID
  log_meal      Log a saved meal to the diary
  add_food      Add a food to the catalog
  list_foods    List the food catalog
  add_water     Record water intake
  day_summary   Totals, water, and grade for a day
  check_badges  Re-evaluate achievements
  set_goals     Update daily nutrition goals

AVAILABLE RESOURCES:

  plate://today    Today's diary, totals, water, and grade
  plate://week     The trailing 7 days of totals and grades
  plate://catalog  The full food catalog`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(st)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
