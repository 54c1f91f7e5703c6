// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/nutrient/internal/mcp"
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
      "nutrient": {
        "command": "nutrient",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  set_profile         Create or replace the health profile
  get_targets         Daily nutrition targets from the profile
  adjust_nutrition    Scenario/taste/portion adjustment
  log_meal            Record a consumed meal
  list_meals          List logged meals
  delete_meal         Delete a meal by ID
  nutrition_gap       Remaining room for today
  recommend_recipes   Scored recipe recommendations
  generate_meal_plan  Generate a daily meal plan

AVAILABLE RESOURCES:

  nutrient://targets/today   Targets, consumption, and remaining gap
  nutrient://log/today       Today's meal log
  nutrient://plan/latest     The latest generated meal plan`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, recipes, cfg.GetTier())
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
