// ABOUTME: Root Cobra command for nutrient CLI.
// ABOUTME: Opens the configured storage backend and catalog before each command.
package main

import (
	"fmt"

	"github.com/harperreed/nutrient/internal/config"
	"github.com/harperreed/nutrient/internal/models"
	"github.com/harperreed/nutrient/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	repo    storage.Repository
	recipes []models.Recipe
)

var rootCmd = &cobra.Command{
	Use:   "nutrient",
	Short: "Personal nutrition tracking engine",
	Long: `Nutrient is a CLI tool for tracking daily nutrition against
personalized targets.

WHAT IT DOES:

  Targets        BMR/TDEE-based daily calorie and macro targets
  Adjustments    Scenario, taste, and portion coefficients for real meals
  Meal Log       A daily ledger of what you actually ate
  Gap Analysis   What room is left for the rest of the day
  Recommend      Scored recipe suggestions from the catalog
  Meal Plans     A 30/40/30 breakfast/lunch/dinner plan for tomorrow

QUICK START:

  $ nutrient profile set --age 30 --gender male --height 175 \
      --weight 75 --activity moderate --goal weight_loss
  $ nutrient targets                  # See your daily targets
  $ nutrient log "chicken bowl" 520 --slot lunch --protein 38
  $ nutrient gap                      # What's left for today
  $ nutrient recommend                # What to cook next
  $ nutrient plan                     # Generate tomorrow's plan

MCP INTEGRATION:

  Run 'nutrient mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "nutrient": { "command": "nutrient", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in a local SQLite database at ~/.local/share/nutrient by
  default. Set "backend": "charm" in the config for E2E-encrypted sync
  via Charm Cloud.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		recipes, err = cfg.OpenCatalog()
		if err != nil {
			return fmt.Errorf("failed to load recipe catalog: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
