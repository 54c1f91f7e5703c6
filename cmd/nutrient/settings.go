// ABOUTME: CLI commands for adjustment settings (scenario, taste, portion).
// ABOUTME: Supports show and set subcommands.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/nutrient/internal/engine"
	"github.com/harperreed/nutrient/internal/models"
	"github.com/spf13/cobra"
)

var (
	settingsScenario string
	settingsTaste    string
	settingsPortion  string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show adjustment settings",
	Long: `Show or change the nutrition adjustment settings.

Adjustment settings describe how you usually eat, and scale recipe
nutrition values accordingly:

  scenario   home (x1.0), restaurant (x1.25), canteen (x1.1)
  taste      light (x0.7), normal (x1.0), heavy (x1.4)
  portion    small (x0.7), medium (x1.0), large (x1.5)

Taste and scenario apply fully to fat and sodium; calories only pick up
30% of that effect. Portion scales everything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := repo.GetSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}

		printSettings(s)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change adjustment settings",
	Long: `Change one or more adjustment settings. Unspecified settings keep
their current value.

EXAMPLES:

  nutrient settings set --scenario restaurant
  nutrient settings set --taste light --portion small`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := repo.GetSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}

		if settingsScenario != "" {
			s.Scenario = models.Scenario(settingsScenario)
		}
		if settingsTaste != "" {
			s.Taste = models.Taste(settingsTaste)
		}
		if settingsPortion != "" {
			s.Portion = models.Portion(settingsPortion)
		}

		if err := repo.SetSettings(s); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		color.Green("✓ Settings saved")
		printSettings(s)
		return nil
	},
}

func printSettings(s models.AdjustmentSettings) {
	coef := engine.CalculateAdjustmentCoefficients(s)
	faint := color.New(color.Faint)
	fmt.Printf("  %s %-12s x%.2f\n", faint.Sprint("scenario:"), s.Scenario, coef.Scenario)
	fmt.Printf("  %s %-12s x%.2f\n", faint.Sprint("taste:   "), s.Taste, coef.Taste)
	fmt.Printf("  %s %-12s x%.2f\n", faint.Sprint("portion: "), s.Portion, coef.Portion)
}

func init() {
	settingsSetCmd.Flags().StringVar(&settingsScenario, "scenario", "", "eating scenario (home, restaurant, canteen)")
	settingsSetCmd.Flags().StringVar(&settingsTaste, "taste", "", "taste preference (light, normal, heavy)")
	settingsSetCmd.Flags().StringVar(&settingsPortion, "portion", "", "portion size (small, medium, large)")

	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}
