// ABOUTME: CLI command for adjusting nutrition values.
// ABOUTME: Applies scenario, taste, and portion coefficients to raw values.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/nutrient/internal/engine"
	"github.com/harperreed/nutrient/internal/models"
	"github.com/spf13/cobra"
)

var (
	adjustScenario string
	adjustTaste    string
	adjustPortion  string
)

var adjustCmd = &cobra.Command{
	Use:   "adjust <calories> [protein] [carbs] [fat] [sodium] [fiber]",
	Short: "Adjust nutrition values for how you actually eat",
	Long: `Adjust recipe nutrition values for eating scenario, taste, and
portion size.

Recipe databases quote nutrition for a standard home-cooked serving.
Restaurant food is saltier and oilier, heavy taste means more of both,
and a large portion is simply more food. This command applies your
stored adjustment settings (see 'nutrient settings') to raw values;
flags override individual settings for a one-off calculation.

EXAMPLES:

  nutrient adjust 780 32 45 38.5 1190 3
  nutrient adjust 500 --scenario restaurant --portion large`,
	Args: cobra.RangeArgs(1, 6),
	RunE: func(cmd *cobra.Command, args []string) error {
		values := make([]float64, 6)
		for i, arg := range args {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("invalid value: %s", arg)
			}
			values[i] = v
		}

		settings, err := repo.GetSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}

		if adjustScenario != "" {
			settings.Scenario = models.Scenario(adjustScenario)
		}
		if adjustTaste != "" {
			settings.Taste = models.Taste(adjustTaste)
		}
		if adjustPortion != "" {
			settings.Portion = models.Portion(adjustPortion)
		}
		if err := settings.Validate(); err != nil {
			return err
		}

		original := models.NutritionData{
			Calories: values[0],
			Protein:  values[1],
			Carbs:    values[2],
			Fat:      values[3],
			Sodium:   values[4],
			Fiber:    values[5],
		}
		adjusted := engine.ApplyNutritionAdjustment(original, settings)

		faint := color.New(color.Faint)
		fmt.Printf("  %s %.0f kcal %s %.0f kcal\n", faint.Sprint("calories:"), original.Calories, faint.Sprint("→"), adjusted.Calories)
		fmt.Printf("  %s %.1f g %s %.1f g\n", faint.Sprint("protein: "), original.Protein, faint.Sprint("→"), adjusted.Protein)
		fmt.Printf("  %s %.1f g %s %.1f g\n", faint.Sprint("carbs:   "), original.Carbs, faint.Sprint("→"), adjusted.Carbs)
		fmt.Printf("  %s %.1f g %s %.1f g\n", faint.Sprint("fat:     "), original.Fat, faint.Sprint("→"), adjusted.Fat)
		fmt.Printf("  %s %.0f mg %s %.0f mg\n", faint.Sprint("sodium:  "), original.Sodium, faint.Sprint("→"), adjusted.Sodium)
		fmt.Printf("  %s %.1f g %s %.1f g\n", faint.Sprint("fiber:   "), original.Fiber, faint.Sprint("→"), adjusted.Fiber)

		return nil
	},
}

func init() {
	adjustCmd.Flags().StringVar(&adjustScenario, "scenario", "", "override eating scenario for this calculation")
	adjustCmd.Flags().StringVar(&adjustTaste, "taste", "", "override taste preference")
	adjustCmd.Flags().StringVar(&adjustPortion, "portion", "", "override portion size")
	rootCmd.AddCommand(adjustCmd)
}
