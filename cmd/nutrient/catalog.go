// ABOUTME: CLI command listing the recipe catalog.
// ABOUTME: Supports filtering by meal time.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/nutrient/internal/models"
	"github.com/spf13/cobra"
)

var catalogMealTime string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the recipe catalog",
	Long: `List the recipes available for recommendations and meal plans.

The built-in catalog can be replaced by setting "catalog_path" in the
config to a JSON file with the same shape.

EXAMPLES:

  nutrient catalog                   # All recipes
  nutrient catalog --meal breakfast  # Only breakfast-tagged recipes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if catalogMealTime != "" && !models.IsValidMealTime(catalogMealTime) {
			return fmt.Errorf("unknown meal time: %s", catalogMealTime)
		}

		faint := color.New(color.Faint)
		shown := 0
		for _, r := range recipes {
			if catalogMealTime != "" && !r.SuitsMealTime(models.MealTime(catalogMealTime)) {
				continue
			}
			marker := " "
			if r.IsNew {
				marker = color.GreenString("*")
			}
			fmt.Printf("%s %s %s %s\n",
				marker,
				padRight(r.ID, 22),
				padRight(truncate(r.Name, 30), 30),
				faint.Sprintf("%.0f kcal, %.0fg protein, %s, %d min",
					r.Nutrition.Calories, r.Nutrition.Protein, r.Difficulty, r.CookTimeMinutes))
			shown++
		}

		if shown == 0 {
			fmt.Println("No recipes match.")
			return nil
		}
		fmt.Printf("\n%d recipe(s). %s\n", shown, faint.Sprint("* = new arrival"))
		return nil
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogMealTime, "meal", "", "filter by meal time (breakfast, lunch, dinner, snack)")
	rootCmd.AddCommand(catalogCmd)
}
