// ABOUTME: CLI command showing daily nutrition targets.
// ABOUTME: Computes BMR, TDEE, and macro targets from the stored profile.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/nutrient/internal/engine"
	"github.com/harperreed/nutrient/internal/models"
	"github.com/spf13/cobra"
)

var targetsVerbose bool

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Show daily nutrition targets",
	Long: `Show the daily nutrition targets computed from your profile.

Targets come from the revised Harris-Benedict BMR, multiplied by the
activity level, adjusted for the health goal (-500 kcal for weight loss,
+300 for muscle gain), and split into macros per the goal.

Without a profile, generic defaults (2000 kcal) are shown.

Use --verbose to also show the intermediate BMR and TDEE values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := repo.GetProfile()
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("failed to read profile: %w", err)
		}

		targets := engine.CalculateNutritionTargets(profile)
		if profile == nil {
			color.Yellow("No profile set; showing default targets.")
		}

		if targetsVerbose && profile != nil {
			bmr := engine.CalculateBMR(profile)
			tdee := engine.CalculateTDEE(profile)
			faint := color.New(color.Faint)
			fmt.Printf("  %s %.0f kcal\n", faint.Sprint("BMR: "), bmr)
			fmt.Printf("  %s %.0f kcal\n", faint.Sprint("TDEE:"), tdee)
			fmt.Println()
		}

		printTargets(targets)
		return nil
	},
}

func printTargets(t models.NutritionTargets) {
	faint := color.New(color.Faint)
	fmt.Printf("  %s %d kcal\n", faint.Sprint("calories:"), t.Calories)
	fmt.Printf("  %s %d g\n", faint.Sprint("protein: "), t.Protein)
	fmt.Printf("  %s %d g\n", faint.Sprint("carbs:   "), t.Carbs)
	fmt.Printf("  %s %d g\n", faint.Sprint("fat:     "), t.Fat)
	fmt.Printf("  %s %d mg\n", faint.Sprint("sodium:  "), t.Sodium)
	fmt.Printf("  %s %d g\n", faint.Sprint("fiber:   "), t.Fiber)
}

func init() {
	targetsCmd.Flags().BoolVarP(&targetsVerbose, "verbose", "v", false, "show BMR and TDEE")
	rootCmd.AddCommand(targetsCmd)
}
