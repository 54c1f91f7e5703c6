// ABOUTME: CLI command showing remaining nutrition room for today.
// ABOUTME: Sums the meal ledger against targets; sodium reported as over-budget.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/nutrient/internal/engine"
	"github.com/harperreed/nutrient/internal/models"
	"github.com/spf13/cobra"
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Show remaining nutrition room for today",
	Long: `Show how much nutrition room is left for the rest of today.

The gap is computed from your daily targets minus everything logged in
today's meal ledger. When nothing has been logged yet, a time-of-day
estimate is used instead (40% consumed before noon, 65% before 18:00,
85% before 21:00, 95% after).

Sodium runs the other way: the report shows how far OVER the sodium
budget you are, since lower is better. Zero means you're fine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := repo.GetProfile()
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("failed to read profile: %w", err)
		}
		targets := engine.CalculateNutritionTargets(profile)

		now := time.Now()
		meals, err := repo.MealsForDay(now)
		if err != nil {
			return fmt.Errorf("failed to read meal ledger: %w", err)
		}

		consumed := engine.ConsumedToday(targets, meals, now)
		gap := engine.CalculateNutritionGap(targets, consumed)

		if len(meals) == 0 {
			color.Yellow("Nothing logged today; using a time-of-day estimate.")
		} else {
			fmt.Printf("Based on %d logged meal(s):\n", len(meals))
		}

		faint := color.New(color.Faint)
		fmt.Printf("  %s %.0f kcal to go\n", faint.Sprint("calories:"), gap.Calories)
		fmt.Printf("  %s %.1f g to go\n", faint.Sprint("protein: "), gap.Protein)
		fmt.Printf("  %s %.1f g to go\n", faint.Sprint("carbs:   "), gap.Carbs)
		fmt.Printf("  %s %.1f g to go\n", faint.Sprint("fat:     "), gap.Fat)
		fmt.Printf("  %s %.1f g to go\n", faint.Sprint("fiber:   "), gap.Fiber)
		if gap.Sodium > 0 {
			color.Red("  sodium:   %.0f mg OVER budget", gap.Sodium)
		} else {
			fmt.Printf("  %s within budget\n", faint.Sprint("sodium:  "))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(gapCmd)
}
