// ABOUTME: CLI commands for meal plan generation and display.
// ABOUTME: Generation is quota-limited by membership tier.
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

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a daily meal plan",
	Long: `Generate a daily meal plan from the recipe catalog.

The daily calorie target is split 30/40/30 across breakfast, lunch, and
dinner, and each slot gets a small set of recipes tagged for that meal
time (2 for breakfast, 3 for lunch and dinner).

QUOTA:

  Free accounts can generate one plan per day. Set "tier": "plus" in the
  config for unlimited regeneration.

EXAMPLES:

  nutrient plan           # Generate and save a new plan
  nutrient plan show      # Show the latest saved plan`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := repo.GetProfile()
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("failed to read profile: %w", err)
		}
		targets := engine.CalculateNutritionTargets(profile)

		gen := &engine.QuotaLimitedGenerator{Counter: repo, Tier: cfg.GetTier()}
		plan, err := gen.Generate(targets, recipes, time.Now())
		if err != nil {
			if errors.Is(err, engine.ErrQuotaExceeded) {
				color.Red("✗ %v", err)
				return nil
			}
			return err
		}

		if err := repo.SaveMealPlan(plan); err != nil {
			return fmt.Errorf("failed to save meal plan: %w", err)
		}

		color.Green("✓ Meal plan generated")
		printPlan(plan)
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the latest meal plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := repo.LatestMealPlan()
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				fmt.Println("No meal plan generated yet. Run 'nutrient plan' first.")
				return nil
			}
			return fmt.Errorf("failed to read meal plan: %w", err)
		}

		fmt.Printf("Generated %s\n", plan.GeneratedAt.Format("2006-01-02 15:04"))
		printPlan(plan)
		return nil
	},
}

func printPlan(plan *models.MealPlan) {
	faint := color.New(color.Faint)
	for _, s := range plan.Slots() {
		fmt.Printf("\n%s %s\n", string(s.Time),
			faint.Sprintf("(target %d kcal, selected %d kcal)", s.Slot.TargetCalories, s.Slot.ActualCalories))
		for _, r := range s.Slot.Recipes {
			fmt.Printf("  - %s %s\n", r.Name,
				faint.Sprintf("(%.0f kcal, %d min)", r.Nutrition.Calories, r.CookTimeMinutes))
		}
	}
}

func init() {
	planCmd.AddCommand(planShowCmd)
	rootCmd.AddCommand(planCmd)
}
