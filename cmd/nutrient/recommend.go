// ABOUTME: CLI command for scored recipe recommendations.
// ABOUTME: Scores the catalog against goal, preferences, and today's gap.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/nutrient/internal/engine"
	"github.com/harperreed/nutrient/internal/models"
	"github.com/spf13/cobra"
)

var (
	recommendLimit      int
	recommendDifficulty []string
	recommendCookTime   int
	recommendGapFill    bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend recipes from the catalog",
	Long: `Recommend recipes scored against your health goal and preferences.

Each recipe accumulates score from additive rules: goal fit (low-calorie
for weight loss), high protein, novelty, difficulty match, cook time fit,
and popularity. Only recipes scoring above the recommendation threshold
are shown, best first, with up to two reasons each.

With --gap-fill, recipes are instead ranked by how well their protein
fills what's left of today's protein target.

EXAMPLES:

  nutrient recommend                       # Top 10 for your goal
  nutrient recommend -n 5 --difficulty easy
  nutrient recommend --cook-time 15        # Only quick recipes score time points
  nutrient recommend --gap-fill            # What closes today's protein gap`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if recommendGapFill {
			return runGapFill()
		}

		prefs := models.UserPreferences{CookTimeMinutes: recommendCookTime}
		for _, d := range recommendDifficulty {
			prefs.Difficulty = append(prefs.Difficulty, models.Difficulty(d))
		}

		var hist models.UserHistory
		goal := models.GoalMaintainHealth
		if profile, err := repo.GetProfile(); err == nil {
			goal = profile.HealthGoal
			hist.ProfileSnapshot = profile
		}

		results := engine.Recommend(recipes, prefs, hist, goal, recommendLimit)
		if len(results) == 0 {
			fmt.Println("No recipes scored above the recommendation threshold.")
			return nil
		}

		printRecommendations(results)
		return nil
	},
}

func runGapFill() error {
	profile, err := repo.GetProfile()
	if err != nil {
		return fmt.Errorf("gap-fill needs a profile: %w", err)
	}
	targets := engine.CalculateNutritionTargets(profile)

	now := time.Now()
	meals, err := repo.MealsForDay(now)
	if err != nil {
		return fmt.Errorf("failed to read meal ledger: %w", err)
	}

	consumed := engine.ConsumedToday(targets, meals, now)
	gap := engine.CalculateNutritionGap(targets, consumed)

	results := engine.GapFillingRecommendations(recipes, gap, recommendLimit)
	if len(results) == 0 {
		fmt.Println("Protein target already met; nothing to fill.")
		return nil
	}

	printRecommendations(results)
	return nil
}

func printRecommendations(results []models.RecommendationResult) {
	faint := color.New(color.Faint)
	for i, res := range results {
		fmt.Printf("%d. %s %s\n", i+1, res.Recipe.Name, faint.Sprintf("(%.0f kcal, %s, %d min)",
			res.Recipe.Nutrition.Calories, res.Recipe.Difficulty, res.Recipe.CookTimeMinutes))
		for _, reason := range res.Reasons {
			fmt.Printf("   %s %s\n", faint.Sprint("·"), reason)
		}
	}
}

func init() {
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 10, "max number of results")
	recommendCmd.Flags().StringSliceVar(&recommendDifficulty, "difficulty", nil, "acceptable difficulties (easy, medium, hard)")
	recommendCmd.Flags().IntVar(&recommendCookTime, "cook-time", 0, "cook time budget in minutes (default 30)")
	recommendCmd.Flags().BoolVar(&recommendGapFill, "gap-fill", false, "rank by today's remaining protein instead")
	rootCmd.AddCommand(recommendCmd)
}
