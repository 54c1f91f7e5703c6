// ABOUTME: CLI commands for the daily meal ledger.
// ABOUTME: Handles logging, listing, and deleting meal entries.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/nutrient/internal/engine"
	"github.com/harperreed/nutrient/internal/models"
	"github.com/spf13/cobra"
)

var (
	logSlot     string
	logProtein  float64
	logCarbs    float64
	logFat      float64
	logSodium   float64
	logFiber    float64
	logAt       string
	logNotes    string
	logRecipeID string
	logAdjusted bool
)

var logCmd = &cobra.Command{
	Use:   "log <name> <calories>",
	Short: "Log a consumed meal",
	Long: `Log a consumed meal in the daily ledger.

The ledger is what the gap analyzer sums to figure out how much room is
left for the rest of the day. Calories are required; macros are optional
but make gap analysis much more useful.

EXAMPLES:

  nutrient log "chicken bowl" 520 --slot lunch --protein 38 --carbs 45
  nutrient log "oatmeal" 310 --slot breakfast --at "2026-03-01 08:00"
  nutrient log "pad thai" 780 --slot dinner --adjusted

Use --adjusted to run the values through your adjustment settings first
(restaurant portions, heavy taste, and so on).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		calories, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid calories: %s", args[1])
		}

		if !models.IsValidMealTime(logSlot) {
			return fmt.Errorf("unknown meal slot: %s (use breakfast, lunch, dinner, or snack)", logSlot)
		}

		nutrition := models.NutritionData{
			Calories: calories,
			Protein:  logProtein,
			Carbs:    logCarbs,
			Fat:      logFat,
			Sodium:   logSodium,
			Fiber:    logFiber,
		}

		if logAdjusted {
			settings, err := repo.GetSettings()
			if err != nil {
				return fmt.Errorf("failed to read settings: %w", err)
			}
			nutrition = engine.ApplyNutritionAdjustment(nutrition, settings)
		}

		m := models.NewMealEntry(name, models.MealTime(logSlot), nutrition)

		if logAt != "" {
			t, err := parseTime(logAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", logAt)
			}
			m.WithRecordedAt(t)
		}
		if logNotes != "" {
			m.WithNotes(logNotes)
		}
		if logRecipeID != "" {
			m.WithRecipeID(logRecipeID)
		}

		if err := repo.CreateMeal(m); err != nil {
			return fmt.Errorf("failed to log meal: %w", err)
		}

		color.Green("✓ Logged %s", logSlot)
		fmt.Printf("  %s %s, %.0f kcal\n",
			color.New(color.Faint).Sprint(m.ID.String()[:8]),
			m.Name, m.Nutrition.Calories)

		return nil
	},
}

var (
	listSlot  string
	listLimit int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List logged meals",
	Long: `List recent meals from the daily ledger.

OUTPUT FORMAT:

  Each line shows: ID  TIMESTAMP  SLOT  NAME  KCAL  (NOTES)

  The ID is an 8-character prefix you can use with 'nutrient delete'.

EXAMPLES:

  nutrient list                    # Show last 20 meals
  nutrient list --slot lunch       # Show only lunches
  nutrient list -n 50              # Show last 50 meals`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var slot *models.MealTime
		if listSlot != "" {
			if !models.IsValidMealTime(listSlot) {
				return fmt.Errorf("unknown meal slot: %s", listSlot)
			}
			mt := models.MealTime(listSlot)
			slot = &mt
		}

		meals, err := repo.ListMeals(slot, listLimit)
		if err != nil {
			return fmt.Errorf("failed to list meals: %w", err)
		}

		if len(meals) == 0 {
			fmt.Println("No meals logged.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range meals {
			notes := ""
			if m.Notes != nil && *m.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*m.Notes, 30))
			}
			fmt.Printf("%s %s %s %s %.0f kcal%s\n",
				faint.Sprint(m.ID.String()[:8]),
				faint.Sprint(m.RecordedAt.Format("2006-01-02 15:04")),
				padRight(string(m.Slot), 10),
				padRight(truncate(m.Name, 24), 24),
				m.Nutrition.Calories,
				notes)
		}

		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a logged meal",
	Long: `Delete a logged meal by its ID or ID prefix.

You can use either the full UUID or just the first few characters. The
ID prefix is shown in the first column of 'nutrient list' output.

If the prefix matches multiple meals, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idOrPrefix := args[0]

		// Show what we're deleting
		meal, err := repo.GetMeal(idOrPrefix)
		if err != nil {
			return fmt.Errorf("meal not found: %s", idOrPrefix)
		}

		if err := repo.DeleteMeal(idOrPrefix); err != nil {
			return fmt.Errorf("failed to delete meal: %w", err)
		}

		color.Yellow("✗ Deleted %s", meal.Slot)
		fmt.Printf("  %s %s, %.0f kcal\n",
			color.New(color.Faint).Sprint(meal.ID.String()[:8]),
			meal.Name, meal.Nutrition.Calories)

		return nil
	},
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	logCmd.Flags().StringVarP(&logSlot, "slot", "s", "snack", "meal slot (breakfast, lunch, dinner, snack)")
	logCmd.Flags().Float64Var(&logProtein, "protein", 0, "protein in grams")
	logCmd.Flags().Float64Var(&logCarbs, "carbs", 0, "carbohydrates in grams")
	logCmd.Flags().Float64Var(&logFat, "fat", 0, "fat in grams")
	logCmd.Flags().Float64Var(&logSodium, "sodium", 0, "sodium in milligrams")
	logCmd.Flags().Float64Var(&logFiber, "fiber", 0, "fiber in grams")
	logCmd.Flags().StringVar(&logAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "notes for the meal")
	logCmd.Flags().StringVar(&logRecipeID, "recipe", "", "catalog recipe id this meal came from")
	logCmd.Flags().BoolVar(&logAdjusted, "adjusted", false, "apply adjustment settings before logging")

	listCmd.Flags().StringVarP(&listSlot, "slot", "s", "", "filter by meal slot")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
}
