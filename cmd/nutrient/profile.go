// ABOUTME: CLI commands for managing the health profile.
// ABOUTME: Supports set, show, and clear subcommands.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/nutrient/internal/models"
	"github.com/spf13/cobra"
)

var (
	profileAge      int
	profileGender   string
	profileHeight   float64
	profileWeight   float64
	profileActivity string
	profileGoal     string
	profileFocus    string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the health profile",
	Long: `Manage the health profile used to compute daily nutrition targets.

The profile drives the Harris-Benedict BMR calculation, activity-based
TDEE, and the goal-specific calorie and macro split. Without a profile,
generic default targets (2000 kcal) are used everywhere.`,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or replace the profile",
	Long: `Create or replace the health profile.

EXAMPLES:

  nutrient profile set --age 30 --gender male --height 175 \
      --weight 75 --activity moderate --goal weight_loss

  nutrient profile set --age 45 --gender female --height 162 \
      --weight 58 --activity light --goal special_nutrition --focus low_sodium

VALUES:

  --gender    male, female
  --activity  light, moderate, heavy
  --goal      weight_loss, muscle_gain, maintain_health, special_nutrition
  --focus     low_sodium, high_protein, low_carb, high_fiber
              (only meaningful with --goal special_nutrition)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := &models.HealthProfile{
			Age:           profileAge,
			Gender:        models.Gender(profileGender),
			HeightCm:      profileHeight,
			WeightKg:      profileWeight,
			ActivityLevel: models.ActivityLevel(profileActivity),
			HealthGoal:    models.HealthGoal(profileGoal),
			SpecialFocus:  models.SpecialFocus(profileFocus),
		}

		if err := repo.SetProfile(p); err != nil {
			return fmt.Errorf("failed to set profile: %w", err)
		}

		color.Green("✓ Profile saved")
		printProfile(p)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetProfile()
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				fmt.Println("No profile set. Run 'nutrient profile set' first.")
				return nil
			}
			return fmt.Errorf("failed to read profile: %w", err)
		}

		printProfile(p)
		return nil
	},
}

var profileClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.ClearProfile(); err != nil {
			return fmt.Errorf("failed to clear profile: %w", err)
		}
		color.Yellow("✗ Profile cleared")
		return nil
	},
}

func printProfile(p *models.HealthProfile) {
	faint := color.New(color.Faint)
	fmt.Printf("  %s %s, age %d\n", faint.Sprint("who:     "), p.Gender, p.Age)
	fmt.Printf("  %s %.0f cm, %.1f kg\n", faint.Sprint("body:    "), p.HeightCm, p.WeightKg)
	fmt.Printf("  %s %s\n", faint.Sprint("activity:"), p.ActivityLevel)
	if p.SpecialFocus != models.FocusNone {
		fmt.Printf("  %s %s (%s)\n", faint.Sprint("goal:    "), p.HealthGoal, p.SpecialFocus)
	} else {
		fmt.Printf("  %s %s\n", faint.Sprint("goal:    "), p.HealthGoal)
	}
}

func init() {
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age in years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "male or female")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "body weight in kg (max 300)")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "activity level (light, moderate, heavy)")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "health goal")
	profileSetCmd.Flags().StringVar(&profileFocus, "focus", "", "special nutrition focus")
	_ = profileSetCmd.MarkFlagRequired("age")
	_ = profileSetCmd.MarkFlagRequired("gender")
	_ = profileSetCmd.MarkFlagRequired("height")
	_ = profileSetCmd.MarkFlagRequired("weight")
	_ = profileSetCmd.MarkFlagRequired("activity")
	_ = profileSetCmd.MarkFlagRequired("goal")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileClearCmd)
	rootCmd.AddCommand(profileCmd)
}
