// ABOUTME: HealthProfile model with gender, activity, and goal enums.
// ABOUTME: Drives all target computations; validated at the input boundary.
package models

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks user input rejected at the boundary before it
// reaches the engine.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound marks a lookup that matched no record.
var ErrNotFound = errors.New("not found")

// Gender of the profile owner, as used by the Harris-Benedict equation.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ActivityLevel scales BMR into TDEE.
type ActivityLevel string

const (
	ActivityLight    ActivityLevel = "light"
	ActivityModerate ActivityLevel = "moderate"
	ActivityHeavy    ActivityLevel = "heavy"
)

// HealthGoal selects the calorie adjustment and macro split.
type HealthGoal string

const (
	GoalWeightLoss       HealthGoal = "weight_loss"
	GoalMuscleGain       HealthGoal = "muscle_gain"
	GoalMaintainHealth   HealthGoal = "maintain_health"
	GoalSpecialNutrition HealthGoal = "special_nutrition"
)

// SpecialFocus refines the special_nutrition goal.
type SpecialFocus string

const (
	FocusNone        SpecialFocus = ""
	FocusLowSodium   SpecialFocus = "low_sodium"
	FocusHighProtein SpecialFocus = "high_protein"
	FocusLowCarb     SpecialFocus = "low_carb"
	FocusHighFiber   SpecialFocus = "high_fiber"
)

// MaxBodyWeightKg is the upper bound accepted for body weight entry.
const MaxBodyWeightKg = 300

// HealthProfile holds the user's physical stats and nutrition goal.
// Created at profile setup, changed only by explicit edits.
type HealthProfile struct {
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	HeightCm      float64       `json:"height_cm"`
	WeightKg      float64       `json:"weight_kg"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	HealthGoal    HealthGoal    `json:"health_goal"`
	SpecialFocus  SpecialFocus  `json:"special_focus,omitempty"`
}

// Validate rejects out-of-range or unknown-enum profiles before they
// reach the engine. The engine itself assumes pre-validated values.
func (p *HealthProfile) Validate() error {
	if p.Age <= 0 {
		return fmt.Errorf("%w: age must be positive", ErrInvalidInput)
	}
	if p.HeightCm <= 0 {
		return fmt.Errorf("%w: height must be positive", ErrInvalidInput)
	}
	if p.WeightKg <= 0 || p.WeightKg > MaxBodyWeightKg {
		return fmt.Errorf("%w: weight must be in (0, %d] kg", ErrInvalidInput, MaxBodyWeightKg)
	}
	switch p.Gender {
	case Male, Female:
	default:
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, p.Gender)
	}
	switch p.ActivityLevel {
	case ActivityLight, ActivityModerate, ActivityHeavy:
	default:
		return fmt.Errorf("%w: unknown activity level %q", ErrInvalidInput, p.ActivityLevel)
	}
	switch p.HealthGoal {
	case GoalWeightLoss, GoalMuscleGain, GoalMaintainHealth, GoalSpecialNutrition:
	default:
		return fmt.Errorf("%w: unknown health goal %q", ErrInvalidInput, p.HealthGoal)
	}
	switch p.SpecialFocus {
	case FocusNone, FocusLowSodium, FocusHighProtein, FocusLowCarb, FocusHighFiber:
	default:
		return fmt.Errorf("%w: unknown special focus %q", ErrInvalidInput, p.SpecialFocus)
	}
	return nil
}

// NutritionTargets is the daily target derived from a HealthProfile.
// It is recomputed on every read and never stored, so it cannot go
// stale relative to the profile.
type NutritionTargets struct {
	Calories int `json:"calories"` // kcal
	Protein  int `json:"protein"`  // g
	Carbs    int `json:"carbs"`    // g
	Fat      int `json:"fat"`      // g
	Sodium   int `json:"sodium"`   // mg
	Fiber    int `json:"fiber"`    // g
}

// AsNutritionData converts targets to the shared sample type.
func (t NutritionTargets) AsNutritionData() NutritionData {
	return NutritionData{
		Calories: float64(t.Calories),
		Protein:  float64(t.Protein),
		Carbs:    float64(t.Carbs),
		Fat:      float64(t.Fat),
		Sodium:   float64(t.Sodium),
		Fiber:    float64(t.Fiber),
	}
}

// DefaultTargets is returned whenever no profile exists, so the rest of
// the app can render without one.
func DefaultTargets() NutritionTargets {
	return NutritionTargets{
		Calories: 2000,
		Protein:  120,
		Carbs:    250,
		Fat:      65,
		Sodium:   2300,
		Fiber:    25,
	}
}
