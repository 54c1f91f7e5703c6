// ABOUTME: Metabolic calculator: BMR, TDEE, goal calories, and macro targets.
// ABOUTME: Pure functions over HealthProfile; deterministic, no side effects.
package engine

import (
	"math"

	"github.com/harperreed/nutrient/internal/models"
)

// Activity multipliers applied to BMR to obtain TDEE.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivityLight:    1.375,
	models.ActivityModerate: 1.55,
	models.ActivityHeavy:    1.725,
}

// Calorie adjustments per health goal, in kcal/day.
const (
	weightLossDeficit  = 500
	muscleGainSurplus  = 300
	sodiumTargetMg     = 2300
	lowSodiumTargetMg  = 1500
	kcalPerGramProtein = 4
	kcalPerGramCarb    = 4
	kcalPerGramFat     = 9
)

// macroSplit is a protein/carb/fat calorie allocation.
type macroSplit struct {
	protein float64
	carbs   float64
	fat     float64
}

var baselineSplit = macroSplit{protein: 0.25, carbs: 0.45, fat: 0.30}

// CalculateBMR computes basal metabolic rate in kcal/day using the
// revised Harris-Benedict equation.
func CalculateBMR(p *models.HealthProfile) float64 {
	if p.Gender == models.Female {
		return 447.593 + 9.247*p.WeightKg + 3.098*p.HeightCm - 4.330*float64(p.Age)
	}
	return 88.362 + 13.397*p.WeightKg + 4.799*p.HeightCm - 5.677*float64(p.Age)
}

// CalculateTDEE scales BMR by the profile's activity multiplier.
func CalculateTDEE(p *models.HealthProfile) float64 {
	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		mult = activityMultipliers[models.ActivityModerate]
	}
	return CalculateBMR(p) * mult
}

// AdjustCaloriesForGoal applies the goal's calorie delta to TDEE.
// The result can go negative for pathological TDEE inputs; clamping for
// display is the caller's responsibility.
func AdjustCaloriesForGoal(tdee float64, goal models.HealthGoal) float64 {
	switch goal {
	case models.GoalWeightLoss:
		return tdee - weightLossDeficit
	case models.GoalMuscleGain:
		return tdee + muscleGainSurplus
	default:
		return tdee
	}
}

// splitForProfile returns the macro calorie allocation for the profile's
// goal, including special-nutrition focus overrides.
func splitForProfile(p *models.HealthProfile) macroSplit {
	switch p.HealthGoal {
	case models.GoalWeightLoss:
		return macroSplit{protein: 0.30, carbs: 0.35, fat: 0.35}
	case models.GoalMuscleGain:
		return macroSplit{protein: 0.30, carbs: 0.45, fat: 0.25}
	case models.GoalSpecialNutrition:
		switch p.SpecialFocus {
		case models.FocusHighProtein:
			return macroSplit{protein: 0.35, carbs: 0.35, fat: 0.30}
		case models.FocusLowCarb:
			return macroSplit{protein: 0.30, carbs: 0.20, fat: 0.50}
		}
	}
	return baselineSplit
}

// CalculateMacronutrients converts a daily calorie figure into gram
// targets using the profile's macro split, plus the sodium and fiber
// targets from the profile's focus, age, and gender.
func CalculateMacronutrients(calories float64, p *models.HealthProfile) models.NutritionTargets {
	split := splitForProfile(p)

	sodium := sodiumTargetMg
	if p.HealthGoal == models.GoalSpecialNutrition && p.SpecialFocus == models.FocusLowSodium {
		sodium = lowSodiumTargetMg
	}

	return models.NutritionTargets{
		Calories: int(math.Round(calories)),
		Protein:  int(math.Round(calories * split.protein / kcalPerGramProtein)),
		Carbs:    int(math.Round(calories * split.carbs / kcalPerGramCarb)),
		Fat:      int(math.Round(calories * split.fat / kcalPerGramFat)),
		Sodium:   sodium,
		Fiber:    fiberTarget(p),
	}
}

// fiberTarget returns the daily fiber target in grams by age and gender.
func fiberTarget(p *models.HealthProfile) int {
	if p.Gender == models.Female {
		if p.Age > 50 {
			return 21
		}
		return 25
	}
	if p.Age > 50 {
		return 30
	}
	return 38
}

// CalculateNutritionTargets composes BMR, TDEE, the goal adjustment, and
// the macro split. A nil profile yields the documented fixed defaults so
// the app can render before profile setup.
func CalculateNutritionTargets(p *models.HealthProfile) models.NutritionTargets {
	if p == nil {
		return models.DefaultTargets()
	}
	tdee := CalculateTDEE(p)
	calories := AdjustCaloriesForGoal(tdee, p.HealthGoal)
	return CalculateMacronutrients(calories, p)
}
