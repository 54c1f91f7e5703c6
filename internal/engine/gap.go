// ABOUTME: Nutrition gap analyzer comparing consumed intake against daily targets.
// ABOUTME: Consumption is a deterministic ledger sum with a time-of-day fallback.
package engine

import (
	"time"

	"github.com/harperreed/nutrient/internal/models"
)

// GapReport is the NutritionData-shaped result of gap analysis. For
// calories, protein, carbs, fat, and fiber the value is the amount still
// needed today. Sodium is the inverted-direction nutrient: its value is
// the amount over budget, because lower is better. Every field is >= 0.
type GapReport struct {
	Calories float64 `json:"calories"` // kcal still needed
	Protein  float64 `json:"protein"`  // g still needed
	Carbs    float64 `json:"carbs"`    // g still needed
	Fat      float64 `json:"fat"`      // g still needed
	Sodium   float64 `json:"sodium"`   // mg over budget
	Fiber    float64 `json:"fiber"`    // g still needed
}

// SumConsumed totals the nutrition of a day's logged meals.
func SumConsumed(meals []*models.MealEntry) models.NutritionData {
	var total models.NutritionData
	for _, m := range meals {
		total = total.Add(m.Nutrition)
	}
	return total
}

// EstimateConsumed approximates cumulative intake as a fixed share of
// the daily targets stepped at clock boundaries. This is a placeholder
// for an empty ledger, not a substitute for logged meals.
func EstimateConsumed(targets models.NutritionTargets, now time.Time) models.NutritionData {
	return targets.AsNutritionData().Scale(consumedRatio(now))
}

// consumedRatio steps at meal-boundary hours.
func consumedRatio(now time.Time) float64 {
	switch h := now.Hour(); {
	case h < 12:
		return 0.40
	case h < 18:
		return 0.65
	case h < 21:
		return 0.85
	default:
		return 0.95
	}
}

// ConsumedToday returns the ledger sum of today's meals, falling back to
// the time-of-day estimate when nothing has been logged.
func ConsumedToday(targets models.NutritionTargets, meals []*models.MealEntry, now time.Time) models.NutritionData {
	if len(meals) == 0 {
		return EstimateConsumed(targets, now)
	}
	return SumConsumed(meals)
}

// CalculateNutritionGap reports remaining amounts per nutrient, with
// sodium inverted to an over-budget amount.
func CalculateNutritionGap(targets models.NutritionTargets, consumed models.NutritionData) GapReport {
	return GapReport{
		Calories: remaining(float64(targets.Calories), consumed.Calories),
		Protein:  remaining(float64(targets.Protein), consumed.Protein),
		Carbs:    remaining(float64(targets.Carbs), consumed.Carbs),
		Fat:      remaining(float64(targets.Fat), consumed.Fat),
		Sodium:   remaining(consumed.Sodium, float64(targets.Sodium)),
		Fiber:    remaining(float64(targets.Fiber), consumed.Fiber),
	}
}

func remaining(target, consumed float64) float64 {
	if gap := target - consumed; gap > 0 {
		return gap
	}
	return 0
}
