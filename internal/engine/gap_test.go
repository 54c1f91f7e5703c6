// ABOUTME: Tests for the nutrition gap analyzer.
// ABOUTME: Covers ledger sums, time-bucket fallback, and sodium inversion.
package engine

import (
	"testing"
	"time"

	"github.com/harperreed/nutrient/internal/models"
)

func dayTargets() models.NutritionTargets {
	return models.NutritionTargets{Calories: 2000, Protein: 120, Carbs: 250, Fat: 65, Sodium: 2300, Fiber: 25}
}

func TestSumConsumed(t *testing.T) {
	meals := []*models.MealEntry{
		models.NewMealEntry("oatmeal", models.Breakfast, models.NutritionData{Calories: 310, Protein: 11, Carbs: 54, Fat: 6, Sodium: 150, Fiber: 8}),
		models.NewMealEntry("chicken bowl", models.Lunch, models.NutritionData{Calories: 520, Protein: 38, Carbs: 45, Fat: 18, Sodium: 680, Fiber: 5}),
	}
	total := SumConsumed(meals)
	if total.Calories != 830 || total.Protein != 49 || total.Sodium != 830 {
		t.Errorf("sum = %+v", total)
	}
}

func TestSumConsumedEmpty(t *testing.T) {
	if got := SumConsumed(nil); !got.IsZero() {
		t.Errorf("empty ledger sum = %+v, want zero", got)
	}
}

func TestConsumedRatioBuckets(t *testing.T) {
	tests := []struct {
		hour int
		want float64
	}{
		{0, 0.40},
		{11, 0.40},
		{12, 0.65},
		{17, 0.65},
		{18, 0.85},
		{20, 0.85},
		{21, 0.95},
		{23, 0.95},
	}
	for _, tt := range tests {
		now := time.Date(2026, 3, 1, tt.hour, 30, 0, 0, time.Local)
		if got := consumedRatio(now); got != tt.want {
			t.Errorf("consumedRatio(%02d:30) = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func TestEstimateConsumed(t *testing.T) {
	morning := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	got := EstimateConsumed(dayTargets(), morning)
	if got.Calories != 800 {
		t.Errorf("Calories = %v, want 800", got.Calories)
	}
	if got.Protein != 48 {
		t.Errorf("Protein = %v, want 48", got.Protein)
	}
	if got.Fiber != 10 {
		t.Errorf("Fiber = %v, want 10", got.Fiber)
	}
}

func TestConsumedTodayPrefersLedger(t *testing.T) {
	now := time.Date(2026, 3, 1, 19, 0, 0, 0, time.Local)
	meals := []*models.MealEntry{
		models.NewMealEntry("toast", models.Breakfast, models.NutritionData{Calories: 200}),
	}
	if got := ConsumedToday(dayTargets(), meals, now); got.Calories != 200 {
		t.Errorf("ledger should win over estimate: %v", got.Calories)
	}
	if got := ConsumedToday(dayTargets(), nil, now); got.Calories != 1700 {
		t.Errorf("empty ledger should fall back to estimate: %v", got.Calories)
	}
}

func TestCalculateNutritionGap(t *testing.T) {
	consumed := models.NutritionData{Calories: 1200, Protein: 70, Carbs: 180, Fat: 40, Sodium: 2600, Fiber: 12}
	gap := CalculateNutritionGap(dayTargets(), consumed)

	if gap.Calories != 800 {
		t.Errorf("Calories gap = %v, want 800", gap.Calories)
	}
	if gap.Protein != 50 {
		t.Errorf("Protein gap = %v, want 50", gap.Protein)
	}
	// Sodium is inverted: report the amount over budget.
	if gap.Sodium != 300 {
		t.Errorf("Sodium over = %v, want 300", gap.Sodium)
	}
	if gap.Fiber != 13 {
		t.Errorf("Fiber gap = %v, want 13", gap.Fiber)
	}
}

func TestNutritionGapNeverNegative(t *testing.T) {
	// Over-consumed on everything except sodium, which is under budget.
	consumed := models.NutritionData{Calories: 3000, Protein: 200, Carbs: 400, Fat: 120, Sodium: 900, Fiber: 40}
	gap := CalculateNutritionGap(dayTargets(), consumed)

	if gap.Calories != 0 || gap.Protein != 0 || gap.Carbs != 0 || gap.Fat != 0 || gap.Fiber != 0 {
		t.Errorf("over-consumed gaps should clamp to zero: %+v", gap)
	}
	if gap.Sodium != 0 {
		t.Errorf("sodium under budget should report zero overage, got %v", gap.Sodium)
	}
}
