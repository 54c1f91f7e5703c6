// ABOUTME: Meal plan generator: calorie split across slots and recipe selection.
// ABOUTME: Regeneration quota is a decorator around the generator, not inlined.
package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/nutrient/internal/models"
)

// Fixed calorie shares per slot.
var slotCalorieShares = map[models.MealTime]float64{
	models.Breakfast: 0.30,
	models.Lunch:     0.40,
	models.Dinner:    0.30,
}

// Recipes selected per slot.
var slotRecipeCounts = map[models.MealTime]int{
	models.Breakfast: 2,
	models.Lunch:     3,
	models.Dinner:    3,
}

// ErrQuotaExceeded is returned when the daily regeneration quota is
// used up for the user's tier.
var ErrQuotaExceeded = fmt.Errorf("meal plan quota exceeded")

// GenerateMealPlan partitions the daily calorie target 30/40/30 across
// breakfast, lunch, and dinner and picks recipes tagged for each slot.
// When a slot's tag yields too few recipes the selection falls back to
// the head of the full catalog rather than failing.
func GenerateMealPlan(targets models.NutritionTargets, catalog []models.Recipe, now time.Time) *models.MealPlan {
	return &models.MealPlan{
		ID:          uuid.New(),
		GeneratedAt: now,
		Breakfast:   buildSlot(targets, catalog, models.Breakfast),
		Lunch:       buildSlot(targets, catalog, models.Lunch),
		Dinner:      buildSlot(targets, catalog, models.Dinner),
	}
}

func buildSlot(targets models.NutritionTargets, catalog []models.Recipe, mt models.MealTime) models.MealSlot {
	count := slotRecipeCounts[mt]
	recipes := selectForSlot(catalog, mt, count)

	actual := 0.0
	for _, r := range recipes {
		actual += r.Nutrition.Calories
	}

	return models.MealSlot{
		Recipes:        recipes,
		TargetCalories: int(math.Round(float64(targets.Calories) * slotCalorieShares[mt])),
		ActualCalories: int(math.Round(actual)),
	}
}

// selectForSlot takes up to count recipes tagged for the slot, topping
// up from the full catalog when the tag is underpopulated.
func selectForSlot(catalog []models.Recipe, mt models.MealTime, count int) []models.Recipe {
	var picked []models.Recipe
	for _, r := range catalog {
		if len(picked) == count {
			return picked
		}
		if r.SuitsMealTime(mt) {
			picked = append(picked, r)
		}
	}

	// Documented fallback: an arbitrary slice of the catalog.
	for _, r := range catalog {
		if len(picked) == count {
			break
		}
		if !containsRecipe(picked, r.ID) {
			picked = append(picked, r)
		}
	}
	return picked
}

func containsRecipe(recipes []models.Recipe, id string) bool {
	for _, r := range recipes {
		if r.ID == id {
			return true
		}
	}
	return false
}

// RegenerationCounter tracks how many plans were generated per day.
// Implemented by the storage repositories; days are keyed YYYY-MM-DD.
type RegenerationCounter interface {
	CountPlanRegenerations(day string) (int, error)
	RecordPlanRegeneration(day string) error
}

// QuotaLimitedGenerator wraps plan generation with the membership
// tier's daily regeneration quota. The generation algorithm itself
// stays quota-free; this is the only gating layer.
type QuotaLimitedGenerator struct {
	Counter RegenerationCounter
	Tier    models.MembershipTier
}

// DayKey formats a time as the regeneration counter's day key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Generate produces a plan if the tier's daily quota allows another
// regeneration, recording the attempt on success.
func (g *QuotaLimitedGenerator) Generate(targets models.NutritionTargets, catalog []models.Recipe, now time.Time) (*models.MealPlan, error) {
	limit := g.Tier.DailyPlanLimit()
	if limit >= 0 {
		used, err := g.Counter.CountPlanRegenerations(DayKey(now))
		if err != nil {
			return nil, fmt.Errorf("check plan quota: %w", err)
		}
		if used >= limit {
			return nil, fmt.Errorf("%w: %s tier allows %d plan per day", ErrQuotaExceeded, g.Tier, limit)
		}
	}

	plan := GenerateMealPlan(targets, catalog, now)

	if err := g.Counter.RecordPlanRegeneration(DayKey(now)); err != nil {
		return nil, fmt.Errorf("record plan regeneration: %w", err)
	}
	return plan, nil
}
