// ABOUTME: MealPlan model with per-slot recipe selections and calorie accounting.
// ABOUTME: Plans are generated on demand; regeneration is quota-limited externally.
package models

import (
	"time"

	"github.com/google/uuid"
)

// MembershipTier gates how often a meal plan may be regenerated per day.
type MembershipTier string

const (
	TierFree MembershipTier = "free"
	TierPlus MembershipTier = "plus"
)

// DailyPlanLimit returns the allowed regenerations per day, or -1 for
// unlimited.
func (t MembershipTier) DailyPlanLimit() int {
	if t == TierFree {
		return 1
	}
	return -1
}

// MealSlot is one slot of a generated plan.
type MealSlot struct {
	Recipes        []Recipe `json:"recipes"`
	TargetCalories int      `json:"target_calories"`
	ActualCalories int      `json:"actual_calories"`
}

// MealPlan partitions the daily calorie target across breakfast, lunch,
// and dinner.
type MealPlan struct {
	ID          uuid.UUID `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Breakfast   MealSlot  `json:"breakfast"`
	Lunch       MealSlot  `json:"lunch"`
	Dinner      MealSlot  `json:"dinner"`
}

// Slots returns the plan's slots keyed by meal time, in day order.
func (p *MealPlan) Slots() []struct {
	Time MealTime
	Slot MealSlot
} {
	return []struct {
		Time MealTime
		Slot MealSlot
	}{
		{Breakfast, p.Breakfast},
		{Lunch, p.Lunch},
		{Dinner, p.Dinner},
	}
}
