// ABOUTME: MealEntry model for the consumption ledger.
// ABOUTME: Logged meals are summed into today's consumed nutrition.
package models

import (
	"time"

	"github.com/google/uuid"
)

// MealEntry is one logged meal. The day's entries form the consumption
// ledger that the gap analyzer sums.
type MealEntry struct {
	ID         uuid.UUID     `json:"id"`
	Name       string        `json:"name"`
	Slot       MealTime      `json:"slot"`
	Nutrition  NutritionData `json:"nutrition"`
	RecipeID   *string       `json:"recipe_id,omitempty"` // set when logged from the catalog
	RecordedAt time.Time     `json:"recorded_at"`
	Notes      *string       `json:"notes,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// NewMealEntry creates a meal entry with generated UUID and current timestamp.
func NewMealEntry(name string, slot MealTime, n NutritionData) *MealEntry {
	now := time.Now()
	return &MealEntry{
		ID:         uuid.New(),
		Name:       name,
		Slot:       slot,
		Nutrition:  n,
		RecordedAt: now,
		CreatedAt:  now,
	}
}

// WithRecordedAt sets a custom recorded_at timestamp.
func (m *MealEntry) WithRecordedAt(t time.Time) *MealEntry {
	m.RecordedAt = t
	return m
}

// WithNotes sets notes on the meal.
func (m *MealEntry) WithNotes(notes string) *MealEntry {
	m.Notes = &notes
	return m
}

// WithRecipeID links the meal to a catalog recipe.
func (m *MealEntry) WithRecipeID(id string) *MealEntry {
	m.RecipeID = &id
	return m
}
