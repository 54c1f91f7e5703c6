// ABOUTME: Tests for MealEntry constructor and builder methods.
// ABOUTME: Validates UUID generation, timestamps, and optional fields.
package models

import (
	"testing"
	"time"
)

func TestNewMealEntry(t *testing.T) {
	n := NutritionData{Calories: 520, Protein: 28, Carbs: 45, Fat: 22, Sodium: 680, Fiber: 3}
	m := NewMealEntry("chicken rice bowl", Lunch, n)

	if m.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if m.Name != "chicken rice bowl" {
		t.Errorf("Name = %s", m.Name)
	}
	if m.Slot != Lunch {
		t.Errorf("Slot = %s, want lunch", m.Slot)
	}
	if m.Nutrition != n {
		t.Errorf("Nutrition = %+v", m.Nutrition)
	}
	if m.RecordedAt.IsZero() {
		t.Error("expected RecordedAt to be set")
	}
	if m.RecipeID != nil || m.Notes != nil {
		t.Error("optional fields should start unset")
	}
}

func TestMealEntryBuilders(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 30, 0, 0, time.Local)
	m := NewMealEntry("oatmeal", Breakfast, NutritionData{Calories: 310}).
		WithRecordedAt(at).
		WithNotes("extra berries").
		WithRecipeID("r-oatmeal")

	if !m.RecordedAt.Equal(at) {
		t.Errorf("RecordedAt = %v", m.RecordedAt)
	}
	if m.Notes == nil || *m.Notes != "extra berries" {
		t.Error("notes not set")
	}
	if m.RecipeID == nil || *m.RecipeID != "r-oatmeal" {
		t.Error("recipe id not set")
	}
}
