// ABOUTME: Tests for catalog loading and validation.
// ABOUTME: Covers the embedded catalog plus file overrides and bad input.
package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/nutrient/internal/models"
)

func TestLoadEmbedded(t *testing.T) {
	recipes, err := Load()
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}
	if len(recipes) < 10 {
		t.Errorf("embedded catalog has %d recipes, expected at least 10", len(recipes))
	}

	// Every meal slot must be coverable from the built-in catalog.
	for _, mt := range []models.MealTime{models.Breakfast, models.Lunch, models.Dinner, models.Snack} {
		found := false
		for i := range recipes {
			if recipes[i].SuitsMealTime(mt) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no recipe covers meal time %s", mt)
		}
	}
}

func TestLoadFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `[{
		"id": "custom-1",
		"name": "Custom Meal",
		"nutrition": {"calories": 400, "protein": 30, "carbs": 40, "fat": 12, "sodium": 500, "fiber": 5},
		"difficulty": "easy",
		"cook_time_minutes": 20,
		"categories": ["lunch"],
		"popularity": 0.5,
		"meal_times": ["lunch"]
	}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	recipes, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if len(recipes) != 1 || recipes[0].ID != "custom-1" {
		t.Errorf("recipes = %+v", recipes)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidateRejectsBadCatalogs(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"duplicate id", `[
			{"id": "a", "name": "A", "nutrition": {"calories": 100}, "popularity": 0.5, "meal_times": ["lunch"]},
			{"id": "a", "name": "B", "nutrition": {"calories": 100}, "popularity": 0.5, "meal_times": ["lunch"]}
		]`},
		{"missing id", `[{"name": "A", "nutrition": {"calories": 100}, "popularity": 0.5, "meal_times": ["lunch"]}]`},
		{"missing name", `[{"id": "a", "nutrition": {"calories": 100}, "popularity": 0.5, "meal_times": ["lunch"]}]`},
		{"zero calories", `[{"id": "a", "name": "A", "nutrition": {"calories": 0}, "popularity": 0.5, "meal_times": ["lunch"]}]`},
		{"popularity out of range", `[{"id": "a", "name": "A", "nutrition": {"calories": 100}, "popularity": 1.5, "meal_times": ["lunch"]}]`},
		{"no meal times", `[{"id": "a", "name": "A", "nutrition": {"calories": 100}, "popularity": 0.5, "meal_times": []}]`},
		{"bad meal time", `[{"id": "a", "name": "A", "nutrition": {"calories": 100}, "popularity": 0.5, "meal_times": ["brunch"]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse([]byte(tt.json))
			if !errors.Is(err, models.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestByID(t *testing.T) {
	recipes, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	m := ByID(recipes)
	if len(m) != len(recipes) {
		t.Errorf("map has %d entries for %d recipes", len(m), len(recipes))
	}
	if _, ok := m[recipes[0].ID]; !ok {
		t.Error("first recipe not in map")
	}
}
