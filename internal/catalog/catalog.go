// ABOUTME: Recipe catalog loading and validation.
// ABOUTME: Ships an embedded default catalog; a JSON file can override it.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/harperreed/nutrient/internal/models"
)

//go:embed catalog.json
var embedded []byte

// Load returns the built-in recipe catalog.
func Load() ([]models.Recipe, error) {
	return parse(embedded)
}

// LoadFile reads a catalog from a JSON file, replacing the built-in one.
func LoadFile(path string) ([]models.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	recipes, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return recipes, nil
}

func parse(data []byte) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := validate(recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func validate(recipes []models.Recipe) error {
	seen := make(map[string]bool, len(recipes))
	for i, r := range recipes {
		if r.ID == "" {
			return fmt.Errorf("%w: recipe %d has no id", models.ErrInvalidInput, i)
		}
		if seen[r.ID] {
			return fmt.Errorf("%w: duplicate recipe id %q", models.ErrInvalidInput, r.ID)
		}
		seen[r.ID] = true

		if r.Name == "" {
			return fmt.Errorf("%w: recipe %q has no name", models.ErrInvalidInput, r.ID)
		}
		if r.Nutrition.Calories <= 0 {
			return fmt.Errorf("%w: recipe %q has non-positive calories", models.ErrInvalidInput, r.ID)
		}
		if r.Popularity < 0 || r.Popularity > 1 {
			return fmt.Errorf("%w: recipe %q popularity %v out of range", models.ErrInvalidInput, r.ID, r.Popularity)
		}
		if len(r.MealTimes) == 0 {
			return fmt.Errorf("%w: recipe %q has no meal times", models.ErrInvalidInput, r.ID)
		}
		for _, mt := range r.MealTimes {
			if !models.IsValidMealTime(string(mt)) {
				return fmt.Errorf("%w: recipe %q has unknown meal time %q", models.ErrInvalidInput, r.ID, mt)
			}
		}
	}
	return nil
}

// ByID builds a lookup map from a catalog slice.
func ByID(recipes []models.Recipe) map[string]models.Recipe {
	m := make(map[string]models.Recipe, len(recipes))
	for _, r := range recipes {
		m[r.ID] = r
	}
	return m
}
