// ABOUTME: Meal ledger CRUD operations for Charm KV storage.
// ABOUTME: Uses type-prefixed keys and client-side filtering.
package charm

import (
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/nutrient/internal/models"
)

// CreateMeal stores a new meal entry in the KV store.
func (c *Client) CreateMeal(m *models.MealEntry) error {
	key := MealPrefix + m.ID.String()
	data, err := marshalJSON(m)
	if err != nil {
		return fmt.Errorf("marshal meal: %w", err)
	}
	return c.set(key, data)
}

// GetMeal retrieves a meal by ID or ID prefix.
func (c *Client) GetMeal(idOrPrefix string) (*models.MealEntry, error) {
	data, err := c.getByIDPrefix(MealPrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get meal: %w", err)
	}

	meal, err := unmarshalJSON[models.MealEntry](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal meal: %w", err)
	}
	return meal, nil
}

// ListMeals retrieves meals with optional filtering by slot.
// Results are sorted by RecordedAt descending (most recent first).
func (c *Client) ListMeals(slot *models.MealTime, limit int) ([]*models.MealEntry, error) {
	allData, err := c.listByPrefix(MealPrefix)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}

	var meals []*models.MealEntry
	for _, data := range allData {
		m, err := unmarshalJSON[models.MealEntry](data)
		if err != nil {
			continue // Skip invalid entries
		}

		if slot != nil && m.Slot != *slot {
			continue
		}

		meals = append(meals, m)
	}

	sort.Slice(meals, func(i, j int) bool {
		return meals[i].RecordedAt.After(meals[j].RecordedAt)
	})

	if limit > 0 && len(meals) > limit {
		meals = meals[:limit]
	}

	return meals, nil
}

// MealsForDay retrieves every meal recorded on the given calendar day,
// oldest first. This is the gap analyzer's consumption ledger.
func (c *Client) MealsForDay(day time.Time) ([]*models.MealEntry, error) {
	all, err := c.ListMeals(nil, 0)
	if err != nil {
		return nil, err
	}

	meals := FilterMealsForDay(all, day)
	sort.Slice(meals, func(i, j int) bool {
		return meals[i].RecordedAt.Before(meals[j].RecordedAt)
	})
	return meals, nil
}

// FilterMealsForDay returns the entries recorded on the given calendar day.
func FilterMealsForDay(meals []*models.MealEntry, day time.Time) []*models.MealEntry {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var out []*models.MealEntry
	for _, m := range meals {
		if !m.RecordedAt.Before(start) && m.RecordedAt.Before(end) {
			out = append(out, m)
		}
	}
	return out
}

// DeleteMeal removes a meal by ID or prefix.
func (c *Client) DeleteMeal(idOrPrefix string) error {
	if err := c.deleteByIDPrefix(MealPrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	return nil
}
