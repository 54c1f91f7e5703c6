// ABOUTME: Export and import of the full KV snapshot.
// ABOUTME: Mirrors the SQLite backend so backups round-trip across backends.
package charm

import (
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/nutrient/internal/models"
	"github.com/harperreed/nutrient/internal/storage"
)

// GetAllData collects the complete repository contents for export.
func (c *Client) GetAllData() (*storage.ExportData, error) {
	data := &storage.ExportData{ExportedAt: time.Now()}

	profile, err := c.GetProfile()
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	data.Profile = profile

	settings, err := c.GetSettings()
	if err != nil {
		return nil, err
	}
	data.Settings = &settings

	meals, err := c.ListMeals(nil, 0)
	if err != nil {
		return nil, err
	}
	data.Meals = meals

	plans, err := c.listPlans()
	if err != nil {
		return nil, err
	}
	data.Plans = plans

	return data, nil
}

// ImportData merges a snapshot into the KV store. Meals and plans that
// already exist (by id) are skipped rather than duplicated.
// Auto-sync is suspended for the batch; one sync runs at the end.
func (c *Client) ImportData(data *storage.ExportData) error {
	c.SetAutoSync(false)
	defer func() {
		c.SetAutoSync(true)
		_ = c.Sync()
	}()

	if data.Profile != nil {
		if err := c.SetProfile(data.Profile); err != nil {
			return fmt.Errorf("import profile: %w", err)
		}
	}
	if data.Settings != nil {
		if err := c.SetSettings(*data.Settings); err != nil {
			return fmt.Errorf("import settings: %w", err)
		}
	}

	for _, m := range data.Meals {
		if _, ok, err := c.get(MealPrefix + m.ID.String()); err != nil {
			return fmt.Errorf("import meal %s: %w", m.ID, err)
		} else if ok {
			continue
		}
		if err := c.CreateMeal(m); err != nil {
			return fmt.Errorf("import meal %s: %w", m.ID, err)
		}
	}

	for _, p := range data.Plans {
		if _, ok, err := c.get(PlanPrefix + p.ID.String()); err != nil {
			return fmt.Errorf("import plan %s: %w", p.ID, err)
		} else if ok {
			continue
		}
		if err := c.SaveMealPlan(p); err != nil {
			return fmt.Errorf("import plan %s: %w", p.ID, err)
		}
	}

	return nil
}
