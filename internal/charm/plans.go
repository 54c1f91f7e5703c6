// ABOUTME: Meal plan persistence and regeneration quota counting in Charm KV.
// ABOUTME: Plans are JSON values; counts live under day-keyed entries.
package charm

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/harperreed/nutrient/internal/models"
)

// SaveMealPlan stores a generated plan.
func (c *Client) SaveMealPlan(p *models.MealPlan) error {
	key := PlanPrefix + p.ID.String()
	data, err := marshalJSON(p)
	if err != nil {
		return fmt.Errorf("marshal meal plan: %w", err)
	}
	return c.set(key, data)
}

// LatestMealPlan returns the most recently generated plan, or a wrapped
// models.ErrNotFound when none has been generated.
func (c *Client) LatestMealPlan() (*models.MealPlan, error) {
	plans, err := c.listPlans()
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, fmt.Errorf("meal plan: %w", models.ErrNotFound)
	}
	return plans[len(plans)-1], nil
}

// listPlans returns all plans sorted by GeneratedAt ascending.
func (c *Client) listPlans() ([]*models.MealPlan, error) {
	allData, err := c.listByPrefix(PlanPrefix)
	if err != nil {
		return nil, fmt.Errorf("list meal plans: %w", err)
	}

	var plans []*models.MealPlan
	for _, data := range allData {
		p, err := unmarshalJSON[models.MealPlan](data)
		if err != nil {
			continue // Skip invalid entries
		}
		plans = append(plans, p)
	}

	sort.Slice(plans, func(i, j int) bool {
		return plans[i].GeneratedAt.Before(plans[j].GeneratedAt)
	})
	return plans, nil
}

// CountPlanRegenerations returns how many plans were generated on the
// given day (keyed YYYY-MM-DD).
func (c *Client) CountPlanRegenerations(day string) (int, error) {
	data, ok, err := c.get(RegenPrefix + day)
	if err != nil {
		return 0, fmt.Errorf("count plan regenerations: %w", err)
	}
	if !ok {
		return 0, nil
	}

	count, err := strconv.Atoi(string(data))
	if err != nil {
		return 0, fmt.Errorf("parse regeneration count: %w", err)
	}
	return count, nil
}

// RecordPlanRegeneration increments the day's regeneration count.
func (c *Client) RecordPlanRegeneration(day string) error {
	count, err := c.CountPlanRegenerations(day)
	if err != nil {
		return err
	}
	return c.set(RegenPrefix+day, []byte(strconv.Itoa(count+1)))
}
