// ABOUTME: Meal plan persistence and regeneration quota counting.
// ABOUTME: Plans are stored as JSON payloads; counts are keyed by day.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/nutrient/internal/models"
)

// SaveMealPlan stores a generated plan.
func (d *DB) SaveMealPlan(p *models.MealPlan) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal meal plan: %w", err)
	}

	query := `INSERT INTO meal_plans (id, generated_at, payload) VALUES (?, ?, ?)`
	_, err = d.db.Exec(query, p.ID.String(), p.GeneratedAt.Format(time.RFC3339), string(payload))
	if err != nil {
		return fmt.Errorf("save meal plan: %w", err)
	}
	return nil
}

// LatestMealPlan returns the most recently generated plan, or a wrapped
// models.ErrNotFound when none has been generated.
func (d *DB) LatestMealPlan() (*models.MealPlan, error) {
	query := `SELECT payload FROM meal_plans ORDER BY generated_at DESC LIMIT 1`
	var payload string
	err := d.db.QueryRow(query).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("meal plan: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("latest meal plan: %w", err)
	}

	var plan models.MealPlan
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return nil, fmt.Errorf("unmarshal meal plan: %w", err)
	}
	return &plan, nil
}

// CountPlanRegenerations returns how many plans were generated on the
// given day (keyed YYYY-MM-DD).
func (d *DB) CountPlanRegenerations(day string) (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT count FROM plan_regenerations WHERE day = ?`, day).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("count plan regenerations: %w", err)
	}
	return count, nil
}

// RecordPlanRegeneration increments the day's regeneration count.
func (d *DB) RecordPlanRegeneration(day string) error {
	query := `
		INSERT INTO plan_regenerations (day, count) VALUES (?, 1)
		ON CONFLICT(day) DO UPDATE SET count = count + 1
	`
	if _, err := d.db.Exec(query, day); err != nil {
		return fmt.Errorf("record plan regeneration: %w", err)
	}
	return nil
}
