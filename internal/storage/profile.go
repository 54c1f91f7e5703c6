// ABOUTME: Profile and adjustment-settings persistence for SQLite storage.
// ABOUTME: Both are single-row tables; writes notify change listeners.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/nutrient/internal/models"
)

// GetProfile returns the stored health profile, or a wrapped
// models.ErrNotFound when profile setup has not happened yet.
func (d *DB) GetProfile() (*models.HealthProfile, error) {
	query := `
		SELECT age, gender, height_cm, weight_kg, activity_level, health_goal, special_focus
		FROM profile WHERE id = 1
	`
	var p models.HealthProfile
	var focus sql.NullString
	err := d.db.QueryRow(query).Scan(
		&p.Age, &p.Gender, &p.HeightCm, &p.WeightKg,
		&p.ActivityLevel, &p.HealthGoal, &focus,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if focus.Valid {
		p.SpecialFocus = models.SpecialFocus(focus.String)
	}
	return &p, nil
}

// SetProfile validates and stores the profile, replacing any previous one.
func (d *DB) SetProfile(p *models.HealthProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO profile (id, age, gender, height_cm, weight_kg, activity_level, health_goal, special_focus, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			age = excluded.age,
			gender = excluded.gender,
			height_cm = excluded.height_cm,
			weight_kg = excluded.weight_kg,
			activity_level = excluded.activity_level,
			health_goal = excluded.health_goal,
			special_focus = excluded.special_focus,
			updated_at = excluded.updated_at
	`
	_, err := d.db.Exec(query,
		p.Age, string(p.Gender), p.HeightCm, p.WeightKg,
		string(p.ActivityLevel), string(p.HealthGoal), string(p.SpecialFocus),
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("set profile: %w", err)
	}

	d.Notify("profile")
	return nil
}

// ClearProfile removes the stored profile.
func (d *DB) ClearProfile() error {
	if _, err := d.db.Exec(`DELETE FROM profile WHERE id = 1`); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	d.Notify("profile")
	return nil
}

// GetSettings returns the stored adjustment settings, or the default
// {home, normal, medium} triple when none have been saved.
func (d *DB) GetSettings() (models.AdjustmentSettings, error) {
	query := `SELECT scenario, taste, portion FROM adjustment_settings WHERE id = 1`
	var s models.AdjustmentSettings
	err := d.db.QueryRow(query).Scan(&s.Scenario, &s.Taste, &s.Portion)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultAdjustmentSettings(), nil
		}
		return models.AdjustmentSettings{}, fmt.Errorf("get settings: %w", err)
	}
	return s, nil
}

// SetSettings validates and stores the adjustment settings.
func (d *DB) SetSettings(s models.AdjustmentSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO adjustment_settings (id, scenario, taste, portion, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			scenario = excluded.scenario,
			taste = excluded.taste,
			portion = excluded.portion,
			updated_at = excluded.updated_at
	`
	_, err := d.db.Exec(query,
		string(s.Scenario), string(s.Taste), string(s.Portion),
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("set settings: %w", err)
	}

	d.Notify("settings")
	return nil
}
