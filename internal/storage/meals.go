// ABOUTME: Meal ledger CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for logged meals.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/nutrient/internal/models"
)

// CreateMeal stores a new meal entry in the database.
func (d *DB) CreateMeal(m *models.MealEntry) error {
	query := `
		INSERT INTO meals (id, name, slot, calories, protein, carbs, fat, sodium, fiber, recipe_id, recorded_at, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		m.ID.String(),
		m.Name,
		string(m.Slot),
		m.Nutrition.Calories,
		m.Nutrition.Protein,
		m.Nutrition.Carbs,
		m.Nutrition.Fat,
		m.Nutrition.Sodium,
		m.Nutrition.Fiber,
		m.RecipeID,
		m.RecordedAt.Format(time.RFC3339),
		m.Notes,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create meal: %w", err)
	}
	return nil
}

// GetMeal retrieves a meal by ID or ID prefix.
func (d *DB) GetMeal(idOrPrefix string) (*models.MealEntry, error) {
	id, err := d.resolveMealID(idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := mealSelect + ` WHERE id = ?`
	return d.scanMeal(d.db.QueryRow(query, id))
}

// ListMeals retrieves meals with optional filtering by slot.
// Results are sorted by RecordedAt descending (most recent first).
func (d *DB) ListMeals(slot *models.MealTime, limit int) ([]*models.MealEntry, error) {
	var query string
	var args []interface{}

	if slot != nil {
		query = mealSelect + ` WHERE slot = ? ORDER BY recorded_at DESC`
		args = append(args, string(*slot))
	} else {
		query = mealSelect + ` ORDER BY recorded_at DESC`
	}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	return d.scanMeals(rows)
}

// MealsForDay retrieves every meal recorded on the given calendar day,
// oldest first. This is the gap analyzer's consumption ledger.
func (d *DB) MealsForDay(day time.Time) ([]*models.MealEntry, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	query := mealSelect + ` WHERE recorded_at >= ? AND recorded_at < ? ORDER BY recorded_at ASC`
	rows, err := d.db.Query(query, start.Format(time.RFC3339), end.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("meals for day: %w", err)
	}
	defer rows.Close()

	return d.scanMeals(rows)
}

// DeleteMeal removes a meal by ID or prefix.
func (d *DB) DeleteMeal(idOrPrefix string) error {
	id, err := d.resolveMealID(idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}

	result, err := d.db.Exec("DELETE FROM meals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", models.ErrNotFound, idOrPrefix)
	}

	return nil
}

const mealSelect = `
	SELECT id, name, slot, calories, protein, carbs, fat, sodium, fiber, recipe_id, recorded_at, notes, created_at
	FROM meals`

// resolveMealID finds the full ID from a prefix.
func (d *DB) resolveMealID(idOrPrefix string) (string, error) {
	// If it looks like a full UUID, use it directly
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	// Search by prefix
	query := `SELECT id FROM meals WHERE id LIKE ? || '%'`
	rows, err := d.db.Query(query, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve meal ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan meal ID: %w", err)
		}
		matches = append(matches, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("resolve meal ID: %w", err)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %s", models.ErrNotFound, idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}

	return matches[0], nil
}

// scanMeal scans a single row into a MealEntry struct.
func (d *DB) scanMeal(row *sql.Row) (*models.MealEntry, error) {
	var m models.MealEntry
	var idStr, slot, recordedAt, createdAt string
	var recipeID, notes sql.NullString

	err := row.Scan(&idStr, &m.Name, &slot,
		&m.Nutrition.Calories, &m.Nutrition.Protein, &m.Nutrition.Carbs,
		&m.Nutrition.Fat, &m.Nutrition.Sodium, &m.Nutrition.Fiber,
		&recipeID, &recordedAt, &notes, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("meal: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("scan meal: %w", err)
	}

	m.ID, _ = uuid.Parse(idStr)
	m.Slot = models.MealTime(slot)
	m.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if recipeID.Valid {
		m.RecipeID = &recipeID.String
	}
	if notes.Valid {
		m.Notes = &notes.String
	}

	return &m, nil
}

// scanMeals scans multiple rows into a slice of MealEntries.
func (d *DB) scanMeals(rows *sql.Rows) ([]*models.MealEntry, error) {
	var meals []*models.MealEntry

	for rows.Next() {
		var m models.MealEntry
		var idStr, slot, recordedAt, createdAt string
		var recipeID, notes sql.NullString

		err := rows.Scan(&idStr, &m.Name, &slot,
			&m.Nutrition.Calories, &m.Nutrition.Protein, &m.Nutrition.Carbs,
			&m.Nutrition.Fat, &m.Nutrition.Sodium, &m.Nutrition.Fiber,
			&recipeID, &recordedAt, &notes, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}

		m.ID, _ = uuid.Parse(idStr)
		m.Slot = models.MealTime(slot)
		m.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if recipeID.Valid {
			m.RecipeID = &recipeID.String
		}
		if notes.Valid {
			m.Notes = &notes.String
		}

		meals = append(meals, &m)
	}

	return meals, rows.Err()
}
