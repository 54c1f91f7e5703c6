// ABOUTME: Export and import of the full repository snapshot.
// ABOUTME: JSON for round-tripping, markdown for a readable food diary.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/harperreed/nutrient/internal/models"
)

// GetAllData collects the complete repository contents for export.
func (d *DB) GetAllData() (*ExportData, error) {
	data := &ExportData{ExportedAt: time.Now()}

	profile, err := d.GetProfile()
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	data.Profile = profile

	settings, err := d.GetSettings()
	if err != nil {
		return nil, err
	}
	data.Settings = &settings

	meals, err := d.ListMeals(nil, 0)
	if err != nil {
		return nil, err
	}
	data.Meals = meals

	plans, err := d.listAllPlans()
	if err != nil {
		return nil, err
	}
	data.Plans = plans

	return data, nil
}

// ImportData merges a snapshot into the repository. Meals and plans
// that already exist (by id) are skipped rather than duplicated.
func (d *DB) ImportData(data *ExportData) error {
	if data.Profile != nil {
		if err := d.SetProfile(data.Profile); err != nil {
			return fmt.Errorf("import profile: %w", err)
		}
	}
	if data.Settings != nil {
		if err := d.SetSettings(*data.Settings); err != nil {
			return fmt.Errorf("import settings: %w", err)
		}
	}

	for _, m := range data.Meals {
		if _, err := d.GetMeal(m.ID.String()); err == nil {
			continue
		}
		if err := d.CreateMeal(m); err != nil {
			return fmt.Errorf("import meal %s: %w", m.ID, err)
		}
	}

	for _, p := range data.Plans {
		if d.planExists(p.ID.String()) {
			continue
		}
		if err := d.SaveMealPlan(p); err != nil {
			return fmt.Errorf("import plan %s: %w", p.ID, err)
		}
	}

	return nil
}

func (d *DB) planExists(id string) bool {
	var one int
	err := d.db.QueryRow(`SELECT 1 FROM meal_plans WHERE id = ?`, id).Scan(&one)
	return err == nil
}

func (d *DB) listAllPlans() ([]*models.MealPlan, error) {
	rows, err := d.db.Query(`SELECT payload FROM meal_plans ORDER BY generated_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list meal plans: %w", err)
	}
	defer rows.Close()

	var plans []*models.MealPlan
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan meal plan: %w", err)
		}
		var plan models.MealPlan
		if err := json.Unmarshal([]byte(payload), &plan); err != nil {
			return nil, fmt.Errorf("unmarshal meal plan: %w", err)
		}
		plans = append(plans, &plan)
	}
	return plans, rows.Err()
}

// WriteJSON writes the snapshot as indented JSON.
func WriteJSON(w io.Writer, data *ExportData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// RenderMarkdown renders the snapshot as a human-readable food diary,
// grouped by calendar day, newest day first.
func RenderMarkdown(data *ExportData) string {
	var b strings.Builder
	b.WriteString("# Food Diary\n\n")
	b.WriteString(fmt.Sprintf("Exported %s\n\n", data.ExportedAt.Format("2006-01-02 15:04")))

	if data.Profile != nil {
		p := data.Profile
		b.WriteString("## Profile\n\n")
		b.WriteString(fmt.Sprintf("- %s, age %d, %.0f cm, %.1f kg\n", p.Gender, p.Age, p.HeightCm, p.WeightKg))
		b.WriteString(fmt.Sprintf("- activity: %s, goal: %s", p.ActivityLevel, p.HealthGoal))
		if p.SpecialFocus != models.FocusNone {
			b.WriteString(fmt.Sprintf(" (%s)", p.SpecialFocus))
		}
		b.WriteString("\n\n")
	}

	byDay := make(map[string][]*models.MealEntry)
	for _, m := range data.Meals {
		day := m.RecordedAt.Format("2006-01-02")
		byDay[day] = append(byDay[day], m)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	for _, day := range days {
		b.WriteString(fmt.Sprintf("## %s\n\n", day))
		meals := byDay[day]
		sort.Slice(meals, func(i, j int) bool {
			return meals[i].RecordedAt.Before(meals[j].RecordedAt)
		})

		var total models.NutritionData
		for _, m := range meals {
			b.WriteString(fmt.Sprintf("- **%s** (%s) — %.0f kcal, %.1fg protein, %.1fg carbs, %.1fg fat, %.0fmg sodium, %.1fg fiber",
				m.Name, m.Slot,
				m.Nutrition.Calories, m.Nutrition.Protein, m.Nutrition.Carbs,
				m.Nutrition.Fat, m.Nutrition.Sodium, m.Nutrition.Fiber))
			if m.Notes != nil && *m.Notes != "" {
				b.WriteString(fmt.Sprintf(" _(%s)_", *m.Notes))
			}
			b.WriteString("\n")
			total = total.Add(m.Nutrition)
		}
		b.WriteString(fmt.Sprintf("\nDay total: %.0f kcal, %.1fg protein, %.1fg carbs, %.1fg fat\n\n",
			total.Calories, total.Protein, total.Carbs, total.Fat))
	}

	return b.String()
}
