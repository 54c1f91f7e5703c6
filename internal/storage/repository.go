// ABOUTME: Repository interface for nutrition data storage.
// ABOUTME: Defines profile, settings, meal ledger, and meal plan contracts.
package storage

import (
	"sync"
	"time"

	"github.com/harperreed/nutrient/internal/models"
)

// ChangeListener is invoked after a profile or settings write. The
// argument names the entity that changed ("profile" or "settings").
type ChangeListener func(entity string)

// Repository defines the storage interface for nutrition data.
// This interface allows swapping implementations (sqlite, Charm KV,
// in-memory for tests). The engine itself never touches storage; it
// reads snapshots handed to it by callers of this interface.
type Repository interface {
	// Profile store. GetProfile returns a models.ErrNotFound-wrapped
	// error when no profile has been set up yet; callers fall back to
	// default targets in that case.
	GetProfile() (*models.HealthProfile, error)
	SetProfile(p *models.HealthProfile) error
	ClearProfile() error

	// Adjustment settings store. GetSettings returns the default
	// {home, normal, medium} triple when none has been saved.
	GetSettings() (models.AdjustmentSettings, error)
	SetSettings(s models.AdjustmentSettings) error

	// OnChange registers a listener for profile/settings writes.
	OnChange(fn ChangeListener)

	// Meal ledger operations
	CreateMeal(m *models.MealEntry) error
	GetMeal(idOrPrefix string) (*models.MealEntry, error)
	ListMeals(slot *models.MealTime, limit int) ([]*models.MealEntry, error)
	MealsForDay(day time.Time) ([]*models.MealEntry, error)
	DeleteMeal(idOrPrefix string) error

	// Meal plan operations
	SaveMealPlan(p *models.MealPlan) error
	LatestMealPlan() (*models.MealPlan, error)
	CountPlanRegenerations(day string) (int, error)
	RecordPlanRegeneration(day string) error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}

// ExportData is the full portable snapshot of a repository.
type ExportData struct {
	ExportedAt time.Time                  `json:"exported_at"`
	Profile    *models.HealthProfile      `json:"profile,omitempty"`
	Settings   *models.AdjustmentSettings `json:"settings,omitempty"`
	Meals      []*models.MealEntry        `json:"meals"`
	Plans      []*models.MealPlan         `json:"plans"`
}

// Notifier implements the OnChange contract for repository backends.
type Notifier struct {
	mu        sync.Mutex
	listeners []ChangeListener
}

// OnChange registers a change listener.
func (n *Notifier) OnChange(fn ChangeListener) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

// Notify invokes all registered listeners.
func (n *Notifier) Notify(entity string) {
	n.mu.Lock()
	listeners := make([]ChangeListener, len(n.listeners))
	copy(listeners, n.listeners)
	n.mu.Unlock()

	for _, fn := range listeners {
		fn(entity)
	}
}
