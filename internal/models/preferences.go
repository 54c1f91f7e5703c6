// ABOUTME: UserPreferences and UserHistory inputs to the recommendation scorer.
// ABOUTME: In a full deployment these come from a behavior-tracking service.
package models

// DefaultCookTimeLimit is assumed when preferences leave the cook time
// budget unset.
const DefaultCookTimeLimit = 30

// UserPreferences captures explicit user taste settings.
type UserPreferences struct {
	CuisineTypes        []string     `json:"cuisine_types,omitempty"`
	Difficulty          []Difficulty `json:"difficulty,omitempty"`
	CookTimeMinutes     int          `json:"cook_time_minutes,omitempty"`
	FavoriteIngredients []string     `json:"favorite_ingredients,omitempty"`
	DislikedIngredients []string     `json:"disliked_ingredients,omitempty"`
	FavoriteCategories  []string     `json:"favorite_categories,omitempty"`
	NutritionFocus      []string     `json:"nutrition_focus,omitempty"`
}

// CookTimeLimit returns the configured cook time budget, falling back
// to the default.
func (p UserPreferences) CookTimeLimit() int {
	if p.CookTimeMinutes > 0 {
		return p.CookTimeMinutes
	}
	return DefaultCookTimeLimit
}

// AcceptsDifficulty reports whether the difficulty is in the preferred set.
func (p UserPreferences) AcceptsDifficulty(d Difficulty) bool {
	for _, pd := range p.Difficulty {
		if pd == d {
			return true
		}
	}
	return false
}

// UserHistory summarizes observed behavior used as scoring signals.
type UserHistory struct {
	RecentRecipeIDs    []string           `json:"recent_recipe_ids,omitempty"`
	RatedRecipes       map[string]float64 `json:"rated_recipes,omitempty"`
	FrequentCategories map[string]int     `json:"frequent_categories,omitempty"`
	NutritionGoal      HealthGoal         `json:"nutrition_goal,omitempty"`
	ProfileSnapshot    *HealthProfile     `json:"profile_snapshot,omitempty"`
}
