// ABOUTME: Recipe catalog entry plus recommendation result types.
// ABOUTME: Catalog entries are static data, read-only to the engine.
package models

// Difficulty of preparing a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// MealTime tags a recipe with the meal slots it suits.
type MealTime string

const (
	Breakfast MealTime = "breakfast"
	Lunch     MealTime = "lunch"
	Dinner    MealTime = "dinner"
	Snack     MealTime = "snack"
)

// IsValidMealTime checks if a string is a valid meal time tag.
func IsValidMealTime(s string) bool {
	switch MealTime(s) {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	}
	return false
}

// Recipe is one entry in the static recipe catalog.
type Recipe struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Nutrition       NutritionData `json:"nutrition"`
	Difficulty      Difficulty    `json:"difficulty"`
	CookTimeMinutes int           `json:"cook_time_minutes"`
	Categories      []string      `json:"categories"`
	Tags            []string      `json:"tags,omitempty"`
	CuisineType     string        `json:"cuisine_type,omitempty"`
	IsNew           bool          `json:"is_new,omitempty"`
	Popularity      float64       `json:"popularity"` // [0, 1]
	MealTimes       []MealTime    `json:"meal_times"`
}

// SuitsMealTime reports whether the recipe is tagged for the given slot.
func (r *Recipe) SuitsMealTime(mt MealTime) bool {
	for _, t := range r.MealTimes {
		if t == mt {
			return true
		}
	}
	return false
}

// RecommendationCategory groups scored results for presentation.
// The engine only tags items; section ordering belongs to consumers.
type RecommendationCategory string

const (
	CategoryHistoryBased       RecommendationCategory = "history_based"
	CategoryNutritionOptimized RecommendationCategory = "nutrition_optimized"
	CategoryDiscovery          RecommendationCategory = "discovery"
	CategoryTrending           RecommendationCategory = "trending"
)

// RecommendationResult pairs a recipe with its score, reason texts, and
// presentation category. Ephemeral; recomputed per request.
type RecommendationResult struct {
	Recipe   Recipe                 `json:"recipe"`
	Score    float64                `json:"score"`
	Reasons  []string               `json:"reasons"`
	Category RecommendationCategory `json:"category"`
}
