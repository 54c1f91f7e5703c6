// ABOUTME: Tests for the recommendation scorer and gap-filling ranking.
// ABOUTME: Covers each rule, the threshold, reason cap, and tie-break order.
package engine

import (
	"math"
	"testing"

	"github.com/harperreed/nutrient/internal/models"
)

func plainRecipe(id string) models.Recipe {
	return models.Recipe{
		ID:              id,
		Name:            id,
		Nutrition:       models.NutritionData{Calories: 600, Protein: 15},
		Difficulty:      models.DifficultyHard,
		CookTimeMinutes: 60,
		Categories:      []string{"other"},
	}
}

func TestScoreRecipeGoalMatch(t *testing.T) {
	r := plainRecipe("r1")
	r.Nutrition = models.NutritionData{Calories: 350, Protein: 25}

	result := ScoreRecipe(r, models.UserPreferences{}, models.UserHistory{}, models.GoalWeightLoss)

	// +0.3 low calorie, +0.2 high protein
	if math.Abs(result.Score-0.5) > 1e-9 {
		t.Errorf("Score = %v, want 0.5", result.Score)
	}
	if result.Category != models.CategoryNutritionOptimized {
		t.Errorf("Category = %s, want nutrition_optimized", result.Category)
	}
	if len(result.Reasons) != 2 || result.Reasons[0] != "low calorie" || result.Reasons[1] != "high protein" {
		t.Errorf("Reasons = %v", result.Reasons)
	}

	// Same recipe under a different goal earns nothing from rule 1.
	other := ScoreRecipe(r, models.UserPreferences{}, models.UserHistory{}, models.GoalMuscleGain)
	if other.Score != 0 {
		t.Errorf("non-weight-loss goal score = %v, want 0", other.Score)
	}
}

func TestScoreRecipeHistoryMatchOnce(t *testing.T) {
	r := plainRecipe("r1")
	r.Categories = []string{"noodles", "stir_fry"}
	hist := models.UserHistory{FrequentCategories: map[string]int{"noodles": 5, "stir_fry": 4}}

	result := ScoreRecipe(r, models.UserPreferences{}, hist, models.GoalMaintainHealth)

	// Only the first matching category counts.
	if math.Abs(result.Score-0.2) > 1e-9 {
		t.Errorf("Score = %v, want 0.2 (no double counting)", result.Score)
	}
	if result.Category != models.CategoryHistoryBased {
		t.Errorf("Category = %s, want history_based", result.Category)
	}

	// A count of exactly 2 is not frequent enough.
	hist = models.UserHistory{FrequentCategories: map[string]int{"noodles": 2}}
	if got := ScoreRecipe(r, models.UserPreferences{}, hist, models.GoalMaintainHealth); got.Score != 0 {
		t.Errorf("count==2 should not match, score = %v", got.Score)
	}
}

func TestScoreRecipeNovelty(t *testing.T) {
	r := plainRecipe("r1")
	r.IsNew = true

	result := ScoreRecipe(r, models.UserPreferences{}, models.UserHistory{}, models.GoalMaintainHealth)
	if math.Abs(result.Score-0.3) > 1e-9 {
		t.Errorf("Score = %v, want 0.3", result.Score)
	}
	if result.Category != models.CategoryDiscovery {
		t.Errorf("Category = %s, want discovery", result.Category)
	}
	if len(result.Reasons) != 1 || result.Reasons[0] != "new arrival" {
		t.Errorf("Reasons = %v", result.Reasons)
	}
}

func TestScoreRecipeDifficultyAndTime(t *testing.T) {
	r := plainRecipe("r1")
	r.Difficulty = models.DifficultyEasy
	r.CookTimeMinutes = 10
	prefs := models.UserPreferences{Difficulty: []models.Difficulty{models.DifficultyEasy}}

	result := ScoreRecipe(r, prefs, models.UserHistory{}, models.GoalMaintainHealth)

	// +0.1 difficulty (no reason) +0.1 time (with quick reason)
	if math.Abs(result.Score-0.2) > 1e-9 {
		t.Errorf("Score = %v, want 0.2", result.Score)
	}
	if len(result.Reasons) != 1 || result.Reasons[0] != "quick to make" {
		t.Errorf("Reasons = %v", result.Reasons)
	}

	// Default 30-minute budget applies when preferences leave it unset.
	r.CookTimeMinutes = 30
	result = ScoreRecipe(r, models.UserPreferences{}, models.UserHistory{}, models.GoalMaintainHealth)
	if math.Abs(result.Score-0.1) > 1e-9 {
		t.Errorf("30min under default budget: score = %v, want 0.1", result.Score)
	}
	if len(result.Reasons) != 0 {
		t.Errorf("30min is not quick, reasons = %v", result.Reasons)
	}
}

func TestScoreRecipePopularity(t *testing.T) {
	r := plainRecipe("r1")
	r.Popularity = 0.9

	result := ScoreRecipe(r, models.UserPreferences{}, models.UserHistory{}, models.GoalMaintainHealth)
	if math.Abs(result.Score-0.1) > 1e-9 {
		t.Errorf("Score = %v, want 0.1", result.Score)
	}
	if result.Reasons[0] != "trending" {
		t.Errorf("Reasons = %v", result.Reasons)
	}

	r.Popularity = 0.8
	if got := ScoreRecipe(r, models.UserPreferences{}, models.UserHistory{}, models.GoalMaintainHealth); got.Score != 0 {
		t.Errorf("popularity 0.8 should not score, got %v", got.Score)
	}
}

func TestScoreRecipeReasonsCapped(t *testing.T) {
	r := plainRecipe("r1")
	r.Nutrition = models.NutritionData{Calories: 300, Protein: 30}
	r.IsNew = true
	r.CookTimeMinutes = 10
	r.Popularity = 0.95

	result := ScoreRecipe(r, models.UserPreferences{}, models.UserHistory{}, models.GoalWeightLoss)
	if len(result.Reasons) != 2 {
		t.Errorf("reasons should cap at 2, got %v", result.Reasons)
	}
	// Rule-application order survives the cap.
	if result.Reasons[0] != "low calorie" || result.Reasons[1] != "high protein" {
		t.Errorf("Reasons = %v", result.Reasons)
	}
}

func TestRecommendThresholdAndOrder(t *testing.T) {
	low := plainRecipe("low")         // scores 0
	mid := plainRecipe("mid")         // novelty only: 0.3, at threshold
	strongA := plainRecipe("strongA") // 0.5
	strongB := plainRecipe("strongB") // 0.5, later in catalog

	mid.IsNew = true
	strongA.Nutrition = models.NutritionData{Calories: 300, Protein: 25}
	strongB.Nutrition = models.NutritionData{Calories: 300, Protein: 25}

	catalog := []models.Recipe{low, strongA, mid, strongB}
	results := Recommend(catalog, models.UserPreferences{}, models.UserHistory{}, models.GoalWeightLoss, 10)

	// 0.3 does not beat the strict threshold; neither does 0.
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2: %+v", len(results), results)
	}
	for _, r := range results {
		if r.Score <= 0.3 {
			t.Errorf("result %s has score %v <= 0.3", r.Recipe.ID, r.Score)
		}
	}
	// Stable sort: equal scores keep catalog order.
	if results[0].Recipe.ID != "strongA" || results[1].Recipe.ID != "strongB" {
		t.Errorf("tie-break order: %s, %s", results[0].Recipe.ID, results[1].Recipe.ID)
	}
}

func TestRecommendTruncates(t *testing.T) {
	var catalog []models.Recipe
	for i := 0; i < 6; i++ {
		r := plainRecipe(string(rune('a' + i)))
		r.IsNew = true
		r.CookTimeMinutes = 20
		catalog = append(catalog, r)
	}
	results := Recommend(catalog, models.UserPreferences{}, models.UserHistory{}, models.GoalMaintainHealth, 3)
	if len(results) != 3 {
		t.Errorf("got %d results, want 3", len(results))
	}
}

func TestGapFillingRecommendations(t *testing.T) {
	r := plainRecipe("r1")
	r.Nutrition = models.NutritionData{Calories: 400, Protein: 32}
	weak := plainRecipe("r2")
	weak.Nutrition = models.NutritionData{Calories: 400, Protein: 8}

	gap := GapReport{Protein: 40}
	results := GapFillingRecommendations([]models.Recipe{weak, r}, gap, 0)

	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	// (32/40)*100 = 80, ranked first.
	if results[0].Recipe.ID != "r1" || math.Abs(results[0].Score-80) > 1e-9 {
		t.Errorf("top = %s score %v, want r1 at 80", results[0].Recipe.ID, results[0].Score)
	}
	if results[0].Reasons[0] != "protein match" {
		t.Errorf("Reasons = %v", results[0].Reasons)
	}

	// No protein gap, nothing to fill.
	if got := GapFillingRecommendations([]models.Recipe{r}, GapReport{}, 0); got != nil {
		t.Errorf("zero gap should yield nil, got %v", got)
	}
}

func TestGroupByCategory(t *testing.T) {
	results := []models.RecommendationResult{
		{Recipe: plainRecipe("a"), Category: models.CategoryDiscovery},
		{Recipe: plainRecipe("b"), Category: models.CategoryHistoryBased},
		{Recipe: plainRecipe("c"), Category: models.CategoryDiscovery},
	}
	groups := GroupByCategory(results)
	if len(groups[models.CategoryDiscovery]) != 2 || len(groups[models.CategoryHistoryBased]) != 1 {
		t.Errorf("groups = %v", groups)
	}
}
