// ABOUTME: Recommendation scorer ranking catalog recipes against goal, history, and preferences.
// ABOUTME: Additive independent rules, score threshold, stable descending sort.
package engine

import (
	"sort"

	"github.com/harperreed/nutrient/internal/models"
)

const (
	// A recipe must beat this score to appear in results.
	scoreThreshold = 0.3
	// At most this many reason texts are kept per recipe, in
	// rule-application order.
	maxReasons = 2

	lowCalorieThreshold  = 400
	highProteinThreshold = 20
	quickCookMinutes     = 15
	trendingPopularity   = 0.8
	frequentCategoryMin  = 2
)

// ScoreRecipe applies the additive scoring rules to one recipe. Each
// rule is independent; the category tag records the last rule family
// that claimed the recipe, defaulting to discovery.
func ScoreRecipe(r models.Recipe, prefs models.UserPreferences, hist models.UserHistory, goal models.HealthGoal) models.RecommendationResult {
	result := models.RecommendationResult{
		Recipe:   r,
		Category: models.CategoryDiscovery,
	}
	var reasons []string

	// Goal match
	if goal == models.GoalWeightLoss {
		if r.Nutrition.Calories < lowCalorieThreshold {
			result.Score += 0.3
			reasons = append(reasons, "low calorie")
			result.Category = models.CategoryNutritionOptimized
		}
		if r.Nutrition.Protein > highProteinThreshold {
			result.Score += 0.2
			reasons = append(reasons, "high protein")
			result.Category = models.CategoryNutritionOptimized
		}
	}

	// History match: first frequent category only, no double counting.
	for _, cat := range r.Categories {
		if hist.FrequentCategories[cat] > frequentCategoryMin {
			result.Score += 0.2
			reasons = append(reasons, "you often cook "+cat)
			result.Category = models.CategoryHistoryBased
			break
		}
	}

	// Novelty
	if r.IsNew {
		result.Score += 0.3
		reasons = append(reasons, "new arrival")
		result.Category = models.CategoryDiscovery
	}

	// Difficulty fit: score only, no reason text.
	if prefs.AcceptsDifficulty(r.Difficulty) {
		result.Score += 0.1
	}

	// Time fit
	if r.CookTimeMinutes <= prefs.CookTimeLimit() {
		result.Score += 0.1
		if r.CookTimeMinutes <= quickCookMinutes {
			reasons = append(reasons, "quick to make")
		}
	}

	// Popularity
	if r.Popularity > trendingPopularity {
		result.Score += 0.1
		reasons = append(reasons, "trending")
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	result.Reasons = reasons
	return result
}

// Recommend scores the catalog, keeps recipes above the threshold, sorts
// by score descending (stable, so catalog order breaks ties), and
// truncates to n. n <= 0 means no truncation.
func Recommend(catalog []models.Recipe, prefs models.UserPreferences, hist models.UserHistory, goal models.HealthGoal, n int) []models.RecommendationResult {
	var results []models.RecommendationResult
	for _, r := range catalog {
		scored := ScoreRecipe(r, prefs, hist, goal)
		if scored.Score > scoreThreshold {
			results = append(results, scored)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if n > 0 && len(results) > n {
		results = results[:n]
	}
	return results
}

// GapFillingRecommendations ranks recipes by how well their protein
// content fills the remaining protein gap. The match percentage is a
// ranking signal only; there is no pass/fail threshold.
func GapFillingRecommendations(catalog []models.Recipe, gap GapReport, n int) []models.RecommendationResult {
	if gap.Protein <= 0 {
		return nil
	}

	results := make([]models.RecommendationResult, 0, len(catalog))
	for _, r := range catalog {
		score := r.Nutrition.Protein / gap.Protein * 100
		results = append(results, models.RecommendationResult{
			Recipe:   r,
			Score:    score,
			Reasons:  []string{"protein match"},
			Category: models.CategoryNutritionOptimized,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if n > 0 && len(results) > n {
		results = results[:n]
	}
	return results
}

// GroupByCategory buckets results by their category tag for section
// rendering. Section ordering belongs to the presentation layer.
func GroupByCategory(results []models.RecommendationResult) map[models.RecommendationCategory][]models.RecommendationResult {
	groups := make(map[models.RecommendationCategory][]models.RecommendationResult)
	for _, r := range results {
		groups[r.Category] = append(groups[r.Category], r)
	}
	return groups
}
