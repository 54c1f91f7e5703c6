// ABOUTME: NutritionData value type shared by meals, targets, and gap reports.
// ABOUTME: Immutable; transformations return new values with display-precision rounding.
package models

import "math"

// NutritionData holds the nutrient totals for one meal or one day.
// All fields are non-negative. Values are never mutated in place;
// every transformation produces a new NutritionData.
type NutritionData struct {
	Calories float64 `json:"calories"` // kcal
	Protein  float64 `json:"protein"`  // g
	Carbs    float64 `json:"carbs"`    // g
	Fat      float64 `json:"fat"`      // g
	Sodium   float64 `json:"sodium"`   // mg
	Fiber    float64 `json:"fiber"`    // g
}

// Add returns the nutrient-wise sum of two samples.
func (n NutritionData) Add(other NutritionData) NutritionData {
	return NutritionData{
		Calories: n.Calories + other.Calories,
		Protein:  n.Protein + other.Protein,
		Carbs:    n.Carbs + other.Carbs,
		Fat:      n.Fat + other.Fat,
		Sodium:   n.Sodium + other.Sodium,
		Fiber:    n.Fiber + other.Fiber,
	}
}

// Scale returns the sample multiplied by a single factor, rounded to
// display precision (calories and sodium to integers, grams to one decimal).
func (n NutritionData) Scale(factor float64) NutritionData {
	return NutritionData{
		Calories: Round(n.Calories * factor),
		Protein:  Round1(n.Protein * factor),
		Carbs:    Round1(n.Carbs * factor),
		Fat:      Round1(n.Fat * factor),
		Sodium:   Round(n.Sodium * factor),
		Fiber:    Round1(n.Fiber * factor),
	}
}

// Rounded returns the sample snapped to display precision.
func (n NutritionData) Rounded() NutritionData {
	return NutritionData{
		Calories: Round(n.Calories),
		Protein:  Round1(n.Protein),
		Carbs:    Round1(n.Carbs),
		Fat:      Round1(n.Fat),
		Sodium:   Round(n.Sodium),
		Fiber:    Round1(n.Fiber),
	}
}

// IsZero reports whether every nutrient is zero.
func (n NutritionData) IsZero() bool {
	return n == NutritionData{}
}

// Round rounds to the nearest integer, returned as float64 for field reuse.
func Round(v float64) float64 {
	return math.Round(v)
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
