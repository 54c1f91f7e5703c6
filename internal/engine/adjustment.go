// ABOUTME: Adjustment coefficient engine for scenario/taste/portion correction.
// ABOUTME: Referentially transparent; safe to call on every slider change.
package engine

import (
	"github.com/harperreed/nutrient/internal/models"
)

var scenarioCoefficients = map[models.Scenario]float64{
	models.ScenarioHome:       1.0,
	models.ScenarioRestaurant: 1.25,
	models.ScenarioCanteen:    1.1,
}

var tasteCoefficients = map[models.Taste]float64{
	models.TasteLight:  0.7,
	models.TasteNormal: 1.0,
	models.TasteHeavy:  1.4,
}

var portionCoefficients = map[models.Portion]float64{
	models.PortionSmall:  0.7,
	models.PortionMedium: 1.0,
	models.PortionLarge:  1.5,
}

// Only 30% of the scenario/taste effect bleeds into calories: oil and
// salt differences matter less for total energy than for fat and sodium.
const calorieBleedFactor = 0.3

// CalculateAdjustmentCoefficients looks up the multiplier for each
// settings dimension. Unknown values fall back to the neutral 1.0.
func CalculateAdjustmentCoefficients(s models.AdjustmentSettings) models.AdjustmentCoefficients {
	coef := models.AdjustmentCoefficients{Scenario: 1.0, Taste: 1.0, Portion: 1.0}
	if v, ok := scenarioCoefficients[s.Scenario]; ok {
		coef.Scenario = v
	}
	if v, ok := tasteCoefficients[s.Taste]; ok {
		coef.Taste = v
	}
	if v, ok := portionCoefficients[s.Portion]; ok {
		coef.Portion = v
	}
	return coef
}

// ApplyNutritionAdjustment corrects a meal's nutrition for cooking
// context. Portion scales everything; scenario and taste concentrate on
// fat and sodium, with a damped bleed into calories. Applying the
// default settings is the identity.
func ApplyNutritionAdjustment(original models.NutritionData, s models.AdjustmentSettings) models.NutritionData {
	coef := CalculateAdjustmentCoefficients(s)
	fatSodiumCoef := coef.Scenario * coef.Taste
	portionCoef := coef.Portion

	return models.NutritionData{
		Calories: models.Round(original.Calories * portionCoef * (1 + (fatSodiumCoef-1)*calorieBleedFactor)),
		Protein:  models.Round1(original.Protein * portionCoef),
		Carbs:    models.Round1(original.Carbs * portionCoef),
		Fat:      models.Round1(original.Fat * portionCoef * fatSodiumCoef),
		Sodium:   models.Round(original.Sodium * portionCoef * fatSodiumCoef),
		Fiber:    models.Round1(original.Fiber * portionCoef),
	}
}
