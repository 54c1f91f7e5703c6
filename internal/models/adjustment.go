// ABOUTME: AdjustmentSettings and coefficient types for cooking-context correction.
// ABOUTME: Settings are the user's last-used preference, persisted across sessions.
package models

import "fmt"

// Scenario describes where a meal was prepared.
type Scenario string

const (
	ScenarioHome       Scenario = "home"
	ScenarioRestaurant Scenario = "restaurant"
	ScenarioCanteen    Scenario = "canteen"
)

// Taste describes how heavily a meal was seasoned.
type Taste string

const (
	TasteLight  Taste = "light"
	TasteNormal Taste = "normal"
	TasteHeavy  Taste = "heavy"
)

// Portion describes serving size relative to a standard serving.
type Portion string

const (
	PortionSmall  Portion = "small"
	PortionMedium Portion = "medium"
	PortionLarge  Portion = "large"
)

// AdjustmentSettings is the (scenario, taste, portion) triple the user
// last applied. One value per user.
type AdjustmentSettings struct {
	Scenario Scenario `json:"scenario"`
	Taste    Taste    `json:"taste"`
	Portion  Portion  `json:"portion"`
}

// DefaultAdjustmentSettings is the identity triple: applying it leaves
// nutrition values unchanged.
func DefaultAdjustmentSettings() AdjustmentSettings {
	return AdjustmentSettings{
		Scenario: ScenarioHome,
		Taste:    TasteNormal,
		Portion:  PortionMedium,
	}
}

// Validate rejects unknown enum values.
func (s AdjustmentSettings) Validate() error {
	switch s.Scenario {
	case ScenarioHome, ScenarioRestaurant, ScenarioCanteen:
	default:
		return fmt.Errorf("%w: unknown scenario %q", ErrInvalidInput, s.Scenario)
	}
	switch s.Taste {
	case TasteLight, TasteNormal, TasteHeavy:
	default:
		return fmt.Errorf("%w: unknown taste %q", ErrInvalidInput, s.Taste)
	}
	switch s.Portion {
	case PortionSmall, PortionMedium, PortionLarge:
	default:
		return fmt.Errorf("%w: unknown portion %q", ErrInvalidInput, s.Portion)
	}
	return nil
}

// AdjustmentCoefficients are the multipliers derived from settings.
// A pure function of AdjustmentSettings; no independent lifecycle.
type AdjustmentCoefficients struct {
	Scenario float64 `json:"scenario"`
	Taste    float64 `json:"taste"`
	Portion  float64 `json:"portion"`
}
