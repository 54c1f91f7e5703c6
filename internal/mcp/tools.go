// ABOUTME: MCP tool implementations for the nutrition engine.
// ABOUTME: Covers profile, meal ledger, targets, gap, recommendations, and plans.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/nutrient/internal/engine"
	"github.com/harperreed/nutrient/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// set_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_profile",
		Description: "Create or replace the health profile used for target calculation",
	}, s.handleSetProfile)

	// get_targets
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_targets",
		Description: "Get daily nutrition targets computed from the stored profile",
	}, s.handleGetTargets)

	// adjust_nutrition
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "adjust_nutrition",
		Description: "Adjust nutrition values for eating scenario, taste, and portion size",
	}, s.handleAdjustNutrition)

	// log_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_meal",
		Description: "Record a consumed meal in the daily ledger",
	}, s.handleLogMeal)

	// list_meals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_meals",
		Description: "List logged meals, optionally filtered by meal slot",
	}, s.handleListMeals)

	// delete_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_meal",
		Description: "Delete a logged meal by ID or ID prefix",
	}, s.handleDeleteMeal)

	// nutrition_gap
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "nutrition_gap",
		Description: "Get remaining nutrition room for today (sodium reported as amount over budget)",
	}, s.handleNutritionGap)

	// recommend_recipes
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "recommend_recipes",
		Description: "Get scored recipe recommendations from the catalog",
	}, s.handleRecommendRecipes)

	// generate_meal_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_meal_plan",
		Description: "Generate a daily meal plan (subject to the membership tier quota)",
	}, s.handleGenerateMealPlan)
}

// Tool input/output types

type setProfileInput struct {
	Age           int     `json:"age" jsonschema:"description=Age in years,required"`
	Gender        string  `json:"gender" jsonschema:"description=Gender (male or female),required"`
	HeightCm      float64 `json:"height_cm" jsonschema:"description=Height in centimeters,required"`
	WeightKg      float64 `json:"weight_kg" jsonschema:"description=Body weight in kilograms (max 300),required"`
	ActivityLevel string  `json:"activity_level" jsonschema:"description=Activity level (light, moderate, heavy),required"`
	HealthGoal    string  `json:"health_goal" jsonschema:"description=Health goal (weight_loss, muscle_gain, maintain_health, special_nutrition),required"`
	SpecialFocus  string  `json:"special_focus,omitempty" jsonschema:"description=Focus for special_nutrition (low_sodium, high_protein, low_carb, high_fiber)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type nutritionInput struct {
	Calories float64 `json:"calories" jsonschema:"description=Calories in kcal,required"`
	Protein  float64 `json:"protein,omitempty" jsonschema:"description=Protein in grams"`
	Carbs    float64 `json:"carbs,omitempty" jsonschema:"description=Carbohydrates in grams"`
	Fat      float64 `json:"fat,omitempty" jsonschema:"description=Fat in grams"`
	Sodium   float64 `json:"sodium,omitempty" jsonschema:"description=Sodium in milligrams"`
	Fiber    float64 `json:"fiber,omitempty" jsonschema:"description=Fiber in grams"`
}

type adjustNutritionInput struct {
	nutritionInput
	Scenario string `json:"scenario,omitempty" jsonschema:"description=Eating scenario (home, restaurant, canteen); defaults to stored settings"`
	Taste    string `json:"taste,omitempty" jsonschema:"description=Taste preference (light, normal, heavy)"`
	Portion  string `json:"portion,omitempty" jsonschema:"description=Portion size (small, medium, large)"`
}

type logMealInput struct {
	Name string `json:"name" jsonschema:"description=Meal name,required"`
	Slot string `json:"slot" jsonschema:"description=Meal slot (breakfast, lunch, dinner, snack),required"`
	nutritionInput
	RecipeID   string `json:"recipe_id,omitempty" jsonschema:"description=Catalog recipe this meal came from"`
	RecordedAt string `json:"recorded_at,omitempty" jsonschema:"description=Timestamp (ISO 8601), defaults to now"`
	Notes      string `json:"notes,omitempty" jsonschema:"description=Optional notes"`
}

type mealOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slot    string `json:"slot"`
	Message string `json:"message"`
}

type listMealsInput struct {
	Slot  string `json:"slot,omitempty" jsonschema:"description=Filter by meal slot (breakfast, lunch, dinner, snack)"`
	Limit int    `json:"limit,omitempty" jsonschema:"description=Max results (default 20)"`
}

type deleteMealInput struct {
	ID string `json:"id" jsonschema:"description=Meal ID or prefix,required"`
}

type recommendInput struct {
	Limit           int      `json:"limit,omitempty" jsonschema:"description=Max results (default 10)"`
	CuisineTypes    []string `json:"cuisine_types,omitempty" jsonschema:"description=Preferred cuisine types"`
	Difficulty      []string `json:"difficulty,omitempty" jsonschema:"description=Acceptable difficulties (easy, medium, hard)"`
	CookTimeMinutes int      `json:"cook_time_minutes,omitempty" jsonschema:"description=Cook time budget in minutes (default 30)"`
}

type generatePlanInput struct{}

func (i nutritionInput) toData() models.NutritionData {
	return models.NutritionData{
		Calories: i.Calories,
		Protein:  i.Protein,
		Carbs:    i.Carbs,
		Fat:      i.Fat,
		Sodium:   i.Sodium,
		Fiber:    i.Fiber,
	}
}

// Tool handlers

func (s *Server) handleSetProfile(ctx context.Context, req *mcp.CallToolRequest, input setProfileInput) (*mcp.CallToolResult, simpleOutput, error) {
	p := &models.HealthProfile{
		Age:           input.Age,
		Gender:        models.Gender(input.Gender),
		HeightCm:      input.HeightCm,
		WeightKg:      input.WeightKg,
		ActivityLevel: models.ActivityLevel(input.ActivityLevel),
		HealthGoal:    models.HealthGoal(input.HealthGoal),
		SpecialFocus:  models.SpecialFocus(input.SpecialFocus),
	}

	if err := s.repo.SetProfile(p); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to set profile: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Profile saved: %s, %d, %.1f kg, goal %s", p.Gender, p.Age, p.WeightKg, p.HealthGoal),
	}, nil
}

func (s *Server) handleGetTargets(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, models.NutritionTargets, error) {
	targets, err := s.targets()
	if err != nil {
		return nil, models.NutritionTargets{}, fmt.Errorf("failed to compute targets: %w", err)
	}
	return nil, targets, nil
}

func (s *Server) handleAdjustNutrition(ctx context.Context, req *mcp.CallToolRequest, input adjustNutritionInput) (*mcp.CallToolResult, models.NutritionData, error) {
	settings, err := s.repo.GetSettings()
	if err != nil {
		return nil, models.NutritionData{}, fmt.Errorf("failed to read settings: %w", err)
	}

	if input.Scenario != "" {
		settings.Scenario = models.Scenario(input.Scenario)
	}
	if input.Taste != "" {
		settings.Taste = models.Taste(input.Taste)
	}
	if input.Portion != "" {
		settings.Portion = models.Portion(input.Portion)
	}
	if err := settings.Validate(); err != nil {
		return nil, models.NutritionData{}, err
	}

	return nil, engine.ApplyNutritionAdjustment(input.toData(), settings), nil
}

func (s *Server) handleLogMeal(ctx context.Context, req *mcp.CallToolRequest, input logMealInput) (*mcp.CallToolResult, mealOutput, error) {
	if !models.IsValidMealTime(input.Slot) {
		return nil, mealOutput{}, fmt.Errorf("unknown meal slot: %s", input.Slot)
	}

	m := models.NewMealEntry(input.Name, models.MealTime(input.Slot), input.toData())

	if input.RecordedAt != "" {
		t, err := time.Parse(time.RFC3339, input.RecordedAt)
		if err != nil {
			t, err = time.Parse("2006-01-02 15:04", input.RecordedAt)
		}
		if err == nil {
			m.WithRecordedAt(t)
		}
	}

	if input.Notes != "" {
		m.WithNotes(input.Notes)
	}
	if input.RecipeID != "" {
		m.WithRecipeID(input.RecipeID)
	}

	if err := s.repo.CreateMeal(m); err != nil {
		return nil, mealOutput{}, fmt.Errorf("failed to log meal: %w", err)
	}

	return nil, mealOutput{
		ID:      m.ID.String()[:8],
		Name:    m.Name,
		Slot:    input.Slot,
		Message: fmt.Sprintf("Logged %s: %s, %.0f kcal (ID: %s)", input.Slot, m.Name, m.Nutrition.Calories, m.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListMeals(ctx context.Context, req *mcp.CallToolRequest, input listMealsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	var slot *models.MealTime
	if input.Slot != "" {
		if !models.IsValidMealTime(input.Slot) {
			return nil, nil, fmt.Errorf("unknown meal slot: %s", input.Slot)
		}
		mt := models.MealTime(input.Slot)
		slot = &mt
	}

	meals, err := s.repo.ListMeals(slot, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list meals: %w", err)
	}

	if len(meals) == 0 {
		return nil, map[string]interface{}{"message": "No meals logged."}, nil
	}

	return nil, meals, nil
}

func (s *Server) handleDeleteMeal(ctx context.Context, req *mcp.CallToolRequest, input deleteMealInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteMeal(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete meal: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted meal: %s", input.ID),
	}, nil
}

func (s *Server) handleNutritionGap(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, engine.GapReport, error) {
	targets, err := s.targets()
	if err != nil {
		return nil, engine.GapReport{}, fmt.Errorf("failed to compute targets: %w", err)
	}

	now := time.Now()
	meals, err := s.repo.MealsForDay(now)
	if err != nil {
		return nil, engine.GapReport{}, fmt.Errorf("failed to read meal ledger: %w", err)
	}

	consumed := engine.ConsumedToday(targets, meals, now)
	return nil, engine.CalculateNutritionGap(targets, consumed), nil
}

func (s *Server) handleRecommendRecipes(ctx context.Context, req *mcp.CallToolRequest, input recommendInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 10
	}

	prefs := models.UserPreferences{
		CuisineTypes:    input.CuisineTypes,
		CookTimeMinutes: input.CookTimeMinutes,
	}
	for _, d := range input.Difficulty {
		prefs.Difficulty = append(prefs.Difficulty, models.Difficulty(d))
	}

	var hist models.UserHistory
	goal := models.GoalMaintainHealth
	if profile, err := s.repo.GetProfile(); err == nil {
		goal = profile.HealthGoal
		hist.ProfileSnapshot = profile
	}

	results := engine.Recommend(s.catalog, prefs, hist, goal, input.Limit)
	if len(results) == 0 {
		return nil, map[string]interface{}{"message": "No recipes scored above the recommendation threshold."}, nil
	}

	return nil, results, nil
}

func (s *Server) handleGenerateMealPlan(ctx context.Context, req *mcp.CallToolRequest, input generatePlanInput) (*mcp.CallToolResult, any, error) {
	targets, err := s.targets()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute targets: %w", err)
	}

	gen := &engine.QuotaLimitedGenerator{Counter: s.repo, Tier: s.tier}
	plan, err := gen.Generate(targets, s.catalog, time.Now())
	if err != nil {
		return nil, nil, err
	}

	if err := s.repo.SaveMealPlan(plan); err != nil {
		return nil, nil, fmt.Errorf("failed to save meal plan: %w", err)
	}

	return nil, plan, nil
}
