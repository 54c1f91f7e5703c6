// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/nutrient/internal/catalog"
	"github.com/harperreed/nutrient/internal/engine"
	"github.com/harperreed/nutrient/internal/models"
	"github.com/harperreed/nutrient/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// setupTestServer creates a server backed by a temp-dir database.
func setupTestServer(t *testing.T, tier models.MembershipTier) *Server {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "nutrient.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	recipes, err := catalog.Load()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	server, err := NewServer(db, recipes, tier)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func setTestProfile(t *testing.T, s *Server) {
	t.Helper()
	_, _, err := s.handleSetProfile(context.Background(), &mcp.CallToolRequest{}, setProfileInput{
		Age:           30,
		Gender:        "male",
		HeightCm:      175,
		WeightKg:      75,
		ActivityLevel: "moderate",
		HealthGoal:    "weight_loss",
	})
	if err != nil {
		t.Fatalf("set profile: %v", err)
	}
}

func TestNewServer(t *testing.T) {
	server := setupTestServer(t, models.TierFree)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.repo == nil {
		t.Error("Expected non-nil repo")
	}
	if len(server.catalog) == 0 {
		t.Error("Expected non-empty catalog")
	}
}

func TestHandleSetProfile(t *testing.T) {
	server := setupTestServer(t, models.TierFree)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     setProfileInput
		wantErr   bool
		errSubstr string
	}{
		{
			name: "valid profile",
			input: setProfileInput{
				Age: 30, Gender: "male", HeightCm: 175, WeightKg: 75,
				ActivityLevel: "moderate", HealthGoal: "weight_loss",
			},
			wantErr: false,
		},
		{
			name: "special nutrition with focus",
			input: setProfileInput{
				Age: 45, Gender: "female", HeightCm: 162, WeightKg: 58,
				ActivityLevel: "light", HealthGoal: "special_nutrition",
				SpecialFocus: "low_sodium",
			},
			wantErr: false,
		},
		{
			name: "weight over limit",
			input: setProfileInput{
				Age: 30, Gender: "male", HeightCm: 175, WeightKg: 301,
				ActivityLevel: "moderate", HealthGoal: "weight_loss",
			},
			wantErr:   true,
			errSubstr: "invalid input",
		},
		{
			name: "unknown activity level",
			input: setProfileInput{
				Age: 30, Gender: "male", HeightCm: 175, WeightKg: 75,
				ActivityLevel: "sedentary", HealthGoal: "weight_loss",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleSetProfile(ctx, &mcp.CallToolRequest{}, tt.input)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				} else if tt.errSubstr != "" && !strings.Contains(err.Error(), tt.errSubstr) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errSubstr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if output.Message == "" {
				t.Error("Expected non-empty message")
			}
		})
	}
}

func TestHandleGetTargetsWithoutProfile(t *testing.T) {
	server := setupTestServer(t, models.TierFree)

	_, targets, err := server.handleGetTargets(context.Background(), &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if targets != models.DefaultTargets() {
		t.Errorf("targets = %+v, want defaults", targets)
	}
}

func TestHandleGetTargetsWithProfile(t *testing.T) {
	server := setupTestServer(t, models.TierFree)
	setTestProfile(t, server)

	_, targets, err := server.handleGetTargets(context.Background(), &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if targets.Calories != 2232 {
		t.Errorf("Calories = %d, want 2232", targets.Calories)
	}
	if targets.Protein != 167 {
		t.Errorf("Protein = %d, want 167", targets.Protein)
	}
}

func TestHandleAdjustNutrition(t *testing.T) {
	server := setupTestServer(t, models.TierFree)
	ctx := context.Background()

	// Default settings are identity
	_, out, err := server.handleAdjustNutrition(ctx, &mcp.CallToolRequest{}, adjustNutritionInput{
		nutritionInput: nutritionInput{Calories: 500, Protein: 30},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out.Calories != 500 || out.Protein != 30 {
		t.Errorf("identity adjustment = %+v", out)
	}

	// Explicit overrides
	_, out, err = server.handleAdjustNutrition(ctx, &mcp.CallToolRequest{}, adjustNutritionInput{
		nutritionInput: nutritionInput{Calories: 500, Protein: 30, Sodium: 600},
		Scenario:       "restaurant",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out.Calories <= 500 {
		t.Errorf("restaurant adjustment did not raise calories: %v", out.Calories)
	}
	if out.Sodium != 750 {
		t.Errorf("Sodium = %v, want 750", out.Sodium)
	}

	// Bad override is rejected
	_, _, err = server.handleAdjustNutrition(ctx, &mcp.CallToolRequest{}, adjustNutritionInput{
		nutritionInput: nutritionInput{Calories: 500},
		Scenario:       "spaceship",
	})
	if err == nil {
		t.Error("Expected error for unknown scenario")
	}
}

func TestHandleLogMealAndList(t *testing.T) {
	server := setupTestServer(t, models.TierFree)
	ctx := context.Background()

	_, out, err := server.handleLogMeal(ctx, &mcp.CallToolRequest{}, logMealInput{
		Name:           "chicken bowl",
		Slot:           "lunch",
		nutritionInput: nutritionInput{Calories: 520, Protein: 38},
		Notes:          "post workout",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(out.ID) != 8 {
		t.Errorf("ID = %q, want 8-char prefix", out.ID)
	}

	_, listed, err := server.handleListMeals(ctx, &mcp.CallToolRequest{}, listMealsInput{Slot: "lunch"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	meals, ok := listed.([]*models.MealEntry)
	if !ok || len(meals) != 1 {
		t.Fatalf("listed = %#v", listed)
	}
	if meals[0].Name != "chicken bowl" {
		t.Errorf("meal name = %q", meals[0].Name)
	}

	// Unknown slot rejected
	_, _, err = server.handleLogMeal(ctx, &mcp.CallToolRequest{}, logMealInput{
		Name: "x", Slot: "brunch",
		nutritionInput: nutritionInput{Calories: 100},
	})
	if err == nil {
		t.Error("Expected error for unknown slot")
	}
}

func TestHandleDeleteMeal(t *testing.T) {
	server := setupTestServer(t, models.TierFree)
	ctx := context.Background()

	_, out, err := server.handleLogMeal(ctx, &mcp.CallToolRequest{}, logMealInput{
		Name: "snack", Slot: "snack",
		nutritionInput: nutritionInput{Calories: 150},
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := server.handleDeleteMeal(ctx, &mcp.CallToolRequest{}, deleteMealInput{ID: out.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, _, err := server.handleDeleteMeal(ctx, &mcp.CallToolRequest{}, deleteMealInput{ID: out.ID}); err == nil {
		t.Error("Expected error deleting twice")
	}
}

func TestHandleNutritionGap(t *testing.T) {
	server := setupTestServer(t, models.TierFree)
	ctx := context.Background()
	setTestProfile(t, server)

	_, _, err := server.handleLogMeal(ctx, &mcp.CallToolRequest{}, logMealInput{
		Name: "breakfast", Slot: "breakfast",
		nutritionInput: nutritionInput{Calories: 400, Protein: 25, Sodium: 500},
	})
	if err != nil {
		t.Fatal(err)
	}

	_, gap, err := server.handleNutritionGap(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// 2232 target - 400 consumed
	if gap.Calories != 1832 {
		t.Errorf("gap.Calories = %v, want 1832", gap.Calories)
	}
	if gap.Sodium != 0 {
		t.Errorf("gap.Sodium = %v, want 0 (under budget)", gap.Sodium)
	}
}

func TestHandleRecommendRecipes(t *testing.T) {
	server := setupTestServer(t, models.TierFree)
	ctx := context.Background()
	setTestProfile(t, server)

	_, out, err := server.handleRecommendRecipes(ctx, &mcp.CallToolRequest{}, recommendInput{Limit: 5})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	results, ok := out.([]models.RecommendationResult)
	if !ok {
		t.Fatalf("out = %#v", out)
	}
	if len(results) == 0 || len(results) > 5 {
		t.Errorf("got %d results", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Error("results not sorted by score descending")
		}
	}
}

func TestHandleGenerateMealPlanQuota(t *testing.T) {
	server := setupTestServer(t, models.TierFree)
	ctx := context.Background()
	setTestProfile(t, server)

	_, out, err := server.handleGenerateMealPlan(ctx, &mcp.CallToolRequest{}, generatePlanInput{})
	if err != nil {
		t.Fatalf("first generation: %v", err)
	}
	plan, ok := out.(*models.MealPlan)
	if !ok {
		t.Fatalf("out = %#v", out)
	}
	if len(plan.Breakfast.Recipes) == 0 || len(plan.Lunch.Recipes) == 0 || len(plan.Dinner.Recipes) == 0 {
		t.Error("plan has empty slots")
	}

	// Free tier: second generation the same day hits the quota.
	_, _, err = server.handleGenerateMealPlan(ctx, &mcp.CallToolRequest{}, generatePlanInput{})
	if err == nil {
		t.Fatal("Expected quota error on second generation")
	}
	if !errors.Is(err, engine.ErrQuotaExceeded) {
		t.Errorf("error = %v, want quota exceeded", err)
	}
}

func TestHandleGenerateMealPlanPlusTier(t *testing.T) {
	server := setupTestServer(t, models.TierPlus)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, _, err := server.handleGenerateMealPlan(ctx, &mcp.CallToolRequest{}, generatePlanInput{}); err != nil {
			t.Fatalf("generation %d: %v", i+1, err)
		}
	}
}

func TestTargetsResource(t *testing.T) {
	server := setupTestServer(t, models.TierFree)
	ctx := context.Background()
	setTestProfile(t, server)

	result, err := server.handleTargetsResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("got %d contents", len(result.Contents))
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &payload); err != nil {
		t.Fatalf("invalid JSON payload: %v", err)
	}
	for _, key := range []string{"date", "targets", "consumed", "remaining", "estimated"} {
		if _, ok := payload[key]; !ok {
			t.Errorf("payload missing %q", key)
		}
	}
	// Empty ledger means the time-bucket estimate was used.
	if payload["estimated"] != true {
		t.Error("expected estimated=true with empty ledger")
	}
}

func TestLogResource(t *testing.T) {
	server := setupTestServer(t, models.TierFree)
	ctx := context.Background()

	_, _, err := server.handleLogMeal(ctx, &mcp.CallToolRequest{}, logMealInput{
		Name: "oatmeal", Slot: "breakfast",
		nutritionInput: nutritionInput{Calories: 310, Protein: 11},
		RecordedAt:     time.Now().Format(time.RFC3339),
	})
	if err != nil {
		t.Fatal(err)
	}

	result, err := server.handleLogResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &payload); err != nil {
		t.Fatalf("invalid JSON payload: %v", err)
	}
	if payload["count"] != float64(1) {
		t.Errorf("count = %v, want 1", payload["count"])
	}
}

func TestPlanResourceEmpty(t *testing.T) {
	server := setupTestServer(t, models.TierFree)

	result, err := server.handlePlanResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(result.Contents[0].Text, "No meal plan") {
		t.Errorf("payload = %s", result.Contents[0].Text)
	}
}

func TestPlanResourceAfterGeneration(t *testing.T) {
	server := setupTestServer(t, models.TierPlus)
	ctx := context.Background()

	if _, _, err := server.handleGenerateMealPlan(ctx, &mcp.CallToolRequest{}, generatePlanInput{}); err != nil {
		t.Fatal(err)
	}

	result, err := server.handlePlanResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var plan models.MealPlan
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &plan); err != nil {
		t.Fatalf("invalid plan payload: %v", err)
	}
	if len(plan.Breakfast.Recipes) == 0 {
		t.Error("plan payload has no breakfast recipes")
	}
}
