// ABOUTME: MCP resource implementations for the nutrition engine.
// ABOUTME: Provides nutrient://targets/today, nutrient://log/today, and nutrient://plan/latest.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/nutrient/internal/engine"
	"github.com/harperreed/nutrient/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// nutrient://targets/today - Targets, consumption, and remaining gap
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutrient://targets/today",
		Name:        "Today's Nutrition Targets",
		Description: "Daily targets with consumed amounts and remaining gap",
		MIMEType:    "application/json",
	}, s.handleTargetsResource)

	// nutrient://log/today - All meals logged today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutrient://log/today",
		Name:        "Today's Meal Log",
		Description: "All meals logged today with running totals",
		MIMEType:    "application/json",
	}, s.handleLogResource)

	// nutrient://plan/latest - Most recently generated meal plan
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutrient://plan/latest",
		Name:        "Latest Meal Plan",
		Description: "The most recently generated daily meal plan",
		MIMEType:    "application/json",
	}, s.handlePlanResource)
}

func resourceResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// Resource handlers

func (s *Server) handleTargetsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	targets, err := s.targets()
	if err != nil {
		return nil, fmt.Errorf("failed to compute targets: %w", err)
	}

	now := time.Now()
	meals, err := s.repo.MealsForDay(now)
	if err != nil {
		return nil, fmt.Errorf("failed to read meal ledger: %w", err)
	}

	consumed := engine.ConsumedToday(targets, meals, now)
	gap := engine.CalculateNutritionGap(targets, consumed)

	result := map[string]interface{}{
		"date":       now.Format("2006-01-02"),
		"targets":    targets,
		"consumed":   consumed.Rounded(),
		"remaining":  gap,
		"meal_count": len(meals),
		"estimated":  len(meals) == 0,
	}

	return resourceResult("nutrient://targets/today", result)
}

func (s *Server) handleLogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now()
	meals, err := s.repo.MealsForDay(now)
	if err != nil {
		return nil, fmt.Errorf("failed to read meal ledger: %w", err)
	}

	total := engine.SumConsumed(meals)
	result := map[string]interface{}{
		"date":   now.Format("2006-01-02"),
		"meals":  meals,
		"totals": total.Rounded(),
		"count":  len(meals),
	}

	return resourceResult("nutrient://log/today", result)
}

func (s *Server) handlePlanResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	plan, err := s.repo.LatestMealPlan()
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return resourceResult("nutrient://plan/latest", map[string]interface{}{
				"message": "No meal plan generated yet.",
			})
		}
		return nil, fmt.Errorf("failed to read meal plan: %w", err)
	}

	return resourceResult("nutrient://plan/latest", plan)
}
