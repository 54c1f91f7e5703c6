// ABOUTME: MCP server setup for the nutrition engine.
// ABOUTME: Wraps MCP server with storage, catalog, and membership tier.
package mcp

import (
	"context"
	"errors"

	"github.com/harperreed/nutrient/internal/engine"
	"github.com/harperreed/nutrient/internal/models"
	"github.com/harperreed/nutrient/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage and catalog access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	catalog   []models.Recipe
	tier      models.MembershipTier
}

// NewServer creates a new MCP server with the given storage and catalog.
func NewServer(repo storage.Repository, catalog []models.Recipe, tier models.MembershipTier) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "nutrient",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		catalog:   catalog,
		tier:      tier,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// targets computes the current nutrition targets, falling back to
// defaults when no profile has been set up.
func (s *Server) targets() (models.NutritionTargets, error) {
	profile, err := s.repo.GetProfile()
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.DefaultTargets(), nil
		}
		return models.NutritionTargets{}, err
	}
	return engine.CalculateNutritionTargets(profile), nil
}
