// ABOUTME: MCP resource implementations for the workout store.
// ABOUTME: Provides workouts://recent with the latest workouts and their exercises.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	recentURI   = "workouts://recent"
	recentLimit = 10
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recentURI,
		Name:        "Recent Workouts",
		Description: "Last 10 workouts with their exercises",
		MIMEType:    "application/json",
	}, s.handleRecentResource)
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts, err := s.recentWorkouts(recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	details := make([]workoutDetailView, 0, len(workouts))
	for _, w := range workouts {
		d, err := s.repo.GetWorkoutDetail(w.UUID)
		if err != nil {
			return nil, fmt.Errorf("failed to load workout %s: %w", w.UUID, err)
		}
		details = append(details, newWorkoutDetailView(d))
	}

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"workouts":     details,
		"count":        len(details),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      recentURI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
