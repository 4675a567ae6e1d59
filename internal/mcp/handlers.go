// ABOUTME: MCP tool handler implementations for the movierec server
// ABOUTME: Maps recommender results and lookup failures to MCP tool results
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harper/movierec-standalone/internal/core"
	"github.com/harper/movierec-standalone/internal/tmdb"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	recommender *core.Recommender
	posters     *tmdb.Client
}

// RecommendMovies handles the recommend_movies tool
func (h *Handlers) RecommendMovies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title argument is required and must be a string"), nil
	}

	topN := request.GetInt("top_n", 5)
	if topN <= 0 {
		return mcp.NewToolResultError("top_n must be positive"), nil
	}

	results, err := h.recommender.Recommend(title, topN)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("unknown title %q; use list_movies for valid titles", title)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("recommendation failed: %v", err)), nil
	}

	// Poster failures degrade to an empty URL per item
	if h.posters != nil {
		for i := range results {
			results[i].PosterURL = h.posters.PosterURL(ctx, results[i].MovieID)
		}
	}

	response := map[string]interface{}{
		"title":           title,
		"recommendations": results,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ListMovies handles the list_movies tool
func (h *Handlers) ListMovies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 0)

	movies := h.recommender.Movies()
	titles := make([]string, 0, len(movies))
	for _, m := range movies {
		titles = append(titles, m.Title)
	}
	if limit > 0 && limit < len(titles) {
		titles = titles[:limit]
	}

	response := map[string]interface{}{
		"count":  len(titles),
		"titles": titles,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}
