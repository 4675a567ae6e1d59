// ABOUTME: MCP tool definitions and registration for the movierec server
// ABOUTME: Defines JSON schemas for the recommendation tools
package mcp

import (
	"github.com/harper/movierec-standalone/internal/core"
	"github.com/harper/movierec-standalone/internal/tmdb"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, recommender *core.Recommender, posters *tmdb.Client) *Handlers {
	handlers := &Handlers{
		recommender: recommender,
		posters:     posters,
	}

	// 1. recommend_movies - top-N titles similar to a selected movie
	server.AddTool(mcp.Tool{
		Name:        "recommend_movies",
		Description: "Recommend movies similar to a given title using precomputed content-based similarity. Each result carries a poster URL when one can be resolved.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Exact title of the reference movie (case-sensitive)",
				},
				"top_n": map[string]interface{}{
					"type":        "number",
					"description": "Number of recommendations to return (default: 5)",
					"default":     5,
				},
			},
			Required: []string{"title"},
		},
	}, handlers.RecommendMovies)

	// 2. list_movies - titles available for selection
	server.AddTool(mcp.Tool{
		Name:        "list_movies",
		Description: "List the titles in the loaded working set, in canonical order. Use to discover valid inputs for recommend_movies.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of titles to return (default: all)",
				},
			},
		},
	}, handlers.ListMovies)

	return handlers
}
