// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to query the recommender via stdio
package commands

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/movierec-standalone/internal/config"
	"github.com/harper/movierec-standalone/internal/mcp"
	"github.com/harper/movierec-standalone/internal/tmdb"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents.

Runs movierec as an MCP (Model Context Protocol) server over stdio,
exposing recommend_movies and list_movies tools against the loaded
artifacts.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  movierec mcp

  # Configure in an MCP client config:
  # {
  #   "mcpServers": {
  #     "movierec": {
  #       "command": "movierec",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for the TMDB key)
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	if os.Getenv("TMDB_API_KEY") == "" {
		log.Println("Warning: TMDB_API_KEY not set - posters will resolve to the placeholder")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, recommender, err := loadRecommender(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	posters := tmdb.NewClient(&tmdb.ClientConfig{
		APIKey:     cfg.TMDBKey,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	})

	server := mcpserver.NewMCPServer(
		"Movierec Recommender",
		versionInfo.Version,
	)

	mcp.RegisterTools(server, recommender, posters)

	log.Println("movierec MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
