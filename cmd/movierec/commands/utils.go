// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Consolidates small helpers used by build, recommend, and titles
package commands

import (
	"fmt"

	"github.com/harper/movierec-standalone/internal/config"
	"github.com/harper/movierec-standalone/internal/core"
	"github.com/harper/movierec-standalone/internal/storage/sqlite"
)

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}

// loadRecommender opens the artifact database and loads the validated
// working set. The caller must Close the returned DB.
func loadRecommender(cfg *config.Config) (*sqlite.DB, *core.Recommender, error) {
	db, err := sqlite.Open(cfg.ArtifactsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening artifacts at %s: %w", cfg.ArtifactsPath, err)
	}

	movies, similarity, err := sqlite.NewArtifactStore(db).Load()
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("loading artifacts (run 'movierec build' first?): %w", err)
	}

	return db, core.NewRecommender(movies, similarity), nil
}
