// ABOUTME: CLI command to query top-N similar movies for a title
// ABOUTME: Enriches each result with a TMDB poster URL when available
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/movierec-standalone/internal/config"
	"github.com/harper/movierec-standalone/internal/core"
	"github.com/harper/movierec-standalone/internal/tmdb"
	"github.com/joho/godotenv"
)

var (
	recommendTopN     int
	recommendNoPoster bool
)

// NewRecommendCmd creates the recommend command
func NewRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend <title>",
		Short: "Recommend movies similar to a title",
		Long: `Recommend movies similar to a title.

Resolves the title against the movie table with an exact,
case-sensitive match, ranks all other movies by precomputed cosine
similarity, and returns the top N. Poster URLs are fetched from TMDB
when TMDB_API_KEY is configured; a missing poster never fails the
recommendation.

Examples:
  movierec recommend "The Dark Knight"
  movierec recommend --top 10 "Avatar"
  movierec recommend --format json "Inception"`,
		Args: cobra.ExactArgs(1),
		RunE: runRecommend,
	}

	cmd.Flags().IntVar(&recommendTopN, "top", 5, "Number of recommendations to return")
	cmd.Flags().BoolVar(&recommendNoPoster, "no-posters", false, "Skip poster resolution")

	return cmd
}

func runRecommend(cmd *cobra.Command, args []string) error {
	// Load .env for the TMDB key
	_ = godotenv.Load()

	if err := validatePositiveInt(recommendTopN, "top"); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	title := args[0]

	db, recommender, err := loadRecommender(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	results, err := recommender.Recommend(title, recommendTopN)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return fmt.Errorf("unknown title %q (titles are case-sensitive; try 'movierec titles')", title)
		}
		return fmt.Errorf("recommending: %w", err)
	}

	if !recommendNoPoster {
		posters := tmdb.NewClient(&tmdb.ClientConfig{
			APIKey:     cfg.TMDBKey,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
			RetryDelay: cfg.RetryDelay,
		})
		for i := range results {
			results[i].PosterURL = posters.PosterURL(cmd.Context(), results[i].MovieID)
		}
	}

	// Format output
	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Movies similar to %s:\n\n", title)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "#\tTITLE\tSIMILARITY\tPOSTER\n")
	for i, res := range results {
		poster := res.PosterURL
		if poster == tmdb.NoPoster {
			poster = "(no poster)"
		}
		fmt.Fprintf(w, "%d\t%s\t%.3f\t%s\n", i+1, truncate(res.Title, 40), res.Similarity, poster)
	}
	return w.Flush()
}
