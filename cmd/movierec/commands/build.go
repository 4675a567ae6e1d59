// ABOUTME: CLI command to build the recommendation artifacts offline
// ABOUTME: Runs dataset load, feature build, vectorization, and matrix construction
package commands

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/movierec-standalone/internal/config"
	"github.com/harper/movierec-standalone/internal/core"
	"github.com/harper/movierec-standalone/internal/dataset"
	"github.com/harper/movierec-standalone/internal/models"
	"github.com/harper/movierec-standalone/internal/storage/sqlite"
	"github.com/joho/godotenv"
)

var (
	buildVocabSize int
)

// NewBuildCmd creates the build command
func NewBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <movies.csv> <credits.csv>",
		Short: "Build recommendation artifacts from the TMDB dataset",
		Long: `Build recommendation artifacts from the TMDB 5000 dataset.

Loads the movies and credits CSV files, derives a tag sequence per
movie, vectorizes the corpus over a bounded vocabulary, computes the
pairwise cosine similarity matrix, and persists both artifacts to the
artifact database in one transaction.

The movie table and similarity matrix are always regenerated together;
a rebuild replaces the previous pair entirely.

Examples:
  movierec build tmdb_5000_movies.csv tmdb_5000_credits.csv
  movierec build --vocab-size 2000 movies.csv credits.csv`,
		Args: cobra.ExactArgs(2),
		RunE: runBuild,
	}

	cmd.Flags().IntVar(&buildVocabSize, "vocab-size", 0, "Vocabulary size (default from MOVIEREC_VOCAB_SIZE or 5000)")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if buildVocabSize > 0 {
		cfg.VocabSize = buildVocabSize
	}

	start := time.Now()

	rawMovies, err := dataset.Load(args[0], args[1])
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}
	if verbose {
		log.Printf("Loaded %d movies from dataset", len(rawMovies))
	}

	movies := make([]models.Movie, len(rawMovies))
	corpus := make([][]string, len(rawMovies))
	for i, raw := range rawMovies {
		tags := core.BuildTags(raw)
		movies[i] = models.Movie{ID: raw.ID, Title: raw.Title, Tags: tags}
		corpus[i] = tags
	}

	vocab := core.BuildVocabulary(corpus, cfg.VocabSize)
	if verbose {
		log.Printf("Vocabulary: %d tokens (K=%d)", vocab.Size(), cfg.VocabSize)
	}

	features := vocab.CountMatrix(corpus)
	similarity := core.SimilarityMatrix(features)

	db, err := sqlite.Open(cfg.ArtifactsPath)
	if err != nil {
		return fmt.Errorf("opening artifacts at %s: %w", cfg.ArtifactsPath, err)
	}
	defer db.Close()

	buildID, err := sqlite.NewArtifactStore(db).Save(movies, similarity, vocab.Size())
	if err != nil {
		return fmt.Errorf("saving artifacts: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Built artifacts for %d movies in %s\n",
			len(movies), time.Since(start).Round(time.Millisecond))
		fmt.Fprintf(cmd.OutOrStdout(), "Build ID: %s\n", buildID)
		fmt.Fprintf(cmd.OutOrStdout(), "Database: %s\n", cfg.ArtifactsPath)
	}

	return nil
}
