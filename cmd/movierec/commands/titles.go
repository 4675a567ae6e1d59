// ABOUTME: CLI command to list the titles in the working set
// ABOUTME: The selection surface for recommend; canonical row order
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/movierec-standalone/internal/config"
	"github.com/joho/godotenv"
)

var (
	titlesLimit int
)

// NewTitlesCmd creates the titles command
func NewTitlesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "titles",
		Short: "List movie titles in the working set",
		Long: `List movie titles in the working set.

Titles are printed in canonical row order, exactly as they must be
passed to 'movierec recommend'.

Examples:
  movierec titles
  movierec titles --limit 20
  movierec titles --format json`,
		RunE: runTitles,
	}

	cmd.Flags().IntVar(&titlesLimit, "limit", 0, "Maximum titles to print (default: all)")

	return cmd
}

func runTitles(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, recommender, err := loadRecommender(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	movies := recommender.Movies()
	titles := make([]string, 0, len(movies))
	for _, m := range movies {
		titles = append(titles, m.Title)
	}
	if titlesLimit > 0 && titlesLimit < len(titles) {
		titles = titles[:titlesLimit]
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(titles, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	for _, title := range titles {
		fmt.Fprintln(cmd.OutOrStdout(), title)
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d titles\n", len(titles))
	}
	return nil
}
