// ABOUTME: Root CLI command with global flags and subcommand wiring
// ABOUTME: Defines --verbose, --quiet, and --format shared by all commands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
███╗   ███╗ ██████╗ ██╗   ██╗██╗███████╗██████╗ ███████╗ ██████╗
████╗ ████║██╔═══██╗██║   ██║██║██╔════╝██╔══██╗██╔════╝██╔════╝
██╔████╔██║██║   ██║██║   ██║██║█████╗  ██████╔╝█████╗  ██║
██║╚██╔╝██║██║   ██║╚██╗ ██╔╝██║██╔══╝  ██╔══██╗██╔══╝  ██║
██║ ╚═╝ ██║╚██████╔╝ ╚████╔╝ ██║███████╗██║  ██║███████╗╚██████╗
╚═╝     ╚═╝ ╚═════╝   ╚═══╝  ╚═╝╚══════╝╚═╝  ╚═╝╚══════╝ ╚═════╝
`

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movierec",
		Short: "Content-based movie recommender",
		Long: banner + `
Movierec recommends movies similar to a selected title using
precomputed content-based similarity over movie metadata, with
poster images resolved from TMDB.

Build the artifacts once from the TMDB 5000 dataset, then query
them as often as you like:

  movierec build tmdb_5000_movies.csv tmdb_5000_credits.csv
  movierec recommend "The Dark Knight"`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, or json")

	cmd.AddCommand(NewBuildCmd())
	cmd.AddCommand(NewRecommendCmd())
	cmd.AddCommand(NewTitlesCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
