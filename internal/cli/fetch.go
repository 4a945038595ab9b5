package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/askengine/askengine/internal/fetch"
	"github.com/askengine/askengine/internal/model"
	"github.com/askengine/askengine/internal/parse"
	"github.com/askengine/askengine/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	fetchSport    string
	fetchDataType string
	fetchSeason   string
	fetchOutput   string
	fetchTimeout  time.Duration
)

// fetchCmd pulls and normalizes one dataset
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and normalize a sport dataset",
	Long: `Fetch pulls one (sport, data-type, season) dataset from the upstream
stats API and normalizes it into the standardized row schema.

Example:
  askengine fetch --sport baseball --data-type team_stats --season 2023
  askengine fetch --sport basketball --data-type player_stats --season 2023 --output nba.json`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchSport, "sport", "", "sport (baseball, basketball)")
	fetchCmd.Flags().StringVar(&fetchDataType, "data-type", string(model.DataPlayerStats), "data type (player_stats, team_stats)")
	fetchCmd.Flags().StringVar(&fetchSeason, "season", "2023", "season to fetch")
	fetchCmd.Flags().StringVar(&fetchOutput, "output", "", "output JSON path, or - for stdout")
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 30*time.Minute, "fetch timeout")
	_ = fetchCmd.MarkFlagRequired("sport")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	sport := model.Sport(fetchSport)
	fetcher := fetch.NewFetcher(cfg)

	parser, err := parse.NewParser(sport, fetcher)
	if err != nil {
		return err
	}

	source := parse.Source{
		Name:     fmt.Sprintf("%s_%s", fetchSport, fetchDataType),
		Sport:    sport,
		Season:   fetchSeason,
		DataType: model.DataType(fetchDataType),
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Fetching %s %s for season %s...\n", fetchSport, fetchDataType, fetchSeason)
	}

	rows, err := parser.Parse(ctx, source)
	if err != nil {
		return fmt.Errorf("parse data: %w", err)
	}

	if !parser.Validate(source, rows) {
		fmt.Fprintf(os.Stderr, "Warning: parsed data does not match expected schema\n")
	}

	fmt.Fprintf(os.Stderr, "Parsed %d records\n", len(rows))

	if fetchOutput != "" {
		renderer := pipeline.NewRenderer()
		if err := renderer.RenderJSON(rows, fetchOutput); err != nil {
			return err
		}
		if fetchOutput != "-" {
			fmt.Fprintf(os.Stderr, "Data saved to %s\n", fetchOutput)
		}
	}

	return nil
}
