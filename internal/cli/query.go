package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/askengine/askengine/internal/model"
	"github.com/askengine/askengine/internal/pipeline"
	"github.com/spf13/cobra"
)

var queryJSON string

// queryCmd parses a query without touching any data source
var queryCmd = &cobra.Command{
	Use:   "query <text>",
	Short: "Parse a natural language sports query",
	Long: `Query validates, routes, and parses a natural language sports query
and prints the structured interpretation without fetching any data.

Example:
  askengine query "Who had the most goals in La Liga 2014?"
  askengine query "Top 10 WAR leaders in MLB 2001" --verbose
  askengine query "Which NBA player had the highest PPG in 2022?" --json -`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringVar(&queryJSON, "json", "", "write the parsed request as JSON to a path, or - for stdout")
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose

	p := pipeline.NewPipeline(cfg)

	req, err := p.Understand(args[0])
	if err != nil {
		return queryError(err)
	}

	renderer := pipeline.NewRenderer()
	if queryJSON != "" {
		return renderer.RenderJSON(req, queryJSON)
	}

	renderer.RenderRequest(os.Stdout, req, verbose)
	return nil
}

// queryError keeps the recoverable query conditions as distinct
// user-facing messages; anything else passes through.
func queryError(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidQuery):
		return fmt.Errorf("query must contain a sport-related entity and a temporal reference")
	case errors.Is(err, model.ErrUnknownSport):
		return fmt.Errorf("unable to determine sport from query")
	case errors.Is(err, model.ErrNoEntities):
		return fmt.Errorf("no entities found in query")
	default:
		return err
	}
}
