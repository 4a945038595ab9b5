package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/askengine/askengine/internal/model"
	"github.com/askengine/askengine/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	askJSON     string
	askTimeout  time.Duration
	noCache     bool
	noRobots    bool
	insecureTLS bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// askCmd answers a query end to end
var askCmd = &cobra.Command{
	Use:   "ask <text>",
	Short: "Answer a natural language sports query",
	Long: `Ask runs the full pipeline: the query is parsed and routed, the sport's
dataset is fetched and normalized, and the answer is computed.

Example:
  askengine ask "Who had the most HR in MLB 2023?"
  askengine ask "Which NBA player had the highest PPG in 2023?" --json result.json
  askengine ask "Top PPG in NBA 2023" --llm --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVar(&askJSON, "json", "", "write the result as JSON to a path, or - for stdout")
	askCmd.Flags().DurationVar(&askTimeout, "timeout", 10*time.Minute, "overall timeout (player datasets need many requests)")
	askCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	askCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")
	askCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification")

	// LLM flags
	askCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM answer summary")
	askCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	askCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runAsk(cmd *cobra.Command, args []string) error {
	query := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg)

	if verbose {
		fmt.Fprintf(os.Stderr, "Answering: %s\n", query)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", askTimeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	result, err := p.Ask(ctx, query)
	if err != nil {
		return queryError(err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Routed to %s\n", result.Request.Sport)
		fmt.Fprintf(os.Stderr, "✓ Extracted %d entities\n", len(result.Request.Intent.Entities))
		fmt.Fprintf(os.Stderr, "✓ Answer has %d rows\n", len(result.Answer.Rows))
		fmt.Fprintln(os.Stderr)
	}

	renderer := pipeline.NewRenderer()
	if askJSON != "" {
		if err := renderer.RenderJSON(result, askJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose && askJSON != "-" {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", askJSON)
		}
	}

	renderer.RenderAnswer(os.Stdout, result)
	return nil
}

// buildConfig assembles the process configuration from defaults and flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.HTTP.CheckRobots = !noRobots
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.Output.Verbose = verbose

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}
