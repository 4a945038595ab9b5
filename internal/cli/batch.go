package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/askengine/askengine/internal/pipeline"
	"github.com/askengine/askengine/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd answers multiple queries from a file in parallel
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Answer multiple queries from a file in parallel",
	Long: `Batch reads queries from a file (one per line, # comments skipped) and
answers them concurrently, writing one JSON result per query.

Example:
  askengine batch queries.txt
  askengine batch queries.txt --concurrency 8 --output-dir ./results`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./askengine-results", "output directory for results")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "total timeout for batch processing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := pipeline.NewPipeline(cfg)
	processor := worker.NewBatchProcessor(p, concurrency)

	fmt.Fprintf(os.Stderr, "Reading queries from %s...\n", file)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Processing %d queries with %d workers...\n\n", len(results), concurrency)

	renderer := pipeline.NewRenderer()
	successCount := 0
	failureCount := 0

	for i, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Query, queryError(result.Error))
			continue
		}

		successCount++

		path := filepath.Join(outputDir, fmt.Sprintf("%03d-%s.json", i+1, slugify(result.Query)))
		if err := renderer.RenderJSON(result.Result, path); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: write result: %v\n", result.Query, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s (%d rows)\n", result.Query, len(result.Result.Answer.Rows))
	}

	fmt.Fprintf(os.Stderr, "\nTotal: %d  Success: %d  Failures: %d  Output: %s\n",
		len(results), successCount, failureCount, outputDir)

	return nil
}

// slugify makes a query safe to use in a file name
func slugify(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > 60 {
		slug = slug[:60]
	}
	return slug
}
