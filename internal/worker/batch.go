package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/askengine/askengine/internal/pipeline"
)

// Asker answers a single natural-language query
type Asker interface {
	Ask(ctx context.Context, query string) (*pipeline.Result, error)
}

// QueryJob answers one query
type QueryJob struct {
	Query string
	Asker Asker
}

// Execute runs the query through the pipeline
func (j *QueryJob) Execute(ctx context.Context) Result {
	result, err := j.Asker.Ask(ctx, j.Query)
	return &QueryResult{
		Query:  j.Query,
		Result: result,
		Error:  err,
	}
}

// QueryResult is the outcome of answering one query
type QueryResult struct {
	Query  string
	Result *pipeline.Result
	Error  error
}

// GetError returns the error from the query result
func (r *QueryResult) GetError() error {
	return r.Error
}

// BatchProcessor answers multiple queries concurrently
type BatchProcessor struct {
	asker       Asker
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(asker Asker, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		asker:       asker,
		concurrency: concurrency,
	}
}

// ProcessQueries answers the queries concurrently
func (b *BatchProcessor) ProcessQueries(ctx context.Context, queries []string) []*QueryResult {
	if len(queries) == 0 {
		return []*QueryResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	// Submit from a goroutine so results drain below while the queue fills
	go func() {
		for _, query := range queries {
			pool.Submit(&QueryJob{
				Query: query,
				Asker: b.asker,
			})
		}
		pool.Done()
	}()

	results := pool.Collect()

	queryResults := make([]*QueryResult, 0, len(results))
	for _, result := range results {
		queryResults = append(queryResults, result.(*QueryResult))
	}

	return queryResults
}

// ProcessFile reads queries from a file and answers them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*QueryResult, error) {
	queries, err := ReadQueriesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read queries: %w", err)
	}

	return b.ProcessQueries(ctx, queries), nil
}

// ReadQueriesFromFile reads queries from a file, one per line. Blank lines
// and lines starting with # are skipped; duplicates are dropped.
func ReadQueriesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var queries []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			queries = append(queries, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return queries, nil
}
