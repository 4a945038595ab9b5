// Package pipeline wires the query-understanding stages to the sport data
// pipelines and computes structured answers.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/askengine/askengine/internal/classify"
	"github.com/askengine/askengine/internal/extract"
	"github.com/askengine/askengine/internal/fetch"
	"github.com/askengine/askengine/internal/llm"
	"github.com/askengine/askengine/internal/model"
	"github.com/askengine/askengine/internal/parse"
	"github.com/askengine/askengine/internal/route"
	"github.com/askengine/askengine/internal/validate"
	"github.com/askengine/askengine/internal/vocab"
)

// Pipeline orchestrates validation, routing, extraction, classification,
// data fetching, and answer computation.
type Pipeline struct {
	vocab      *vocab.Vocabulary
	validator  *validate.Validator
	extractor  *extract.Extractor
	classifier *classify.Classifier
	router     *route.Router
	fetcher    *fetch.Fetcher
	summarizer *llm.Summarizer // Optional, nil when disabled
	config     *model.Config
}

// NewPipeline creates a pipeline from the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	v := vocab.Default()

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		vocab:      v,
		validator:  validate.NewValidator(v),
		extractor:  extract.NewExtractor(v),
		classifier: classify.NewClassifier(),
		router:     route.NewRouter(v),
		fetcher:    fetch.NewFetcher(cfg),
		summarizer: summarizer,
		config:     cfg,
	}
}

// Understand runs the query-understanding core: validation, routing,
// entity extraction, and intent classification. It performs no I/O. The
// three recoverable conditions surface as model.ErrInvalidQuery,
// model.ErrUnknownSport, and model.ErrNoEntities.
func (p *Pipeline) Understand(query string) (*model.Request, error) {
	if !p.validator.IsValid(query) {
		return nil, model.ErrInvalidQuery
	}

	sport := p.router.Route(query)
	if sport == model.SportUnknown {
		return nil, model.ErrUnknownSport
	}

	entities, err := p.extractor.Extract(query)
	if err != nil {
		return nil, err
	}

	intent := model.Intent{
		Action:   p.classifier.Classify(query, entities),
		Entities: entities,
	}
	if year, ok := intent.FirstEntity(model.KindYear); ok {
		n, convErr := strconv.Atoi(year.Value)
		if convErr == nil {
			intent.TimeRange = &model.TimeRange{Year: n}
		}
	}

	return &model.Request{
		Query:  query,
		Sport:  sport,
		Intent: intent,
	}, nil
}

// Result is the complete outcome of answering a query
type Result struct {
	Request *model.Request `json:"request"`
	Answer  *Answer        `json:"answer,omitempty"`
	Summary *llm.Summary   `json:"summary,omitempty"`
}

// seasonFor picks the dataset season for a request. Queries whose temporal
// signal is only a word ("this season", "current") carry no year entity,
// so the current year is used.
func seasonFor(req *model.Request) string {
	year := req.Intent.Year()
	if year == 0 {
		year = time.Now().Year()
	}
	return strconv.Itoa(year)
}

// Ask understands the query, pulls the routed sport's dataset, and
// computes a structured answer. An optional LLM summary is generated last
// and never alters the answer.
func (p *Pipeline) Ask(ctx context.Context, query string) (*Result, error) {
	req, err := p.Understand(query)
	if err != nil {
		return nil, err
	}

	parser, err := parse.NewParser(req.Sport, p.fetcher)
	if err != nil {
		return nil, err
	}

	season := seasonFor(req)
	source := parse.Source{
		Name:     fmt.Sprintf("%s_%s", req.Sport, model.DataPlayerStats),
		Sport:    req.Sport,
		Season:   season,
		DataType: model.DataPlayerStats,
	}

	rows, err := parser.Parse(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("parse %s data: %w", req.Sport, err)
	}
	if !parser.Validate(source, rows) {
		fmt.Fprintf(os.Stderr, "Warning: parsed data does not match expected schema\n")
	}

	answer, err := ComputeAnswer(req, rows)
	if err != nil {
		return nil, err
	}

	result := &Result{Request: req, Answer: answer}

	if p.summarizer != nil && p.summarizer.IsEnabled() {
		summary, err := p.summarizer.Summarize(ctx, llm.SummarizeRequest{
			Question: query,
			Sport:    string(req.Sport),
			Action:   string(req.Intent.Action),
			Stat:     answer.Stat,
			Season:   season,
			Rows:     answer.Rows,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM summary failed: %v\n", err)
		} else {
			result.Summary = summary
		}
	}

	return result, nil
}
