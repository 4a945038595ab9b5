// Package llm provides an optional natural-language summary of a
// structured answer. The summary is generated after the answer is computed
// and never alters it.
package llm

import (
	"context"
	"fmt"

	"github.com/askengine/askengine/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a natural-language summary of an answer
	Summarize(ctx context.Context, req SummarizeRequest) (*Summary, error)

	// IsAvailable checks if the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest carries the answer data the provider may describe. The
// prompt instructs the model to stay within these rows.
type SummarizeRequest struct {
	Question string
	Sport    string
	Action   string
	Stat     string
	Season   string
	Rows     []model.Row
}

// Summary is a provider's natural-language description of an answer
type Summary struct {
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	Text       string `json:"text"`
	TokensUsed int    `json:"tokens_used,omitempty"`
}

// Config holds provider configuration
type Config struct {
	Provider  string // "openai", "ollama", ""
	Model     string
	APIKey    string
	BaseURL   string
	Timeout   int // seconds
	MaxTokens int
}

// ConfigFromModel converts the process LLM configuration
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}
}

// NewProvider creates the configured provider
func NewProvider(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIProvider(cfg)
	case "ollama":
		return NewOllamaProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}

// BuildPrompt constructs the summarization prompt. The model is told to
// describe only the rows it is given.
func BuildPrompt(req SummarizeRequest) string {
	prompt := fmt.Sprintf(`You are summarizing the result of a sports statistics query.

RULES:
1. Describe ONLY the rows listed below. Do not add players, teams, or numbers from memory.
2. If the rows do not answer the question, say so explicitly.
3. Keep the summary to 2-3 sentences.

Question: %s
Sport: %s
Action: %s
`, req.Question, req.Sport, req.Action)

	if req.Stat != "" {
		prompt += fmt.Sprintf("Stat: %s\n", req.Stat)
	}
	if req.Season != "" {
		prompt += fmt.Sprintf("Season: %s\n", req.Season)
	}

	prompt += "\nRows:\n"
	for i, row := range req.Rows {
		if i >= 10 {
			prompt += fmt.Sprintf("... and %d more rows\n", len(req.Rows)-10)
			break
		}
		prompt += fmt.Sprintf("- %v\n", row)
	}

	return prompt
}
