package llm

import "context"

// Summarizer wraps a configured provider; a nil provider means disabled
type Summarizer struct {
	provider Provider
}

// NewSummarizer creates a summarizer for the configured provider
func NewSummarizer(cfg Config) (*Summarizer, error) {
	if cfg.Provider == "" {
		return &Summarizer{}, nil
	}

	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}

	return &Summarizer{provider: provider}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s.provider != nil
}

// Summarize generates a summary of the answer data
func (s *Summarizer) Summarize(ctx context.Context, req SummarizeRequest) (*Summary, error) {
	if s.provider == nil {
		return nil, nil
	}
	return s.provider.Summarize(ctx, req)
}
