// Package parse normalizes stats API responses into tabular rows with the
// standardized column schema.
package parse

import (
	"context"
	"fmt"

	"github.com/askengine/askengine/internal/fetch"
	"github.com/askengine/askengine/internal/model"
)

// Source describes one dataset to fetch and normalize
type Source struct {
	Name     string         `json:"name"`
	Sport    model.Sport    `json:"sport"`
	Season   string         `json:"season"`
	DataType model.DataType `json:"data_type"`
}

// Parser normalizes one sport's API responses into rows
type Parser interface {
	// Parse fetches and normalizes the dataset described by source
	Parse(ctx context.Context, source Source) ([]model.Row, error)

	// Validate reports whether rows satisfy the standardized schema
	Validate(source Source, rows []model.Row) bool
}

// NewParser returns the parser for a sport. Sports without an upstream
// source (soccer) return model.ErrNoDataSource.
func NewParser(sport model.Sport, fetcher *fetch.Fetcher) (Parser, error) {
	switch sport {
	case model.SportBaseball:
		return NewBaseballParser(fetch.NewMLBClient(fetcher)), nil
	case model.SportBasketball:
		return NewBasketballParser(fetch.NewNBAClient(fetcher)), nil
	default:
		return nil, fmt.Errorf("%w: %s", model.ErrNoDataSource, sport)
	}
}
