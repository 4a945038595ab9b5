// Package route maps a query to the sport domain whose data pipeline
// should serve it.
package route

import (
	"strings"

	"github.com/askengine/askengine/internal/model"
	"github.com/askengine/askengine/internal/vocab"
)

// Router assigns queries to sport domains
type Router struct {
	vocab *vocab.Vocabulary
}

// NewRouter creates a router over the given vocabulary
func NewRouter(v *vocab.Vocabulary) *Router {
	return &Router{vocab: v}
}

// Route returns the sport domain for the query, or model.SportUnknown.
//
// League names are scanned first because they are higher-precision signals
// than stat abbreviations ("assists" is valid in both soccer and
// basketball). Within each pass, sports are checked in the fixed order
// declared by vocab.SportOrder, so ties resolve to the sport declared
// first.
func (r *Router) Route(query string) model.Sport {
	lower := strings.ToLower(query)

	for _, sport := range vocab.SportOrder {
		for _, league := range r.vocab.Leagues(sport) {
			if strings.Contains(lower, strings.ToLower(league)) {
				return sport
			}
		}
	}

	for _, sport := range vocab.SportOrder {
		for _, stat := range r.vocab.Stats(sport) {
			if strings.Contains(lower, strings.ToLower(stat)) {
				return sport
			}
		}
	}

	return model.SportUnknown
}
