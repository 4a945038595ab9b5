// Package vocab holds the static sport vocabulary: recognized league names
// and statistic abbreviations partitioned by sport. The vocabulary is built
// once per process, never mutated, and shared by reference across the
// extractor, router, and validator, so concurrent use needs no locking.
package vocab

import (
	"strings"

	"github.com/askengine/askengine/internal/model"
)

// SportOrder is the fixed sport iteration order. Routing tie-breaks depend
// on it: the sport declared first wins when several sports match.
var SportOrder = []model.Sport{model.SportSoccer, model.SportBaseball, model.SportBasketball}

// Vocabulary maps sports to their canonical league and stat terms
type Vocabulary struct {
	leagues map[model.Sport][]string
	stats   map[model.Sport][]string
}

// Default returns the built-in sport vocabulary
func Default() *Vocabulary {
	return &Vocabulary{
		leagues: map[model.Sport][]string{
			model.SportSoccer:     {"La Liga", "EPL", "Premier League", "Champions League", "UCL"},
			model.SportBaseball:   {"MLB"},
			model.SportBasketball: {"NBA"},
		},
		stats: map[model.Sport][]string{
			model.SportSoccer:     {"goals", "assists", "clean sheets"},
			model.SportBaseball:   {"HR", "RBI", "AVG", "OBP", "WAR"},
			model.SportBasketball: {"PPG", "rebounds", "assists", "FG%"},
		},
	}
}

// Leagues returns the canonical league names for a sport
func (v *Vocabulary) Leagues(sport model.Sport) []string {
	return v.leagues[sport]
}

// Stats returns the canonical stat names for a sport
func (v *Vocabulary) Stats(sport model.Sport) []string {
	return v.stats[sport]
}

// ContainsTerm reports whether any league or stat term from any sport
// appears as a case-insensitive substring of the query.
func (v *Vocabulary) ContainsTerm(query string) bool {
	lower := strings.ToLower(query)
	for _, sport := range SportOrder {
		for _, league := range v.leagues[sport] {
			if strings.Contains(lower, strings.ToLower(league)) {
				return true
			}
		}
		for _, stat := range v.stats[sport] {
			if strings.Contains(lower, strings.ToLower(stat)) {
				return true
			}
		}
	}
	return false
}
