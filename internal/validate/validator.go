// Package validate gates queries before full extraction and routing.
package validate

import (
	"strings"

	"github.com/askengine/askengine/internal/extract"
	"github.com/askengine/askengine/internal/vocab"
)

// temporalWords are accepted in place of an explicit 4-digit year
var temporalWords = []string{"season", "year", "current"}

// Validator checks that a query carries enough signal to process
type Validator struct {
	vocab *vocab.Vocabulary
}

// NewValidator creates a validator over the given vocabulary
func NewValidator(v *vocab.Vocabulary) *Validator {
	return &Validator{vocab: v}
}

// IsValid reports whether the query contains at least one sport-vocabulary
// entity (league or stat, any sport) and at least one temporal signal (a
// 4-digit year token or one of "season", "year", "current").
//
// This is a necessary-but-not-sufficient gate: a valid query can still
// route to an unknown sport.
func (v *Validator) IsValid(query string) bool {
	return v.vocab.ContainsTerm(query) && hasTemporalSignal(query)
}

func hasTemporalSignal(query string) bool {
	if _, ok := extract.FirstYearToken(query); ok {
		return true
	}

	lower := strings.ToLower(query)
	for _, word := range temporalWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
