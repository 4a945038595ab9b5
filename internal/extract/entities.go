package extract

import (
	"strings"
	"unicode"

	"github.com/askengine/askengine/internal/model"
	"github.com/askengine/askengine/internal/vocab"
)

// Extractor scans query text for year, league, and stat entities
type Extractor struct {
	vocab *vocab.Vocabulary
}

// NewExtractor creates an extractor over the given vocabulary
func NewExtractor(v *vocab.Vocabulary) *Extractor {
	return &Extractor{vocab: v}
}

// Extract returns the typed entities found in the query, in extraction
// order: the year (if any) first, then leagues, then stats. Matching is
// case-insensitive substring containment against the vocabulary. A term
// present in more than one sport's vocabulary yields one entity per
// occurrence; callers must not rely on the duplicate count.
//
// Returns model.ErrNoEntities when nothing matched.
func (e *Extractor) Extract(query string) ([]model.Entity, error) {
	lower := strings.ToLower(query)

	var entities []model.Entity

	// Year: first 4-digit numeric token wins, later ones are ignored
	if year, ok := FirstYearToken(query); ok {
		entities = append(entities, model.Entity{
			Kind:       model.KindYear,
			Value:      year,
			Confidence: 1.0,
		})
	}

	// Leagues, in the fixed sport order
	for _, sport := range vocab.SportOrder {
		for _, league := range e.vocab.Leagues(sport) {
			if strings.Contains(lower, strings.ToLower(league)) {
				entities = append(entities, model.Entity{
					Kind:       model.KindLeague,
					Value:      league,
					Confidence: 1.0,
				})
			}
		}
	}

	// Stats, same substring policy. Short abbreviations can false-positive
	// inside unrelated words; that is accepted behavior.
	for _, sport := range vocab.SportOrder {
		for _, stat := range e.vocab.Stats(sport) {
			if strings.Contains(lower, strings.ToLower(stat)) {
				entities = append(entities, model.Entity{
					Kind:       model.KindStat,
					Value:      stat,
					Confidence: 1.0,
				})
			}
		}
	}

	if len(entities) == 0 {
		return nil, model.ErrNoEntities
	}

	return entities, nil
}

// Tokenize splits query text into word tokens on any rune that is neither
// a letter nor a digit.
func Tokenize(query string) []string {
	return strings.FieldsFunc(query, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// FirstYearToken returns the first token that is purely numeric and exactly
// four characters long, scanning left to right.
func FirstYearToken(query string) (string, bool) {
	for _, token := range Tokenize(query) {
		if len(token) == 4 && isNumeric(token) {
			return token, true
		}
	}
	return "", false
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
