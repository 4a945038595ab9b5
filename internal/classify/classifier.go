// Package classify assigns an action to a query from surface lexical cues.
package classify

import (
	"strings"

	"github.com/askengine/askengine/internal/model"
)

// Cue words checked in fixed priority order: ranking beats comparison,
// comparison beats the default lookup.
var (
	rankingCues = []string{"most", "highest", "best", "top"}
	compareCues = []string{"compare", "vs", "versus"}
)

// Classifier assigns one of the closed set of actions to a query
type Classifier struct{}

// NewClassifier creates a classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the action for the query. It is a pure function of the
// lower-cased query text; entities are accepted for interface symmetry but
// the current policy only inspects lexical cues.
func (c *Classifier) Classify(query string, entities []model.Entity) model.Action {
	lower := strings.ToLower(query)

	for _, cue := range rankingCues {
		if strings.Contains(lower, cue) {
			return model.ActionGetRanking
		}
	}
	for _, cue := range compareCues {
		if strings.Contains(lower, cue) {
			return model.ActionCompare
		}
	}
	return model.ActionGetStat
}
