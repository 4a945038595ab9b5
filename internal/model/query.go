package model

// EntityKind categorizes an extracted query entity
type EntityKind string

const (
	KindYear   EntityKind = "year"
	KindLeague EntityKind = "league"
	KindStat   EntityKind = "stat"
	// Player and team extraction are reserved for a future pass
	KindPlayer EntityKind = "player"
	KindTeam   EntityKind = "team"
)

// Entity is a typed extraction from query text. Entities are immutable
// value objects built fresh per query.
type Entity struct {
	Kind       EntityKind `json:"kind"`
	Value      string     `json:"value"`      // Canonical form, e.g. "La Liga", "HR", "2021"
	Confidence float64    `json:"confidence"` // Currently always 1.0 (exact lexical match)
}

// Action is the closed set of query intents
type Action string

const (
	ActionGetStat    Action = "get_stat"
	ActionGetRanking Action = "get_ranking"
	ActionCompare    Action = "compare"
)

// Sport identifies a downstream data domain
type Sport string

const (
	SportSoccer     Sport = "soccer"
	SportBaseball   Sport = "baseball"
	SportBasketball Sport = "basketball"
	SportUnknown    Sport = "unknown"
)

// TimeRange narrows a query to a single season year
type TimeRange struct {
	Year int `json:"year"`
}

// Intent is the structured interpretation of a query.
// Entities keep extraction order: years first, then leagues, then stats.
// That ordering is an implementation artifact, not a semantic guarantee.
type Intent struct {
	Action    Action     `json:"action"`
	Entities  []Entity   `json:"entities"`
	TimeRange *TimeRange `json:"time_range,omitempty"`
}

// Year returns the extracted season year, or 0 if none was found
func (i *Intent) Year() int {
	if i.TimeRange == nil {
		return 0
	}
	return i.TimeRange.Year
}

// FirstEntity returns the first entity of the given kind, if any
func (i *Intent) FirstEntity(kind EntityKind) (Entity, bool) {
	for _, e := range i.Entities {
		if e.Kind == kind {
			return e, true
		}
	}
	return Entity{}, false
}

// Request is what a caller assembles to dispatch a query downstream
type Request struct {
	Query  string `json:"query"`
	Sport  Sport  `json:"sport"`
	Intent Intent `json:"intent"`
}
