package model

// DataType names a dataset shape within a sport
type DataType string

const (
	DataPlayerStats DataType = "player_stats"
	DataTeamStats   DataType = "team_stats"
)

// Row is a single normalized record from a sport data source.
// Column names follow the standardized schema below.
type Row map[string]any

// requiredColumns is the standardized schema per (sport, data type)
var requiredColumns = map[Sport]map[DataType][]string{
	SportBaseball: {
		DataPlayerStats: {"player_id", "player_name", "team_id", "team_name", "hr", "avg", "obp", "slg", "rbi", "season"},
		DataTeamStats:   {"team_id", "team_name", "wins", "losses", "win_pct", "season"},
	},
	SportBasketball: {
		DataPlayerStats: {"player_name", "team_name", "ppg", "rebounds", "fg_pct", "fg3_pct", "season"},
		DataTeamStats:   {"team_id", "team_name", "wins", "losses", "win_pct", "season"},
	},
}

// RequiredColumns returns the schema for a sport and data type,
// or nil if no schema is defined.
func RequiredColumns(sport Sport, dataType DataType) []string {
	byType, ok := requiredColumns[sport]
	if !ok {
		return nil
	}
	return byType[dataType]
}

// ValidateRows reports whether every row carries the required columns.
// Empty datasets validate false.
func ValidateRows(sport Sport, dataType DataType, rows []Row) bool {
	if len(rows) == 0 {
		return false
	}
	required := RequiredColumns(sport, dataType)
	if required == nil {
		return false
	}
	for _, row := range rows {
		for _, col := range required {
			if _, ok := row[col]; !ok {
				return false
			}
		}
	}
	return true
}
