package pipeline

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/askengine/askengine/internal/model"
)

// rankingSize caps how many rows a ranking answer carries
const rankingSize = 10

// statColumns maps vocabulary stat names to standardized row columns.
// Vocabulary stats without a column (WAR, soccer stats, basketball
// assists) have no entry and yield model.ErrStatUnavailable when ranked.
var statColumns = map[model.Sport]map[string]string{
	model.SportBaseball: {
		"HR":  "hr",
		"RBI": "rbi",
		"AVG": "avg",
		"OBP": "obp",
	},
	model.SportBasketball: {
		"PPG":      "ppg",
		"rebounds": "rebounds",
		"FG%":      "fg_pct",
	},
}

// Answer is the structured outcome of executing an intent over a dataset
type Answer struct {
	Sport  model.Sport  `json:"sport"`
	Action model.Action `json:"action"`
	Stat   string       `json:"stat,omitempty"`   // Canonical stat name, if one was extracted
	Column string       `json:"column,omitempty"` // Row column the stat maps to
	Season string       `json:"season,omitempty"`
	Rows   []model.Row  `json:"rows"`
	Note   string       `json:"note,omitempty"`
}

// ComputeAnswer executes the request's intent over the normalized rows.
// Rankings sort descending by the mapped stat column; lookups and
// comparisons return the rows for the caller to inspect.
func ComputeAnswer(req *model.Request, rows []model.Row) (*Answer, error) {
	answer := &Answer{
		Sport:  req.Sport,
		Action: req.Intent.Action,
	}
	if req.Intent.TimeRange != nil {
		answer.Season = strconv.Itoa(req.Intent.TimeRange.Year)
	}

	stat, hasStat := req.Intent.FirstEntity(model.KindStat)
	if hasStat {
		answer.Stat = stat.Value
		answer.Column = statColumns[req.Sport][stat.Value]
	}

	switch req.Intent.Action {
	case model.ActionGetRanking:
		if !hasStat {
			answer.Rows = capRows(rows, rankingSize)
			answer.Note = "no stat extracted; returning unranked rows"
			return answer, nil
		}
		if answer.Column == "" {
			return nil, fmt.Errorf("%w: %s (%s)", model.ErrStatUnavailable, stat.Value, req.Sport)
		}
		answer.Rows = capRows(sortByColumn(rows, answer.Column), rankingSize)
		return answer, nil

	case model.ActionCompare:
		if hasStat && answer.Column != "" {
			answer.Rows = sortByColumn(rows, answer.Column)
		} else {
			answer.Rows = rows
		}
		answer.Note = "comparison returns matched rows side by side"
		return answer, nil

	default: // get_stat
		if hasStat && answer.Column != "" {
			answer.Rows = sortByColumn(rows, answer.Column)
		} else {
			answer.Rows = rows
		}
		return answer, nil
	}
}

// sortByColumn returns rows sorted descending by the numeric value of the
// column. Rows whose value cannot be coerced sort last. Input order is
// preserved for ties.
func sortByColumn(rows []model.Row, column string) []model.Row {
	sorted := make([]model.Row, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, aok := numericValue(sorted[i][column])
		b, bok := numericValue(sorted[j][column])
		if aok != bok {
			return aok
		}
		return a > b
	})
	return sorted
}

// numericValue coerces a row value to float64. Stats arrive as JSON
// numbers from the NBA API and as strings like ".297" from the MLB API.
func numericValue(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func capRows(rows []model.Row, n int) []model.Row {
	if len(rows) <= n {
		return rows
	}
	return rows[:n]
}
