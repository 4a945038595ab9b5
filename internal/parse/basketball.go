package parse

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/askengine/askengine/internal/fetch"
	"github.com/askengine/askengine/internal/model"
)

// BasketballParser normalizes NBA Stats API responses
type BasketballParser struct {
	client *fetch.NBAClient
}

// NewBasketballParser creates a basketball parser
func NewBasketballParser(client *fetch.NBAClient) *BasketballParser {
	return &BasketballParser{client: client}
}

// nbaResponse is the resultSets envelope every leaguedash endpoint returns
type nbaResponse struct {
	ResultSets []struct {
		Headers []string `json:"headers"`
		RowSet  [][]any  `json:"rowSet"`
	} `json:"resultSets"`
}

// Parse fetches and normalizes the requested basketball dataset
func (p *BasketballParser) Parse(ctx context.Context, source Source) ([]model.Row, error) {
	switch source.DataType {
	case model.DataTeamStats:
		body, err := p.client.TeamStats(ctx, source.Season)
		if err != nil {
			return nil, fmt.Errorf("fetch team stats: %w", err)
		}
		return mapResultSet(body, source.Season, map[string]string{
			"TEAM_ID":   "team_id",
			"TEAM_NAME": "team_name",
			"W":         "wins",
			"L":         "losses",
			"W_PCT":     "win_pct",
		})
	case model.DataPlayerStats:
		body, err := p.client.PlayerStats(ctx, source.Season)
		if err != nil {
			return nil, fmt.Errorf("fetch player stats: %w", err)
		}
		return mapResultSet(body, source.Season, map[string]string{
			"PLAYER_NAME": "player_name",
			"TEAM_NAME":   "team_name",
			"PTS":         "ppg",
			"REB":         "rebounds",
			"FG_PCT":      "fg_pct",
			"FG3_PCT":     "fg3_pct",
		})
	default:
		return nil, fmt.Errorf("unsupported data type: %s", source.DataType)
	}
}

// Validate reports whether rows satisfy the basketball schema
func (p *BasketballParser) Validate(source Source, rows []model.Row) bool {
	return model.ValidateRows(model.SportBasketball, source.DataType, rows)
}

// mapResultSet converts the header/rowSet table into rows, renaming API
// columns to the standardized schema. Rows shorter than the header row are
// skipped.
func mapResultSet(body []byte, season string, columns map[string]string) ([]model.Row, error) {
	var resp nbaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(resp.ResultSets) == 0 {
		return nil, fmt.Errorf("invalid NBA API response: no resultSets")
	}

	set := resp.ResultSets[0]

	indices := make(map[string]int, len(columns))
	for apiName := range columns {
		idx := -1
		for i, header := range set.Headers {
			if header == apiName {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("missing required column in NBA API response: %s", apiName)
		}
		indices[apiName] = idx
	}

	rows := make([]model.Row, 0, len(set.RowSet))
	for _, raw := range set.RowSet {
		row := model.Row{"season": season}
		valid := true
		for apiName, target := range columns {
			idx := indices[apiName]
			if idx >= len(raw) {
				valid = false
				break
			}
			row[target] = raw[idx]
		}
		if valid {
			rows = append(rows, row)
		}
	}
	return rows, nil
}
