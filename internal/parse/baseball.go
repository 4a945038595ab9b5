package parse

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/askengine/askengine/internal/fetch"
	"github.com/askengine/askengine/internal/model"
)

// BaseballParser normalizes MLB Stats API responses
type BaseballParser struct {
	client *fetch.MLBClient
}

// NewBaseballParser creates a baseball parser
func NewBaseballParser(client *fetch.MLBClient) *BaseballParser {
	return &BaseballParser{client: client}
}

type mlbRecord struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Pct    string `json:"pct"`
}

type mlbTeamsResponse struct {
	Teams []struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		Record struct {
			Records []mlbRecord `json:"records"`
		} `json:"record"`
	} `json:"teams"`
}

type mlbRosterResponse struct {
	Roster []struct {
		Person struct {
			ID       int    `json:"id"`
			FullName string `json:"fullName"`
		} `json:"person"`
	} `json:"roster"`
}

type mlbHittingResponse struct {
	Stats []struct {
		Splits []struct {
			Stat struct {
				HomeRuns int    `json:"homeRuns"`
				AVG      string `json:"avg"`
				OBP      string `json:"obp"`
				SLG      string `json:"slg"`
				RBI      int    `json:"rbi"`
			} `json:"stat"`
		} `json:"splits"`
	} `json:"stats"`
}

// Parse fetches and normalizes the requested baseball dataset
func (p *BaseballParser) Parse(ctx context.Context, source Source) ([]model.Row, error) {
	switch source.DataType {
	case model.DataTeamStats:
		return p.parseTeamStats(ctx, source.Season)
	case model.DataPlayerStats:
		return p.parsePlayerStats(ctx, source.Season)
	default:
		return nil, fmt.Errorf("unsupported data type: %s", source.DataType)
	}
}

// Validate reports whether rows satisfy the baseball schema
func (p *BaseballParser) Validate(source Source, rows []model.Row) bool {
	return model.ValidateRows(model.SportBaseball, source.DataType, rows)
}

func (p *BaseballParser) parseTeamStats(ctx context.Context, season string) ([]model.Row, error) {
	body, err := p.client.Teams(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}

	var resp mlbTeamsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode teams: %w", err)
	}

	rows := make([]model.Row, 0, len(resp.Teams))
	for _, team := range resp.Teams {
		record := mlbRecord{Pct: "0.000"}
		if len(team.Record.Records) > 0 {
			record = team.Record.Records[0]
		}
		rows = append(rows, model.Row{
			"team_id":   team.ID,
			"team_name": team.Name,
			"wins":      record.Wins,
			"losses":    record.Losses,
			"win_pct":   record.Pct,
			"season":    season,
		})
	}
	return rows, nil
}

// parsePlayerStats walks teams, their active rosters, and each player's
// season hitting splits. Failures for individual players or rosters skip
// the record rather than aborting the dataset.
func (p *BaseballParser) parsePlayerStats(ctx context.Context, season string) ([]model.Row, error) {
	body, err := p.client.Teams(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}

	var teams mlbTeamsResponse
	if err := json.Unmarshal(body, &teams); err != nil {
		return nil, fmt.Errorf("decode teams: %w", err)
	}

	var rows []model.Row
	for _, team := range teams.Teams {
		rosterBody, err := p.client.Roster(ctx, strconv.Itoa(team.ID), season)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: roster for %s (%d): %v\n", team.Name, team.ID, err)
			continue
		}

		var roster mlbRosterResponse
		if err := json.Unmarshal(rosterBody, &roster); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: decode roster for %s: %v\n", team.Name, err)
			continue
		}

		for _, slot := range roster.Roster {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			statsBody, err := p.client.PlayerHitting(ctx, strconv.Itoa(slot.Person.ID), season)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: stats for %s (%d): %v\n", slot.Person.FullName, slot.Person.ID, err)
				continue
			}

			var hitting mlbHittingResponse
			if err := json.Unmarshal(statsBody, &hitting); err != nil {
				continue
			}

			for _, group := range hitting.Stats {
				for _, split := range group.Splits {
					rows = append(rows, model.Row{
						"player_id":   slot.Person.ID,
						"player_name": slot.Person.FullName,
						"team_id":     team.ID,
						"team_name":   team.Name,
						"hr":          split.Stat.HomeRuns,
						"avg":         split.Stat.AVG,
						"obp":         split.Stat.OBP,
						"slg":         split.Stat.SLG,
						"rbi":         split.Stat.RBI,
						"season":      season,
					})
				}
			}
		}
	}
	return rows, nil
}
