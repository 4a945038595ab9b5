package fetch

import (
	"context"
	"fmt"
)

// MLB Stats API endpoints
const (
	mlbBaseURL         = "https://statsapi.mlb.com/api/v1"
	mlbTeamsEndpoint   = mlbBaseURL + "/teams"
	mlbRosterEndpoint  = mlbBaseURL + "/teams/%s/roster/Active"
	mlbHittingEndpoint = mlbBaseURL + "/people/%s/stats"
)

// mlbHeaders are required for the MLB Stats API to accept requests
var mlbHeaders = map[string]string{
	"Accept":          "application/json",
	"Accept-Language": "en-US,en;q=0.9",
	"Referer":         "https://www.mlb.com/",
}

// MLBClient fetches baseball data from the MLB Stats API
type MLBClient struct {
	fetcher *Fetcher
}

// NewMLBClient creates an MLB Stats API client
func NewMLBClient(fetcher *Fetcher) *MLBClient {
	return &MLBClient{fetcher: fetcher}
}

// Teams returns the raw team list with season records
func (c *MLBClient) Teams(ctx context.Context, season string) ([]byte, error) {
	params := map[string]string{
		"season":  season,
		"sportId": "1",
		"fields":  "teams,id,name,teamName,abbreviation,record",
	}
	return c.fetcher.Get(ctx, mlbTeamsEndpoint, params, mlbHeaders)
}

// Roster returns the raw active roster for a team
func (c *MLBClient) Roster(ctx context.Context, teamID string, season string) ([]byte, error) {
	url := fmt.Sprintf(mlbRosterEndpoint, teamID)
	params := map[string]string{"season": season}
	return c.fetcher.Get(ctx, url, params, mlbHeaders)
}

// PlayerHitting returns a player's raw regular-season hitting splits
func (c *MLBClient) PlayerHitting(ctx context.Context, playerID string, season string) ([]byte, error) {
	url := fmt.Sprintf(mlbHittingEndpoint, playerID)
	params := map[string]string{
		"stats":    "season",
		"group":    "hitting",
		"season":   season,
		"gameType": "R",
	}
	return c.fetcher.Get(ctx, url, params, mlbHeaders)
}
