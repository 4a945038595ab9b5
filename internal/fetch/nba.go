package fetch

import (
	"context"
	"fmt"
	"strconv"
)

// NBA Stats API endpoints
const (
	nbaBaseURL         = "https://stats.nba.com/stats"
	nbaTeamsEndpoint   = nbaBaseURL + "/leaguedashteamstats"
	nbaPlayersEndpoint = nbaBaseURL + "/leaguedashplayerstats"
)

// nbaHeaders are required or stats.nba.com rejects the request
var nbaHeaders = map[string]string{
	"Host":               "stats.nba.com",
	"Accept":             "application/json, text/plain, */*",
	"Accept-Language":    "en-US,en;q=0.9",
	"x-nba-stats-origin": "stats",
	"x-nba-stats-token":  "true",
	"Origin":             "https://www.nba.com",
	"Referer":            "https://www.nba.com/",
	"Sec-Fetch-Dest":     "empty",
	"Sec-Fetch-Mode":     "cors",
	"Sec-Fetch-Site":     "same-site",
}

// NBAClient fetches basketball data from the NBA Stats API
type NBAClient struct {
	fetcher *Fetcher
}

// NewNBAClient creates an NBA Stats API client
func NewNBAClient(fetcher *Fetcher) *NBAClient {
	return &NBAClient{fetcher: fetcher}
}

// TeamStats returns raw per-game team stats for the season
func (c *NBAClient) TeamStats(ctx context.Context, season string) ([]byte, error) {
	return c.fetcher.Get(ctx, nbaTeamsEndpoint, nbaDashParams(season), nbaHeaders)
}

// PlayerStats returns raw per-game player stats for the season
func (c *NBAClient) PlayerStats(ctx context.Context, season string) ([]byte, error) {
	return c.fetcher.Get(ctx, nbaPlayersEndpoint, nbaDashParams(season), nbaHeaders)
}

// nbaDashParams builds the full leaguedash parameter set. The API rejects
// requests with any of these missing, even when empty.
func nbaDashParams(season string) map[string]string {
	return map[string]string{
		"MeasureType":      "Base",
		"PerMode":          "PerGame",
		"PlusMinus":        "N",
		"PaceAdjust":       "N",
		"Rank":             "N",
		"Season":           nbaSeasonParam(season),
		"SeasonType":       "Regular Season",
		"LastNGames":       "0",
		"Conference":       "",
		"DateFrom":         "",
		"DateTo":           "",
		"Division":         "",
		"GameScope":        "",
		"GameSegment":      "",
		"LeagueID":         "00",
		"Location":         "",
		"Month":            "0",
		"OpponentTeamID":   "0",
		"Outcome":          "",
		"Period":           "0",
		"PlayerExperience": "",
		"PlayerPosition":   "",
		"SeasonSegment":    "",
		"ShotClockRange":   "",
		"StarterBench":     "",
		"TeamID":           "0",
		"TwoWay":           "0",
		"VsConference":     "",
		"VsDivision":       "",
	}
}

// nbaSeasonParam converts a season start year like "2023" into the
// "2023-24" format the NBA API expects. Unparseable input passes through.
func nbaSeasonParam(season string) string {
	year, err := strconv.Atoi(season)
	if err != nil {
		return season
	}
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}
