package parse

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/askengine/askengine/internal/model"
)

func TestNewParser(t *testing.T) {
	if _, err := NewParser(model.SportBaseball, nil); err != nil {
		t.Errorf("expected baseball parser, got error: %v", err)
	}
	if _, err := NewParser(model.SportBasketball, nil); err != nil {
		t.Errorf("expected basketball parser, got error: %v", err)
	}
}

func TestNewParser_NoDataSource(t *testing.T) {
	_, err := NewParser(model.SportSoccer, nil)
	if !errors.Is(err, model.ErrNoDataSource) {
		t.Errorf("expected ErrNoDataSource for soccer, got %v", err)
	}

	_, err = NewParser(model.SportUnknown, nil)
	if !errors.Is(err, model.ErrNoDataSource) {
		t.Errorf("expected ErrNoDataSource for unknown sport, got %v", err)
	}
}

func TestMLBTeamsResponse_Decode(t *testing.T) {
	body := `{
		"teams": [
			{
				"id": 147,
				"name": "New York Yankees",
				"record": {
					"records": [
						{"wins": 92, "losses": 70, "pct": ".568"}
					]
				}
			},
			{
				"id": 121,
				"name": "New York Mets",
				"record": {"records": []}
			}
		]
	}`

	var resp mlbTeamsResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if len(resp.Teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(resp.Teams))
	}
	if resp.Teams[0].ID != 147 || resp.Teams[0].Name != "New York Yankees" {
		t.Errorf("unexpected first team: %+v", resp.Teams[0])
	}
	if resp.Teams[0].Record.Records[0].Wins != 92 {
		t.Errorf("expected 92 wins, got %d", resp.Teams[0].Record.Records[0].Wins)
	}
	if len(resp.Teams[1].Record.Records) != 0 {
		t.Errorf("expected no records for second team")
	}
}

func TestMLBHittingResponse_Decode(t *testing.T) {
	body := `{
		"stats": [
			{
				"splits": [
					{
						"stat": {
							"homeRuns": 62,
							"avg": ".311",
							"obp": ".425",
							"slg": ".686",
							"rbi": 131
						}
					}
				]
			}
		]
	}`

	var resp mlbHittingResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if len(resp.Stats) != 1 || len(resp.Stats[0].Splits) != 1 {
		t.Fatalf("unexpected response shape: %+v", resp)
	}
	stat := resp.Stats[0].Splits[0].Stat
	if stat.HomeRuns != 62 {
		t.Errorf("expected 62 HR, got %d", stat.HomeRuns)
	}
	if stat.AVG != ".311" {
		t.Errorf("expected .311 AVG, got %s", stat.AVG)
	}
	if stat.RBI != 131 {
		t.Errorf("expected 131 RBI, got %d", stat.RBI)
	}
}

func TestMLBRosterResponse_Decode(t *testing.T) {
	body := `{
		"roster": [
			{"person": {"id": 592450, "fullName": "Aaron Judge"}},
			{"person": {"id": 665742, "fullName": "Juan Soto"}}
		]
	}`

	var resp mlbRosterResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if len(resp.Roster) != 2 {
		t.Fatalf("expected 2 roster slots, got %d", len(resp.Roster))
	}
	if resp.Roster[0].Person.FullName != "Aaron Judge" {
		t.Errorf("unexpected first player: %+v", resp.Roster[0])
	}
}

func TestBaseballParser_Validate(t *testing.T) {
	parser := NewBaseballParser(nil)

	source := Source{Sport: model.SportBaseball, DataType: model.DataTeamStats}

	rows := []model.Row{
		{
			"team_id": 147, "team_name": "New York Yankees",
			"wins": 92, "losses": 70, "win_pct": ".568", "season": "2021",
		},
	}
	if !parser.Validate(source, rows) {
		t.Error("expected complete rows to validate")
	}

	incomplete := []model.Row{{"team_id": 147, "season": "2021"}}
	if parser.Validate(source, incomplete) {
		t.Error("expected incomplete rows to fail validation")
	}
}
