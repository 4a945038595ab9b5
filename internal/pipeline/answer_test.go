package pipeline

import (
	"errors"
	"testing"

	"github.com/askengine/askengine/internal/model"
)

func rankingRequest(sport model.Sport, stat string, year int) *model.Request {
	entities := []model.Entity{
		{Kind: model.KindYear, Value: "2022", Confidence: 1.0},
	}
	if stat != "" {
		entities = append(entities, model.Entity{Kind: model.KindStat, Value: stat, Confidence: 1.0})
	}
	return &model.Request{
		Sport: sport,
		Intent: model.Intent{
			Action:    model.ActionGetRanking,
			Entities:  entities,
			TimeRange: &model.TimeRange{Year: year},
		},
	}
}

func TestComputeAnswer_Ranking(t *testing.T) {
	req := rankingRequest(model.SportBaseball, "HR", 2022)

	rows := []model.Row{
		{"player_name": "Kyle Schwarber", "hr": 46},
		{"player_name": "Aaron Judge", "hr": 62},
		{"player_name": "Yordan Alvarez", "hr": 37},
	}

	answer, err := ComputeAnswer(req, rows)
	if err != nil {
		t.Fatalf("ComputeAnswer failed: %v", err)
	}

	if answer.Stat != "HR" || answer.Column != "hr" {
		t.Errorf("expected stat HR mapped to hr, got %s/%s", answer.Stat, answer.Column)
	}
	if answer.Season != "2022" {
		t.Errorf("expected season 2022, got %s", answer.Season)
	}
	if len(answer.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(answer.Rows))
	}
	if answer.Rows[0]["player_name"] != "Aaron Judge" {
		t.Errorf("expected Aaron Judge first, got %v", answer.Rows[0]["player_name"])
	}
	if answer.Rows[2]["player_name"] != "Yordan Alvarez" {
		t.Errorf("expected Yordan Alvarez last, got %v", answer.Rows[2]["player_name"])
	}
}

func TestComputeAnswer_RankingCapped(t *testing.T) {
	req := rankingRequest(model.SportBasketball, "PPG", 2022)

	var rows []model.Row
	for i := 0; i < 25; i++ {
		rows = append(rows, model.Row{"player_name": "Player", "ppg": float64(i)})
	}

	answer, err := ComputeAnswer(req, rows)
	if err != nil {
		t.Fatalf("ComputeAnswer failed: %v", err)
	}

	if len(answer.Rows) != rankingSize {
		t.Errorf("expected ranking capped at %d rows, got %d", rankingSize, len(answer.Rows))
	}
	if answer.Rows[0]["ppg"] != float64(24) {
		t.Errorf("expected top value 24, got %v", answer.Rows[0]["ppg"])
	}
}

func TestComputeAnswer_StringStatsSort(t *testing.T) {
	// MLB reports rate stats as strings like ".311"
	req := rankingRequest(model.SportBaseball, "AVG", 2022)

	rows := []model.Row{
		{"player_name": "Low", "avg": ".249"},
		{"player_name": "High", "avg": ".326"},
		{"player_name": "Mid", "avg": ".297"},
	}

	answer, err := ComputeAnswer(req, rows)
	if err != nil {
		t.Fatalf("ComputeAnswer failed: %v", err)
	}

	if answer.Rows[0]["player_name"] != "High" {
		t.Errorf("expected High first, got %v", answer.Rows[0]["player_name"])
	}
	if answer.Rows[2]["player_name"] != "Low" {
		t.Errorf("expected Low last, got %v", answer.Rows[2]["player_name"])
	}
}

func TestComputeAnswer_StatUnavailable(t *testing.T) {
	// WAR is in the vocabulary but no upstream column carries it
	req := rankingRequest(model.SportBaseball, "WAR", 2001)

	_, err := ComputeAnswer(req, []model.Row{{"player_name": "Test", "hr": 1}})
	if !errors.Is(err, model.ErrStatUnavailable) {
		t.Errorf("expected ErrStatUnavailable, got %v", err)
	}
}

func TestComputeAnswer_RankingWithoutStat(t *testing.T) {
	req := rankingRequest(model.SportBaseball, "", 2022)

	var rows []model.Row
	for i := 0; i < 15; i++ {
		rows = append(rows, model.Row{"player_name": "Player", "hr": i})
	}

	answer, err := ComputeAnswer(req, rows)
	if err != nil {
		t.Fatalf("ComputeAnswer failed: %v", err)
	}

	if len(answer.Rows) != rankingSize {
		t.Errorf("expected %d unranked rows, got %d", rankingSize, len(answer.Rows))
	}
	if answer.Note == "" {
		t.Error("expected a note explaining the unranked result")
	}
	// Input order preserved
	if answer.Rows[0]["hr"] != 0 {
		t.Errorf("expected original order, got %v first", answer.Rows[0]["hr"])
	}
}

func TestComputeAnswer_Compare(t *testing.T) {
	req := &model.Request{
		Sport: model.SportBaseball,
		Intent: model.Intent{
			Action: model.ActionCompare,
			Entities: []model.Entity{
				{Kind: model.KindStat, Value: "HR", Confidence: 1.0},
			},
		},
	}

	rows := []model.Row{
		{"player_name": "B", "hr": 10},
		{"player_name": "A", "hr": 20},
	}

	answer, err := ComputeAnswer(req, rows)
	if err != nil {
		t.Fatalf("ComputeAnswer failed: %v", err)
	}

	if len(answer.Rows) != 2 {
		t.Fatalf("expected all rows, got %d", len(answer.Rows))
	}
	if answer.Rows[0]["player_name"] != "A" {
		t.Errorf("expected rows sorted by stat, got %v first", answer.Rows[0]["player_name"])
	}
	if answer.Note == "" {
		t.Error("expected comparison note")
	}
}

func TestComputeAnswer_GetStat(t *testing.T) {
	req := &model.Request{
		Sport: model.SportBasketball,
		Intent: model.Intent{
			Action: model.ActionGetStat,
			Entities: []model.Entity{
				{Kind: model.KindStat, Value: "PPG", Confidence: 1.0},
			},
		},
	}

	rows := []model.Row{
		{"player_name": "B", "ppg": 25.0},
		{"player_name": "A", "ppg": 33.1},
	}

	answer, err := ComputeAnswer(req, rows)
	if err != nil {
		t.Fatalf("ComputeAnswer failed: %v", err)
	}

	if len(answer.Rows) != 2 {
		t.Fatalf("expected all rows, got %d", len(answer.Rows))
	}
	if answer.Rows[0]["player_name"] != "A" {
		t.Errorf("expected highest PPG first, got %v", answer.Rows[0]["player_name"])
	}
}

func TestSortByColumn_NonNumericLast(t *testing.T) {
	rows := []model.Row{
		{"player_name": "Bad", "avg": "not-a-number"},
		{"player_name": "Good", "avg": ".300"},
	}

	sorted := sortByColumn(rows, "avg")

	if sorted[0]["player_name"] != "Good" {
		t.Errorf("expected numeric value first, got %v", sorted[0]["player_name"])
	}
	if sorted[1]["player_name"] != "Bad" {
		t.Errorf("expected non-numeric value last, got %v", sorted[1]["player_name"])
	}

	// Input slice untouched
	if rows[0]["player_name"] != "Bad" {
		t.Error("expected input order preserved")
	}
}

func TestNumericValue(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{62, 62, true},
		{33.1, 33.1, true},
		{".297", 0.297, true},
		{"62", 62, true},
		{"n/a", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}

	for _, tt := range tests {
		got, ok := numericValue(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("numericValue(%v) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
