package model

import "testing"

func TestRequiredColumns(t *testing.T) {
	cols := RequiredColumns(SportBaseball, DataPlayerStats)
	if len(cols) != 10 {
		t.Errorf("expected 10 baseball player columns, got %d", len(cols))
	}

	cols = RequiredColumns(SportBasketball, DataPlayerStats)
	if len(cols) != 7 {
		t.Errorf("expected 7 basketball player columns, got %d", len(cols))
	}

	if cols := RequiredColumns(SportSoccer, DataPlayerStats); cols != nil {
		t.Errorf("expected nil schema for soccer, got %v", cols)
	}
}

func TestValidateRows(t *testing.T) {
	valid := []Row{
		{
			"team_id": 147, "team_name": "New York Yankees",
			"wins": 92, "losses": 70, "win_pct": ".568", "season": "2021",
		},
	}

	if !ValidateRows(SportBaseball, DataTeamStats, valid) {
		t.Error("expected complete rows to validate")
	}
}

func TestValidateRows_MissingColumn(t *testing.T) {
	rows := []Row{
		{"team_id": 147, "team_name": "New York Yankees", "season": "2021"},
	}

	if ValidateRows(SportBaseball, DataTeamStats, rows) {
		t.Error("expected rows missing wins/losses to fail validation")
	}
}

func TestValidateRows_Empty(t *testing.T) {
	if ValidateRows(SportBaseball, DataTeamStats, nil) {
		t.Error("expected empty dataset to fail validation")
	}
	if ValidateRows(SportBaseball, DataTeamStats, []Row{}) {
		t.Error("expected empty dataset to fail validation")
	}
}

func TestValidateRows_NoSchema(t *testing.T) {
	rows := []Row{{"anything": 1}}
	if ValidateRows(SportSoccer, DataPlayerStats, rows) {
		t.Error("expected sport without schema to fail validation")
	}
}
