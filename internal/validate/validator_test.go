package validate

import (
	"testing"

	"github.com/askengine/askengine/internal/vocab"
)

func TestValidator_ValidQueries(t *testing.T) {
	validator := NewValidator(vocab.Default())

	queries := []string{
		"Who had the most goals in La Liga 2014?",
		"Top 10 WAR leaders in MLB 2001",
		"Which NBA player had the highest PPG in 2022?",
		"Best NBA players this season",
		"Goals scored in the current campaign",
		"HR leaders by year",
	}

	for _, query := range queries {
		if !validator.IsValid(query) {
			t.Errorf("expected %q to be valid", query)
		}
	}
}

func TestValidator_MissingTemporal(t *testing.T) {
	validator := NewValidator(vocab.Default())

	queries := []string{
		"Best NBA players",
		"Most goals in La Liga",
		"HR leaders in MLB",
	}

	for _, query := range queries {
		if validator.IsValid(query) {
			t.Errorf("expected %q to be invalid (no temporal reference)", query)
		}
	}
}

func TestValidator_MissingSportEntity(t *testing.T) {
	validator := NewValidator(vocab.Default())

	queries := []string{
		"What happened in 2014?",
		"Events of the 2020 season",
		"Tell me about this year",
	}

	for _, query := range queries {
		if validator.IsValid(query) {
			t.Errorf("expected %q to be invalid (no sport entity)", query)
		}
	}
}

func TestValidator_ValidButUnroutable(t *testing.T) {
	validator := NewValidator(vocab.Default())

	// Validation is a gate, not a routing guarantee: this passes validation
	// via the "assists" stat even though later stages may still fail
	if !validator.IsValid("Most assists in 2020") {
		t.Error("expected stat plus year to validate")
	}
}

func TestValidator_TemporalWords(t *testing.T) {
	validator := NewValidator(vocab.Default())

	tests := []struct {
		query string
		want  bool
	}{
		{"NBA PPG this season", true},
		{"NBA PPG this year", true},
		{"NBA PPG current standings", true},
		{"NBA PPG overall", false},
	}

	for _, tt := range tests {
		if got := validator.IsValid(tt.query); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}
