package classify

import (
	"testing"

	"github.com/askengine/askengine/internal/model"
)

func TestClassifier_Ranking(t *testing.T) {
	classifier := NewClassifier()

	queries := []string{
		"Who had the most goals in La Liga 2014?",
		"Highest PPG in the NBA 2022",
		"Best hitters in MLB 2021",
		"Top 10 WAR leaders in MLB 2001",
	}

	for _, query := range queries {
		if action := classifier.Classify(query, nil); action != model.ActionGetRanking {
			t.Errorf("Classify(%q) = %s, expected get_ranking", query, action)
		}
	}
}

func TestClassifier_Compare(t *testing.T) {
	classifier := NewClassifier()

	queries := []string{
		"Compare HR for the Yankees and Red Sox in 2021",
		"Yankees vs Red Sox RBI 2021",
		"Messi versus Ronaldo goals in 2014",
	}

	for _, query := range queries {
		if action := classifier.Classify(query, nil); action != model.ActionCompare {
			t.Errorf("Classify(%q) = %s, expected compare", query, action)
		}
	}
}

func TestClassifier_DefaultGetStat(t *testing.T) {
	classifier := NewClassifier()

	if action := classifier.Classify("HR for the Yankees in 2021", nil); action != model.ActionGetStat {
		t.Errorf("expected get_stat, got %s", action)
	}
}

func TestClassifier_RankingBeatsCompare(t *testing.T) {
	classifier := NewClassifier()

	// Both cue sets present; ranking is checked first
	query := "Compare the most HR in MLB 2021"
	if action := classifier.Classify(query, nil); action != model.ActionGetRanking {
		t.Errorf("Classify(%q) = %s, expected get_ranking", query, action)
	}
}

func TestClassifier_CueInsideWord(t *testing.T) {
	classifier := NewClassifier()

	// "most" matches as a substring wherever it appears
	if action := classifier.Classify("The utmost HR totals in MLB 2021", nil); action != model.ActionGetRanking {
		t.Errorf("expected get_ranking from embedded most, got %s", action)
	}
}

func TestClassifier_CaseInsensitive(t *testing.T) {
	classifier := NewClassifier()

	if action := classifier.Classify("MOST GOALS IN LA LIGA 2014", nil); action != model.ActionGetRanking {
		t.Errorf("expected get_ranking for uppercase query, got %s", action)
	}
}
