package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/askengine/askengine/internal/model"
)

// Renderer writes results as JSON files or human-readable summaries
type Renderer struct{}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes the value as indented JSON to path, or to stdout when
// path is "-" or empty.
func (r *Renderer) RenderJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	data = append(data, '\n')

	if path == "" || path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// RenderRequest prints the parsed interpretation of a query
func (r *Renderer) RenderRequest(w io.Writer, req *model.Request, verbose bool) {
	if verbose {
		fmt.Fprintf(w, "\nQuery: %s\n", req.Query)
		fmt.Fprintf(w, "Sport: %s\n", req.Sport)
		fmt.Fprintf(w, "\nParsed Intent:\n")
		fmt.Fprintf(w, "  Action: %s\n", req.Intent.Action)
		fmt.Fprintf(w, "\nEntities:\n")
		for _, e := range req.Intent.Entities {
			fmt.Fprintf(w, "  - %s: %s (confidence: %.1f)\n", e.Kind, e.Value, e.Confidence)
		}
		if req.Intent.TimeRange != nil {
			fmt.Fprintf(w, "\nTime Range: year=%d\n", req.Intent.TimeRange.Year)
		}
		return
	}

	fmt.Fprintf(w, "Sport: %s\n", req.Sport)
	fmt.Fprintf(w, "Action: %s\n", req.Intent.Action)
	entities := ""
	for i, e := range req.Intent.Entities {
		if i > 0 {
			entities += ", "
		}
		entities += fmt.Sprintf("%s=%s", e.Kind, e.Value)
	}
	fmt.Fprintf(w, "Entities: %s\n", entities)
}

// RenderAnswer prints a short human-readable answer summary
func (r *Renderer) RenderAnswer(w io.Writer, result *Result) {
	answer := result.Answer
	if answer == nil {
		return
	}

	fmt.Fprintf(w, "\nSport: %s  Action: %s", answer.Sport, answer.Action)
	if answer.Stat != "" {
		fmt.Fprintf(w, "  Stat: %s", answer.Stat)
	}
	if answer.Season != "" {
		fmt.Fprintf(w, "  Season: %s", answer.Season)
	}
	fmt.Fprintf(w, "\n")
	if answer.Note != "" {
		fmt.Fprintf(w, "Note: %s\n", answer.Note)
	}

	fmt.Fprintf(w, "\n%d row(s):\n", len(answer.Rows))
	for i, row := range answer.Rows {
		if i >= rankingSize {
			fmt.Fprintf(w, "  ... and %d more\n", len(answer.Rows)-rankingSize)
			break
		}
		name := row["player_name"]
		if name == nil {
			name = row["team_name"]
		}
		if answer.Column != "" {
			fmt.Fprintf(w, "  %2d. %v  %s=%v\n", i+1, name, answer.Stat, row[answer.Column])
		} else {
			fmt.Fprintf(w, "  %2d. %v\n", i+1, name)
		}
	}

	if result.Summary != nil && result.Summary.Text != "" {
		fmt.Fprintf(w, "\nSummary (%s/%s):\n%s\n", result.Summary.Provider, result.Summary.Model, result.Summary.Text)
	}
}
