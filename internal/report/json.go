package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/gencss/internal/stylesheet"
)

// Result is the outcome of a drift check, as the reporters see it.
type Result struct {
	Path     string
	Exists   bool
	UpToDate bool
	Changes  []stylesheet.Change
}

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string       `json:"version"`
	Timestamp string       `json:"timestamp"`
	Path      string       `json:"path"`
	Exists    bool         `json:"exists"`
	UpToDate  bool         `json:"up_to_date"`
	Summary   JSONSummary  `json:"summary"`
	Changes   []JSONChange `json:"changes"`
}

// JSONSummary contains change counts by kind
type JSONSummary struct {
	Total      int `json:"total"`
	Missing    int `json:"missing"`
	Changed    int `json:"changed"`
	Unexpected int `json:"unexpected"`
}

// JSONChange represents a single rule difference
type JSONChange struct {
	Kind string `json:"kind"`
	Key  string `json:"key"`
	Want string `json:"want,omitempty"`
	Got  string `json:"got,omitempty"`
}

// WriteJSON writes the check result as indented JSON
func WriteJSON(w io.Writer, result Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result, time.Now()))
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result Result, now time.Time) JSONOutput {
	counts := stylesheet.Count(result.Changes)

	changes := make([]JSONChange, len(result.Changes))
	for i, c := range result.Changes {
		changes[i] = JSONChange{
			Kind: c.Kind.String(),
			Key:  c.Key,
			Want: c.Want,
			Got:  c.Got,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Path:      result.Path,
		Exists:    result.Exists,
		UpToDate:  result.UpToDate,
		Summary: JSONSummary{
			Total:      len(result.Changes),
			Missing:    counts[stylesheet.Missing],
			Changed:    counts[stylesheet.Changed],
			Unexpected: counts[stylesheet.Unexpected],
		},
		Changes: changes,
	}
}
