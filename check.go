package gencss

import (
	"errors"
	"fmt"
	"os"

	"github.com/yacobolo/gencss/internal/stylesheet"
)

// ErrDrift is returned by Check when the stylesheet on disk does not match
// a fresh generation.
var ErrDrift = errors.New("stylesheet out of date")

// CheckResult describes a drift check.
type CheckResult struct {
	Path     string              // Stylesheet that was checked
	Exists   bool                // Stylesheet was found
	UpToDate bool                // File is byte-identical to a fresh generation
	Changes  []stylesheet.Change // Rule-level differences
}

// Check regenerates the stylesheet in memory and compares it with the
// file at the output path. A stale or missing file yields ErrDrift; a
// stale file also yields the rule-level changes.
func Check(opts Options) (*CheckResult, error) {
	built, err := Build(opts)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{Path: built.OutputPath}
	want := built.CSS + "\n"

	// #nosec G304 - path comes from the user's own CLI flags
	data, err := os.ReadFile(result.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return result, fmt.Errorf("%w: %s does not exist", ErrDrift, result.Path)
		}
		return nil, fmt.Errorf("read stylesheet %s: %w", result.Path, err)
	}
	result.Exists = true

	if string(data) == want {
		result.UpToDate = true
		return result, nil
	}

	wantRules, err := stylesheet.Parse(want)
	if err != nil {
		return nil, err
	}
	gotRules, err := stylesheet.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", result.Path, err)
	}

	result.Changes = stylesheet.Diff(wantRules, gotRules)
	logger(opts).Debug("compared stylesheet", "path", result.Path,
		"want", len(wantRules), "got", len(gotRules), "changes", len(result.Changes))

	return result, fmt.Errorf("%w: %s", ErrDrift, result.Path)
}
