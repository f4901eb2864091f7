package gencss

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputFileName is written inside the output directory.
const OutputFileName = "gencss.css"

// DefaultOutput is the output location used when none is given.
const DefaultOutput = "./"

// ResolveOutput maps the --output value to a file path. A directory,
// whether existing or spelled with a trailing separator, receives
// OutputFileName.
func ResolveOutput(output string) string {
	if output == "" {
		output = DefaultOutput
	}

	if strings.HasSuffix(output, "/") || strings.HasSuffix(output, string(os.PathSeparator)) {
		return filepath.Join(output, OutputFileName)
	}

	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, OutputFileName)
	}

	return output
}

// writeStylesheet writes css followed by a newline. Parent directories
// must already exist.
func writeStylesheet(path, css string) error {
	// #nosec G306 - generated stylesheets are meant to be world-readable
	if err := os.WriteFile(path, []byte(css+"\n"), 0644); err != nil {
		return fmt.Errorf("write stylesheet %s: %w", path, err)
	}
	return nil
}
