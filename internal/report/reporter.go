// Package report prints the outcome of a stylesheet drift check.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/yacobolo/gencss/internal/stylesheet"
)

// Reporter formats drift check results
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w. Colors are used only when
// color is true and w looks like a color-capable terminal.
func NewReporter(w io.Writer, color bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: shouldUseColors(w, color),
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(w io.Writer, color bool) bool {
	// --color=false always wins
	if !color {
		return false
	}

	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if f, ok := w.(*os.File); ok {
		if fileInfo, err := f.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
			return true
		}
	}

	return false
}

// PrintChanges outputs one line per change, prefixed with the file path.
func (r *Reporter) PrintChanges(path string, changes []stylesheet.Change) {
	for _, c := range changes {
		r.printChange(path, c)
	}
}

// printChange formats a single change:
//
//	gencss.css: missing .p-sm
//		want: padding: 4px;
func (r *Reporter) printChange(path string, c stylesheet.Change) {
	style := StyleUnexpected
	if c.Kind == stylesheet.Missing {
		style = StyleMissing
	}

	fmt.Fprintf(r.w, "%s %s %s\n",
		RenderStyle(StylePath, path+":", r.useColors),
		RenderStyle(style, c.Kind.String(), r.useColors),
		c.Key)

	if c.Want != "" {
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleHint, "want: "+c.Want, r.useColors))
	}
	if c.Got != "" {
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleHint, "got:  "+c.Got, r.useColors))
	}
}

// PrintSummary outputs the change count summary
func (r *Reporter) PrintSummary(path string, changes []stylesheet.Change) {
	if len(changes) == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleOK, path+" is up to date", r.useColors))
		return
	}

	counts := stylesheet.Count(changes)

	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "%s:\n", pluralizeCount(len(changes), "change", "changes"))
	for _, kind := range []stylesheet.ChangeKind{stylesheet.Missing, stylesheet.Changed, stylesheet.Unexpected} {
		if counts[kind] > 0 {
			fmt.Fprintf(r.w, "* %s: %d\n", kind, counts[kind])
		}
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleHint, "Hint: Run 'gencss generate' to rewrite the stylesheet", r.useColors))
}

// PrintFormatting reports a stylesheet whose rules match but whose text
// does not.
func (r *Reporter) PrintFormatting(path string) {
	fmt.Fprintf(r.w, "%s %s\n",
		RenderStyle(StylePath, path+":", r.useColors),
		RenderStyle(StyleUnexpected, "rules match but formatting differs", r.useColors))
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
