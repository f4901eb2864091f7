package report

import "github.com/charmbracelet/lipgloss"

// Terminal styles for drift reports.
var (
	// StylePath marks file names and section headers.
	StylePath = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleMissing marks rules absent from the stylesheet.
	StyleMissing = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleUnexpected marks rules that are no longer generated.
	StyleUnexpected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleOK marks an up-to-date stylesheet.
	StyleOK = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleHint marks declaration bodies and hints.
	StyleHint = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies style when colors are enabled.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
