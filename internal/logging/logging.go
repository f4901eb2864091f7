// Package logging builds the leveled terminal logger used by the CLI.
package logging

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Levels lists the accepted level names, most verbose first.
var Levels = []string{"debug", "info", "warn", "error"}

// ErrInvalidLevel is returned for a level name outside Levels.
var ErrInvalidLevel = errors.New("logLevel invalid")

// Options configures New.
type Options struct {
	Level string // One of Levels
	Color bool   // Colored level labels
}

// ParseLevel converts a level name. Names are matched exactly.
func ParseLevel(name string) (log.Level, error) {
	if !slices.Contains(Levels, name) {
		return 0, fmt.Errorf("%w. Valid values: %s", ErrInvalidLevel, strings.Join(Levels, ", "))
	}
	return log.ParseLevel(name)
}

// New returns a logger writing to w at the requested level.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(w, log.Options{Level: level})
	logger.SetStyles(Styles())
	if !opts.Color {
		logger.SetColorProfile(termenv.Ascii)
	}
	return logger, nil
}

// Styles returns the logger styles with four-letter level labels.
func Styles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels = map[log.Level]lipgloss.Style{
		log.DebugLevel: levelStyle("DEBG", "7"),
		log.InfoLevel:  levelStyle("INFO", "6"),
		log.WarnLevel:  levelStyle("WARN", "208"),
		log.ErrorLevel: levelStyle("ERRO", "1"),
	}
	return styles
}

func levelStyle(label, color string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Bold(true).
		Foreground(lipgloss.Color(color))
}
