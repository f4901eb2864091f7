package gencss

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/yacobolo/gencss/internal/config"
	"github.com/yacobolo/gencss/internal/generator"
)

// Options configures Generate and Check.
type Options struct {
	ConfigPath string      // Path or glob of gencss.config.json
	Output     string      // Output file or directory, DefaultOutput when empty
	Logger     *log.Logger // Optional, output is discarded when nil
}

// GenerateResult describes one generation run.
type GenerateResult struct {
	ConfigPath  string // Resolved config file
	OutputPath  string // Resolved stylesheet path
	CSS         string // Stylesheet text without the trailing newline
	Spacing     int    // Valid spacing steps
	BreakPoints int    // Valid breakpoints
	Rules       int    // Rendered rule blocks
	Dropped     []generator.Dropped
}

// Generate reads the config, renders the stylesheet and writes it to the
// output path.
func Generate(opts Options) (*GenerateResult, error) {
	result, err := Build(opts)
	if err != nil {
		return nil, err
	}

	if err := writeStylesheet(result.OutputPath, result.CSS); err != nil {
		return nil, err
	}
	logger(opts).Debug("wrote stylesheet", "path", result.OutputPath, "bytes", len(result.CSS)+1)

	return result, nil
}

// Build reads the config and renders the stylesheet without writing it.
func Build(opts Options) (*GenerateResult, error) {
	l := logger(opts)

	// 1. Load config
	r := config.ReadConfig(opts.ConfigPath)
	cfg, ok := r.Value()
	if !ok {
		return nil, errors.Join(r.Error()...)
	}
	l.Debug("loaded config", "path", cfg.Path,
		"spacing", len(cfg.Spacing), "breakPoints", len(cfg.BreakPoints))

	// 2. Validate values, dropping what does not parse
	scale, droppedSpacing := generator.ValidateSpacing(cfg.Spacing)
	bps, droppedBreakpoints := generator.ValidateBreakpoints(cfg.BreakPoints)

	dropped := append(droppedSpacing, droppedBreakpoints...)
	for _, d := range droppedSpacing {
		l.Debug("dropped spacing entry", "key", d.Key, "value", d.Value, "err", d.Err)
	}
	for _, d := range droppedBreakpoints {
		l.Debug("dropped breakpoint entry", "key", d.Key, "value", d.Value, "err", d.Err)
	}

	// 3. Render
	css := generator.Generate(scale, bps)

	return &GenerateResult{
		ConfigPath:  cfg.Path,
		OutputPath:  ResolveOutput(opts.Output),
		CSS:         css,
		Spacing:     len(scale),
		BreakPoints: len(bps),
		Rules:       ruleCount(len(scale), len(bps)),
		Dropped:     dropped,
	}, nil
}

func ruleCount(spacing, breakpoints int) int {
	members := 0
	for _, f := range generator.Families {
		members += len(f.Members)
	}
	return members * spacing * breakpoints
}

func logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return log.New(io.Discard)
}

// Summary is a one-line description of a run for log output.
func (r *GenerateResult) Summary() string {
	return fmt.Sprintf("%s from %s and %s",
		plural(r.Rules, "rule"), plural(r.Spacing, "spacing step"), plural(r.BreakPoints, "breakpoint"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
