package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yacobolo/gencss/internal/config"
	"github.com/yacobolo/gencss/internal/logging"
)

// logger is replaced once settings are loaded.
var logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})

// current holds the settings of the running command.
var current settings

var rootCmd = &cobra.Command{
	Use:   "gencss",
	Short: "Padding and margin utility class generator",
	Long: `Generate padding and margin utility classes from a spacing scale
and a set of responsive breakpoints described in gencss.config.json.`,
	PersistentPreRunE: setup,
	// Default behavior: run generate when no subcommand is given.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	logger.SetStyles(logging.Styles())

	// Global persistent flags (inherited by all subcommands)
	f := rootCmd.PersistentFlags()
	f.Bool("color", true, "Colored output")
	f.String("config", "./"+config.FileName, "Path or glob of the config file")
	f.String("output", "./", "Output file, or directory to write gencss.css into")
	f.String("logLevel", "info", "Log level: debug|info|warn|error")
	f.String("settings", DefaultSettingsFile, "Settings file with CLI defaults")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads settings and builds the logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}

	s, err := loadSettings()
	if err != nil {
		return err
	}
	current = s

	l, err := logging.New(cmd.ErrOrStderr(), logging.Options{Level: s.LogLevel, Color: s.Color})
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// Execute runs the root command and exits with the mapped status code.
func Execute() {
	err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(logErrors),
	)
	os.Exit(exitCode(err))
}

// exitCode maps a command error to the process status.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// logErrors reports each joined error on its own log line.
func logErrors(_ io.Writer, _ fang.Styles, err error) {
	for _, e := range splitErrors(err) {
		logger.Error(e.Error())
	}
}

// splitErrors unwraps ExitError and errors.Join results.
func splitErrors(err error) []error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err == nil {
			return nil
		}
		err = exitErr.Err
	}

	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}
	return []error{err}
}
