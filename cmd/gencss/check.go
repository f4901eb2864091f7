package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/yacobolo/gencss"
	"github.com/yacobolo/gencss/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the stylesheet matches the config",
	Long: `Regenerate the stylesheet in memory and compare it with the file on
disk. Exits 1 when rules are missing, changed or no longer generated.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "text", "Report format: text|json")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	format := getStringWithFallback("check.format", "text")
	if format != "text" && format != "json" {
		return errors.New("format invalid. Valid values: text, json")
	}

	result, err := gencss.Check(gencss.Options{
		ConfigPath: current.Config,
		Output:     current.Output,
		Logger:     logger,
	})
	if err != nil && !errors.Is(err, gencss.ErrDrift) {
		return err
	}

	r := report.Result{
		Path:     result.Path,
		Exists:   result.Exists,
		UpToDate: result.UpToDate,
		Changes:  result.Changes,
	}

	w := cmd.OutOrStdout()
	switch format {
	case "json":
		if jsonErr := report.WriteJSON(w, r); jsonErr != nil {
			return jsonErr
		}
	default:
		reporter := report.NewReporter(w, current.Color)
		if r.Exists {
			if !r.UpToDate && len(r.Changes) == 0 {
				reporter.PrintFormatting(r.Path)
			}
			reporter.PrintChanges(r.Path, r.Changes)
			if r.UpToDate || len(r.Changes) > 0 {
				reporter.PrintSummary(r.Path, r.Changes)
			}
		}
	}

	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	return nil
}
