package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/gencss"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the spacing stylesheet",
	Long: `Read gencss.config.json and write one padding and margin class per
spacing step, property and breakpoint.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Bool("stdout", false, "Print the stylesheet instead of writing it")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	opts := gencss.Options{
		ConfigPath: current.Config,
		Output:     current.Output,
		Logger:     logger,
	}

	if getBoolWithFallback("generate.stdout", false) {
		result, err := gencss.Build(opts)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), result.CSS)
		return err
	}

	result, err := gencss.Generate(opts)
	if err != nil {
		return err
	}

	if len(result.Dropped) > 0 {
		logger.Debug("skipped invalid entries", "count", len(result.Dropped))
	}
	logger.Info("generated "+result.OutputPath, "config", result.ConfigPath, "summary", result.Summary())

	return nil
}
