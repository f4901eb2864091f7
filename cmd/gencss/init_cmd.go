package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/gencss/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter gencss.config.json",
	Long: `Create a gencss.config.json in the current directory with a small
spacing scale and common breakpoints. With --settings-file, also create a
.gencss.yaml holding the CLI defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		withSettings, _ := cmd.Flags().GetBool("settings-file")

		if err := writeStarter(config.FileName, defaultConfig, force); err != nil {
			return err
		}
		logger.Info("created " + config.FileName)

		if withSettings {
			if err := writeStarter(DefaultSettingsFile, defaultSettings, force); err != nil {
				return err
			}
			logger.Info("created " + DefaultSettingsFile)
		}
		return nil
	},
}

func writeStarter(path, content string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	// #nosec G306 - config files are meant to be world-readable
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

const defaultConfig = `{
  "spacing": {
    "0": "0",
    "xs": "0.25rem",
    "sm": "0.5rem",
    "md": "1rem",
    "lg": "2rem",
    "xl": "4rem",
    "auto": "auto"
  },
  "breakPoints": {
    "base": "0",
    "sm": "640px",
    "md": "768px",
    "lg": "1024px"
  }
}
`

const defaultSettings = `# gencss CLI defaults
# Flags and GENCSS_* environment variables override these values.

color: true
config: ./gencss.config.json
output: ./
logLevel: info # debug | info | warn | error

generate:
  stdout: false

check:
  format: text # text | json
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing files")
	initCmd.Flags().Bool("settings-file", false, "Also create "+DefaultSettingsFile)
}
