package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/gencss/internal/config"
	"github.com/yacobolo/gencss/internal/logging"
)

// DefaultSettingsFile holds optional CLI defaults.
const DefaultSettingsFile = ".gencss.yaml"

var k = koanf.New(".")

// flagKeys places command-specific flags under their settings section.
var flagKeys = map[string]string{
	"stdout": "generate.stdout",
	"format": "check.format",
}

// envKeys restores the casing of flat keys that env vars cannot carry.
var envKeys = map[string]string{
	"loglevel": "logLevel",
}

// settings are the resolved global options.
type settings struct {
	Color    bool
	Config   string
	Output   string
	LogLevel string
}

// loadConfig loads settings with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	settingsPath, _ := cmd.Flags().GetString("settings")
	if settingsPath == "" {
		settingsPath = DefaultSettingsFile
	}

	if err := loadConfigFromPath(settingsPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence; unchanged flags only fill gaps)
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
		key := f.Name
		if mapped, ok := flagKeys[key]; ok {
			key = mapped
		}
		return key, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads the settings file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(settingsPath string) error {
	// 1. Settings file (lowest precedence among providers)
	if _, err := os.Stat(settingsPath); err == nil {
		if err := k.Load(file.Provider(settingsPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading settings file %s: %w", settingsPath, err)
		}
	}

	// 2. Environment variables (GENCSS_* prefix)
	if err := k.Load(env.Provider("GENCSS_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable name to a settings key.
// GENCSS_LOGLEVEL -> logLevel, GENCSS_CHECK_FORMAT -> check.format
func envKey(s string) string {
	key := strings.ReplaceAll(
		strings.ToLower(strings.TrimPrefix(s, "GENCSS_")),
		"_", ".",
	)
	if mapped, ok := envKeys[key]; ok {
		return mapped
	}
	return key
}

// loadSettings reads the global options from koanf state and validates
// them.
func loadSettings() (settings, error) {
	s := settings{
		Color:    getBoolWithFallback("color", true),
		Config:   getStringWithFallback("config", "./"+config.FileName),
		Output:   getStringWithFallback("output", "./"),
		LogLevel: getStringWithFallback("logLevel", "info"),
	}

	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return s, err
	}
	if !strings.Contains(s.Config, config.FileName) {
		return s, fmt.Errorf("config invalid. Should be %s but got: %s", config.FileName, s.Config)
	}

	return s, nil
}

// getStringWithFallback returns the value at key, or defaultVal when unset
// or empty.
func getStringWithFallback(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback returns the value at key, or defaultVal when unset.
func getBoolWithFallback(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}
