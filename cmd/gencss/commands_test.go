package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/gencss"
	"github.com/yacobolo/gencss/internal/config"
)

const projectConfig = `{
	"spacing": { "sm": "4px", "md": "1rem", "huge": "10vw" },
	"breakPoints": { "base": "0", "md": "768px" }
}`

// writeProject writes gencss.config.json into dir.
func writeProject(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(projectConfig), 0644))
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeProject(t, dir)

	_, stderr, err := execute(t, "generate", "--color=false")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, gencss.OutputFileName))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), ".p-sm {\n\tpadding: 4px;\n}\n"))
	assert.Contains(t, string(data), "@media screen and (min-width: 768px) {\n\t.p-md-sm {")
	assert.NotContains(t, string(data), "huge")

	assert.Contains(t, stderr, "INFO generated")
	// Dropped entries stay quiet at the default level
	assert.NotContains(t, stderr, "huge")
}

func TestGenerateCommand_DebugShowsDroppedEntries(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeProject(t, dir)

	_, stderr, err := execute(t, "gen", "--logLevel", "debug", "--color=false")
	require.NoError(t, err)
	assert.Contains(t, stderr, "DEBG dropped spacing entry key=huge")
}

func TestRootCommand_DefaultsToGenerate(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeProject(t, dir)

	_, _, err := execute(t)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, gencss.OutputFileName))
}

func TestGenerateCommand_Stdout(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeProject(t, dir)

	stdout, _, err := execute(t, "generate", "--stdout")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, ".p-sm {"))
	assert.True(t, strings.HasSuffix(stdout, "}\n"))
	assert.NoFileExists(t, filepath.Join(dir, gencss.OutputFileName))
}

func TestGenerateCommand_OutputDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeProject(t, dir)
	require.NoError(t, os.Mkdir("dist", 0755))

	_, _, err := execute(t, "generate", "--output", "dist")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "dist", gencss.OutputFileName))
}

func TestGenerateCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		config  string // empty means no config file
		args    []string
		wantErr error
		want    []string
	}{
		{
			name:    "missing config file",
			args:    []string{"generate"},
			wantErr: config.ErrNotFound,
		},
		{
			name:    "missing required keys",
			config:  `{}`,
			args:    []string{"generate"},
			wantErr: config.ErrMissingOption,
			want:    []string{"spacing", "breakPoints"},
		},
		{
			name:    "invalid JSON",
			config:  `{"spacing": `,
			args:    []string{"generate"},
			wantErr: config.ErrInvalidJSON,
		},
		{
			name:   "invalid log level",
			config: projectConfig,
			args:   []string{"generate", "--logLevel", "trace"},
			want:   []string{"logLevel invalid"},
		},
		{
			name:   "config path with another name",
			config: projectConfig,
			args:   []string{"generate", "--config", "./other.json"},
			want:   []string{"config invalid. Should be gencss.config.json but got: ./other.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			if tt.config != "" {
				require.NoError(t, os.WriteFile(config.FileName, []byte(tt.config), 0644))
			}

			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			for _, s := range tt.want {
				assert.Contains(t, err.Error(), s)
			}
			assert.NoFileExists(t, filepath.Join(dir, gencss.OutputFileName))
		})
	}
}

func TestGenerateCommand_ConfigGlob(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll(filepath.Join("site", "styles"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join("site", "styles", config.FileName), []byte(projectConfig), 0644))

	_, _, err := execute(t, "generate", "--config", "**/"+config.FileName)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, gencss.OutputFileName))
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeProject(t, dir)

	_, _, err := execute(t, "generate")
	require.NoError(t, err)

	stdout, _, err := execute(t, "check", "--color=false")
	require.NoError(t, err)
	assert.Contains(t, stdout, "is up to date")

	// Remove one rule by hand
	path := filepath.Join(dir, gencss.OutputFileName)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	edited := strings.Replace(string(data), ".p-sm {\n\tpadding: 4px;\n}\n", "", 1)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0644))

	stdout, _, err = execute(t, "check", "--color=false")
	require.Error(t, err)
	assert.ErrorIs(t, err, gencss.ErrDrift)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitFailure, exitErr.Code)

	assert.Contains(t, stdout, "gencss.css: missing .p-sm")
	assert.Contains(t, stdout, "1 change:")
}

func TestCheckCommand_MissingStylesheet(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeProject(t, dir)

	_, _, err := execute(t, "check")
	require.ErrorIs(t, err, gencss.ErrDrift)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestCheckCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeProject(t, dir)

	_, _, err := execute(t, "generate")
	require.NoError(t, err)

	// A breakpoint renamed in the config
	updated := strings.Replace(projectConfig, `"md": "768px"`, `"tablet": "768px"`, 1)
	require.NoError(t, os.WriteFile(config.FileName, []byte(updated), 0644))

	stdout, _, err := execute(t, "check", "--format", "json")
	require.ErrorIs(t, err, gencss.ErrDrift)

	var out struct {
		UpToDate bool `json:"up_to_date"`
		Summary  struct {
			Missing    int `json:"missing"`
			Unexpected int `json:"unexpected"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.False(t, out.UpToDate)
	assert.Equal(t, 2*18, out.Summary.Missing)
	assert.Equal(t, 2*18, out.Summary.Unexpected)
}

func TestCheckCommand_InvalidFormat(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeProject(t, dir)

	_, _, err := execute(t, "check", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format invalid")
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, _, err := execute(t, "init")
	require.NoError(t, err)

	// The starter config must itself be valid
	r := config.ReadConfig(filepath.Join(dir, config.FileName))
	require.True(t, r.IsOk(), "starter config invalid: %v", r.Error())
	assert.Equal(t, []string{"base", "sm", "md", "lg"}, r.Unwrap().BreakPoints.Keys())
	assert.NoFileExists(t, filepath.Join(dir, DefaultSettingsFile))

	// And generate from it
	_, _, err = execute(t, "generate")
	require.NoError(t, err)
}

func TestInitCommand_SettingsFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, _, err := execute(t, "init", "--settings-file")
	require.NoError(t, err)

	resetKoanf()
	require.NoError(t, loadConfigFromPath(filepath.Join(dir, DefaultSettingsFile)))
	assert.Equal(t, "info", k.String("logLevel"))
	assert.Equal(t, "text", k.String("check.format"))
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	// Create existing file
	require.NoError(t, os.WriteFile(config.FileName, []byte("existing"), 0644))

	_, _, err := execute(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(config.FileName)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(data))
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	// Create existing file
	require.NoError(t, os.WriteFile(config.FileName, []byte("existing"), 0644))

	_, _, err := execute(t, "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(config.FileName)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"breakPoints"`)
}

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gencss dev\n", stdout)
}

func TestCompletionCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	stdout, _, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "gencss")

	_, _, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: ExitOK},
		{name: "plain error", err: errors.New("boom"), want: ExitFailure},
		{name: "drift", err: &ExitError{Code: ExitFailure, Err: gencss.ErrDrift}, want: ExitFailure},
		{name: "wrapped custom code", err: fmt.Errorf("run: %w", &ExitError{Code: 3}), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestExitCode_CheckCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeProject(t, dir)

	_, _, err := execute(t, "check")
	assert.Equal(t, ExitFailure, exitCode(err))

	_, _, err = execute(t, "generate")
	require.NoError(t, err)

	_, _, err = execute(t, "check")
	assert.Equal(t, ExitOK, exitCode(err))
}

func TestSplitErrors(t *testing.T) {
	a := errors.New("missing option in config: spacing")
	b := errors.New("missing option in config: breakPoints")

	assert.Equal(t, []error{a, b}, splitErrors(errors.Join(a, b)))
	assert.Equal(t, []error{a, b}, splitErrors(&ExitError{Code: ExitFailure, Err: errors.Join(a, b)}))
	assert.Equal(t, []error{a}, splitErrors(a))
	assert.Nil(t, splitErrors(&ExitError{Code: ExitFailure}))

	wrapped := fmt.Errorf("check: %w", a)
	assert.Equal(t, []error{wrapped}, splitErrors(wrapped))
}
