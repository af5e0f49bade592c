package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/humorlint/pkg/config"
)

// newProject creates a temp directory marked as a VCS root so upward search stops there.
func newProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func isolated(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolated(newProject(t)))
	require.NoError(t, err)
	require.NotNil(t, result.Config)

	assert.Equal(t, config.NewConfig(), result.Config)
	assert.Empty(t, result.LoadedFrom)
	assert.Empty(t, result.Warnings)
}

func TestLoad_ProjectYAML(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	path := filepath.Join(dir, ".humorlint.yml")
	writeFile(t, path, `
log_level: debug
extensions: [".txt"]
ignore: ["drafts/**"]
server:
  max_diagnostics: 25
`)

	result, err := Load(context.Background(), isolated(dir))
	require.NoError(t, err)

	cfg := result.Config
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{".txt"}, cfg.Extensions)
	assert.Equal(t, []string{"drafts/**"}, cfg.Ignore)
	assert.Equal(t, 25, cfg.Server.MaxDiagnostics)
	assert.Equal(t, config.FormatText, cfg.Format, "unset fields keep defaults")
	assert.Equal(t, []string{path}, result.LoadedFrom)
}

func TestLoad_ProjectTOML(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".humorlint.toml"), `
format = "json"
rule_format = "combined"
color = "never"

[server]
log_file = "/tmp/humorlint.log"
`)

	result, err := Load(context.Background(), isolated(dir))
	require.NoError(t, err)

	cfg := result.Config
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, config.RuleFormatCombined, cfg.RuleFormat)
	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.Equal(t, "/tmp/humorlint.log", cfg.Server.LogFile)
}

func TestLoad_ProjectConfigFoundFromSubdirectory(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".humorlint.yaml"), "jobs: 3\n")
	sub := filepath.Join(dir, "posts", "2024")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	result, err := Load(context.Background(), isolated(sub))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Config.Jobs)
}

func TestLoad_YAMLPreferredOverTOML(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".humorlint.yml"), "jobs: 1\n")
	writeFile(t, filepath.Join(dir, ".humorlint.toml"), "jobs = 2\n")

	result, err := Load(context.Background(), isolated(dir))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Config.Jobs)
}

func TestLoad_ExplicitOverridesProject(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".humorlint.yml"), "log_level: debug\njobs: 2\n")
	explicit := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, explicit, "log_level = \"error\"\n")

	opts := isolated(dir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "error", result.Config.LogLevel)
	assert.Equal(t, 2, result.Config.Jobs)
	assert.Len(t, result.LoadedFrom, 2)
	assert.Equal(t, explicit, result.Paths.Explicit)
}

func TestLoad_CLIOverridesEverything(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".humorlint.yml"), "format: json\n")

	opts := isolated(dir)
	opts.CLIConfig = &config.Config{Format: config.FormatText, Jobs: 8}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, config.FormatText, result.Config.Format)
	assert.Equal(t, 8, result.Config.Jobs)
}

func TestLoad_UnknownFieldsWarn(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".humorlint.yml"), "rules:\n  HL004: off\nserver:\n  port: 9\n")

	result, err := Load(context.Background(), isolated(dir))
	require.NoError(t, err)
	require.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], `"rules"`)
	assert.Contains(t, result.Warnings[1], `"server.port"`)
}

func TestLoad_UnknownTOMLFieldsWarn(t *testing.T) {
	t.Parallel()

	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".humorlint.toml"), "flavor = \"gfm\"\n")

	result, err := Load(context.Background(), isolated(dir))
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], `"flavor"`)
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"bad yaml", ".humorlint.yml", "log_level: [unclosed"},
		{"bad toml", ".humorlint.toml", "log_level = "},
		{"bad level", ".humorlint.yml", "log_level: loud\n"},
		{"bad format", ".humorlint.yml", "format: sarif\n"},
		{"negative max", ".humorlint.yml", "server:\n  max_diagnostics: -1\n"},
		{"bad glob", ".humorlint.yml", "ignore: [\"[abc\"]\n"},
		{"bad extension", ".humorlint.yml", "extensions: [\"txt\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := newProject(t)
			path := filepath.Join(dir, tt.file)
			writeFile(t, path, tt.content)

			_, err := Load(context.Background(), isolated(dir))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	opts := isolated(newProject(t))
	opts.ExplicitPath = filepath.Join(t.TempDir(), "missing.yml")

	_, err := Load(context.Background(), opts)
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Environment(t *testing.T) {
	dir := newProject(t)
	writeFile(t, filepath.Join(dir, ".humorlint.yml"), "log_level: debug\n")

	t.Setenv("HUMORLINT_LOG_LEVEL", "warn")
	t.Setenv("HUMORLINT_MAX_DIAGNOSTICS", "10")
	t.Setenv("HUMORLINT_IGNORE", "a/**, b/*.txt ,")

	opts := isolated(dir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "warn", result.Config.LogLevel)
	assert.Equal(t, 10, result.Config.Server.MaxDiagnostics)
	assert.Equal(t, []string{"a/**", "b/*.txt"}, result.Config.Ignore)
}

func TestLoad_EnvironmentInvalidInteger(t *testing.T) {
	t.Setenv("HUMORLINT_JOBS", "many")

	opts := isolated(newProject(t))
	opts.IgnoreEnv = false

	_, err := Load(context.Background(), opts)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_UserConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeFile(t, filepath.Join(xdg, "humorlint", "config.yaml"), "rule_format: id\n")

	opts := isolated(newProject(t))
	opts.IgnoreUserConfig = false

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, config.RuleFormatID, result.Config.RuleFormat)
	assert.Equal(t, filepath.Join(xdg, "humorlint"), UserConfigDir())
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range []string{".humorlint.yml", ".humorlint.toml"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteDefault(path))

			cfg, unknown, err := loadConfigFile(path)
			require.NoError(t, err)
			assert.Empty(t, unknown)
			assert.Equal(t, config.NewConfig(), cfg)
		})
	}
}
