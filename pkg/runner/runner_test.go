package runner_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/humorlint/pkg/config"
	"github.com/yaklabco/humorlint/pkg/lint"
	"github.com/yaklabco/humorlint/pkg/runner"
)

func TestRunner_NoFiles(t *testing.T) {
	t.Parallel()

	result, err := newRunner().Run(context.Background(), runner.Options{WorkingDir: t.TempDir()})
	require.NoError(t, err)

	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasIssues())
	assert.Empty(t, result.Diagnostics())
}

func TestRunner_Stats(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"clean.txt": cleanPost,
		"noisy.txt": noisyPost,
		"rick.md":   "import x\n[song](https://example.com)\nreturn y\n",
	})

	result, err := newRunner().Run(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	stats := result.Stats
	assert.Equal(t, 3, stats.FilesDiscovered)
	assert.Equal(t, 3, stats.FilesProcessed)
	assert.Equal(t, 2, stats.FilesWithIssues)
	assert.Zero(t, stats.FilesErrored)
	assert.Zero(t, stats.RuleErrors)

	// noisy.txt: missing import and single-line return.
	// rick.md: one non-canonical link; its middle line ends without a
	// semicolon.
	assert.Equal(t, map[string]int{"HL002": 1, "HL003": 1, "HL004": 1, "HL005": 1}, stats.DiagnosticsByRule)
	assert.Equal(t, 4, stats.DiagnosticsTotal)
	assert.Equal(t, map[string]int{"error": 4}, stats.DiagnosticsBySeverity)
	assert.True(t, result.HasIssues())
	assert.Len(t, result.Diagnostics(), 4)
}

func TestRunner_DeterministicOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := make(map[string]string)
	var want []string
	for i := range 40 {
		name := fmt.Sprintf("post-%02d.txt", i)
		files[name] = noisyPost
		want = append(want, name)
	}
	writeTree(t, dir, files)

	result, err := newRunner().Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 8})
	require.NoError(t, err)

	got := make([]string, 0, len(result.Files))
	for _, outcome := range result.Files {
		got = append(got, outcome.Path)
	}
	assert.Equal(t, want, relPaths(t, dir, got))

	for _, outcome := range result.Files {
		require.NotNil(t, outcome.Result)
		assert.Equal(t, outcome.Path, outcome.Result.Path)
		assert.Len(t, outcome.Result.Diagnostics, 2)
	}
}

func TestRunner_FileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"good.txt": cleanPost})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "binary.txt"), []byte{0xff, 0xfe}, 0o644))

	result, err := newRunner().Run(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	assert.True(t, result.HasErrors())

	require.Len(t, result.Files, 2)
	assert.ErrorIs(t, result.Files[0].Error, lint.ErrNotText)
	assert.Nil(t, result.Files[0].Result)
}

func TestRunner_Cancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.txt": cleanPost})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner().Run(ctx, runner.Options{Paths: []string{"a.txt"}, WorkingDir: dir})
	require.ErrorIs(t, err, context.Canceled)
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Ignore = []string{"drafts/**"}
	cfg.Jobs = 3

	opts := runner.OptionsFromConfig(cfg, []string{"posts"})
	assert.Equal(t, []string{"posts"}, opts.Paths)
	assert.Equal(t, cfg.Extensions, opts.Extensions)
	assert.Equal(t, []string{"drafts/**"}, opts.ExcludeGlobs)
	assert.Equal(t, 3, opts.Jobs)

	assert.Equal(t, runner.Options{Paths: []string{"."}}, runner.OptionsFromConfig(nil, []string{"."}))
}

func TestCollect(t *testing.T) {
	t.Parallel()

	pipeline := lint.NewPipeline(lint.NewEngine(lint.DefaultRegistry))
	pr, err := pipeline.ProcessContent(context.Background(), "<stdin>", []byte(noisyPost))
	require.NoError(t, err)

	result := runner.Collect(
		runner.FileOutcome{Path: "<stdin>", Result: pr},
		runner.FileOutcome{Path: "gone.txt", Error: lint.ErrFileNotFound},
	)

	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.Equal(t, 2, result.Stats.DiagnosticsTotal)
	assert.Equal(t, "<stdin>", result.Files[0].Path)

	empty := runner.Collect()
	assert.NotNil(t, empty.Files)
	assert.NotNil(t, empty.Stats.DiagnosticsByRule)
}
