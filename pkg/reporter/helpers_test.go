package reporter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/humorlint/pkg/lint"
	"github.com/yaklabco/humorlint/pkg/lint/rules"
	"github.com/yaklabco/humorlint/pkg/runner"
)

// sampleResult builds a run over three files: one with issues, one clean
// and one unreadable. Stats are filled the way the runner would.
func sampleResult(t *testing.T, workDir string) *runner.Result {
	t.Helper()

	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	pipeline := lint.NewPipeline(lint.NewEngine(registry))

	noisy, err := pipeline.ProcessContent(context.Background(), workDir+"/noisy.txt", []byte("hello\nno semicolon here\nbye\n"))
	require.NoError(t, err)
	clean, err := pipeline.ProcessContent(context.Background(), workDir+"/clean.txt", []byte("import this\nreturn that\n"))
	require.NoError(t, err)

	return &runner.Result{
		Files: []runner.FileOutcome{
			{Path: workDir + "/broken.txt", Error: errors.New("not valid UTF-8 text")},
			{Path: workDir + "/clean.txt", Result: clean},
			{Path: workDir + "/noisy.txt", Result: noisy},
		},
		Stats: runner.Stats{
			FilesDiscovered:       3,
			FilesProcessed:        2,
			FilesErrored:          1,
			FilesWithIssues:       1,
			DiagnosticsTotal:      3,
			DiagnosticsBySeverity: map[string]int{"error": 3},
			DiagnosticsByRule:     map[string]int{"HL002": 1, "HL003": 1, "HL004": 1},
		},
	}
}
