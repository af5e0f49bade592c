package runner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/humorlint/pkg/lint"
	"github.com/yaklabco/humorlint/pkg/lint/rules"
	"github.com/yaklabco/humorlint/pkg/runner"
)

const (
	cleanPost = "import this\nreturn that\n"
	noisyPost = "hello world\n"
)

func newRunner() *runner.Runner {
	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	return runner.New(lint.NewPipeline(lint.NewEngine(registry)))
}

// writeTree creates files (relative path -> content) under dir.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func relPaths(t *testing.T, dir string, paths []string) []string {
	t.Helper()

	rel := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(dir, p)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	return rel
}
