package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/humorlint/internal/cli"
)

const (
	cleanPost = "import this\nreturn that\n"
	noisyPost = "hello world\n"
)

type execResult struct {
	stdout string
	stderr string
	err    error
}

// execute runs the root command with args and stdin, ignoring every config
// file so results do not depend on the machine running the tests.
func execute(t *testing.T, stdin string, args ...string) execResult {
	t.Helper()

	cmd := cli.NewRootCommand(cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2026-10-19",
	})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--no-config"))

	err := cmd.ExecuteContext(context.Background())

	return execResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
