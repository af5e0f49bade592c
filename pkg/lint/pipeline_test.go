package lint_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/humorlint/pkg/lint"
)

func newTestPipeline() *lint.Pipeline {
	return lint.NewPipeline(lint.NewEngine(lint.NewRegistry()))
}

func TestPipeline_ProcessFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "post.txt")
	require.NoError(t, os.WriteFile(path, []byte("import x\nreturn y\n"), 0o600))

	result, err := newTestPipeline().ProcessFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, result.Path)
	require.NotNil(t, result.Info)
	assert.Equal(t, int64(18), result.Info.Size)
	assert.Equal(t, 2, result.Snapshot.LineCount())
	assert.Equal(t, "ok", result.Summary())
}

func TestPipeline_ProcessFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := newTestPipeline().ProcessFile(context.Background(), filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, lint.ErrFileNotFound)
	assert.True(t, lint.IsPipelineError(err))

	binary := filepath.Join(dir, "blob.txt")
	require.NoError(t, os.WriteFile(binary, []byte{0xff, 0xfe, 0x00}, 0o600))

	_, err = newTestPipeline().ProcessFile(context.Background(), binary)
	require.ErrorIs(t, err, lint.ErrNotText)
}

func TestPipeline_ProcessContent(t *testing.T) {
	t.Parallel()

	result, err := newTestPipeline().ProcessContent(context.Background(), "stdin", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "stdin", result.Path)
	assert.Nil(t, result.Info)
}
