package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/humorlint/pkg/source"
)

func TestPoint(t *testing.T) {
	t.Parallel()

	r := source.Point(3, 7)

	assert.Equal(t, source.Position{Line: 3, Column: 7}, r.Start)
	assert.Equal(t, r.Start, r.End)
	assert.True(t, r.IsPoint())
	assert.True(t, r.IsSingleLine())

	span := source.Range{Start: source.Position{Line: 1}, End: source.Position{Line: 2, Column: 1}}
	assert.False(t, span.IsPoint())
	assert.False(t, span.IsSingleLine())
}

func TestSnapshotContains(t *testing.T) {
	t.Parallel()

	snap := source.NewSnapshot("", "abc\nde")

	assert.True(t, snap.Contains(source.Position{Line: 0, Column: 0}))
	assert.True(t, snap.Contains(source.Position{Line: 0, Column: 3}))
	assert.False(t, snap.Contains(source.Position{Line: 0, Column: 4}))
	assert.True(t, snap.Contains(source.Position{Line: 1, Column: 2}))
	assert.False(t, snap.Contains(source.Position{Line: 2, Column: 0}))
	assert.False(t, snap.Contains(source.Position{Line: 0, Column: -1}))
}
