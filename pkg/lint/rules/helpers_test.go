package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/humorlint/pkg/lint"
	"github.com/yaklabco/humorlint/pkg/source"
)

// point is a compact (line, column) expectation.
type point struct {
	line int
	col  int
}

// applyRule runs a single rule against text.
func applyRule(t *testing.T, rule lint.Rule, text string) []lint.Diagnostic {
	t.Helper()

	snap := source.NewSnapshot("post.txt", text)
	diags, err := rule.Apply(lint.NewRuleContext(context.Background(), snap))
	require.NoError(t, err)
	return diags
}

// pointsOf extracts start positions, asserting every diagnostic is a point.
func pointsOf(t *testing.T, diags []lint.Diagnostic) []point {
	t.Helper()

	var out []point
	for _, d := range diags {
		require.True(t, d.Range.IsPoint(), "diagnostic %+v is not a point", d)
		out = append(out, point{line: d.Line(), col: d.Column()})
	}
	return out
}
