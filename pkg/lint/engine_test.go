package lint

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/humorlint/pkg/source"
)

func point(ruleID string, line, col int) Diagnostic {
	return NewPointDiagnostic(ruleID, "", line, col, "mock").Build()
}

func TestEngine_ConcatenatesInRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockRule{id: "B", name: "b", code: 2, diags: []Diagnostic{point("B", 3, 0)}})
	reg.Register(&mockRule{id: "A", name: "a", code: 1, diags: []Diagnostic{point("A", 0, 0), point("A", 1, 0)}})

	result := NewEngine(reg).Evaluate(context.Background(), "doc.txt", "one\ntwo")

	require.Len(t, result.Diagnostics, 3)
	assert.Equal(t, "B", result.Diagnostics[0].RuleID)
	assert.Equal(t, "A", result.Diagnostics[1].RuleID)
	assert.Equal(t, "A", result.Diagnostics[2].RuleID)
	assert.Equal(t, 1, result.Diagnostics[2].Line())

	for _, d := range result.Diagnostics {
		assert.Equal(t, "doc.txt", d.FilePath)
		assert.NotEmpty(t, d.RuleName)
	}
}

func TestEngine_EmptyDocumentShortCircuits(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&mockRule{id: "A", name: "a", code: 1, diags: []Diagnostic{point("A", 0, 0)}})

	result := NewEngine(reg).Evaluate(context.Background(), "doc.txt", "")

	require.NotNil(t, result.Diagnostics)
	assert.Empty(t, result.Diagnostics)
	assert.False(t, result.HasIssues())
}

func TestEngine_RuleErrorsAreCollected(t *testing.T) {
	boom := errors.New("boom")

	reg := NewRegistry()
	reg.Register(&mockRule{id: "A", name: "a", code: 1, err: boom})
	reg.Register(&mockRule{id: "B", name: "b", code: 2, diags: []Diagnostic{point("B", 0, 0)}})

	result := NewEngine(reg).Evaluate(context.Background(), "doc.txt", "text")

	require.Len(t, result.RuleErrors, 1)
	require.ErrorIs(t, result.RuleErrors["A"], boom)
	assert.Equal(t, 1, result.IssueCount())
}

func TestResult_CountByCode(t *testing.T) {
	result := &Result{Diagnostics: []Diagnostic{
		{Code: 4}, {Code: 4}, {Code: 2},
	}}

	assert.Equal(t, 2, result.CountByCode(4))
	assert.Equal(t, 1, result.CountByCode(2))
	assert.Equal(t, 0, result.CountByCode(5))
	assert.True(t, result.HasIssues())
	assert.Equal(t, 3, result.IssueCount())
}

func TestEngine_EvaluateSnapshotKeepsSnapshot(t *testing.T) {
	snap := source.NewSnapshot("doc.txt", "hello")
	result := NewEngine(NewRegistry()).EvaluateSnapshot(context.Background(), snap)

	assert.Same(t, snap, result.Snapshot)
	assert.Empty(t, result.Diagnostics)
}
