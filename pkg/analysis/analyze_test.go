package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/humorlint/pkg/config"
	"github.com/yaklabco/humorlint/pkg/lint"
	"github.com/yaklabco/humorlint/pkg/runner"
)

func outcome(path string, ruleIDs ...string) runner.FileOutcome {
	diags := make([]lint.Diagnostic, 0, len(ruleIDs))
	for _, id := range ruleIDs {
		diags = append(diags, lint.Diagnostic{RuleID: id, RuleName: "rule-" + id, Severity: config.SeverityError})
	}
	return runner.FileOutcome{
		Path:   path,
		Result: &lint.PipelineResult{Result: &lint.Result{Diagnostics: diags}, Path: path},
	}
}

func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			outcome("/work/a.txt", "HL002", "HL004", "HL004", "HL003"),
			outcome("/work/b.txt"),
			outcome("/work/posts/c.txt", "HL004"),
			{Path: "/work/broken.txt", Error: errors.New("not valid UTF-8 text")},
		},
	}
}

func TestAnalyze_NilResult(t *testing.T) {
	t.Parallel()

	report := Analyze(nil, DefaultOptions())

	require.NotNil(t, report)
	assert.False(t, report.Totals.HasIssues())
	assert.Empty(t, report.ByFile)
	assert.Empty(t, report.ByRule)
}

func TestAnalyze_Totals(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), DefaultOptions())

	assert.Equal(t, Totals{
		Files:           3,
		FilesWithIssues: 2,
		FilesErrored:    1,
		Issues:          5,
	}, report.Totals)
	assert.True(t, report.Totals.HasIssues())
}

func TestAnalyze_ByRuleCount(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), Options{SortBy: SortByCount, WorkingDir: "/work"})

	require.Len(t, report.ByRule, 3)
	assert.Equal(t, RuleAnalysis{
		RuleID:   "HL004",
		RuleName: "rule-HL004",
		Issues:   3,
		Files:    []string{"a.txt", "posts/c.txt"},
	}, report.ByRule[0])
	assert.Equal(t, "HL002", report.ByRule[1].RuleID)
	assert.Equal(t, "HL003", report.ByRule[2].RuleID)
}

func TestAnalyze_ByRuleOrder(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), Options{
		SortBy:    SortByOrder,
		RuleOrder: []string{"HL003", "HL002"},
	})

	ids := make([]string, 0, len(report.ByRule))
	for _, ra := range report.ByRule {
		ids = append(ids, ra.RuleID)
	}
	assert.Equal(t, []string{"HL003", "HL002", "HL004"}, ids)
}

func TestAnalyze_ByFile(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), Options{SortBy: SortByCount, WorkingDir: "/work"})

	assert.Equal(t, []FileAnalysis{
		{Path: "a.txt", Issues: 4, Rules: []string{"HL002", "HL003", "HL004"}},
		{Path: "posts/c.txt", Issues: 1, Rules: []string{"HL004"}},
	}, report.ByFile)

	alpha := Analyze(sampleResult(), Options{SortBy: SortByAlpha})
	require.Len(t, alpha.ByFile, 2)
	assert.Equal(t, "/work/a.txt", alpha.ByFile[0].Path)
}

func TestMakeRelativePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/work/a.txt", makeRelativePath("/work/a.txt", ""))
	assert.Equal(t, "posts/a.txt", makeRelativePath("/work/posts/a.txt", "/work"))
	assert.Equal(t, "/elsewhere/a.txt", makeRelativePath("/elsewhere/a.txt", "/work"))
}

func TestTop(t *testing.T) {
	t.Parallel()

	files := []FileAnalysis{{Path: "a"}, {Path: "b"}, {Path: "c"}}

	assert.Len(t, Top(files, 2), 2)
	assert.Len(t, Top(files, 5), 3)
	assert.Len(t, Top(files, -1), 3)
	assert.Empty(t, Top(files, 0))
}

func TestSortFieldIsValid(t *testing.T) {
	t.Parallel()

	for _, field := range []SortField{SortByCount, SortByAlpha, SortByOrder} {
		assert.True(t, field.IsValid(), field)
	}
	assert.False(t, SortField("severity").IsValid())
}
