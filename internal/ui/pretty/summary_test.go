package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/humorlint/internal/ui/pretty"
	"github.com/yaklabco/humorlint/pkg/analysis"
	"github.com/yaklabco/humorlint/pkg/runner"
)

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{
			name:  "clean",
			stats: runner.Stats{FilesProcessed: 4},
			want:  "No issues found (4 files checked)\n",
		},
		{
			name:  "clean single file with unreadable",
			stats: runner.Stats{FilesProcessed: 1, FilesErrored: 2},
			want:  "No issues found (1 file checked), 2 unreadable\n",
		},
		{
			name: "issues",
			stats: runner.Stats{
				FilesProcessed:        3,
				FilesWithIssues:       2,
				DiagnosticsTotal:      7,
				DiagnosticsBySeverity: map[string]int{"error": 7},
			},
			want: "7 issues (7 errors), in 2 files\n",
		},
		{
			name: "one issue",
			stats: runner.Stats{
				FilesProcessed:        1,
				FilesWithIssues:       1,
				DiagnosticsTotal:      1,
				DiagnosticsBySeverity: map[string]int{"error": 1},
				FilesErrored:          1,
			},
			want: "1 issue (1 error), in 1 file, 1 unreadable\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:        10,
		FilesWithIssues:       3,
		DiagnosticsTotal:      5,
		DiagnosticsBySeverity: map[string]int{"error": 5},
		DiagnosticsByRule:     map[string]int{"HL005": 1, "HL002": 4},
	}

	result := styles.FormatSummary(stats, []string{"HL002", "HL003", "HL004", "HL005"})

	assert.Contains(t, result, "Files checked:     10")
	assert.Contains(t, result, "Files with issues: 3")
	assert.Contains(t, result, "Total issues:      5")
	assert.Contains(t, result, "    HL002:           4\n")
	assert.Contains(t, result, "    HL005:           1\n")
	assert.NotContains(t, result, "HL003")
	assert.Contains(t, result, "Not funny enough")
	assert.Less(t, indexOf(result, "HL002"), indexOf(result, "HL005"))
}

func TestFormatSummary_Passed(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(runner.Stats{FilesProcessed: 5}, nil)
	assert.Contains(t, result, "Lint passed")
	assert.NotContains(t, result, "Files with issues:")

	result = styles.FormatSummary(runner.Stats{FilesProcessed: 5, FilesErrored: 1}, nil)
	assert.Contains(t, result, "Files unreadable:  1")
	assert.Contains(t, result, "Some files could not be read")
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}

func TestFormatTopFiles(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Empty(t, styles.FormatTopFiles(nil))

	got := styles.FormatTopFiles([]analysis.FileAnalysis{
		{Path: "posts/a.txt", Issues: 3, Rules: []string{"HL002", "HL004"}},
		{Path: "b.txt", Issues: 1, Rules: []string{"HL003"}},
	})
	assert.Equal(t, "\nLeast funny files\n  posts/a.txt  3 issues  HL002, HL004\n  b.txt  1 issue  HL003\n", got)
}
