package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/humorlint/pkg/analysis"
	"github.com/yaklabco/humorlint/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "7 issues (7 errors) in 2 files, 1 unreadable".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.DiagnosticsTotal == 0 {
		msg := s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles)))
		if stats.FilesErrored > 0 {
			msg += ", " + s.Failure.Render(fmt.Sprintf("%d unreadable", stats.FilesErrored))
		}
		return msg + "\n"
	}

	var severityParts []string
	if errors := stats.DiagnosticsBySeverity["error"]; errors > 0 {
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d %s", errors, plural(errors, "error", "errors"))))
	}
	if warnings := stats.DiagnosticsBySeverity["warning"]; warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d %s", warnings, plural(warnings, "warning", "warnings"))))
	}
	if infos := stats.DiagnosticsBySeverity["info"]; infos > 0 {
		severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", infos)))
	}

	issues := fmt.Sprintf("%d %s", stats.DiagnosticsTotal, plural(stats.DiagnosticsTotal, "issue", "issues"))
	if len(severityParts) > 0 {
		issues += " (" + strings.Join(severityParts, ", ") + ")"
	}

	parts := []string{
		issues,
		fmt.Sprintf("in %d %s", stats.FilesWithIssues, plural(stats.FilesWithIssues, wordFile, wordFiles)),
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d unreadable", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats, ruleOrder []string) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files unreadable:  " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Total issues:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.DiagnosticsTotal)) + "\n")

	for _, id := range ruleOrder {
		count := stats.DiagnosticsByRule[id]
		if count == 0 {
			continue
		}
		builder.WriteString(fmt.Sprintf("    %-16s %s\n", id+":", s.Error.Render(strconv.Itoa(count))))
	}

	builder.WriteString("\n")

	switch {
	case stats.DiagnosticsTotal > 0:
		builder.WriteString(s.Failure.Render("Not funny enough"))
	case stats.FilesErrored > 0:
		builder.WriteString(s.Warning.Render("Some files could not be read"))
	default:
		builder.WriteString(s.Success.Render("Lint passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// FormatTopFiles lists files with their issue count and the rules they broke.
// It returns an empty string when files is empty.
func (s *Styles) FormatTopFiles(files []analysis.FileAnalysis) string {
	if len(files) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Least funny files"))
	builder.WriteString("\n")

	for _, file := range files {
		builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			s.FilePath.Render(file.Path),
			s.Error.Render(fmt.Sprintf("%d %s", file.Issues, plural(file.Issues, "issue", "issues"))),
			s.Dim.Render(strings.Join(file.Rules, ", ")),
		))
	}

	return builder.String()
}
