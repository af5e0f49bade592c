package pretty

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/humorlint/pkg/config"
	"github.com/yaklabco/humorlint/pkg/lint"
)

// Position renders a diagnostic position as "line:col" with 1-based numbers,
// the form terminals and editors recognize as a jump target.
func Position(diag *lint.Diagnostic) string {
	return fmt.Sprintf("%d:%d", diag.Line()+1, diag.Column()+1)
}

// FormatDiagnostic formats a diagnostic with configurable rule identifier format.
// sourceLine, when non-empty, is printed beneath with a caret under the column.
func (s *Styles) FormatDiagnostic(diag *lint.Diagnostic, sourceLine string, ruleFormat config.RuleFormat) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%s",
		s.FilePath.Render(diag.FilePath),
		s.Location.Render(Position(diag)),
	)

	ruleIdentifier := config.FormatRuleID(ruleFormat, diag.RuleID, diag.RuleName)
	if ruleIdentifier == "" {
		ruleIdentifier = fmt.Sprintf("code %d", diag.Code)
	}

	fmt.Fprintf(&builder, "  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(diag.Severity),
		s.Message.Render(diag.Message),
		s.RuleID.Render("("+ruleIdentifier+")"),
	)

	if sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, diag.Column()))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a caret marker.
// column is a 0-based byte offset; the caret is aligned by display width
// so wide runes and combining marks do not shift it.
func (s *Styles) FormatSourceContext(line string, column int) string {
	const indent = "        "

	var builder strings.Builder

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	column = max(0, min(column, len(line)))
	padding := runewidth.StringWidth(line[:column])
	builder.WriteString(indent + strings.Repeat(" ", padding) + s.Caret.Render("^") + "\n")

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	switch {
	case issueCount == 1:
		header += s.Dim.Render(" (1 issue)")
	case issueCount > 1:
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
