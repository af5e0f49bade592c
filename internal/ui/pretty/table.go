package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/humorlint/pkg/config"
	"github.com/yaklabco/humorlint/pkg/lint"
	"github.com/yaklabco/humorlint/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // FILE, LOC, MESSAGE, RULE
	minFileWidth     = 20
	minLocWidth      = 7
	minMessageWidth  = 35
	minRuleWidth     = 8
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
	ellipsis         = "..."
)

// TableRow represents a single row in the diagnostic table.
type TableRow struct {
	File     string
	Location string
	Message  string
	Rule     string
	Severity config.Severity
}

// TableFormatter formats diagnostics as a styled table.
type TableFormatter struct {
	styles     *Styles
	termWidth  int
	ruleFormat config.RuleFormat
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int, ruleFormat config.RuleFormat) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:     styles,
		termWidth:  termWidth,
		ruleFormat: ruleFormat,
	}
}

type columnWidths struct {
	file    int
	loc     int
	message int
	rule    int
}

// FormatTable formats runner results as a styled table, one group per file.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	if result == nil {
		return ""
	}

	groups := t.collectRows(result)
	if len(groups) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(groups)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths) + "\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator) + "\n")

	for idx, group := range groups {
		if idx > 0 {
			builder.WriteString(t.formatSeparator(widths, lightSeparator) + "\n")
		}
		for _, row := range group {
			builder.WriteString(t.formatRow(row, widths) + "\n")
		}
	}

	builder.WriteString(t.formatSeparator(widths, heavySeparator) + "\n")

	return builder.String()
}

// DiagnosticToTableRow converts a lint diagnostic to a table row.
func (t *TableFormatter) DiagnosticToTableRow(path string, diag *lint.Diagnostic) TableRow {
	return TableRow{
		File:     path,
		Location: Position(diag),
		Message:  diag.Message,
		Rule:     config.FormatRuleID(t.ruleFormat, diag.RuleID, diag.RuleName),
		Severity: diag.Severity,
	}
}

// collectRows collects diagnostic rows grouped by file.
func (t *TableFormatter) collectRows(result *runner.Result) [][]TableRow {
	var groups [][]TableRow

	for _, file := range result.Files {
		if file.Result == nil || len(file.Result.Diagnostics) == 0 {
			continue
		}

		rows := make([]TableRow, 0, len(file.Result.Diagnostics))
		for idx := range file.Result.Diagnostics {
			rows = append(rows, t.DiagnosticToTableRow(file.Path, &file.Result.Diagnostics[idx]))
		}
		groups = append(groups, rows)
	}

	return groups
}

// calculateColumnWidths determines column widths from content, then shrinks
// the message column (and, if still needed, the file column) to fit the terminal.
func (t *TableFormatter) calculateColumnWidths(groups [][]TableRow) columnWidths {
	widths := columnWidths{
		file:    minFileWidth,
		loc:     minLocWidth,
		message: minMessageWidth,
		rule:    minRuleWidth,
	}

	for _, group := range groups {
		for _, row := range group {
			widths.file = max(widths.file, runewidth.StringWidth(row.File))
			widths.loc = max(widths.loc, runewidth.StringWidth(row.Location))
			widths.message = max(widths.message, runewidth.StringWidth(row.Message))
			widths.rule = max(widths.rule, runewidth.StringWidth(row.Rule))
		}
	}

	if total := totalWidth(widths); total > t.termWidth {
		widths.message = max(minMessageWidth, widths.message-(total-t.termWidth))

		if total = totalWidth(widths); total > t.termWidth {
			widths.file = max(minFileWidth, widths.file-(total-t.termWidth))
		}
	}

	return widths
}

func totalWidth(widths columnWidths) int {
	return widths.file + widths.loc + widths.message + widths.rule + tablePadding*tableColumnCount
}

func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := " " + strings.Join([]string{
		pad("FILE", widths.file),
		pad("LOC", widths.loc),
		pad("MESSAGE", widths.message),
		pad("RULE", widths.rule),
	}, "  ")
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, totalWidth(widths)))
}

func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	content := " " + strings.Join([]string{
		pad(truncateLeft(row.File, widths.file), widths.file),
		pad(row.Location, widths.loc),
		pad(truncateRight(row.Message, widths.message), widths.message),
		pad(truncateRight(row.Rule, widths.rule), widths.rule),
	}, "  ")

	return t.rowStyle(row.Severity).Render(content)
}

func (t *TableFormatter) rowStyle(severity config.Severity) lipgloss.Style {
	switch severity {
	case config.SeverityError:
		return t.styles.TableErrorRow
	case config.SeverityWarning:
		return t.styles.TableWarnRow
	case config.SeverityInfo:
		return t.styles.TableInfoRow
	default:
		return lipgloss.NewStyle()
	}
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(stats runner.Stats) string {
	parts := []string{fmt.Sprintf("%d %s checked", stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles))}

	if n := stats.DiagnosticsTotal; n > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d %s", n, plural(n, "issue", "issues"))))
	}
	if n := stats.FilesErrored; n > 0 {
		parts = append(parts, t.styles.Failure.Render(fmt.Sprintf("%d unreadable", n)))
	}

	return " " + strings.Join(parts, " | ")
}

// pad right-pads str with spaces to the given display width.
func pad(str string, width int) string {
	return runewidth.FillRight(str, width)
}

// truncateRight shortens str to width display cells, ending in "...".
func truncateRight(str string, width int) string {
	return runewidth.Truncate(str, width, ellipsis)
}

// truncateLeft shortens str to width display cells, keeping the end (the file name).
func truncateLeft(str string, width int) string {
	if runewidth.StringWidth(str) <= width {
		return str
	}
	if width <= len(ellipsis) {
		return runewidth.TruncateLeft(str, runewidth.StringWidth(str)-width, "")
	}
	return runewidth.TruncateLeft(str, runewidth.StringWidth(str)-width+len(ellipsis), ellipsis)
}
