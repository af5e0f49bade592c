package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/yaklabco/humorlint/internal/ui/pretty"
	"github.com/yaklabco/humorlint/pkg/runner"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// TableReporter formats results as a styled table with color-coded rows.
type TableReporter struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
	bw        *bufio.Writer
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)

	return &TableReporter{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, getTerminalWidth(opts.Writer), opts.RuleFormat),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	display := r.relativize(result)

	for _, file := range display.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
		}
	}

	total := result.Stats.DiagnosticsTotal
	if total == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("All files passed!"))
			fmt.Fprintln(r.bw, r.styles.Dim.Render(r.formatter.FormatTableSummary(result.Stats)))
		}
		return 0, nil
	}

	fmt.Fprint(r.bw, r.formatter.FormatTable(display))

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw, r.formatter.FormatTableSummary(result.Stats))
	}

	return total, nil
}

// relativize returns a shallow copy of result with display paths.
func (r *TableReporter) relativize(result *runner.Result) *runner.Result {
	display := &runner.Result{
		Files: make([]runner.FileOutcome, len(result.Files)),
		Stats: result.Stats,
	}
	for idx, file := range result.Files {
		file.Path = r.opts.displayPath(file.Path)
		display.Files[idx] = file
	}
	return display
}

// getTerminalWidth attempts to get the terminal width from the writer.
func getTerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd())) //nolint:gosec // File descriptors fit in int.
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
