package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/humorlint/internal/ui/pretty"
	"github.com/yaklabco/humorlint/pkg/runner"
)

// TextReporter formats results as styled terminal output grouped by file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
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

	var total int

	for _, file := range result.Files {
		path := r.opts.displayPath(file.Path)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Result == nil || file.Result.Result == nil || len(file.Result.Diagnostics) == 0 {
			continue
		}

		diagnostics := file.Result.Diagnostics
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(diagnostics)))

		for idx := range diagnostics {
			diag := diagnostics[idx]
			diag.FilePath = path

			var sourceLine string
			if r.opts.ShowContext && file.Result.Snapshot != nil {
				sourceLine = file.Result.Snapshot.LineText(diag.Line())
			}

			fmt.Fprint(r.bw, r.styles.FormatDiagnostic(&diag, sourceLine, r.opts.RuleFormat))
			total++
		}

		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}
