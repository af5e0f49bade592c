package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/humorlint/internal/ui/pretty"
	"github.com/yaklabco/humorlint/pkg/analysis"
	"github.com/yaklabco/humorlint/pkg/runner"
)

// topFilesLimit caps the files listed under the summary.
const topFilesLimit = 5

// SummaryReporter prints only aggregate statistics, broken down by rule,
// followed by the files with the most issues.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		result = &runner.Result{}
	}

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(r.opts.displayPath(file.Path)),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
		}
	}

	fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats, r.opts.RuleOrder))

	report := analysis.Analyze(result, analysis.Options{
		SortBy:     analysis.SortByCount,
		RuleOrder:  r.opts.RuleOrder,
		WorkingDir: r.opts.WorkingDir,
	})
	fmt.Fprint(r.bw, r.styles.FormatTopFiles(analysis.Top(report.ByFile, topFilesLimit)))

	return result.Stats.DiagnosticsTotal, nil
}
