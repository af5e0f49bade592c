package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/humorlint/pkg/config"
	"github.com/yaklabco/humorlint/pkg/runner"
)

// jsonSchemaVersion identifies the layout of JSONOutput.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Error       string           `json:"error,omitempty"`
}

// JSONDiagnostic represents a single diagnostic. Lines and columns are
// 0-based; columns are byte offsets into the line.
type JSONDiagnostic struct {
	RuleID    string `json:"ruleId"`
	RuleName  string `json:"ruleName"`
	Code      int    `json:"code"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"endLine"`
	EndColumn int    `json:"endColumn"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesErrored    int            `json:"filesErrored"`
	TotalIssues     int            `json:"totalIssues"`
	BySeverity      map[string]int `json:"bySeverity"`
	ByRule          map[string]int `json:"byRule"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
			ByRule:     make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:        r.opts.displayPath(file.Path),
			Diagnostics: make([]JSONDiagnostic, 0),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		if file.Result != nil && file.Result.Result != nil {
			for _, diag := range file.Result.Diagnostics {
				fileResult.Diagnostics = append(fileResult.Diagnostics, JSONDiagnostic{
					RuleID:    diag.RuleID,
					RuleName:  diag.RuleName,
					Code:      diag.Code,
					Severity:  string(diag.Severity),
					Message:   diag.Message,
					Line:      diag.Range.Start.Line,
					Column:    diag.Range.Start.Column,
					EndLine:   diag.Range.End.Line,
					EndColumn: diag.Range.End.Column,
				})
				output.Summary.TotalIssues++

				severity := string(diag.Severity)
				if severity == "" {
					severity = string(config.SeverityWarning)
				}
				output.Summary.BySeverity[severity]++
				if diag.RuleID != "" {
					output.Summary.ByRule[diag.RuleID]++
				}
			}
			output.Summary.FilesChecked++
		}

		if len(fileResult.Diagnostics) > 0 {
			output.Summary.FilesWithIssues++
		}

		output.Files = append(output.Files, fileResult)
	}

	return output
}
