package runner

import (
	"strconv"

	"github.com/yaklabco/humorlint/pkg/config"
	"github.com/yaklabco/humorlint/pkg/lint"
)

// FileOutcome wraps PipelineResult with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the pipeline result for this file.
	// Nil if the file encountered an error during processing.
	Result *lint.PipelineResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesErrored is the number of files that could not be read.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one diagnostic.
	FilesWithIssues int

	// DiagnosticsTotal is the total number of diagnostics across all files.
	DiagnosticsTotal int

	// DiagnosticsBySeverity maps severity levels to counts.
	DiagnosticsBySeverity map[string]int

	// DiagnosticsByRule maps rule IDs to counts.
	DiagnosticsByRule map[string]int

	// RuleErrors is the number of rule evaluation failures.
	RuleErrors int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

// HasErrors reports whether any file could not be processed.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// Diagnostics returns every diagnostic of the run, file by file.
func (r *Result) Diagnostics() []lint.Diagnostic {
	var all []lint.Diagnostic
	for _, outcome := range r.Files {
		if outcome.Result != nil {
			all = append(all, outcome.Result.Diagnostics...)
		}
	}
	return all
}

// Collect aggregates outcomes, kept in the given order, into a Result.
func Collect(outcomes ...FileOutcome) *Result {
	result := &Result{
		Files: make([]FileOutcome, 0, len(outcomes)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(outcomes)
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result
}

func newStats() Stats {
	return Stats{
		DiagnosticsBySeverity: make(map[string]int),
		DiagnosticsByRule:     make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Result == nil || outcome.Result.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.RuleErrors += len(outcome.Result.RuleErrors)

	diagCount := len(outcome.Result.Diagnostics)
	r.Stats.DiagnosticsTotal += diagCount
	if diagCount > 0 {
		r.Stats.FilesWithIssues++
	}

	for _, diag := range outcome.Result.Diagnostics {
		severity := string(diag.Severity)
		if severity == "" {
			severity = string(config.SeverityWarning)
		}
		r.Stats.DiagnosticsBySeverity[severity]++

		ruleID := diag.RuleID
		if ruleID == "" {
			ruleID = "code " + strconv.Itoa(diag.Code)
		}
		r.Stats.DiagnosticsByRule[ruleID]++
	}
}
