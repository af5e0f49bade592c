package analysis

// Report contains pre-computed views of a run, grouped by rule and by file.
type Report struct {
	// ByRule holds one entry per rule that reported at least one issue.
	ByRule []RuleAnalysis `json:"byRule,omitempty"`

	// ByFile holds one entry per file with at least one issue.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files           int `json:"filesChecked"`
	FilesWithIssues int `json:"filesWithIssues"`
	FilesErrored    int `json:"filesErrored"`
	Issues          int `json:"totalIssues"`
}

// HasIssues returns true if there are any issues.
func (t Totals) HasIssues() bool {
	return t.Issues > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path   string   `json:"path"`
	Issues int      `json:"issues"`
	Rules  []string `json:"rules,omitempty"`
}

// RuleAnalysis contains aggregated data for a single rule.
type RuleAnalysis struct {
	RuleID   string   `json:"ruleId"`
	RuleName string   `json:"ruleName"`
	Issues   int      `json:"issues"`
	Files    []string `json:"files,omitempty"`
}

// Top returns at most n entries of files. It does not copy.
func Top(files []FileAnalysis, n int) []FileAnalysis {
	if n < 0 || len(files) <= n {
		return files
	}
	return files[:n]
}
