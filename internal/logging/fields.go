// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Check fields.
	FieldFormat = "format"
	FieldJobs   = "jobs"

	// Statistics fields.
	FieldFilesDiscovered  = "files_discovered"
	FieldFilesProcessed   = "files_processed"
	FieldFilesWithIssues  = "files_with_issues"
	FieldDiagnosticsTotal = "diagnostics_total"
	FieldFilesErrored     = "files_errored"

	// Language server fields.
	FieldMethod      = "method"
	FieldRequestID   = "id"
	FieldURI         = "uri"
	FieldDocVersion  = "doc_version"
	FieldDiagnostics = "diagnostics"
	FieldLimit       = "limit"
	FieldDropped     = "dropped"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldName        = "name"
	FieldCode        = "code"
	FieldSeverity    = "severity"
	FieldDescription = "description"
)
