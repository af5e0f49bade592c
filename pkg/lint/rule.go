// Package lint provides the rule engine, diagnostics, and registry for humorlint.
package lint

import (
	"github.com/yaklabco/humorlint/pkg/config"
	"github.com/yaklabco/humorlint/pkg/source"
)

// Diagnostic represents a single rule violation found in a document.
// Diagnostics are values; once built they are never mutated by the engine.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "sentence-semicolon").
	RuleName string

	// Code is the numeric diagnostic code; it uniquely identifies the rule.
	Code int

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity

	// FilePath is the path or URI of the document containing the issue.
	FilePath string

	// Range is the 0-based location of the issue.
	Range source.Range
}

// Line returns the 0-based start line.
func (d *Diagnostic) Line() int {
	return d.Range.Start.Line
}

// Column returns the 0-based start column.
func (d *Diagnostic) Column() int {
	return d.Range.Start.Column
}

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "HL004").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Code returns the numeric diagnostic code reported by this rule.
	Code() int

	// Message returns the fixed message attached to every diagnostic.
	Message() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultSeverity returns the severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule (e.g., ["lines"]).
	Tags() []string

	// Apply executes the rule against the given context and returns diagnostics.
	//
	// Rules must:
	//   - Return diagnostics in document order.
	//   - Keep no state between calls.
	//   - Return error only for internal failures, not violations.
	Apply(ctx *RuleContext) ([]Diagnostic, error)
}
