package lint

import (
	"github.com/yaklabco/humorlint/pkg/config"
	"github.com/yaklabco/humorlint/pkg/source"
)

// DiagnosticBuilder helps construct Diagnostic values.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnosticAt starts building a diagnostic covering rng.
func NewDiagnosticAt(ruleID, filePath string, rng source.Range, message string) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		diag: Diagnostic{
			RuleID:   ruleID,
			Message:  message,
			FilePath: filePath,
			Range:    rng,
		},
	}
}

// NewPointDiagnostic starts building a diagnostic whose start and end are (line, column).
func NewPointDiagnostic(ruleID, filePath string, line, column int, message string) *DiagnosticBuilder {
	return NewDiagnosticAt(ruleID, filePath, source.Point(line, column), message)
}

// NewDiagnosticAtWithRegistry creates a DiagnosticBuilder with rule name and code lookup.
func NewDiagnosticAtWithRegistry(
	ruleID string,
	filePath string,
	rng source.Range,
	message string,
	reg *Registry,
) *DiagnosticBuilder {
	builder := NewDiagnosticAt(ruleID, filePath, rng, message)
	if reg != nil {
		if rule, ok := reg.GetByID(ruleID); ok {
			builder.diag.RuleName = rule.Name()
			builder.diag.Code = rule.Code()
		}
	}
	return builder
}

// WithSeverity sets the severity.
func (b *DiagnosticBuilder) WithSeverity(s config.Severity) *DiagnosticBuilder {
	b.diag.Severity = s
	return b
}

// WithCode sets the numeric diagnostic code.
func (b *DiagnosticBuilder) WithCode(code int) *DiagnosticBuilder {
	b.diag.Code = code
	return b
}

// WithRuleName sets the human-readable rule name.
func (b *DiagnosticBuilder) WithRuleName(name string) *DiagnosticBuilder {
	b.diag.RuleName = name
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}
