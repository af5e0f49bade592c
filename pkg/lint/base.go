package lint

import "github.com/yaklabco/humorlint/pkg/config"

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override Apply.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseRule struct {
	id      string   // Unique identifier (e.g., "HL002")
	name    string   // Human-readable name
	code    int      // Diagnostic code
	message string   // Fixed diagnostic message
	desc    string   // Detailed description
	tags    []string // Categorization tags
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name string, code int, message, desc string, tags []string) BaseRule {
	return BaseRule{
		id:      id,
		name:    name,
		code:    code,
		message: message,
		desc:    desc,
		tags:    tags,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Code returns the numeric diagnostic code.
func (r *BaseRule) Code() int {
	return r.code
}

// Message returns the fixed diagnostic message.
func (r *BaseRule) Message() string {
	return r.message
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultSeverity returns the severity for this rule. Every built-in rule is an error.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// Apply must be overridden by concrete rule implementations.
// The default implementation returns no diagnostics.
func (r *BaseRule) Apply(_ *RuleContext) ([]Diagnostic, error) {
	return nil, nil
}

// DiagnosticAt builds this rule's point diagnostic at (line, column).
func (r *BaseRule) DiagnosticAt(ctx *RuleContext, line, column int) Diagnostic {
	var path string
	if ctx != nil && ctx.File != nil {
		path = ctx.File.Path
	}
	return NewPointDiagnostic(r.id, path, line, column, r.message).
		WithRuleName(r.name).
		WithCode(r.code).
		WithSeverity(r.DefaultSeverity()).
		Build()
}
