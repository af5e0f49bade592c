package lint

import (
	"context"

	"github.com/yaklabco/humorlint/pkg/source"
)

// Result contains the results of evaluating a single document.
type Result struct {
	// Snapshot is the evaluated document.
	Snapshot *source.Snapshot

	// Diagnostics contains all issues found, in assembly order.
	Diagnostics []Diagnostic

	// RuleErrors contains any errors from rule execution, keyed by rule ID.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (r *Result) HasIssues() bool {
	return len(r.Diagnostics) > 0
}

// IssueCount returns the total number of diagnostics.
func (r *Result) IssueCount() int {
	return len(r.Diagnostics)
}

// CountByCode returns how many diagnostics carry the given code.
func (r *Result) CountByCode(code int) int {
	count := 0
	for _, d := range r.Diagnostics {
		if d.Code == code {
			count++
		}
	}
	return count
}

// Engine evaluates documents against the rules of a Registry.
//
// The engine keeps no state between calls: every evaluation scans the full
// text it is given, so the same text always yields the same diagnostics and
// concurrent evaluations need no coordination.
type Engine struct {
	// Registry holds the rules to run, in assembly order.
	Registry *Registry
}

// NewEngine creates a new Engine with the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// Evaluate builds a snapshot of text and evaluates it.
func (e *Engine) Evaluate(ctx context.Context, path, text string) *Result {
	return e.EvaluateSnapshot(ctx, source.NewSnapshot(path, text))
}

// EvaluateSnapshot runs every registered rule against snapshot and
// concatenates their diagnostics in registration order.
func (e *Engine) EvaluateSnapshot(ctx context.Context, snapshot *source.Snapshot) *Result {
	result := &Result{
		Snapshot:    snapshot,
		Diagnostics: []Diagnostic{},
		RuleErrors:  make(map[string]error),
	}

	if snapshot.IsEmpty() {
		return result
	}

	ruleCtx := NewRuleContext(ctx, snapshot)
	ruleCtx.Registry = e.Registry

	for _, rule := range e.Registry.Rules() {
		diags, err := rule.Apply(ruleCtx)
		if err != nil {
			result.RuleErrors[rule.ID()] = err
			continue
		}

		for idx := range diags {
			if diags[idx].RuleName == "" {
				diags[idx].RuleName = rule.Name()
			}
			if diags[idx].FilePath == "" {
				diags[idx].FilePath = snapshot.Path
			}
		}

		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	return result
}
