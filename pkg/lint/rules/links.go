package rules

import (
	"github.com/yaklabco/humorlint/pkg/lint"
	"github.com/yaklabco/humorlint/pkg/lint/links"
)

// Diagnostic code and message for the rick-roll rule.
const (
	CodeRickRoll    = 5
	MessageRickRoll = "Every post linking to something must contain a second, identical-looking link to a rick-roll"
)

// RickRollRule checks that every link anchor text is also used for a rick-roll link.
type RickRollRule struct {
	lint.BaseRule
	canonical string
}

// NewRickRollRule creates a new rick-roll link rule targeting links.CanonicalURL.
func NewRickRollRule() *RickRollRule {
	return &RickRollRule{
		BaseRule: lint.NewBaseRule(
			"HL005",
			"rick-roll-link",
			CodeRickRoll,
			MessageRickRoll,
			"For each anchor text used in a [text](url) link, at least one link with that text must target "+
				links.CanonicalURL,
			[]string{"links"},
		),
		canonical: links.CanonicalURL,
	}
}

// Apply reports every link whose anchor group has no rick-roll target.
// Diagnostics come out group by group, in order of each anchor's first use.
func (r *RickRollRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	violations := ctx.Links().Violations(r.canonical)
	if len(violations) == 0 {
		return nil, nil
	}

	diags := make([]lint.Diagnostic, 0, len(violations))
	for _, occ := range violations {
		diags = append(diags, r.DiagnosticAt(ctx, occ.Line, occ.Column))
	}

	return diags, nil
}
