package rules

import (
	"regexp"

	"github.com/yaklabco/humorlint/pkg/lint"
)

// Diagnostic code and message for the sentence rule.
const (
	CodeSemicolon    = 4
	MessageSemicolon = "For comments, every sentence must end with a semicolon"
)

// sentenceEnd matches either a word character, a period and whitespace (a
// sentence ended mid-line with a period), or a run ending in something other
// than a semicolon at end of line. Numbered lists ("1. item") match too; that
// is accepted.
//
//nolint:gochecknoglobals // Compiled once; regexp.Regexp is safe for concurrent use.
var sentenceEnd = regexp.MustCompile(`\w\.\s|.+[^;]$`)

// SemicolonRule checks that every sentence on an internal line ends with a semicolon.
type SemicolonRule struct {
	lint.BaseRule
}

// NewSemicolonRule creates a new sentence semicolon rule.
func NewSemicolonRule() *SemicolonRule {
	return &SemicolonRule{
		BaseRule: lint.NewBaseRule(
			"HL004",
			"sentence-semicolon",
			CodeSemicolon,
			MessageSemicolon,
			"Every sentence on lines other than the first and last must end with a semicolon",
			[]string{"sentences", "punctuation"},
		),
	}
}

// Apply scans each internal line and reports every match, two bytes before
// its end so the marker sits on the character before the bad terminator.
func (r *SemicolonRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	sc := ctx.File.Scan()
	for sc.Next() {
		if !sc.IsInternal() {
			continue
		}

		line := sc.Line()
		for _, match := range sentenceEnd.FindAllStringIndex(line.Text, -1) {
			diags = append(diags, r.DiagnosticAt(ctx, line.Index, match[1]-2))
		}
	}

	return diags, nil
}
