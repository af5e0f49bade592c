package rules

import (
	"regexp"

	"github.com/yaklabco/humorlint/pkg/lint"
)

// Diagnostic codes and messages for the declaration rules.
const (
	CodeImport    = 2
	MessageImport = `All posts and comments should start with an "import" declaration.`

	CodeReturn    = 3
	MessageReturn = "All comments must return a value"
)

// Whole-word, case-insensitive keyword patterns. \b keeps "important" and
// "returned" from counting.
//
//nolint:gochecknoglobals // Compiled once; regexp.Regexp is safe for concurrent use.
var (
	importWord = regexp.MustCompile(`(?i)\bimport\b`)
	returnWord = regexp.MustCompile(`(?i)\breturn\b`)
)

// ImportRule checks that the first line contains an "import" declaration.
type ImportRule struct {
	lint.BaseRule
}

// NewImportRule creates a new import declaration rule.
func NewImportRule() *ImportRule {
	return &ImportRule{
		BaseRule: lint.NewBaseRule(
			"HL002",
			"import-declaration",
			CodeImport,
			MessageImport,
			`The first line must contain the word "import" (case-insensitive, whole word)`,
			[]string{"declarations", "first_line"},
		),
	}
}

// Apply checks the first line of the document.
func (r *ImportRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	first, ok := ctx.File.First()
	if !ok {
		return nil, nil
	}

	if importWord.MatchString(first.Text) {
		return nil, nil
	}

	return []lint.Diagnostic{r.DiagnosticAt(ctx, 0, 0)}, nil
}

// ReturnRule checks that the last line contains a "return" statement.
//
// A single-line document is always reported: its only line is taken up by
// the import declaration, so it can never also return a value. This holds
// even when that line happens to contain "return".
type ReturnRule struct {
	lint.BaseRule
}

// NewReturnRule creates a new return value rule.
func NewReturnRule() *ReturnRule {
	return &ReturnRule{
		BaseRule: lint.NewBaseRule(
			"HL003",
			"return-value",
			CodeReturn,
			MessageReturn,
			`The last line must contain the word "return" (case-insensitive, whole word); `+
				"single-line documents are always reported",
			[]string{"declarations", "last_line"},
		),
	}
}

// Apply checks the last line of the document.
func (r *ReturnRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	switch ctx.File.LineCount() {
	case 0:
		return nil, nil
	case 1:
		return []lint.Diagnostic{r.DiagnosticAt(ctx, 0, 0)}, nil
	}

	last, _ := ctx.File.Last()
	if returnWord.MatchString(last.Text) {
		return nil, nil
	}

	return []lint.Diagnostic{r.DiagnosticAt(ctx, last.Index, 0)}, nil
}
