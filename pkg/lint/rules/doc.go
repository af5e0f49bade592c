// Package rules provides the built-in lint rules for humorlint.
//
// The rule set is fixed. Every rule is line or pattern based and reports
// point diagnostics with severity error:
//
//   - HL002: import-declaration - The first line must contain "import"
//
//   - HL003: return-value - The last line must contain "return"
//
//   - HL004: sentence-semicolon - Sentences on internal lines end with ";"
//
//   - HL005: rick-roll-link - Every link text also links to a rick-roll
//
// Importing this package registers the rules with lint.DefaultRegistry.
package rules
