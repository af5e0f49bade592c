package rules

import "github.com/yaklabco/humorlint/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
//
// The order below is the assembly order of the engine's output: the import
// diagnostic, then per-line diagnostics top to bottom (semicolons on internal
// lines, then the return diagnostic on the last line), then link diagnostics.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewImportRule())    // HL002
	registry.Register(NewSemicolonRule()) // HL004
	registry.Register(NewReturnRule())    // HL003
	registry.Register(NewRickRollRule())  // HL005
}

func init() {
	RegisterAll(lint.DefaultRegistry)
}
