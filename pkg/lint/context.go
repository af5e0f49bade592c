package lint

import (
	"context"

	"github.com/yaklabco/humorlint/pkg/lint/links"
	"github.com/yaklabco/humorlint/pkg/source"
)

// RuleContext provides all context needed by a rule to perform linting.
//
// RuleContext is a short-lived parameter object created per evaluation and
// shared by the rules of that evaluation only. It carries context.Context as
// a field so the Rule interface stays a single Apply method; the context is
// used for logging, not cancellation, since an evaluation always completes.
type RuleContext struct {
	// Ctx carries request-scoped values such as the logger.
	Ctx context.Context

	// File is the document snapshot under evaluation.
	File *source.Snapshot

	// Registry provides access to the rule registry for name lookups.
	Registry *Registry

	// links is the cached link collation, lazily initialized.
	links *links.Collation
}

// NewRuleContext creates a RuleContext for the given snapshot.
func NewRuleContext(ctx context.Context, file *source.Snapshot) *RuleContext {
	if ctx == nil {
		ctx = context.Background()
	}
	return &RuleContext{
		Ctx:  ctx,
		File: file,
	}
}

// Links returns the link collation for this document, building it lazily.
func (rc *RuleContext) Links() *links.Collation {
	if rc.links == nil {
		rc.links = links.Collect(rc.File)
	}
	return rc.links
}
