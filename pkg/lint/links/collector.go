package links

import (
	"regexp"

	"github.com/yaklabco/humorlint/pkg/source"
)

// inlineLinkPattern matches [anchor](target). Group 1 is the anchor, group 2 the target.
//
//nolint:gochecknoglobals // Compiled once; regexp.Regexp is safe for concurrent use.
var inlineLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// Collect scans every line of the snapshot for inline links and groups them
// by anchor text. Links never span lines.
func Collect(snap *source.Snapshot) *Collation {
	coll := NewCollation()
	if snap.IsEmpty() {
		return coll
	}

	sc := snap.Scan()
	for sc.Next() {
		collectLine(coll, sc.Line())
	}

	return coll
}

// collectLine records all non-overlapping links on one line.
func collectLine(coll *Collation, line source.Line) {
	for _, m := range inlineLinkPattern.FindAllStringSubmatchIndex(line.Text, -1) {
		coll.Add(Occurrence{
			Anchor: line.Text[m[2]:m[3]],
			Target: line.Text[m[4]:m[5]],
			Line:   line.Index,
			Column: m[0],
		})
	}
}
