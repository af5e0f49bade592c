// Package links collects markdown-style inline links across a document and
// groups them by anchor text for document-wide link rules.
package links

import "github.com/yaklabco/humorlint/pkg/source"

// CanonicalURL is the rick-roll target every anchor group must link to at least once.
const CanonicalURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

// Occurrence is a single [anchor](target) link found in a document.
type Occurrence struct {
	// Anchor is the text between the square brackets.
	Anchor string

	// Target is the text between the parentheses.
	Target string

	// Line is the 0-based line of the link.
	Line int

	// Column is the byte column of the opening bracket.
	Column int
}

// Position returns the location of the opening bracket.
func (o Occurrence) Position() source.Position {
	return source.Position{Line: o.Line, Column: o.Column}
}

// Targets reports whether the link points at url (exact match).
func (o Occurrence) Targets(url string) bool {
	return o.Target == url
}

// Group holds every occurrence sharing one anchor text, in scan order.
type Group struct {
	Anchor      string
	Occurrences []Occurrence
}

// Satisfied reports whether at least one occurrence targets canonical.
func (g *Group) Satisfied(canonical string) bool {
	for _, occ := range g.Occurrences {
		if occ.Targets(canonical) {
			return true
		}
	}
	return false
}

// Collation is the result of collecting links from a document.
// Groups are kept in order of their first occurrence.
type Collation struct {
	groups []*Group
	index  map[string]int // anchor -> position in groups
}

// NewCollation returns an empty Collation.
func NewCollation() *Collation {
	return &Collation{index: make(map[string]int)}
}

// Add appends an occurrence to its anchor group, creating the group on first sight.
func (c *Collation) Add(occ Occurrence) {
	if pos, ok := c.index[occ.Anchor]; ok {
		c.groups[pos].Occurrences = append(c.groups[pos].Occurrences, occ)
		return
	}
	c.index[occ.Anchor] = len(c.groups)
	c.groups = append(c.groups, &Group{
		Anchor:      occ.Anchor,
		Occurrences: []Occurrence{occ},
	})
}

// Groups returns the anchor groups in first-occurrence order.
func (c *Collation) Groups() []*Group {
	return c.groups
}

// Group returns the group for anchor, if present.
func (c *Collation) Group(anchor string) (*Group, bool) {
	pos, ok := c.index[anchor]
	if !ok {
		return nil, false
	}
	return c.groups[pos], true
}

// Count returns the total number of occurrences.
func (c *Collation) Count() int {
	total := 0
	for _, g := range c.groups {
		total += len(g.Occurrences)
	}
	return total
}

// Violations returns every occurrence of every group that has no link to
// canonical, group by group in first-occurrence order.
func (c *Collation) Violations(canonical string) []Occurrence {
	var result []Occurrence
	for _, g := range c.groups {
		if g.Satisfied(canonical) {
			continue
		}
		result = append(result, g.Occurrences...)
	}
	return result
}
