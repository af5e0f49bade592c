package source

// Position is a 0-based line and byte column in a document.
type Position struct {
	Line   int
	Column int
}

// Range is a pair of positions. Start == End marks a point.
type Range struct {
	Start Position
	End   Position
}

// Point returns a Range whose start and end are both (line, column).
func Point(line, column int) Range {
	pos := Position{Line: line, Column: column}
	return Range{Start: pos, End: pos}
}

// IsPoint returns true if the range marks a location rather than a span.
func (r Range) IsPoint() bool {
	return r.Start == r.End
}

// IsSingleLine returns true if start and end are on the same line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// Contains reports whether pos lies within the document: its line exists and
// its column is within [0, len(line)].
func (s *Snapshot) Contains(pos Position) bool {
	line, ok := s.Line(pos.Line)
	if !ok {
		return false
	}
	return pos.Column >= 0 && pos.Column <= len(line.Text)
}
