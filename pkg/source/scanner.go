package source

// Scanner iterates the lines of a Snapshot front to back with one line of
// lookahead, so callers can tell the last line apart while scanning.
//
//	sc := snapshot.Scan()
//	for sc.Next() {
//		line := sc.Line()
//		if sc.IsLast() { ... }
//	}
type Scanner struct {
	snapshot *Snapshot
	pos      int
}

// Scan returns a Scanner positioned before the first line.
func (s *Snapshot) Scan() *Scanner {
	return &Scanner{snapshot: s, pos: -1}
}

// Next advances to the next line and reports whether one exists.
func (sc *Scanner) Next() bool {
	if sc.pos >= sc.snapshot.LineCount() {
		return false
	}
	sc.pos++
	return sc.pos < sc.snapshot.LineCount()
}

// Line returns the current line.
func (sc *Scanner) Line() Line {
	line, _ := sc.snapshot.Line(sc.pos)
	return line
}

// Peek returns the line after the current one without advancing.
func (sc *Scanner) Peek() (Line, bool) {
	return sc.snapshot.Line(sc.pos + 1)
}

// IsFirst reports whether the current line is the first line.
func (sc *Scanner) IsFirst() bool {
	return sc.pos == 0
}

// IsLast reports whether the current line is the last line.
func (sc *Scanner) IsLast() bool {
	_, more := sc.Peek()
	return sc.pos >= 0 && sc.pos < sc.snapshot.LineCount() && !more
}

// IsInternal reports whether the current line is neither first nor last.
func (sc *Scanner) IsInternal() bool {
	return !sc.IsFirst() && !sc.IsLast()
}
