package source

// BuildLines constructs line metadata from document text.
//
// Lines are terminated by LF or CRLF. A terminator at the very end of the
// text does not start another line, so "a\n" has one line and "" has none.
func BuildLines(content string) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx := range len(content) {
		if content[idx] != '\n' {
			continue
		}

		newlineStart := idx
		if idx > lineStart && content[idx-1] == '\r' {
			newlineStart = idx - 1
		}

		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    idx + 1,
		})
		lineStart = idx + 1
	}

	// Unterminated last line.
	if lineStart < len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineCount returns the number of lines in the document.
func (s *Snapshot) LineCount() int {
	if s == nil {
		return 0
	}
	return len(s.Lines)
}

// Line returns the 0-based line idx.
func (s *Snapshot) Line(idx int) (Line, bool) {
	if s == nil || idx < 0 || idx >= len(s.Lines) {
		return Line{}, false
	}

	info := s.Lines[idx]
	return Line{
		Index:       idx,
		Text:        s.Content[info.StartOffset:info.NewlineStart],
		StartOffset: info.StartOffset,
	}, true
}

// First returns the first line, if any.
func (s *Snapshot) First() (Line, bool) {
	return s.Line(0)
}

// Last returns the last line, if any.
func (s *Snapshot) Last() (Line, bool) {
	return s.Line(s.LineCount() - 1)
}

// IsLastIndex reports whether idx is the index of the last line.
func (s *Snapshot) IsLastIndex(idx int) bool {
	return idx >= 0 && idx == s.LineCount()-1
}

// LineText returns the content of line idx, or "" when out of range.
func (s *Snapshot) LineText(idx int) string {
	line, ok := s.Line(idx)
	if !ok {
		return ""
	}
	return line.Text
}

// AllLines returns every line in order.
func (s *Snapshot) AllLines() []Line {
	count := s.LineCount()
	result := make([]Line, 0, count)
	for idx := range count {
		line, _ := s.Line(idx)
		result = append(result, line)
	}
	return result
}
