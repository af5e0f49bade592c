package lsp

import "unicode/utf8"

// applyChanges applies content changes in order to a private copy of text.
// A change without a range replaces the whole document.
func applyChanges(text string, changes []textDocumentContentChangeEvent) string {
	for _, change := range changes {
		if change.Range == nil {
			text = change.Text
			continue
		}
		start := offsetForPosition(text, change.Range.Start)
		end := offsetForPosition(text, change.Range.End)
		if end < start {
			end = start
		}
		text = text[:start] + change.Text + text[end:]
	}
	return text
}

// offsetForPosition converts a line and UTF-16 character position to a byte
// offset in text, clamping past-the-end positions. A CRLF terminator is not
// part of the line.
func offsetForPosition(text string, pos position) int {
	targetLine := int(pos.Line)
	line := 0
	i := 0
	for i < len(text) && line < targetLine {
		if text[i] == '\n' {
			line++
		}
		i++
	}
	if line < targetLine {
		return len(text)
	}

	want := int(pos.Character)
	units := 0
	for i < len(text) && units < want {
		if text[i] == '\n' || (text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n') {
			break
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		need := utf16Len(r)
		if units+need > want {
			break
		}
		units += need
		i += size
	}
	return i
}

// utf16Column converts a byte column within line to UTF-16 code units.
// A column inside a multi-byte rune maps to the start of that rune.
func utf16Column(line string, byteCol int) int {
	if byteCol > len(line) {
		byteCol = len(line)
	}
	units := 0
	for i := 0; i < byteCol; {
		r, size := utf8.DecodeRuneInString(line[i:])
		if i+size > byteCol {
			break
		}
		units += utf16Len(r)
		i += size
	}
	return units
}

func utf16Len(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}
