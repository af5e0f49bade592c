// Package source provides the immutable document representation for humorlint.
// A Snapshot holds the full text of one post or comment body together with
// its line index; it is never patched, only replaced.
package source

// Snapshot is an immutable view of a document at a specific time.
type Snapshot struct {
	// Path identifies the document (file path or URI; may be empty).
	Path string

	// Content is the full document text.
	Content string

	// Lines contains metadata for each line in the document.
	Lines []LineInfo
}

// LineInfo holds metadata for a single line in a document.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where the line terminator begins.
	// For a final line without a terminator, this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the terminator (or end of text).
	EndOffset int
}

// Line is one line of a Snapshot, without its terminator.
type Line struct {
	// Index is the 0-based line number.
	Index int

	// Text is the line content.
	Text string

	// StartOffset is the byte offset of the line in the document.
	StartOffset int
}

// NewSnapshot creates a Snapshot from text and builds its line index.
func NewSnapshot(path, content string) *Snapshot {
	return &Snapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}

// IsEmpty reports whether the document has no lines.
func (s *Snapshot) IsEmpty() bool {
	return s == nil || len(s.Lines) == 0
}
