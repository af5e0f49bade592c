package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rng(startLine, startChar, endLine, endChar uint32) *lspRange {
	return &lspRange{
		Start: position{Line: startLine, Character: startChar},
		End:   position{Line: endLine, Character: endChar},
	}
}

func TestApplyChanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		changes []textDocumentContentChangeEvent
		want    string
	}{
		{
			name: "no changes",
			text: "abc",
			want: "abc",
		},
		{
			name:    "full replacement",
			text:    "old text",
			changes: []textDocumentContentChangeEvent{{Text: "new text"}},
			want:    "new text",
		},
		{
			name:    "insert at start",
			text:    "one\ntwo",
			changes: []textDocumentContentChangeEvent{{Range: rng(0, 0, 0, 0), Text: "import "}},
			want:    "import one\ntwo",
		},
		{
			name:    "replace on second line",
			text:    "one\ntwo\nthree",
			changes: []textDocumentContentChangeEvent{{Range: rng(1, 0, 1, 3), Text: "TWO"}},
			want:    "one\nTWO\nthree",
		},
		{
			name:    "delete across lines",
			text:    "one\ntwo\nthree",
			changes: []textDocumentContentChangeEvent{{Range: rng(0, 3, 2, 0), Text: " "}},
			want:    "one three",
		},
		{
			name: "changes apply in order",
			text: "a",
			changes: []textDocumentContentChangeEvent{
				{Text: "hello"},
				{Range: rng(0, 5, 0, 5), Text: " world"},
			},
			want: "hello world",
		},
		{
			name:    "utf16 positions after a surrogate pair",
			text:    "😀x",
			changes: []textDocumentContentChangeEvent{{Range: rng(0, 2, 0, 3), Text: "y"}},
			want:    "😀y",
		},
		{
			name:    "past the end clamps",
			text:    "abc",
			changes: []textDocumentContentChangeEvent{{Range: rng(5, 0, 9, 9), Text: "!"}},
			want:    "abc!",
		},
		{
			name:    "character past line end clamps to line end",
			text:    "ab\ncd",
			changes: []textDocumentContentChangeEvent{{Range: rng(0, 10, 0, 10), Text: ";"}},
			want:    "ab;\ncd",
		},
		{
			name:    "character past line end stops before CRLF",
			text:    "ab\r\ncd",
			changes: []textDocumentContentChangeEvent{{Range: rng(0, 10, 0, 10), Text: ";"}},
			want:    "ab;\r\ncd",
		},
		{
			name:    "lone carriage return counts as a character",
			text:    "a\rb\ncd",
			changes: []textDocumentContentChangeEvent{{Range: rng(0, 2, 0, 2), Text: "-"}},
			want:    "a\r-b\ncd",
		},
		{
			name:    "reversed range inserts at start",
			text:    "abcd",
			changes: []textDocumentContentChangeEvent{{Range: rng(0, 3, 0, 1), Text: "-"}},
			want:    "abc-d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, applyChanges(tt.text, tt.changes))
		})
	}
}

func TestUTF16Column(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		byteCol int
		want    int
	}{
		{"ascii", "hello", 3, 3},
		{"start", "hello", 0, 0},
		{"two byte runes", "éé x", 4, 2},
		{"astral runes take two units", "😀😀 words", 12, 8},
		{"inside a rune maps to its start", "a€", 2, 1},
		{"past the end clamps", "abc", 10, 3},
		{"empty line", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, utf16Column(tt.line, tt.byteCol))
		})
	}
}
