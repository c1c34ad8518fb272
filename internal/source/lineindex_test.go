package source

import (
	"testing"
)

func TestLineIndex_LineCol(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		off      uint32
		expected LineCol
	}{
		{
			name:     "start of single line",
			text:     "hello",
			off:      0,
			expected: LineCol{Line: 1, Col: 1},
		},
		{
			name:     "middle of single line",
			text:     "hello",
			off:      3,
			expected: LineCol{Line: 1, Col: 4},
		},
		{
			name:     "newline belongs to its line",
			text:     "ab\ncd",
			off:      2,
			expected: LineCol{Line: 1, Col: 3},
		},
		{
			name:     "first char of second line",
			text:     "ab\ncd",
			off:      3,
			expected: LineCol{Line: 2, Col: 1},
		},
		{
			name:     "last char of second line",
			text:     "ab\ncd",
			off:      4,
			expected: LineCol{Line: 2, Col: 2},
		},
		{
			name:     "offset at end of text",
			text:     "ab\ncd",
			off:      5,
			expected: LineCol{Line: 2, Col: 3},
		},
		{
			name:     "empty text",
			text:     "",
			off:      0,
			expected: LineCol{Line: 1, Col: 1},
		},
		{
			name:     "line after trailing newline",
			text:     "ab\n",
			off:      3,
			expected: LineCol{Line: 2, Col: 1},
		},
		{
			name:     "multibyte rune counted in bytes",
			text:     "α\nb",
			off:      3,
			expected: LineCol{Line: 2, Col: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := NewLineIndex(tt.text)
			if got := ix.LineCol(tt.off); got != tt.expected {
				t.Fatalf("LineCol(%d) in %q = %+v, want %+v", tt.off, tt.text, got, tt.expected)
			}
		})
	}
}

func TestLineIndex_LineBounds(t *testing.T) {
	ix := NewLineIndex("ab\ncde\n\nf")

	tests := []struct {
		name       string
		line       uint32
		start, end uint32
		ok         bool
	}{
		{name: "first line", line: 1, start: 0, end: 2, ok: true},
		{name: "second line", line: 2, start: 3, end: 6, ok: true},
		{name: "empty line", line: 3, start: 7, end: 7, ok: true},
		{name: "final partial line", line: 4, start: 8, end: 9, ok: true},
		{name: "line zero", line: 0, ok: false},
		{name: "past the end", line: 5, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := ix.LineBounds(tt.line)
			if ok != tt.ok {
				t.Fatalf("LineBounds(%d) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if ok && (start != tt.start || end != tt.end) {
				t.Fatalf("LineBounds(%d) = [%d, %d), want [%d, %d)", tt.line, start, end, tt.start, tt.end)
			}
		})
	}
}

func TestLineIndex_LineCount(t *testing.T) {
	tests := []struct {
		text     string
		expected uint32
	}{
		{"", 1},
		{"a", 1},
		{"a\n", 2},
		{"a\nb\nc", 3},
	}
	for _, tt := range tests {
		if got := NewLineIndex(tt.text).LineCount(); got != tt.expected {
			t.Errorf("LineCount(%q) = %d, want %d", tt.text, got, tt.expected)
		}
	}
}
