package source

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// LineCol is a human-readable position in a source, both fields 1-based.
type LineCol struct {
	Line uint32
	Col  uint32
}

// LineIndex holds the byte offsets of every '\n' in a source's text,
// enabling O(log n) offset-to-line resolution for the renderer.
type LineIndex struct {
	newlines []uint32
	length   uint32
}

// NewLineIndex scans text once and records newline offsets.
func NewLineIndex(text string) LineIndex {
	length, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}
	var newlines []uint32
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			newlines = append(newlines, uint32(i))
		}
	}
	return LineIndex{newlines: newlines, length: length}
}

// LineCount returns the number of lines, counting a trailing partial line.
func (ix LineIndex) LineCount() uint32 {
	n, err := safecast.Conv[uint32](len(ix.newlines))
	if err != nil {
		panic(fmt.Errorf("line count overflow: %w", err))
	}
	return n + 1
}

// LineCol resolves a byte offset to its 1-based line and byte column.
// Offsets past the end resolve on the final line.
func (ix LineIndex) LineCol(off uint32) LineCol {
	// number of newlines strictly before off
	line := sort.Search(len(ix.newlines), func(i int) bool {
		return ix.newlines[i] >= off
	})
	var lineStart uint32
	if line > 0 {
		lineStart = ix.newlines[line-1] + 1
	}
	return LineCol{Line: uint32(line) + 1, Col: off - lineStart + 1}
}

// LineBounds returns the [start, end) byte range of a 1-based line,
// excluding the trailing newline. ok is false for out-of-range lines.
func (ix LineIndex) LineBounds(line uint32) (start, end uint32, ok bool) {
	if line == 0 || line > ix.LineCount() {
		return 0, 0, false
	}
	if line > 1 {
		start = ix.newlines[line-2] + 1
	}
	if int(line-1) < len(ix.newlines) {
		end = ix.newlines[line-1]
	} else {
		end = ix.length
	}
	return start, end, true
}
