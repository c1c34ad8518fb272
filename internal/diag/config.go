package diag

import "fmt"

// CharSet selects the glyph set the renderer draws with.
type CharSet uint8

const (
	// CharSetUnicode uses box-drawing glyphs.
	CharSetUnicode CharSet = iota
	// CharSetAscii restricts output to 7-bit ASCII.
	CharSetAscii
)

// IndexType selects the unit span offsets are expressed in.
type IndexType uint8

const (
	// IndexChar counts Unicode codepoints.
	IndexChar IndexType = iota
	// IndexByte counts raw bytes.
	IndexByte
)

// LabelAttach selects where a multi-line label's arrow attaches.
type LabelAttach uint8

const (
	AttachMiddle LabelAttach = iota
	AttachStart
	AttachEnd
)

// Config bundles the rendering options carried by a report. It has no
// internal invariants beyond valid enum membership; the diagnostic core
// treats it as opaque and hands it to the renderer unchanged.
type Config struct {
	CrossGap        bool
	Compact         bool
	Underlines      bool
	MultilineArrows bool
	Color           bool
	TabWidth        int
	CharSet         CharSet
	IndexType       IndexType
	LabelAttach     LabelAttach
}

// DefaultConfig returns the stock options: colored unicode output with
// underlines and multi-line arrows, 4-column tabs, codepoint-indexed
// spans, middle label attachment.
func DefaultConfig() Config {
	return Config{
		Underlines:      true,
		MultilineArrows: true,
		Color:           true,
		TabWidth:        4,
		CharSet:         CharSetUnicode,
		IndexType:       IndexChar,
		LabelAttach:     AttachMiddle,
	}
}

// ParseCharSet maps a boundary string to a CharSet.
func ParseCharSet(s string) (CharSet, error) {
	switch s {
	case "unicode", "":
		return CharSetUnicode, nil
	case "ascii":
		return CharSetAscii, nil
	}
	return 0, fmt.Errorf("char set must be %q or %q, got %q", "unicode", "ascii", s)
}

// ParseIndexType maps a boundary string to an IndexType.
func ParseIndexType(s string) (IndexType, error) {
	switch s {
	case "char", "":
		return IndexChar, nil
	case "byte":
		return IndexByte, nil
	}
	return 0, fmt.Errorf("index type must be %q or %q, got %q", "char", "byte", s)
}

// ParseLabelAttach maps a boundary string to a LabelAttach.
func ParseLabelAttach(s string) (LabelAttach, error) {
	switch s {
	case "middle", "":
		return AttachMiddle, nil
	case "start":
		return AttachStart, nil
	case "end":
		return AttachEnd, nil
	}
	return 0, fmt.Errorf("label attach must be one of %q, %q, %q, got %q", "start", "middle", "end", s)
}
