package diag

import "fmt"

// Span is a half-open [Start, End) range into a source's text. Whether
// the offsets count bytes or runes is decided by the owning report's
// Config; the span itself is unit-agnostic.
type Span struct {
	Start uint32
	End   uint32
}

// InvalidSpanError reports raw bounds with start past end.
type InvalidSpanError struct {
	Start uint32
	End   uint32
}

func (e *InvalidSpanError) Error() string {
	return fmt.Sprintf("invalid span: start %d is greater than end %d", e.Start, e.End)
}

// NewSpan validates raw bounds. Bounds are accepted without reference to
// any source length; length checking belongs to the renderer, which alone
// knows the text being indexed.
func NewSpan(start, end uint32) (Span, error) {
	if start > end {
		return Span{}, &InvalidSpanError{Start: start, End: end}
	}
	return Span{Start: start, End: end}, nil
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}
