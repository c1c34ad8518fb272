package diag

import (
	"fmt"
	"strings"

	"flare/internal/color"
)

// Label annotates a span with an optional message, color, and layout
// hints. A Label is an immutable value: every mutation-shaped operation
// returns a new Label. The empty string is Target's "unset" sentinel:
// it means "resolve against the owning report's primary path at render
// time", so a source registered under the empty path can never be
// targeted explicitly. Resolution happens per use and never writes back
// into the label.
type Label struct {
	Span     Span
	Target   string
	Message  string
	Color    color.Color
	Order    int32
	Priority int32
}

// LabelOption customises a label under construction.
type LabelOption func(*Label)

// WithTarget pins the label to a specific source path. Ignored by Copy.
func WithTarget(path string) LabelOption {
	return func(l *Label) { l.Target = path }
}

// WithMessage sets the label's message.
func WithMessage(msg string) LabelOption {
	return func(l *Label) { l.Message = msg }
}

// WithColor sets the label's color.
func WithColor(c color.Color) LabelOption {
	return func(l *Label) { l.Color = c }
}

// WithOrder sets the vertical ordering hint used by the renderer.
func WithOrder(n int32) LabelOption {
	return func(l *Label) { l.Order = n }
}

// WithPriority sets the overlap-resolution hint used by the renderer.
func WithPriority(n int32) LabelOption {
	return func(l *Label) { l.Priority = n }
}

// NewLabel validates the raw bounds and applies the options. Fails with
// *InvalidSpanError when start > end; violated bounds are never clamped.
func NewLabel(start, end uint32, opts ...LabelOption) (Label, error) {
	span, err := NewSpan(start, end)
	if err != nil {
		return Label{}, err
	}
	l := Label{Span: span}
	for _, opt := range opts {
		opt(&l)
	}
	return l, nil
}

// Copy returns a new Label with only the explicitly supplied subset of
// {message, color, order, priority} replaced. The target is copied
// unchanged; a WithTarget option has no effect here.
func (l Label) Copy(opts ...LabelOption) Label {
	out := l
	for _, opt := range opts {
		opt(&out)
	}
	out.Target = l.Target
	return out
}

// ResolveTarget returns the path this label renders against: its own
// target when set, otherwise the given primary path.
func (l Label) ResolveTarget(primary string) string {
	if l.Target != "" {
		return l.Target
	}
	return primary
}

func (l Label) String() string {
	parts := []string{l.Span.String()}
	if l.Target != "" {
		parts = append(parts, fmt.Sprintf("target=%q", l.Target))
	}
	if l.Message != "" {
		parts = append(parts, fmt.Sprintf("message=%q", l.Message))
	}
	if !l.Color.IsZero() {
		parts = append(parts, "color="+l.Color.String())
	}
	if l.Order != 0 {
		parts = append(parts, fmt.Sprintf("order=%d", l.Order))
	}
	if l.Priority != 0 {
		parts = append(parts, fmt.Sprintf("priority=%d", l.Priority))
	}
	return "Label(" + strings.Join(parts, ", ") + ")"
}
