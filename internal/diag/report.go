package diag

import (
	"flare/internal/color"
	"flare/internal/source"
)

// SourceLoadError wraps a source adapter failure encountered while a
// report was being constructed. The adapter's own error is preserved and
// never downgraded.
type SourceLoadError struct {
	Err error
}

func (e *SourceLoadError) Error() string {
	return "failed to load source: " + e.Err.Error()
}

func (e *SourceLoadError) Unwrap() error { return e.Err }

// Report is the aggregate root of a diagnostic: one primary source with
// an anchor span, a severity, optional code and message, plus ordered
// labels, notes, helps, and auxiliary sources. The report owns every
// attached collection and its private color generator; nothing hands out
// references into its internals. All operations are single-threaded by
// contract.
type Report struct {
	primary source.Source
	span    Span
	config  Config
	code    string
	message string
	kind    ReportKind
	labels  []Label
	notes   []string
	helps   []string
	files   []source.Source
	colors  *color.Generator
}

type reportParams struct {
	code      string
	message   string
	kindName  *string
	kindColor color.Color
	labels    []Label
	notes     []string
	helps     []string
	files     []source.Resolver
}

// ReportOption customises a report under construction.
type ReportOption func(*reportParams)

// WithCode sets the report's diagnostic code.
func WithCode(code string) ReportOption {
	return func(p *reportParams) { p.code = code }
}

// WithReportMessage sets the report's top-level message.
func WithReportMessage(msg string) ReportOption {
	return func(p *reportParams) { p.message = msg }
}

// WithKind names the report's severity: "error", "warning" (or "warn"),
// "advice", or a custom name accompanied by WithKindColor.
func WithKind(name string) ReportOption {
	return func(p *reportParams) { p.kindName = &name }
}

// WithKindColor declares the color of a custom severity.
func WithKindColor(c color.Color) ReportOption {
	return func(p *reportParams) { p.kindColor = c }
}

// WithLabels seeds the report with pre-built labels.
func WithLabels(labels ...Label) ReportOption {
	return func(p *reportParams) { p.labels = append(p.labels, labels...) }
}

// WithNotes seeds the report with notes.
func WithNotes(notes ...string) ReportOption {
	return func(p *reportParams) { p.notes = append(p.notes, notes...) }
}

// WithHelps seeds the report with help entries.
func WithHelps(helps ...string) ReportOption {
	return func(p *reportParams) { p.helps = append(p.helps, helps...) }
}

// WithSources attaches auxiliary sources, resolved in order at
// construction time. Duplicate paths are kept verbatim.
func WithSources(refs ...source.Resolver) ReportOption {
	return func(p *reportParams) { p.files = append(p.files, refs...) }
}

// NewReport resolves the primary source, validates the anchor span and
// severity inputs, resolves any auxiliary sources, and returns the
// aggregate. On any failure the report is never exposed: span violations
// surface as *InvalidSpanError, severity violations as *InvalidKindError,
// and adapter failures are wrapped in *SourceLoadError.
func NewReport(primary source.Resolver, start, end uint32, cfg Config, opts ...ReportOption) (*Report, error) {
	span, err := NewSpan(start, end)
	if err != nil {
		return nil, err
	}

	var p reportParams
	for _, opt := range opts {
		opt(&p)
	}

	kind, err := ResolveKind(p.kindName, p.kindColor)
	if err != nil {
		return nil, err
	}

	src, err := primary.Resolve()
	if err != nil {
		return nil, &SourceLoadError{Err: err}
	}

	files := make([]source.Source, 0, len(p.files))
	for _, ref := range p.files {
		aux, err := ref.Resolve()
		if err != nil {
			return nil, &SourceLoadError{Err: err}
		}
		files = append(files, aux)
	}

	return &Report{
		primary: src,
		span:    span,
		config:  cfg,
		code:    p.code,
		message: p.message,
		kind:    kind,
		labels:  p.labels,
		notes:   p.notes,
		helps:   p.helps,
		files:   files,
		colors:  color.NewGenerator(),
	}, nil
}

// AddLabel appends a pre-built label as-is.
func (r *Report) AddLabel(l Label) {
	r.labels = append(r.labels, l)
}

// Label constructs a label from raw bounds, appends it, and returns it.
// When no color option is given, the next value of the report's private
// generator is assigned, so auto-colored labels within one report stay
// mutually distinguishable.
func (r *Report) Label(start, end uint32, opts ...LabelOption) (Label, error) {
	l, err := NewLabel(start, end, opts...)
	if err != nil {
		return Label{}, err
	}
	if l.Color.IsZero() {
		l.Color = r.colors.Next()
	}
	r.labels = append(r.labels, l)
	return l, nil
}

// AddNote appends a free-form note rendered after the labels.
func (r *Report) AddNote(text string) {
	r.notes = append(r.notes, text)
}

// AddHelp appends a free-form help entry rendered after the notes.
func (r *Report) AddHelp(text string) {
	r.helps = append(r.helps, text)
}

// NextColor draws from the report's internal generator directly, for
// callers who want a palette-consistent color without creating a label.
func (r *Report) NextColor() color.Color {
	return r.colors.Next()
}

// Snapshot is the immutable view of a report handed to the renderer.
type Snapshot struct {
	Kind        ReportKind
	Code        string
	Message     string
	Config      Config
	PrimaryPath string
	PrimarySpan Span
	Labels      []Label
	Notes       []string
	Helps       []string
}

// Snapshot copies the report's current state. The slices are fresh;
// later appends on the report do not alter an existing snapshot.
func (r *Report) Snapshot() Snapshot {
	snap := Snapshot{
		Kind:        r.kind,
		Code:        r.code,
		Message:     r.message,
		Config:      r.config,
		PrimaryPath: r.primary.Path,
		PrimarySpan: r.span,
		Labels:      make([]Label, len(r.labels)),
		Notes:       make([]string, len(r.notes)),
		Helps:       make([]string, len(r.helps)),
	}
	copy(snap.Labels, r.labels)
	copy(snap.Notes, r.notes)
	copy(snap.Helps, r.helps)
	return snap
}

// Sources returns the ordered source list the renderer resolves label
// targets against: the primary source first, then auxiliary sources in
// attachment order, duplicates preserved.
func (r *Report) Sources() source.List {
	out := make(source.List, 0, 1+len(r.files))
	out = append(out, r.primary)
	out = append(out, r.files...)
	return out
}

// Config returns the report's rendering options.
func (r *Report) Config() Config {
	return r.config
}
