// Package diagfmt lays out finished diagnostic reports as human-readable,
// optionally colorized terminal text, and as machine-readable JSON.
//
// It consumes the snapshot plus ordered source list handed over by
// internal/diag and owns every layout decision: line selection, underline
// drawing, tab expansion, glyph choice, and column computation under the
// configured index unit.
package diagfmt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"flare/internal/diag"
	"flare/internal/source"
)

// IOError reports a sink write or flush failure during rendering.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return "render: sink write failed: " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// UnknownTargetError reports a label whose resolved target path has no
// entry in the report's source list.
type UnknownTargetError struct {
	Path string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("render: label targets unknown source %q", e.Path)
}

// glyphSet holds the drawing characters for one char set.
type glyphSet struct {
	vbar      string
	hbar      string
	open      string
	foot      string
	underline string
	dots      string
}

var (
	unicodeGlyphs = glyphSet{vbar: "│", hbar: "─", open: "╭─[", foot: "╯", underline: "─", dots: "⋮"}
	asciiGlyphs   = glyphSet{vbar: "|", hbar: "-", open: ",-[", foot: "'", underline: "^", dots: ":"}
)

func glyphsFor(cs diag.CharSet) glyphSet {
	if cs == diag.CharSetAscii {
		return asciiGlyphs
	}
	return unicodeGlyphs
}

// Render writes the laid-out report to a generic sink. Color, when the
// config asks for it, is emitted unconditionally at a fixed profile.
func Render(w io.Writer, snap diag.Snapshot, srcs source.List) error {
	return render(w, snap, srcs, false)
}

// RenderTerminal is the interactive-terminal mode: the same layout after
// a sink-adaptation step that negotiates the color profile with the
// terminal, dropping color for pipes and dumb terminals.
func RenderTerminal(f *os.File, snap diag.Snapshot, srcs source.List) error {
	return render(f, snap, srcs, true)
}

// sink buffers output and latches the first write error so layout code
// stays free of error plumbing.
type sink struct {
	w   *bufio.Writer
	err error
}

func (s *sink) line(text string) {
	if s.err != nil {
		return
	}
	if _, err := s.w.WriteString(text); err != nil {
		s.err = err
		return
	}
	s.err = s.w.WriteByte('\n')
}

func (s *sink) flush() error {
	if s.err == nil {
		s.err = s.w.Flush()
	}
	if s.err != nil {
		return &IOError{Err: s.err}
	}
	return nil
}

// boundLabel is a label bound to its resolved source for layout.
type boundLabel struct {
	lab     diag.Label
	path    string
	text    string
	ix      source.LineIndex
	start   uint32 // byte offset
	end     uint32
	startLC source.LineCol
	endLC   source.LineCol
}

type labelGroup struct {
	path   string
	text   string
	ix     source.LineIndex
	labels []boundLabel
}

func render(w io.Writer, snap diag.Snapshot, srcs source.List, forTerminal bool) error {
	st := newStyleSheet(w, snap.Config.Color, forTerminal)
	g := glyphsFor(snap.Config.CharSet)
	out := &sink{w: bufio.NewWriter(w)}

	groups, err := bindLabels(snap, srcs)
	if err != nil {
		return err
	}

	out.line(header(snap, st))

	gw := gutterWidth(snap, srcs, groups)
	pad := strings.Repeat(" ", gw+2)

	for _, grp := range groups {
		renderGroup(out, snap, st, g, grp, gw, pad)
	}

	for _, note := range snap.Notes {
		out.line(pad + "= note: " + note)
	}
	for _, help := range snap.Helps {
		out.line(pad + "= help: " + help)
	}

	if !snap.Config.Compact {
		out.line(strings.Repeat(g.hbar, gw+2) + g.foot)
	}
	return out.flush()
}

// header is the severity banner: kind, optional bracketed code, message.
func header(snap diag.Snapshot, st styleSheet) string {
	head := snap.Kind.String()
	if snap.Code != "" {
		head += "[" + snap.Code + "]"
	}
	head = st.paint(snap.Kind.Color(), head)
	if snap.Message != "" {
		head += ": " + snap.Message
	}
	return head
}

// bindLabels resolves every label target against the source list and
// groups labels by resolved path, the primary source's group first.
// An unset target resolves to the primary path, computed here per render
// without touching the label.
func bindLabels(snap diag.Snapshot, srcs source.List) ([]labelGroup, error) {
	indexes := make(map[string]source.LineIndex)
	lineIndex := func(path, text string) source.LineIndex {
		ix, ok := indexes[path]
		if !ok {
			ix = source.NewLineIndex(text)
			indexes[path] = ix
		}
		return ix
	}

	primary, ok := srcs.Lookup(snap.PrimaryPath)
	if !ok {
		return nil, &UnknownTargetError{Path: snap.PrimaryPath}
	}

	groups := []labelGroup{{
		path: primary.Path,
		text: primary.Text,
		ix:   lineIndex(primary.Path, primary.Text),
	}}
	groupIdx := map[string]int{primary.Path: 0}

	for _, lab := range snap.Labels {
		path := lab.ResolveTarget(snap.PrimaryPath)
		src, ok := srcs.Lookup(path)
		if !ok {
			return nil, &UnknownTargetError{Path: path}
		}
		idx, ok := groupIdx[path]
		if !ok {
			idx = len(groups)
			groupIdx[path] = idx
			groups = append(groups, labelGroup{
				path: src.Path,
				text: src.Text,
				ix:   lineIndex(src.Path, src.Text),
			})
		}
		grp := &groups[idx]

		start := toByteOffset(src.Text, lab.Span.Start, snap.Config.IndexType)
		end := toByteOffset(src.Text, lab.Span.End, snap.Config.IndexType)
		grp.labels = append(grp.labels, boundLabel{
			lab:     lab,
			path:    path,
			text:    src.Text,
			ix:      grp.ix,
			start:   start,
			end:     end,
			startLC: grp.ix.LineCol(start),
			endLC:   grp.ix.LineCol(end),
		})
	}

	for i := range groups {
		labels := groups[i].labels
		sort.SliceStable(labels, func(a, b int) bool {
			if labels[a].lab.Order != labels[b].lab.Order {
				return labels[a].lab.Order < labels[b].lab.Order
			}
			return labels[a].start < labels[b].start
		})
	}
	return groups, nil
}

// gutterWidth is the number of digits of the largest line number shown.
func gutterWidth(snap diag.Snapshot, srcs source.List, groups []labelGroup) int {
	maxLine := uint32(1)
	if primary, ok := srcs.Lookup(snap.PrimaryPath); ok {
		ix := source.NewLineIndex(primary.Text)
		off := toByteOffset(primary.Text, snap.PrimarySpan.Start, snap.Config.IndexType)
		if lc := ix.LineCol(off); lc.Line > maxLine {
			maxLine = lc.Line
		}
	}
	for _, grp := range groups {
		for _, bl := range grp.labels {
			if bl.endLC.Line > maxLine {
				maxLine = bl.endLC.Line
			}
		}
	}
	return len(strconv.FormatUint(uint64(maxLine), 10))
}

func renderGroup(out *sink, snap diag.Snapshot, st styleSheet, g glyphSet, grp labelGroup, gw int, pad string) {
	cfg := snap.Config

	// Location line: the primary group shows the report's anchor span,
	// other groups the position of their first label.
	loc := source.LineCol{Line: 1, Col: 1}
	if grp.path == snap.PrimaryPath {
		off := toByteOffset(grp.text, snap.PrimarySpan.Start, cfg.IndexType)
		loc = grp.ix.LineCol(off)
	} else if len(grp.labels) > 0 {
		loc = grp.labels[0].startLC
	}
	out.line(fmt.Sprintf("%s%s %s:%d:%d ]", pad, g.open, grp.path, loc.Line, loc.Col))

	if !cfg.Compact {
		out.line(pad + g.vbar)
	}

	for i, bl := range grp.labels {
		renderLabel(out, cfg, st, g, bl, gw, pad)
		if cfg.CrossGap && !cfg.Compact && i < len(grp.labels)-1 {
			out.line(pad + g.vbar)
		}
	}
}

func renderLabel(out *sink, cfg diag.Config, st styleSheet, g glyphSet, bl boundLabel, gw int, pad string) {
	if bl.endLC.Line == bl.startLC.Line {
		renderSourceLine(out, cfg, g, bl, bl.startLC.Line, gw)
		marker := markerRow(cfg, st, g, bl, bl.startLC.Line, bl.lab.Message, pad)
		if marker != "" {
			out.line(marker)
		}
		return
	}

	// Multi-line label: show the first and last covered lines, eliding
	// the middle. Without multiline arrows only the first line is drawn.
	msgFirst, msgLast := "", bl.lab.Message
	if cfg.LabelAttach == diag.AttachStart {
		msgFirst, msgLast = bl.lab.Message, ""
	}

	renderSourceLine(out, cfg, g, bl, bl.startLC.Line, gw)
	if !cfg.MultilineArrows {
		if marker := markerRow(cfg, st, g, bl, bl.startLC.Line, bl.lab.Message, pad); marker != "" {
			out.line(marker)
		}
		return
	}
	if marker := markerRow(cfg, st, g, bl, bl.startLC.Line, msgFirst, pad); marker != "" {
		out.line(marker)
	}
	if bl.endLC.Line > bl.startLC.Line+1 {
		out.line(pad + g.dots)
	}
	renderSourceLine(out, cfg, g, bl, bl.endLC.Line, gw)
	if marker := markerRow(cfg, st, g, bl, bl.endLC.Line, msgLast, pad); marker != "" {
		out.line(marker)
	}
}

func renderSourceLine(out *sink, cfg diag.Config, g glyphSet, bl boundLabel, line uint32, gw int) {
	start, end, ok := bl.ix.LineBounds(line)
	if !ok {
		return
	}
	text := expandTabs(bl.text[start:end], cfg.TabWidth)
	out.line(fmt.Sprintf(" %*d %s %s", gw, line, g.vbar, text))
}

// markerRow draws the underline row beneath one source line, with the
// label message attached after the carets. Returns "" when there is
// nothing to draw.
func markerRow(cfg diag.Config, st styleSheet, g glyphSet, bl boundLabel, line uint32, msg string, pad string) string {
	lineStart, lineEnd, ok := bl.ix.LineBounds(line)
	if !ok {
		return ""
	}
	if !cfg.Underlines && msg == "" {
		return ""
	}

	// Clamp the covered byte range onto this line.
	from := max(bl.start, lineStart)
	to := min(bl.end, lineEnd)
	if from > lineEnd {
		from = lineEnd
	}
	if to < from {
		to = from
	}

	prefix := runewidth.StringWidth(expandTabs(bl.text[lineStart:from], cfg.TabWidth))
	covered := runewidth.StringWidth(expandTabs(bl.text[lineStart:to], cfg.TabWidth)) - prefix
	if covered < 1 {
		covered = 1
	}

	row := pad + g.vbar + " " + strings.Repeat(" ", prefix)
	if cfg.Underlines {
		row += st.paint(bl.lab.Color, strings.Repeat(g.underline, covered))
	} else {
		row += strings.Repeat(" ", covered)
	}
	if msg != "" {
		row += " " + msg
	}
	return row
}

// toByteOffset converts a span offset into a byte offset under the
// configured index unit. Rune offsets past the end clamp to the text
// length; the model does not length-check spans, so the renderer has to
// stay tolerant here.
func toByteOffset(text string, off uint32, unit diag.IndexType) uint32 {
	if unit == diag.IndexByte {
		if off > uint32(len(text)) {
			return uint32(len(text))
		}
		return off
	}
	var runes uint32
	for i := range text {
		if runes == off {
			return uint32(i)
		}
		runes++
	}
	return uint32(len(text))
}

// expandTabs rewrites tabs to spaces at the given tab stops, tracking
// display columns so multi-width runes keep the stops aligned.
func expandTabs(s string, tw int) string {
	if tw <= 0 || !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tw - col%tw
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}
