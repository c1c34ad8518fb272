package diagfmt

import (
	"encoding/json"
	"io"

	"flare/internal/diag"
	"flare/internal/source"
)

// LocationJSON pins a span to a path with resolved line/column positions.
type LocationJSON struct {
	Path      string `json:"path"`
	Start     uint32 `json:"start"`
	End       uint32 `json:"end"`
	StartLine uint32 `json:"start_line"`
	StartCol  uint32 `json:"start_col"`
	EndLine   uint32 `json:"end_line"`
	EndCol    uint32 `json:"end_col"`
}

// LabelJSON is one annotation in the JSON output.
type LabelJSON struct {
	Location LocationJSON `json:"location"`
	Message  string       `json:"message,omitempty"`
	Color    string       `json:"color,omitempty"`
	Order    int32        `json:"order,omitempty"`
	Priority int32        `json:"priority,omitempty"`
}

// ReportJSON is the machine-readable form of a report snapshot.
type ReportJSON struct {
	Kind     string       `json:"kind"`
	Code     string       `json:"code,omitempty"`
	Message  string       `json:"message,omitempty"`
	Location LocationJSON `json:"location"`
	Labels   []LabelJSON  `json:"labels,omitempty"`
	Notes    []string     `json:"notes,omitempty"`
	Helps    []string     `json:"helps,omitempty"`
	Sources  []string     `json:"sources"`
}

// WriteJSON emits the report snapshot as indented JSON. Label targets
// resolve against the source list exactly as in the pretty renderer; an
// unknown target fails with *UnknownTargetError.
func WriteJSON(w io.Writer, snap diag.Snapshot, srcs source.List) error {
	primary, ok := srcs.Lookup(snap.PrimaryPath)
	if !ok {
		return &UnknownTargetError{Path: snap.PrimaryPath}
	}

	out := ReportJSON{
		Kind:     snap.Kind.String(),
		Code:     snap.Code,
		Message:  snap.Message,
		Location: locationJSON(primary, snap.PrimarySpan, snap.Config.IndexType),
		Notes:    snap.Notes,
		Helps:    snap.Helps,
		Sources:  srcs.Paths(),
	}

	for _, lab := range snap.Labels {
		path := lab.ResolveTarget(snap.PrimaryPath)
		src, ok := srcs.Lookup(path)
		if !ok {
			return &UnknownTargetError{Path: path}
		}
		lj := LabelJSON{
			Location: locationJSON(src, lab.Span, snap.Config.IndexType),
			Message:  lab.Message,
			Order:    lab.Order,
			Priority: lab.Priority,
		}
		if !lab.Color.IsZero() {
			lj.Color = lab.Color.String()
		}
		out.Labels = append(out.Labels, lj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return &IOError{Err: err}
	}
	return nil
}

func locationJSON(src source.Source, span diag.Span, unit diag.IndexType) LocationJSON {
	ix := source.NewLineIndex(src.Text)
	start := ix.LineCol(toByteOffset(src.Text, span.Start, unit))
	end := ix.LineCol(toByteOffset(src.Text, span.End, unit))
	return LocationJSON{
		Path:      src.Path,
		Start:     span.Start,
		End:       span.End,
		StartLine: start.Line,
		StartCol:  start.Col,
		EndLine:   end.Line,
		EndCol:    end.Col,
	}
}
