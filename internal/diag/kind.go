package diag

import (
	"fmt"

	"flare/internal/color"
)

type kindTag uint8

const (
	tagError kindTag = iota
	tagWarning
	tagAdvice
	tagCustom
)

// ReportKind is the severity of a report: one of the three built-in
// kinds or a named custom kind carrying its own color. The name/color
// coupling is validated once, in ResolveKind; a ReportKind value is
// always well formed.
type ReportKind struct {
	tag   kindTag
	name  string
	color color.Color
}

// The three built-in severities. KindError is the default.
var (
	KindError   = ReportKind{tag: tagError}
	KindWarning = ReportKind{tag: tagWarning}
	KindAdvice  = ReportKind{tag: tagAdvice}
)

// IsCustom reports whether the kind is a named custom severity.
func (k ReportKind) IsCustom() bool { return k.tag == tagCustom }

func (k ReportKind) String() string {
	switch k.tag {
	case tagError:
		return "Error"
	case tagWarning:
		return "Warning"
	case tagAdvice:
		return "Advice"
	}
	return k.name
}

// Color returns the display color for the severity header: fixed colors
// for built-in kinds, the declared color for custom kinds.
func (k ReportKind) Color() color.Color {
	switch k.tag {
	case tagError:
		return color.Named(color.Red)
	case tagWarning:
		return color.Named(color.Yellow)
	case tagAdvice:
		return color.Fixed(147)
	}
	return k.color
}

// InvalidKindError reports severity inputs that violate the name/color
// coupling rules.
type InvalidKindError struct {
	Reason string
}

func (e *InvalidKindError) Error() string {
	return "invalid report kind: " + e.Reason
}

func builtinKind(name string) (ReportKind, bool) {
	switch name {
	case "error":
		return KindError, true
	case "warning", "warn":
		return KindWarning, true
	case "advice":
		return KindAdvice, true
	}
	return ReportKind{}, false
}

// ResolveKind validates the raw (name, color) pair supplied when a
// report's severity is declared. A nil name means "not given"; a zero
// color means "not given". "warn" is accepted as an alias for Warning.
// Exactly one color is required if and only if the kind is custom.
func ResolveKind(name *string, c color.Color) (ReportKind, error) {
	switch {
	case name == nil && c.IsZero():
		return KindError, nil
	case name == nil:
		return ReportKind{}, &InvalidKindError{Reason: "color specified without a name"}
	}

	builtin, isBuiltin := builtinKind(*name)
	switch {
	case c.IsZero() && isBuiltin:
		return builtin, nil
	case c.IsZero():
		return ReportKind{}, &InvalidKindError{Reason: "must specify a color for custom report kind"}
	case *name == "":
		return ReportKind{}, &InvalidKindError{Reason: "custom kind name cannot be empty"}
	case isBuiltin:
		return ReportKind{}, &InvalidKindError{Reason: fmt.Sprintf("cannot set custom color for %s", *name)}
	}
	return ReportKind{tag: tagCustom, name: *name, color: c}, nil
}
