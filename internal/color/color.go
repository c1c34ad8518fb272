// Package color defines the terminal color model used by diagnostic labels
// and severities, plus the generator that hands out visually distinct colors.
package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the color variants.
type Kind uint8

const (
	// KindUnset is the zero value; it marks "no color chosen".
	KindUnset Kind = iota
	// KindNamed is one of the fixed palette names below.
	KindNamed
	// KindFixed is an 8-bit (0-255) terminal palette index.
	KindFixed
	// KindRGB is a 24-bit true-color triple.
	KindRGB
)

// Name enumerates the named palette entries.
type Name uint8

const (
	Primary Name = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var names = [...]string{
	Primary:       "primary",
	Black:         "black",
	Red:           "red",
	Green:         "green",
	Yellow:        "yellow",
	Blue:          "blue",
	Magenta:       "magenta",
	Cyan:          "cyan",
	White:         "white",
	BrightBlack:   "bright-black",
	BrightRed:     "bright-red",
	BrightGreen:   "bright-green",
	BrightYellow:  "bright-yellow",
	BrightBlue:    "bright-blue",
	BrightMagenta: "bright-magenta",
	BrightCyan:    "bright-cyan",
	BrightWhite:   "bright-white",
}

func (n Name) String() string {
	if int(n) < len(names) {
		return names[n]
	}
	return "unknown"
}

// Color is an immutable tagged color value. The zero value is unset.
// Colors compare structurally with == and may be used as map keys.
type Color struct {
	kind    Kind
	name    Name
	fixed   uint8
	r, g, b uint8
}

// Named returns a palette-name color.
func Named(n Name) Color {
	return Color{kind: KindNamed, name: n}
}

// Fixed returns an 8-bit indexed color.
func Fixed(idx uint8) Color {
	return Color{kind: KindFixed, fixed: idx}
}

// RGB returns a true-color value.
func RGB(r, g, b uint8) Color {
	return Color{kind: KindRGB, r: r, g: g, b: b}
}

// Kind reports which variant the color is.
func (c Color) Kind() Kind { return c.kind }

// IsZero reports whether the color is unset.
func (c Color) IsZero() bool { return c.kind == KindUnset }

// Name returns the palette name; valid only for KindNamed.
func (c Color) Name() Name { return c.name }

// Index returns the palette index; valid only for KindFixed.
func (c Color) Index() uint8 { return c.fixed }

// Values returns the RGB components; valid only for KindRGB.
func (c Color) Values() (r, g, b uint8) { return c.r, c.g, c.b }

func (c Color) String() string {
	switch c.kind {
	case KindNamed:
		return c.name.String()
	case KindFixed:
		return fmt.Sprintf("fixed(%d)", c.fixed)
	case KindRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.r, c.g, c.b)
	}
	return "unset"
}

// InvalidSpecError reports a boundary color specification that does not
// parse as a name, an 8-bit index, or a hex triple.
type InvalidSpecError struct {
	Spec string
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid color spec %q: expected a color name, an index in 0-255, or #rrggbb", e.Spec)
}

// ParseName maps a palette name to its Name value.
func ParseName(s string) (Name, bool) {
	for n, name := range names {
		if name == s {
			return Name(n), true
		}
	}
	return 0, false
}

// Parse converts a boundary spec into a Color. Accepted forms, in order:
// a palette name ("red", "bright-cyan"), a decimal palette index ("142"),
// or a hex triple ("#ff8800").
func Parse(spec string) (Color, error) {
	if n, ok := ParseName(spec); ok {
		return Named(n), nil
	}
	if idx, err := strconv.ParseUint(spec, 10, 8); err == nil {
		return Fixed(uint8(idx)), nil
	}
	if hex, ok := strings.CutPrefix(spec, "#"); ok && len(hex) == 6 {
		if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
			return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
		}
	}
	return Color{}, &InvalidSpecError{Spec: spec}
}
