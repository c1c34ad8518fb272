package diagfmt

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"flare/internal/color"
)

// styleSheet paints text with the colors a report carries. When disabled
// it passes text through untouched, so plain sinks and tests see the
// exact layout without escape codes.
type styleSheet struct {
	enabled bool
	ren     *lipgloss.Renderer
}

// newStyleSheet builds a sheet for the sink. Generic sinks get a fixed
// true-color profile so output does not depend on the environment;
// terminal sinks keep lipgloss's own tty and profile detection, which
// downgrades or drops color for pipes and dumb terminals.
func newStyleSheet(w io.Writer, enabled, forTerminal bool) styleSheet {
	if !enabled {
		return styleSheet{}
	}
	ren := lipgloss.NewRenderer(w)
	if !forTerminal {
		ren.SetColorProfile(termenv.TrueColor)
	}
	return styleSheet{enabled: true, ren: ren}
}

// paint renders text in the given color. Unset and primary colors mean
// "terminal default" and leave the text alone.
func (s styleSheet) paint(c color.Color, text string) string {
	if !s.enabled || c.IsZero() {
		return text
	}
	if c.Kind() == color.KindNamed && c.Name() == color.Primary {
		return text
	}
	return s.ren.NewStyle().Foreground(terminalColor(c)).Render(text)
}

// terminalColor maps the diagnostic color model onto lipgloss colors.
// Named palette entries after Primary line up with ANSI 0-15 in order.
func terminalColor(c color.Color) lipgloss.TerminalColor {
	switch c.Kind() {
	case color.KindNamed:
		return lipgloss.Color(strconv.Itoa(int(c.Name()) - 1))
	case color.KindFixed:
		return lipgloss.Color(strconv.Itoa(int(c.Index())))
	case color.KindRGB:
		r, g, b := c.Values()
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
	}
	return lipgloss.NoColor{}
}
