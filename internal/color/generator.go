package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Hue walk parameters. The step is the golden angle, incommensurate with
// 360, so the sequence never settles into a short repeating cycle and
// consecutive outputs stay far apart on the hue wheel.
const (
	hueSeed    = 0.0
	hueStep    = 137.50776405003785
	saturation = 0.85
	brightness = 1.0
)

// Generator produces an infinite sequence of visually distinct colors.
// Each instance owns its own hue cursor; a fresh Generator always yields
// the same sequence. Not safe for concurrent use without external locking.
type Generator struct {
	hue float64
}

// NewGenerator returns a generator positioned at the fixed seed.
func NewGenerator() *Generator {
	return &Generator{hue: hueSeed}
}

// Next advances the hue by the golden angle and returns the corresponding
// RGB color at fixed saturation and brightness.
func (g *Generator) Next() Color {
	g.hue = math.Mod(g.hue+hueStep, 360)
	r, gr, b := colorful.Hsv(g.hue, saturation, brightness).RGB255()
	return RGB(r, gr, b)
}
