// Package palette picks trail colours: a hue sweep across a trail so the
// order of strokes stays readable in the finished picture.
package palette

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Gradient sweeps hue from Start across Span degrees.
type Gradient struct {
	Start      float64 // Hue of the first segment, degrees
	Span       float64 // Hue change from first to last segment, degrees
	Saturation float64
	Value      float64
}

// NewGradient creates a gradient with vivid defaults.
func NewGradient(start, span float64) Gradient {
	return Gradient{Start: start, Span: span, Saturation: 0.75, Value: 0.95}
}

// At returns the colour of segment i out of n.
func (g Gradient) At(i, n int) colorful.Color {
	t := 0.0
	if n > 1 {
		t = float64(i) / float64(n-1)
	}
	hue := math.Mod(g.Start+g.Span*t, 360)
	if hue < 0 {
		hue += 360
	}
	return colorful.Hsv(hue, g.Saturation, g.Value).Clamped()
}

// RGBA returns segment i out of n as 8-bit channels.
func (g Gradient) RGBA(i, n int) (r, gr, b, a uint8) {
	r, gr, b = g.At(i, n).RGB255()
	return r, gr, b, 255
}

// Offset returns a gradient whose start hue is rotated by a golden-angle
// step per index, so neighbouring drawings get distinct colours.
func (g Gradient) Offset(index int) Gradient {
	g.Start = math.Mod(g.Start+137.508*float64(index), 360)
	return g
}
