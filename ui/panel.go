// Package ui draws the heads-up display and playback controls over the
// turtle view.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Style holds the colours and metrics shared by the overlays.
type Style struct {
	Fill   rl.Color
	Border rl.Color
	Text   rl.Color
	Muted  rl.Color
	Track  rl.Color

	Pad      int32
	Row      int32 // Height of one text row
	Indent   int32 // Width reserved for row captions
	FontSize int32
}

// DefaultStyle matches the dark plane drawn by the renderer.
func DefaultStyle() Style {
	return Style{
		Fill:     rl.Color{R: 14, G: 17, B: 22, A: 230},
		Border:   rl.Color{R: 52, G: 60, B: 72, A: 255},
		Text:     rl.Color{R: 220, G: 224, B: 230, A: 255},
		Muted:    rl.Color{R: 130, G: 138, B: 150, A: 255},
		Track:    rl.Color{R: 36, G: 40, B: 48, A: 255},
		Pad:      10,
		Row:      16,
		Indent:   64,
		FontSize: 12,
	}
}

// panel lays out rows top to bottom inside a framed rectangle.
type panel struct {
	style Style
	x, y  int32
	width int32
}

// openPanel draws the frame and returns a cursor at its first row.
func openPanel(style Style, x, y, width, height int32) *panel {
	rl.DrawRectangle(x, y, width, height, style.Fill)
	rl.DrawRectangleLines(x, y, width, height, style.Border)
	return &panel{style: style, x: x + style.Pad, y: y + style.Pad, width: width - 2*style.Pad}
}

// title writes a drawing name after a swatch of its pen colour.
func (p *panel) title(name string, swatch rl.Color) {
	size := p.style.FontSize
	rl.DrawRectangle(p.x, p.y+2, size-2, size-2, swatch)
	rl.DrawText(name, p.x+size+4, p.y, size+2, p.style.Text)
	p.y += p.style.Row
}

// field writes a caption and its value on one row.
func (p *panel) field(caption, value string) {
	rl.DrawText(caption, p.x, p.y, p.style.FontSize, p.style.Muted)
	rl.DrawText(value, p.x+p.style.Indent, p.y, p.style.FontSize, p.style.Text)
	p.y += p.style.Row
}

// progress draws a bar filled to frac, clamped to [0, 1], tinted with fill.
func (p *panel) progress(caption string, frac float32, fill rl.Color) {
	frac = max(0, min(1, frac))
	label := fmt.Sprintf("%3.0f%%", frac*100)

	barX := p.x + p.style.Indent
	barW := p.width - p.style.Indent - rl.MeasureText(label, p.style.FontSize) - 6
	barH := p.style.FontSize - 2

	rl.DrawText(caption, p.x, p.y, p.style.FontSize, p.style.Muted)
	rl.DrawRectangle(barX, p.y+2, barW, barH, p.style.Track)
	rl.DrawRectangle(barX, p.y+2, int32(float32(barW)*frac), barH, fill)
	rl.DrawText(label, barX+barW+6, p.y, p.style.FontSize, p.style.Text)
	p.y += p.style.Row + 2
}

// panelHeight returns the frame height needed for rows rows.
func (s Style) panelHeight(rows int) int32 {
	return int32(rows)*(s.Row+1) + 2*s.Pad
}
