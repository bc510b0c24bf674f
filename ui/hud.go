package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DrawingStatus is the per-turtle block of the HUD.
type DrawingStatus struct {
	Name     string
	Heading  float64
	X, Y     float64
	Progress float32
	Color    rl.Color // Pen colour of the first stroke
}

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title             string
	FPS               int32
	Paused            bool
	CommandsPerSecond float64
	Drawings          []DrawingStatus
	ScreenHeight      int32
}

// HUD renders the title, playback state and one block per drawing.
type HUD struct {
	style Style
	width int32
}

// NewHUD creates a HUD with the default style.
func NewHUD() *HUD {
	return &HUD{style: DefaultStyle(), width: 260}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	pad := h.style.Pad

	rl.DrawText(data.Title, pad, pad, 20, h.style.Text)

	speed := "instant"
	if data.CommandsPerSecond > 0 {
		speed = fmt.Sprintf("%.1f cmd/s", data.CommandsPerSecond)
	}
	rl.DrawText(fmt.Sprintf("FPS: %d | Speed: %s", data.FPS, speed), pad, 35, 16, h.style.Muted)

	state, color := "Drawing", rl.Green
	if data.Paused {
		state, color = "PAUSED", rl.Yellow
	}
	rl.DrawText(state, pad, 55, 16, color)

	// Drawing blocks, bottom left
	height := h.style.panelHeight(3 * len(data.Drawings))
	top := data.ScreenHeight - height - pad
	p := openPanel(h.style, pad, top, h.width, height)
	for _, d := range data.Drawings {
		p.title(d.Name, d.Color)
		p.field("heading", fmt.Sprintf("%.1f deg at (%.0f, %.0f)", d.Heading, d.X, d.Y))
		p.progress("progress", d.Progress, d.Color)
	}

	rl.DrawText("[Space] pause  [N] step  [R] restart  [F] fit  drag/scroll to pan/zoom",
		pad, top-20, 12, h.style.Muted)
}
