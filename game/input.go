package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/turtlesoup/ui"
)

// Camera input tuning.
const (
	keyPanPixels = 10   // Screen pixels per frame while an arrow key is held
	wheelZoom    = 0.1  // Zoom change per wheel notch
	keyZoom      = 1.25 // Zoom factor per +/- press
)

// playbackKeys binds single key presses to playback actions.
var playbackKeys = []struct {
	key    int32
	action ui.Action
}{
	{rl.KeySpace, ui.ActionTogglePause},
	{rl.KeyN, ui.ActionStep},
	{rl.KeyR, ui.ActionRestart},
	{rl.KeyF, ui.ActionFit},
}

// panKeys maps held arrow keys to a screen direction.
var panKeys = []struct {
	key    int32
	dx, dy float32
}{
	{rl.KeyLeft, -1, 0},
	{rl.KeyRight, 1, 0},
	{rl.KeyUp, 0, -1},
	{rl.KeyDown, 0, 1},
}

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	for _, b := range playbackKeys {
		if rl.IsKeyPressed(b.key) {
			g.apply(b.action)
		}
	}

	g.handleCameraInput()
}

// handleResize keeps the camera viewport in sync with the window.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth, g.screenHeight = w, h
	g.camera.Resize(w, h)
}

// handleCameraInput pans with right drag or arrow keys, zooms with the
// wheel or +/-, and Home resets the view.
func (g *Game) handleCameraInput() {
	var dx, dy float32
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		// Drag the plane along with the cursor
		d := rl.GetMouseDelta()
		dx, dy = -d.X, -d.Y
	}
	for _, p := range panKeys {
		if rl.IsKeyDown(p.key) {
			dx += p.dx * keyPanPixels
			dy += p.dy * keyPanPixels
		}
	}
	if dx != 0 || dy != 0 {
		g.camera.Pan(dx, dy)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.ZoomBy(1 + wheel*wheelZoom)
	}
	switch {
	case rl.IsKeyPressed(rl.KeyEqual), rl.IsKeyPressed(rl.KeyKpAdd):
		g.camera.ZoomBy(keyZoom)
	case rl.IsKeyPressed(rl.KeyMinus), rl.IsKeyPressed(rl.KeyKpSubtract):
		g.camera.ZoomBy(1 / keyZoom)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}
