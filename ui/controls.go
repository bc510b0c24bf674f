package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Action is a playback request from the controls panel.
type Action int

const (
	ActionNone Action = iota
	ActionTogglePause
	ActionStep
	ActionRestart
	ActionFit
)

// Controls renders the raygui playback panel in the top right corner.
type Controls struct {
	width int32
}

// NewControls creates the playback panel.
func NewControls() *Controls {
	return &Controls{width: 260}
}

// Draw renders the buttons and the speed slider. It returns the action the
// user clicked and the possibly changed speed in commands per second.
func (c *Controls) Draw(screenWidth int32, paused bool, speed float32) (Action, float32) {
	x := float32(screenWidth - c.width - 10)
	y := float32(10)
	action := ActionNone

	pauseText := "Pause"
	if paused {
		pauseText = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 60, Height: 26}, pauseText) {
		action = ActionTogglePause
	}
	if gui.Button(rl.Rectangle{X: x + 66, Y: y, Width: 60, Height: 26}, "Step") {
		action = ActionStep
	}
	if gui.Button(rl.Rectangle{X: x + 132, Y: y, Width: 60, Height: 26}, "Restart") {
		action = ActionRestart
	}
	if gui.Button(rl.Rectangle{X: x + 198, Y: y, Width: 60, Height: 26}, "Fit") {
		action = ActionFit
	}

	newSpeed := gui.SliderBar(
		rl.Rectangle{X: x + 40, Y: y + 36, Width: float32(c.width) - 80, Height: 16},
		"1", "60",
		speed, 1, 60,
	)

	return action, newSpeed
}
