// Package game runs the interactive turtle viewer: it advances the scene
// every frame and draws it with raylib.
package game

import (
	"context"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/turtlesoup/camera"
	"github.com/pthm-cable/turtlesoup/components"
	"github.com/pthm-cable/turtlesoup/config"
	"github.com/pthm-cable/turtlesoup/renderer"
	"github.com/pthm-cable/turtlesoup/scene"
	"github.com/pthm-cable/turtlesoup/turtle"
	"github.com/pthm-cable/turtlesoup/ui"
)

// fitMargin is the screen margin left around the drawing when framing it.
const fitMargin = 60

// Game holds the viewer state.
type Game struct {
	cfg      *config.Config
	scene    *scene.Scene
	camera   *camera.Camera
	renderer *renderer.Renderer
	hud      *ui.HUD
	controls *ui.Controls

	screenWidth, screenHeight float32
	speed                     float32 // commands per second shown on the slider
	wasDone                   bool
}

// NewGame records the programs and frames them. The raylib window must
// already be open.
func NewGame(ctx context.Context, cfg *config.Config, specs []scene.Spec) (*Game, error) {
	s, err := scene.New(ctx, specs, scene.Options{
		Spacing:    cfg.Gallery.Spacing,
		StepPeriod: cfg.Derived.StepPeriod,
		Paused:     cfg.Animation.StartPaused,
	})
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:          cfg,
		scene:        s,
		camera:       camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32),
		renderer:     renderer.New(cfg),
		hud:          ui.NewHUD(),
		controls:     ui.NewControls(),
		screenWidth:  cfg.Derived.ScreenW32,
		screenHeight: cfg.Derived.ScreenH32,
		speed:        float32(cfg.Animation.CommandsPerSecond),
	}
	if g.speed <= 0 {
		// Instant playback until the slider is moved
		g.speed = 60
	}
	g.fit()

	return g, nil
}

// Scene returns the scene being played.
func (g *Game) Scene() *scene.Scene {
	return g.scene
}

// Update handles input and advances playback by one frame.
func (g *Game) Update() {
	g.handleInput()
	g.scene.Advance(float64(rl.GetFrameTime()))

	done := g.scene.Done()
	if done && !g.wasDone {
		slog.Info("drawing finished")
	}
	g.wasDone = done
}

// Draw renders the frame.
func (g *Game) Draw() {
	rl.BeginDrawing()

	g.renderer.Draw(g.scene, g.camera)
	g.hud.Draw(ui.HUDData{
		Title:             g.cfg.Screen.Title,
		FPS:               rl.GetFPS(),
		Paused:            g.scene.Paused(),
		CommandsPerSecond: g.scene.CommandsPerSecond(),
		Drawings:          g.status(),
		ScreenHeight:      int32(g.screenHeight),
	})

	action, speed := g.controls.Draw(int32(g.screenWidth), g.scene.Paused(), g.speed)
	g.apply(action)
	if speed != g.speed {
		g.speed = speed
		g.scene.SetStepPeriod(1 / float64(speed))
	}

	rl.EndDrawing()
}

// Unload releases resources.
func (g *Game) Unload() {}

// apply runs a playback action from the keyboard or the controls panel.
func (g *Game) apply(action ui.Action) {
	switch action {
	case ui.ActionTogglePause:
		paused := g.scene.TogglePause()
		slog.Debug("pause toggled", "paused", paused)
	case ui.ActionStep:
		g.scene.SetPaused(true)
		g.scene.Step(1)
	case ui.ActionRestart:
		g.scene.Restart()
		g.wasDone = false
	case ui.ActionFit:
		g.fit()
	}
}

// fit frames the finished drawings.
func (g *Game) fit() {
	g.camera.FitBox(g.scene.Bounds(), fitMargin)
}

// status collects the HUD lines in gallery order.
func (g *Game) status() []ui.DrawingStatus {
	lines := make([]ui.DrawingStatus, g.scene.Len())
	g.scene.Each(func(d *components.Drawing, pen *turtle.Pen, script *components.Script) {
		pos := pen.Position()
		lines[d.Index] = ui.DrawingStatus{
			Name:     d.Name,
			Heading:  pen.Heading(),
			X:        pos.X,
			Y:        pos.Y,
			Progress: script.Progress(),
			Color:    g.renderer.Swatch(d.Index),
		}
	})
	return lines
}
