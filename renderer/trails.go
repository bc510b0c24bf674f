// Package renderer draws turtle trails with raylib.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/turtlesoup/camera"
	"github.com/pthm-cable/turtlesoup/components"
	"github.com/pthm-cable/turtlesoup/config"
	"github.com/pthm-cable/turtlesoup/palette"
	"github.com/pthm-cable/turtlesoup/scene"
	"github.com/pthm-cable/turtlesoup/turtle"
)

// Colors used for the plane.
var (
	Background = rl.Color{R: 18, G: 22, B: 28, A: 255}
	GridColor  = rl.Color{R: 34, G: 40, B: 48, A: 255}
	AxisColor  = rl.Color{R: 60, G: 70, B: 84, A: 255}
	LabelColor = rl.Color{R: 150, G: 160, B: 170, A: 255}
)

// Renderer draws a scene through a camera.
type Renderer struct {
	gradient    palette.Gradient
	thickness   float32
	markerSize  float32
	gridSpacing float32
}

// New creates a renderer from the turtle and screen settings.
func New(cfg *config.Config) *Renderer {
	return &Renderer{
		gradient:    palette.NewGradient(cfg.Turtle.HueStart, cfg.Turtle.HueSpan),
		thickness:   float32(cfg.Turtle.LineThickness),
		markerSize:  float32(cfg.Turtle.MarkerSize),
		gridSpacing: float32(cfg.Screen.GridSpacing),
	}
}

// Draw renders the grid, every trail and every turtle. It must be called
// between rl.BeginDrawing and rl.EndDrawing.
func (r *Renderer) Draw(s *scene.Scene, cam *camera.Camera) {
	rl.ClearBackground(Background)
	r.drawGrid(cam)

	s.Each(func(d *components.Drawing, pen *turtle.Pen, script *components.Script) {
		r.drawTrail(d, pen, script, cam)
		r.drawMarker(pen, cam)

		ox, oy := cam.VecToScreen(pen.Origin())
		rl.DrawText(d.Name, int32(ox)-rl.MeasureText(d.Name, 14)/2, int32(oy)+8, 14, LabelColor)
	})
}

// Swatch returns the colour of the first stroke of the drawing at index.
func (r *Renderer) Swatch(index int) rl.Color {
	cr, cg, cb, ca := r.gradient.Offset(index).RGBA(0, 1)
	return rl.NewColor(cr, cg, cb, ca)
}

// drawGrid draws grid lines every gridSpacing world units across the view.
func (r *Renderer) drawGrid(cam *camera.Camera) {
	if r.gridSpacing <= 0 || r.gridSpacing*cam.Zoom < 6 {
		return
	}
	minX, minY, maxX, maxY := cam.VisibleWorldBounds()

	for x := float32(math.Floor(float64(minX/r.gridSpacing))) * r.gridSpacing; x <= maxX; x += r.gridSpacing {
		sx, _ := cam.WorldToScreen(x, 0)
		c := GridColor
		if x == 0 {
			c = AxisColor
		}
		rl.DrawLine(int32(sx), 0, int32(sx), int32(cam.ViewportH), c)
	}
	for y := float32(math.Floor(float64(minY/r.gridSpacing))) * r.gridSpacing; y <= maxY; y += r.gridSpacing {
		_, sy := cam.WorldToScreen(0, y)
		c := GridColor
		if y == 0 {
			c = AxisColor
		}
		rl.DrawLine(0, int32(sy), int32(cam.ViewportW), int32(sy), c)
	}
}

func (r *Renderer) drawTrail(d *components.Drawing, pen *turtle.Pen, script *components.Script, cam *camera.Camera) {
	n := script.Strokes()
	g := r.gradient.Offset(d.Index)

	for _, seg := range pen.Trail() {
		if !cam.SegmentVisible(seg.From, seg.To) {
			continue
		}
		x1, y1 := cam.VecToScreen(seg.From)
		x2, y2 := cam.VecToScreen(seg.To)
		cr, cg, cb, ca := g.RGBA(seg.Index, n)
		rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), r.thickness, rl.NewColor(cr, cg, cb, ca))
	}
}

// drawMarker draws the turtle as a triangle pointing along its heading.
func (r *Renderer) drawMarker(pen *turtle.Pen, cam *camera.Camera) {
	x, y := cam.VecToScreen(pen.Position())
	tip, left, right := markerTriangle(x, y, pen.Heading(), r.markerSize)
	rl.DrawTriangle(tip, left, right, rl.RayWhite)
}

// markerTriangle returns the screen vertices of a turtle marker in the
// counter-clockwise order raylib expects.
func markerTriangle(x, y float32, heading float64, size float32) (tip, left, right rl.Vector2) {
	rad := heading * math.Pi / 180
	// Screen y grows down, so north is -y.
	dx, dy := float32(math.Sin(rad)), float32(-math.Cos(rad))
	px, py := -dy, dx

	bx, by := x-dx*size*0.5, y-dy*size*0.5
	tip = rl.NewVector2(x+dx*size, y+dy*size)
	left = rl.NewVector2(bx-px*size*0.5, by-py*size*0.5)
	right = rl.NewVector2(bx+px*size*0.5, by+py*size*0.5)
	return tip, left, right
}
