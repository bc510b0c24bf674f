// Package camera provides a 2D camera system for viewport control over the
// turtle plane.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Camera controls the viewport into the turtle plane.
// World y grows north (up the screen); screen y grows down.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom level (1.0 = 1 pixel per world unit)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the world origin with 1:1 zoom.
func New(viewportW, viewportH float32) *Camera {
	return &Camera{
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   0.05,
		MaxZoom:   20.0,
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 - (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y - (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// VecToScreen converts a world vector to screen coordinates.
func (c *Camera) VecToScreen(v r2.Vec) (sx, sy float32) {
	return c.WorldToScreen(float32(v.X), float32(v.Y))
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// SegmentVisible reports whether any part of the segment from a to b could
// be on screen, testing the circle through both ends.
func (c *Camera) SegmentVisible(a, b r2.Vec) bool {
	mid := r2.Scale(0.5, r2.Add(a, b))
	radius := 0.5 * r2.Norm(r2.Sub(b, a))
	return c.IsVisible(float32(mid.X), float32(mid.Y), float32(radius))
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	c.X += dx / c.Zoom
	c.Y -= dy / c.Zoom
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// FitBox centres the camera on box and zooms so it fills the viewport,
// leaving margin pixels on every side.
func (c *Camera) FitBox(box r2.Box, margin float32) {
	c.X = float32((box.Min.X + box.Max.X) / 2)
	c.Y = float32((box.Min.Y + box.Max.Y) / 2)

	w := float32(box.Max.X - box.Min.X)
	h := float32(box.Max.Y - box.Min.Y)
	availW := c.ViewportW - 2*margin
	availH := c.ViewportH - 2*margin
	if availW <= 0 || availH <= 0 {
		c.SetZoom(1)
		return
	}

	zoom := float32(math.MaxFloat32)
	if w > 0 {
		zoom = availW / w
	}
	if h > 0 && availH/h < zoom {
		zoom = availH / h
	}
	if zoom == float32(math.MaxFloat32) {
		zoom = 1
	}
	c.SetZoom(zoom)
}

// Reset returns the camera to the origin at 1:1 zoom.
func (c *Camera) Reset() {
	c.X = 0
	c.Y = 0
	c.Zoom = 1.0
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	minX = c.X - halfW
	maxX = c.X + halfW
	minY = c.Y - halfH
	maxY = c.Y + halfH
	return
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
