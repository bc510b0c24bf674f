package geometry

import "math"

// Point is a position on the integer turtle grid.
type Point struct {
	X, Y int
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// NormalizeHeading wraps a heading in degrees to [0, 360).
func NormalizeHeading(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -tiny + 360 rounds to 360
	if h >= 360 {
		h = 0
	}
	return h
}

// HeadingToPoint returns the clockwise turn, in [0, 360), that points a
// turtle at current facing currentHeading towards target.
// A target equal to current yields 0.
func HeadingToPoint(currentHeading float64, current, target Point) float64 {
	d := target.Sub(current)
	if d.X == 0 && d.Y == 0 {
		return 0
	}

	absolute := mathAngle(d.X, d.Y)

	// Counter-clockwise from +x becomes a clockwise delta from north.
	delta := math.Mod(absolute-90+currentHeading, 360)
	return math.Mod(360-delta, 360)
}

// mathAngle returns the angle of (dx, dy) in degrees counter-clockwise
// from the +x axis, in [0, 360). (dx, dy) must not be the zero vector.
func mathAngle(dx, dy int) float64 {
	switch {
	case dx == 0 && dy > 0:
		return 90
	case dx == 0:
		return 270
	case dy == 0 && dx > 0:
		return 0
	case dy == 0:
		return 180
	}

	q := quadrant(dx, dy)
	if q == 2 || q == 3 {
		dx, dy = -dx, -dy
	}

	arcTan := math.Atan(float64(dy)/float64(dx)) * 180 / math.Pi

	switch q {
	case 1:
		return arcTan
	case 4:
		return arcTan + 360
	default:
		return arcTan + 180
	}
}

// quadrant returns the standard quadrant (1-4) of a point with both
// coordinates non-zero.
func quadrant(dx, dy int) int {
	if dx > 0 {
		if dy > 0 {
			return 1
		}
		return 4
	}
	if dy > 0 {
		return 2
	}
	return 3
}
