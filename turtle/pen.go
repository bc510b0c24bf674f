package turtle

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/turtlesoup/geometry"
)

// Segment is one straight piece of a pen trail.
type Segment struct {
	From, To r2.Vec
	// Index is the position of the segment in the trail.
	Index int
}

// Pen is the stateful drawing turtle. It starts at its origin facing north
// and extends its trail on every non-zero Forward.
//
// Pen is not safe for concurrent use; it represents one drawing session.
type Pen struct {
	origin  r2.Vec
	pos     r2.Vec
	heading float64
	trail   []Segment
}

// NewPen creates a pen at origin facing north.
func NewPen(origin r2.Vec) *Pen {
	return &Pen{origin: origin, pos: origin}
}

// Forward moves the pen distance units along its heading.
func (p *Pen) Forward(distance float64) {
	if distance == 0 {
		return
	}
	rad := p.heading * math.Pi / 180
	next := r2.Add(p.pos, r2.Scale(distance, r2.Vec{X: math.Sin(rad), Y: math.Cos(rad)}))
	p.trail = append(p.trail, Segment{From: p.pos, To: next, Index: len(p.trail)})
	p.pos = next
}

// Turn rotates the pen clockwise by angle degrees.
func (p *Pen) Turn(angle float64) {
	p.heading = geometry.NormalizeHeading(p.heading + angle)
}

// Apply dispatches a recorded command.
func (p *Pen) Apply(c Command) {
	c.Apply(p)
}

// Position returns the current position.
func (p *Pen) Position() r2.Vec {
	return p.pos
}

// Heading returns the current heading in degrees clockwise from north.
func (p *Pen) Heading() float64 {
	return p.heading
}

// Origin returns the starting position.
func (p *Pen) Origin() r2.Vec {
	return p.origin
}

// Trail returns the drawn segments in order.
func (p *Pen) Trail() []Segment {
	return p.trail
}

// Distance returns the total length drawn.
func (p *Pen) Distance() float64 {
	var total float64
	for _, s := range p.trail {
		total += r2.Norm(r2.Sub(s.To, s.From))
	}
	return total
}

// Bounds returns the box covering the origin and every trail point.
func (p *Pen) Bounds() r2.Box {
	box := r2.Box{Min: p.origin, Max: p.origin}
	for _, s := range p.trail {
		box = extend(box, s.From)
		box = extend(box, s.To)
	}
	return box
}

// Reset returns the pen to its origin facing north with an empty trail.
func (p *Pen) Reset() {
	p.pos = p.origin
	p.heading = 0
	p.trail = p.trail[:0]
}

func extend(b r2.Box, v r2.Vec) r2.Box {
	b.Min.X = math.Min(b.Min.X, v.X)
	b.Min.Y = math.Min(b.Min.Y, v.Y)
	b.Max.X = math.Max(b.Max.X, v.X)
	b.Max.Y = math.Max(b.Max.Y, v.Y)
	return b
}
