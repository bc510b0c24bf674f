package turtle

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/pthm-cable/turtlesoup/geometry"
	"github.com/pthm-cable/turtlesoup/waypoints"
)

// Errors returned by drawing programs.
var (
	ErrLengthMismatch = errors.New("fewer segment lengths than path segments")
	ErrUnknownProgram = errors.New("unknown program")
)

// ArtUnit is the forward distance of one grid unit in the demo artwork.
const ArtUnit = 25

// DrawSquare draws a square by turning right after every side.
func DrawSquare(t Turtle, sideLength float64) {
	for i := 0; i < 4; i++ {
		t.Forward(sideLength)
		t.Turn(90)
	}
}

// DrawRegularPolygon draws a regular polygon using only right-hand turns,
// starting at the turtle's position. sides must be > 2.
func DrawRegularPolygon(t Turtle, sides int, sideLength float64) {
	turn := geometry.ExteriorAngle(sides)
	slog.Debug("regular polygon", "sides", sides, "turn", turn)

	for i := 0; i < sides; i++ {
		t.Forward(sideLength)
		t.Turn(turn)
	}
}

// DrawPath walks the waypoint path, turning towards each next point and
// then moving that segment's length. The turtle must start at points[0]
// facing north. Lengths past the last segment are ignored.
func DrawPath(t Turtle, points []geometry.Point, segmentLengths []int) error {
	turns := geometry.HeadingsAlongPath(points)
	if len(segmentLengths) < len(turns) {
		return fmt.Errorf("%w: %d segments, %d lengths", ErrLengthMismatch, len(turns), len(segmentLengths))
	}

	for i, turn := range turns {
		t.Turn(turn)
		t.Forward(float64(segmentLengths[i]))
	}
	return nil
}

// DrawTable walks a waypoint table with its forward distances.
func DrawTable(t Turtle, table *waypoints.Table, unit float64) error {
	return DrawPath(t, table.Points(), table.Lengths(unit))
}

// DrawPersonalArt draws the built-in demo artwork.
func DrawPersonalArt(t Turtle) error {
	return DrawTable(t, waypoints.PersonalArt(), ArtUnit)
}

// Program draws something on a turtle.
type Program func(Turtle) error

// Options parameterise the named programs.
type Options struct {
	SideLength float64
	Sides      int
	Unit       float64
	// Waypoints is the table used by the "path" program.
	Waypoints *waypoints.Table
}

// DefaultOptions returns the parameters used by the demo.
func DefaultOptions() Options {
	return Options{
		SideLength: 50,
		Sides:      5,
		Unit:       ArtUnit,
	}
}

var registry = map[string]func(Options) (Program, error){
	"square": func(o Options) (Program, error) {
		return func(t Turtle) error {
			DrawSquare(t, o.SideLength)
			return nil
		}, nil
	},
	"polygon": func(o Options) (Program, error) {
		if o.Sides <= 2 {
			return nil, fmt.Errorf("polygon needs more than 2 sides, got %d", o.Sides)
		}
		return func(t Turtle) error {
			DrawRegularPolygon(t, o.Sides, o.SideLength)
			return nil
		}, nil
	},
	"art": func(o Options) (Program, error) {
		return DrawPersonalArt, nil
	},
	"path": func(o Options) (Program, error) {
		if o.Waypoints == nil {
			return nil, errors.New("path program needs a waypoint table")
		}
		return func(t Turtle) error {
			return DrawTable(t, o.Waypoints, o.Unit)
		}, nil
	},
}

// Lookup returns the named program bound to opts.
func Lookup(name string, opts Options) (Program, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProgram, name)
	}
	return build(opts)
}

// Names returns the registered program names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Record runs p against a Recorder and returns the commands it issued.
func Record(p Program) ([]Command, error) {
	rec := NewRecorder()
	if err := p(rec); err != nil {
		return nil, err
	}
	return rec.Commands(), nil
}
