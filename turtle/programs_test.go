package turtle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/turtlesoup/geometry"
	"github.com/pthm-cable/turtlesoup/waypoints"
)

func TestDrawSquare(t *testing.T) {
	rec := NewRecorder()
	DrawSquare(rec, 40)

	want := []Command{
		Forward(40), Turn(90),
		Forward(40), Turn(90),
		Forward(40), Turn(90),
		Forward(40), Turn(90),
	}
	assert.Equal(t, want, rec.Commands())
}

func TestDrawRegularPolygon(t *testing.T) {
	rec := NewRecorder()
	DrawRegularPolygon(rec, 5, 50)

	cmds := rec.Commands()
	require.Len(t, cmds, 10)
	for i := 0; i < len(cmds); i += 2 {
		assert.Equal(t, Forward(50), cmds[i])
		assert.Equal(t, KindTurn, cmds[i+1].Kind)
		assert.InDelta(t, 72.0, cmds[i+1].Value, 1e-9)
	}
}

func TestDrawPath(t *testing.T) {
	rec := NewRecorder()
	points := []geometry.Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}}
	require.NoError(t, DrawPath(rec, points, []int{20, 30}))

	cmds := rec.Commands()
	require.Len(t, cmds, 4)
	assert.Equal(t, KindTurn, cmds[0].Kind)
	assert.InDelta(t, 0.0, cmds[0].Value, 1e-9)
	assert.Equal(t, Forward(20), cmds[1])
	assert.Equal(t, KindTurn, cmds[2].Kind)
	assert.InDelta(t, 90.0, cmds[2].Value, 1e-9)
	assert.Equal(t, Forward(30), cmds[3])
}

func TestDrawPathIgnoresExtraLengths(t *testing.T) {
	rec := NewRecorder()
	require.NoError(t, DrawPath(rec, []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, []int{5, 0}))
	assert.Equal(t, 2, rec.Len())
}

func TestDrawPathLengthMismatch(t *testing.T) {
	rec := NewRecorder()
	err := DrawPath(rec, []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, []int{5})
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.Zero(t, rec.Len(), "no commands on error")
}

func TestDrawPathTooShort(t *testing.T) {
	rec := NewRecorder()
	require.NoError(t, DrawPath(rec, []geometry.Point{{X: 3, Y: 3}}, nil))
	assert.Zero(t, rec.Len())
}

func TestDrawPersonalArtEndsAtLastWaypoint(t *testing.T) {
	pen := NewPen(r2.Vec{})
	require.NoError(t, DrawPersonalArt(pen))

	trail := pen.Trail()
	require.Len(t, trail, 19)

	// Forward distances are rounded, so each stroke ends close to its
	// scaled waypoint.
	points := waypoints.PersonalArt().Points()
	for i, seg := range trail {
		want := points[i+1].Vec()
		assert.InDelta(t, want.X*ArtUnit, seg.To.X, 1.5, "segment %d", i)
		assert.InDelta(t, want.Y*ArtUnit, seg.To.Y, 1.5, "segment %d", i)
	}

	end := pen.Position()
	assert.InDelta(t, 150, end.X, 1.5)
	assert.InDelta(t, 0, end.Y, 1.5)
}

func TestLookup(t *testing.T) {
	opts := DefaultOptions()
	for _, name := range []string{"square", "polygon", "art"} {
		p, err := Lookup(name, opts)
		require.NoError(t, err, name)

		cmds, err := Record(p)
		require.NoError(t, err, name)
		assert.NotEmpty(t, cmds, name)
	}

	_, err := Lookup("spiral", opts)
	assert.ErrorIs(t, err, ErrUnknownProgram)

	_, err = Lookup("path", opts)
	assert.Error(t, err)

	opts.Sides = 2
	_, err = Lookup("polygon", opts)
	assert.Error(t, err)
}

func TestLookupPath(t *testing.T) {
	opts := DefaultOptions()
	opts.Waypoints = waypoints.PersonalArt()

	p, err := Lookup("path", opts)
	require.NoError(t, err)

	cmds, err := Record(p)
	require.NoError(t, err)
	assert.Len(t, cmds, 38)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"art", "path", "polygon", "square"}, Names())
}
