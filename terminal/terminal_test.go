package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/turtlesoup/components"
	"github.com/pthm-cable/turtlesoup/palette"
	"github.com/pthm-cable/turtlesoup/scene"
	"github.com/pthm-cable/turtlesoup/turtle"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func squareScene(t *testing.T) *scene.Scene {
	t.Helper()
	s, err := scene.New(context.Background(), []scene.Spec{{
		Name: "square",
		Program: func(tt turtle.Turtle) error {
			turtle.DrawSquare(tt, 40)
			return nil
		},
	}}, scene.Options{Spacing: 100})
	require.NoError(t, err)
	return s
}

func testOptions() Options {
	return Options{Aspect: 2, Marker: '@', Gradient: palette.NewGradient(0, 300)}
}

func runeAt(screen tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := screen.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           int
	}{
		{"point", 3, 3, 3, 3, 1},
		{"horizontal", 0, 0, 9, 0, 10},
		{"vertical up", 2, 8, 2, 0, 9},
		{"diagonal", 0, 0, 4, 4, 5},
		{"steep", 0, 0, 2, 7, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cells [][2]int
			line(tt.x0, tt.y0, tt.x1, tt.y1, func(x, y int) {
				cells = append(cells, [2]int{x, y})
			})
			require.Len(t, cells, tt.want)
			assert.Equal(t, [2]int{tt.x0, tt.y0}, cells[0])
			assert.Equal(t, [2]int{tt.x1, tt.y1}, cells[len(cells)-1])
		})
	}
}

func TestStrokeRune(t *testing.T) {
	assert.Equal(t, '-', strokeRune(5, 0))
	assert.Equal(t, '|', strokeRune(0, -5))
	assert.Equal(t, '\\', strokeRune(3, 3))
	assert.Equal(t, '/', strokeRune(3, -3))
	assert.Equal(t, '.', strokeRune(0, 0))
}

func TestFitKeepsBoxOnScreen(t *testing.T) {
	box := r2.Box{Min: r2.Vec{X: -50, Y: -20}, Max: r2.Vec{X: 150, Y: 80}}
	v := Fit(box, 80, 24, 2)

	for _, p := range []r2.Vec{box.Min, box.Max, {X: box.Min.X, Y: box.Max.Y}, {X: box.Max.X, Y: box.Min.Y}} {
		col, row := v.Cell(p)
		assert.True(t, v.Contains(col, row), "corner %v mapped to (%d, %d)", p, col, row)
	}

	// North is up.
	_, top := v.Cell(r2.Vec{X: 0, Y: 80})
	_, bottom := v.Cell(r2.Vec{X: 0, Y: -20})
	assert.Less(t, top, bottom)
}

func TestFitDegenerateBox(t *testing.T) {
	v := Fit(r2.Box{}, 20, 10, 2)
	assert.Equal(t, 1.0, v.Scale)
	col, row := v.Cell(r2.Vec{})
	assert.True(t, v.Contains(col, row))
}

func TestPlotSquare(t *testing.T) {
	s := squareScene(t)
	s.Finish()
	screen := newScreen(t, 40, 21)

	v := Plot(screen, s, testOptions())
	screen.Show()

	var pen *turtle.Pen
	s.Each(func(_ *components.Drawing, p *turtle.Pen, _ *components.Script) { pen = p })
	require.NotNil(t, pen)

	col, row := v.Cell(pen.Position())
	assert.Equal(t, '@', runeAt(screen, col, row))

	// The square's west edge is drawn as a vertical stroke.
	westCol, _ := v.Cell(pen.Origin())
	_, northRow := v.Cell(r2.Add(pen.Origin(), r2.Vec{Y: 40}))
	assert.Equal(t, '|', runeAt(screen, westCol, (northRow+row)/2))
}

func TestPlotEmptyScene(t *testing.T) {
	s := squareScene(t)
	screen := newScreen(t, 20, 10)

	Plot(screen, s, testOptions())
	screen.Show()

	cells, _, _ := screen.GetContents()
	marked := 0
	for _, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] != ' ' {
			marked++
		}
	}
	assert.Equal(t, 1, marked, "only the marker is drawn before any command runs")
}

func TestHandleKey(t *testing.T) {
	s := squareScene(t)

	assert.True(t, handleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), s))
	assert.True(t, s.Paused())

	assert.True(t, handleKey(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), s))
	assert.False(t, s.Done())

	assert.False(t, handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), s))
	assert.False(t, handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), s))
}

func TestRunQuits(t *testing.T) {
	s := squareScene(t)
	screen := newScreen(t, 40, 21)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.NoError(t, Run(ctx, screen, s, testOptions()))
}

func TestRunStopsOnCancel(t *testing.T) {
	s := squareScene(t)
	screen := newScreen(t, 40, 21)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, Run(ctx, screen, s, testOptions()), context.DeadlineExceeded)
}
