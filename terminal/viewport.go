// Package terminal shows turtle drawings in a character terminal using tcell.
package terminal

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Viewport maps world coordinates onto character cells. Rows grow down and
// cells are Aspect times taller than they are wide.
type Viewport struct {
	Cols, Rows int
	Aspect     float64
	Scale      float64 // Columns per world unit
	center     r2.Vec
}

// Fit returns a viewport of cols x rows cells that shows box as large as
// possible.
func Fit(box r2.Box, cols, rows int, aspect float64) Viewport {
	if aspect <= 0 {
		aspect = 1
	}
	v := Viewport{
		Cols:   cols,
		Rows:   rows,
		Aspect: aspect,
		Scale:  1,
		center: r2.Scale(0.5, r2.Add(box.Min, box.Max)),
	}

	w := box.Max.X - box.Min.X
	h := box.Max.Y - box.Min.Y
	scale := math.Inf(1)
	if w > 0 && cols > 1 {
		scale = float64(cols-1) / w
	}
	if h > 0 && rows > 1 {
		scale = math.Min(scale, float64(rows-1)*aspect/h)
	}
	if !math.IsInf(scale, 1) && scale > 0 {
		v.Scale = scale
	}
	return v
}

// Cell returns the column and row of a world point. Points outside the
// viewport yield cells outside [0, Cols) x [0, Rows).
func (v Viewport) Cell(p r2.Vec) (col, row int) {
	d := r2.Sub(p, v.center)
	col = int(math.Round(float64(v.Cols-1)/2 + d.X*v.Scale))
	row = int(math.Round(float64(v.Rows-1)/2 - d.Y*v.Scale/v.Aspect))
	return col, row
}

// Contains reports whether the cell is on screen.
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}

// line calls plot for every cell on the Bresenham line from (x0, y0) to
// (x1, y1), both ends included.
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// strokeRune picks a character that follows the segment direction on
// screen (rows grow down).
func strokeRune(dcol, drow int) rune {
	switch {
	case dcol == 0 && drow == 0:
		return '.'
	case drow == 0 || abs(dcol) > 2*abs(drow):
		return '-'
	case dcol == 0 || abs(drow) > 2*abs(dcol):
		return '|'
	case (dcol > 0) == (drow > 0):
		return '\\'
	default:
		return '/'
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
