package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// HeadingsAlongPath returns the turn to apply before each segment of the
// path, assuming the turtle starts at points[0] facing north and keeps the
// heading it had at the end of the previous segment.
// Fewer than two points yield an empty slice.
func HeadingsAlongPath(points []Point) []float64 {
	if len(points) < 2 {
		return []float64{}
	}

	turns := make([]float64, 0, len(points)-1)
	heading := 0.0
	for i := 0; i < len(points)-1; i++ {
		turn := HeadingToPoint(heading, points[i], points[i+1])
		turns = append(turns, turn)
		heading = math.Mod(heading+turn, 360)
	}
	return turns
}

// Vec converts a grid point to a plane vector.
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: float64(p.X), Y: float64(p.Y)}
}

// SegmentLengths returns the length of each consecutive segment scaled by
// unit and rounded to the nearest integer.
func SegmentLengths(points []Point, unit float64) []int {
	if len(points) < 2 {
		return []int{}
	}

	lengths := make([]int, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		d := r2.Norm(r2.Sub(points[i+1].Vec(), points[i].Vec()))
		lengths = append(lengths, int(math.Round(d*unit)))
	}
	return lengths
}
