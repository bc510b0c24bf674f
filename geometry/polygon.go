// Package geometry provides the pure math behind turtle drawing programs:
// regular polygon angles, the turn needed to face a point, and the
// sequence of turns along a waypoint path.
//
// All headings and turns are degrees in [0, 360), measured clockwise from
// north (+y). Every function is pure and safe for concurrent use.
package geometry

import "math"

// InteriorAngle returns the interior angle in degrees of a regular polygon
// with the given number of sides. sides must be > 2.
func InteriorAngle(sides int) float64 {
	return 180.0 * float64(sides-2) / float64(sides)
}

// ExteriorAngle returns the turn applied at each vertex when tracing a
// regular polygon with right-hand turns. sides must be > 2.
func ExteriorAngle(sides int) float64 {
	return 180 - InteriorAngle(sides)
}

// SidesFromInteriorAngle returns the side count of the regular polygon
// whose interior angle is closest to angle, where 0 < angle < 180.
// Rounds half away from zero.
func SidesFromInteriorAngle(angle float64) int {
	return int(math.Round(360 / (180 - angle)))
}
