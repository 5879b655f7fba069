package draw

import "math"

///////////////////////////////////////////////////////////////////////////////
/// POINT
///////////////////////////////////////////////////////////////////////////////

// Point represents a 2D point with X and Y coordinates
type Point struct {
	X, Y float64
}

func NewPoint(x float64, y float64) *Point {
	ret := &Point{
		X: x,
		Y: y,
	}
	return ret
}

// Distance returns the euclidean distance to the other point
func (p *Point) Distance(o *Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Angle returns the angle in radians from this point to the other point,
// anticlockwise from the positive x axis, normalised to 0..2pi
func (p *Point) Angle(o *Point) float64 {
	a := math.Atan2(o.Y-p.Y, o.X-p.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
