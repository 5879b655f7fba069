package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/richard-senior/pitchplot/pkg/draw"
)

///////////////////////////////////////////////////////////////////////////////
/// ANGLES AND DISTANCES
///////////////////////////////////////////////////////////////////////////////

/**
* AngleAndDistance calculates the angle and distance between start and
* end locations. The angle is in radians anticlockwise in the range
* 0..2pi, where 0 points from left to right along the pitch. On
* inverted-y pitches the y difference is flipped so the angle still
* reads in the direction a viewer sees.
 */
func AngleAndDistance(xstart, ystart, xend, yend []float64, invertY bool) ([]float64, []float64, error) {
	if len(xstart) != len(ystart) || len(xstart) != len(xend) || len(ystart) != len(yend) {
		return nil, nil, fmt.Errorf("start and end coordinates must be the same size")
	}
	angle := make([]float64, len(xstart))
	distance := make([]float64, len(xstart))
	for i := range xstart {
		xDist := xend[i] - xstart[i]
		yDist := yend[i] - ystart[i]
		if invertY {
			yDist = ystart[i] - yend[i]
		}
		a := math.Atan2(yDist, xDist)
		if a < 0 {
			a += 2 * math.Pi
		}
		angle[i] = a
		distance[i] = math.Hypot(xDist, yDist)
	}
	return angle, distance, nil
}

// CircularMean reduces angles in radians to their circular mean in 0..2pi
func CircularMean(angles []float64) float64 {
	if len(angles) == 0 {
		return math.NaN()
	}
	var sinSum, cosSum float64
	for _, a := range angles {
		sinSum += math.Sin(a)
		cosSum += math.Cos(a)
	}
	mean := math.Atan2(sinSum, cosSum)
	if mean < 0 {
		mean += 2 * math.Pi
	}
	return mean
}

///////////////////////////////////////////////////////////////////////////////
/// CONVEX HULL
///////////////////////////////////////////////////////////////////////////////

/**
* ConvexHull returns the convex hull of the points in anticlockwise
* order, computed with the monotone chain algorithm. NaN points are
* dropped. At least three distinct points are required.
 */
func ConvexHull(x, y []float64) ([]*draw.Point, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y must be the same size, got %d and %d", len(x), len(y))
	}
	points := make([]*draw.Point, 0, len(x))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		points = append(points, draw.NewPoint(x[i], y[i]))
	}
	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 points for a hull, got %d", len(points))
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].X == points[j].X {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})

	cross := func(o, a, b *draw.Point) float64 {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	var lower []*draw.Point
	for _, p := range points {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	var upper []*draw.Point
	for i := len(points) - 1; i >= 0; i-- {
		p := points[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		return nil, fmt.Errorf("points are collinear, no hull")
	}
	return hull, nil
}

///////////////////////////////////////////////////////////////////////////////
/// REFLECTION
///////////////////////////////////////////////////////////////////////////////

/**
* Reflect2D reflects the points in the four pitch lines, returning the
* original points followed by the left, right, bottom and top
* reflections. Reflecting before a Voronoi tessellation bounds the
* cells at the pitch edges.
 */
func Reflect2D(x, y []float64, xMin, xMax, yMin, yMax float64) ([]float64, []float64) {
	n := len(x)
	rx := make([]float64, 0, 5*n)
	ry := make([]float64, 0, 5*n)
	rx = append(rx, x...)
	ry = append(ry, y...)
	for i := 0; i < n; i++ {
		rx = append(rx, 2*xMin-x[i])
		ry = append(ry, y[i])
	}
	for i := 0; i < n; i++ {
		rx = append(rx, 2*xMax-x[i])
		ry = append(ry, y[i])
	}
	for i := 0; i < n; i++ {
		rx = append(rx, x[i])
		ry = append(ry, 2*yMin-y[i])
	}
	for i := 0; i < n; i++ {
		rx = append(rx, x[i])
		ry = append(ry, 2*yMax-y[i])
	}
	return rx, ry
}
