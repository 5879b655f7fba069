package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/fogleman/delaunay"

	"github.com/richard-senior/pitchplot/pkg/draw"
)

///////////////////////////////////////////////////////////////////////////////
/// VORONOI
///////////////////////////////////////////////////////////////////////////////

/**
* Voronoi computes the Voronoi cell of each point, split into the cells
* for each team. The cells are the circumcentre polygons of the Delaunay
* triangulation around each site. The points are first reflected in the
* four pitch lines so every original site is interior to the
* triangulation and its cell is bounded by the pitch.
*
* Input outside the extent [xmin, xmax, ymin, ymax] is clipped to the
* pitch edge first, as players off the pitch are treated as standing on
* the line. teams[i] selects the output slice: true for team1, false
* for team2.
 */
func Voronoi(x, y []float64, teams []bool, extent [4]float64) (team1, team2 [][]*draw.Point, err error) {
	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("x and y must be the same size, got %d and %d", len(x), len(y))
	}
	if len(teams) != len(x) {
		return nil, nil, fmt.Errorf("x and teams must be the same size, got %d and %d", len(x), len(teams))
	}
	n := len(x)
	if n < 2 {
		return nil, nil, fmt.Errorf("need at least 2 points, got %d", n)
	}

	// clip outside to pitch extents
	cx := make([]float64, n)
	cy := make([]float64, n)
	for i := 0; i < n; i++ {
		cx[i] = clip(x[i], extent[0], extent[1])
		cy[i] = clip(y[i], extent[2], extent[3])
	}

	// reflect in pitch lines
	rx, ry := Reflect2D(cx, cy, extent[0], extent[1], extent[2], extent[3])
	sites := make([]delaunay.Point, len(rx))
	for i := range rx {
		sites[i] = delaunay.Point{X: rx[i], Y: ry[i]}
	}

	tri, err := delaunay.Triangulate(sites)
	if err != nil {
		return nil, nil, fmt.Errorf("triangulation failed: %w", err)
	}

	// collect the circumcentres of the triangles incident to each of the
	// original sites
	cells := make([][]*draw.Point, n)
	for t := 0; t < len(tri.Triangles); t += 3 {
		a := tri.Triangles[t]
		b := tri.Triangles[t+1]
		c := tri.Triangles[t+2]
		cc := circumcenter(sites[a], sites[b], sites[c])
		for _, v := range []int{a, b, c} {
			if v < n {
				cells[v] = append(cells[v], cc)
			}
		}
	}

	for i := 0; i < n; i++ {
		if len(cells[i]) < 3 {
			return nil, nil, fmt.Errorf("degenerate cell for point %d", i)
		}
		// order the cell vertices around the site and clip to the pitch
		site := draw.NewPoint(cx[i], cy[i])
		sort.Slice(cells[i], func(a, b int) bool {
			return site.Angle(cells[i][a]) < site.Angle(cells[i][b])
		})
		for _, v := range cells[i] {
			v.X = clip(v.X, extent[0], extent[1])
			v.Y = clip(v.Y, extent[2], extent[3])
		}
		if teams[i] {
			team1 = append(team1, cells[i])
		} else {
			team2 = append(team2, cells[i])
		}
	}
	return team1, team2, nil
}

func circumcenter(a, b, c delaunay.Point) *draw.Point {
	d := 2 * ((a.X)*(b.Y-c.Y) + (b.X)*(c.Y-a.Y) + (c.X)*(a.Y-b.Y))
	if d == 0 {
		// collinear, fall back to the centroid
		return draw.NewPoint((a.X+b.X+c.X)/3, (a.Y+b.Y+c.Y)/3)
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	ux := (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	uy := (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d
	return draw.NewPoint(ux, uy)
}

func clip(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
