package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

///////////////////////////////////////////////////////////////////////////////
/// KERNEL DENSITY
///////////////////////////////////////////////////////////////////////////////

/**
* KernelDensity evaluates a Gaussian kernel density estimate of the
* points on a gridX by gridY grid clipped to the given extent
* [xmin, xmax, ymin, ymax]. The bandwidth per axis follows Scott's rule,
* sigma * n^(-1/6) for two dimensional data. NaN points are dropped.
*
* The result reuses BinResult so the density renders through the same
* mesh path as a binned statistic.
 */
func KernelDensity(x, y []float64, extent [4]float64, gridX, gridY int) (*BinResult, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y must be the same size, got %d and %d", len(x), len(y))
	}
	if gridX < 2 || gridY < 2 {
		return nil, fmt.Errorf("grid must be at least 2x2, got %dx%d", gridX, gridY)
	}

	var xs, ys []float64
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	n := len(xs)
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 points for a density estimate, got %d", n)
	}

	// Scott's rule
	factor := math.Pow(float64(n), -1.0/6.0)
	bwX := math.Sqrt(stat.Variance(xs, nil)) * factor
	bwY := math.Sqrt(stat.Variance(ys, nil)) * factor
	if bwX == 0 || bwY == 0 {
		return nil, fmt.Errorf("degenerate data, zero bandwidth")
	}

	xEdges, _ := edges(nil, gridX, extent[0], extent[1])
	yEdges, _ := edges(nil, gridY, extent[2], extent[3])
	cx := centers(xEdges)
	cy := centers(yEdges)

	norm := 1 / (2 * math.Pi * bwX * bwY * float64(n))
	density := make([][]float64, gridY)
	for j := range density {
		density[j] = make([]float64, gridX)
		for i := range density[j] {
			var sum float64
			for k := 0; k < n; k++ {
				dx := (cx[i] - xs[k]) / bwX
				dy := (cy[j] - ys[k]) / bwY
				sum += math.Exp(-0.5 * (dx*dx + dy*dy))
			}
			density[j][i] = sum * norm
		}
	}

	return &BinResult{
		Statistic: density,
		XEdges:    xEdges,
		YEdges:    yEdges,
		CX:        cx,
		CY:        cy,
	}, nil
}
