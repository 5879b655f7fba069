package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAngleAndDistance(t *testing.T) {
	angle, distance, err := AngleAndDistance(
		[]float64{0, 0, 0},
		[]float64{0, 0, 0},
		[]float64{3, 0, -1},
		[]float64{4, 1, 0},
		false)
	require.NoError(t, err)

	assert.InDelta(t, 5.0, distance[0], 1e-9)
	assert.InDelta(t, math.Atan2(4, 3), angle[0], 1e-9)
	// straight up is a quarter turn anticlockwise
	assert.InDelta(t, math.Pi/2, angle[1], 1e-9)
	// straight left is half a turn, never negative
	assert.InDelta(t, math.Pi, angle[2], 1e-9)
}

func TestAngleAndDistanceInvertY(t *testing.T) {
	// on a downward-counting pitch an increase in y moves towards the
	// viewer's bottom, so the angle flips
	angle, _, err := AngleAndDistance(
		[]float64{0}, []float64{0}, []float64{0}, []float64{1}, true)
	require.NoError(t, err)
	assert.InDelta(t, 3*math.Pi/2, angle[0], 1e-9)

	_, _, err = AngleAndDistance([]float64{0}, []float64{0, 1}, []float64{0}, []float64{1}, false)
	assert.Error(t, err)
}

func TestCircularMean(t *testing.T) {
	deg := func(d float64) float64 { return d * math.Pi / 180 }

	// 350 and 10 degrees average to zero, not 180
	mean := CircularMean([]float64{deg(350), deg(10)})
	if mean > math.Pi {
		mean -= 2 * math.Pi
	}
	assert.InDelta(t, 0.0, mean, 1e-9)

	assert.InDelta(t, deg(90), CircularMean([]float64{deg(80), deg(100)}), 1e-9)
	assert.True(t, math.IsNaN(CircularMean(nil)))
}

func TestConvexHullSquare(t *testing.T) {
	// a unit square with an interior point
	x := []float64{0, 1, 0, 1, 0.5}
	y := []float64{0, 0, 1, 1, 0.5}
	hull, err := ConvexHull(x, y)
	require.NoError(t, err)
	require.Len(t, hull, 4)

	for _, p := range hull {
		assert.NotEqual(t, 0.5, p.X)
	}
}

func TestConvexHullDropsNaN(t *testing.T) {
	x := []float64{0, 1, 0, math.NaN()}
	y := []float64{0, 0, 1, 0.5}
	hull, err := ConvexHull(x, y)
	require.NoError(t, err)
	assert.Len(t, hull, 3)
}

func TestConvexHullErrors(t *testing.T) {
	_, err := ConvexHull([]float64{0, 1}, []float64{0, 1})
	assert.Error(t, err)

	// collinear points span no area
	_, err = ConvexHull([]float64{0, 1, 2}, []float64{0, 1, 2})
	assert.Error(t, err)
}

func TestReflect2D(t *testing.T) {
	rx, ry := Reflect2D([]float64{2}, []float64{3}, 0, 10, 0, 10)
	require.Len(t, rx, 5)
	require.Len(t, ry, 5)

	assert.Equal(t, []float64{2, -2, 18, 2, 2}, rx)
	assert.Equal(t, []float64{3, 3, 3, -3, 17}, ry)
}

func TestVoronoiSplitsTeams(t *testing.T) {
	extent := [4]float64{0, 10, 0, 10}
	x := []float64{2.5, 7.5, 2.5, 7.5}
	y := []float64{2.5, 2.5, 7.5, 7.5}
	teams := []bool{true, true, false, false}

	team1, team2, err := Voronoi(x, y, teams, extent)
	require.NoError(t, err)
	assert.Len(t, team1, 2)
	assert.Len(t, team2, 2)

	// every cell vertex stays on the pitch
	for _, cell := range append(team1, team2...) {
		require.GreaterOrEqual(t, len(cell), 3)
		for _, p := range cell {
			assert.GreaterOrEqual(t, p.X, 0.0)
			assert.LessOrEqual(t, p.X, 10.0)
			assert.GreaterOrEqual(t, p.Y, 0.0)
			assert.LessOrEqual(t, p.Y, 10.0)
		}
	}
}

func TestVoronoiErrors(t *testing.T) {
	extent := [4]float64{0, 10, 0, 10}
	_, _, err := Voronoi([]float64{1}, []float64{1}, []bool{true}, extent)
	assert.Error(t, err)

	_, _, err = Voronoi([]float64{1, 2}, []float64{1, 2}, []bool{true}, extent)
	assert.Error(t, err)
}

func TestKernelDensity(t *testing.T) {
	x := []float64{2, 3, 5, 7, 8, 4, 6}
	y := []float64{2, 5, 3, 7, 4, 6, 5}
	result, err := KernelDensity(x, y, [4]float64{0, 10, 0, 10}, 8, 8)
	require.NoError(t, err)

	assert.Equal(t, 8, result.NX())
	assert.Equal(t, 8, result.NY())
	for _, row := range result.Statistic {
		for _, v := range row {
			assert.Greater(t, v, 0.0)
		}
	}

	// the density peaks near the data, not at the pitch corner
	_, hi := result.MinMax()
	assert.Greater(t, hi, result.Statistic[0][0])
}

func TestKernelDensityErrors(t *testing.T) {
	_, err := KernelDensity([]float64{1}, []float64{1}, [4]float64{0, 10, 0, 10}, 8, 8)
	assert.Error(t, err)

	// identical points leave no bandwidth
	_, err = KernelDensity([]float64{1, 1}, []float64{1, 1}, [4]float64{0, 10, 0, 10}, 8, 8)
	assert.Error(t, err)

	_, err = KernelDensity([]float64{1, 2}, []float64{1, 2}, [4]float64{0, 10, 0, 10}, 1, 8)
	assert.Error(t, err)
}

func TestFlowSameLength(t *testing.T) {
	space := testSpace()
	xs := []float64{1, 2, 6, 7}
	ys := []float64{1, 2, 6, 7}
	xe := []float64{3, 5, 8, 9}
	ye := []float64{1, 4, 6, 9}

	result, err := Flow(xs, ys, xe, ye, space, ArrowSame, 2.0, &Options{BinsX: 2, BinsY: 2})
	require.NoError(t, err)
	require.Len(t, result.CX, 2)

	// every arrow has the fixed length
	for i := range result.CX {
		length := math.Hypot(result.EndX[i]-result.CX[i], result.EndY[i]-result.CY[i])
		assert.InDelta(t, 2.0, length, 1e-9)
	}
	assert.Equal(t, []float64{2, 2}, result.Counts)
}

func TestFlowScaleAndAverage(t *testing.T) {
	space := testSpace()
	xs := []float64{1, 6}
	ys := []float64{1, 6}
	xe := []float64{2, 9}
	ye := []float64{1, 6}

	// the longer movement gets the full arrow length
	result, err := Flow(xs, ys, xe, ye, space, ArrowScale, 4.0, &Options{BinsX: 2, BinsY: 2})
	require.NoError(t, err)
	require.Len(t, result.CX, 2)
	lengths := make([]float64, 2)
	for i := range result.CX {
		lengths[i] = math.Hypot(result.EndX[i]-result.CX[i], result.EndY[i]-result.CY[i])
	}
	assert.InDelta(t, 4.0/3.0, lengths[0], 1e-9)
	assert.InDelta(t, 4.0, lengths[1], 1e-9)

	// average uses the mean distance itself
	result, err = Flow(xs, ys, xe, ye, space, ArrowAverage, 0, &Options{BinsX: 2, BinsY: 2})
	require.NoError(t, err)
	for i := range result.CX {
		length := math.Hypot(result.EndX[i]-result.CX[i], result.EndY[i]-result.CY[i])
		assert.InDelta(t, result.EndX[i]-result.CX[i], length, 1e-9)
	}

	_, err = Flow(xs, ys, xe, ye, space, "huge", 0, nil)
	assert.Error(t, err)
}
