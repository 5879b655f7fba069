package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

///////////////////////////////////////////////////////////////////////////////
/// BIN STATISTIC
///////////////////////////////////////////////////////////////////////////////

// The supported reducers
const (
	StatCount  = "count"
	StatSum    = "sum"
	StatMean   = "mean"
	StatStd    = "std"
	StatMedian = "median"
	StatMin    = "min"
	StatMax    = "max"
)

/**
* Space captures the part of a pitch coordinate convention that binning
* needs: the axis extents and the inverted-y flag. Bottom is the
* provider's bottom value, used to flip coordinates on inverted pitches
* so grid cells are always built from the bottom of the pitch upwards.
 */
type Space struct {
	XMin, XMax float64
	YMin, YMax float64
	InvertY    bool
	Bottom     float64
}

/**
* BinResult holds a binned statistic grid. Statistic[j][i] covers
* x in [XEdges[i], XEdges[i+1]] and y in [YEdges[j], YEdges[j+1]],
* with the edges ascending in raw pitch coordinates regardless of
* whether the provider inverts the y axis. CX/CY are the cell centres.
 */
type BinResult struct {
	Statistic [][]float64
	XEdges    []float64
	YEdges    []float64
	CX        []float64
	CY        []float64
}

// NX returns the number of columns
func (r *BinResult) NX() int { return len(r.XEdges) - 1 }

// NY returns the number of rows
func (r *BinResult) NY() int { return len(r.YEdges) - 1 }

// MinMax returns the smallest and largest finite statistic values
func (r *BinResult) MinMax() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range r.Statistic {
		for _, v := range row {
			if math.IsNaN(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

// Options control the binning
type Options struct {
	// number of bins along x and y, ignored when explicit edges are given
	BinsX, BinsY int
	// explicit bin edges, ascending
	XEdges, YEdges []float64
	// divide the statistic by its total so the cells sum to one
	Normalize bool
}

// DefaultOptions returns the default 5x4 grid
func DefaultOptions() *Options {
	return &Options{BinsX: 5, BinsY: 4}
}

// Reducer folds the values that landed in one bin into a statistic.
// It is handed the bin's values and must return NaN for 'no result'.
type Reducer func(values []float64) float64

/**
* BinStatistic calculates a 2D binned statistic over the pitch.
* Points outside the pitch extent and NaN points are ignored. For the
* 'count' statistic values may be nil. Empty bins yield 0 for count and
* sum and NaN for the other statistics.
 */
func BinStatistic(x, y, values []float64, space *Space, statistic string, opt *Options) (*BinResult, error) {
	reducer, err := reducerFor(statistic)
	if err != nil {
		return nil, err
	}
	if values == nil {
		if statistic != StatCount {
			return nil, fmt.Errorf("values on which to calculate the statistic are missing")
		}
		values = x
	}
	return BinStatisticReduce(x, y, values, space, reducer, opt)
}

// BinStatisticReduce is BinStatistic with a caller supplied reducer
func BinStatisticReduce(x, y, values []float64, space *Space, reducer Reducer, opt *Options) (*BinResult, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y must be the same size, got %d and %d", len(x), len(y))
	}
	if len(values) != len(x) {
		return nil, fmt.Errorf("x and values must be the same size, got %d and %d", len(x), len(values))
	}
	if opt == nil {
		opt = DefaultOptions()
	}

	xEdges, err := edges(opt.XEdges, opt.BinsX, space.XMin, space.XMax)
	if err != nil {
		return nil, fmt.Errorf("invalid x bins: %w", err)
	}
	yLo := math.Min(space.YMin, space.YMax)
	yHi := math.Max(space.YMin, space.YMax)
	yEdges, err := edges(opt.YEdges, opt.BinsY, yLo, yHi)
	if err != nil {
		return nil, fmt.Errorf("invalid y bins: %w", err)
	}

	nx := len(xEdges) - 1
	ny := len(yEdges) - 1

	// gather the values landing in each cell
	cells := make([][][]float64, ny)
	for j := range cells {
		cells[j] = make([][]float64, nx)
	}
	for k := range x {
		xi, yi := x[k], y[k]
		if math.IsNaN(xi) || math.IsNaN(yi) {
			continue
		}
		// for inverted axis flip the coordinates so cells build bottom-up
		if space.InvertY {
			yi = space.Bottom - yi
		}
		i := binIndex(xEdges, xi)
		j := binIndex(yEdges, yi)
		if i < 0 || j < 0 {
			continue
		}
		cells[j][i] = append(cells[j][i], values[k])
	}

	statGrid := make([][]float64, ny)
	for j := 0; j < ny; j++ {
		statGrid[j] = make([]float64, nx)
		for i := 0; i < nx; i++ {
			statGrid[j][i] = reducer(cells[j][i])
		}
	}

	// flip the rows back so row j always covers [yEdges[j], yEdges[j+1]]
	// in raw pitch coordinates (marking edges are symmetric about the centre)
	if space.InvertY {
		for j, k := 0, ny-1; j < k; j, k = j+1, k-1 {
			statGrid[j], statGrid[k] = statGrid[k], statGrid[j]
		}
	}

	if opt.Normalize {
		total := 0.0
		for _, row := range statGrid {
			for _, v := range row {
				if !math.IsNaN(v) {
					total += v
				}
			}
		}
		if total != 0 {
			for _, row := range statGrid {
				for i, v := range row {
					row[i] = v / total
				}
			}
		}
	}

	return &BinResult{
		Statistic: statGrid,
		XEdges:    xEdges,
		YEdges:    yEdges,
		CX:        centers(xEdges),
		CY:        centers(yEdges),
	}, nil
}

func edges(explicit []float64, bins int, lo, hi float64) ([]float64, error) {
	if len(explicit) > 0 {
		if len(explicit) < 2 {
			return nil, fmt.Errorf("need at least 2 edges, got %d", len(explicit))
		}
		if !sort.Float64sAreSorted(explicit) {
			return nil, fmt.Errorf("edges must be ascending")
		}
		return explicit, nil
	}
	if bins < 1 {
		return nil, fmt.Errorf("bin count must be positive, got %d", bins)
	}
	out := make([]float64, bins+1)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(bins)
	}
	return out, nil
}

// binIndex places v into its half-open bin, with the last bin closed on
// the right. Returns -1 for values outside the edges.
func binIndex(e []float64, v float64) int {
	if v < e[0] || v > e[len(e)-1] {
		return -1
	}
	// last index with edge <= v
	idx := sort.Search(len(e), func(k int) bool { return e[k] > v }) - 1
	if idx == len(e)-1 {
		idx--
	}
	return idx
}

func centers(e []float64) []float64 {
	out := make([]float64, len(e)-1)
	for i := range out {
		out[i] = e[i] + (e[i+1]-e[i])/2
	}
	return out
}

func reducerFor(statistic string) (Reducer, error) {
	switch statistic {
	case StatCount:
		return func(v []float64) float64 { return float64(len(v)) }, nil
	case StatSum:
		return func(v []float64) float64 {
			if len(v) == 0 {
				return 0
			}
			return floats.Sum(v)
		}, nil
	case StatMean:
		return func(v []float64) float64 {
			if len(v) == 0 {
				return math.NaN()
			}
			return stat.Mean(v, nil)
		}, nil
	case StatStd:
		// population standard deviation
		return func(v []float64) float64 {
			if len(v) == 0 {
				return math.NaN()
			}
			return math.Sqrt(stat.Moment(2, v, nil))
		}, nil
	case StatMedian:
		return func(v []float64) float64 {
			if len(v) == 0 {
				return math.NaN()
			}
			s := append([]float64(nil), v...)
			sort.Float64s(s)
			n := len(s)
			if n%2 == 1 {
				return s[n/2]
			}
			return (s[n/2-1] + s[n/2]) / 2
		}, nil
	case StatMin:
		return func(v []float64) float64 {
			if len(v) == 0 {
				return math.NaN()
			}
			return floats.Min(v)
		}, nil
	case StatMax:
		return func(v []float64) float64 {
			if len(v) == 0 {
				return math.NaN()
			}
			return floats.Max(v)
		}, nil
	default:
		return nil, fmt.Errorf("invalid statistic %q", statistic)
	}
}
