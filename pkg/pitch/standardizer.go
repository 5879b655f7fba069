package pitch

import (
	"fmt"
	"math"
	"sort"
)

///////////////////////////////////////////////////////////////////////////////
/// STANDARDIZER
///////////////////////////////////////////////////////////////////////////////

/**
* Standardizer converts coordinates between two pitch conventions.
* The mapping is piecewise linear between the pitch markings (goal posts,
* boxes, penalty spots, halfway line) rather than a single scale factor,
* so the boxes line up exactly across providers whose markings are not
* proportional to each other.
 */
type Standardizer struct {
	DimFrom *Dims
	DimTo   *Dims
}

/**
* NewStandardizer creates a converter from one pitch type to another.
* widthFrom/lengthFrom and widthTo/lengthTo are the physical pitch sizes
* in meters, required for the size-varying types and ignored otherwise.
 */
func NewStandardizer(pitchFrom, pitchTo string, widthFrom, lengthFrom, widthTo, lengthTo float64) (*Standardizer, error) {
	dimFrom, err := NewDims(pitchFrom, widthFrom, lengthFrom)
	if err != nil {
		return nil, fmt.Errorf("invalid pitch_from: %w", err)
	}
	dimTo, err := NewDims(pitchTo, widthTo, lengthTo)
	if err != nil {
		return nil, fmt.Errorf("invalid pitch_to: %w", err)
	}
	return &Standardizer{DimFrom: dimFrom, DimTo: dimTo}, nil
}

// NewStandardizerDims creates a converter between two prebuilt dimension sets
func NewStandardizerDims(dimFrom, dimTo *Dims) (*Standardizer, error) {
	if dimFrom == nil || dimTo == nil {
		return nil, fmt.Errorf("dimensions cannot be nil")
	}
	return &Standardizer{DimFrom: dimFrom, DimTo: dimTo}, nil
}

/**
* Transform converts the coordinates from the source convention to the
* target convention. Input outside the pitch extent is clipped to the
* pitch first. NaN coordinates pass through as NaN.
 */
func (s *Standardizer) Transform(x, y []float64) ([]float64, []float64, error) {
	return s.transform(x, y, s.DimFrom, s.DimTo)
}

// Reverse converts coordinates from the target convention back to the source
func (s *Standardizer) Reverse(x, y []float64) ([]float64, []float64, error) {
	return s.transform(x, y, s.DimTo, s.DimFrom)
}

func (s *Standardizer) transform(x, y []float64, dimFrom, dimTo *Dims) ([]float64, []float64, error) {
	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("x and y must be the same length, got %d and %d", len(x), len(y))
	}

	yMin, yMax := dimFrom.YExtent()
	xOut := make([]float64, len(x))
	yOut := make([]float64, len(y))

	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			xOut[i] = math.NaN()
			yOut[i] = math.NaN()
			continue
		}

		// clip outside to pitch extents
		xi := clamp(x[i], dimFrom.Left, dimFrom.Right)
		yi := clamp(y[i], yMin, yMax)

		// for inverted axis flip the coordinates
		if dimFrom.InvertY {
			yi = dimFrom.Bottom - yi
		}

		xi = standardize(dimFrom.XMarkingsSorted, dimTo.XMarkingsSorted, xi)
		yi = standardize(dimFrom.YMarkingsSorted, dimTo.YMarkingsSorted, yi)

		if dimTo.InvertY {
			yi = dimTo.Bottom - yi
		}

		xOut[i] = xi
		yOut[i] = yi
	}
	return xOut, yOut, nil
}

// standardize maps one coordinate linearly within its marking interval
func standardize(markingsFrom, markingsTo []float64, coordinate float64) float64 {
	pos := sort.SearchFloat64s(markingsFrom, coordinate)
	if pos < 1 {
		pos = 1
	}
	if pos > len(markingsFrom)-1 {
		pos = len(markingsFrom) - 1
	}
	lowFrom := markingsFrom[pos-1]
	highFrom := markingsFrom[pos]
	proportion := (coordinate - lowFrom) / (highFrom - lowFrom)
	lowTo := markingsTo[pos-1]
	highTo := markingsTo[pos]
	return lowTo + (highTo-lowTo)*proportion
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
