package pitch

import (
	"fmt"
	"math"
	"sort"
)

///////////////////////////////////////////////////////////////////////////////
/// DIMS
///////////////////////////////////////////////////////////////////////////////

// The supported pitch coordinate conventions
const (
	TypeStatsbomb      = "statsbomb"
	TypeOpta           = "opta"
	TypeWyscout        = "wyscout"
	TypeUefa           = "uefa"
	TypeTracab         = "tracab"
	TypeMetricasports  = "metricasports"
	TypeCustom         = "custom"
	TypeSkillcorner    = "skillcorner"
	TypeSecondSpectrum = "secondspectrum"
	TypeImpect         = "impect"
)

// ValidPitchTypes lists every supported pitch type
var ValidPitchTypes = []string{
	TypeStatsbomb, TypeTracab, TypeOpta, TypeWyscout, TypeUefa,
	TypeMetricasports, TypeCustom, TypeSkillcorner, TypeSecondSpectrum,
	TypeImpect,
}

// sizeVaries lists the pitch types that need an explicit pitch width/length
var sizeVaries = map[string]bool{
	TypeTracab:         true,
	TypeMetricasports:  true,
	TypeCustom:         true,
	TypeSkillcorner:    true,
	TypeSecondSpectrum: true,
}

// SizeVaries reports whether the pitch type needs an explicit width and length
func SizeVaries(pitchType string) bool {
	return sizeVaries[pitchType]
}

/**
* Dims holds one provider's pitch coordinate convention: the axis extents,
* the box/goal/circle markings in that coordinate space, and the flags that
* describe how the space behaves (inverted y, origin at the centre spot,
* aspect stretching for square coordinate systems).
*
* Marking positions named left/right run along the pitch length and
* bottom/top across the pitch width. All distances are in the provider's
* units (tracab is centimetres, uefa/custom metres, opta/wyscout are
* 0-100 coordinate spaces).
 */
type Dims struct {
	PitchType string

	Left, Right, Bottom, Top float64
	Width, Length            float64
	// the physical pitch size in meters the coordinates represent
	PitchWidth, PitchLength float64
	Aspect                  float64

	GoalWidth, GoalLength float64
	GoalBottom, GoalTop   float64

	SixYardWidth, SixYardLength                        float64
	SixYardLeft, SixYardRight, SixYardBottom, SixYardTop float64

	PenaltySpotDistance        float64
	PenaltyLeft, PenaltyRight  float64
	PenaltyAreaWidth           float64
	PenaltyAreaLength          float64
	PenaltyAreaLeft, PenaltyAreaRight   float64
	PenaltyAreaBottom, PenaltyAreaTop   float64

	CenterWidth, CenterLength      float64
	CircleDiameter, CornerDiameter float64
	// the angle in degrees of the penalty arc ends, zero when the
	// provider's stretched coordinates make a true arc impossible
	Arc float64

	InvertY      bool
	OriginCenter bool
	AspectEqual  bool

	PadDefault    float64
	PadMultiplier float64

	// derived marking tables, set by setupDims
	XMarkingsSorted []float64
	YMarkingsSorted []float64
	PositionalX     []float64
	PositionalY     []float64
	StripeLocations []float64
	// [xmin, xmax, ymin, ymax]
	PitchExtent [4]float64
}

/**
* setupDims computes the derived marking tables: the sorted x/y markings
* used for coordinate standardization, the Juego de Posición grid, the
* stripe locations and the pitch extent.
 */
func (d *Dims) setupDims() {
	d.XMarkingsSorted = []float64{
		d.Left, d.SixYardLeft, d.PenaltyLeft, d.PenaltyAreaLeft,
		d.CenterLength, d.PenaltyAreaRight, d.PenaltyRight,
		d.SixYardRight, d.Right,
	}
	d.YMarkingsSorted = []float64{
		d.Bottom, d.PenaltyAreaBottom, d.SixYardBottom, d.GoalBottom,
		d.GoalTop, d.SixYardTop, d.PenaltyAreaTop, d.Top,
	}

	if d.InvertY {
		sort.Float64s(d.YMarkingsSorted)
		d.PitchExtent = [4]float64{d.Left, d.Right, d.Top, d.Bottom}
	} else {
		d.PitchExtent = [4]float64{d.Left, d.Right, d.Bottom, d.Top}
	}

	// Juego de Posición columns: pitch thirds split around the penalty areas
	d.PositionalX = []float64{
		d.Left, d.PenaltyAreaLeft,
		d.PenaltyAreaLeft + (d.CenterLength-d.PenaltyAreaLeft)/2,
		d.CenterLength,
		d.CenterLength + (d.PenaltyAreaRight-d.CenterLength)/2,
		d.PenaltyAreaRight, d.Right,
	}
	// rows are the y markings without the goal posts (indices 3 and 4)
	y := d.YMarkingsSorted
	d.PositionalY = []float64{y[0], y[1], y[2], y[5], y[6], y[7]}

	// mowing stripes: six yard box, three per penalty box, ten between
	stripePenArea := (d.PenaltyAreaLength - d.SixYardLength) / 2
	stripeOther := (d.Length - 2*d.SixYardLength - 6*stripePenArea) / 10
	widths := []float64{d.Left, d.SixYardLength,
		stripePenArea, stripePenArea, stripePenArea,
		stripeOther, stripeOther, stripeOther, stripeOther, stripeOther,
		stripeOther, stripeOther, stripeOther, stripeOther, stripeOther,
		stripePenArea, stripePenArea, stripePenArea, d.SixYardLength,
	}
	d.StripeLocations = make([]float64, len(widths))
	sum := 0.0
	for i, w := range widths {
		sum += w
		d.StripeLocations[i] = sum
	}
}

// penaltyBoxDims fills in the box positions for pitches where the
// width and length vary, from the box sizes and the centre
func (d *Dims) penaltyBoxDims() {
	d.PenaltyRight = d.Right - d.PenaltyLeft
	d.PenaltyAreaLeft = d.PenaltyAreaLength
	d.PenaltyAreaRight = d.Right - d.PenaltyAreaLength
	half := 0.5
	if d.InvertY {
		half = -0.5
	}
	d.PenaltyAreaBottom = d.CenterWidth - half*d.PenaltyAreaWidth
	d.PenaltyAreaTop = d.CenterWidth + half*d.PenaltyAreaWidth
	d.SixYardBottom = d.CenterWidth - half*d.SixYardWidth
	d.SixYardTop = d.CenterWidth + half*d.SixYardWidth
	d.GoalBottom = d.CenterWidth - half*d.GoalWidth
	d.GoalTop = d.CenterWidth + half*d.GoalWidth
	d.SixYardLeft = d.SixYardLength
	d.SixYardRight = d.Right - d.SixYardLength
}

// HasArc reports whether the penalty arcs can be drawn as true arcs
func (d *Dims) HasArc() bool {
	return d.Arc > 0
}

// YExtent returns the pitch y range as (min, max)
func (d *Dims) YExtent() (float64, float64) {
	return d.PitchExtent[2], d.PitchExtent[3]
}

///////////////////////////////////////////////////////////////////////////////
/// PROVIDER TABLES
///////////////////////////////////////////////////////////////////////////////

func statsbombDims() *Dims {
	d := &Dims{
		PitchType: TypeStatsbomb,
		Left:      0, Right: 120, Bottom: 80, Top: 0, Aspect: 1,
		Width: 80, Length: 120, PitchWidth: 80, PitchLength: 120,
		GoalWidth: 8, GoalLength: 2.4, GoalBottom: 44, GoalTop: 36,
		SixYardWidth: 20, SixYardLength: 6, SixYardLeft: 6,
		SixYardRight: 114, SixYardBottom: 50, SixYardTop: 30,
		PenaltyLeft: 12, PenaltyRight: 108, PenaltySpotDistance: 12,
		PenaltyAreaWidth: 44, PenaltyAreaLength: 18, PenaltyAreaLeft: 18,
		PenaltyAreaRight: 102, PenaltyAreaBottom: 62, PenaltyAreaTop: 18,
		CenterWidth: 40, CenterLength: 60, CircleDiameter: 20,
		CornerDiameter: 2.186, Arc: 53.05, InvertY: true, OriginCenter: false,
		PadDefault: 4, PadMultiplier: 1, AspectEqual: true,
	}
	d.setupDims()
	return d
}

func optaDims() *Dims {
	d := &Dims{
		PitchType: TypeOpta,
		Left:      0, Right: 100, Bottom: 0, Top: 100, Aspect: 68.0 / 105.0,
		Width: 100, Length: 100, PitchWidth: 68, PitchLength: 105,
		GoalWidth: 9.6, GoalLength: 1.9, GoalBottom: 45.2, GoalTop: 54.8,
		SixYardWidth: 26.4, SixYardLength: 5.8, SixYardLeft: 5.8,
		SixYardRight: 94.2, SixYardBottom: 36.8, SixYardTop: 63.2,
		PenaltyLeft: 11.5, PenaltyRight: 88.5, PenaltySpotDistance: 11.5,
		PenaltyAreaWidth: 57.8, PenaltyAreaLength: 17, PenaltyAreaLeft: 17,
		PenaltyAreaRight: 83, PenaltyAreaBottom: 21.1, PenaltyAreaTop: 78.9,
		CenterWidth: 50, CenterLength: 50, CircleDiameter: 17.68,
		CornerDiameter: 1.94, Arc: 0, InvertY: false, OriginCenter: false,
		PadDefault: 4, PadMultiplier: 1, AspectEqual: false,
	}
	d.setupDims()
	return d
}

// Wyscout dimensions follow ggsoccer, which uses a goal width of 12 units
func wyscoutDims() *Dims {
	d := &Dims{
		PitchType: TypeWyscout,
		Left:      0, Right: 100, Bottom: 100, Top: 0, Aspect: 68.0 / 105.0,
		Width: 100, Length: 100, PitchWidth: 68, PitchLength: 105,
		GoalWidth: 12, GoalLength: 1.9, GoalBottom: 56, GoalTop: 44,
		SixYardWidth: 26, SixYardLength: 6, SixYardLeft: 6,
		SixYardRight: 94, SixYardBottom: 63, SixYardTop: 37,
		PenaltyLeft: 10, PenaltyRight: 90, PenaltySpotDistance: 10,
		PenaltyAreaWidth: 62, PenaltyAreaLength: 16, PenaltyAreaLeft: 16,
		PenaltyAreaRight: 84, PenaltyAreaBottom: 81, PenaltyAreaTop: 19,
		CenterWidth: 50, CenterLength: 50, CircleDiameter: 17.68,
		CornerDiameter: 1.94, Arc: 0, InvertY: true, OriginCenter: false,
		PadDefault: 4, PadMultiplier: 1, AspectEqual: false,
	}
	d.setupDims()
	return d
}

func uefaDims() *Dims {
	d := &Dims{
		PitchType: TypeUefa,
		Left:      0, Right: 105, Top: 68, Bottom: 0, Aspect: 1,
		Width: 68, Length: 105, PitchWidth: 68, PitchLength: 105,
		GoalWidth: 7.32, GoalLength: 2, GoalBottom: 30.34, GoalTop: 37.66,
		SixYardWidth: 18.32, SixYardLength: 5.5, SixYardLeft: 5.5,
		SixYardRight: 99.5, SixYardBottom: 24.84, SixYardTop: 43.16,
		PenaltyLeft: 11, PenaltyRight: 94, PenaltySpotDistance: 11,
		PenaltyAreaWidth: 40.32, PenaltyAreaLength: 16.5, PenaltyAreaLeft: 16.5,
		PenaltyAreaRight: 88.5, PenaltyAreaBottom: 13.84, PenaltyAreaTop: 54.16,
		CenterWidth: 34, CenterLength: 52.5, CircleDiameter: 18.3,
		CornerDiameter: 2, Arc: 53.05, InvertY: false, OriginCenter: false,
		PadDefault: 4, PadMultiplier: 1, AspectEqual: true,
	}
	d.setupDims()
	return d
}

// variableCenterDims handles tracab, skillcorner, secondspectrum and impect
// where the origin is the centre spot and the pitch size can vary
func variableCenterDims(d *Dims) *Dims {
	d.Left = -d.PitchLength / 2
	d.Right = -d.Left
	d.Bottom = -d.PitchWidth / 2
	d.Top = -d.Bottom
	d.Width = d.PitchWidth
	d.Length = d.PitchLength
	d.SixYardLeft = d.Left + d.SixYardLength
	d.SixYardRight = -d.SixYardLeft
	d.PenaltyLeft = d.Left + d.PenaltySpotDistance
	d.PenaltyRight = d.Right - d.PenaltySpotDistance
	d.PenaltyAreaLeft = d.Left + d.PenaltyAreaLength
	d.PenaltyAreaRight = -d.PenaltyAreaLeft
	d.setupDims()
	return d
}

func skillcornerSecondspectrumDims(pitchType string, pitchWidth, pitchLength float64) *Dims {
	return variableCenterDims(&Dims{
		PitchType: pitchType, Aspect: 1,
		PitchWidth: pitchWidth, PitchLength: pitchLength,
		GoalWidth: 7.32, GoalLength: 2, GoalBottom: -3.66, GoalTop: 3.66,
		SixYardWidth: 18.32, SixYardLength: 5.5, SixYardBottom: -9.16,
		SixYardTop: 9.16, PenaltySpotDistance: 11,
		PenaltyAreaWidth: 40.32, PenaltyAreaLength: 16.5,
		PenaltyAreaBottom: -20.16, PenaltyAreaTop: 20.16,
		CenterWidth: 0, CenterLength: 0, CircleDiameter: 18.3,
		CornerDiameter: 2, Arc: 53.05, InvertY: false, OriginCenter: true,
		PadDefault: 4, PadMultiplier: 1, AspectEqual: true,
	})
}

// tracab is in centimetres
func tracabDims(pitchWidth, pitchLength float64) *Dims {
	return variableCenterDims(&Dims{
		PitchType: TypeTracab, Aspect: 1,
		PitchWidth: pitchWidth * 100, PitchLength: pitchLength * 100,
		GoalWidth: 732, GoalLength: 200, GoalBottom: -366, GoalTop: 366,
		SixYardWidth: 1832, SixYardLength: 550, SixYardBottom: -916,
		SixYardTop: 916, PenaltySpotDistance: 1100,
		PenaltyAreaWidth: 4032, PenaltyAreaLength: 1650,
		PenaltyAreaBottom: -2016, PenaltyAreaTop: 2016,
		CenterWidth: 0, CenterLength: 0, CircleDiameter: 1830,
		CornerDiameter: 200, Arc: 53.05, InvertY: false, OriginCenter: true,
		PadDefault: 4, PadMultiplier: 100, AspectEqual: true,
	})
}

func impectDims() *Dims {
	return variableCenterDims(&Dims{
		PitchType: TypeImpect, Aspect: 1,
		PitchWidth: 68, PitchLength: 105,
		GoalWidth: 7.32, GoalLength: 2, GoalBottom: -3.66, GoalTop: 3.66,
		SixYardWidth: 18.32, SixYardLength: 5.5, SixYardBottom: -9.16,
		SixYardTop: 9.16, PenaltySpotDistance: 11,
		PenaltyAreaWidth: 40.32, PenaltyAreaLength: 16.5,
		PenaltyAreaBottom: -20.16, PenaltyAreaTop: 20.16,
		CenterWidth: 0, CenterLength: 0, CircleDiameter: 18.3,
		CornerDiameter: 2, Arc: 53.05, InvertY: false, OriginCenter: true,
		PadDefault: 4, PadMultiplier: 1, AspectEqual: true,
	})
}

func customDims(pitchWidth, pitchLength float64) *Dims {
	d := &Dims{
		PitchType: TypeCustom,
		Bottom:    0, Left: 0, Aspect: 1,
		Width: pitchWidth, Length: pitchLength,
		PitchWidth: pitchWidth, PitchLength: pitchLength,
		SixYardWidth: 18.32, SixYardLength: 5.5,
		PenaltyAreaWidth: 40.32, PenaltySpotDistance: 11,
		PenaltyAreaLength: 16.5, CircleDiameter: 18.3, CornerDiameter: 2,
		GoalLength: 2, GoalWidth: 7.32, Arc: 53.05,
		InvertY: false, OriginCenter: false,
		PadDefault: 4, PadMultiplier: 1, AspectEqual: true,
	}
	d.Top = d.PitchWidth
	d.Right = d.PitchLength
	d.CenterWidth = d.PitchWidth / 2
	d.CenterLength = d.PitchLength / 2
	d.PenaltyLeft = d.PenaltySpotDistance
	d.penaltyBoxDims()
	d.setupDims()
	return d
}

// metricasports uses a unit square with the aspect taken from the
// physical pitch size, so the marking sizes are scaled into 0..1
func metricasportsDims(pitchWidth, pitchLength float64) *Dims {
	d := &Dims{
		PitchType: TypeMetricasports,
		Top:       0, Bottom: 1, Left: 0, Right: 1,
		PitchWidth: pitchWidth, PitchLength: pitchLength,
		Width: 1, CenterWidth: 0.5, Length: 1, CenterLength: 0.5,
		SixYardWidth: 18.32, SixYardLength: 5.5, PenaltySpotDistance: 11,
		PenaltyAreaWidth: 40.32, PenaltyAreaLength: 16.5,
		CircleDiameter: 18.3, CornerDiameter: 2, GoalLength: 2,
		GoalWidth: 7.32, Arc: 0, InvertY: true, OriginCenter: false,
		PadDefault: 0.04, PadMultiplier: 1, AspectEqual: false,
	}
	d.Aspect = d.PitchWidth / d.PitchLength
	d.SixYardWidth = round4(d.SixYardWidth / d.PitchWidth)
	d.SixYardLength = round4(d.SixYardLength / d.PitchLength)
	d.PenaltyAreaWidth = round4(d.PenaltyAreaWidth / d.PitchWidth)
	d.PenaltyAreaLength = round4(d.PenaltyAreaLength / d.PitchLength)
	d.PenaltySpotDistance = round4(d.PenaltySpotDistance / d.PitchLength)
	d.PenaltyLeft = d.PenaltySpotDistance
	d.GoalLength = round4(d.GoalLength / d.PitchLength)
	d.GoalWidth = round4(d.GoalWidth / d.PitchWidth)
	d.penaltyBoxDims()
	d.setupDims()
	return d
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}

///////////////////////////////////////////////////////////////////////////////
/// CONSTRUCTOR
///////////////////////////////////////////////////////////////////////////////

/**
* NewDims creates the dimensions for the given pitch type.
* pitchWidth and pitchLength (meters) are required for the size-varying
* types ('tracab', 'metricasports', 'custom', 'skillcorner',
* 'secondspectrum') and ignored otherwise.
 */
func NewDims(pitchType string, pitchWidth, pitchLength float64) (*Dims, error) {
	if SizeVaries(pitchType) && (pitchWidth <= 0 || pitchLength <= 0) {
		return nil, fmt.Errorf("pitch type %q needs a positive pitch width and length", pitchType)
	}
	switch pitchType {
	case TypeStatsbomb:
		return statsbombDims(), nil
	case TypeOpta:
		return optaDims(), nil
	case TypeWyscout:
		return wyscoutDims(), nil
	case TypeUefa:
		return uefaDims(), nil
	case TypeTracab:
		return tracabDims(pitchWidth, pitchLength), nil
	case TypeSkillcorner, TypeSecondSpectrum:
		return skillcornerSecondspectrumDims(pitchType, pitchWidth, pitchLength), nil
	case TypeImpect:
		return impectDims(), nil
	case TypeMetricasports:
		return metricasportsDims(pitchWidth, pitchLength), nil
	case TypeCustom:
		return customDims(pitchWidth, pitchLength), nil
	default:
		return nil, fmt.Errorf("invalid pitch type %q, should be one of %v", pitchType, ValidPitchTypes)
	}
}
