package pitch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsbombDims(t *testing.T) {
	d, err := NewDims(TypeStatsbomb, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 120.0, d.Right)
	assert.Equal(t, 80.0, d.Width)
	assert.True(t, d.InvertY)
	assert.True(t, d.AspectEqual)
	assert.InDelta(t, 53.05, d.Arc, 0.001)
	assert.Equal(t, 12.0, d.PenaltySpotDistance)
	assert.Equal(t, 18.0, d.PenaltyAreaLength)

	// nine x markings, eight y markings
	assert.Len(t, d.XMarkingsSorted, 9)
	assert.Len(t, d.YMarkingsSorted, 8)
	assert.Equal(t, [4]float64{0, 120, 0, 80}, d.PitchExtent)
}

func TestUefaDims(t *testing.T) {
	d, err := NewDims(TypeUefa, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 105.0, d.Length)
	assert.Equal(t, 68.0, d.Width)
	assert.False(t, d.InvertY)
	assert.Equal(t, 11.0, d.PenaltySpotDistance)
	assert.InDelta(t, 7.32, d.GoalWidth, 1e-9)
	assert.InDelta(t, 9.15, d.CircleDiameter/2, 1e-9)
}

func TestOptaDims(t *testing.T) {
	d, err := NewDims(TypeOpta, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 100.0, d.Length)
	assert.Equal(t, 100.0, d.Width)
	assert.False(t, d.InvertY)
	assert.False(t, d.AspectEqual)
	assert.InDelta(t, 68.0/105.0, d.Aspect, 1e-9)
	// stretched coordinates cannot carry a true arc angle
	assert.False(t, d.HasArc())
}

func TestWyscoutDims(t *testing.T) {
	d, err := NewDims(TypeWyscout, 0, 0)
	require.NoError(t, err)

	assert.True(t, d.InvertY)
	assert.Equal(t, 12.0, d.GoalWidth)
	assert.Equal(t, 100.0, d.Length)
}

func TestTracabDims(t *testing.T) {
	d, err := NewDims(TypeTracab, 68, 105)
	require.NoError(t, err)

	// centimeters with the origin at the pitch centre
	assert.True(t, d.OriginCenter)
	assert.Equal(t, -5250.0, d.Left)
	assert.Equal(t, 5250.0, d.Right)
	assert.Equal(t, -3400.0, d.Bottom)
	assert.Equal(t, 3400.0, d.Top)
}

func TestMetricasportsDims(t *testing.T) {
	d, err := NewDims(TypeMetricasports, 68, 105)
	require.NoError(t, err)

	assert.Equal(t, 1.0, d.Length)
	assert.Equal(t, 1.0, d.Width)
	assert.True(t, d.InvertY)
	assert.InDelta(t, 68.0/105.0, d.Aspect, 1e-9)
	// markings scale with the physical pitch size
	assert.InDelta(t, round4(16.5/105.0), d.PenaltyAreaLength, 1e-9)
}

func TestSizeVaryingDimsNeedSizes(t *testing.T) {
	for _, pt := range []string{TypeTracab, TypeMetricasports, TypeCustom, TypeSkillcorner, TypeSecondSpectrum} {
		_, err := NewDims(pt, 0, 0)
		assert.Error(t, err, pt)
	}
}

func TestNewDimsInvalidType(t *testing.T) {
	_, err := NewDims("subbuteo", 0, 0)
	assert.Error(t, err)
}

func TestDerivedMarkingsAscend(t *testing.T) {
	for _, pt := range ValidPitchTypes {
		width, length := 0.0, 0.0
		if SizeVaries(pt) {
			width, length = 68, 105
		}
		d, err := NewDims(pt, width, length)
		require.NoError(t, err, pt)

		for i := 1; i < len(d.XMarkingsSorted); i++ {
			assert.Greater(t, d.XMarkingsSorted[i], d.XMarkingsSorted[i-1], pt)
		}
		for i := 1; i < len(d.YMarkingsSorted); i++ {
			assert.Greater(t, d.YMarkingsSorted[i], d.YMarkingsSorted[i-1], pt)
		}
		assert.Len(t, d.PositionalX, 7, pt)
		assert.Len(t, d.PositionalY, 6, pt)
	}
}

func TestStandardizerKnownPoints(t *testing.T) {
	s, err := NewStandardizer(TypeStatsbomb, TypeUefa, 0, 0, 0, 0)
	require.NoError(t, err)

	x, y, err := s.Transform(
		[]float64{60, 12, 0, 120},
		[]float64{40, 40, 0, 80})
	require.NoError(t, err)

	// centre spot to centre spot
	assert.InDelta(t, 52.5, x[0], 1e-9)
	assert.InDelta(t, 34.0, y[0], 1e-9)
	// penalty spot to penalty spot
	assert.InDelta(t, 11.0, x[1], 1e-9)
	assert.InDelta(t, 34.0, y[1], 1e-9)
	// statsbomb measures y downward so the top left corner flips
	assert.InDelta(t, 0.0, x[2], 1e-9)
	assert.InDelta(t, 68.0, y[2], 1e-9)
	assert.InDelta(t, 105.0, x[3], 1e-9)
	assert.InDelta(t, 0.0, y[3], 1e-9)
}

func TestStandardizerRoundTrip(t *testing.T) {
	s, err := NewStandardizer(TypeOpta, TypeTracab, 0, 0, 68, 105)
	require.NoError(t, err)

	xIn := []float64{0, 17, 50, 83, 99.5, 100}
	yIn := []float64{0, 21.1, 50, 78.9, 99, 100}
	x, y, err := s.Transform(xIn, yIn)
	require.NoError(t, err)
	xBack, yBack, err := s.Reverse(x, y)
	require.NoError(t, err)

	for i := range xIn {
		assert.InDelta(t, xIn[i], xBack[i], 1e-6)
		assert.InDelta(t, yIn[i], yBack[i], 1e-6)
	}
}

func TestStandardizerPreservesNaN(t *testing.T) {
	s, err := NewStandardizer(TypeStatsbomb, TypeWyscout, 0, 0, 0, 0)
	require.NoError(t, err)

	x, y, err := s.Transform([]float64{math.NaN(), 60}, []float64{40, math.NaN()})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(x[0]))
	assert.True(t, math.IsNaN(y[1]))
}

func TestStandardizerClipsOutside(t *testing.T) {
	s, err := NewStandardizer(TypeStatsbomb, TypeUefa, 0, 0, 0, 0)
	require.NoError(t, err)

	x, _, err := s.Transform([]float64{-10, 500}, []float64{40, 40})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, x[0], 1e-9)
	assert.InDelta(t, 105.0, x[1], 1e-9)
}
