package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRadar(t *testing.T) *Radar {
	t.Helper()
	r, err := NewRadar(
		[]string{"xG", "Passes", "Tackles"},
		[]float64{0, 0, 0},
		[]float64{10, 10, 10},
		4)
	require.NoError(t, err)
	return r
}

func TestNewRadarValidation(t *testing.T) {
	_, err := NewRadar([]string{"a", "b"}, []float64{0, 0}, []float64{1, 1}, 4)
	assert.Error(t, err)

	_, err = NewRadar([]string{"a", "b", "c"}, []float64{0, 0}, []float64{1, 1, 1}, 4)
	assert.Error(t, err)

	// a zero span cannot be mapped onto the rings
	_, err = NewRadar([]string{"a", "b", "c"}, []float64{5, 0, 0}, []float64{5, 1, 1}, 4)
	assert.Error(t, err)

	_, err = NewRadar([]string{"a", "b", "c"}, []float64{0, 0, 0}, []float64{1, 1, 1}, 1)
	assert.Error(t, err)
}

func TestRadarRadii(t *testing.T) {
	r := testRadar(t)
	assert.Equal(t, 5.0, r.OuterRadius())
	assert.Equal(t, 8.0, r.Limit())
}

func TestRadarVertices(t *testing.T) {
	r := testRadar(t)

	// the low range sits on the centre circle, the high range on the
	// outer ring, out of range values clamp
	vertices, err := r.Vertices([]float64{0, 10, 50})
	require.NoError(t, err)
	require.Len(t, vertices, 3)

	assert.InDelta(t, r.CenterRadius, math.Hypot(vertices[0].X, vertices[0].Y), 1e-9)
	assert.InDelta(t, r.OuterRadius(), math.Hypot(vertices[1].X, vertices[1].Y), 1e-9)
	assert.InDelta(t, r.OuterRadius(), math.Hypot(vertices[2].X, vertices[2].Y), 1e-9)

	// the first spoke points straight up, svg y grows downward
	assert.InDelta(t, 0.0, vertices[0].X, 1e-9)
	assert.InDelta(t, -r.CenterRadius, vertices[0].Y, 1e-9)

	_, err = r.Vertices([]float64{1, 2})
	assert.Error(t, err)
}

func TestRadarReversedRange(t *testing.T) {
	// smaller is better for miscontrols, so the range runs high to low
	r, err := NewRadar(
		[]string{"xG", "Passes", "Miscontrols"},
		[]float64{0, 0, 5},
		[]float64{10, 10, 0},
		4)
	require.NoError(t, err)

	vertices, err := r.Vertices([]float64{0, 0, 0})
	require.NoError(t, err)
	// zero miscontrols reaches the outer ring
	assert.InDelta(t, r.OuterRadius(), math.Hypot(vertices[2].X, vertices[2].Y), 1e-9)
}

func TestRadarLabelRotation(t *testing.T) {
	r := testRadar(t)

	assert.InDelta(t, 0.0, r.labelRotation(0), 1e-9)
	assert.InDelta(t, -90.0, r.labelRotation(math.Pi/2), 1e-9)
	// spokes on the lower half flip so the text never reads upside down
	assert.InDelta(t, -300.0, r.labelRotation(2*math.Pi/3), 1e-9)
	assert.InDelta(t, -360.0, r.labelRotation(math.Pi), 1e-9)
}

func TestRadarRangeLabel(t *testing.T) {
	r := testRadar(t)
	assert.Equal(t, "2.5", r.rangeLabel(0, 2.5))

	r.RoundInt[0] = true
	assert.Equal(t, "3", r.rangeLabel(0, 2.5))

	small, err := NewRadar([]string{"a", "b", "c"},
		[]float64{0, 0, 0}, []float64{0.5, 0.5, 0.5}, 4)
	require.NoError(t, err)
	assert.Equal(t, "0.25", small.rangeLabel(0, 0.25))
}

func TestRadarDraw(t *testing.T) {
	r := testRadar(t)
	scene, err := r.Draw("radar", 600, []float64{5, 5, 5}, nil)
	require.NoError(t, err)

	// the viewBox is square and centred on the origin
	assert.Equal(t, -r.Limit(), scene.MinX)
	assert.Equal(t, 2*r.Limit(), scene.Vw)

	// centre circle, four rings, the polygon, 3x4 range labels and 3
	// param labels
	assert.Equal(t, 1+4+1+12+3, scene.NumElements())

	_, err = r.Draw("radar", 600, []float64{5}, nil)
	assert.Error(t, err)
}

func TestRadarDrawCompare(t *testing.T) {
	r := testRadar(t)
	scene, err := r.Scene("compare", 600, "#f2f2f2")
	require.NoError(t, err)

	err = r.DrawRadarCompare(scene,
		[]float64{2, 4, 6}, []float64{6, 4, 2},
		"#aa65b2", "#697cd4", 0.6)
	require.NoError(t, err)
	assert.Equal(t, 2, scene.NumElements())
}
