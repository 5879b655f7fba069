package pitch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richard-senior/pitchplot/pkg/stats"
)

func statsbombPitch(t *testing.T) *Pitch {
	t.Helper()
	p, err := NewPitch(TypeStatsbomb, 0, 0)
	require.NoError(t, err)
	return p
}

func TestToScene(t *testing.T) {
	p := statsbombPitch(t)
	// inverted providers already count downward like svg
	sx, sy := p.toScene(10, 10)
	assert.Equal(t, 10.0, sx)
	assert.Equal(t, 10.0, sy)

	uefa, err := NewPitch(TypeUefa, 0, 0)
	require.NoError(t, err)
	sx, sy = uefa.toScene(10, 10)
	assert.Equal(t, 10.0, sx)
	assert.Equal(t, 58.0, sy)
}

func TestToSceneVertical(t *testing.T) {
	p := statsbombPitch(t)
	p.Vertical = true
	// the pitch length runs up the scene
	sx, sy := p.toScene(100, 30)
	assert.Equal(t, 30.0, sx)
	assert.Equal(t, 20.0, sy)
}

func TestDrawMarkings(t *testing.T) {
	p := statsbombPitch(t)
	scene, err := p.Draw()
	require.NoError(t, err)

	// boundary, halfway line, centre circle and spot, two penalty
	// areas, two six yard boxes, two penalty spots, two arcs, two goal
	// lines
	assert.Equal(t, 14, scene.NumElements())
	assert.Equal(t, 800.0, scene.Width)
	assert.Greater(t, scene.Width, scene.Height)
}

func TestDrawVertical(t *testing.T) {
	p := statsbombPitch(t)
	p.Vertical = true
	scene, err := p.Draw()
	require.NoError(t, err)
	assert.Equal(t, 800.0, scene.Height)
	assert.Greater(t, scene.Height, scene.Width)
}

func TestDrawHalf(t *testing.T) {
	full := statsbombPitch(t)
	fullScene, err := full.Draw()
	require.NoError(t, err)

	half := statsbombPitch(t)
	half.Half = true
	halfScene, err := half.Draw()
	require.NoError(t, err)

	assert.Less(t, halfScene.NumElements(), fullScene.NumElements())
}

func TestDrawExtras(t *testing.T) {
	p := statsbombPitch(t)
	p.Stripe = true
	p.CornerArcs = true
	p.Positional = true
	p.ShadeMiddle = true
	scene, err := p.Draw()
	require.NoError(t, err)
	// four corner arcs, the shade, stripes and nine positional lines on
	// top of the base markings
	assert.Greater(t, scene.NumElements(), 14+4+1+9)
}

func TestDrawInvalidGoalType(t *testing.T) {
	p := statsbombPitch(t)
	p.GoalType = "net"
	_, err := p.Draw()
	assert.Error(t, err)
}

func TestScatter(t *testing.T) {
	p := statsbombPitch(t)
	scene, err := p.Draw()
	require.NoError(t, err)
	before := scene.NumElements()

	err = p.Scatter(scene, []float64{60, 30, math.NaN()}, []float64{40, 20, 40}, nil)
	require.NoError(t, err)
	assert.Equal(t, before+2, scene.NumElements())

	assert.Error(t, p.Scatter(scene, []float64{1}, []float64{1, 2}, nil))
}

func TestArrows(t *testing.T) {
	p := statsbombPitch(t)
	scene, err := p.Draw()
	require.NoError(t, err)
	before := scene.NumElements()

	// a shaft and a head per arrow
	err = p.Arrows(scene, []float64{10, 20}, []float64{10, 20}, []float64{30, 40}, []float64{30, 40}, nil)
	require.NoError(t, err)
	assert.Equal(t, before+4, scene.NumElements())

	assert.Error(t, p.Arrows(scene, []float64{1}, []float64{1}, []float64{1}, nil, nil))
}

func TestLinesComet(t *testing.T) {
	p := statsbombPitch(t)
	scene, err := p.Draw()
	require.NoError(t, err)
	before := scene.NumElements()

	err = p.Lines(scene, []float64{10}, []float64{10}, []float64{50}, []float64{50},
		&LineOptions{Comet: true, TransparentAlpha: true})
	require.NoError(t, err)
	assert.Equal(t, before+cometSegments, scene.NumElements())

	// plain lines are a single segment
	before = scene.NumElements()
	err = p.Lines(scene, []float64{10}, []float64{10}, []float64{50}, []float64{50}, nil)
	require.NoError(t, err)
	assert.Equal(t, before+1, scene.NumElements())
}

func TestHeatmap(t *testing.T) {
	p := statsbombPitch(t)
	scene, err := p.Draw()
	require.NoError(t, err)
	before := scene.NumElements()

	result, err := p.BinStatistic([]float64{10, 60, 110}, []float64{10, 40, 70}, nil,
		stats.StatCount, &stats.Options{BinsX: 3, BinsY: 2})
	require.NoError(t, err)
	require.NoError(t, p.Heatmap(scene, result, nil, nil))
	// a rect per cell, counts have no gaps
	assert.Equal(t, before+6, scene.NumElements())
}

func TestHeatmapPositional(t *testing.T) {
	p := statsbombPitch(t)
	scene, err := p.Draw()
	require.NoError(t, err)

	results, err := p.BinStatisticPositional([]float64{10, 60, 110}, []float64{10, 40, 70},
		nil, stats.PositionalFull, stats.StatCount)
	require.NoError(t, err)
	require.Len(t, results, 5)
	require.NoError(t, p.HeatmapPositional(scene, results, nil, nil))
	require.NoError(t, p.LabelHeatmap(scene, results[2], "%.0f", &LabelOptions{ExcludeZeros: true}))
}

func TestHexBin(t *testing.T) {
	p := statsbombPitch(t)
	scene, err := p.Draw()
	require.NoError(t, err)
	before := scene.NumElements()

	err = p.HexBin(scene, []float64{60, 60, 61, 20}, []float64{40, 40, 41, 20}, 10, 8, nil, nil)
	require.NoError(t, err)
	assert.Greater(t, scene.NumElements(), before)

	// nothing to bin, nothing drawn
	before = scene.NumElements()
	require.NoError(t, p.HexBin(scene, nil, nil, 10, 8, nil, nil))
	assert.Equal(t, before, scene.NumElements())
}

func TestKDE(t *testing.T) {
	p := statsbombPitch(t)
	scene, err := p.Draw()
	require.NoError(t, err)
	before := scene.NumElements()

	err = p.KDE(scene, []float64{50, 60, 70, 55, 65}, []float64{30, 40, 50, 45, 35}, 12, 8, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, before+12*8, scene.NumElements())
}

func TestConvexHullOverlay(t *testing.T) {
	p := statsbombPitch(t)
	scene, err := p.Draw()
	require.NoError(t, err)
	before := scene.NumElements()

	err = p.ConvexHull(scene, []float64{20, 100, 20, 100, 60}, []float64{10, 10, 70, 70, 40}, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, before+1, scene.NumElements())
}

func TestVoronoiOverlay(t *testing.T) {
	p := statsbombPitch(t)
	scene, err := p.Draw()
	require.NoError(t, err)
	before := scene.NumElements()

	err = p.Voronoi(scene,
		[]float64{30, 90, 30, 90},
		[]float64{20, 20, 60, 60},
		[]bool{true, true, false, false},
		"orange", "blue", 0)
	require.NoError(t, err)
	assert.Equal(t, before+4, scene.NumElements())
}

func TestVoronoiStandardized(t *testing.T) {
	// opta is a stretched coordinate system, so the tessellation runs
	// in uefa meters
	p, err := NewPitch(TypeOpta, 0, 0)
	require.NoError(t, err)
	require.NotNil(t, p.standardizer)

	scene, err := p.Draw()
	require.NoError(t, err)
	before := scene.NumElements()
	err = p.Voronoi(scene,
		[]float64{25, 75, 25, 75},
		[]float64{25, 25, 75, 75},
		[]bool{true, true, false, false},
		"orange", "blue", 0)
	require.NoError(t, err)
	assert.Equal(t, before+4, scene.NumElements())
}

func TestFlowOverlay(t *testing.T) {
	p := statsbombPitch(t)
	scene, err := p.Draw()
	require.NoError(t, err)
	before := scene.NumElements()

	err = p.Flow(scene,
		[]float64{10, 20, 80, 90},
		[]float64{10, 20, 60, 70},
		[]float64{30, 40, 100, 110},
		[]float64{10, 20, 60, 70},
		stats.ArrowSame, 5, &stats.Options{BinsX: 2, BinsY: 2}, "", nil)
	require.NoError(t, err)
	assert.Greater(t, scene.NumElements(), before)

	err = p.Flow(scene, []float64{1}, []float64{1}, []float64{2}, []float64{2},
		"sideways", 5, nil, "", nil)
	assert.Error(t, err)
}

func TestGoalAngle(t *testing.T) {
	p := statsbombPitch(t)
	scene, err := p.Draw()
	require.NoError(t, err)
	before := scene.NumElements()

	require.NoError(t, p.GoalAngle(scene, 100, 30, "right", nil, 0))
	assert.Equal(t, before+1, scene.NumElements())

	assert.Error(t, p.GoalAngle(scene, 100, 30, "sideline", nil, 0))
}

func TestAnnotate(t *testing.T) {
	p := statsbombPitch(t)
	scene, err := p.Draw()
	require.NoError(t, err)

	require.NoError(t, p.Annotate(scene, "1 - 0", 60, 40, nil))
	assert.Error(t, p.Annotate(scene, "", 60, 40, nil))
}
