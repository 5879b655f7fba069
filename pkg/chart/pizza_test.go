package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPizza(t *testing.T) *Pizza {
	t.Helper()
	p, err := NewPizza(
		[]string{"xG", "Shots", "Passes", "Tackles"},
		[]float64{0, 0, 0, 0},
		[]float64{10, 10, 10, 10})
	require.NoError(t, err)
	return p
}

func TestNewPizzaValidation(t *testing.T) {
	_, err := NewPizza([]string{"a", "b"}, nil, nil)
	assert.Error(t, err)

	_, err = NewPizza([]string{"a", "b", "c"}, []float64{0, 0, 0}, nil)
	assert.Error(t, err)

	_, err = NewPizza([]string{"a", "b", "c"}, []float64{0, 0}, []float64{1, 1})
	assert.Error(t, err)

	_, err = NewPizza([]string{"a", "b", "c"}, []float64{5, 0, 0}, []float64{5, 1, 1})
	assert.Error(t, err)
}

func TestPizzaNormalize(t *testing.T) {
	p := testPizza(t)

	out, err := p.Normalize([]float64{0, 5, 10, 15})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, out[0], 1e-9)
	assert.InDelta(t, 50.0, out[1], 1e-9)
	assert.InDelta(t, 100.0, out[2], 1e-9)
	// out of range clips to the wedge limit
	assert.InDelta(t, 100.0, out[3], 1e-9)

	_, err = p.Normalize([]float64{1, 2})
	assert.Error(t, err)
}

func TestPizzaNormalizeReversedRange(t *testing.T) {
	// smaller is better, the range runs high to low
	p, err := NewPizza(
		[]string{"Miscontrols", "Errors", "Fouls"},
		[]float64{10, 10, 10},
		[]float64{0, 0, 0})
	require.NoError(t, err)

	out, err := p.Normalize([]float64{2, 0, 15})
	require.NoError(t, err)
	assert.InDelta(t, 80.0, out[0], 1e-9)
	assert.InDelta(t, 100.0, out[1], 1e-9)
	assert.InDelta(t, 0.0, out[2], 1e-9)
}

func TestPizzaNormalizeWithoutRanges(t *testing.T) {
	p, err := NewPizza([]string{"a", "b", "c"}, nil, nil)
	require.NoError(t, err)

	out, err := p.Normalize([]float64{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, out)
}

func TestPizzaDraw(t *testing.T) {
	p := testPizza(t)
	scene, err := p.Draw("pizza", 600, []float64{2, 4, 6, 8}, nil, nil)
	require.NoError(t, err)

	// four boundary lines, four circles, four wedges, four param and
	// four value labels
	assert.Equal(t, 4+4+4+4+4, scene.NumElements())

	_, err = p.Draw("pizza", 600, []float64{1, 2}, nil, nil)
	assert.Error(t, err)

	opt := DefaultPizzaOptions()
	opt.SliceColors = []string{"#111111"}
	_, err = p.Draw("pizza", 600, []float64{2, 4, 6, 8}, nil, opt)
	assert.Error(t, err)
}

func TestPizzaDrawComparePaintsShorterOnTop(t *testing.T) {
	p := testPizza(t)
	scene, err := p.Draw("pizza", 600,
		[]float64{2, 2, 2, 2}, []float64{8, 8, 8, 8}, nil)
	require.NoError(t, err)

	svg, err := scene.SVG()
	require.NoError(t, err)

	// the comparison wedges are longer here, so the main wedges paint
	// after them and stay visible
	mainAt := strings.Index(svg, "#1a78cf")
	compAt := strings.Index(svg, "#ff9300")
	require.GreaterOrEqual(t, mainAt, 0)
	require.GreaterOrEqual(t, compAt, 0)
	assert.Greater(t, mainAt, compAt)
}
