package draw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColormapEndpoints(t *testing.T) {
	m, err := NewColormap("two", []string{"#000000", "#ffffff"})
	require.NoError(t, err)

	hex, alpha := m.At(0)
	assert.Equal(t, "#000000", hex)
	assert.Equal(t, 1.0, alpha)

	hex, _ = m.At(1)
	assert.Equal(t, "#ffffff", hex)

	// out of range input clamps, NaN reads as zero
	hex, _ = m.At(-5)
	assert.Equal(t, "#000000", hex)
	hex, _ = m.At(math.NaN())
	assert.Equal(t, "#000000", hex)
}

func TestColormapNeedsTwoStops(t *testing.T) {
	_, err := NewColormap("one", []string{"#000000"})
	assert.Error(t, err)

	_, err = NewColormap("bad", []string{"#000000", "notahex"})
	assert.Error(t, err)
}

func TestTransparentColormap(t *testing.T) {
	m, err := NewTransparentColormap("fade", "#ff0000", 0, 0.8)
	require.NoError(t, err)

	hex, alpha := m.At(0)
	assert.Equal(t, "#ff0000", hex)
	assert.InDelta(t, 0.0, alpha, 1e-9)

	hex, alpha = m.At(1)
	assert.Equal(t, "#ff0000", hex)
	assert.InDelta(t, 0.8, alpha, 1e-9)

	_, alpha = m.At(0.5)
	assert.InDelta(t, 0.4, alpha, 1e-9)

	_, err = NewTransparentColormap("bad", "#ff0000", 0.9, 0.1)
	assert.Error(t, err)
}

func TestColormapReversed(t *testing.T) {
	m := Viridis()
	r := m.Reversed()
	assert.Equal(t, "viridis_r", r.Name)

	lowHex, _ := m.At(0)
	highHex, _ := r.At(1)
	assert.Equal(t, lowHex, highHex)
}

func TestBuiltinRamps(t *testing.T) {
	for _, m := range []*Colormap{Viridis(), Hot(), Blues(), Grass()} {
		hex, alpha := m.At(0.5)
		assert.Len(t, hex, 7, m.Name)
		assert.Equal(t, 1.0, alpha, m.Name)
	}
}

func TestPointAngleAndDistance(t *testing.T) {
	p := NewPoint(0, 0)
	assert.InDelta(t, 5.0, p.Distance(NewPoint(3, 4)), 1e-9)
	assert.InDelta(t, math.Pi/2, p.Angle(NewPoint(0, 1)), 1e-9)
	assert.InDelta(t, 3*math.Pi/2, p.Angle(NewPoint(0, -1)), 1e-9)
}
