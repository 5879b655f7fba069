package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richard-senior/pitchplot/pkg/draw"
)

func TestNewGridValidation(t *testing.T) {
	_, err := NewGrid("fig", nil, 600, "")
	assert.Error(t, err)

	spec := DefaultGridSpec(0, 1)
	_, err = NewGrid("fig", spec, 600, "")
	assert.Error(t, err)

	spec = DefaultGridSpec(1, 1)
	spec.AxAspect = -1
	_, err = NewGrid("fig", spec, 600, "")
	assert.Error(t, err)

	// strips plus grid taller than the figure
	spec = DefaultGridSpec(1, 1)
	spec.GridHeight = 0.9
	_, err = NewGrid("fig", spec, 600, "")
	assert.Error(t, err)
}

func TestGridSingleCell(t *testing.T) {
	spec := DefaultGridSpec(1, 1)
	g, err := NewGrid("fig", spec, 1000, "#ffffff")
	require.NoError(t, err)

	assert.Equal(t, 1, g.NumPanels())
	assert.Equal(t, 1000.0, g.FigHeight)
	// width ratio for one square panel
	assert.InDelta(t, 1000*spec.GridHeight/spec.GridWidth, g.FigWidth, 1e-6)
}

func TestGridLayout(t *testing.T) {
	g, err := NewGrid("fig", DefaultGridSpec(2, 3), 600, "")
	require.NoError(t, err)
	require.Equal(t, 6, g.NumPanels())

	// panels are row major, the top row first
	assert.Less(t, g.panels[0].x, g.panels[1].x)
	assert.Less(t, g.panels[0].y, g.panels[3].y)
	assert.InDelta(t, g.panels[0].y, g.panels[2].y, 1e-9)

	// everything stays inside the figure
	for _, p := range g.panels {
		assert.GreaterOrEqual(t, p.x, 0.0)
		assert.GreaterOrEqual(t, p.y, 0.0)
		assert.LessOrEqual(t, p.x+p.w, 1.0+1e-9)
		assert.LessOrEqual(t, p.y+p.h, 1.0+1e-9)
	}

	// the title strip sits above the top row, the endnote below the
	// bottom row
	assert.Less(t, g.title.y, g.panels[0].y)
	assert.Greater(t, g.endnote.y, g.panels[3].y+g.panels[3].h-1e-9)
}

func TestGridAddPanel(t *testing.T) {
	g, err := NewGrid("fig", DefaultGridSpec(1, 2), 600, "")
	require.NoError(t, err)

	panel, err := draw.NewScene("panel", 100, 100)
	require.NoError(t, err)
	panel.Add(&draw.Circle{Cx: 50, Cy: 50, R: 10, Style: &draw.Style{}})

	require.NoError(t, g.AddPanel(0, 0, panel))
	assert.Error(t, g.AddPanel(0, 2, panel))
	assert.Error(t, g.AddPanel(0, 1, nil))

	svg, err := g.Scene().SVG()
	require.NoError(t, err)
	assert.Contains(t, svg, `<svg x=`)
	assert.Contains(t, svg, "<circle")
}

func TestGridTitleAndEndnote(t *testing.T) {
	g, err := NewGrid("fig", DefaultGridSpec(1, 1), 600, "")
	require.NoError(t, err)

	require.NoError(t, g.Title("El Clasico shot map", "#000000", 0))
	require.NoError(t, g.Endnote("data: statsbomb open data", "#666666", 0))

	svg, err := g.Scene().SVG()
	require.NoError(t, err)
	assert.Contains(t, svg, "El Clasico shot map")
	assert.True(t, strings.Contains(svg, `font-weight="bold"`))

	// a spec without strips rejects the calls
	spec := DefaultGridSpec(1, 1)
	spec.TitleHeight = 0
	spec.EndnoteHeight = 0
	bare, err := NewGrid("fig", spec, 600, "")
	require.NoError(t, err)
	assert.Error(t, bare.Title("t", "#000000", 0))
	assert.Error(t, bare.Endnote("e", "#000000", 0))
}
