package chart

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/richard-senior/pitchplot/pkg/draw"
)

///////////////////////////////////////////////////////////////////////////////
/// GRID
///////////////////////////////////////////////////////////////////////////////

/**
* GridSpec describes a figure layout: a grid of equally sized panels
* with an optional title strip above and endnote strip below. Heights
* and widths are fractions of the figure, so the same spec scales to
* any output size.
 */
type GridSpec struct {
	Rows, Cols int
	// AxAspect is the width over height ratio of each panel
	AxAspect float64
	// GridHeight and GridWidth are the share of the figure taken by
	// the panel grid
	GridHeight float64
	GridWidth  float64
	// Space is the share of the grid height reserved for the gaps
	// between panels
	Space float64
	// Left and Bottom position the grid in figure fractions. Negative
	// values centre it.
	Left   float64
	Bottom float64

	EndnoteHeight float64
	EndnoteSpace  float64
	TitleHeight   float64
	TitleSpace    float64
}

func DefaultGridSpec(rows, cols int) *GridSpec {
	return &GridSpec{
		Rows:          rows,
		Cols:          cols,
		AxAspect:      1,
		GridHeight:    0.715,
		GridWidth:     0.95,
		Space:         0.05,
		Left:          -1,
		Bottom:        -1,
		EndnoteHeight: 0.065,
		EndnoteSpace:  0.01,
		TitleHeight:   0.15,
		TitleSpace:    0.01,
	}
}

// panelRect is a panel's position in figure fractions, measured from
// the top left as svg does
type panelRect struct {
	x, y, w, h float64
}

/**
* Grid lays the panels out and composes their scenes into one figure.
* Each panel keeps its own coordinate space, the grid only decides
* where on the figure it lands.
 */
type Grid struct {
	Spec *GridSpec
	// figure size in pixels, width derived from the panel aspect so
	// panels come out undistorted
	FigWidth  float64
	FigHeight float64

	panels  []panelRect
	title   panelRect
	endnote panelRect
	scene   *draw.Scene
}

/**
* NewGrid computes the layout for a spec and creates the figure scene.
* figHeight is the output height in pixels.
 */
func NewGrid(name string, spec *GridSpec, figHeight float64, background string) (*Grid, error) {
	if spec == nil {
		return nil, fmt.Errorf("spec is nil")
	}
	if spec.Rows < 1 || spec.Cols < 1 {
		return nil, fmt.Errorf("grid needs at least 1 row and 1 column, got %d x %d", spec.Rows, spec.Cols)
	}
	if spec.AxAspect <= 0 {
		return nil, fmt.Errorf("panel aspect must be positive, got %f", spec.AxAspect)
	}

	titleSpace := spec.TitleSpace
	if spec.TitleHeight == 0 {
		titleSpace = 0
	}
	endnoteSpace := spec.EndnoteSpace
	if spec.EndnoteHeight == 0 {
		endnoteSpace = 0
	}

	axesHeight := spec.EndnoteHeight + endnoteSpace + spec.GridHeight + spec.TitleHeight + titleSpace
	if axesHeight > 1 {
		return nil, fmt.Errorf("layout extends past the figure, total height fraction %f", axesHeight)
	}

	left := spec.Left
	if left < 0 {
		left = (1 - spec.GridWidth) / 2
	}
	bottom := spec.Bottom
	if bottom < 0 {
		bottom = (1 - axesHeight) / 2
	}
	if bottom+axesHeight > 1 {
		return nil, fmt.Errorf("layout extends past the figure, bottom %f plus height %f", bottom, axesHeight)
	}
	if left+spec.GridWidth > 1 {
		return nil, fmt.Errorf("layout extends past the figure, left %f plus width %f", left, spec.GridWidth)
	}

	nrows := float64(spec.Rows)
	ncols := float64(spec.Cols)

	// figure width relative to the height so the panels keep their
	// aspect ratio
	var figWidthRatio, spaceHeight, spaceWidth, axHeight float64
	switch {
	case spec.Rows > 1 && spec.Cols > 1:
		figWidthRatio = spec.GridHeight / spec.GridWidth *
			((1-spec.Space)*spec.AxAspect*ncols/nrows + spec.Space*(ncols-1)/(nrows-1))
		spaceHeight = spec.GridHeight * spec.Space / (nrows - 1)
		spaceWidth = spaceHeight / figWidthRatio
		axHeight = spec.GridHeight * (1 - spec.Space) / nrows
	case spec.Rows > 1:
		figWidthRatio = spec.GridHeight / spec.GridWidth * (1 - spec.Space) * spec.AxAspect / nrows
		spaceHeight = spec.GridHeight * spec.Space / (nrows - 1)
		axHeight = spec.GridHeight * (1 - spec.Space) / nrows
	case spec.Cols > 1:
		figWidthRatio = spec.GridHeight / spec.GridWidth * (spec.Space + spec.AxAspect*ncols)
		spaceWidth = spec.GridHeight * spec.Space / figWidthRatio / (ncols - 1)
		axHeight = spec.GridHeight
	default:
		figWidthRatio = spec.GridHeight * spec.AxAspect / spec.GridWidth
		axHeight = spec.GridHeight
	}
	axWidth := axHeight * spec.AxAspect / figWidthRatio

	gridBottom := bottom + spec.EndnoteHeight + endnoteSpace

	g := &Grid{
		Spec:      spec,
		FigWidth:  figHeight * figWidthRatio,
		FigHeight: figHeight,
	}

	// panels row major, top row first, converting bottom-up fractions
	// to the top-down fractions svg uses
	for r := 0; r < spec.Rows; r++ {
		panelBottom := gridBottom + float64(spec.Rows-1-r)*(spaceHeight+axHeight)
		for c := 0; c < spec.Cols; c++ {
			g.panels = append(g.panels, panelRect{
				x: left + float64(c)*(spaceWidth+axWidth),
				y: 1 - panelBottom - axHeight,
				w: axWidth,
				h: axHeight,
			})
		}
	}
	if spec.TitleHeight > 0 {
		titleBottom := gridBottom + spec.GridHeight + titleSpace
		g.title = panelRect{x: left, y: 1 - titleBottom - spec.TitleHeight,
			w: spec.GridWidth, h: spec.TitleHeight}
	}
	if spec.EndnoteHeight > 0 {
		g.endnote = panelRect{x: left, y: 1 - bottom - spec.EndnoteHeight,
			w: spec.GridWidth, h: spec.EndnoteHeight}
	}

	scene, err := draw.NewScene(name, g.FigWidth, g.FigHeight)
	if err != nil {
		return nil, err
	}
	scene.Background = background
	g.scene = scene
	return g, nil
}

// NumPanels returns rows times cols
func (g *Grid) NumPanels() int { return len(g.panels) }

// pixels converts a figure-fraction rect to scene pixels
func (g *Grid) pixels(r panelRect) (x, y, w, h float64) {
	return r.x * g.FigWidth, r.y * g.FigHeight, r.w * g.FigWidth, r.h * g.FigHeight
}

/**
* AddPanel places a rendered scene into a grid cell. The panel scene's
* viewBox is scaled to fill the cell, so render panels with the same
* aspect ratio as the grid spec's AxAspect to avoid distortion.
 */
func (g *Grid) AddPanel(row, col int, panel *draw.Scene) error {
	if row < 0 || row >= g.Spec.Rows || col < 0 || col >= g.Spec.Cols {
		return fmt.Errorf("panel %d,%d outside grid %dx%d", row, col, g.Spec.Rows, g.Spec.Cols)
	}
	if panel == nil {
		return fmt.Errorf("panel scene is nil")
	}
	x, y, w, h := g.pixels(g.panels[row*g.Spec.Cols+col])
	g.scene.Add(&draw.Inset{
		ID:    uuid.New().String(),
		X:     x,
		Y:     y,
		Width: w, Height: h,
		Scene:  panel,
		Zorder: zValues,
	})
	return nil
}

// Title writes the figure title into the title strip. size is in
// pixels, zero picks a size from the strip height.
func (g *Grid) Title(text, color string, size float64) error {
	if g.Spec.TitleHeight == 0 {
		return fmt.Errorf("grid has no title strip")
	}
	x, y, w, h := g.pixels(g.title)
	if size <= 0 {
		size = h * 0.4
	}
	g.scene.Add(&draw.Text{
		X: x + w/2, Y: y + h/2 + size/3,
		Content: text,
		Size:    size,
		Color:   color,
		Anchor:  "middle",
		Weight:  "bold",
		Zorder:  zLabels,
	})
	return nil
}

// Endnote writes a credit line into the endnote strip, right aligned
func (g *Grid) Endnote(text, color string, size float64) error {
	if g.Spec.EndnoteHeight == 0 {
		return fmt.Errorf("grid has no endnote strip")
	}
	x, y, w, h := g.pixels(g.endnote)
	if size <= 0 {
		size = h * 0.4
	}
	g.scene.Add(&draw.Text{
		X: x + w, Y: y + h/2 + size/3,
		Content: text,
		Size:    size,
		Color:   color,
		Anchor:  "end",
		Zorder:  zLabels,
	})
	return nil
}

// Scene returns the composed figure
func (g *Grid) Scene() *draw.Scene { return g.scene }
