package chart

import (
	"fmt"
	"math"

	"github.com/richard-senior/pitchplot/pkg/draw"
)

///////////////////////////////////////////////////////////////////////////////
/// PIZZA
///////////////////////////////////////////////////////////////////////////////

/**
* Pizza draws a pizza chart: one wedge per parameter on a polar axis,
* with the wedge length showing the value. The chart starts at the top
* and runs clockwise, with a hole in the middle so short wedges stay
* readable.
*
* When ranges are set, values are clipped and mapped to a 0-100
* proportion of the wedge length, so parameters on different scales
* share one chart. A reversed range (min > max) flips a parameter
* where smaller is better.
 */
type Pizza struct {
	Params   []string
	MinRange []float64
	MaxRange []float64
	// InnerSize is the size of the centre hole in value units, Limit is
	// the value at the outer circle
	InnerSize float64
	Limit     float64

	StraightLineColor string
	StraightLineWidth float64
	LastCircleColor   string
	LastCircleWidth   float64
	OtherCircleColor  string
	OtherCircleWidth  float64

	theta []float64 // wedge centre angles, clockwise from the top
	width float64   // angular width of a wedge
}

/**
* NewPizza creates a pizza chart for the given parameters. minRange and
* maxRange may both be nil, in which case the raw values are plotted
* against Limit directly.
 */
func NewPizza(params []string, minRange, maxRange []float64) (*Pizza, error) {
	if len(params) < 3 {
		return nil, fmt.Errorf("pizza needs at least 3 params, got %d", len(params))
	}
	if (minRange == nil) != (maxRange == nil) {
		return nil, fmt.Errorf("minRange and maxRange must both be set or both be nil")
	}
	if minRange != nil {
		if len(minRange) != len(params) || len(maxRange) != len(params) {
			return nil, fmt.Errorf("params, minRange and maxRange must be the same size, got %d, %d and %d",
				len(params), len(minRange), len(maxRange))
		}
		for i := range params {
			if minRange[i] == maxRange[i] {
				return nil, fmt.Errorf("minRange and maxRange are equal for %q", params[i])
			}
		}
	}
	n := len(params)
	width := 2 * math.Pi / float64(n)
	theta := make([]float64, n)
	for i := 0; i < n; i++ {
		theta[i] = width * float64(i)
	}
	return &Pizza{
		Params:            params,
		MinRange:          minRange,
		MaxRange:          maxRange,
		InnerSize:         5,
		Limit:             100,
		StraightLineColor: "#808080",
		StraightLineWidth: 0.5,
		LastCircleColor:   "#000000",
		LastCircleWidth:   0.5,
		OtherCircleColor:  "#808080",
		OtherCircleWidth:  0.25,
		theta:             theta,
		width:             width,
	}, nil
}

// Normalize maps raw values onto the 0-Limit wedge scale, clipping to
// the parameter ranges. Without ranges the values pass through as is.
func (p *Pizza) Normalize(values []float64) ([]float64, error) {
	if len(values) != len(p.Params) {
		return nil, fmt.Errorf("values and params must be the same size, got %d and %d",
			len(values), len(p.Params))
	}
	if p.MinRange == nil {
		out := make([]float64, len(values))
		copy(out, values)
		return out, nil
	}
	out := make([]float64, len(values))
	for i, v := range values {
		lo := math.Min(p.MinRange[i], p.MaxRange[i])
		hi := math.Max(p.MinRange[i], p.MaxRange[i])
		clipped := math.Min(math.Max(v, lo), hi)
		span := math.Abs(p.MaxRange[i] - p.MinRange[i])
		out[i] = math.Abs(clipped-p.MinRange[i]) / span * p.Limit
	}
	return out, nil
}

// outer drawing radius of the chart in scene units
const pizzaRadius = 100.0

// polar maps (theta clockwise from top, value) to scene coordinates.
// The centre hole takes up InnerSize of the radial scale.
func (p *Pizza) polar(theta, value float64) *draw.Point {
	r := (p.InnerSize + value) / (p.InnerSize + p.Limit) * pizzaRadius
	return draw.NewPoint(math.Sin(theta)*r, -math.Cos(theta)*r)
}

// wedge builds an annular sector path from value 0 out to v, centred
// on the given angle
func (p *Pizza) wedge(theta, v float64) string {
	t1 := theta - p.width/2
	t2 := theta + p.width/2
	rIn := (p.InnerSize) / (p.InnerSize + p.Limit) * pizzaRadius
	rOut := (p.InnerSize + v) / (p.InnerSize + p.Limit) * pizzaRadius
	o1 := draw.NewPoint(math.Sin(t1)*rOut, -math.Cos(t1)*rOut)
	o2 := draw.NewPoint(math.Sin(t2)*rOut, -math.Cos(t2)*rOut)
	i1 := draw.NewPoint(math.Sin(t1)*rIn, -math.Cos(t1)*rIn)
	i2 := draw.NewPoint(math.Sin(t2)*rIn, -math.Cos(t2)*rIn)
	// theta runs clockwise on screen so the outer arc sweeps with
	// flag 1 and the inner arc back with flag 0
	return fmt.Sprintf("M %s,%s A %s %s 0 0 1 %s,%s L %s,%s A %s %s 0 0 0 %s,%s Z",
		draw.Ftoa(o1.X), draw.Ftoa(o1.Y),
		draw.Ftoa(rOut), draw.Ftoa(rOut),
		draw.Ftoa(o2.X), draw.Ftoa(o2.Y),
		draw.Ftoa(i2.X), draw.Ftoa(i2.Y),
		draw.Ftoa(rIn), draw.Ftoa(rIn),
		draw.Ftoa(i1.X), draw.Ftoa(i1.Y))
}

/**
* PizzaOptions collects the colours for a pizza render. SliceColors may
* be nil for a single colour, or one colour per parameter.
 */
type PizzaOptions struct {
	Background      string
	SliceColor      string
	SliceColors     []string
	CompareColor    string
	CompareColors   []string
	ColorBlankSpace bool
	BlankAlpha      float64
	ValueColor      string
	ParamColor      string
	ParamLocation   float64
	TextSize        float64
	ShowValues      bool
}

func DefaultPizzaOptions() *PizzaOptions {
	return &PizzaOptions{
		Background:    "#f2f2f2",
		SliceColor:    "#1a78cf",
		CompareColor:  "#ff9300",
		BlankAlpha:    0.5,
		ValueColor:    "#000000",
		ParamColor:    "#000000",
		ParamLocation: 108,
		TextSize:      4,
		ShowValues:    true,
	}
}

func (o *PizzaOptions) sliceColor(i int) string {
	if o.SliceColors != nil {
		return o.SliceColors[i]
	}
	return o.SliceColor
}

func (o *PizzaOptions) compareColor(i int) string {
	if o.CompareColors != nil {
		return o.CompareColors[i]
	}
	return o.CompareColor
}

/**
* Draw renders the pizza. compareValues may be nil for a single player
* chart. On a comparison chart the shorter wedge of each pair is drawn
* on top so both stay visible.
 */
func (p *Pizza) Draw(name string, size float64, values, compareValues []float64,
	opt *PizzaOptions) (*draw.Scene, error) {
	if opt == nil {
		opt = DefaultPizzaOptions()
	}
	if opt.SliceColors != nil && len(opt.SliceColors) != len(p.Params) {
		return nil, fmt.Errorf("sliceColors and params must be the same size, got %d and %d",
			len(opt.SliceColors), len(p.Params))
	}

	scene, err := draw.NewScene(name, size, size)
	if err != nil {
		return nil, err
	}
	lim := pizzaRadius * 1.3
	if err := scene.SetViewBox(-lim, -lim, 2*lim, 2*lim); err != nil {
		return nil, err
	}
	scene.Background = opt.Background

	normValues, err := p.Normalize(values)
	if err != nil {
		return nil, err
	}
	var normCompare []float64
	if compareValues != nil {
		normCompare, err = p.Normalize(compareValues)
		if err != nil {
			return nil, err
		}
	}

	p.drawGrid(scene)

	for i := range p.Params {
		if opt.ColorBlankSpace {
			blank := draw.NewFillStyle(opt.sliceColor(i), opt.BlankAlpha)
			scene.Add(&draw.PathShape{D: p.wedge(p.theta[i], p.Limit), Style: blank, Zorder: zBackground})
		}
		main := draw.NewFillStyle(opt.sliceColor(i), 1)
		mainZ := zValues
		if normCompare != nil {
			// the shorter wedge on top so both stay visible
			compZ := mainZ + 0.1
			if normValues[i] <= normCompare[i] {
				compZ = mainZ - 0.1
			}
			comp := draw.NewFillStyle(opt.compareColor(i), 1)
			scene.Add(&draw.PathShape{D: p.wedge(p.theta[i], normCompare[i]), Style: comp, Zorder: compZ})
		}
		scene.Add(&draw.PathShape{D: p.wedge(p.theta[i], normValues[i]), Style: main, Zorder: mainZ})
	}

	p.drawLabels(scene, values, normValues, compareValues, normCompare, opt)
	return scene, nil
}

// drawGrid draws the slice boundary lines, the quarter circles and the
// outer circle
func (p *Pizza) drawGrid(scene *draw.Scene) {
	for _, t := range p.theta {
		edge := t + p.width/2
		inner := p.polar(edge, 0)
		outer := p.polar(edge, p.Limit)
		scene.Add(&draw.Line{
			X1: inner.X, Y1: inner.Y, X2: outer.X, Y2: outer.Y,
			Style:  draw.NewStyle(p.StraightLineColor, p.StraightLineWidth),
			Zorder: zGridLines,
		})
	}
	for k := 1; k <= 4; k++ {
		v := p.Limit * float64(k) / 4
		r := (p.InnerSize + v) / (p.InnerSize + p.Limit) * pizzaRadius
		color := p.OtherCircleColor
		width := p.OtherCircleWidth
		dash := "2,2"
		if k == 4 {
			color = p.LastCircleColor
			width = p.LastCircleWidth
			dash = ""
		}
		style := draw.NewStyle(color, width)
		style.DashArray = dash
		scene.Add(&draw.Circle{Cx: 0, Cy: 0, R: r, Style: style, Zorder: zGridLines})
	}
}

func (p *Pizza) drawLabels(scene *draw.Scene, values, normValues,
	compareValues, normCompare []float64, opt *PizzaOptions) {
	for i, t := range p.theta {
		// flip labels on the lower half so they never read upside down
		rot := t
		if rot > math.Pi/2 && rot < 3*math.Pi/2 {
			rot += math.Pi
		}
		deg := -rot * 180 / math.Pi

		pt := p.polar(t, opt.ParamLocation)
		scene.Add(&draw.Text{
			X: pt.X, Y: pt.Y,
			Content:  p.Params[i],
			Size:     opt.TextSize,
			Color:    opt.ParamColor,
			Anchor:   "middle",
			Rotation: deg,
			Weight:   "bold",
			Zorder:   zLabels,
		})

		if !opt.ShowValues {
			continue
		}
		vt := p.polar(t, normValues[i])
		scene.Add(&draw.Text{
			X: vt.X, Y: vt.Y,
			Content: draw.Ftoa(values[i]),
			Size:    opt.TextSize,
			Color:   opt.ValueColor,
			Anchor:  "middle",
			Zorder:  zLabels,
		})
		if normCompare != nil {
			ct := p.polar(t, normCompare[i])
			scene.Add(&draw.Text{
				X: ct.X, Y: ct.Y,
				Content: draw.Ftoa(compareValues[i]),
				Size:    opt.TextSize,
				Color:   opt.ValueColor,
				Anchor:  "middle",
				Zorder:  zLabels,
			})
		}
	}
}
