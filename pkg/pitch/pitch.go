package pitch

import (
	"fmt"
	"math"

	"github.com/richard-senior/pitchplot/internal/logger"
	"github.com/richard-senior/pitchplot/pkg/draw"
	"github.com/richard-senior/pitchplot/pkg/stats"
)

///////////////////////////////////////////////////////////////////////////////
/// PITCH
///////////////////////////////////////////////////////////////////////////////

// The goal rendering styles
const (
	GoalLine = "line"
	GoalBox  = "box"
	GoalPost = "circle"
)

// paint order of the pitch layers
const (
	zStripes  = 0.2
	zShade    = 0.4
	zLines    = 1.0
	zOverlay  = 2.0
	zText     = 3.0
)

/**
* Pitch renders a soccer pitch and overlays into a draw.Scene.
* All overlay methods take coordinates in the pitch's own convention
* and handle the vertical orientation and inverted-y providers
* internally, so callers never translate coordinates themselves.
 */
type Pitch struct {
	Dims *Dims

	// vertical rotates the pitch so the attacking direction runs upwards
	Vertical bool
	// half shows the attacking half only
	Half bool

	PitchColor string
	LineColor  string
	LineWidth  float64
	LineZorder float64

	GoalType  string
	SpotScale float64

	Stripe      bool
	StripeColor string
	CornerArcs  bool

	// Juego de Posición guide lines
	Positional        bool
	PositionalColor   string
	PositionalZorder  float64
	ShadeMiddle       bool
	ShadeColor        string

	PadLeft, PadRight, PadBottom, PadTop float64

	// output size of the long side in pixels
	FigSize float64

	// converter to uefa coordinates for the spatial methods on
	// stretched coordinate systems
	standardizer *Standardizer
}

/**
* NewPitch creates a pitch for the given provider with the default
* styling. pitchWidth and pitchLength (meters) are only needed for the
* size-varying pitch types.
 */
func NewPitch(pitchType string, pitchWidth, pitchLength float64) (*Pitch, error) {
	dims, err := NewDims(pitchType, pitchWidth, pitchLength)
	if err != nil {
		return nil, err
	}
	pad := dims.PadDefault * dims.PadMultiplier
	p := &Pitch{
		Dims:             dims,
		PitchColor:       "#aabb97",
		LineColor:        "white",
		LineWidth:        dims.Length / 600,
		LineZorder:       zLines,
		GoalType:         GoalLine,
		SpotScale:        0.002,
		StripeColor:      "#c2d59d",
		PositionalColor:  "#eadddd",
		PositionalZorder: zLines,
		ShadeColor:       "#f2f2f2",
		PadLeft:          pad,
		PadRight:         pad,
		PadBottom:        pad,
		PadTop:           pad,
		FigSize:          800,
	}
	if dims.Aspect != 1 {
		uefa, err := NewDims(TypeUefa, 0, 0)
		if err != nil {
			return nil, err
		}
		p.standardizer, err = NewStandardizerDims(dims, uefa)
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Space returns the binning space for the pitch's coordinate convention
func (p *Pitch) Space() *stats.Space {
	return &stats.Space{
		XMin:    p.Dims.Left,
		XMax:    p.Dims.Right,
		YMin:    p.Dims.PitchExtent[2],
		YMax:    p.Dims.PitchExtent[3],
		InvertY: p.Dims.InvertY,
		Bottom:  p.Dims.Bottom,
	}
}

// visible x range, trimmed to the attacking half when half is set
func (p *Pitch) xRange() (float64, float64) {
	if p.Half {
		return p.Dims.CenterLength, p.Dims.Right
	}
	return p.Dims.Left, p.Dims.Right
}

/**
* toScene maps a pitch coordinate onto the scene's drawing space.
* SVG y grows downward, so providers with y growing upward are flipped.
* The vertical orientation swaps the axes so the pitch length runs
* up the scene.
 */
func (p *Pitch) toScene(x, y float64) (float64, float64) {
	d := p.Dims
	yLo, yHi := d.YExtent()
	if !p.Vertical {
		if d.InvertY {
			return x, y
		}
		return x, yLo + yHi - y
	}
	// vertical: pitch x runs up the scene
	sy := d.Left + d.Right - x
	sx := y
	if !d.InvertY {
		sx = yLo + yHi - y
	}
	return sx, sy
}

// toSceneXY maps coordinate slices, dropping nothing
func (p *Pitch) toSceneXY(x, y []float64) ([]float64, []float64) {
	sx := make([]float64, len(x))
	sy := make([]float64, len(y))
	for i := range x {
		sx[i], sy[i] = p.toScene(x[i], y[i])
	}
	return sx, sy
}

/**
* Draw creates the scene and renders the pitch markings into it:
* boundary, halfway line, centre circle and spot, penalty boxes, arcs
* and spots, six yard boxes, goals, and the optional stripes, corner
* arcs, positional lines and middle shading.
 */
func (p *Pitch) Draw() (*draw.Scene, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	d := p.Dims

	x0, x1 := p.xRange()
	yLo, yHi := d.YExtent()

	// viewBox in scene coordinates, padded
	vx0, vy0 := math.Inf(1), math.Inf(1)
	vx1, vy1 := math.Inf(-1), math.Inf(-1)
	for _, c := range [][2]float64{{x0, yLo}, {x0, yHi}, {x1, yLo}, {x1, yHi}} {
		sx, sy := p.toScene(c[0], c[1])
		vx0 = math.Min(vx0, sx)
		vy0 = math.Min(vy0, sy)
		vx1 = math.Max(vx1, sx)
		vy1 = math.Max(vy1, sy)
	}
	// pads are given in pitch directions: left/right along the length
	if !p.Vertical {
		vx0 -= p.PadLeft
		vx1 += p.PadRight
		vy0 -= p.PadTop
		vy1 += p.PadBottom
	} else {
		vy1 += p.PadLeft
		vy0 -= p.PadRight
		vx0 -= p.PadBottom
		vx1 += p.PadTop
	}

	vw := vx1 - vx0
	vh := vy1 - vy0

	// the display stretch for square coordinate systems
	stretch := 1.0
	if !d.AspectEqual {
		stretch = d.Aspect
	}
	var pxW, pxH float64
	if !p.Vertical {
		pxW = p.FigSize
		pxH = p.FigSize * vh / vw * stretch
	} else {
		pxH = p.FigSize
		pxW = p.FigSize * vw / vh * stretch
	}

	scene, err := draw.NewScene("pitch", pxW, pxH)
	if err != nil {
		return nil, err
	}
	if err := scene.SetViewBox(vx0, vy0, vw, vh); err != nil {
		return nil, err
	}
	scene.Background = p.PitchColor

	if p.Stripe {
		p.drawStripes(scene)
	}
	if p.ShadeMiddle {
		p.drawShade(scene)
	}
	if p.Positional {
		p.drawPositionalLines(scene)
	}
	p.drawMarkings(scene)
	p.drawGoals(scene)

	logger.Debug("Drew pitch", d.PitchType, scene.NumElements())
	return scene, nil
}

func (p *Pitch) validate() error {
	switch p.GoalType {
	case GoalLine, GoalBox, GoalPost:
	default:
		return fmt.Errorf("invalid goal type %q, should be one of 'line', 'box', 'circle'", p.GoalType)
	}
	d := p.Dims
	if -p.PadLeft >= d.Length/2 || -p.PadRight >= d.Length/2 ||
		-p.PadBottom >= d.Width/2 || -p.PadTop >= d.Width/2 {
		return fmt.Errorf("negative padding cannot exceed half the pitch size")
	}
	return nil
}

// line draws a pitch-space line into the scene
func (p *Pitch) line(scene *draw.Scene, x1, y1, x2, y2 float64, style *draw.Style, z float64) {
	sx1, sy1 := p.toScene(x1, y1)
	sx2, sy2 := p.toScene(x2, y2)
	scene.Add(&draw.Line{X1: sx1, Y1: sy1, X2: sx2, Y2: sy2, Style: style, Zorder: z})
}

// rect draws a pitch-space rectangle given two opposite corners
func (p *Pitch) rect(scene *draw.Scene, x1, y1, x2, y2 float64, style *draw.Style, z float64) {
	sx1, sy1 := p.toScene(x1, y1)
	sx2, sy2 := p.toScene(x2, y2)
	scene.Add(&draw.Rect{
		X:      math.Min(sx1, sx2),
		Y:      math.Min(sy1, sy2),
		Width:  math.Abs(sx2 - sx1),
		Height: math.Abs(sy2 - sy1),
		Style:  style,
		Zorder: z,
	})
}

/**
* circleRadii returns the centre circle radii in pitch units for each
* scene axis. For square coordinate systems the marked diameter is in
* x units, so the y radius is recovered through the physical pitch
* size. Metricasports marks the diameter in meters directly.
 */
func (p *Pitch) circleRadii(diameter float64) (rx, ry float64) {
	d := p.Dims
	if d.AspectEqual {
		r := diameter / 2
		return r, r
	}
	var rMeters float64
	if d.PitchType == TypeMetricasports {
		rMeters = diameter / 2
	} else {
		rMeters = diameter / 2 * d.PitchLength / d.Length
	}
	rx = rMeters * d.Length / d.PitchLength
	ry = rMeters * d.Width / d.PitchWidth
	if p.Vertical {
		return ry, rx
	}
	return rx, ry
}

func (p *Pitch) lineStyle() *draw.Style {
	return draw.NewStyle(p.LineColor, p.LineWidth)
}

func (p *Pitch) drawMarkings(scene *draw.Scene) {
	d := p.Dims
	style := p.lineStyle()
	yLo, yHi := d.YExtent()
	x0, x1 := p.xRange()

	// boundary and halfway line
	p.rect(scene, x0, yLo, x1, yHi, style, p.LineZorder)
	p.line(scene, d.CenterLength, yLo, d.CenterLength, yHi, style, p.LineZorder)

	// centre circle and spot
	cx, cy := p.toScene(d.CenterLength, d.CenterWidth)
	rx, ry := p.circleRadii(d.CircleDiameter)
	scene.Add(&draw.Ellipse{Cx: cx, Cy: cy, Rx: rx, Ry: ry, Style: style, Zorder: p.LineZorder})
	p.spot(scene, d.CenterLength, d.CenterWidth)

	// boxes: penalty area then six yard box
	if !p.Half {
		p.rect(scene, d.Left, d.PenaltyAreaBottom, d.PenaltyAreaLeft, d.PenaltyAreaTop, style, p.LineZorder)
		p.rect(scene, d.Left, d.SixYardBottom, d.SixYardLeft, d.SixYardTop, style, p.LineZorder)
		p.spot(scene, d.PenaltyLeft, d.CenterWidth)
	}
	p.rect(scene, d.PenaltyAreaRight, d.PenaltyAreaBottom, d.Right, d.PenaltyAreaTop, style, p.LineZorder)
	p.rect(scene, d.SixYardRight, d.SixYardBottom, d.Right, d.SixYardTop, style, p.LineZorder)
	p.spot(scene, d.PenaltyRight, d.CenterWidth)

	p.drawPenaltyArcs(scene)

	if p.CornerArcs {
		p.drawCornerArcs(scene)
	}
}

// spot draws a penalty or centre spot
func (p *Pitch) spot(scene *draw.Scene, x, y float64) {
	if p.SpotScale <= 0 {
		return
	}
	sx, sy := p.toScene(x, y)
	rx, ry := p.circleRadii(p.SpotScale * p.Dims.Length * 2)
	scene.Add(&draw.Ellipse{
		Cx: sx, Cy: sy, Rx: rx, Ry: ry,
		Style:  draw.NewFillStyle(p.LineColor, 1),
		Zorder: p.LineZorder,
	})
}

/**
* drawPenaltyArcs draws the part of the circle around each penalty spot
* that lies outside the penalty area. Providers with a marked arc angle
* use it directly; for the others the angle comes from where the circle
* in meters crosses the penalty area line.
 */
func (p *Pitch) drawPenaltyArcs(scene *draw.Scene) {
	d := p.Dims
	rx, ry := p.circleRadii(d.CircleDiameter)

	var theta float64
	if d.HasArc() {
		theta = d.Arc * math.Pi / 180
	} else {
		// meters from the spot to the penalty area line
		adjacent := (d.PenaltyAreaLeft - d.PenaltyLeft) * d.PitchLength / d.Length
		rMeters := d.CircleDiameter / 2 * d.PitchLength / d.Length
		if d.PitchType == TypeMetricasports {
			adjacent = (d.PenaltyAreaLeft - d.PenaltyLeft) * d.PitchLength
			rMeters = d.CircleDiameter / 2
		}
		if rMeters <= adjacent {
			return
		}
		theta = math.Acos(adjacent / rMeters)
	}

	style := p.lineStyle()
	if !p.Half {
		sx, sy := p.toScene(d.PenaltyLeft, d.CenterWidth)
		p.arcAround(scene, sx, sy, rx, ry, -theta, theta, style)
	}
	sx, sy := p.toScene(d.PenaltyRight, d.CenterWidth)
	p.arcAround(scene, sx, sy, rx, ry, math.Pi-theta, math.Pi+theta, style)
}

// arcAround adds an arc, swinging the angles when the pitch is vertical
func (p *Pitch) arcAround(scene *draw.Scene, cx, cy, rx, ry, t1, t2 float64, style *draw.Style) {
	if p.Vertical {
		t1 -= math.Pi / 2
		t2 -= math.Pi / 2
	}
	scene.Add(&draw.Arc{
		Cx: cx, Cy: cy, Rx: rx, Ry: ry,
		Theta1: t1, Theta2: t2,
		Style: style, Zorder: p.LineZorder,
	})
}

func (p *Pitch) drawCornerArcs(scene *draw.Scene) {
	d := p.Dims
	rx, ry := p.circleRadii(d.CornerDiameter)
	style := p.lineStyle()
	yLo, yHi := d.YExtent()

	corners := [][2]float64{{d.Right, yLo}, {d.Right, yHi}}
	if !p.Half {
		corners = append(corners, [2]float64{d.Left, yLo}, [2]float64{d.Left, yHi})
	}
	ccx, ccy := p.toScene(d.CenterLength, d.CenterWidth)
	quarter := math.Pi / 2
	for _, c := range corners {
		sx, sy := p.toScene(c[0], c[1])
		// pick the quarter circle that sweeps into the pitch
		var t1 float64
		switch {
		case ccx > sx && ccy > sy:
			t1 = 0
		case ccx < sx && ccy > sy:
			t1 = quarter
		case ccx < sx && ccy < sy:
			t1 = math.Pi
		default:
			t1 = 3 * quarter
		}
		scene.Add(&draw.Arc{
			Cx: sx, Cy: sy, Rx: rx, Ry: ry,
			Theta1: t1, Theta2: t1 + quarter,
			Style: style, Zorder: p.LineZorder,
		})
	}
}

func (p *Pitch) drawGoals(scene *draw.Scene) {
	d := p.Dims
	switch p.GoalType {
	case GoalLine:
		style := draw.NewStyle(p.LineColor, p.LineWidth*3)
		style.LineCap = "butt"
		if !p.Half {
			p.line(scene, d.Left, d.GoalBottom, d.Left, d.GoalTop, style, p.LineZorder)
		}
		p.line(scene, d.Right, d.GoalBottom, d.Right, d.GoalTop, style, p.LineZorder)
	case GoalBox:
		style := p.lineStyle()
		if !p.Half {
			p.rect(scene, d.Left-d.GoalLength, d.GoalBottom, d.Left, d.GoalTop, style, p.LineZorder)
		}
		p.rect(scene, d.Right, d.GoalBottom, d.Right+d.GoalLength, d.GoalTop, style, p.LineZorder)
	case GoalPost:
		rx, ry := p.circleRadii(p.SpotScale * d.Length * 3)
		posts := [][2]float64{
			{d.Right, d.GoalBottom}, {d.Right, d.GoalTop},
		}
		if !p.Half {
			posts = append(posts, [2]float64{d.Left, d.GoalBottom}, [2]float64{d.Left, d.GoalTop})
		}
		for _, post := range posts {
			sx, sy := p.toScene(post[0], post[1])
			scene.Add(&draw.Ellipse{
				Cx: sx, Cy: sy, Rx: rx, Ry: ry,
				Style:  draw.NewFillStyle(p.LineColor, 1),
				Zorder: p.LineZorder,
			})
		}
	}
}

func (p *Pitch) drawStripes(scene *draw.Scene) {
	d := p.Dims
	yLo, yHi := d.YExtent()
	x0, x1 := p.xRange()
	style := draw.NewFillStyle(p.StripeColor, 1)
	// alternate stripes only
	for i := 0; i+1 < len(d.StripeLocations); i += 2 {
		sx0 := math.Max(d.StripeLocations[i], x0)
		sx1 := math.Min(d.StripeLocations[i+1], x1)
		if sx0 >= sx1 {
			continue
		}
		p.rect(scene, sx0, yLo, sx1, yHi, style, zStripes)
	}
}

func (p *Pitch) drawShade(scene *draw.Scene) {
	d := p.Dims
	yLo, yHi := d.YExtent()
	style := draw.NewFillStyle(p.ShadeColor, 0.5)
	p.rect(scene, d.PositionalX[2], yLo, d.PositionalX[4], yHi, style, zShade)
}

func (p *Pitch) drawPositionalLines(scene *draw.Scene) {
	d := p.Dims
	style := draw.NewStyle(p.PositionalColor, p.LineWidth)
	yLo, yHi := d.YExtent()
	x0, x1 := p.xRange()
	for _, x := range d.PositionalX[1:6] {
		if x < x0 || x > x1 {
			continue
		}
		p.line(scene, x, yLo, x, yHi, style, p.PositionalZorder)
	}
	for _, y := range d.PositionalY[1:5] {
		p.line(scene, x0, y, x1, y, style, p.PositionalZorder)
	}
}
