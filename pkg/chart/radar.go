package chart

import (
	"fmt"
	"math"

	"github.com/richard-senior/pitchplot/pkg/draw"
)

///////////////////////////////////////////////////////////////////////////////
/// RADAR
///////////////////////////////////////////////////////////////////////////////

/**
* Radar draws a radar chart for comparing players over a set of
* statistics. Each parameter gets a spoke, the concentric rings mark
* equal steps between the parameter's low and high range, and a player
* is drawn as a polygon over the rings.
*
* Values below the low range are clamped to the centre circle and values
* above the high range to the outer ring, so outliers never escape the
* chart. A parameter may use a reversed range (low > high) when a
* smaller number is better, for example miscontrols per ninety.
 */
type Radar struct {
	Params    []string
	RangeLow  []float64
	RangeHigh []float64
	// RoundInt marks parameters whose ring labels are whole numbers
	RoundInt []bool
	NumRings int
	// radius of the innermost circle and the width of each ring, in
	// chart units
	CenterRadius float64
	RingWidth    float64

	rotation []float64
}

/**
* NewRadar creates a radar for the given parameters. rangeLow and
* rangeHigh give the value at the centre circle and at the outer ring
* for each parameter and must match params in length.
 */
func NewRadar(params []string, rangeLow, rangeHigh []float64, numRings int) (*Radar, error) {
	if len(params) < 3 {
		return nil, fmt.Errorf("radar needs at least 3 params, got %d", len(params))
	}
	if len(rangeLow) != len(params) || len(rangeHigh) != len(params) {
		return nil, fmt.Errorf("params, rangeLow and rangeHigh must be the same size, got %d, %d and %d",
			len(params), len(rangeLow), len(rangeHigh))
	}
	for i := range params {
		if rangeLow[i] == rangeHigh[i] {
			return nil, fmt.Errorf("rangeLow and rangeHigh are equal for %q", params[i])
		}
	}
	if numRings < 2 {
		return nil, fmt.Errorf("numRings must be at least 2, got %d", numRings)
	}
	n := len(params)
	rotation := make([]float64, n)
	for i := 0; i < n; i++ {
		rotation[i] = 2 * math.Pi / float64(n) * float64(i)
	}
	return &Radar{
		Params:       params,
		RangeLow:     rangeLow,
		RangeHigh:    rangeHigh,
		RoundInt:     make([]bool, n),
		NumRings:     numRings,
		CenterRadius: 1,
		RingWidth:    1,
		rotation:     rotation,
	}, nil
}

// Limit returns the chart radius including the label margin
func (r *Radar) Limit() float64 {
	return r.CenterRadius + float64(r.NumRings+3)*r.RingWidth
}

// OuterRadius returns the radius of the outermost ring
func (r *Radar) OuterRadius() float64 {
	return r.CenterRadius + float64(r.NumRings)*r.RingWidth
}

/**
* Scene creates a square scene whose viewBox is centred on the radar
* origin with room for the parameter labels.
 */
func (r *Radar) Scene(name string, size float64, background string) (*draw.Scene, error) {
	scene, err := draw.NewScene(name, size, size)
	if err != nil {
		return nil, err
	}
	lim := r.Limit()
	if err := scene.SetViewBox(-lim, -lim, 2*lim, 2*lim); err != nil {
		return nil, err
	}
	scene.Background = background
	return scene, nil
}

// point maps a spoke rotation and radius into scene coordinates.
// Rotation zero is straight up and increases clockwise, svg y grows
// downward so the cos term is negated.
func (r *Radar) point(rotation, radius float64) *draw.Point {
	return draw.NewPoint(math.Sin(rotation)*radius, -math.Cos(rotation)*radius)
}

/**
* DrawRings draws the centre circle and the concentric rings with
* alternating colours. When the ring count is even the outermost ring
* takes faceColor, matching the centre circle on odd counts.
 */
func (r *Radar) DrawRings(scene *draw.Scene, faceColor, altColor string) {
	scene.Add(&draw.Circle{
		Cx: 0, Cy: 0, R: r.CenterRadius,
		Style:  draw.NewFillStyle(faceColor, 1),
		Zorder: zRings,
	})
	for k := 1; k <= r.NumRings; k++ {
		color := faceColor
		if k%2 == 1 {
			color = altColor
		}
		// an annulus, drawn as a thick circular stroke at the ring's
		// mid radius
		mid := r.CenterRadius + (float64(k)-0.5)*r.RingWidth
		style := draw.NewStyle(color, r.RingWidth)
		scene.Add(&draw.Circle{Cx: 0, Cy: 0, R: mid, Style: style, Zorder: zRings})
	}
}

/**
* Vertices returns the radar polygon for one set of values, one vertex
* per parameter. Values are clamped to the parameter range and mapped
* linearly from the centre circle to the outer ring.
 */
func (r *Radar) Vertices(values []float64) ([]*draw.Point, error) {
	if len(values) != len(r.Params) {
		return nil, fmt.Errorf("values and params must be the same size, got %d and %d",
			len(values), len(r.Params))
	}
	vertices := make([]*draw.Point, len(values))
	for i, v := range values {
		p := (v - r.RangeLow[i]) / (r.RangeHigh[i] - r.RangeLow[i])
		p = math.Max(0, math.Min(1, p))
		radius := r.CenterRadius + p*float64(r.NumRings)*r.RingWidth
		vertices[i] = r.point(r.rotation[i], radius)
	}
	return vertices, nil
}

/**
* DrawRadar draws the value polygon for one player. The polygon is
* translucent so the rings stay visible underneath it.
 */
func (r *Radar) DrawRadar(scene *draw.Scene, values []float64, fill string, opacity float64) ([]*draw.Point, error) {
	vertices, err := r.Vertices(values)
	if err != nil {
		return nil, err
	}
	style := draw.NewFillStyle(fill, opacity)
	style.Stroke = fill
	style.StrokeWidth = r.RingWidth * 0.05
	scene.Add(&draw.Polygon{Points: vertices, Style: style, Zorder: zValues})
	return vertices, nil
}

/**
* DrawRadarCompare overlays two players on the same radar. Both
* polygons are translucent so the overlap reads as a blend of the two
* colours.
 */
func (r *Radar) DrawRadarCompare(scene *draw.Scene, values, valuesCompare []float64,
	fill, fillCompare string, opacity float64) error {
	if _, err := r.DrawRadar(scene, values, fill, opacity); err != nil {
		return err
	}
	if _, err := r.DrawRadar(scene, valuesCompare, fillCompare, opacity); err != nil {
		return err
	}
	return nil
}

// rangeLabel formats a ring boundary value for one parameter
func (r *Radar) rangeLabel(param int, value float64) string {
	if r.RoundInt[param] {
		return fmt.Sprintf("%d", int(math.Round(value)))
	}
	if math.Abs(r.RangeHigh[param]) < 1 {
		return fmt.Sprintf("%.2f", value)
	}
	return fmt.Sprintf("%.1f", value)
}

// labelRotation returns the text rotation in degrees for a spoke,
// flipped on the lower half of the chart so labels never read upside
// down
func (r *Radar) labelRotation(rotation float64) float64 {
	if rotation > math.Pi/2 && rotation < 3*math.Pi/2 {
		rotation += math.Pi
	}
	return -rotation * 180 / math.Pi
}

/**
* DrawRangeLabels writes the ring boundary values along each spoke.
* Each ring edge shows the parameter value a polygon vertex on that
* edge would represent.
 */
func (r *Radar) DrawRangeLabels(scene *draw.Scene, size float64, color string) {
	for i, rot := range r.rotation {
		deg := r.labelRotation(rot)
		for k := 1; k <= r.NumRings; k++ {
			radius := r.CenterRadius + float64(k)*r.RingWidth
			value := r.RangeLow[i] + float64(k)*(r.RangeHigh[i]-r.RangeLow[i])/float64(r.NumRings)
			p := r.point(rot, radius)
			scene.Add(&draw.Text{
				X: p.X, Y: p.Y,
				Content:  r.rangeLabel(i, value),
				Size:     size,
				Color:    color,
				Anchor:   "middle",
				Rotation: deg,
				Zorder:   zLabels,
			})
		}
	}
}

// DrawParamLabels writes the parameter names beyond the outer ring
func (r *Radar) DrawParamLabels(scene *draw.Scene, size float64, color string) {
	radius := r.CenterRadius + (float64(r.NumRings)+1.5)*r.RingWidth
	for i, rot := range r.rotation {
		p := r.point(rot, radius)
		scene.Add(&draw.Text{
			X: p.X, Y: p.Y,
			Content:  r.Params[i],
			Size:     size,
			Color:    color,
			Anchor:   "middle",
			Rotation: r.labelRotation(rot),
			Weight:   "bold",
			Zorder:   zLabels,
		})
	}
}

/**
* RadarOptions collects the colours for a one-call radar render
 */
type RadarOptions struct {
	Background  string
	FaceColor   string
	RingColor   string
	LabelColor  string
	LabelSize   float64
	Fill        string
	FillCompare string
	Opacity     float64
	ShowLabels  bool
}

func DefaultRadarOptions() *RadarOptions {
	return &RadarOptions{
		Background: "#f2f2f2",
		FaceColor:  "#ffffff",
		RingColor:  "#e0e0e0",
		LabelColor: "#333333",
		LabelSize:  0.25,
		Fill:       "#aa65b2",
		Opacity:    0.6,
		ShowLabels: true,
	}
}

/**
* Draw renders a complete radar for one player in a single call:
* rings, the value polygon and both label sets.
 */
func (r *Radar) Draw(name string, size float64, values []float64, opt *RadarOptions) (*draw.Scene, error) {
	if opt == nil {
		opt = DefaultRadarOptions()
	}
	scene, err := r.Scene(name, size, opt.Background)
	if err != nil {
		return nil, err
	}
	r.DrawRings(scene, opt.FaceColor, opt.RingColor)
	if _, err := r.DrawRadar(scene, values, opt.Fill, opt.Opacity); err != nil {
		return nil, err
	}
	if opt.ShowLabels {
		r.DrawRangeLabels(scene, opt.LabelSize, opt.LabelColor)
		r.DrawParamLabels(scene, opt.LabelSize*1.2, opt.LabelColor)
	}
	return scene, nil
}
