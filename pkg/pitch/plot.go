package pitch

import (
	"fmt"
	"math"

	"github.com/richard-senior/pitchplot/pkg/draw"
	"github.com/richard-senior/pitchplot/pkg/stats"
)

///////////////////////////////////////////////////////////////////////////////
/// OVERLAYS
///////////////////////////////////////////////////////////////////////////////

// ScatterOptions style a scatter overlay
type ScatterOptions struct {
	// marker radius in pitch units, 0 picks a default from the pitch size
	Size      float64
	Color     string
	EdgeColor string
	Alpha     float64
	Zorder    float64
}

/**
* Scatter plots markers at the given pitch coordinates. NaN points are
* skipped. Coordinates are flipped automatically for vertical pitches.
 */
func (p *Pitch) Scatter(scene *draw.Scene, x, y []float64, opt *ScatterOptions) error {
	if len(x) != len(y) {
		return fmt.Errorf("x and y must be the same size, got %d and %d", len(x), len(y))
	}
	if opt == nil {
		opt = &ScatterOptions{}
	}
	size := opt.Size
	if size <= 0 {
		size = p.Dims.Length / 100
	}
	color := opt.Color
	if color == "" {
		color = "#1f77b4"
	}
	z := opt.Zorder
	if z == 0 {
		z = zOverlay
	}
	style := &draw.Style{Fill: color, FillOpacity: opt.Alpha, Stroke: opt.EdgeColor, StrokeWidth: p.LineWidth / 2}
	rx, ry := p.circleRadii(size * 2)
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		sx, sy := p.toScene(x[i], y[i])
		scene.Add(&draw.Ellipse{Cx: sx, Cy: sy, Rx: rx, Ry: ry, Style: style, Zorder: z})
	}
	return nil
}

// PlotLine draws a polyline through the points
func (p *Pitch) PlotLine(scene *draw.Scene, x, y []float64, style *draw.Style, zorder float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("x and y must be the same size, got %d and %d", len(x), len(y))
	}
	if style == nil {
		style = draw.NewStyle("#1f77b4", p.LineWidth)
	}
	if zorder == 0 {
		zorder = zOverlay
	}
	points := make([]*draw.Point, 0, len(x))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		sx, sy := p.toScene(x[i], y[i])
		points = append(points, draw.NewPoint(sx, sy))
	}
	scene.Add(&draw.PolyLine{Points: points, Style: style, Zorder: zorder})
	return nil
}

// ArrowOptions style a quiver overlay
type ArrowOptions struct {
	Color string
	// shaft width in pitch units, 0 picks a default
	Width  float64
	Alpha  float64
	Zorder float64
	// per arrow colours, overriding Color when set
	Colors []string
}

/**
* Arrows draws arrows between start and end locations, in the style of
* a quiver plot. The arrowhead is sized from the shaft width so short
* and long arrows read consistently.
 */
func (p *Pitch) Arrows(scene *draw.Scene, xstart, ystart, xend, yend []float64, opt *ArrowOptions) error {
	if len(xstart) != len(ystart) || len(xstart) != len(xend) || len(ystart) != len(yend) {
		return fmt.Errorf("start and end coordinates must be the same size")
	}
	if opt == nil {
		opt = &ArrowOptions{}
	}
	width := opt.Width
	if width <= 0 {
		width = p.Dims.Length / 300
	}
	z := opt.Zorder
	if z == 0 {
		z = zOverlay
	}
	for i := range xstart {
		if math.IsNaN(xstart[i]) || math.IsNaN(ystart[i]) ||
			math.IsNaN(xend[i]) || math.IsNaN(yend[i]) {
			continue
		}
		color := opt.Color
		if i < len(opt.Colors) && opt.Colors[i] != "" {
			color = opt.Colors[i]
		}
		if color == "" {
			color = "black"
		}
		sx1, sy1 := p.toScene(xstart[i], ystart[i])
		sx2, sy2 := p.toScene(xend[i], yend[i])
		p.arrow(scene, sx1, sy1, sx2, sy2, width, color, opt.Alpha, z)
	}
	return nil
}

// arrow draws one arrow in scene coordinates
func (p *Pitch) arrow(scene *draw.Scene, x1, y1, x2, y2, width float64, color string, alpha, z float64) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	headLength := math.Min(width*4, length)
	headWidth := width * 3

	// shaft stops where the head begins
	bx, by := x2-ux*headLength, y2-uy*headLength
	lineStyle := &draw.Style{Stroke: color, StrokeWidth: width, StrokeOpacity: alpha}
	scene.Add(&draw.Line{X1: x1, Y1: y1, X2: bx, Y2: by, Style: lineStyle, Zorder: z})

	// head triangle
	px, py := -uy, ux
	head := []*draw.Point{
		draw.NewPoint(x2, y2),
		draw.NewPoint(bx+px*headWidth/2, by+py*headWidth/2),
		draw.NewPoint(bx-px*headWidth/2, by-py*headWidth/2),
	}
	scene.Add(&draw.Polygon{Points: head, Style: &draw.Style{Fill: color, FillOpacity: alpha}, Zorder: z})
}

// LineOptions style a Lines overlay
type LineOptions struct {
	Color string
	// line width in pitch units
	Width float64
	// taper the width from thin at the start to Width at the end
	Comet bool
	// fade the opacity in along the line
	TransparentAlpha bool
	Alpha            float64
	Zorder           float64
}

const cometSegments = 20

/**
* Lines draws segments between start and end locations. With Comet set
* the lines taper from a tenth of the width at the start to the full
* width at the end, and with TransparentAlpha the opacity fades in the
* same way, which reads as movement toward the end point.
 */
func (p *Pitch) Lines(scene *draw.Scene, xstart, ystart, xend, yend []float64, opt *LineOptions) error {
	if len(xstart) != len(ystart) || len(xstart) != len(xend) || len(ystart) != len(yend) {
		return fmt.Errorf("start and end coordinates must be the same size")
	}
	if opt == nil {
		opt = &LineOptions{}
	}
	color := opt.Color
	if color == "" {
		color = "#1f77b4"
	}
	width := opt.Width
	if width <= 0 {
		width = p.Dims.Length / 200
	}
	alpha := opt.Alpha
	if alpha == 0 {
		alpha = 1
	}
	z := opt.Zorder
	if z == 0 {
		z = zOverlay
	}

	for i := range xstart {
		if math.IsNaN(xstart[i]) || math.IsNaN(ystart[i]) ||
			math.IsNaN(xend[i]) || math.IsNaN(yend[i]) {
			continue
		}
		sx1, sy1 := p.toScene(xstart[i], ystart[i])
		sx2, sy2 := p.toScene(xend[i], yend[i])

		if !opt.Comet && !opt.TransparentAlpha {
			style := &draw.Style{Stroke: color, StrokeWidth: width, StrokeOpacity: alpha, LineCap: "round"}
			scene.Add(&draw.Line{X1: sx1, Y1: sy1, X2: sx2, Y2: sy2, Style: style, Zorder: z})
			continue
		}

		for s := 0; s < cometSegments; s++ {
			t0 := float64(s) / cometSegments
			t1 := float64(s+1) / cometSegments
			w := width
			if opt.Comet {
				w = width * (0.1 + 0.9*t1)
			}
			a := alpha
			if opt.TransparentAlpha {
				a = alpha * t1
			}
			style := &draw.Style{Stroke: color, StrokeWidth: w, StrokeOpacity: a, LineCap: "round"}
			scene.Add(&draw.Line{
				X1: sx1 + (sx2-sx1)*t0, Y1: sy1 + (sy2-sy1)*t0,
				X2: sx1 + (sx2-sx1)*t1, Y2: sy1 + (sy2-sy1)*t1,
				Style: style, Zorder: z,
			})
		}
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
/// HEATMAPS
///////////////////////////////////////////////////////////////////////////////

// MeshOptions style a heatmap mesh
type MeshOptions struct {
	// colour scale limits, both zero means take them from the data
	VMin, VMax float64
	EdgeColor  string
	Alpha      float64
	Zorder     float64
}

// BinStatistic bins events over this pitch's coordinate space
func (p *Pitch) BinStatistic(x, y, values []float64, statistic string, opt *stats.Options) (*stats.BinResult, error) {
	return stats.BinStatistic(x, y, values, p.Space(), statistic, opt)
}

// BinStatisticPositional bins events into the Juego de Posición zones
func (p *Pitch) BinStatisticPositional(x, y, values []float64, positional, statistic string) ([]*stats.BinResult, error) {
	return stats.BinStatisticPositional(x, y, values, p.Space(),
		p.Dims.PositionalX, p.Dims.PositionalY, positional, statistic)
}

/**
* Heatmap renders a binned statistic as a coloured cell mesh. Cells
* with a NaN statistic are left transparent.
 */
func (p *Pitch) Heatmap(scene *draw.Scene, result *stats.BinResult, cmap *draw.Colormap, opt *MeshOptions) error {
	if cmap == nil {
		cmap = draw.Viridis()
	}
	if opt == nil {
		opt = &MeshOptions{}
	}
	vmin, vmax := opt.VMin, opt.VMax
	if vmin == 0 && vmax == 0 {
		vmin, vmax = result.MinMax()
	}
	z := opt.Zorder
	if z == 0 {
		z = zShade
	}

	for j := 0; j < result.NY(); j++ {
		for i := 0; i < result.NX(); i++ {
			v := result.Statistic[j][i]
			if math.IsNaN(v) {
				continue
			}
			var t float64
			if vmax > vmin {
				t = (v - vmin) / (vmax - vmin)
			}
			hex, alpha := cmap.At(t)
			if opt.Alpha > 0 {
				alpha *= opt.Alpha
			}
			style := &draw.Style{Fill: hex, FillOpacity: alpha, Stroke: opt.EdgeColor, StrokeWidth: p.LineWidth / 2}
			p.rect(scene, result.XEdges[i], result.YEdges[j],
				result.XEdges[i+1], result.YEdges[j+1], style, z)
		}
	}
	return nil
}

// HeatmapPositional renders positional panels on a shared colour scale
func (p *Pitch) HeatmapPositional(scene *draw.Scene, results []*stats.BinResult, cmap *draw.Colormap, opt *MeshOptions) error {
	if opt == nil {
		opt = &MeshOptions{}
	}
	if opt.VMin == 0 && opt.VMax == 0 {
		vmin, vmax := math.Inf(1), math.Inf(-1)
		for _, r := range results {
			lo, hi := r.MinMax()
			vmin = math.Min(vmin, lo)
			vmax = math.Max(vmax, hi)
		}
		opt.VMin, opt.VMax = vmin, vmax
	}
	for _, r := range results {
		if err := p.Heatmap(scene, r, cmap, opt); err != nil {
			return err
		}
	}
	return nil
}

// LabelOptions style heatmap labels
type LabelOptions struct {
	Color  string
	Size   float64
	Zorder float64
	// skip cells whose statistic is zero
	ExcludeZeros bool
}

/**
* LabelHeatmap writes the statistic value at each cell centre.
* NaN cells are skipped, and cell centres outside the pitch extent are
* clipped off entirely rather than drawn half off the pitch.
 */
func (p *Pitch) LabelHeatmap(scene *draw.Scene, result *stats.BinResult, format string, opt *LabelOptions) error {
	if format == "" {
		format = "%.0f"
	}
	if opt == nil {
		opt = &LabelOptions{}
	}
	color := opt.Color
	if color == "" {
		color = "black"
	}
	size := opt.Size
	if size <= 0 {
		size = p.Dims.Length / 40
	}
	z := opt.Zorder
	if z == 0 {
		z = zText
	}
	d := p.Dims
	yLo, yHi := d.YExtent()

	for j, cy := range result.CY {
		for i, cx := range result.CX {
			v := result.Statistic[j][i]
			if math.IsNaN(v) {
				continue
			}
			if opt.ExcludeZeros && v == 0 {
				continue
			}
			if cx < d.Left || cx > d.Right || cy < yLo || cy > yHi {
				continue
			}
			sx, sy := p.toScene(cx, cy)
			scene.Add(&draw.Text{
				X: sx, Y: sy, Content: fmt.Sprintf(format, v),
				Size: size, Color: color, Anchor: "middle", Zorder: z,
			})
		}
	}
	return nil
}

/**
* HexBin bins the points into a hexagonal grid and renders the
* hexagons coloured by count. Empty hexagons are not drawn. The grid
* uses two offset rectangular lattices with points assigned to the
* nearest centre, so the cells tile hexagonally.
 */
func (p *Pitch) HexBin(scene *draw.Scene, x, y []float64, gridX, gridY int, cmap *draw.Colormap, opt *MeshOptions) error {
	if len(x) != len(y) {
		return fmt.Errorf("x and y must be the same size, got %d and %d", len(x), len(y))
	}
	if gridX < 1 || gridY < 1 {
		return fmt.Errorf("grid must be positive, got %dx%d", gridX, gridY)
	}
	if cmap == nil {
		cmap = draw.Viridis()
	}
	if opt == nil {
		opt = &MeshOptions{}
	}
	d := p.Dims
	yLo, yHi := d.YExtent()
	dx := (d.Right - d.Left) / float64(gridX)
	dy := (yHi - yLo) / float64(gridY)

	type cell struct {
		ix, iy int
		offset bool
	}
	counts := map[cell]int{}
	for k := range x {
		if math.IsNaN(x[k]) || math.IsNaN(y[k]) {
			continue
		}
		xv := clampf(x[k], d.Left, d.Right)
		yv := clampf(y[k], yLo, yHi)

		// candidate centres on the base and offset lattices
		i1 := math.Round((xv - d.Left) / dx)
		j1 := math.Round((yv - yLo) / dy)
		i2 := math.Floor((xv - d.Left) / dx)
		j2 := math.Floor((yv - yLo) / dy)

		c1x := d.Left + i1*dx
		c1y := yLo + j1*dy
		c2x := d.Left + (i2+0.5)*dx
		c2y := yLo + (j2+0.5)*dy

		d1 := (xv-c1x)*(xv-c1x) + (yv-c1y)*(yv-c1y)
		d2 := (xv-c2x)*(xv-c2x) + (yv-c2y)*(yv-c2y)
		if d1 <= d2 {
			counts[cell{int(i1), int(j1), false}]++
		} else {
			counts[cell{int(i2), int(j2), true}]++
		}
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount == 0 {
		return nil
	}
	z := opt.Zorder
	if z == 0 {
		z = zShade
	}

	for c, count := range counts {
		cx := d.Left + float64(c.ix)*dx
		cy := yLo + float64(c.iy)*dy
		if c.offset {
			cx += 0.5 * dx
			cy += 0.5 * dy
		}
		hex, alpha := cmap.At(float64(count) / float64(maxCount))
		if opt.Alpha > 0 {
			alpha *= opt.Alpha
		}
		style := &draw.Style{Fill: hex, FillOpacity: alpha, Stroke: opt.EdgeColor, StrokeWidth: p.LineWidth / 2}
		p.hexagon(scene, cx, cy, dx/2, dy/1.5, style, z)
	}
	return nil
}

func (p *Pitch) hexagon(scene *draw.Scene, cx, cy, rx, ry float64, style *draw.Style, z float64) {
	offsets := [][2]float64{
		{0, -ry}, {rx, -ry / 2}, {rx, ry / 2}, {0, ry}, {-rx, ry / 2}, {-rx, -ry / 2},
	}
	points := make([]*draw.Point, 0, 6)
	for _, o := range offsets {
		sx, sy := p.toScene(cx+o[0], cy+o[1])
		points = append(points, draw.NewPoint(sx, sy))
	}
	scene.Add(&draw.Polygon{Points: points, Style: style, Zorder: z})
}

/**
* KDE renders a Gaussian kernel density estimate of the points as a
* fine mesh clipped to the pitch. The default colormap fades to
* transparent at the low end so the pitch shows through.
 */
func (p *Pitch) KDE(scene *draw.Scene, x, y []float64, gridX, gridY int, cmap *draw.Colormap, opt *MeshOptions) error {
	if gridX <= 0 {
		gridX = 60
	}
	if gridY <= 0 {
		gridY = 40
	}
	if cmap == nil {
		var err error
		cmap, err = draw.NewTransparentColormap("kde", "#cb4154", 0, 0.85)
		if err != nil {
			return err
		}
	}
	d := p.Dims
	yLo, yHi := d.YExtent()
	result, err := stats.KernelDensity(x, y, [4]float64{d.Left, d.Right, yLo, yHi}, gridX, gridY)
	if err != nil {
		return err
	}
	return p.Heatmap(scene, result, cmap, opt)
}

///////////////////////////////////////////////////////////////////////////////
/// SPATIAL OVERLAYS
///////////////////////////////////////////////////////////////////////////////

// polygonOverlay draws closed pitch-space polygons
func (p *Pitch) polygonOverlay(scene *draw.Scene, polys [][]*draw.Point, style *draw.Style, z float64) {
	for _, poly := range polys {
		points := make([]*draw.Point, 0, len(poly))
		for _, v := range poly {
			sx, sy := p.toScene(v.X, v.Y)
			points = append(points, draw.NewPoint(sx, sy))
		}
		scene.Add(&draw.Polygon{Points: points, Style: style, Zorder: z})
	}
}

/**
* ConvexHull draws the convex hull of the points, commonly used to show
* the area covered by a team's outfield players.
 */
func (p *Pitch) ConvexHull(scene *draw.Scene, x, y []float64, style *draw.Style, zorder float64) error {
	hull, err := stats.ConvexHull(x, y)
	if err != nil {
		return err
	}
	if style == nil {
		style = &draw.Style{Fill: "cornflowerblue", FillOpacity: 0.3, Stroke: "cornflowerblue", StrokeWidth: p.LineWidth}
	}
	if zorder == 0 {
		zorder = zOverlay
	}
	p.polygonOverlay(scene, [][]*draw.Point{hull}, style, zorder)
	return nil
}

/**
* Voronoi draws the Voronoi cell of each player, split by team.
* Stretched coordinate systems are standardized to uefa coordinates
* before tessellating so the cells are computed in meters, then
* converted back.
 */
func (p *Pitch) Voronoi(scene *draw.Scene, x, y []float64, teams []bool, color1, color2 string, alpha float64) error {
	d := p.Dims
	var extent [4]float64
	vx, vy := x, y
	standardized := false

	if p.standardizer != nil {
		var err error
		vx, vy, err = p.standardizer.Transform(x, y)
		if err != nil {
			return err
		}
		extent = [4]float64{0, 105, 0, 68}
		standardized = true
	} else {
		yLo, yHi := d.YExtent()
		extent = [4]float64{d.Left, d.Right, yLo, yHi}
	}

	team1, team2, err := stats.Voronoi(vx, vy, teams, extent)
	if err != nil {
		return err
	}

	if standardized {
		for _, cells := range [][][]*draw.Point{team1, team2} {
			for _, cell := range cells {
				for _, v := range cell {
					rx, ry, err := p.standardizer.Reverse([]float64{v.X}, []float64{v.Y})
					if err != nil {
						return err
					}
					v.X, v.Y = rx[0], ry[0]
				}
			}
		}
	}

	if alpha == 0 {
		alpha = 0.3
	}
	p.polygonOverlay(scene, team1, &draw.Style{Fill: color1, FillOpacity: alpha}, zOverlay)
	p.polygonOverlay(scene, team2, &draw.Style{Fill: color2, FillOpacity: alpha}, zOverlay)
	return nil
}

/**
* Flow bins the start locations and draws one arrow per cell showing
* the average movement direction. With no colour given the arrows are
* coloured by the event count in the cell.
 */
func (p *Pitch) Flow(scene *draw.Scene, xstart, ystart, xend, yend []float64,
	arrowType string, arrowLength float64, opt *stats.Options, color string, cmap *draw.Colormap) error {

	space := p.Space()
	xs, ys, xe, ye := xstart, ystart, xend, yend
	standardized := false

	if p.standardizer != nil {
		var err error
		xs, ys, err = p.standardizer.Transform(xstart, ystart)
		if err != nil {
			return err
		}
		xe, ye, err = p.standardizer.Transform(xend, yend)
		if err != nil {
			return err
		}
		space = &stats.Space{XMin: 0, XMax: 105, YMin: 0, YMax: 68}
		standardized = true
	}
	if p.Dims.PitchType == TypeTracab {
		arrowLength *= 100
	}

	flow, err := stats.Flow(xs, ys, xe, ye, space, arrowType, arrowLength, opt)
	if err != nil {
		return err
	}

	cx, cy, ex, ey := flow.CX, flow.CY, flow.EndX, flow.EndY
	if standardized {
		cx, cy, err = p.standardizer.Reverse(cx, cy)
		if err != nil {
			return err
		}
		ex, ey, err = p.standardizer.Reverse(ex, ey)
		if err != nil {
			return err
		}
	}

	arrowOpt := &ArrowOptions{Color: color}
	if color == "" {
		if cmap == nil {
			cmap = draw.Viridis()
		}
		var maxCount float64
		for _, c := range flow.Counts {
			maxCount = math.Max(maxCount, c)
		}
		arrowOpt.Colors = make([]string, len(flow.Counts))
		for i, c := range flow.Counts {
			var t float64
			if maxCount > 0 {
				t = c / maxCount
			}
			hex, _ := cmap.At(t)
			arrowOpt.Colors[i] = hex
		}
	}
	return p.Arrows(scene, cx, cy, ex, ey, arrowOpt)
}

/**
* GoalAngle draws the shot angle polygon from a location to the posts
* of the chosen goal ('left' or 'right').
 */
func (p *Pitch) GoalAngle(scene *draw.Scene, x, y float64, goal string, style *draw.Style, zorder float64) error {
	d := p.Dims
	var goalX float64
	switch goal {
	case "left":
		goalX = d.Left
	case "right":
		goalX = d.Right
	default:
		return fmt.Errorf("invalid goal %q, should be 'left' or 'right'", goal)
	}
	if style == nil {
		style = &draw.Style{Fill: "red", FillOpacity: 0.3}
	}
	if zorder == 0 {
		zorder = zOverlay
	}
	poly := []*draw.Point{
		draw.NewPoint(x, y),
		draw.NewPoint(goalX, d.GoalBottom),
		draw.NewPoint(goalX, d.GoalTop),
	}
	p.polygonOverlay(scene, [][]*draw.Point{poly}, style, zorder)
	return nil
}

// TextOptions style annotations
type TextOptions struct {
	Color  string
	Size   float64
	Anchor string
	Weight string
	Zorder float64
}

// Annotate writes text at the given pitch coordinates
func (p *Pitch) Annotate(scene *draw.Scene, text string, x, y float64, opt *TextOptions) error {
	if text == "" {
		return fmt.Errorf("text cannot be empty")
	}
	if opt == nil {
		opt = &TextOptions{}
	}
	size := opt.Size
	if size <= 0 {
		size = p.Dims.Length / 40
	}
	color := opt.Color
	if color == "" {
		color = "black"
	}
	anchor := opt.Anchor
	if anchor == "" {
		anchor = "middle"
	}
	z := opt.Zorder
	if z == 0 {
		z = zText
	}
	sx, sy := p.toScene(x, y)
	scene.Add(&draw.Text{
		X: sx, Y: sy, Content: text, Size: size, Color: color,
		Anchor: anchor, Weight: opt.Weight, Zorder: z,
	})
	return nil
}

func clampf(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
