package draw

import (
	"encoding/base64"
	"fmt"
	"math"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
/// ELEMENT
///////////////////////////////////////////////////////////////////////////////

/**
* Element is anything that can be rendered into an SVG tag.
* Zorder controls paint order within a Scene: lower values are
* painted first and therefore sit underneath.
 */
type Element interface {
	Tag() (string, error)
	Z() float64
}

///////////////////////////////////////////////////////////////////////////////
/// CIRCLE / ELLIPSE
///////////////////////////////////////////////////////////////////////////////

type Circle struct {
	Cx, Cy, R float64
	Style     *Style
	Zorder    float64
}

func (c *Circle) Z() float64 { return c.Zorder }

func (c *Circle) Tag() (string, error) {
	if c.R <= 0 {
		return "", fmt.Errorf("circle radius must be positive, got %f", c.R)
	}
	return fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s"%s />`,
		Ftoa(c.Cx), Ftoa(c.Cy), Ftoa(c.R), c.Style.Attrs()), nil
}

type Ellipse struct {
	Cx, Cy, Rx, Ry float64
	Style          *Style
	Zorder         float64
}

func (e *Ellipse) Z() float64 { return e.Zorder }

func (e *Ellipse) Tag() (string, error) {
	if e.Rx <= 0 || e.Ry <= 0 {
		return "", fmt.Errorf("ellipse radii must be positive, got %f, %f", e.Rx, e.Ry)
	}
	return fmt.Sprintf(`<ellipse cx="%s" cy="%s" rx="%s" ry="%s"%s />`,
		Ftoa(e.Cx), Ftoa(e.Cy), Ftoa(e.Rx), Ftoa(e.Ry), e.Style.Attrs()), nil
}

///////////////////////////////////////////////////////////////////////////////
/// ARC
///////////////////////////////////////////////////////////////////////////////

/**
* Arc is a segment of an ellipse centred on Cx,Cy drawn from Theta1 to
* Theta2 (radians, anticlockwise from the positive x axis). Rendered as
* an SVG path using the elliptical arc command.
 */
type Arc struct {
	Cx, Cy, Rx, Ry float64
	Theta1, Theta2 float64
	Style          *Style
	Zorder         float64
}

func (a *Arc) Z() float64 { return a.Zorder }

func (a *Arc) Tag() (string, error) {
	if a.Rx <= 0 || a.Ry <= 0 {
		return "", fmt.Errorf("arc radii must be positive, got %f, %f", a.Rx, a.Ry)
	}
	x1 := a.Cx + a.Rx*math.Cos(a.Theta1)
	y1 := a.Cy + a.Ry*math.Sin(a.Theta1)
	x2 := a.Cx + a.Rx*math.Cos(a.Theta2)
	y2 := a.Cy + a.Ry*math.Sin(a.Theta2)

	sweep := a.Theta2 - a.Theta1
	for sweep < 0 {
		sweep += 2 * math.Pi
	}
	largeArc := 0
	if sweep > math.Pi {
		largeArc = 1
	}
	d := fmt.Sprintf("M %s,%s A %s %s 0 %d 1 %s,%s",
		Ftoa(x1), Ftoa(y1), Ftoa(a.Rx), Ftoa(a.Ry), largeArc, Ftoa(x2), Ftoa(y2))
	return fmt.Sprintf(`<path d="%s"%s />`, d, a.Style.Attrs()), nil
}

///////////////////////////////////////////////////////////////////////////////
/// RECT
///////////////////////////////////////////////////////////////////////////////

type Rect struct {
	X, Y, Width, Height float64
	Style               *Style
	Zorder              float64
}

func (r *Rect) Z() float64 { return r.Zorder }

func (r *Rect) Tag() (string, error) {
	if r.Width < 0 || r.Height < 0 {
		return "", fmt.Errorf("rect dimensions cannot be negative, got %f x %f", r.Width, r.Height)
	}
	return fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s"%s />`,
		Ftoa(r.X), Ftoa(r.Y), Ftoa(r.Width), Ftoa(r.Height), r.Style.Attrs()), nil
}

///////////////////////////////////////////////////////////////////////////////
/// LINE / POLYLINE / POLYGON
///////////////////////////////////////////////////////////////////////////////

type Line struct {
	X1, Y1, X2, Y2 float64
	Style          *Style
	Zorder         float64
}

func (l *Line) Z() float64 { return l.Zorder }

func (l *Line) Tag() (string, error) {
	return fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s"%s />`,
		Ftoa(l.X1), Ftoa(l.Y1), Ftoa(l.X2), Ftoa(l.Y2), l.Style.Attrs()), nil
}

type PolyLine struct {
	Points []*Point
	Style  *Style
	Zorder float64
}

func (p *PolyLine) Z() float64 { return p.Zorder }

func (p *PolyLine) Tag() (string, error) {
	if len(p.Points) < 2 {
		return "", fmt.Errorf("polyline needs at least 2 points, got %d", len(p.Points))
	}
	return fmt.Sprintf(`<polyline points="%s"%s />`, pointList(p.Points), p.Style.Attrs()), nil
}

type Polygon struct {
	Points []*Point
	Style  *Style
	Zorder float64
}

func (p *Polygon) Z() float64 { return p.Zorder }

func (p *Polygon) Tag() (string, error) {
	if len(p.Points) < 3 {
		return "", fmt.Errorf("polygon needs at least 3 points, got %d", len(p.Points))
	}
	return fmt.Sprintf(`<polygon points="%s"%s />`, pointList(p.Points), p.Style.Attrs()), nil
}

func pointList(points []*Point) string {
	parts := make([]string, 0, len(points))
	for _, pt := range points {
		parts = append(parts, Ftoa(pt.X)+","+Ftoa(pt.Y))
	}
	return strings.Join(parts, " ")
}

///////////////////////////////////////////////////////////////////////////////
/// PATH
///////////////////////////////////////////////////////////////////////////////

// PathShape carries a raw SVG path 'd' attribute
type PathShape struct {
	D      string
	Style  *Style
	Zorder float64
}

func (p *PathShape) Z() float64 { return p.Zorder }

func (p *PathShape) Tag() (string, error) {
	if p.D == "" {
		return "", fmt.Errorf("path data cannot be empty")
	}
	return fmt.Sprintf(`<path d="%s"%s />`, p.D, p.Style.Attrs()), nil
}

///////////////////////////////////////////////////////////////////////////////
/// TEXT
///////////////////////////////////////////////////////////////////////////////

type Text struct {
	X, Y     float64
	Content  string
	Size     float64
	Family   string
	Color    string
	Anchor   string  // start | middle | end
	Weight   string  // normal | bold
	Rotation float64 // degrees, about the anchor point
	Opacity  float64
	Zorder   float64
}

func (t *Text) Z() float64 { return t.Zorder }

func (t *Text) Tag() (string, error) {
	if t.Content == "" {
		return "", fmt.Errorf("text content cannot be empty")
	}
	size := t.Size
	if size <= 0 {
		size = 12
	}
	family := t.Family
	if family == "" {
		family = "Arial"
	}
	color := t.Color
	if color == "" {
		color = "black"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, `<text x="%s" y="%s" font-size="%s" font-family="%s" fill="%s"`,
		Ftoa(t.X), Ftoa(t.Y), Ftoa(size), family, color)
	if t.Anchor != "" {
		fmt.Fprintf(&sb, ` text-anchor="%s"`, t.Anchor)
	}
	if t.Weight != "" {
		fmt.Fprintf(&sb, ` font-weight="%s"`, t.Weight)
	}
	if t.Opacity > 0 && t.Opacity < 1 {
		fmt.Fprintf(&sb, ` fill-opacity="%s"`, Ftoa(t.Opacity))
	}
	if t.Rotation != 0 {
		fmt.Fprintf(&sb, ` transform="rotate(%s %s %s)"`, Ftoa(t.Rotation), Ftoa(t.X), Ftoa(t.Y))
	}
	fmt.Fprintf(&sb, `>%s</text>`, escapeText(t.Content))
	return sb.String(), nil
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

///////////////////////////////////////////////////////////////////////////////
/// RASTER
///////////////////////////////////////////////////////////////////////////////

// Raster embeds a base64 encoded raster image into the scene
type Raster struct {
	X, Y, Width, Height float64
	Kind                string // png | jpeg
	Content             []byte // raw image bytes
	Zorder              float64
}

func (r *Raster) Z() float64 { return r.Zorder }

func (r *Raster) Tag() (string, error) {
	if len(r.Content) == 0 {
		return "", fmt.Errorf("content is nil")
	}
	if r.Width <= 0 || r.Height <= 0 {
		return "", fmt.Errorf("width or height is zero")
	}
	kind := r.Kind
	if kind == "" {
		kind = "png"
	}
	encoded := base64.StdEncoding.EncodeToString(r.Content)
	return fmt.Sprintf(`<image x="%s" y="%s" width="%s" height="%s" xlink:href="data:image/%s;base64,%s" />`,
		Ftoa(r.X), Ftoa(r.Y), Ftoa(r.Width), Ftoa(r.Height), kind, encoded), nil
}
