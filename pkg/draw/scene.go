package draw

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
/// SCENE
///////////////////////////////////////////////////////////////////////////////

const svgHeader string = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<svg width="%s" height="%s" viewBox="%s"
    preserveAspectRatio="none"
    version="1.1"
	xmlns="http://www.w3.org/2000/svg"
	xmlns:svg="http://www.w3.org/2000/svg"
	xmlns:xlink="http://www.w3.org/1999/xlink">
`
const svgFooter string = `
</svg>
`

/**
* Scene holds a set of drawable elements and serialises them to SVG.
* The viewBox maps drawing coordinates onto the output surface so
* callers can work in their own coordinate space (a pitch, a polar
* chart) without scaling anything themselves.
 */
type Scene struct {
	Name          string
	Width, Height float64 // output size in pixels
	// viewBox in drawing coordinates
	MinX, MinY, Vw, Vh float64
	Background         string
	elements           []Element
}

func NewScene(name string, width, height float64) (*Scene, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("scene dimensions must be positive, got %f x %f", width, height)
	}
	return &Scene{
		Name:     name,
		Width:    width,
		Height:   height,
		Vw:       width,
		Vh:       height,
		elements: []Element{},
	}, nil
}

// SetViewBox sets the drawing coordinate space mapped onto the scene
func (s *Scene) SetViewBox(minX, minY, vw, vh float64) error {
	if vw <= 0 || vh <= 0 {
		return fmt.Errorf("viewBox dimensions must be positive, got %f x %f", vw, vh)
	}
	s.MinX = minX
	s.MinY = minY
	s.Vw = vw
	s.Vh = vh
	return nil
}

// Add appends elements to the scene
func (s *Scene) Add(elements ...Element) {
	s.elements = append(s.elements, elements...)
}

// NumElements returns the number of elements held by the scene
func (s *Scene) NumElements() int {
	return len(s.elements)
}

// Group wraps a set of elements so they share a zorder and an id
type Group struct {
	ID       string
	Zorder   float64
	Elements []Element
}

func (g *Group) Z() float64 { return g.Zorder }

func (g *Group) Tag() (string, error) {
	var sb strings.Builder
	if g.ID != "" {
		fmt.Fprintf(&sb, `<g id="%s">`, g.ID)
	} else {
		sb.WriteString(`<g>`)
	}
	sb.WriteString("\n")
	for _, e := range g.Elements {
		tag, err := e.Tag()
		if err != nil {
			return "", err
		}
		sb.WriteString(tag)
		sb.WriteString("\n")
	}
	sb.WriteString(`</g>`)
	return sb.String(), nil
}

/**
* Inset embeds one scene inside another as a nested svg element,
* scaled into the given rectangle. Used for composing chart panels
* into a figure grid.
 */
type Inset struct {
	ID                  string
	X, Y, Width, Height float64
	Scene               *Scene
	Zorder              float64
}

func (n *Inset) Z() float64 { return n.Zorder }

func (n *Inset) Tag() (string, error) {
	if n.Scene == nil {
		return "", fmt.Errorf("inset scene is nil")
	}
	if n.Width <= 0 || n.Height <= 0 {
		return "", fmt.Errorf("inset dimensions must be positive, got %f x %f", n.Width, n.Height)
	}
	inner, err := n.Scene.SVG()
	if err != nil {
		return "", err
	}
	// strip the xml declaration, nested svg elements carry their own
	// viewBox but not a declaration
	if idx := strings.Index(inner, "<svg"); idx > 0 {
		inner = inner[idx:]
	}
	viewBox := fmt.Sprintf("%s %s %s %s",
		Ftoa(n.Scene.MinX), Ftoa(n.Scene.MinY), Ftoa(n.Scene.Vw), Ftoa(n.Scene.Vh))
	var sb strings.Builder
	if n.ID != "" {
		fmt.Fprintf(&sb, `<g id="%s">`, n.ID)
	} else {
		sb.WriteString(`<g>`)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, `<svg x="%s" y="%s" width="%s" height="%s" viewBox="%s" preserveAspectRatio="none">`,
		Ftoa(n.X), Ftoa(n.Y), Ftoa(n.Width), Ftoa(n.Height), viewBox)
	sb.WriteString("\n")
	// reuse the inner scene's element markup only
	if open := strings.Index(inner, ">"); open >= 0 {
		body := inner[open+1:]
		body = strings.TrimSuffix(strings.TrimSpace(body), "</svg>")
		sb.WriteString(strings.TrimSpace(body))
	}
	sb.WriteString("\n</svg>\n</g>")
	return sb.String(), nil
}

/**
* SVG serialises the scene. Elements are painted in zorder then
* insertion order, so overlays added later with the same zorder land
* on top of earlier ones.
 */
func (s *Scene) SVG() (string, error) {
	viewBox := fmt.Sprintf("%s %s %s %s", Ftoa(s.MinX), Ftoa(s.MinY), Ftoa(s.Vw), Ftoa(s.Vh))
	ret := fmt.Sprintf(svgHeader, Ftoa(s.Width), Ftoa(s.Height), viewBox)

	if s.Background != "" {
		ret += fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
			Ftoa(s.MinX), Ftoa(s.MinY), Ftoa(s.Vw), Ftoa(s.Vh), s.Background)
		ret += "\n"
	}

	// Stable sort keeps insertion order within a zorder
	sorted := make([]Element, len(s.elements))
	copy(sorted, s.elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Z() < sorted[j].Z()
	})

	for _, e := range sorted {
		tag, err := e.Tag()
		if err != nil {
			return "", err
		}
		ret += tag
		ret += "\n"
	}

	ret += svgFooter
	return ret, nil
}

func (s *Scene) WriteFile(filePath string) error {
	content, err := s.SVG()
	if err != nil {
		return err
	}
	err = os.WriteFile(filePath, []byte(content), 0644)
	if err != nil {
		return fmt.Errorf("failed to write SVG file: %w", err)
	}
	return nil
}
