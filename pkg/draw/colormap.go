package draw

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

///////////////////////////////////////////////////////////////////////////////
/// COLORMAP
///////////////////////////////////////////////////////////////////////////////

/**
* Colormap maps a normalised value 0..1 onto a colour ramp.
* Interpolation between stops happens in Lab space so the ramps
* stay perceptually even. Each stop can carry an alpha so ramps
* can fade to transparent at the low end.
 */
type Colormap struct {
	Name   string
	stops  []colorful.Color
	alphas []float64
}

func NewColormap(name string, hexStops []string) (*Colormap, error) {
	if len(hexStops) < 2 {
		return nil, fmt.Errorf("colormap needs at least 2 stops, got %d", len(hexStops))
	}
	stops := make([]colorful.Color, 0, len(hexStops))
	alphas := make([]float64, 0, len(hexStops))
	for _, h := range hexStops {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("invalid colormap stop %q: %w", h, err)
		}
		stops = append(stops, c)
		alphas = append(alphas, 1.0)
	}
	return &Colormap{Name: name, stops: stops, alphas: alphas}, nil
}

/**
* NewTransparentColormap builds a ramp from a single colour whose alpha
* rises linearly from alphaStart to alphaEnd. Useful for kernel density
* overlays where the low end should show the pitch underneath.
 */
func NewTransparentColormap(name, hex string, alphaStart, alphaEnd float64) (*Colormap, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	if alphaStart < 0 || alphaEnd > 1 || alphaStart > alphaEnd {
		return nil, fmt.Errorf("invalid alpha range %f..%f", alphaStart, alphaEnd)
	}
	return &Colormap{
		Name:   name,
		stops:  []colorful.Color{c, c},
		alphas: []float64{alphaStart, alphaEnd},
	}, nil
}

// At returns the hex colour and alpha for t in 0..1, clamping out of range input
func (m *Colormap) At(t float64) (string, float64) {
	if math.IsNaN(t) {
		t = 0
	}
	t = math.Max(0, math.Min(1, t))
	n := len(m.stops)
	pos := t * float64(n-1)
	i := int(math.Floor(pos))
	if i >= n-1 {
		i = n - 2
	}
	frac := pos - float64(i)
	c := m.stops[i].BlendLab(m.stops[i+1], frac).Clamped()
	alpha := m.alphas[i] + frac*(m.alphas[i+1]-m.alphas[i])
	return c.Hex(), alpha
}

// Reversed returns a copy of the colormap with the ramp direction flipped
func (m *Colormap) Reversed() *Colormap {
	n := len(m.stops)
	stops := make([]colorful.Color, n)
	alphas := make([]float64, n)
	for i := 0; i < n; i++ {
		stops[i] = m.stops[n-1-i]
		alphas[i] = m.alphas[n-1-i]
	}
	return &Colormap{Name: m.Name + "_r", stops: stops, alphas: alphas}
}

///////////////////////////////////////////////////////////////////////////////
/// BUILT-IN RAMPS
///////////////////////////////////////////////////////////////////////////////

func mustColormap(name string, hexStops []string) *Colormap {
	m, err := NewColormap(name, hexStops)
	if err != nil {
		panic(err)
	}
	return m
}

// Viridis is the default ramp for heatmaps
func Viridis() *Colormap {
	return mustColormap("viridis", []string{
		"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
	})
}

// Hot runs black through red and yellow to white
func Hot() *Colormap {
	return mustColormap("hot", []string{
		"#000000", "#aa0000", "#ff5500", "#ffaa00", "#ffff55", "#ffffff",
	})
}

// Blues runs near-white to dark blue
func Blues() *Colormap {
	return mustColormap("blues", []string{
		"#f7fbff", "#c6dbef", "#6baed6", "#2171b5", "#08306b",
	})
}

// Grass shades suited to pitch stripe effects and possession maps
func Grass() *Colormap {
	return mustColormap("grass", []string{
		"#3d6b25", "#4c8527", "#5ba433", "#72c850", "#9be076",
	})
}
