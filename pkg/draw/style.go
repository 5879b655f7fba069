package draw

import (
	"fmt"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
/// STYLE
///////////////////////////////////////////////////////////////////////////////

/**
* Style holds the paint attributes shared by all shapes.
* Zero values mean 'not set' and are omitted from the output,
* except Fill where the empty string renders as fill="none".
 */
type Style struct {
	Fill          string
	Stroke        string
	StrokeWidth   float64
	FillOpacity   float64 // 0 means unset (fully opaque)
	StrokeOpacity float64 // 0 means unset (fully opaque)
	DashArray     string
	LineCap       string
}

// NewStyle creates a stroke-only style with the given colour and width
func NewStyle(stroke string, width float64) *Style {
	return &Style{
		Stroke:      stroke,
		StrokeWidth: width,
	}
}

// NewFillStyle creates a fill-only style with the given colour and opacity
func NewFillStyle(fill string, opacity float64) *Style {
	return &Style{
		Fill:        fill,
		FillOpacity: opacity,
	}
}

// Attrs renders the style as SVG presentation attributes
func (s *Style) Attrs() string {
	var sb strings.Builder
	if s.Fill == "" {
		sb.WriteString(` fill="none"`)
	} else {
		fmt.Fprintf(&sb, ` fill="%s"`, s.Fill)
	}
	if s.Stroke != "" {
		fmt.Fprintf(&sb, ` stroke="%s"`, s.Stroke)
	}
	if s.StrokeWidth > 0 {
		fmt.Fprintf(&sb, ` stroke-width="%s"`, Ftoa(s.StrokeWidth))
	}
	if s.FillOpacity > 0 && s.FillOpacity < 1 {
		fmt.Fprintf(&sb, ` fill-opacity="%s"`, Ftoa(s.FillOpacity))
	}
	if s.StrokeOpacity > 0 && s.StrokeOpacity < 1 {
		fmt.Fprintf(&sb, ` stroke-opacity="%s"`, Ftoa(s.StrokeOpacity))
	}
	if s.DashArray != "" {
		fmt.Fprintf(&sb, ` stroke-dasharray="%s"`, s.DashArray)
	}
	if s.LineCap != "" {
		fmt.Fprintf(&sb, ` stroke-linecap="%s"`, s.LineCap)
	}
	return sb.String()
}

// Ftoa formats a coordinate or length for SVG output.
// Trailing zeros are trimmed so the files stay readable.
func Ftoa(f float64) string {
	s := fmt.Sprintf("%.3f", f)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
