package chart

import (
	"fmt"
	"sort"

	"github.com/richard-senior/pitchplot/pkg/draw"
)

///////////////////////////////////////////////////////////////////////////////
/// BUMPY
///////////////////////////////////////////////////////////////////////////////

/**
* Bumpy draws a bump chart of league positions over time: one curved
* line per team through its rank at each round, rank one at the top.
* Teams named in the highlight map are drawn in their own colour on top
* of the rest, which share a muted colour.
 */
type Bumpy struct {
	Background   string
	ScatterColor string
	LineColor    string
	LabelColor   string
	// Curviness controls the bezier control point offset between
	// rounds. Zero gives straight lines.
	Curviness      float64
	LineWidth      float64
	MarkerRadius   float64
	TickSize       float64
	SecondaryAlpha float64
	Scatter        bool
	UpsideDown     bool
}

func NewBumpy() *Bumpy {
	return &Bumpy{
		Background:     "#1b1b1b",
		ScatterColor:   "#4f535c",
		LineColor:      "#4f535c",
		LabelColor:     "#f2f2f2",
		Curviness:      0.85,
		LineWidth:      0.06,
		MarkerRadius:   0.12,
		TickSize:       0.35,
		SecondaryAlpha: 1,
		Scatter:        true,
	}
}

// curvePath builds the bezier path through a team's ranks. The control
// points sit curviness either side of each round so the line flattens
// through the markers.
func (b *Bumpy) curvePath(ranks []float64) string {
	type vert struct{ x, y float64 }
	var verts []vert
	for i, r := range ranks {
		for _, d := range []float64{-b.Curviness, 0, b.Curviness} {
			verts = append(verts, vert{float64(i) + d, r})
		}
	}
	// trim the leading and trailing control points
	verts = verts[1 : len(verts)-1]

	d := fmt.Sprintf("M %s,%s", draw.Ftoa(verts[0].x), draw.Ftoa(verts[0].y))
	for k := 1; k+2 < len(verts); k += 3 {
		d += fmt.Sprintf(" C %s,%s %s,%s %s,%s",
			draw.Ftoa(verts[k].x), draw.Ftoa(verts[k].y),
			draw.Ftoa(verts[k+1].x), draw.Ftoa(verts[k+1].y),
			draw.Ftoa(verts[k+2].x), draw.Ftoa(verts[k+2].y))
	}
	return d
}

/**
* Draw renders the bump chart. xLabels name the rounds from left to
* right, yLabels the ranks from top to bottom, and values maps each
* team to its rank at every round (rank 1 is first place). highlight
* maps team names to the colour to pick them out with.
 */
func (b *Bumpy) Draw(name string, width, height float64, xLabels, yLabels []string,
	values map[string][]int, highlight map[string]string) (*draw.Scene, error) {

	if len(xLabels) == 0 || len(yLabels) == 0 {
		return nil, fmt.Errorf("xLabels and yLabels cannot be empty")
	}
	numRounds := len(xLabels)
	numRanks := len(yLabels)
	for team, ranks := range values {
		if len(ranks) != numRounds {
			return nil, fmt.Errorf("team %q has %d ranks for %d rounds", team, len(ranks), numRounds)
		}
		for _, r := range ranks {
			if r < 1 || r > numRanks {
				return nil, fmt.Errorf("team %q has rank %d outside 1..%d", team, r, numRanks)
			}
		}
	}

	scene, err := draw.NewScene(name, width, height)
	if err != nil {
		return nil, err
	}
	// margin for the round labels below and the rank labels at the left
	marginX := 1.5
	marginY := 1.0
	if err := scene.SetViewBox(-marginX, 1-marginY,
		float64(numRounds-1)+2*marginX, float64(numRanks-1)+2*marginY+0.8); err != nil {
		return nil, err
	}
	scene.Background = b.Background

	// deterministic paint order, highlighted teams pulled on top by
	// zorder
	teams := make([]string, 0, len(values))
	for team := range values {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	for _, team := range teams {
		color := b.ScatterColor
		lineColor := b.LineColor
		alpha := b.SecondaryAlpha
		z := zValues
		if c, ok := highlight[team]; ok {
			color = c
			lineColor = c
			alpha = 1
			z = zMarkers
		}

		ranks := make([]float64, numRounds)
		for i, r := range values[team] {
			// svg y grows downward, so rank 1 lands at the top unless
			// the chart is flipped
			if b.UpsideDown {
				ranks[i] = float64(numRanks - r + 1)
			} else {
				ranks[i] = float64(r)
			}
		}

		style := draw.NewStyle(lineColor, b.LineWidth)
		style.StrokeOpacity = alpha
		scene.Add(&draw.PathShape{D: b.curvePath(ranks), Style: style, Zorder: z})

		if b.Scatter {
			for i, r := range ranks {
				ms := draw.NewFillStyle(color, alpha)
				scene.Add(&draw.Circle{Cx: float64(i), Cy: r, R: b.MarkerRadius, Style: ms, Zorder: z})
			}
		}
	}

	b.drawLabels(scene, xLabels, yLabels, numRanks)
	return scene, nil
}

func (b *Bumpy) drawLabels(scene *draw.Scene, xLabels, yLabels []string, numRanks int) {
	for i, label := range xLabels {
		scene.Add(&draw.Text{
			X: float64(i), Y: float64(numRanks) + 0.9,
			Content: label,
			Size:    b.TickSize,
			Color:   b.LabelColor,
			Anchor:  "middle",
			Zorder:  zLabels,
		})
	}
	for j, label := range yLabels {
		y := float64(j + 1)
		if b.UpsideDown {
			y = float64(numRanks - j)
		}
		scene.Add(&draw.Text{
			X: -0.5, Y: y + b.TickSize/3,
			Content: label,
			Size:    b.TickSize,
			Color:   b.LabelColor,
			Anchor:  "end",
			Zorder:  zLabels,
		})
	}
}
