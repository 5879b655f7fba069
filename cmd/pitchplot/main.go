package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/richard-senior/pitchplot/internal/logger"
	"github.com/richard-senior/pitchplot/pkg/chart"
	"github.com/richard-senior/pitchplot/pkg/draw"
	"github.com/richard-senior/pitchplot/pkg/pitch"
	"github.com/richard-senior/pitchplot/pkg/statsbomb"
)

func main() {
	// Configure logging
	logger.SetShowDateTime(true)
	logger.SetLogOutput('c')

	logger.Info("Starting github.com/richard-senior/pitchplot application")

	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "pitches":
		err = renderPitches(outDir())
	case "demo":
		err = renderDemo(outDir())
	case "flatten":
		err = flattenEvents()
	case "fetch":
		err = fetchMatch()
	case "competitions":
		err = listCompetitions()
	default:
		logger.Error("Unknown command:", os.Args[1])
		usage()
		os.Exit(1)
	}
	if err != nil {
		logger.Error("Command failed:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: pitchplot <command> [args]")
	fmt.Println("  pitches [outdir]          render a pitch for every provider")
	fmt.Println("  demo [outdir]             render the overlay and chart demos")
	fmt.Println("  flatten <file> <matchid> [outdir]  flatten an event json to csv tables")
	fmt.Println("  fetch <matchid>           download a match's events and store them")
	fmt.Println("  competitions              list the open-data competitions as csv")
}

func outDir() string {
	if len(os.Args) > 2 {
		return os.Args[2]
	}
	return "."
}

/**
* renderPitches draws one plain pitch per provider so the coordinate
* systems can be compared side by side
 */
func renderPitches(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, pitchType := range pitch.ValidPitchTypes {
		width, length := 0.0, 0.0
		if pitch.SizeVaries(pitchType) {
			width, length = 68, 105
		}
		p, err := pitch.NewPitch(pitchType, width, length)
		if err != nil {
			return err
		}
		scene, err := p.Draw()
		if err != nil {
			return fmt.Errorf("failed to draw %s pitch: %w", pitchType, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("pitch-%s.svg", pitchType))
		if err := scene.WriteFile(path); err != nil {
			return err
		}
		logger.Info("Wrote", path)
	}
	return nil
}

/**
* renderDemo draws the overlay types on synthetic event data plus one
* of each comparison chart, and composes a figure from a pitch and a
* radar
 */
func renderDemo(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rng := rand.New(rand.NewSource(42))
	n := 200
	x := make([]float64, n)
	y := make([]float64, n)
	endX := make([]float64, n)
	endY := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = rng.Float64() * 120
		y[i] = rng.Float64() * 80
		endX[i] = clampTo(x[i]+rng.NormFloat64()*15+10, 0, 120)
		endY[i] = clampTo(y[i]+rng.NormFloat64()*10, 0, 80)
	}

	if err := renderOverlays(dir, rng, x, y, endX, endY); err != nil {
		return err
	}
	radarScene, err := renderCharts(dir)
	if err != nil {
		return err
	}
	return renderFigure(dir, radarScene)
}

func renderOverlays(dir string, rng *rand.Rand, x, y, endX, endY []float64) error {
	type overlay struct {
		name string
		add  func(p *pitch.Pitch, scene *draw.Scene) error
	}
	overlays := []overlay{
		{"scatter", func(p *pitch.Pitch, scene *draw.Scene) error {
			return p.Scatter(scene, x, y, &pitch.ScatterOptions{Color: "#ba495c", Alpha: 0.8})
		}},
		{"heatmap", func(p *pitch.Pitch, scene *draw.Scene) error {
			result, err := p.BinStatistic(x, y, nil, "count", nil)
			if err != nil {
				return err
			}
			return p.Heatmap(scene, result, draw.Hot(), nil)
		}},
		{"positional", func(p *pitch.Pitch, scene *draw.Scene) error {
			results, err := p.BinStatisticPositional(x, y, nil, "full", "count")
			if err != nil {
				return err
			}
			return p.HeatmapPositional(scene, results, draw.Blues(), nil)
		}},
		{"hexbin", func(p *pitch.Pitch, scene *draw.Scene) error {
			return p.HexBin(scene, x, y, 20, 14, draw.Viridis(), nil)
		}},
		{"kde", func(p *pitch.Pitch, scene *draw.Scene) error {
			return p.KDE(scene, x, y, 0, 0, nil, nil)
		}},
		{"flow", func(p *pitch.Pitch, scene *draw.Scene) error {
			return p.Flow(scene, x, y, endX, endY, "scale", 10, nil, "", draw.Viridis())
		}},
		{"comets", func(p *pitch.Pitch, scene *draw.Scene) error {
			opt := &pitch.LineOptions{Color: "#56ae6c", Width: 1.2, Comet: true, TransparentAlpha: true}
			return p.Lines(scene, x[:30], y[:30], endX[:30], endY[:30], opt)
		}},
		{"arrows", func(p *pitch.Pitch, scene *draw.Scene) error {
			return p.Arrows(scene, x[:30], y[:30], endX[:30], endY[:30], &pitch.ArrowOptions{Color: "#7a7a7a"})
		}},
		{"hull", func(p *pitch.Pitch, scene *draw.Scene) error {
			style := draw.NewFillStyle("#1a78cf", 0.3)
			style.Stroke = "#1a78cf"
			style.StrokeWidth = 0.4
			return p.ConvexHull(scene, x[:20], y[:20], style, 2)
		}},
		{"voronoi", func(p *pitch.Pitch, scene *draw.Scene) error {
			teams := make([]bool, 22)
			for i := range teams {
				teams[i] = i < 11
			}
			return p.Voronoi(scene, x[:22], y[:22], teams, "#1a78cf", "#ff9300", 0.4)
		}},
		{"goal-angle", func(p *pitch.Pitch, scene *draw.Scene) error {
			style := draw.NewFillStyle("#cb4154", 0.4)
			return p.GoalAngle(scene, 100, 30, "right", style, 2)
		}},
	}

	for _, o := range overlays {
		p, err := pitch.NewPitch(pitch.TypeStatsbomb, 0, 0)
		if err != nil {
			return err
		}
		scene, err := p.Draw()
		if err != nil {
			return err
		}
		if err := o.add(p, scene); err != nil {
			return fmt.Errorf("failed to draw %s overlay: %w", o.name, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("demo-%s.svg", o.name))
		if err := scene.WriteFile(path); err != nil {
			return err
		}
		logger.Info("Wrote", path)
	}
	return nil
}

// renderCharts draws a radar, a pizza and a bump chart, returning the
// radar scene for the composed figure
func renderCharts(dir string) (*draw.Scene, error) {
	params := []string{"npxG", "Key Passes", "Pass Completion", "Tackles", "Interceptions", "Aerials Won"}
	low := []float64{0.0, 0.5, 60, 1.0, 0.5, 0.5}
	high := []float64{0.6, 3.0, 95, 4.5, 3.5, 4.0}
	values := []float64{0.35, 2.2, 88, 3.1, 2.4, 1.9}
	compare := []float64{0.25, 1.4, 74, 4.1, 3.2, 3.5}

	radar, err := chart.NewRadar(params, low, high, 4)
	if err != nil {
		return nil, err
	}
	radarScene, err := radar.Scene("radar", 600, "#f2f2f2")
	if err != nil {
		return nil, err
	}
	radar.DrawRings(radarScene, "#ffffff", "#e0e0e0")
	if err := radar.DrawRadarCompare(radarScene, values, compare, "#aa65b2", "#697cd4", 0.6); err != nil {
		return nil, err
	}
	radar.DrawRangeLabels(radarScene, 0.22, "#555555")
	radar.DrawParamLabels(radarScene, 0.3, "#222222")
	if err := writeScene(dir, "demo-radar.svg", radarScene); err != nil {
		return nil, err
	}

	pizza, err := chart.NewPizza(params, low, high)
	if err != nil {
		return nil, err
	}
	pizzaScene, err := pizza.Draw("pizza", 600, values, compare, nil)
	if err != nil {
		return nil, err
	}
	if err := writeScene(dir, "demo-pizza.svg", pizzaScene); err != nil {
		return nil, err
	}

	bumpy := chart.NewBumpy()
	rounds := []string{"MW1", "MW2", "MW3", "MW4", "MW5", "MW6"}
	ranks := []string{"1st", "2nd", "3rd", "4th", "5th", "6th"}
	positions := map[string][]int{
		"Arsenal":   {2, 1, 1, 2, 1, 1},
		"Liverpool": {1, 2, 3, 1, 2, 2},
		"Man City":  {3, 3, 2, 3, 3, 4},
		"Chelsea":   {4, 5, 4, 4, 4, 3},
		"Tottenham": {5, 4, 5, 6, 5, 5},
		"Newcastle": {6, 6, 6, 5, 6, 6},
	}
	highlight := map[string]string{"Arsenal": "#ef4b42", "Liverpool": "#c8102e"}
	bumpScene, err := bumpy.Draw("bumpy", 800, 500, rounds, ranks, positions, highlight)
	if err != nil {
		return nil, err
	}
	if err := writeScene(dir, "demo-bumpy.svg", bumpScene); err != nil {
		return nil, err
	}
	return radarScene, nil
}

// renderFigure composes a pitch and a radar side by side under a title
func renderFigure(dir string, radarScene *draw.Scene) error {
	p, err := pitch.NewPitch(pitch.TypeUefa, 0, 0)
	if err != nil {
		return err
	}
	pitchScene, err := p.Draw()
	if err != nil {
		return err
	}

	spec := chart.DefaultGridSpec(1, 2)
	spec.AxAspect = 1.3
	grid, err := chart.NewGrid("figure", spec, 700, "#f2f2f2")
	if err != nil {
		return err
	}
	if err := grid.AddPanel(0, 0, pitchScene); err != nil {
		return err
	}
	if err := grid.AddPanel(0, 1, radarScene); err != nil {
		return err
	}
	if err := grid.Title("Match Report", "#222222", 0); err != nil {
		return err
	}
	if err := grid.Endnote("data: statsbomb open data", "#555555", 0); err != nil {
		return err
	}
	return writeScene(dir, "demo-figure.svg", grid.Scene())
}

func writeScene(dir, name string, scene *draw.Scene) error {
	path := filepath.Join(dir, name)
	if err := scene.WriteFile(path); err != nil {
		return err
	}
	logger.Info("Wrote", path)
	return nil
}

/**
* flattenEvents reads a local event json and writes the event and
* companion tables alongside it as csv
 */
func flattenEvents() error {
	if len(os.Args) < 4 {
		return fmt.Errorf("usage: pitchplot flatten <file> <matchid> [outdir]")
	}
	file := os.Args[2]
	matchID, err := strconv.Atoi(os.Args[3])
	if err != nil {
		return fmt.Errorf("invalid match id %q: %w", os.Args[3], err)
	}
	dir := "."
	if len(os.Args) > 4 {
		dir = os.Args[4]
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}
	eventData, err := statsbomb.ReadEvents(data, matchID)
	if err != nil {
		return err
	}

	tables := map[string]*statsbomb.Table{
		"event":             eventData.Events,
		"related-event":     eventData.RelatedEvents,
		"shot-freeze-frame": eventData.ShotFreezeFrames,
		"tactics-lineup":    eventData.TacticsLineups,
	}
	for name, table := range tables {
		path := filepath.Join(dir, fmt.Sprintf("%d-%s.csv", matchID, name))
		if err := table.WriteCSV(path); err != nil {
			return err
		}
		logger.Info("Wrote", path, table.NumRows(), "rows")
	}
	return nil
}

// fetchMatch downloads a match's events and stores them in the
// database
func fetchMatch() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: pitchplot fetch <matchid>")
	}
	matchID, err := strconv.Atoi(os.Args[2])
	if err != nil {
		return fmt.Errorf("invalid match id %q: %w", os.Args[2], err)
	}
	ds := statsbomb.GetDatasourceInstance()
	eventData, err := ds.GetEvents(matchID)
	if err != nil {
		return err
	}
	logger.Info("Flattened", eventData.Events.NumRows(), "events for match", matchID)
	return statsbomb.StoreEvents(eventData)
}

// listCompetitions prints the open-data competitions table
func listCompetitions() error {
	ds := statsbomb.GetDatasourceInstance()
	competitions, err := ds.GetCompetitions()
	if err != nil {
		return err
	}
	csv, err := competitions.CSV()
	if err != nil {
		return err
	}
	fmt.Print(csv)
	return nil
}

func clampTo(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
