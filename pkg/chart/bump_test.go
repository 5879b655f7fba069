package chart

import (
	"strings"
	"testing"
)

func TestBumpyCurvePath(t *testing.T) {
	b := NewBumpy()
	got := b.curvePath([]float64{1, 2})
	want := "M 0,1 C 0.85,1 0.15,2 1,2"
	if got != want {
		t.Errorf("curvePath = %q, want %q", got, want)
	}

	// three rounds produce two bezier segments
	got = b.curvePath([]float64{1, 3, 2})
	if strings.Count(got, " C ") != 2 {
		t.Errorf("expected 2 segments in %q", got)
	}
}

func TestBumpyDrawValidation(t *testing.T) {
	b := NewBumpy()
	values := map[string][]int{"United": {1, 2}}

	if _, err := b.Draw("bump", 800, 600, nil, []string{"1st", "2nd"}, values, nil); err == nil {
		t.Error("expected an error for empty round labels")
	}
	if _, err := b.Draw("bump", 800, 600, []string{"R1"}, []string{"1st"}, values, nil); err == nil {
		t.Error("expected an error when ranks and rounds disagree")
	}
	bad := map[string][]int{"United": {1, 3}}
	if _, err := b.Draw("bump", 800, 600, []string{"R1", "R2"}, []string{"1st", "2nd"}, bad, nil); err == nil {
		t.Error("expected an error for a rank outside the table")
	}
}

func TestBumpyDraw(t *testing.T) {
	b := NewBumpy()
	values := map[string][]int{
		"United": {1, 2, 1},
		"City":   {2, 1, 2},
	}
	scene, err := b.Draw("bump", 800, 600,
		[]string{"R1", "R2", "R3"}, []string{"1st", "2nd"},
		values, map[string]string{"United": "#da291c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// per team a path and three markers, plus three round labels and
	// two rank labels
	want := 2*(1+3) + 3 + 2
	if scene.NumElements() != want {
		t.Errorf("NumElements = %d, want %d", scene.NumElements(), want)
	}

	svg, err := scene.SVG()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(svg, "#da291c") {
		t.Error("highlight colour missing from the output")
	}
	// the highlighted team paints after the muted ones
	if strings.LastIndex(svg, "#4f535c") > strings.Index(svg, "#da291c") {
		t.Error("highlighted team should be painted on top")
	}
}

func TestBumpyDrawUpsideDown(t *testing.T) {
	b := NewBumpy()
	b.Scatter = true
	b.UpsideDown = true
	values := map[string][]int{"United": {1, 1}}
	scene, err := b.Draw("bump", 800, 600,
		[]string{"R1", "R2"}, []string{"1st", "2nd"}, values, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svg, err := scene.SVG()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// flipped, first place sits at the bottom row
	if !strings.Contains(svg, `cy="2"`) {
		t.Errorf("expected rank 1 at y=2 in %q", svg)
	}
}
