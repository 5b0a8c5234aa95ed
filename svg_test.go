package shape

import (
	"strings"
	"testing"
)

func TestRegionSVG(t *testing.T) {
	r, _ := NewRect(Rect{0, 0, 2, 1})
	got := r.SVG(SVGOptions{})
	want := "M0,0 L2,0 L2,1 L0,1 Z"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRegionSVGQuad(t *testing.T) {
	b := newBoundary([]Segment{
		QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}.Seg(),
		Line{Pt(2, 0), Pt(0, 0)}.Seg(),
	})
	got := NewSimple(b).SVG(SVGOptions{})
	want := "M0,0 Q1,2 2,0 Z"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRegionSVGMultipleLoops(t *testing.T) {
	outer, _ := Square(4, Pt(0, 0))
	inner, _ := Square(2, Pt(0, 0))
	got := Subtract(outer, inner).SVG(SVGOptions{})
	if strings.Count(got, "M") != 2 || strings.Count(got, "Z") != 2 {
		t.Errorf("expected two subpaths, got %q", got)
	}
}

func TestRegionSVGEmpty(t *testing.T) {
	if got := Empty().SVG(SVGOptions{}); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
	if got := Whole().SVG(SVGOptions{}); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}

func TestRegionSVGPrecision(t *testing.T) {
	b := newBoundary([]Segment{
		Line{Pt(0, 0), Pt(1.0 / 3.0, 0)}.Seg(),
		Line{Pt(1.0 / 3.0, 0), Pt(0, 1)}.Seg(),
		Line{Pt(0, 1), Pt(0, 0)}.Seg(),
	})
	got := NewSimple(b).SVG(SVGOptions{MaxPrecision: 3})
	if !strings.Contains(got, "L0.333,0") {
		t.Errorf("got %q, want coordinates rounded to three digits", got)
	}
}
