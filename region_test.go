package shape

import (
	"math"
	"testing"
)

func square(x0, y0, side float64) *Boundary {
	return newBoundary([]Segment{
		Line{Pt(x0, y0), Pt(x0 + side, y0)}.Seg(),
		Line{Pt(x0 + side, y0), Pt(x0 + side, y0 + side)}.Seg(),
		Line{Pt(x0 + side, y0 + side), Pt(x0, y0 + side)}.Seg(),
		Line{Pt(x0, y0 + side), Pt(x0, y0)}.Seg(),
	})
}

func TestRegionLocateSimple(t *testing.T) {
	r := NewSimple(unitSquare())
	cases := []struct {
		pt   Point
		want PointLocation
	}{
		{Pt(0.5, 0.5), Interior},
		{Pt(2, 2), Exterior},
		{Pt(0.5, 0), OnBoundary},
		{Pt(0, 0), OnBoundary},
		{Pt(-0.1, 0.5), Exterior},
	}
	for _, c := range cases {
		if got := r.Locate(c.pt); got != c.want {
			t.Errorf("Locate(%v) = %v, want %v", c.pt, got, c.want)
		}
	}
	if !r.ContainsPoint(Pt(0, 0)) {
		t.Error("the region should contain its own boundary")
	}
}

func TestRegionLocateComplement(t *testing.T) {
	inv := unitSquare()
	inv.Invert()
	r := NewSimple(inv)
	if got := r.Locate(Pt(2, 2)); got != Interior {
		t.Errorf("exterior of the square should be interior, got %v", got)
	}
	if got := r.Locate(Pt(0.5, 0.5)); got != Exterior {
		t.Errorf("interior of the square should be exterior, got %v", got)
	}
	if got := r.Locate(Pt(0.5, 0)); got != OnBoundary {
		t.Errorf("boundary should stay boundary, got %v", got)
	}
}

func TestRegionLocateConnected(t *testing.T) {
	hole := square(1, 1, 2)
	hole.Invert()
	r := newConnected(square(0, 0, 4), []*Boundary{hole})
	if r.Kind != ConnectedKind {
		t.Fatalf("got kind %v, want ConnectedKind", r.Kind)
	}
	cases := []struct {
		pt   Point
		want PointLocation
	}{
		{Pt(0.5, 0.5), Interior},
		{Pt(2, 2), Exterior},   // inside the hole
		{Pt(5, 5), Exterior},   // outside everything
		{Pt(0, 2), OnBoundary}, // outer boundary
		{Pt(1, 2), OnBoundary}, // hole boundary
	}
	for _, c := range cases {
		if got := r.Locate(c.pt); got != c.want {
			t.Errorf("Locate(%v) = %v, want %v", c.pt, got, c.want)
		}
	}
}

func TestRegionArea(t *testing.T) {
	if got := Empty().Area(); got != 0 {
		t.Errorf("got empty area %v, want 0", got)
	}
	if got := Whole().Area(); !math.IsInf(got, 1) {
		t.Errorf("got whole area %v, want +Inf", got)
	}
	if got := NewSimple(square(0, 0, 4)).Area(); math.Abs(got-16) > 1e-9 {
		t.Errorf("got area %v, want 16", got)
	}

	inv := unitSquare()
	inv.Invert()
	if got := NewSimple(inv).Area(); !math.IsInf(got, 1) {
		t.Errorf("got complement area %v, want +Inf", got)
	}

	hole := square(1, 1, 2)
	hole.Invert()
	connected := newConnected(square(0, 0, 4), []*Boundary{hole})
	if got := connected.Area(); math.Abs(got-12) > 1e-9 {
		t.Errorf("got area %v, want 12", got)
	}

	disjoint := newDisjoint([]Region{
		NewSimple(square(0, 0, 1)),
		NewSimple(square(5, 5, 2)),
	})
	if got := disjoint.Area(); math.Abs(got-5) > 1e-9 {
		t.Errorf("got area %v, want 5", got)
	}
}

func TestRegionEqual(t *testing.T) {
	a := NewSimple(square(0, 0, 2))
	b := NewSimple(square(0, 0, 2))
	if !a.Equal(b) {
		t.Error("identical regions should be equal")
	}
	if a.Equal(NewSimple(square(0, 0, 3))) {
		t.Error("different regions should not be equal")
	}
	if a.Equal(Empty()) || a.Equal(Whole()) {
		t.Error("a simple region equals neither the empty nor the whole region")
	}
	if !Empty().Equal(Empty()) || !Whole().Equal(Whole()) {
		t.Error("constants should equal themselves")
	}
}

func TestRegionEqualDisjointOrder(t *testing.T) {
	p1 := NewSimple(square(0, 0, 1))
	p2 := NewSimple(square(5, 5, 2))
	a := newDisjoint([]Region{p1, p2})
	b := newDisjoint([]Region{p2, p1})
	if !a.Equal(b) {
		t.Error("piece order should not matter")
	}
}

func TestRegionTransform(t *testing.T) {
	r := NewSimple(unitSquare()).Transform(Scale(2, 2))
	if got := r.Area(); math.Abs(got-4) > 1e-9 {
		t.Errorf("got area %v, want 4", got)
	}

	translated := NewSimple(unitSquare()).Translate(Vec(10, 0))
	if !translated.ContainsPoint(Pt(10.5, 0.5)) {
		t.Error("translated region misses translated point")
	}
	if translated.ContainsPoint(Pt(0.5, 0.5)) {
		t.Error("translated region still contains original point")
	}
}

func TestRegionBoundingBox(t *testing.T) {
	diff(t, Rect{0, 0, 4, 4}, NewSimple(square(0, 0, 4)).BoundingBox())

	inv := unitSquare()
	inv.Invert()
	bb := NewSimple(inv).BoundingBox()
	if !math.IsInf(bb.X1, 1) || !math.IsInf(bb.X0, -1) {
		t.Errorf("complement bounding box should be unbounded, got %v", bb)
	}
}
