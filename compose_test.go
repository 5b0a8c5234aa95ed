package shape

import (
	"math"
	"testing"
)

func mustPolygon(t *testing.T, vertices []Point) Region {
	t.Helper()
	r, err := NewPolygon(vertices)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestUniteDiamonds(t *testing.T) {
	a, _ := RegularPolygon(4, 2, Pt(-1, 0))
	b, _ := RegularPolygon(4, 2, Pt(1, 0))
	u := Unite(a, b)
	if u.Kind != SimpleKind {
		t.Fatalf("got kind %v, want SimpleKind", u.Kind)
	}
	if got := u.Area(); math.Abs(got-14) > 1e-9 {
		t.Errorf("got area %v, want 14", got)
	}
	want := mustPolygon(t, []Point{
		{0, 1}, {-1, 2}, {-3, 0}, {-1, -2},
		{0, -1}, {1, -2}, {3, 0}, {1, 2},
	})
	if !u.Equal(want) {
		t.Errorf("union boundary mismatch:\ngot  %v\nwant %v",
			u.Boundaries()[0].Vertices(), want.Boundaries()[0].Vertices())
	}

	// The union dips to (0, 1) between the two tips.
	if u.ContainsPoint(Pt(0, 1.5)) {
		t.Error("the notch above (0, 1) is not part of the union")
	}
	if !u.ContainsPoint(Pt(0, 0)) {
		t.Error("the overlap is part of the union")
	}
}

func TestIntersectDiamonds(t *testing.T) {
	a, _ := RegularPolygon(4, 2, Pt(-1, 0))
	b, _ := RegularPolygon(4, 2, Pt(1, 0))
	i := Intersect(a, b)
	if i.Kind != SimpleKind {
		t.Fatalf("got kind %v, want SimpleKind", i.Kind)
	}
	if got := i.Area(); math.Abs(got-2) > 1e-9 {
		t.Errorf("got area %v, want 2", got)
	}
	want, _ := RegularPolygon(4, 1, Pt(0, 0))
	if !i.Equal(want) {
		t.Errorf("intersection boundary mismatch:\ngot  %v\nwant %v",
			i.Boundaries()[0].Vertices(), want.Boundaries()[0].Vertices())
	}
}

func TestSubtractHole(t *testing.T) {
	outer, _ := Square(4, Pt(0, 0))
	inner, _ := Square(2, Pt(0, 0))
	d := Subtract(outer, inner)
	if d.Kind != ConnectedKind {
		t.Fatalf("got kind %v, want ConnectedKind", d.Kind)
	}
	if got := d.Area(); math.Abs(got-12) > 1e-9 {
		t.Errorf("got area %v, want 12", got)
	}
	if d.ContainsPoint(Pt(0, 0)) {
		t.Error("the hole is not part of the difference")
	}
	if !d.ContainsPoint(Pt(1.5, 1.5)) {
		t.Error("the rim is part of the difference")
	}
	if !d.ContainsPoint(Pt(1, 1)) {
		t.Error("the hole's boundary is part of the difference")
	}
}

func TestUniteDisjoint(t *testing.T) {
	a, _ := Square(1, Pt(0, 0))
	b, _ := Square(2, Pt(10, 10))
	u := Unite(a, b)
	if u.Kind != DisjointKind {
		t.Fatalf("got kind %v, want DisjointKind", u.Kind)
	}
	if got := u.Area(); math.Abs(got-5) > 1e-9 {
		t.Errorf("got area %v, want 5", got)
	}
	if Intersect(a, b).Kind != EmptyKind {
		t.Error("disjoint squares should have an empty intersection")
	}
}

func TestUniteCornerTangent(t *testing.T) {
	// Squares touching at exactly one corner stay two simple loops instead of
	// fusing into a single self-intersecting one.
	a, _ := NewRect(Rect{0, 0, 1, 1})
	b, _ := NewRect(Rect{1, 1, 2, 2})
	u := Unite(a, b)
	if u.Kind != DisjointKind {
		t.Fatalf("got kind %v, want DisjointKind", u.Kind)
	}
	if got := u.Area(); math.Abs(got-2) > 1e-9 {
		t.Errorf("got area %v, want 2", got)
	}
	for _, l := range u.Boundaries() {
		if got := len(l.Vertices()); got != 4 {
			t.Errorf("got a %d-gon loop, want two squares:\n%v", got, l.Vertices())
		}
	}
	if !u.Equal(Unite(b, a)) {
		t.Error("union of corner-tangent squares should not depend on order")
	}
	if got := Intersect(a, b); got.Kind != EmptyKind {
		t.Errorf("corner-tangent squares should intersect in nothing, got kind %v", got.Kind)
	}
}

func TestUniteNested(t *testing.T) {
	big, _ := Square(4, Pt(0, 0))
	small, _ := Square(1, Pt(0, 0))
	if !Unite(big, small).Equal(big) {
		t.Error("union with a contained region is the containing region")
	}
	if !Intersect(big, small).Equal(small) {
		t.Error("intersection with a contained region is the contained region")
	}
}

func TestComposeIdentities(t *testing.T) {
	a, _ := RegularPolygon(4, 2, Pt(-1, 0))
	b, _ := RegularPolygon(4, 2, Pt(1, 0))

	if !Unite(a, a).Equal(a) {
		t.Error("A ∪ A should be A")
	}
	if !Intersect(a, a).Equal(a) {
		t.Error("A ∩ A should be A")
	}
	if got := Unite(a, Complement(a)); got.Kind != WholeKind {
		t.Errorf("A ∪ ~A should be the whole plane, got kind %v", got.Kind)
	}
	if got := Intersect(a, Complement(a)); got.Kind != EmptyKind {
		t.Errorf("A ∩ ~A should be empty, got kind %v", got.Kind)
	}
	if !Complement(Complement(a)).Equal(a) {
		t.Error("~~A should be A")
	}
	if !Unite(a, b).Equal(Unite(b, a)) {
		t.Error("union should be commutative")
	}
	if !Intersect(a, b).Equal(Intersect(b, a)) {
		t.Error("intersection should be commutative")
	}
	if got := Subtract(a, a); got.Kind != EmptyKind {
		t.Errorf("A ∖ A should be empty, got kind %v", got.Kind)
	}
	if got := SymmetricDifference(a, a); got.Kind != EmptyKind {
		t.Errorf("A △ A should be empty, got kind %v", got.Kind)
	}
}

func TestComposeDeMorgan(t *testing.T) {
	a, _ := RegularPolygon(4, 2, Pt(-1, 0))
	b, _ := RegularPolygon(4, 2, Pt(1, 0))
	if !Complement(Unite(a, b)).Equal(Intersect(Complement(a), Complement(b))) {
		t.Error("~(A ∪ B) should equal ~A ∩ ~B")
	}
	if !Complement(Intersect(a, b)).Equal(Unite(Complement(a), Complement(b))) {
		t.Error("~(A ∩ B) should equal ~A ∪ ~B")
	}
}

func TestComposeConstants(t *testing.T) {
	a, _ := Square(2, Pt(0, 0))
	if !Unite(a, Empty()).Equal(a) {
		t.Error("A ∪ ∅ should be A")
	}
	if got := Unite(a, Whole()); got.Kind != WholeKind {
		t.Errorf("A ∪ U should be the whole plane, got kind %v", got.Kind)
	}
	if got := Intersect(a, Empty()); got.Kind != EmptyKind {
		t.Errorf("A ∩ ∅ should be empty, got kind %v", got.Kind)
	}
	if !Intersect(a, Whole()).Equal(a) {
		t.Error("A ∩ U should be A")
	}
	if got := Unite(); got.Kind != EmptyKind {
		t.Errorf("the empty union should be empty, got kind %v", got.Kind)
	}
	if got := Intersect(); got.Kind != WholeKind {
		t.Errorf("the empty intersection should be the whole plane, got kind %v", got.Kind)
	}
}

func TestSymmetricDifferenceDiamonds(t *testing.T) {
	a, _ := RegularPolygon(4, 2, Pt(-1, 0))
	b, _ := RegularPolygon(4, 2, Pt(1, 0))
	x := SymmetricDifference(a, b)
	if got := x.Area(); math.Abs(got-12) > 1e-9 {
		t.Errorf("got area %v, want 12", got)
	}
	if x.ContainsPoint(Pt(0, 0.5)) {
		t.Error("the overlap is not part of the symmetric difference")
	}
	if !x.ContainsPoint(Pt(-2, 0)) {
		t.Error("the left tip is part of the symmetric difference")
	}
}

func TestUniteSharedEdge(t *testing.T) {
	// Two unit squares sharing the edge x = 1. The internal edge cancels.
	a, _ := NewRect(Rect{0, 0, 1, 1})
	b, _ := NewRect(Rect{1, 0, 2, 1})
	u := Unite(a, b)
	if u.Kind != SimpleKind {
		t.Fatalf("got kind %v, want SimpleKind", u.Kind)
	}
	if got := u.Area(); math.Abs(got-2) > 1e-9 {
		t.Errorf("got area %v, want 2", got)
	}
	want, _ := NewRect(Rect{0, 0, 2, 1})
	if !u.Equal(want) {
		t.Error("union of adjacent squares should be their bounding rectangle")
	}
}

func TestUnitePartialSharedEdge(t *testing.T) {
	// Overlapping rectangles whose bottom edges share the stretch [1, 2].
	// The shared stretch survives once in the union's boundary.
	a, _ := NewRect(Rect{0, 0, 2, 1})
	b, _ := NewRect(Rect{1, 0, 3, 1})
	u := Unite(a, b)
	if got := u.Area(); math.Abs(got-3) > 1e-9 {
		t.Errorf("got area %v, want 3", got)
	}
	want, _ := NewRect(Rect{0, 0, 3, 1})
	if !u.Equal(want) {
		t.Error("union of overlapping rectangles should be their bounding rectangle")
	}

	i := Intersect(a, b)
	if got := i.Area(); math.Abs(got-1) > 1e-9 {
		t.Errorf("got area %v, want 1", got)
	}
	wantI, _ := NewRect(Rect{1, 0, 2, 1})
	if !i.Equal(wantI) {
		t.Error("intersection of overlapping rectangles should be their overlap")
	}
}

func TestIntersectCircles(t *testing.T) {
	a, _ := Circle(Pt(0, 0), 1)
	b, _ := Circle(Pt(1, 0), 1)
	lens := Intersect(a, b)
	if lens.Kind != SimpleKind {
		t.Fatalf("got kind %v, want SimpleKind", lens.Kind)
	}
	// Lens area for unit circles one radius apart, up to the quadratic
	// approximation of the arcs.
	want := 2*math.Pi/3 - math.Sqrt(3)/2
	if got := lens.Area(); math.Abs(got-want) > 0.02 {
		t.Errorf("got area %v, want about %v", got, want)
	}
	if !lens.ContainsPoint(Pt(0.5, 0)) {
		t.Error("the lens center should be inside")
	}
	if lens.ContainsPoint(Pt(-0.5, 0)) || lens.ContainsPoint(Pt(1.5, 0)) {
		t.Error("points of a single circle only should be outside")
	}
}

func TestContainsRegion(t *testing.T) {
	big, _ := Square(4, Pt(0, 0))
	small, _ := Square(1, Pt(0, 0))
	far, _ := Square(1, Pt(10, 0))

	if !big.ContainsRegion(small) {
		t.Error("the big square contains the small one")
	}
	if small.ContainsRegion(big) {
		t.Error("the small square does not contain the big one")
	}
	if !big.ContainsRegion(big) {
		t.Error("containment is reflexive")
	}
	if !big.IntersectsRegion(small) {
		t.Error("nested squares intersect")
	}
	if !big.OmitsRegion(far) {
		t.Error("distant squares are disjoint")
	}
	if big.ContainsRegion(far) {
		t.Error("distant squares do not contain each other")
	}
}

func TestComplementGrouping(t *testing.T) {
	outer, _ := Square(4, Pt(0, 0))
	inner, _ := Square(2, Pt(0, 0))
	ring := Subtract(outer, inner)

	// The complement of a ring is the hole plus the unbounded outside,
	// which are disjoint pieces.
	c := Complement(ring)
	if c.Kind != DisjointKind {
		t.Fatalf("got kind %v, want DisjointKind", c.Kind)
	}
	if !c.ContainsPoint(Pt(0, 0)) {
		t.Error("the hole belongs to the complement")
	}
	if !c.ContainsPoint(Pt(10, 10)) {
		t.Error("the outside belongs to the complement")
	}
	if c.ContainsPoint(Pt(1.5, 1.5)) {
		t.Error("the rim does not belong to the complement")
	}
	if !Complement(c).Equal(ring) {
		t.Error("complementing twice should restore the ring")
	}
}
