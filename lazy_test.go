package shape

import (
	"math"
	"strings"
	"testing"
)

func TestSetSelfCancellation(t *testing.T) {
	a, _ := Square(2, Pt(0, 0))
	s := NewSet(a)

	if got := s.Subtract(s).Region(); got.Kind != EmptyKind {
		t.Errorf("A ∖ A should be empty, got kind %v", got.Kind)
	}
	if got := s.SymmetricDifference(s).Region(); got.Kind != EmptyKind {
		t.Errorf("A △ A should be empty, got kind %v", got.Kind)
	}
	if got := s.Union(s.Complement()).Region(); got.Kind != WholeKind {
		t.Errorf("A ∪ ~A should be the whole plane, got kind %v", got.Kind)
	}
	if got := s.Intersect(s.Complement()).Region(); got.Kind != EmptyKind {
		t.Errorf("A ∩ ~A should be empty, got kind %v", got.Kind)
	}
}

func TestSetChainCollapse(t *testing.T) {
	a, _ := RegularPolygon(4, 2, Pt(-1, 0))
	b, _ := RegularPolygon(4, 2, Pt(1, 0))
	sa, sb := NewSet(a), NewSet(b)

	// ((A ∪ B) ∖ B) ∪ B simplifies to A ∪ B before any geometry runs.
	chained := sa.Union(sb).Subtract(sb).Union(sb)
	if !chained.Region().Equal(Unite(a, b)) {
		t.Error("the collapsed chain should equal the plain union")
	}
}

func TestSetQueries(t *testing.T) {
	big, _ := Square(4, Pt(0, 0))
	small, _ := Square(1, Pt(0, 0))
	far, _ := Square(1, Pt(10, 0))
	sBig, sSmall, sFar := NewSet(big), NewSet(small), NewSet(far)

	if !sBig.Contains(sSmall) {
		t.Error("the big square contains the small one")
	}
	if sBig.Contains(sFar) {
		t.Error("the big square does not contain the distant one")
	}
	if !sBig.Intersects(sSmall) || !sBig.Omits(sFar) {
		t.Error("intersects/omits disagree with the geometry")
	}
	if !sBig.ContainsPoint(Pt(0, 0)) || sBig.ContainsPoint(Pt(10, 10)) {
		t.Error("point containment disagrees with the geometry")
	}
	if got := sBig.Area(); math.Abs(got-16) > 1e-9 {
		t.Errorf("got area %v, want 16", got)
	}
	if got := sBig.Locate(Pt(2, 0)); got != OnBoundary {
		t.Errorf("got %v, want OnBoundary", got)
	}
}

func TestSetConstants(t *testing.T) {
	a, _ := Square(2, Pt(0, 0))
	s := NewSet(a)
	if got := s.Union(WholeSet()).Region(); got.Kind != WholeKind {
		t.Errorf("A ∪ U should be the whole plane, got kind %v", got.Kind)
	}
	if got := s.Intersect(EmptySet()).Region(); got.Kind != EmptyKind {
		t.Errorf("A ∩ ∅ should be empty, got kind %v", got.Kind)
	}
	if !s.Union(EmptySet()).Region().Equal(a) {
		t.Error("A ∪ ∅ should be A")
	}
	if got := EmptySet().Complement().Region(); got.Kind != WholeKind {
		t.Errorf("~∅ should be the whole plane, got kind %v", got.Kind)
	}
}

func TestSetMemoization(t *testing.T) {
	a, _ := Square(2, Pt(0, 0))
	s := NewSet(a)
	first := s.Region()
	second := s.Region()
	if !first.Equal(second) {
		t.Error("repeated materialization should return the same region")
	}
	if first.Boundary != second.Boundary {
		t.Error("repeated materialization should reuse the memoized geometry")
	}
}

func TestSetSVG(t *testing.T) {
	r, _ := NewRect(Rect{0, 0, 2, 1})
	got := NewSet(r).SVG(SVGOptions{})
	if !strings.HasPrefix(got, "M0,0") || !strings.HasSuffix(got, "Z") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, "L2,0") || !strings.Contains(got, "L0,1") {
		t.Errorf("missing line commands in %q", got)
	}
}
