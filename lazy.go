package shape

import (
	"io"

	"honnef.co/go/shape/boolexpr"
)

// Set is a lazily composed region. Boolean operations on sets record an
// operator tree over region leaves instead of running the composer; the tree
// is simplified symbolically and materialized into geometry only when a
// geometric query needs it. Chains like ((A∪B)∖B)∪B therefore collapse
// before any curve intersection happens.
//
// Sets built from the same *Set share leaves, which is what lets the
// simplifier cancel them against each other.
type Set struct {
	expr boolexpr.Tree[*Region]

	// Materialized geometry, filled on first demand.
	region *Region
}

// NewSet returns a lazy set over the given region.
func NewSet(r Region) *Set {
	return &Set{expr: boolexpr.Leaf(&r)}
}

// EmptySet returns the lazy empty set.
func EmptySet() *Set {
	return &Set{expr: boolexpr.False[*Region]()}
}

// WholeSet returns the lazy set covering the plane.
func WholeSet() *Set {
	return &Set{expr: boolexpr.True[*Region]()}
}

func (s *Set) Union(o *Set) *Set {
	return &Set{expr: boolexpr.Or(s.expr, o.expr)}
}

func (s *Set) Intersect(o *Set) *Set {
	return &Set{expr: boolexpr.And(s.expr, o.expr)}
}

func (s *Set) Subtract(o *Set) *Set {
	return &Set{expr: boolexpr.And(s.expr, boolexpr.Not(o.expr))}
}

func (s *Set) SymmetricDifference(o *Set) *Set {
	return &Set{expr: boolexpr.Xor(s.expr, o.expr)}
}

func (s *Set) Complement() *Set {
	return &Set{expr: boolexpr.Not(s.expr)}
}

// Region materializes the set's geometry. The operator tree is first
// rewritten as a disjunction of prime implicants, then evaluated bottom-up
// through the composer. The result is memoized.
func (s *Set) Region() Region {
	if s.region == nil {
		r := materialize(s.expr.Simplify(boolexpr.DefaultMaxVariables))
		s.region = &r
	}
	return *s.region
}

func materialize(t boolexpr.Tree[*Region]) Region {
	switch t.Kind() {
	case boolexpr.FalseKind:
		return Empty()
	case boolexpr.TrueKind:
		return Whole()
	case boolexpr.LeafKind:
		return *t.LeafValue()
	case boolexpr.NotKind:
		return Complement(materialize(t.Children()[0]))
	case boolexpr.AndKind:
		return Intersect(materializeAll(t.Children())...)
	case boolexpr.OrKind:
		return Unite(materializeAll(t.Children())...)
	case boolexpr.XorKind:
		return SymmetricDifference(materializeAll(t.Children())...)
	default:
		panic("invalid expression kind")
	}
}

func materializeAll(ts []boolexpr.Tree[*Region]) []Region {
	out := make([]Region, len(ts))
	for i, t := range ts {
		out[i] = materialize(t)
	}
	return out
}

// ContainsPoint reports whether the point belongs to the materialized set,
// boundary included.
func (s *Set) ContainsPoint(pt Point) bool {
	return s.Region().ContainsPoint(pt)
}

// Locate classifies the point against the materialized set.
func (s *Set) Locate(pt Point) PointLocation {
	return s.Region().Locate(pt)
}

// Contains reports whether s ⊇ o.
func (s *Set) Contains(o *Set) bool {
	return s.Region().ContainsRegion(o.Region())
}

// Intersects reports whether s and o share at least a point.
func (s *Set) Intersects(o *Set) bool {
	return s.Region().IntersectsRegion(o.Region())
}

// Omits reports whether s and o are disjoint.
func (s *Set) Omits(o *Set) bool {
	return s.Region().OmitsRegion(o.Region())
}

// Area returns the materialized set's area.
func (s *Set) Area() float64 {
	return s.Region().Area()
}

// SVG renders the materialized set's boundaries as SVG path commands.
func (s *Set) SVG(opts SVGOptions) string {
	return s.Region().SVG(opts)
}

// WriteSVG renders the materialized set's boundaries as SVG path commands
// and writes them to w.
func (s *Set) WriteSVG(w io.Writer, opts SVGOptions) error {
	return s.Region().WriteSVG(w, opts)
}
