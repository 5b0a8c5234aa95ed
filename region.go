package shape

import (
	"math"
)

type RegionKind int

const (
	// The empty region.
	EmptyKind RegionKind = iota
	// The whole plane.
	WholeKind
	// A region bounded by a single loop.
	SimpleKind
	// An outer loop with hole loops nested inside it.
	ConnectedKind
	// Multiple mutually non-overlapping pieces.
	DisjointKind
)

// Region is a planar point set. This type acts as a closed tagged union over
// the five region variants; every operation switches exhaustively over Kind.
//
// Orientation encodes sidedness: a loop with positive signed area encloses
// its interior, a loop with negative signed area represents the complement of
// its interior (everything outside it).
type Region struct {
	Kind RegionKind

	// Boundary is the loop of a SimpleKind region and the outer loop of a
	// ConnectedKind region.
	Boundary *Boundary
	// Holes are the hole loops of a ConnectedKind region, stored with the
	// orientation opposite to the outer loop.
	Holes []*Boundary
	// Pieces are the parts of a DisjointKind region, each SimpleKind or
	// ConnectedKind.
	Pieces []Region
}

// Empty returns the empty region.
func Empty() Region {
	return Region{Kind: EmptyKind}
}

// Whole returns the region covering the entire plane.
func Whole() Region {
	return Region{Kind: WholeKind}
}

// NewSimple returns the region bounded by b. If b runs anticlockwise
// (positive area) the region is the loop's interior; if it runs clockwise the
// region is everything outside the loop.
func NewSimple(b *Boundary) Region {
	return Region{Kind: SimpleKind, Boundary: b}
}

func newConnected(outer *Boundary, holes []*Boundary) Region {
	if len(holes) == 0 {
		return NewSimple(outer)
	}
	return Region{Kind: ConnectedKind, Boundary: outer, Holes: holes}
}

func newDisjoint(pieces []Region) Region {
	switch len(pieces) {
	case 0:
		return Empty()
	case 1:
		return pieces[0]
	default:
		return Region{Kind: DisjointKind, Pieces: pieces}
	}
}

// PointLocation classifies a point against a region.
type PointLocation int

const (
	Exterior PointLocation = iota
	OnBoundary
	Interior
)

// enclosed reports whether the loop winds around pt, regardless of
// orientation.
func enclosed(b *Boundary, pt Point) bool {
	return math.Round(b.Winding(pt)) != 0
}

// insideLoop reports whether pt is on the side of the loop that the loop's
// orientation declares inside the region it bounds.
func insideLoop(b *Boundary, pt Point) bool {
	if b.Orientation() > 0 {
		return enclosed(b, pt)
	}
	return !enclosed(b, pt)
}

// Locate classifies pt as exterior, boundary or interior.
func (r Region) Locate(pt Point) PointLocation {
	switch r.Kind {
	case EmptyKind:
		return Exterior
	case WholeKind:
		return Interior
	case SimpleKind:
		if r.Boundary.OnBoundary(pt) {
			return OnBoundary
		}
		if insideLoop(r.Boundary, pt) {
			return Interior
		}
		return Exterior
	case ConnectedKind:
		loops := append([]*Boundary{r.Boundary}, r.Holes...)
		for _, b := range loops {
			if b.OnBoundary(pt) {
				return OnBoundary
			}
		}
		for _, b := range loops {
			if !insideLoop(b, pt) {
				return Exterior
			}
		}
		return Interior
	case DisjointKind:
		loc := Exterior
		for _, piece := range r.Pieces {
			switch piece.Locate(pt) {
			case Interior:
				return Interior
			case OnBoundary:
				loc = OnBoundary
			}
		}
		return loc
	default:
		panic("invalid region kind")
	}
}

// ContainsPoint reports whether pt belongs to the region. Regions are closed
// sets: boundary points are contained.
func (r Region) ContainsPoint(pt Point) bool {
	return r.Locate(pt) != Exterior
}

// Area returns the area of the region. Unbounded regions have infinite area.
func (r Region) Area() float64 {
	switch r.Kind {
	case EmptyKind:
		return 0
	case WholeKind:
		return math.Inf(1)
	case SimpleKind:
		a := r.Boundary.SignedArea()
		if a < 0 {
			return math.Inf(1)
		}
		return a
	case ConnectedKind:
		total := r.Boundary.SignedArea()
		if total < 0 {
			return math.Inf(1)
		}
		for _, h := range r.Holes {
			total += h.SignedArea()
		}
		return total
	case DisjointKind:
		total := 0.0
		for _, piece := range r.Pieces {
			total += piece.Area()
		}
		return total
	default:
		panic("invalid region kind")
	}
}

// Boundaries returns every loop of the region. Empty and Whole have none.
func (r Region) Boundaries() []*Boundary {
	switch r.Kind {
	case EmptyKind, WholeKind:
		return nil
	case SimpleKind:
		return []*Boundary{r.Boundary}
	case ConnectedKind:
		return append([]*Boundary{r.Boundary}, r.Holes...)
	case DisjointKind:
		var out []*Boundary
		for _, piece := range r.Pieces {
			out = append(out, piece.Boundaries()...)
		}
		return out
	default:
		panic("invalid region kind")
	}
}

// BoundingBox returns the bounding box of the region's boundaries. The whole
// plane and complement regions yield an infinite box.
func (r Region) BoundingBox() Rect {
	inf := Rect{
		X0: math.Inf(-1), Y0: math.Inf(-1),
		X1: math.Inf(1), Y1: math.Inf(1),
	}
	switch r.Kind {
	case EmptyKind:
		return Rect{}
	case WholeKind:
		return inf
	case SimpleKind:
		if r.Boundary.Orientation() < 0 {
			return inf
		}
		return r.Boundary.BoundingBox()
	case ConnectedKind:
		if r.Boundary.Orientation() < 0 {
			return inf
		}
		return r.Boundary.BoundingBox()
	case DisjointKind:
		bbox := r.Pieces[0].BoundingBox()
		for _, piece := range r.Pieces[1:] {
			bbox = bbox.Union(piece.BoundingBox())
		}
		return bbox
	default:
		panic("invalid region kind")
	}
}

// Transform applies an affine transform to the region. The transform must
// preserve orientation (positive determinant), otherwise the region's
// sidedness would flip.
func (r Region) Transform(aff Affine) Region {
	switch r.Kind {
	case EmptyKind, WholeKind:
		return r
	case SimpleKind:
		return NewSimple(r.Boundary.Transform(aff))
	case ConnectedKind:
		holes := make([]*Boundary, len(r.Holes))
		for i, h := range r.Holes {
			holes[i] = h.Transform(aff)
		}
		return newConnected(r.Boundary.Transform(aff), holes)
	case DisjointKind:
		pieces := make([]Region, len(r.Pieces))
		for i, piece := range r.Pieces {
			pieces[i] = piece.Transform(aff)
		}
		return newDisjoint(pieces)
	default:
		panic("invalid region kind")
	}
}

// Translate shifts the region by v.
func (r Region) Translate(v Vec2) Region {
	return r.Transform(Translate(v))
}

// Equal reports whether two regions describe the same point set. Boundaries
// are compared in canonical (cleaned) form, as cyclic rotations; pieces and
// holes may appear in any order.
func (r Region) Equal(o Region) bool {
	if r.Kind != o.Kind {
		return false
	}
	switch r.Kind {
	case EmptyKind, WholeKind:
		return true
	case SimpleKind:
		return r.Boundary.Equal(o.Boundary)
	case ConnectedKind:
		if !r.Boundary.Equal(o.Boundary) {
			return false
		}
		return matchBoundaries(r.Holes, o.Holes)
	case DisjointKind:
		if len(r.Pieces) != len(o.Pieces) {
			return false
		}
		used := make([]bool, len(o.Pieces))
		for _, piece := range r.Pieces {
			found := false
			for i, other := range o.Pieces {
				if !used[i] && piece.Equal(other) {
					used[i] = true
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	default:
		panic("invalid region kind")
	}
}

func matchBoundaries(xs, ys []*Boundary) bool {
	if len(xs) != len(ys) {
		return false
	}
	used := make([]bool, len(ys))
	for _, x := range xs {
		found := false
		for i, y := range ys {
			if !used[i] && x.Equal(y) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ContainsRegion reports whether r ⊇ o.
func (r Region) ContainsRegion(o Region) bool {
	return Intersect(r, o).Equal(o)
}

// IntersectsRegion reports whether r and o share at least an interior point
// or a boundary.
func (r Region) IntersectsRegion(o Region) bool {
	return Intersect(r, o).Kind != EmptyKind
}

// OmitsRegion reports whether r and o are disjoint.
func (r Region) OmitsRegion(o Region) bool {
	return !r.IntersectsRegion(o)
}
