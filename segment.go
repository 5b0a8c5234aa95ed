package shape

type SegmentKind int

const (
	// A line segment.
	LineKind SegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
)

// Segment represents one edge of a region boundary. This type acts as a sort
// of tagged union representing all possible segment kinds ([Line] and
// [QuadBez]).
type Segment struct {
	// We don't use an interface for Segment because we want {Line,
	// Quad}.Transform to return their respective types, not Segment. But we
	// cannot encode that in Go interfaces.
	//
	// This also avoids having to allocate for segments.

	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
}

// Line returns the line represented by this segment. This is only valid when
// Kind == LineKind.
func (seg Segment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only
// valid when Kind == QuadKind.
func (seg Segment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

func (seg Segment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return seg.Line().BoundingBox()
	case QuadKind:
		return seg.Quad().BoundingBox()
	default:
		panic("invalid segment kind")
	}
}

func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	default:
		panic("invalid segment kind")
	}
}

func (seg Segment) Subsegment(start, end float64) Segment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Subsegment(start, end).Seg()
	case QuadKind:
		return seg.Quad().Subsegment(start, end).Seg()
	default:
		panic("invalid segment kind")
	}
}

func (seg Segment) Subdivide() (Segment, Segment) {
	return seg.Subsegment(0.0, 0.5), seg.Subsegment(0.5, 1.0)
}

func (seg Segment) Start() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P0
	case QuadKind:
		return seg.P0
	default:
		panic("invalid segment kind")
	}
}

func (seg Segment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	default:
		panic("invalid segment kind")
	}
}

func (seg Segment) Arclen(accuracy float64) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Arclen(accuracy)
	case QuadKind:
		return seg.Quad().Arclen(accuracy)
	default:
		panic("invalid segment kind")
	}
}

func (seg Segment) SignedArea() float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().SignedArea()
	case QuadKind:
		return seg.Quad().SignedArea()
	default:
		panic("invalid segment kind")
	}
}

func (seg Segment) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Nearest(pt, accuracy)
	case QuadKind:
		return seg.Quad().Nearest(pt, accuracy)
	default:
		panic("invalid segment kind")
	}
}

func (seg Segment) Extrema() ([MaxExtrema]float64, int) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Extrema()
	case QuadKind:
		return seg.Quad().Extrema()
	default:
		panic("invalid segment kind")
	}
}

// Derivative evaluates the tangent vector of the segment at parameter t.
func (seg Segment) Derivative(t float64) Vec2 {
	switch seg.Kind {
	case LineKind:
		return seg.P1.Sub(seg.P0)
	case QuadKind:
		return Vec2(seg.Quad().Differentiate().Eval(t))
	default:
		panic("invalid segment kind")
	}
}

// Reverse returns a new Segment describing the same path as this one, but with
// the points reversed.
func (seg Segment) Reverse() Segment {
	switch seg.Kind {
	case LineKind:
		seg.P0, seg.P1 = seg.P1, seg.P0
		return seg
	case QuadKind:
		seg.P0, seg.P2 = seg.P2, seg.P0
		return seg
	default:
		panic("invalid segment kind")
	}
}

func (seg Segment) Transform(aff Affine) Segment {
	return Segment{
		Kind: seg.Kind,
		P0:   seg.P0.Transform(aff),
		P1:   seg.P1.Transform(aff),
		P2:   seg.P2.Transform(aff),
	}
}

func (seg Segment) Translate(v Vec2) Segment {
	return Segment{
		Kind: seg.Kind,
		P0:   seg.P0.Translate(v),
		P1:   seg.P1.Translate(v),
		P2:   seg.P2.Translate(v),
	}
}

func (seg Segment) IsNaN() bool {
	return seg.P0.IsNaN() || seg.P1.IsNaN() || seg.P2.IsNaN()
}

func (seg Segment) Tangents() (Vec2, Vec2) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Tangents()
	case QuadKind:
		return seg.Quad().Tangents()
	default:
		panic("invalid segment kind")
	}
}

func (seg Segment) IntersectLine(line Line) ([3]LineIntersection, int) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().IntersectLine(line)
	case QuadKind:
		return seg.Quad().IntersectLine(line)
	default:
		panic("invalid segment kind")
	}
}

// Coincides reports whether two segments have the same control points within
// [PointTolerance], in either direction. The second return value is true when
// the match is against the reversal of o.
func (seg Segment) Coincides(o Segment) (same, reversed bool) {
	if seg.Kind != o.Kind {
		return false, false
	}
	if seg.P0.Coincides(o.P0) && seg.P1.Coincides(o.P1) && seg.P2.Coincides(o.P2) {
		return true, false
	}
	r := o.Reverse()
	if seg.P0.Coincides(r.P0) && seg.P1.Coincides(r.P1) && seg.P2.Coincides(r.P2) {
		return true, true
	}
	return false, false
}
