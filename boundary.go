package shape

import (
	"errors"
	"math"
	"slices"
)

// ErrOpenBoundary is returned when a list of segments doesn't close into a
// loop.
var ErrOpenBoundary = errors.New("segments do not form a closed loop")

// windingNodes is the number of angle samples taken per segment when
// computing winding numbers.
const windingNodes = 16

// Boundary is a closed loop of segments bounding a planar region (a Jordan
// curve). Segments are stored in cyclic order; the end point of segment i is
// the start point of segment i+1.
//
// Shared vertices live in a point arena and segments reference them by index,
// so that moving a vertex through [Boundary.MoveVertex] updates both incident
// segments at once.
//
// A boundary with positive signed area runs anticlockwise (in a y-up space)
// and encloses its interior; a negative boundary represents the complement of
// its interior.
type Boundary struct {
	points []Point
	segs   []boundarySeg

	area   option[float64]
	length option[float64]
	bbox   option[Rect]
}

type boundarySeg struct {
	kind  SegmentKind
	start int
	end   int
	// ctrl is the middle control point for QuadKind. It is not shared and
	// lives outside the arena.
	ctrl Point
}

// NewBoundary builds a boundary from segments laid end to end. The segments
// must form a closed loop: each segment's end point must coincide with the
// next segment's start point, and the last segment must return to the first.
func NewBoundary(segs []Segment) (*Boundary, error) {
	if len(segs) == 0 {
		return nil, ErrOpenBoundary
	}
	for i, seg := range segs {
		next := segs[(i+1)%len(segs)]
		if !seg.End().Coincides(next.Start()) {
			return nil, ErrOpenBoundary
		}
	}
	return newBoundary(segs), nil
}

// newBoundary builds the arena without validating closure.
func newBoundary(segs []Segment) *Boundary {
	b := &Boundary{
		points: make([]Point, 0, len(segs)),
		segs:   make([]boundarySeg, 0, len(segs)),
	}
	for i, seg := range segs {
		var start int
		if i == 0 {
			b.points = append(b.points, seg.Start())
			start = 0
		} else {
			start = b.segs[i-1].end
		}
		var end int
		if i == len(segs)-1 {
			end = 0
		} else {
			b.points = append(b.points, seg.End())
			end = len(b.points) - 1
		}
		b.segs = append(b.segs, boundarySeg{
			kind:  seg.Kind,
			start: start,
			end:   end,
			ctrl:  seg.P1,
		})
	}
	return b
}

func (b *Boundary) invalidate() {
	b.area.clear()
	b.length.clear()
	b.bbox.clear()
}

// Len returns the number of segments.
func (b *Boundary) Len() int {
	return len(b.segs)
}

// Segment materializes segment i.
func (b *Boundary) Segment(i int) Segment {
	s := b.segs[i]
	switch s.kind {
	case LineKind:
		return Segment{Kind: LineKind, P0: b.points[s.start], P1: b.points[s.end]}
	case QuadKind:
		return Segment{Kind: QuadKind, P0: b.points[s.start], P1: s.ctrl, P2: b.points[s.end]}
	default:
		panic("invalid segment kind")
	}
}

// Segments materializes all segments in cyclic order.
func (b *Boundary) Segments() []Segment {
	out := make([]Segment, len(b.segs))
	for i := range b.segs {
		out[i] = b.Segment(i)
	}
	return out
}

// Vertices returns the start point of every segment in cyclic order.
func (b *Boundary) Vertices() []Point {
	out := make([]Point, len(b.segs))
	for i, s := range b.segs {
		out[i] = b.points[s.start]
	}
	return out
}

// MoveVertex moves the start vertex of segment i. Both segments incident to
// the vertex observe the move.
func (b *Boundary) MoveVertex(i int, pt Point) {
	b.points[b.segs[i].start] = pt
	b.invalidate()
}

func (b *Boundary) Clone() *Boundary {
	return &Boundary{
		points: slices.Clone(b.points),
		segs:   slices.Clone(b.segs),
	}
}

// Split replaces segment i with two subsegments meeting at parameter t. The
// split point becomes a new shared vertex in the arena. Parameters within
// [ParamTolerance] of 0 or 1 are no-ops.
func (b *Boundary) Split(i int, t float64) {
	if t < ParamTolerance || t > 1-ParamTolerance {
		return
	}
	seg := b.Segment(i)
	first := seg.Subsegment(0, t)
	second := seg.Subsegment(t, 1)

	mid := len(b.points)
	b.points = append(b.points, first.End())
	old := b.segs[i]
	b.segs = slices.Replace(b.segs, i, i+1,
		boundarySeg{kind: old.kind, start: old.start, end: mid, ctrl: first.P1},
		boundarySeg{kind: old.kind, start: mid, end: old.end, ctrl: second.P1},
	)
	b.invalidate()
}

// splitMany splits segment i at every parameter in ts, which need not be
// sorted or unique.
func (b *Boundary) splitMany(i int, ts []float64) {
	ts = slices.Clone(ts)
	slices.Sort(ts)
	// Split from the back. After splitting at t, segment i covers [0, t] of
	// the original, so earlier parameters are rescaled accordingly.
	scale := 1.0
	for k := len(ts) - 1; k >= 0; k-- {
		if k < len(ts)-1 && ts[k+1]-ts[k] < ParamTolerance {
			continue
		}
		b.Split(i, ts[k]/scale)
		if ts[k] > ParamTolerance && ts[k] < 1-ParamTolerance {
			scale = ts[k]
		}
	}
}

// Invert reverses the boundary in place, flipping its orientation and the
// sign of its area.
func (b *Boundary) Invert() {
	slices.Reverse(b.segs)
	for i := range b.segs {
		b.segs[i].start, b.segs[i].end = b.segs[i].end, b.segs[i].start
	}
	b.invalidate()
}

// SignedArea returns the enclosed signed area, computed per segment via
// Green's theorem. Positive area means anticlockwise orientation (y-up).
func (b *Boundary) SignedArea() float64 {
	if !b.area.isSet {
		total := 0.0
		for i := range b.segs {
			total += b.Segment(i).SignedArea()
		}
		b.area.set(total)
	}
	return b.area.value
}

// Orientation returns +1 for positive signed area and -1 otherwise.
func (b *Boundary) Orientation() int {
	if b.SignedArea() >= 0 {
		return 1
	}
	return -1
}

// Perimeter returns the total arc length of the boundary.
func (b *Boundary) Perimeter(accuracy float64) float64 {
	if !b.length.isSet {
		total := 0.0
		for i := range b.segs {
			total += b.Segment(i).Arclen(accuracy)
		}
		b.length.set(total)
	}
	return b.length.value
}

func (b *Boundary) BoundingBox() Rect {
	if !b.bbox.isSet {
		bbox := b.Segment(0).BoundingBox()
		for i := 1; i < len(b.segs); i++ {
			bbox = bbox.Union(b.Segment(i).BoundingBox())
		}
		b.bbox.set(bbox)
	}
	return b.bbox.value
}

func (b *Boundary) Transform(aff Affine) *Boundary {
	out := b.Clone()
	for i := range out.points {
		out.points[i] = out.points[i].Transform(aff)
	}
	for i := range out.segs {
		if out.segs[i].kind == QuadKind {
			out.segs[i].ctrl = out.segs[i].ctrl.Transform(aff)
		}
	}
	return out
}

// Nearest returns the smallest squared distance from pt to the boundary and
// the segment index and parameter where it is attained.
func (b *Boundary) Nearest(pt Point) (distSq float64, seg int, t float64) {
	distSq = math.Inf(1)
	for i := range b.segs {
		d, u := b.Segment(i).Nearest(pt, DefaultAccuracy)
		if d < distSq {
			distSq, seg, t = d, i, u
		}
	}
	return distSq, seg, t
}

// OnBoundary reports whether pt lies on the boundary within [PointTolerance].
func (b *Boundary) OnBoundary(pt Point) bool {
	if !b.BoundingBox().Inflate(PointTolerance, PointTolerance).Contains(pt) {
		return false
	}
	d, _, _ := b.Nearest(pt)
	return d < PointTolerance*PointTolerance
}

// Winding returns the number of turns the boundary makes around pt, as the
// sampled subtended-angle sum ∮dθ ∕ 2π. The sign follows the boundary's own
// orientation.
//
// For points on the boundary itself the singular sample is skipped and the
// sum is left open across it, which yields the interior angle at that point
// divided by 2π: ±0.5 on the interior of an edge, ±0.25 at a right-angle
// corner. Interior points give ±1, exterior points 0.
func (b *Boundary) Winding(pt Point) float64 {
	if !b.BoundingBox().Inflate(PointTolerance, PointTolerance).Contains(pt) {
		return 0
	}

	type sample struct {
		angle    float64
		singular bool
	}
	var samples []sample
	for i := range b.segs {
		seg := b.Segment(i)
		ts := make([]float64, 0, windingNodes+1)
		for k := 0; k < windingNodes; k++ {
			ts = append(ts, float64(k)/windingNodes)
		}
		// A boundary point between grid samples still needs a singular
		// sample, otherwise the gap would be summed across.
		if d, t := seg.Nearest(pt, DefaultAccuracy); d < PointTolerance*PointTolerance && t < 1-ParamTolerance {
			ts = append(ts, t)
			slices.Sort(ts)
		}
		for _, t := range ts {
			p := seg.Eval(t)
			if p.Coincides(pt) {
				samples = append(samples, sample{singular: true})
			} else {
				samples = append(samples, sample{angle: p.Sub(pt).Angle()})
			}
		}
	}

	n := len(samples)
	singular := false
	for _, s := range samples {
		if s.singular {
			singular = true
			break
		}
	}
	if !singular {
		total := 0.0
		for i, s := range samples {
			total += wrapAngle(samples[(i+1)%n].angle - s.angle)
		}
		return total / (2 * math.Pi)
	}

	// Start just after a singular run and leave the sum open across it.
	start := 0
	for i, s := range samples {
		if s.singular && !samples[(i+1)%n].singular {
			start = (i + 1) % n
			break
		}
	}
	total := 0.0
	prev := math.NaN()
	for k := 0; k < n; k++ {
		s := samples[(start+k)%n]
		if s.singular {
			prev = math.NaN()
			continue
		}
		if !math.IsNaN(prev) {
			total += wrapAngle(s.angle - prev)
		}
		prev = s.angle
	}
	return total / (2 * math.Pi)
}

// wrapAngle wraps d into (-π, π].
func wrapAngle(d float64) float64 {
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}

// Clean canonicalizes the boundary in place: zero-length segments are
// dropped and consecutive segments that together form one segment of the
// same kind are merged, until no further reduction applies.
func (b *Boundary) Clean() {
	for {
		changed := false
		for i := 0; i < len(b.segs) && len(b.segs) > 1; {
			seg := b.Segment(i)
			if seg.Start().Coincides(seg.End()) && seg.Arclen(DefaultAccuracy) < PointTolerance {
				b.removeSegment(i)
				changed = true
			} else {
				i++
			}
		}
		merged := false
		for i := 0; len(b.segs) > 2 && i < len(b.segs); i++ {
			j := (i + 1) % len(b.segs)
			if m, ok := mergeSegments(b.Segment(i), b.Segment(j)); ok {
				b.replacePair(i, m)
				merged = true
				break
			}
		}
		if !changed && !merged {
			break
		}
	}
	b.invalidate()
}

func (b *Boundary) removeSegment(i int) {
	segs := b.Segments()
	segs = slices.Delete(segs, i, i+1)
	// Reclose the loop across the removed segment.
	if len(segs) > 0 {
		prev := (i - 1 + len(segs)) % len(segs)
		end := segs[i%len(segs)].Start()
		if segs[prev].Kind == LineKind {
			segs[prev].P1 = end
		} else {
			segs[prev].P2 = end
		}
	}
	*b = *newBoundary(segs)
}

// replacePair replaces segments i and i+1 (cyclically) with seg.
func (b *Boundary) replacePair(i int, seg Segment) {
	segs := b.Segments()
	j := (i + 1) % len(segs)
	if j > i {
		segs[i] = seg
		segs = slices.Delete(segs, j, j+1)
	} else {
		// The pair wraps around; rotate so it doesn't.
		segs = append(segs[1:], segs[0])
		segs[len(segs)-1] = seg
		segs = slices.Delete(segs, len(segs)-2, len(segs)-1)
	}
	*b = *newBoundary(segs)
}

// mergeSegments attempts to merge two consecutive segments into a single
// segment describing the same path.
func mergeSegments(a, b Segment) (Segment, bool) {
	if a.Kind != b.Kind {
		return Segment{}, false
	}
	_, ta := a.Tangents()
	tb, _ := b.Tangents()
	if ta.Hypot2() == 0 || tb.Hypot2() == 0 {
		return Segment{}, false
	}
	na := ta.Normalize()
	nb := tb.Normalize()
	if math.Abs(na.Cross(nb)) > 1e-9 || na.Dot(nb) <= 0 {
		return Segment{}, false
	}
	switch a.Kind {
	case LineKind:
		// Tangent-continuous lines are collinear; the merge is exact.
		return Line{a.P0, b.P1}.Seg(), true
	case QuadKind:
		// If a and b are the halves of one quadratic, its middle control
		// point is where the outer tangent lines cross.
		ctrl, ok := Line{a.P0, a.P1}.CrossingPoint(Line{b.P2, b.P1})
		if !ok {
			return Segment{}, false
		}
		cand := QuadBez{a.P0, ctrl, b.P2}
		joint := a.End()
		_, s := cand.Nearest(joint, DefaultAccuracy)
		if s <= ParamTolerance || s >= 1-ParamTolerance {
			return Segment{}, false
		}
		left := cand.Subsegment(0, s)
		right := cand.Subsegment(s, 1)
		if left.P1.Coincides(a.P1) && left.P2.Coincides(joint) &&
			right.P1.Coincides(b.P1) && right.P2.Coincides(b.P2) {
			return cand.Seg(), true
		}
		return Segment{}, false
	default:
		return Segment{}, false
	}
}

// Equal reports whether two boundaries describe the same loop with the same
// orientation. Both are cleaned to canonical form first (on copies), then
// compared as cyclic rotations of each other.
func (b *Boundary) Equal(o *Boundary) bool {
	x := b.Clone()
	x.Clean()
	y := o.Clone()
	y.Clean()
	if x.Len() != y.Len() {
		return false
	}
	n := x.Len()
	for shift := 0; shift < n; shift++ {
		match := true
		for i := 0; i < n; i++ {
			same, rev := x.Segment(i).Coincides(y.Segment((i + shift) % n))
			if !same || rev {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
