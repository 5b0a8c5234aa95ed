package shape

import (
	"math"
	"slices"
)

// composeOp selects the midpoint truth table of the split/classify/stitch
// pipeline. Subtraction and symmetric difference are expressed through
// complement, so two tables suffice.
type composeOp int

const (
	opUnion composeOp = iota
	opIntersection
)

// Unite returns the union of the given regions. With no arguments it returns
// the empty region.
func Unite(regions ...Region) Region {
	out := Empty()
	for _, r := range regions {
		out = compose2(opUnion, out, r)
	}
	return out
}

// Intersect returns the intersection of the given regions. With no arguments
// it returns the whole plane.
func Intersect(regions ...Region) Region {
	out := Whole()
	for _, r := range regions {
		out = compose2(opIntersection, out, r)
	}
	return out
}

// Subtract returns the difference a ∖ b.
func Subtract(a, b Region) Region {
	return Intersect(a, Complement(b))
}

// SymmetricDifference folds the regions with the symmetric difference
// (a ∖ b) ∪ (b ∖ a). With no arguments it returns the empty region.
func SymmetricDifference(regions ...Region) Region {
	out := Empty()
	for _, r := range regions {
		out = Unite(Subtract(out, r), Subtract(r, out))
	}
	return out
}

// Complement returns the complement of r, by reversing every loop and
// regrouping.
func Complement(r Region) Region {
	switch r.Kind {
	case EmptyKind:
		return Whole()
	case WholeKind:
		return Empty()
	case SimpleKind, ConnectedKind, DisjointKind:
		var loops []*Boundary
		for _, b := range r.Boundaries() {
			c := b.Clone()
			c.Invert()
			loops = append(loops, c)
		}
		return newDisjoint(groupLoops(loops))
	default:
		panic("invalid region kind")
	}
}

// compose2 combines two regions through the split/classify/stitch pipeline.
// The operands are never mutated.
func compose2(op composeOp, a, b Region) Region {
	switch op {
	case opUnion:
		if a.Kind == WholeKind || b.Kind == WholeKind {
			return Whole()
		}
		if a.Kind == EmptyKind {
			return b
		}
		if b.Kind == EmptyKind {
			return a
		}
	case opIntersection:
		if a.Kind == EmptyKind || b.Kind == EmptyKind {
			return Empty()
		}
		if a.Kind == WholeKind {
			return b
		}
		if b.Kind == WholeKind {
			return a
		}
	}

	aloops := cloneLoops(a.Boundaries())
	bloops := cloneLoops(b.Boundaries())

	// 1. Split both operands' loops at every mutual intersection and at the
	// ends of every coincident stretch.
	for _, la := range aloops {
		for _, lb := range bloops {
			splitLoops(la, lb)
		}
	}

	// 2. Classify every fragment. Coincident fragments are decided by the
	// coincidence rule; everything else by the midpoint test against the
	// other operand.
	loops := append(append([]*Boundary{}, aloops...), bloops...)
	keep := make([][]fragState, len(loops))
	for i, l := range loops {
		keep[i] = make([]fragState, l.Len())
	}
	markCoincident(aloops, bloops, keep)
	classifyMidpoints(op, aloops, b, keep[:len(aloops)])
	classifyMidpoints(op, bloops, a, keep[len(aloops):])

	// 3. Stitch kept fragments into closed loops and group them into region
	// pieces.
	stitched := stitch(loops, keep)
	if len(stitched) == 0 {
		// Everything cancelled: for the union this means the operands cover
		// the plane between them, for the intersection that they share no
		// interior.
		if op == opUnion {
			return Whole()
		}
		return Empty()
	}
	return newDisjoint(groupLoops(stitched))
}

func cloneLoops(loops []*Boundary) []*Boundary {
	out := make([]*Boundary, len(loops))
	for i, l := range loops {
		out[i] = l.Clone()
	}
	return out
}

// splitLoops splits both loops at every parameter where they meet. Endpoints
// of one loop's segments lying on the other loop are split points as well, so
// that collinear overlapping stretches decompose into exactly coincident
// fragment pairs.
func splitLoops(la, lb *Boundary) {
	if !la.BoundingBox().Overlaps(lb.BoundingBox(), PointTolerance) {
		return
	}
	paramsA := make([][]float64, la.Len())
	paramsB := make([][]float64, lb.Len())
	for i := 0; i < la.Len(); i++ {
		sa := la.Segment(i)
		for j := 0; j < lb.Len(); j++ {
			sb := lb.Segment(j)
			pairs, coincident := IntersectSegments(sa, sb)
			if coincident {
				continue
			}
			for _, p := range pairs {
				paramsA[i] = append(paramsA[i], p.U)
				paramsB[j] = append(paramsB[j], p.V)
			}
			// Probe endpoints lying on the other segment's interior.
			for _, t := range [2]float64{0, 1} {
				if d, u := sa.Nearest(sb.Eval(t), DefaultAccuracy); d < PointTolerance*PointTolerance {
					paramsA[i] = append(paramsA[i], u)
				}
				if d, v := sb.Nearest(sa.Eval(t), DefaultAccuracy); d < PointTolerance*PointTolerance {
					paramsB[j] = append(paramsB[j], v)
				}
			}
		}
	}
	applySplits(la, paramsA)
	applySplits(lb, paramsB)
}

// applySplits splits from the last segment backwards so the recorded indices
// stay valid.
func applySplits(l *Boundary, params [][]float64) {
	for i := len(params) - 1; i >= 0; i-- {
		if len(params[i]) > 0 {
			l.splitMany(i, params[i])
		}
	}
}

type fragState int

const (
	fragUndecided fragState = iota
	fragKeep
	fragDrop
)

// markCoincident applies the coincident-edge rule: a fragment of the first
// operand that coincides with a fragment of the second in the same direction
// is kept exactly once (the first operand's copy), and an opposite-direction
// pair cancels entirely. This is what makes A∪A = A, A∩~A = ∅ and partially
// shared edges come out without gaps.
func markCoincident(aloops, bloops []*Boundary, keep [][]fragState) {
	for ai, la := range aloops {
		for i := 0; i < la.Len(); i++ {
			sa := la.Segment(i)
			for bi, lb := range bloops {
				for j := 0; j < lb.Len(); j++ {
					same, reversed := sa.Coincides(lb.Segment(j))
					if !same {
						continue
					}
					if reversed {
						keep[ai][i] = fragDrop
					} else {
						keep[ai][i] = fragKeep
					}
					keep[len(aloops)+bi][j] = fragDrop
				}
			}
		}
	}
}

// classifyMidpoints decides every undecided fragment of the given loops by
// locating its midpoint against the other operand. The union keeps fragments
// strictly outside the other region, the intersection keeps fragments
// strictly inside it.
func classifyMidpoints(op composeOp, loops []*Boundary, other Region, keep [][]fragState) {
	for li, l := range loops {
		for i := 0; i < l.Len(); i++ {
			if keep[li][i] != fragUndecided {
				continue
			}
			mid := l.Segment(i).Eval(0.5)
			loc := other.Locate(mid)
			var kept bool
			switch op {
			case opUnion:
				kept = loc == Exterior
			case opIntersection:
				kept = loc == Interior
			}
			if kept {
				keep[li][i] = fragKeep
			} else {
				keep[li][i] = fragDrop
			}
		}
	}
}

type fragRef struct {
	loop int
	seg  int
}

// stitch walks kept fragments into closed loops. From the end of each
// fragment the walk continues on a kept fragment starting at that vertex,
// following its own loop where possible and handing off to the other loop
// where its own continuation was dropped. Walks that run into a gap are
// discarded; near-tangential intersections that Newton missed can cause this,
// in which case the affected loop silently drops out rather than failing.
func stitch(loops []*Boundary, keep [][]fragState) []*Boundary {
	used := make([][]bool, len(loops))
	for i, l := range loops {
		used[i] = make([]bool, l.Len())
	}

	successor := func(cur fragRef, end Point, start fragRef) (fragRef, bool) {
		if loops[start.loop].Segment(start.seg).Start().Coincides(end) {
			return start, true
		}
		// Prefer continuing on the current loop. At a true crossing the next
		// fragment lands on the wrong side and is dropped, forcing the hand-off
		// to the other loop, but at a tangent point this keeps the loops
		// separate instead of fusing them into a self-intersecting one.
		naturalNext := fragRef{cur.loop, (cur.seg + 1) % loops[cur.loop].Len()}
		if keep[naturalNext.loop][naturalNext.seg] == fragKeep &&
			!used[naturalNext.loop][naturalNext.seg] &&
			loops[naturalNext.loop].Segment(naturalNext.seg).Start().Coincides(end) {
			return naturalNext, true
		}
		for li, l := range loops {
			if li == cur.loop {
				continue
			}
			for si := 0; si < l.Len(); si++ {
				if keep[li][si] != fragKeep || used[li][si] {
					continue
				}
				if l.Segment(si).Start().Coincides(end) {
					return fragRef{li, si}, true
				}
			}
		}
		return fragRef{}, false
	}

	var out []*Boundary
	for li, l := range loops {
		for si := 0; si < l.Len(); si++ {
			if keep[li][si] != fragKeep || used[li][si] {
				continue
			}
			start := fragRef{li, si}
			cur := start
			var segs []Segment
			closed := false
			for {
				used[cur.loop][cur.seg] = true
				seg := loops[cur.loop].Segment(cur.seg)
				segs = append(segs, seg)
				next, ok := successor(cur, seg.End(), start)
				if !ok {
					break
				}
				if next == start {
					closed = true
					break
				}
				cur = next
			}
			if !closed {
				continue
			}
			nb := newBoundary(segs)
			nb.Clean()
			if math.Abs(nb.SignedArea()) < PointTolerance {
				continue
			}
			out = append(out, nb)
		}
	}
	return out
}

// groupLoops groups stitched loops into Simple and Connected pieces: starting
// from the loop with the largest absolute area, loops that are mutually
// consistent in containment join its group, and the leftovers seed further
// groups.
func groupLoops(loops []*Boundary) []Region {
	var pieces []Region
	remaining := slices.Clone(loops)
	for len(remaining) > 0 {
		seed := 0
		for i, l := range remaining {
			if math.Abs(l.SignedArea()) > math.Abs(remaining[seed].SignedArea()) {
				seed = i
			}
		}
		group := []*Boundary{remaining[seed]}
		remaining = slices.Delete(remaining, seed, seed+1)
		for {
			grew := false
			for i := 0; i < len(remaining); i++ {
				if consistentWithGroup(remaining[i], group) {
					group = append(group, remaining[i])
					remaining = slices.Delete(remaining, i, i+1)
					grew = true
					i--
				}
			}
			if !grew {
				break
			}
		}
		pieces = append(pieces, newConnected(group[0], group[1:]))
	}
	return pieces
}

// consistentWithGroup reports whether loop l and every group member contain
// each other in the simple-region sense, i.e. l nests correctly inside the
// group.
func consistentWithGroup(l *Boundary, group []*Boundary) bool {
	for _, m := range group {
		if !loopInsideSimple(l, m) || !loopInsideSimple(m, l) {
			return false
		}
	}
	return true
}

// loopInsideSimple reports whether every point of loop l belongs to the
// simple region bounded by m. Loops are assumed not to cross, so sampling
// each segment's endpoints and midpoint suffices.
func loopInsideSimple(l, m *Boundary) bool {
	s := NewSimple(m)
	for i := 0; i < l.Len(); i++ {
		seg := l.Segment(i)
		if !s.ContainsPoint(seg.Start()) || !s.ContainsPoint(seg.Eval(0.5)) {
			return false
		}
	}
	return true
}
