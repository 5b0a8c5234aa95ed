package shape

import (
	"math"
	"slices"
)

// Intersection is a parameter pair at which two segments meet: U is the
// parameter on the first segment, V the parameter on the second.
type Intersection struct {
	U float64
	V float64
}

const (
	// newtonIterations caps the Newton refinement of one seeded candidate.
	newtonIterations = 20
	// newtonSeeds is the number of grid seeds per parameter axis.
	newtonSeeds = 8
	// singularJacobian is the determinant magnitude below which the
	// minimum-distance system is treated as singular (parallel tangents) and
	// the candidate is dropped.
	singularJacobian = 1e-6
)

// IntersectSegments returns the parameter pairs in [0, 1]² at which segments a
// and b meet.
//
// Coincident reports that the two segments have identical control points (in
// either direction) and therefore infinitely many solutions; in that case no
// pairs are returned.
//
// Line/line and quad/line pairs are solved exactly.  Quad/quad pairs are
// solved by Newton iteration on the two-variable minimum-distance system,
// seeded on a parameter grid plus the four domain corners.  Candidates whose
// Jacobian goes singular (parallel tangents) are dropped rather than reported;
// near-tangential crossings may therefore be approximated or missed within
// tolerance.
func IntersectSegments(a, b Segment) (pairs []Intersection, coincident bool) {
	if same, _ := a.Coincides(b); same {
		return nil, true
	}
	if !a.BoundingBox().Overlaps(b.BoundingBox(), PointTolerance) {
		return nil, false
	}

	var out []Intersection
	switch {
	case a.Kind == LineKind && b.Kind == LineKind:
		hits, n := a.Line().IntersectLine(b.Line())
		for _, hit := range hits[:n] {
			out = append(out, Intersection{U: clampParam(hit.T), V: clampParam(hit.U)})
		}
	case a.Kind == QuadKind && b.Kind == LineKind:
		hits, n := a.Quad().IntersectLine(b.Line())
		for _, hit := range hits[:n] {
			out = append(out, Intersection{U: clampParam(hit.T), V: clampParam(hit.U)})
		}
	case a.Kind == LineKind && b.Kind == QuadKind:
		hits, n := b.Quad().IntersectLine(a.Line())
		for _, hit := range hits[:n] {
			out = append(out, Intersection{U: clampParam(hit.U), V: clampParam(hit.T)})
		}
	default:
		out = intersectNewton(a, b)
	}

	return dedupeIntersections(out), false
}

func clampParam(t float64) float64 {
	return min(max(t, 0.0), 1.0)
}

// intersectNewton finds intersections of two curved segments by refining a
// grid of seed pairs with Newton's method on
//
//	g1(u, v) = (a(u) − b(v)) · a′(u) = 0
//	g2(u, v) = (a(u) − b(v)) · b′(v) = 0
//
// which is stationary where the connecting vector is orthogonal to both
// tangents. Steps are clamped into [0, 1]² and each survivor is verified by
// its actual euclidean gap.
func intersectNewton(a, b Segment) []Intersection {
	var seeds [][2]float64
	for i := 0; i < newtonSeeds+1; i++ {
		for j := 0; j < newtonSeeds+1; j++ {
			seeds = append(seeds, [2]float64{
				float64(i) / newtonSeeds,
				float64(j) / newtonSeeds,
			})
		}
	}
	// Grid seeding can miss roots sitting exactly on the domain edge, so the
	// four corners are probed as well.
	seeds = append(seeds,
		[2]float64{0, 0}, [2]float64{0, 1}, [2]float64{1, 0}, [2]float64{1, 1})

	add2 := a.secondDerivative()
	bdd2 := b.secondDerivative()

	var out []Intersection
	for _, seed := range seeds {
		u, v := seed[0], seed[1]
		ok := true
		for it := 0; it < newtonIterations; it++ {
			d := a.Eval(u).Sub(b.Eval(v))
			da := a.Derivative(u)
			db := b.Derivative(v)

			g1 := d.Dot(da)
			g2 := d.Dot(db)

			j00 := da.Hypot2() + d.Dot(add2)
			j01 := -db.Dot(da)
			j10 := da.Dot(db)
			j11 := -db.Hypot2() + d.Dot(bdd2)

			det := j00*j11 - j01*j10
			if math.Abs(det) < singularJacobian {
				ok = false
				break
			}
			du := (g1*j11 - g2*j01) / det
			dv := (g2*j00 - g1*j10) / det
			u = min(max(u-du, 0.0), 1.0)
			v = min(max(v-dv, 0.0), 1.0)
			if math.Abs(du) < ParamTolerance && math.Abs(dv) < ParamTolerance {
				break
			}
		}
		if !ok {
			continue
		}
		if a.Eval(u).Distance(b.Eval(v)) < PointTolerance {
			out = append(out, Intersection{U: u, V: v})
		}
	}
	return out
}

// secondDerivative returns the (constant) second derivative of the segment.
func (seg Segment) secondDerivative() Vec2 {
	switch seg.Kind {
	case QuadKind:
		return seg.P0.Sub(seg.P1).Add(seg.P2.Sub(seg.P1)).Mul(2)
	default:
		return Vec2{}
	}
}

// dedupeIntersections sorts parameter pairs and drops those that coincide with
// an already kept pair within [ParamTolerance].
func dedupeIntersections(pairs []Intersection) []Intersection {
	if len(pairs) < 2 {
		return pairs
	}
	slices.SortFunc(pairs, func(x, y Intersection) int {
		if x.U != y.U {
			if x.U < y.U {
				return -1
			}
			return 1
		}
		switch {
		case x.V < y.V:
			return -1
		case x.V > y.V:
			return 1
		default:
			return 0
		}
	})
	out := pairs[:0]
	for _, p := range pairs {
		dup := false
		for _, q := range out {
			if math.Abs(p.U-q.U) < ParamTolerance && math.Abs(p.V-q.V) < ParamTolerance {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}
