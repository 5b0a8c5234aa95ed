package shape

import (
	"errors"
	"math"
)

var (
	// ErrTooFewVertices is returned for polygons with fewer than three
	// vertices.
	ErrTooFewVertices = errors.New("shape: polygon needs at least three vertices")
	// ErrRepeatedVertex is returned when two non-adjacent polygon vertices
	// coincide.
	ErrRepeatedVertex = errors.New("shape: repeated polygon vertex")
	// ErrDegenerateEdge is returned for zero-length edges and non-positive
	// dimensions.
	ErrDegenerateEdge = errors.New("shape: degenerate edge")
	// ErrSelfIntersecting is returned when two polygon edges cross.
	ErrSelfIntersecting = errors.New("shape: self-intersecting polygon")
)

// NewPolygon returns the simple region bounded by the polygon with the given
// vertices, in order. Anticlockwise vertices describe a bounded region,
// clockwise vertices its complement. The vertex list is validated: at least
// three vertices, no coincident vertices, no crossing edges.
func NewPolygon(vertices []Point) (Region, error) {
	n := len(vertices)
	if n < 3 {
		return Region{}, ErrTooFewVertices
	}
	for i, v := range vertices {
		for j := i + 1; j < n; j++ {
			if !v.Coincides(vertices[j]) {
				continue
			}
			if j == i+1 || (i == 0 && j == n-1) {
				return Region{}, ErrDegenerateEdge
			}
			return Region{}, ErrRepeatedVertex
		}
	}
	segs := make([]Segment, n)
	for i, v := range vertices {
		segs[i] = Line{v, vertices[(i+1)%n]}.Seg()
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				// Adjacent edges meet at their shared vertex.
				continue
			}
			pairs, coincident := IntersectSegments(segs[i], segs[j])
			if coincident || len(pairs) > 0 {
				return Region{}, ErrSelfIntersecting
			}
		}
	}
	return NewSimple(newBoundary(segs)), nil
}

// RegularPolygon returns the regular polygon with the given number of sides,
// inscribed in the circle of the given radius around center. The first vertex
// lies at center + (radius, 0). For four sides the vertices are written out
// exactly so the diamond's corners land on the axes.
func RegularPolygon(sides int, radius float64, center Point) (Region, error) {
	if sides < 3 {
		return Region{}, ErrTooFewVertices
	}
	if radius <= 0 {
		return Region{}, ErrDegenerateEdge
	}
	var vertices []Point
	if sides == 4 {
		vertices = []Point{
			{center.X + radius, center.Y},
			{center.X, center.Y + radius},
			{center.X - radius, center.Y},
			{center.X, center.Y - radius},
		}
	} else {
		vertices = make([]Point, sides)
		for i := range vertices {
			theta := 2 * math.Pi * float64(i) / float64(sides)
			vertices[i] = Point{
				X: center.X + radius*math.Cos(theta),
				Y: center.Y + radius*math.Sin(theta),
			}
		}
	}
	return NewPolygon(vertices)
}

// circleDivisions is the number of quadratic segments approximating a full
// circle.
const circleDivisions = 16

// Circle returns an anticlockwise circle around center, approximated by
// quadratic Bézier segments whose control points lie on the tangent lines of
// the arc endpoints.
func Circle(center Point, radius float64) (Region, error) {
	if radius <= 0 {
		return Region{}, ErrDegenerateEdge
	}
	angle := 2 * math.Pi / circleDivisions
	// The control point of each arc sits at distance radius/cos(angle/2)
	// along the arc's bisector, which places it on both endpoint tangents.
	ctrlRadius := radius / math.Cos(angle/2)
	at := func(r, theta float64) Point {
		return Point{center.X + r*math.Cos(theta), center.Y + r*math.Sin(theta)}
	}
	segs := make([]Segment, circleDivisions)
	for i := range segs {
		theta := float64(i) * angle
		segs[i] = QuadBez{
			P0: at(radius, theta),
			P1: at(ctrlRadius, theta+angle/2),
			P2: at(radius, theta+angle),
		}.Seg()
	}
	return NewSimple(newBoundary(segs)), nil
}

// NewRect returns the axis-aligned rectangular region covering r.
func NewRect(r Rect) (Region, error) {
	r = r.Abs()
	if r.Width() <= 0 || r.Height() <= 0 {
		return Region{}, ErrDegenerateEdge
	}
	return NewPolygon([]Point{
		{r.X0, r.Y0},
		{r.X1, r.Y0},
		{r.X1, r.Y1},
		{r.X0, r.Y1},
	})
}

// Square returns the axis-aligned square with the given side length around
// center.
func Square(side float64, center Point) (Region, error) {
	if side <= 0 {
		return Region{}, ErrDegenerateEdge
	}
	h := side / 2
	return NewRect(Rect{center.X - h, center.Y - h, center.X + h, center.Y + h})
}
