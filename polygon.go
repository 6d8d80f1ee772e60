package geom

import (
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/geom/scalar"
)

// Polygon is a simple polygon given by its vertices in order. The edge
// list is derived once at construction, pairing each vertex with its
// successor and wrapping the last back to the first, and is never
// recomputed. Polygons are immutable: transformations return new
// values.
type Polygon struct {
	points []Vec2
	edges  []Segment
}

// NewPolygon builds a polygon from at least three vertices. The input
// slice is copied, so the caller may reuse it.
func NewPolygon(points []Vec2) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, errors.Errorf("polygon needs at least 3 points, got %d", len(points))
	}
	owned := make([]Vec2, len(points))
	copy(owned, points)
	return newPolygon(owned), nil
}

// newPolygon wraps an already-validated vertex slice, taking ownership
// of it, and derives the edge list.
func newPolygon(points []Vec2) Polygon {
	edges := make([]Segment, len(points))
	for i, p := range points {
		edges[i] = Segment{p, points[circularIndex(i+1, len(points))]}
	}
	return Polygon{points: points, edges: edges}
}

// Points returns a copy of the vertex list.
func (poly Polygon) Points() []Vec2 {
	out := make([]Vec2, len(poly.points))
	copy(out, poly.points)
	return out
}

// Edges returns a copy of the derived edge list.
func (poly Polygon) Edges() []Segment {
	out := make([]Segment, len(poly.edges))
	copy(out, poly.edges)
	return out
}

// Area returns the signed shoelace area. The sign encodes the winding
// direction (positive for counterclockwise in y-up coordinates), so
// callers that want the geometric area must take the absolute value
// themselves.
func (poly Polygon) Area() float64 {
	var sum float64
	for _, e := range poly.edges {
		sum += e.P.X*e.Q.Y - e.Q.X*e.P.Y
	}
	return sum / 2
}

// IsClockwise reports the winding direction, computed from the edge
// sum of (x2-x1)(y2+y1). A non-negative sum is clockwise. This is
// deliberately a separate accumulation from Area; the two formulas
// agree in sign for simple polygons and both are kept as independent
// primitives.
func (poly Polygon) IsClockwise() bool {
	var sum float64
	for _, e := range poly.edges {
		sum += (e.Q.X - e.P.X) * (e.Q.Y + e.P.Y)
	}
	return sum >= 0
}

// Reverse returns the polygon with its vertex order, and therefore its
// winding, reversed.
func (poly Polygon) Reverse() Polygon {
	reversed := make([]Vec2, len(poly.points))
	for i, p := range poly.points {
		reversed[len(reversed)-1-i] = p
	}
	return newPolygon(reversed)
}

// Centroid returns the area-weighted centroid. A degenerate polygon
// with no area falls back to the mean of its vertices.
func (poly Polygon) Centroid() Vec2 {
	area := poly.Area()
	if math.Abs(area) < scalar.Epsilon {
		var mean Vec2
		for _, p := range poly.points {
			mean = mean.Add(p)
		}
		return mean.Div(float64(len(poly.points)))
	}
	var cx, cy float64
	for _, e := range poly.edges {
		cross := e.P.X*e.Q.Y - e.Q.X*e.P.Y
		cx += (e.P.X + e.Q.X) * cross
		cy += (e.P.Y + e.Q.Y) * cross
	}
	return Vec2{cx / (6 * area), cy / (6 * area)}
}

// Bounds returns the tightest axis-aligned rectangle enclosing the
// polygon.
func (poly Polygon) Bounds() Rect {
	min := poly.points[0]
	max := poly.points[0]
	for _, p := range poly.points[1:] {
		min.X = scalar.Min(min.X, p.X)
		min.Y = scalar.Min(min.Y, p.Y)
		max.X = scalar.Max(max.X, p.X)
		max.Y = scalar.Max(max.Y, p.Y)
	}
	return Rect{pos: min, size: max.Sub(min)}
}

// ContainsPoint reports whether p lies inside the polygon by ray-cast
// parity: for each edge whose y span straddles p (half-open, so a ray
// through a vertex is not counted twice), toggle when p is left of the
// edge's x-intercept at p's height. A point that lands exactly on a
// vertex is contained; other boundary points get no special handling
// and fall wherever the parity scan puts them.
func (poly Polygon) ContainsPoint(p Vec2) bool {
	return polygonContainsPoint(poly.points, p)
}

// ContainsSegment reports whether s lies entirely inside the polygon:
// both endpoints must be contained and s must not cross any edge.
// Crossing is the boolean segment test, so a segment that merely shares
// an endpoint with an edge does not count as crossing.
func (poly Polygon) ContainsSegment(s Segment) bool {
	return polygonContainsSegment(poly.points, s)
}

// ContainsPolygon reports whether every vertex of other is contained.
func (poly Polygon) ContainsPolygon(other Polygon) bool {
	for _, p := range other.points {
		if !polygonContainsPoint(poly.points, p) {
			return false
		}
	}
	return true
}

func (poly Polygon) String() string {
	parts := make([]string, len(poly.points))
	for i, p := range poly.points {
		parts[i] = p.String()
	}
	return "Polygon(" + strings.Join(parts, " ") + ")"
}

// polygonContainsPoint is the ray-cast parity scan over a bare vertex
// list. The triangulation ear scan uses it on its working list, where
// building a Polygon value per probe would be wasted work.
func polygonContainsPoint(points []Vec2, p Vec2) bool {
	inside := false
	j := len(points) - 1
	for i := 0; i < len(points); i++ {
		a, b := points[i], points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			intercept := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < intercept {
				inside = !inside
			}
		}
		j = i
	}
	if inside {
		return true
	}
	// The parity scan can miss the polygon's own corners; sitting on a
	// vertex counts as contained.
	for _, v := range points {
		if p == v {
			return true
		}
	}
	return false
}

// polygonContainsSegment is ContainsSegment over a bare vertex list.
func polygonContainsSegment(points []Vec2, s Segment) bool {
	if !polygonContainsPoint(points, s.P) || !polygonContainsPoint(points, s.Q) {
		return false
	}
	for i, a := range points {
		edge := Segment{a, points[circularIndex(i+1, len(points))]}
		if SegmentsIntersect(s, edge) {
			return false
		}
	}
	return true
}
