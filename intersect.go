package geom

import (
	"math"

	"github.com/osuushi/geom/scalar"
)

// Pairwise intersection tests. Each meaningful pair of shape kinds gets
// its own free function rather than hiding behind a common Shape
// interface; collision loops dispatch on concrete types anyway, and the
// boundary policies genuinely differ per pair (see RectsIntersect
// versus Rect.ContainsRect).

// CCW reports whether r lies counterclockwise of the direction from p
// to q, by the sign of the 2D cross product. Collinear points are not
// counterclockwise. This is the orientation primitive behind the
// segment tests, exported for callers building their own predicates.
func CCW(p, q, r Vec2) bool {
	return q.Sub(p).Cross(r.Sub(p)) > 0
}

// SegmentsIntersect reports whether two segments cross. Segments that
// share an endpoint exactly do not intersect, by convention: chains of
// segments meeting end to end, polygon edges included, would otherwise
// always self-report as intersecting. Otherwise the segments cross
// exactly when each one's endpoints sit on opposite sides of the
// other's carrier line.
func SegmentsIntersect(a, b Segment) bool {
	if a.P == b.P || a.P == b.Q || a.Q == b.P || a.Q == b.Q {
		return false
	}
	return CCW(a.P, b.P, b.Q) != CCW(a.Q, b.P, b.Q) &&
		CCW(a.P, a.Q, b.P) != CCW(a.P, a.Q, b.Q)
}

// SegmentIntersection returns the point where two segments cross, or
// false if they do not. The carrier lines are solved by Cramer's rule;
// a denominator within scalar.Epsilon of zero means parallel or
// coincident lines, which report no intersection. The candidate point
// must then lie on both segments. Unlike SegmentsIntersect, this
// variant has no shared-endpoint convention: segments touching at an
// endpoint report that endpoint.
func SegmentIntersection(a, b Segment) (Vec2, bool) {
	da := a.Q.Sub(a.P)
	db := b.Q.Sub(b.P)
	denom := da.Cross(db)
	if math.Abs(denom) < scalar.Epsilon {
		return Vec2{}, false
	}
	t := b.P.Sub(a.P).Cross(db) / denom
	p := a.P.Add(da.Mul(t))
	if !a.Contains(p) || !b.Contains(p) {
		return Vec2{}, false
	}
	return p, true
}

// SegmentIntersectsCircle reports whether the segment passes strictly
// inside the circle. The comparison is against the clamped
// point-to-segment distance, so a segment whose carrier line crosses
// the circle beyond the segment's span stays false, and so does exact
// tangency.
func SegmentIntersectsCircle(s Segment, c Circle) bool {
	return s.Distance(c.center) < c.radius
}

// SegmentCircleIntersections returns the points where the segment's
// carrier line meets the circle: nil for a miss, one point for a
// tangent (discriminant exactly zero), two otherwise, the one at the
// larger line parameter first. The parameters are not clamped to the
// segment's span, so the points may lie beyond its endpoints; span
// checks are the caller's business. A degenerate segment has no
// carrier line to parametrize and reports no intersections.
func SegmentCircleIntersections(s Segment, c Circle) []Vec2 {
	d := s.Q.Sub(s.P)
	f := s.P.Sub(c.center)
	qa := d.Dot(d)
	if qa < scalar.Epsilon {
		return nil
	}
	qb := 2 * f.Dot(d)
	qc := f.Dot(f) - c.radius*c.radius
	disc := qb*qb - 4*qa*qc
	switch {
	case disc < 0:
		return nil
	case disc == 0:
		u := -qb / (2 * qa)
		return []Vec2{s.P.Add(d.Mul(u))}
	}
	root := math.Sqrt(disc)
	u1 := (-qb + root) / (2 * qa)
	u2 := (-qb - root) / (2 * qa)
	return []Vec2{s.P.Add(d.Mul(u1)), s.P.Add(d.Mul(u2))}
}

// RectsIntersect reports whether two rectangles overlap. The interval
// test is strict on both bounds, so rectangles that merely touch along
// an edge or corner do not intersect. Contrast Rect.ContainsRect,
// where the boundary is inclusive; the two policies are intentional
// and callers rely on the difference.
func RectsIntersect(a, b Rect) bool {
	amax, bmax := a.Max(), b.Max()
	return amax.X > b.pos.X && a.pos.X < bmax.X &&
		amax.Y > b.pos.Y && a.pos.Y < bmax.Y
}

// BoxesIntersect reports whether two boxes overlap, strict on every
// axis like RectsIntersect.
func BoxesIntersect(a, b Box) bool {
	amax, bmax := a.Max(), b.Max()
	return amax.X > b.pos.X && a.pos.X < bmax.X &&
		amax.Y > b.pos.Y && a.pos.Y < bmax.Y &&
		amax.Z > b.pos.Z && a.pos.Z < bmax.Z
}

// RectIntersectsCircle reports whether a rectangle and a circle
// overlap: either the center is inside the rectangle, or one of the
// four edges passes inside the circle.
func RectIntersectsCircle(r Rect, c Circle) bool {
	if r.ContainsPoint(c.center) {
		return true
	}
	for _, edge := range r.Edges() {
		if SegmentIntersectsCircle(edge, c) {
			return true
		}
	}
	return false
}

// SegmentIntersectsRect reports whether any part of the segment lies
// in the rectangle: an endpoint inside it, or a crossing of one of its
// edges.
func SegmentIntersectsRect(s Segment, r Rect) bool {
	if r.ContainsPoint(s.P) || r.ContainsPoint(s.Q) {
		return true
	}
	for _, edge := range r.Edges() {
		if SegmentsIntersect(s, edge) {
			return true
		}
	}
	return false
}
