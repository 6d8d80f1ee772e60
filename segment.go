package geom

import (
	"fmt"
	"math"

	"github.com/osuushi/geom/scalar"
)

// Segment is a 2D line segment between P and Q. Degenerate segments,
// where P and Q coincide, are legal and behave as a single point.
type Segment struct {
	P, Q Vec2
}

// Length returns the distance from P to Q.
func (s Segment) Length() float64 {
	return s.P.Distance(s.Q)
}

// LengthSquared returns the squared distance from P to Q.
func (s Segment) LengthSquared() float64 {
	return s.P.DistanceSquared(s.Q)
}

// Midpoint returns the point halfway between P and Q.
func (s Segment) Midpoint() Vec2 {
	return s.P.Add(s.Q).Mul(0.5)
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{s.Q, s.P}
}

// Contains reports whether p lies on the segment, using the triangle
// identity: p is on the segment exactly when the trip P->p->Q is no
// longer than the segment itself. Unlike a cross-product test, this
// stays false for points near the carrier line but beyond the
// segment's span.
func (s Segment) Contains(p Vec2) bool {
	return s.P.Distance(p)+p.Distance(s.Q)-s.Length() < scalar.Epsilon
}

// Distance returns the distance from p to the closest point on the
// segment.
func (s Segment) Distance(p Vec2) float64 {
	return math.Sqrt(s.DistanceSquared(p))
}

// DistanceSquared returns the squared distance from p to the closest
// point on the segment. The point is projected onto the carrier line;
// a projection parameter below 0 means P is closest, above 1 means Q
// is closest, and anything between measures to the projection itself.
// A degenerate segment measures straight to its single point.
func (s Segment) DistanceSquared(p Vec2) float64 {
	d := s.Q.Sub(s.P)
	den := d.LengthSquared()
	if den < scalar.Epsilon {
		return p.DistanceSquared(s.P)
	}
	t := p.Sub(s.P).Dot(d) / den
	if t < 0 {
		return p.DistanceSquared(s.P)
	}
	if t > 1 {
		return p.DistanceSquared(s.Q)
	}
	return p.DistanceSquared(s.P.Add(d.Mul(t)))
}

func (s Segment) String() string {
	return fmt.Sprintf("%v-%v", s.P, s.Q)
}

// Segment3 is a 3D line segment between P and Q, with the same rules
// as Segment.
type Segment3 struct {
	P, Q Vec3
}

// Length returns the distance from P to Q.
func (s Segment3) Length() float64 {
	return s.P.Distance(s.Q)
}

// LengthSquared returns the squared distance from P to Q.
func (s Segment3) LengthSquared() float64 {
	return s.P.DistanceSquared(s.Q)
}

// Midpoint returns the point halfway between P and Q.
func (s Segment3) Midpoint() Vec3 {
	return s.P.Add(s.Q).Mul(0.5)
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment3) Reverse() Segment3 {
	return Segment3{s.Q, s.P}
}

// Contains reports whether p lies on the segment, by the same triangle
// identity as Segment.Contains.
func (s Segment3) Contains(p Vec3) bool {
	return s.P.Distance(p)+p.Distance(s.Q)-s.Length() < scalar.Epsilon
}

// Distance returns the distance from p to the closest point on the
// segment.
func (s Segment3) Distance(p Vec3) float64 {
	return math.Sqrt(s.DistanceSquared(p))
}

// DistanceSquared returns the squared distance from p to the closest
// point on the segment, by the same clamped projection as
// Segment.DistanceSquared.
func (s Segment3) DistanceSquared(p Vec3) float64 {
	d := s.Q.Sub(s.P)
	den := d.LengthSquared()
	if den < scalar.Epsilon {
		return p.DistanceSquared(s.P)
	}
	t := p.Sub(s.P).Dot(d) / den
	if t < 0 {
		return p.DistanceSquared(s.P)
	}
	if t > 1 {
		return p.DistanceSquared(s.Q)
	}
	return p.DistanceSquared(s.P.Add(d.Mul(t)))
}

func (s Segment3) String() string {
	return fmt.Sprintf("%v-%v", s.P, s.Q)
}
