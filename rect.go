package geom

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/osuushi/geom/scalar"
)

// Rect is an axis-aligned rectangle described by its minimum corner and
// a non-negative size. The zero Rect is a point at the origin.
type Rect struct {
	pos  Vec2
	size Vec2
}

// NewRect builds a rectangle from its minimum corner and size. A
// negative size component is an error; zero is legal and gives a
// degenerate rectangle.
func NewRect(pos, size Vec2) (Rect, error) {
	if size.X < 0 || size.Y < 0 {
		return Rect{}, errors.Errorf("rect size must be non-negative, got %v", size)
	}
	return Rect{pos: pos, size: size}, nil
}

// Position returns the minimum corner, exactly as constructed.
func (r Rect) Position() Vec2 {
	return r.pos
}

// Size returns the per-axis extents, exactly as constructed.
func (r Rect) Size() Vec2 {
	return r.size
}

// Max returns the maximum corner, position + size.
func (r Rect) Max() Vec2 {
	return r.pos.Add(r.size)
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return r.pos.Add(r.size.Mul(0.5))
}

// Area returns width times height.
func (r Rect) Area() float64 {
	return r.size.X * r.size.Y
}

// Edges returns the four sides as segments, winding counterclockwise
// from the bottom edge.
func (r Rect) Edges() [4]Segment {
	min := r.pos
	max := r.Max()
	return [4]Segment{
		{min, Vec2{max.X, min.Y}},
		{Vec2{max.X, min.Y}, max},
		{max, Vec2{min.X, max.Y}},
		{Vec2{min.X, max.Y}, min},
	}
}

// ContainsPoint reports whether p lies inside the rectangle. The
// boundary counts: points exactly on an edge or corner are contained.
func (r Rect) ContainsPoint(p Vec2) bool {
	max := r.Max()
	return scalar.InRange(p.X, r.pos.X, max.X) && scalar.InRange(p.Y, r.pos.Y, max.Y)
}

// ContainsRect reports whether other lies entirely inside r. The
// comparison is non-strict, so a rectangle contains itself and
// boundary-flush rectangles count as contained.
func (r Rect) ContainsRect(other Rect) bool {
	max, omax := r.Max(), other.Max()
	return other.pos.X >= r.pos.X && omax.X <= max.X &&
		other.pos.Y >= r.pos.Y && omax.Y <= max.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%v, %v)", r.pos, r.size)
}
