package geom

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/osuushi/geom/scalar"
)

// Box is an axis-aligned 3D box described by its minimum corner and a
// non-negative size, the 3D counterpart of Rect.
type Box struct {
	pos  Vec3
	size Vec3
}

// NewBox builds a box from its minimum corner and size. A negative
// size component is an error; zero is legal.
func NewBox(pos, size Vec3) (Box, error) {
	if size.X < 0 || size.Y < 0 || size.Z < 0 {
		return Box{}, errors.Errorf("box size must be non-negative, got %v", size)
	}
	return Box{pos: pos, size: size}, nil
}

// Position returns the minimum corner, exactly as constructed.
func (b Box) Position() Vec3 {
	return b.pos
}

// Size returns the per-axis extents, exactly as constructed.
func (b Box) Size() Vec3 {
	return b.size
}

// Max returns the maximum corner, position + size.
func (b Box) Max() Vec3 {
	return b.pos.Add(b.size)
}

// Center returns the midpoint of the box.
func (b Box) Center() Vec3 {
	return b.pos.Add(b.size.Mul(0.5))
}

// Volume returns width times height times depth.
func (b Box) Volume() float64 {
	return b.size.X * b.size.Y * b.size.Z
}

// ContainsPoint reports whether p lies inside the box, boundary
// inclusive on every axis.
func (b Box) ContainsPoint(p Vec3) bool {
	max := b.Max()
	return scalar.InRange(p.X, b.pos.X, max.X) &&
		scalar.InRange(p.Y, b.pos.Y, max.Y) &&
		scalar.InRange(p.Z, b.pos.Z, max.Z)
}

// ContainsBox reports whether other lies entirely inside b,
// non-strict on every axis.
func (b Box) ContainsBox(other Box) bool {
	max, omax := b.Max(), other.Max()
	return other.pos.X >= b.pos.X && omax.X <= max.X &&
		other.pos.Y >= b.pos.Y && omax.Y <= max.Y &&
		other.pos.Z >= b.pos.Z && omax.Z <= max.Z
}

func (b Box) String() string {
	return fmt.Sprintf("Box(%v, %v)", b.pos, b.size)
}
