package geom

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/osuushi/geom/scalar"
)

// Vec3i is a 3D integer vector.
type Vec3i struct {
	X, Y, Z int
}

// V3i is shorthand for Vec3i{X: x, Y: y, Z: z}.
func V3i(x, y, z int) Vec3i {
	return Vec3i{X: x, Y: y, Z: z}
}

// Add returns v + w.
func (v Vec3i) Add(w Vec3i) Vec3i {
	return Vec3i{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3i) Sub(w Vec3i) Vec3i {
	return Vec3i{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Mul returns v scaled by s.
func (v Vec3i) Mul(s int) Vec3i {
	return Vec3i{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v scaled by 1/s, truncating toward zero. Dividing by zero
// is a programming error and panics.
func (v Vec3i) Div(s int) Vec3i {
	if s == 0 {
		panic(errors.New("geom: vector division by zero"))
	}
	return Vec3i{v.X / s, v.Y / s, v.Z / s}
}

// Neg returns -v.
func (v Vec3i) Neg() Vec3i {
	return Vec3i{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and w.
func (v Vec3i) Dot(w Vec3i) int {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// LengthSquared returns the squared length of v. Integer vectors have
// no Length; convert to Vec3 when the euclidean length is needed.
func (v Vec3i) LengthSquared() int {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// DistanceSquared returns the squared distance from v to w.
func (v Vec3i) DistanceSquared(w Vec3i) int {
	return v.Sub(w).LengthSquared()
}

// Manhattan returns the taxicab distance from v to w: the number of
// axis-aligned unit steps between them.
func (v Vec3i) Manhattan(w Vec3i) int {
	return scalar.Abs(v.X-w.X) + scalar.Abs(v.Y-w.Y) + scalar.Abs(v.Z-w.Z)
}

// Equal reports exact componentwise equality.
func (v Vec3i) Equal(w Vec3i) bool {
	return v == w
}

// Vec3 converts v to a float vector.
func (v Vec3i) Vec3() Vec3 {
	return Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Vec2i narrows v to 2D, dropping Z.
func (v Vec3i) Vec2i() Vec2i {
	return Vec2i{v.X, v.Y}
}

func (v Vec3i) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}
