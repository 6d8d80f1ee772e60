package geom

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/osuushi/geom/scalar"
)

// Vec2i is a 2D integer vector, for tile and grid coordinates.
type Vec2i struct {
	X, Y int
}

// V2i is shorthand for Vec2i{X: x, Y: y}.
func V2i(x, y int) Vec2i {
	return Vec2i{X: x, Y: y}
}

// Add returns v + w.
func (v Vec2i) Add(w Vec2i) Vec2i {
	return Vec2i{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2i) Sub(w Vec2i) Vec2i {
	return Vec2i{v.X - w.X, v.Y - w.Y}
}

// Mul returns v scaled by s.
func (v Vec2i) Mul(s int) Vec2i {
	return Vec2i{v.X * s, v.Y * s}
}

// Div returns v scaled by 1/s, truncating toward zero. Dividing by zero
// is a programming error and panics.
func (v Vec2i) Div(s int) Vec2i {
	if s == 0 {
		panic(errors.New("geom: vector division by zero"))
	}
	return Vec2i{v.X / s, v.Y / s}
}

// Neg returns -v.
func (v Vec2i) Neg() Vec2i {
	return Vec2i{-v.X, -v.Y}
}

// Dot returns the dot product of v and w.
func (v Vec2i) Dot(w Vec2i) int {
	return v.X*w.X + v.Y*w.Y
}

// LengthSquared returns the squared length of v. Integer vectors have
// no Length; convert to Vec2 when the euclidean length is needed.
func (v Vec2i) LengthSquared() int {
	return v.X*v.X + v.Y*v.Y
}

// DistanceSquared returns the squared distance from v to w.
func (v Vec2i) DistanceSquared(w Vec2i) int {
	return v.Sub(w).LengthSquared()
}

// Manhattan returns the taxicab distance from v to w: the number of
// axis-aligned unit steps between them.
func (v Vec2i) Manhattan(w Vec2i) int {
	return scalar.Abs(v.X-w.X) + scalar.Abs(v.Y-w.Y)
}

// Equal reports exact componentwise equality.
func (v Vec2i) Equal(w Vec2i) bool {
	return v == w
}

// Vec2 converts v to a float vector.
func (v Vec2i) Vec2() Vec2 {
	return Vec2{float64(v.X), float64(v.Y)}
}

// Vec3i widens v into 3D with Z = 0.
func (v Vec2i) Vec3i() Vec3i {
	return Vec3i{v.X, v.Y, 0}
}

func (v Vec2i) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
