package geom

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/osuushi/geom/scalar"
)

// Vec2 is a 2D float vector.
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns v scaled by 1/s. Dividing by zero is a programming error
// and panics.
func (v Vec2) Div(s float64) Vec2 {
	if s == 0 {
		panic(errors.New("geom: vector division by zero"))
	}
	return Vec2{v.X / s, v.Y / s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the scalar cross product of v and w: the z component of
// the 3D cross product, positive when w is counterclockwise of v.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSquared returns the squared length of v, avoiding the sqrt.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the euclidean distance from v to w.
func (v Vec2) Distance(w Vec2) float64 {
	return v.Sub(w).Length()
}

// DistanceSquared returns the squared distance from v to w.
func (v Vec2) DistanceSquared(w Vec2) float64 {
	return v.Sub(w).LengthSquared()
}

// Normalize returns the unit vector in the direction of v. A vector
// shorter than scalar.Epsilon normalizes to the zero vector, and a
// vector already within scalar.Epsilon of unit length comes back
// unchanged rather than picking up rounding noise.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l < scalar.Epsilon {
		return Vec2{}
	}
	if scalar.Equal(l, 1) {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// Lerp interpolates from v to w. t is clamped to [0, 1]: at or past the
// boundaries the corresponding endpoint is returned exactly, with no
// arithmetic applied.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	if t <= 0 {
		return v
	}
	if t >= 1 {
		return w
	}
	return Vec2{v.X + (w.X-v.X)*t, v.Y + (w.Y-v.Y)*t}
}

// Rotate returns v rotated counterclockwise by the given angle in
// radians.
func (v Vec2) Rotate(radians float64) Vec2 {
	sin, cos := math.Sincos(radians)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Angle returns the angle of v in radians, in (-π, π], measured
// counterclockwise from the positive x axis.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Reflect returns v reflected across a surface with unit normal n.
func (v Vec2) Reflect(n Vec2) Vec2 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Project returns the projection of v onto w. Projecting onto the zero
// vector returns the zero vector.
func (v Vec2) Project(w Vec2) Vec2 {
	d := w.LengthSquared()
	if d < scalar.Epsilon {
		return Vec2{}
	}
	return w.Mul(v.Dot(w) / d)
}

// Equal reports exact componentwise equality.
func (v Vec2) Equal(w Vec2) bool {
	return v == w
}

// ApproxEqual reports componentwise equality within scalar.Epsilon.
func (v Vec2) ApproxEqual(w Vec2) bool {
	return scalar.Equal(v.X, w.X) && scalar.Equal(v.Y, w.Y)
}

// Vec3 widens v into 3D with Z = 0.
func (v Vec2) Vec3() Vec3 {
	return Vec3{v.X, v.Y, 0}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
