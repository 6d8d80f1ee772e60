package geom

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/osuushi/geom/scalar"
)

// Vec3 is a 3D float vector.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for Vec3{X: x, Y: y, Z: z}.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Mul returns v scaled by s.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v scaled by 1/s. Dividing by zero is a programming error
// and panics.
func (v Vec3) Div(s float64) Vec3 {
	if s == 0 {
		panic(errors.New("geom: vector division by zero"))
	}
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of v and w, perpendicular to both.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared length of v, avoiding the sqrt.
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Distance returns the euclidean distance from v to w.
func (v Vec3) Distance(w Vec3) float64 {
	return v.Sub(w).Length()
}

// DistanceSquared returns the squared distance from v to w.
func (v Vec3) DistanceSquared(w Vec3) float64 {
	return v.Sub(w).LengthSquared()
}

// Normalize returns the unit vector in the direction of v, with the
// same boundary rules as Vec2.Normalize: near-zero vectors normalize to
// zero, near-unit vectors come back unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < scalar.Epsilon {
		return Vec3{}
	}
	if scalar.Equal(l, 1) {
		return v
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Lerp interpolates from v to w. t is clamped to [0, 1]; boundary
// values return the endpoints exactly.
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	if t <= 0 {
		return v
	}
	if t >= 1 {
		return w
	}
	return Vec3{
		v.X + (w.X-v.X)*t,
		v.Y + (w.Y-v.Y)*t,
		v.Z + (w.Z-v.Z)*t,
	}
}

// Reflect returns v reflected across a surface with unit normal n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Project returns the projection of v onto w. Projecting onto the zero
// vector returns the zero vector.
func (v Vec3) Project(w Vec3) Vec3 {
	d := w.LengthSquared()
	if d < scalar.Epsilon {
		return Vec3{}
	}
	return w.Mul(v.Dot(w) / d)
}

// Equal reports exact componentwise equality.
func (v Vec3) Equal(w Vec3) bool {
	return v == w
}

// ApproxEqual reports componentwise equality within scalar.Epsilon.
func (v Vec3) ApproxEqual(w Vec3) bool {
	return scalar.Equal(v.X, w.X) && scalar.Equal(v.Y, w.Y) && scalar.Equal(v.Z, w.Z)
}

// Vec2 narrows v to 2D, dropping Z.
func (v Vec3) Vec2() Vec2 {
	return Vec2{v.X, v.Y}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
