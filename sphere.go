package geom

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/osuushi/geom/scalar"
)

// Sphere is a 3D sphere with a strictly positive radius.
type Sphere struct {
	center Vec3
	radius float64
}

// NewSphere builds a sphere from its center and radius. A radius of
// zero or less is an error.
func NewSphere(center Vec3, radius float64) (Sphere, error) {
	if radius <= 0 {
		return Sphere{}, errors.Errorf("sphere radius must be positive, got %g", radius)
	}
	return Sphere{center: center, radius: radius}, nil
}

// Center returns the center, exactly as constructed.
func (s Sphere) Center() Vec3 {
	return s.center
}

// Radius returns the radius, exactly as constructed.
func (s Sphere) Radius() float64 {
	return s.radius
}

// ContainsPoint reports whether p lies inside the sphere, inclusive of
// the boundary.
func (s Sphere) ContainsPoint(p Vec3) bool {
	return s.center.DistanceSquared(p) <= s.radius*s.radius
}

// Equal reports whether two spheres coincide, with the same rules as
// Circle.Equal: exact centers, radii within scalar.Epsilon.
func (s Sphere) Equal(other Sphere) bool {
	return s.center == other.center && scalar.Equal(s.radius, other.radius)
}

func (s Sphere) String() string {
	return fmt.Sprintf("Sphere(%v, r=%g)", s.center, s.radius)
}
