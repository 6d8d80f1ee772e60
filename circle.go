package geom

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/osuushi/geom/scalar"
)

// Circle is a 2D circle with a strictly positive radius.
type Circle struct {
	center Vec2
	radius float64
}

// NewCircle builds a circle from its center and radius. A radius of
// zero or less is an error.
func NewCircle(center Vec2, radius float64) (Circle, error) {
	if radius <= 0 {
		return Circle{}, errors.Errorf("circle radius must be positive, got %g", radius)
	}
	return Circle{center: center, radius: radius}, nil
}

// Center returns the center, exactly as constructed.
func (c Circle) Center() Vec2 {
	return c.center
}

// Radius returns the radius, exactly as constructed.
func (c Circle) Radius() float64 {
	return c.radius
}

// ContainsPoint reports whether p lies inside the circle, inclusive of
// the boundary: points at exactly the radius are contained.
func (c Circle) ContainsPoint(p Vec2) bool {
	return c.center.DistanceSquared(p) <= c.radius*c.radius
}

// Equal reports whether two circles coincide. Centers compare exactly;
// radii compare within scalar.Epsilon, since a radius is usually the
// product of upstream float arithmetic.
func (c Circle) Equal(other Circle) bool {
	return c.center == other.center && scalar.Equal(c.radius, other.radius)
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle(%v, r=%g)", c.center, c.radius)
}
