// Package ballistic models projectile motion under constant gravity in
// y-up coordinates: arrows, lobbed grenades, particle arcs.
package ballistic

import (
	"math"

	"github.com/osuushi/geom"
)

// Trajectory is the flight of a projectile launched from Origin with
// Velocity, pulled down by Gravity, a positive magnitude toward -y.
// With zero or negative gravity the projectile never comes back down,
// so the flight-time family (Apex, TimeOfFlight, Range, Sample) treats
// the trajectory as grounded at the origin.
type Trajectory struct {
	Origin   geom.Vec2
	Velocity geom.Vec2
	Gravity  float64
}

// PositionAt returns the projectile's position at time t.
func (tr Trajectory) PositionAt(t float64) geom.Vec2 {
	return geom.V2(
		tr.Origin.X+tr.Velocity.X*t,
		tr.Origin.Y+tr.Velocity.Y*t-0.5*tr.Gravity*t*t,
	)
}

// VelocityAt returns the projectile's velocity at time t.
func (tr Trajectory) VelocityAt(t float64) geom.Vec2 {
	return geom.V2(tr.Velocity.X, tr.Velocity.Y-tr.Gravity*t)
}

// Apex returns the highest point of the flight. A projectile launched
// level or downward peaks at launch, so the origin comes back exactly.
func (tr Trajectory) Apex() geom.Vec2 {
	if tr.Gravity <= 0 || tr.Velocity.Y <= 0 {
		return tr.Origin
	}
	return tr.PositionAt(tr.Velocity.Y / tr.Gravity)
}

// TimeOfFlight returns the time until the projectile falls back to
// launch height, zero for a projectile launched level or downward.
func (tr Trajectory) TimeOfFlight() float64 {
	if tr.Gravity <= 0 || tr.Velocity.Y <= 0 {
		return 0
	}
	return 2 * tr.Velocity.Y / tr.Gravity
}

// Range returns the horizontal displacement covered when the
// projectile returns to launch height, negative when launched
// leftward.
func (tr Trajectory) Range() float64 {
	return tr.Velocity.X * tr.TimeOfFlight()
}

// Sample returns n+1 positions evenly spaced in time from launch to
// landing, ready to draw as a polyline. n is the number of steps and
// must be at least 1; anything less returns nil.
func (tr Trajectory) Sample(n int) []geom.Vec2 {
	if n < 1 {
		return nil
	}
	flight := tr.TimeOfFlight()
	points := make([]geom.Vec2, n+1)
	for i := range points {
		points[i] = tr.PositionAt(flight * float64(i) / float64(n))
	}
	return points
}

// LaunchAngles returns the two angles that hit target, measured from
// the shooter at the origin, firing at the given speed: low is the
// flat solution, high the lofted one. The two coincide when the target
// sits at exactly maximum range. ok is false when the target is out of
// reach, or when speed or gravity is not positive.
func LaunchAngles(speed float64, target geom.Vec2, gravity float64) (low, high float64, ok bool) {
	if speed <= 0 || gravity <= 0 {
		return 0, 0, false
	}
	v2 := speed * speed
	disc := v2*v2 - gravity*(gravity*target.X*target.X+2*target.Y*v2)
	if disc < 0 {
		return 0, 0, false
	}
	root := math.Sqrt(disc)
	// tan θ = (v² ± √disc) / (g·x); atan2 keeps targets behind the
	// shooter (negative x) in the correct quadrant.
	return math.Atan2(v2-root, gravity*target.X), math.Atan2(v2+root, gravity*target.X), true
}
