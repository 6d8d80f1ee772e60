// Package scalar holds the float comparison tolerance and the small
// numeric helpers shared by the geometry packages.
package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the library-wide comparison tolerance. To compensate for
// imprecision in floats, equality is tolerance based. If we don't account
// for this, nearly-parallel segments and accumulated rotations start
// producing phantom differences. The value is tight enough that no two
// distinct points of game-scale geometry ever alias.
const Epsilon = 1e-9

// Equal reports whether a and b are within Epsilon of each other.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Clamp limits v to the range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// InRange reports whether v lies in [lo, hi], inclusive on both ends.
func InRange[T constraints.Ordered](v, lo, hi T) bool {
	return v >= lo && v <= hi
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Abs works for both float and signed integer scalars, unlike math.Abs.
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1 according to the sign of v.
func Sign[T constraints.Signed | constraints.Float](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Lerp interpolates linearly from a to b. t is not clamped; values
// outside [0, 1] extrapolate.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// AngleDiff returns the shortest signed angular distance from a to b,
// in (-π, π]. Both angles are in radians.
func AngleDiff(a, b float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
