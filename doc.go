// Package geom provides 2D and 3D geometry for games: int and float
// vectors, line segments, axis-aligned rectangles and boxes, circles,
// spheres, and simple polygons, together with the intersection,
// containment, and triangulation routines that tie them together.
//
// Everything is a plain value. Shapes validate once at construction and
// are immutable afterwards, so values can be shared freely between
// goroutines. Comparisons that must absorb float noise go through
// scalar.Epsilon; exact equality stays exact.
package geom
