// Package raster walks lines across integer grids: tile maps, line of
// sight checks, anything that wants cells instead of points.
package raster

import (
	"github.com/osuushi/geom"
	"github.com/osuushi/geom/scalar"
)

// Trace visits every cell of the Bresenham line from one grid point to
// another, both endpoints included, stopping early if visit returns
// false. Each step moves one cell along the major axis and at most one
// along the minor, so consecutive cells are always 8-connected. Trace
// itself does not allocate; use Line when you want the cells as a
// slice.
func Trace(from, to geom.Vec2i, visit func(geom.Vec2i) bool) {
	dx := scalar.Abs(to.X - from.X)
	dy := -scalar.Abs(to.Y - from.Y)
	sx, sy := 1, 1
	if from.X > to.X {
		sx = -1
	}
	if from.Y > to.Y {
		sy = -1
	}

	err := dx + dy
	p := from
	for {
		if !visit(p) {
			return
		}
		if p == to {
			return
		}
		// The doubled error term decides which axes step without any
		// division, one comparison per axis.
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			p.X += sx
		}
		if e2 <= dx {
			err += dx
			p.Y += sy
		}
	}
}

// Line returns the cells of the Bresenham line from one grid point to
// another, both endpoints included.
func Line(from, to geom.Vec2i) []geom.Vec2i {
	// One cell per major-axis step, plus the start.
	n := scalar.Max(scalar.Abs(to.X-from.X), scalar.Abs(to.Y-from.Y)) + 1
	cells := make([]geom.Vec2i, 0, n)
	Trace(from, to, func(p geom.Vec2i) bool {
		cells = append(cells, p)
		return true
	})
	return cells
}
