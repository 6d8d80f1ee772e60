package geom

// Ear-clipping triangulation. The polygon is normalized to
// counterclockwise winding, then repeatedly scanned for an ear: three
// consecutive vertices whose corner is convex, whose chord stays inside
// the remaining polygon, and whose triangle holds no other remaining
// vertex.
//
//	prev ______ next
//	     \    /
//	      \  /  <- the chord prev->next is the new boundary
//	       \/      once cur is clipped
//	      cur
//
// Each ear found removes one vertex and emits one triangle, so a
// polygon of n vertices always yields exactly n-2 triangles. The scan
// is quadratic in the worst case, which is fine for the polygon sizes
// games deal in; correctness wins over cleverness here.

// Triangulate splits the polygon into triangles that cover it exactly,
// each a three-vertex Polygon wound counterclockwise and built only
// from the original vertices. The input must be simple; triangulating
// a self-intersecting or fully degenerate polygon returns an error.
func (poly Polygon) Triangulate() (result []Polygon, err error) {
	defer func() {
		if recoveredErr := HandleGeomPanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	work := make([]Vec2, len(poly.points))
	copy(work, poly.points)
	if poly.IsClockwise() {
		for l, r := 0, len(work)-1; l < r; l, r = l+1, r-1 {
			work[l], work[r] = work[r], work[l]
		}
	}

	triangles := make([]Polygon, 0, len(work)-2)
	i := 0
	misses := 0
	for len(work) > 3 {
		n := len(work)
		prev := work[circularIndex(i-1, n)]
		cur := work[i]
		next := work[circularIndex(i+1, n)]
		if isEar(work, prev, cur, next) {
			triangles = appendTriangle(triangles, prev, cur, next)
			work = append(work[:i], work[i+1:]...)
			// Keep the scan position; the old next vertex now sits here.
			i = circularIndex(i, len(work))
			misses = 0
		} else {
			i = circularIndex(i+1, n)
			misses++
			if misses > n {
				fatalf("no ear found after a full scan: polygon is degenerate or self-intersecting")
			}
		}
	}
	return appendTriangle(triangles, work[0], work[1], work[2]), nil
}

// isEar checks the three ear conditions against the remaining working
// vertex list: a convex corner at cur, a chord that stays inside the
// working polygon, and no other working vertex inside the candidate
// triangle (boundary inclusive, so a vertex resting on the chord blocks
// the ear too).
func isEar(work []Vec2, prev, cur, next Vec2) bool {
	if !CCW(prev, cur, next) {
		return false
	}
	if !polygonContainsSegment(work, Segment{prev, next}) {
		return false
	}
	for _, w := range work {
		if w == prev || w == cur || w == next {
			continue
		}
		if triangleContains(prev, cur, next, w) {
			return false
		}
	}
	return true
}

// triangleContains reports whether p lies inside triangle abc,
// boundary inclusive, by checking that p is not strictly on opposite
// sides of any two edges.
func triangleContains(a, b, c, p Vec2) bool {
	d1 := b.Sub(a).Cross(p.Sub(a))
	d2 := c.Sub(b).Cross(p.Sub(b))
	d3 := a.Sub(c).Cross(p.Sub(c))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// This is pulled out so the winding invariant is checked in one place:
// a clockwise or flat triangle coming out of the scan is a bug, not an
// input problem.
func appendTriangle(triangles []Polygon, a, b, c Vec2) []Polygon {
	tri := newPolygon([]Vec2{a, b, c})
	if tri.IsClockwise() {
		fatalf("triangle is clockwise: %v, %v, %v", a, b, c)
	}
	return append(triangles, tri)
}

// circularIndex treats a slice of length n as a circular buffer.
// Unlike the raw modulo operator, it only gives positive values.
func circularIndex(i, n int) int {
	return (i%n + n) % n
}
