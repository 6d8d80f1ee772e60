package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCCW(t *testing.T) {
	assert.True(t, CCW(V2(0, 0), V2(1, 0), V2(0, 1)))
	assert.False(t, CCW(V2(0, 0), V2(1, 0), V2(1, -1)))
	assert.False(t, CCW(V2(0, 0), V2(1, 1), V2(2, 2)), "collinear points are not counterclockwise")
}

func TestSegmentsIntersect(t *testing.T) {
	t.Run("crossing segments", func(t *testing.T) {
		assert.True(t, SegmentsIntersect(
			Segment{V2(0, 0), V2(4, 4)},
			Segment{V2(0, 4), V2(4, 0)},
		))
		assert.True(t, SegmentsIntersect(
			Segment{V2(0, 0), V2(2, 0)},
			Segment{V2(1, -1), V2(1, 1)},
		))
	})

	t.Run("a shared endpoint does not count", func(t *testing.T) {
		a := Segment{V2(0, 0), V2(1, 1)}
		b := Segment{V2(1, 1), V2(2, 0)}
		assert.False(t, SegmentsIntersect(a, b))
		assert.False(t, SegmentsIntersect(b, a))
	})

	t.Run("parallel segments", func(t *testing.T) {
		assert.False(t, SegmentsIntersect(
			Segment{V2(0, 0), V2(2, 0)},
			Segment{V2(0, 1), V2(2, 1)},
		))
	})

	t.Run("collinear overlap does not count", func(t *testing.T) {
		assert.False(t, SegmentsIntersect(
			Segment{V2(0, 0), V2(2, 0)},
			Segment{V2(1, 0), V2(3, 0)},
		))
	})

	t.Run("disjoint segments", func(t *testing.T) {
		assert.False(t, SegmentsIntersect(
			Segment{V2(0, 0), V2(1, 0)},
			Segment{V2(3, 1), V2(3, -1)},
		))
	})

	t.Run("an endpoint resting on the other segment", func(t *testing.T) {
		assert.True(t, SegmentsIntersect(
			Segment{V2(0, 0), V2(2, 0)},
			Segment{V2(1, 1), V2(1, 0)},
		))
	})
}

func TestSegmentIntersection(t *testing.T) {
	t.Run("crossing segments report the point", func(t *testing.T) {
		p, ok := SegmentIntersection(
			Segment{V2(0, 0), V2(4, 4)},
			Segment{V2(0, 4), V2(4, 0)},
		)
		assert.True(t, ok)
		assert.Equal(t, V2(2, 2), p)
	})

	t.Run("a shared endpoint reports that endpoint", func(t *testing.T) {
		// Unlike the boolean test, which excludes shared endpoints.
		p, ok := SegmentIntersection(
			Segment{V2(0, 0), V2(4, 4)},
			Segment{V2(4, 4), V2(8, 0)},
		)
		assert.True(t, ok)
		assert.Equal(t, V2(4, 4), p)
	})

	t.Run("parallel segments report nothing", func(t *testing.T) {
		_, ok := SegmentIntersection(
			Segment{V2(0, 0), V2(2, 0)},
			Segment{V2(0, 1), V2(2, 1)},
		)
		assert.False(t, ok)
	})

	t.Run("carrier lines crossing beyond the span report nothing", func(t *testing.T) {
		_, ok := SegmentIntersection(
			Segment{V2(0, 0), V2(1, 1)},
			Segment{V2(0, 4), V2(4, 0)},
		)
		assert.False(t, ok)
	})
}

func TestSegmentIntersectsCircle(t *testing.T) {
	unit := mustCircle(t, V2(0, 0), 1)

	t.Run("passing through", func(t *testing.T) {
		assert.True(t, SegmentIntersectsCircle(Segment{V2(-2, 0), V2(2, 0)}, unit))
	})

	t.Run("an endpoint inside", func(t *testing.T) {
		assert.True(t, SegmentIntersectsCircle(Segment{V2(0.5, 0), V2(5, 0)}, unit))
	})

	t.Run("exact tangency is not an intersection", func(t *testing.T) {
		assert.False(t, SegmentIntersectsCircle(Segment{V2(-2, 1), V2(2, 1)}, unit))
	})

	t.Run("the span stops short of the circle", func(t *testing.T) {
		// The carrier line would cross; the segment does not.
		assert.False(t, SegmentIntersectsCircle(Segment{V2(3, 0), V2(5, 0)}, unit))
	})
}

func TestSegmentCircleIntersections(t *testing.T) {
	unit := mustCircle(t, V2(0, 0), 1)

	t.Run("two crossings, larger parameter first", func(t *testing.T) {
		points := SegmentCircleIntersections(Segment{V2(-2, 0), V2(2, 0)}, unit)
		assert.Equal(t, []Vec2{V2(1, 0), V2(-1, 0)}, points)
	})

	t.Run("tangent line yields one point", func(t *testing.T) {
		points := SegmentCircleIntersections(Segment{V2(-2, 1), V2(2, 1)}, unit)
		assert.Equal(t, []Vec2{V2(0, 1)}, points)
	})

	t.Run("miss yields nil", func(t *testing.T) {
		assert.Nil(t, SegmentCircleIntersections(Segment{V2(-2, 3), V2(2, 3)}, unit))
	})

	t.Run("degenerate segment yields nil", func(t *testing.T) {
		assert.Nil(t, SegmentCircleIntersections(Segment{V2(1, 1), V2(1, 1)}, unit))
	})

	t.Run("parameters are not clamped to the span", func(t *testing.T) {
		// The segment ends well before the circle, but its carrier line
		// crosses; both crossings come back anyway.
		points := SegmentCircleIntersections(Segment{V2(-2, 0), V2(-1.5, 0)}, unit)
		assert.Equal(t, []Vec2{V2(1, 0), V2(-1, 0)}, points)
	})
}

func TestRectsIntersect(t *testing.T) {
	t.Run("overlapping", func(t *testing.T) {
		a := mustRect(t, V2(0, 0), V2(2, 2))
		b := mustRect(t, V2(1, 1), V2(2, 2))
		assert.True(t, RectsIntersect(a, b))
		assert.True(t, RectsIntersect(b, a))
	})

	t.Run("touching along an edge does not count", func(t *testing.T) {
		a := mustRect(t, V2(0, 0), V2(2, 2))
		b := mustRect(t, V2(2, 0), V2(2, 2))
		assert.False(t, RectsIntersect(a, b))
		assert.False(t, RectsIntersect(b, a))
	})

	t.Run("touching at a corner does not count", func(t *testing.T) {
		a := mustRect(t, V2(0, 0), V2(2, 2))
		b := mustRect(t, V2(2, 2), V2(2, 2))
		assert.False(t, RectsIntersect(a, b))
	})

	t.Run("disjoint", func(t *testing.T) {
		a := mustRect(t, V2(0, 0), V2(2, 2))
		b := mustRect(t, V2(5, 5), V2(2, 2))
		assert.False(t, RectsIntersect(a, b))
	})

	t.Run("containment boundary is inclusive where intersection is strict", func(t *testing.T) {
		outer := mustRect(t, V2(0, 0), V2(4, 4))
		flush := mustRect(t, V2(2, 0), V2(2, 2))
		neighbor := mustRect(t, V2(4, 0), V2(2, 2))
		assert.True(t, outer.ContainsRect(flush))
		assert.False(t, RectsIntersect(flush, neighbor))
	})
}

func TestBoxesIntersect(t *testing.T) {
	a := mustBox(t, V3(0, 0, 0), V3(2, 2, 2))

	t.Run("overlapping", func(t *testing.T) {
		assert.True(t, BoxesIntersect(a, mustBox(t, V3(1, 1, 1), V3(2, 2, 2))))
	})

	t.Run("separated on z only", func(t *testing.T) {
		assert.False(t, BoxesIntersect(a, mustBox(t, V3(1, 1, 3), V3(2, 2, 2))))
	})

	t.Run("touching faces do not count", func(t *testing.T) {
		assert.False(t, BoxesIntersect(a, mustBox(t, V3(1, 1, 2), V3(2, 2, 2))))
	})
}

func TestRectIntersectsCircle(t *testing.T) {
	r := mustRect(t, V2(0, 0), V2(2, 2))

	t.Run("center inside the rectangle", func(t *testing.T) {
		assert.True(t, RectIntersectsCircle(r, mustCircle(t, V2(1, 1), 0.1)))
	})

	t.Run("circle reaching over an edge", func(t *testing.T) {
		assert.True(t, RectIntersectsCircle(r, mustCircle(t, V2(3, 1), 1.5)))
	})

	t.Run("circle exactly tangent to an edge", func(t *testing.T) {
		assert.False(t, RectIntersectsCircle(r, mustCircle(t, V2(3, 1), 1)))
	})

	t.Run("far apart", func(t *testing.T) {
		assert.False(t, RectIntersectsCircle(r, mustCircle(t, V2(10, 10), 1)))
	})
}

func TestSegmentIntersectsRect(t *testing.T) {
	r := mustRect(t, V2(0, 0), V2(2, 2))

	t.Run("an endpoint inside the rectangle", func(t *testing.T) {
		assert.True(t, SegmentIntersectsRect(Segment{V2(1, 1), V2(5, 5)}, r))
	})

	t.Run("passing through", func(t *testing.T) {
		assert.True(t, SegmentIntersectsRect(Segment{V2(-1, 1), V2(3, 1)}, r))
	})

	t.Run("passing outside", func(t *testing.T) {
		assert.False(t, SegmentIntersectsRect(Segment{V2(-1, 3), V2(3, 3)}, r))
	})
}
