package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRect(t *testing.T) {
	t.Run("accessors return construction inputs exactly", func(t *testing.T) {
		r, err := NewRect(V2(1.5, -2), V2(3, 4))
		require.NoError(t, err)
		assert.Equal(t, V2(1.5, -2), r.Position())
		assert.Equal(t, V2(3, 4), r.Size())
	})

	t.Run("zero size is legal", func(t *testing.T) {
		r, err := NewRect(V2(1, 1), Vec2{})
		require.NoError(t, err)
		assert.Equal(t, 0.0, r.Area())
		assert.True(t, r.ContainsPoint(V2(1, 1)), "a degenerate rect still contains its own point")
	})

	t.Run("negative size is an error", func(t *testing.T) {
		_, err := NewRect(Vec2{}, V2(-1, 4))
		assert.Error(t, err)
		_, err = NewRect(Vec2{}, V2(3, -0.001))
		assert.Error(t, err)
	})
}

func TestRectDerived(t *testing.T) {
	r := mustRect(t, V2(1, 2), V2(4, 6))
	assert.Equal(t, V2(5, 8), r.Max())
	assert.Equal(t, V2(3, 5), r.Center())
	assert.Equal(t, 24.0, r.Area())
}

func TestRectEdges(t *testing.T) {
	r := mustRect(t, V2(0, 0), V2(2, 1))
	edges := r.Edges()

	// Counterclockwise from the bottom edge.
	assert.Equal(t, [4]Segment{
		{V2(0, 0), V2(2, 0)},
		{V2(2, 0), V2(2, 1)},
		{V2(2, 1), V2(0, 1)},
		{V2(0, 1), V2(0, 0)},
	}, edges)

	// The edges chain into a closed loop.
	for i, e := range edges {
		assert.Equal(t, e.Q, edges[(i+1)%4].P)
	}
}

func TestRectContainsPoint(t *testing.T) {
	r := mustRect(t, V2(1, 1), V2(2, 2))

	assert.True(t, r.ContainsPoint(r.Center()))
	assert.True(t, r.ContainsPoint(V2(1, 1)), "min corner is inside")
	assert.True(t, r.ContainsPoint(V2(3, 3)), "max corner is inside")
	assert.True(t, r.ContainsPoint(V2(2, 1)), "boundary edge is inside")

	assert.False(t, r.ContainsPoint(V2(0.999, 2)))
	assert.False(t, r.ContainsPoint(V2(2, 3.001)))
	assert.False(t, r.ContainsPoint(V2(4, 4)))
}

func TestRectContainsRect(t *testing.T) {
	outer := mustRect(t, V2(0, 0), V2(4, 4))

	assert.True(t, outer.ContainsRect(outer), "a rect contains itself")
	assert.True(t, outer.ContainsRect(mustRect(t, V2(1, 1), V2(2, 2))))
	assert.True(t, outer.ContainsRect(mustRect(t, V2(0, 0), V2(4, 2))), "flush against the boundary still counts")

	assert.False(t, outer.ContainsRect(mustRect(t, V2(3, 3), V2(2, 2))), "overlap is not containment")
	assert.False(t, outer.ContainsRect(mustRect(t, V2(-1, 0), V2(2, 2))))
	assert.False(t, mustRect(t, V2(1, 1), V2(2, 2)).ContainsRect(outer))
}

func mustRect(t *testing.T, pos, size Vec2) Rect {
	t.Helper()
	r, err := NewRect(pos, size)
	require.NoError(t, err)
	return r
}
