package pixmap_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixelgrid/geom"
	"github.com/katalvlaran/pixelgrid/pixmap"
)

//----------------------------------------------------------------------------//
// Split Tests
//----------------------------------------------------------------------------//

// TestSplit_Quadrants checks regions, bounds clipping and value copies.
func TestSplit_Quadrants(t *testing.T) {
	m, err := pixmap.New[int](16, 12, 0, 1) // backing side 16
	require.NoError(t, err)
	m.DrawRect(geom.NewRect(0, 0, 16, 6), 3)

	quads, err := m.Split()
	require.NoError(t, err)

	assert.Equal(t, geom.NewRect(0, 0, 8, 8), quads[pixmap.BottomLeft].Region().Rect())
	assert.Equal(t, geom.NewRect(8, 0, 8, 8), quads[pixmap.BottomRight].Region().Rect())
	assert.Equal(t, geom.NewRect(8, 8, 8, 8), quads[pixmap.TopRight].Region().Rect())
	assert.Equal(t, geom.NewRect(0, 8, 8, 8), quads[pixmap.TopLeft].Region().Rect())

	// Logical bounds clip at y=12 in the top quadrants.
	assert.Equal(t, geom.NewRect(0, 8, 8, 4), quads[pixmap.TopLeft].Bounds())
	assert.Equal(t, geom.NewRect(8, 0, 8, 8), quads[pixmap.BottomRight].Bounds())

	v, err := quads[pixmap.BottomLeft].Get(geom.Pt(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	v, err = quads[pixmap.TopRight].Get(geom.Pt(10, 10))
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

// TestSplit_NoAliasing mutates a quadrant and confirms the original map
// is untouched.
func TestSplit_NoAliasing(t *testing.T) {
	m, err := pixmap.New[int](8, 8, 0, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(geom.Pt(1, 1), 5))

	quads, err := m.Split()
	require.NoError(t, err)
	require.NoError(t, quads[pixmap.BottomLeft].Set(geom.Pt(1, 1), 9))

	v, err := m.Get(geom.Pt(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 5, v, "mutating a quadrant leaked into the source")
}

// TestSplit_SingleCell rejects splitting an unsplittable map.
func TestSplit_SingleCell(t *testing.T) {
	m, err := pixmap.New[int](1, 1, 0, 1)
	require.NoError(t, err)
	_, err = m.Split()
	assert.ErrorIs(t, err, pixmap.ErrNotSplit)
}

//----------------------------------------------------------------------------//
// Join Tests
//----------------------------------------------------------------------------//

// TestSplitJoin_RoundTrip splits, mutates each quadrant concurrently and
// joins, then verifies every pixel.
func TestSplitJoin_RoundTrip(t *testing.T) {
	m, err := pixmap.New[int](16, 16, 0, 1)
	require.NoError(t, err)
	m.DrawCircle(geom.Circ(geom.Pt(8, 8), 5), 1)

	quads, err := m.Split()
	require.NoError(t, err)

	// Each quadrant is an independent tree, so parallel mutation is safe.
	var wg sync.WaitGroup
	for i := range quads {
		wg.Add(1)
		go func(q *pixmap.Map[int], stamp int) {
			defer wg.Done()
			center := q.Bounds().Center()
			_ = q.Set(center, stamp)
		}(quads[i], 100+i)
	}
	wg.Wait()

	joined, err := pixmap.Join(quads)
	require.NoError(t, err)
	assert.Equal(t, m.Region(), joined.Region())
	assert.Equal(t, m.Bounds(), joined.Bounds())

	m.Bounds().EachPixel(func(p geom.Point) {
		want, _ := m.Get(p)
		for i := range quads {
			if quads[i].Bounds().Contains(p) && p == quads[i].Bounds().Center() {
				want = 100 + i
			}
		}
		got, err := joined.Get(p)
		require.NoError(t, err)
		assert.Equal(t, want, got, "pixel %v", p)
	})
}

// TestJoin_MergesUniform collapses four uniform quadrants into one leaf.
func TestJoin_MergesUniform(t *testing.T) {
	m, err := pixmap.New[int](8, 8, 7, 1)
	require.NoError(t, err)
	quads, err := m.Split()
	require.NoError(t, err)

	joined, err := pixmap.Join(quads)
	require.NoError(t, err)
	assert.Equal(t, pixmap.Stats{Nodes: 1, Leaves: 1}, joined.Stats())
	v, err := joined.Get(geom.Pt(3, 3))
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

// TestJoin_Errors rejects nil, misplaced and mismatched quadrants.
func TestJoin_Errors(t *testing.T) {
	m, err := pixmap.New[int](8, 8, 0, 1)
	require.NoError(t, err)
	quads, err := m.Split()
	require.NoError(t, err)

	t.Run("NilQuadrant", func(t *testing.T) {
		bad := quads
		bad[pixmap.TopLeft] = nil
		_, err := pixmap.Join(bad)
		assert.ErrorIs(t, err, pixmap.ErrBadQuadrants)
	})

	t.Run("SwappedQuadrants", func(t *testing.T) {
		bad := quads
		bad[pixmap.BottomLeft], bad[pixmap.BottomRight] = bad[pixmap.BottomRight], bad[pixmap.BottomLeft]
		_, err := pixmap.Join(bad)
		assert.ErrorIs(t, err, pixmap.ErrBadQuadrants)
	})

	t.Run("MismatchedSize", func(t *testing.T) {
		other, err := pixmap.New[int](16, 16, 0, 1)
		require.NoError(t, err)
		otherQuads, err := other.Split()
		require.NoError(t, err)

		bad := quads
		bad[pixmap.TopRight] = otherQuads[pixmap.TopRight]
		_, err = pixmap.Join(bad)
		assert.ErrorIs(t, err, pixmap.ErrBadQuadrants)
	})
}
