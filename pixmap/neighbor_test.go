package pixmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixelgrid/geom"
	"github.com/katalvlaran/pixelgrid/pixmap"
)

// leafRectAt returns the region rect of the leaf containing p.
func leafRectAt(t *testing.T, m *pixmap.Map[int], p geom.Point) geom.Rect {
	t.Helper()
	path, err := m.PathTo(p)
	require.NoError(t, err)
	n, err := m.NodeAt(path)
	require.NoError(t, err)

	return n.Region().Rect()
}

//----------------------------------------------------------------------------//
// VisitNeighbors Tests
//----------------------------------------------------------------------------//

// TestVisitNeighbors_SmallToLarge: a unit cell next to a large uniform
// leaf sees exactly that one leaf.
func TestVisitNeighbors_SmallToLarge(t *testing.T) {
	m, err := pixmap.New[int](16, 16, 0, 1)
	require.NoError(t, err)
	// Subdivide the bottom-left area; the right half of the map stays one
	// 8×8 leaf per quadrant.
	require.NoError(t, m.Set(geom.Pt(7, 0), 1))

	unit := leafRectAt(t, m, geom.Pt(7, 0))
	require.Equal(t, geom.NewRect(7, 0, 1, 1), unit)

	var seen []geom.Rect
	m.VisitNeighbors(unit, geom.East, nil, func(n *pixmap.Node[int], sub geom.Rect) {
		seen = append(seen, n.Region().Rect())
	})
	require.Len(t, seen, 1)
	assert.Equal(t, geom.NewRect(8, 0, 8, 8), seen[0])
}

// TestVisitNeighbors_LargeToSmall: a large leaf bordering a subdivided
// area sees every small leaf along the shared edge.
func TestVisitNeighbors_LargeToSmall(t *testing.T) {
	m, err := pixmap.New[int](16, 16, 0, 1)
	require.NoError(t, err)
	// Fragment the column just left of x=8 at two heights.
	require.NoError(t, m.Set(geom.Pt(7, 1), 1))
	require.NoError(t, m.Set(geom.Pt(7, 6), 2))

	large := leafRectAt(t, m, geom.Pt(12, 4))
	require.Equal(t, geom.NewRect(8, 0, 8, 8), large)

	count := 0
	covered := 0
	m.VisitNeighbors(large, geom.West, nil, func(n *pixmap.Node[int], sub geom.Rect) {
		count++
		assert.Equal(t, 7, sub.Min.X)
		assert.Equal(t, 8, sub.Max.X)
		covered += sub.Dy()
	})
	// The edge strip x=7, y∈[0,8) decomposes into several leaves that
	// jointly cover all 8 rows.
	assert.Greater(t, count, 2)
	assert.Equal(t, 8, covered)
}

// TestVisitNeighbors_Diagonal sees the single corner-touching leaf.
func TestVisitNeighbors_Diagonal(t *testing.T) {
	m, err := pixmap.New[int](8, 8, 0, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(geom.Pt(3, 3), 1))

	unit := leafRectAt(t, m, geom.Pt(3, 3))
	var seen []geom.Rect
	m.VisitNeighbors(unit, geom.NorthEast, nil, func(n *pixmap.Node[int], sub geom.Rect) {
		seen = append(seen, sub)
	})
	require.Len(t, seen, 1)
	assert.Equal(t, geom.NewRect(4, 4, 1, 1), seen[0])
}

// TestVisitNeighbors_MapEdge yields nothing beyond the border.
func TestVisitNeighbors_MapEdge(t *testing.T) {
	m, err := pixmap.New[int](8, 8, 0, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(geom.Pt(0, 0), 1))

	unit := leafRectAt(t, m, geom.Pt(0, 0))
	for _, d := range []geom.Direction{geom.West, geom.South, geom.SouthWest, geom.NorthWest, geom.SouthEast} {
		m.VisitNeighbors(unit, d, nil, func(n *pixmap.Node[int], sub geom.Rect) {
			t.Errorf("direction %v yielded %v beyond the border", d, sub)
		})
	}
}

// TestVisitNeighbors_Predicate filters leaves before the visitor runs.
func TestVisitNeighbors_Predicate(t *testing.T) {
	m, err := pixmap.New[int](8, 8, 0, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(geom.Pt(4, 4), 9))
	require.NoError(t, m.Set(geom.Pt(3, 4), 1))

	unit := leafRectAt(t, m, geom.Pt(3, 4))
	visits := 0
	m.VisitNeighbors(unit, geom.East,
		func(n *pixmap.Node[int], _ geom.Rect) bool { return n.Value() != 9 },
		func(n *pixmap.Node[int], _ geom.Rect) { visits++ },
	)
	assert.Zero(t, visits, "value 9 neighbor should be filtered")
}

// TestVisitCardinalAndAll compares the helper fan-outs.
func TestVisitCardinalAndAll(t *testing.T) {
	m, err := pixmap.New[int](8, 8, 0, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(geom.Pt(3, 3), 1))
	unit := leafRectAt(t, m, geom.Pt(3, 3))

	cardinal, all, diagonal := 0, 0, 0
	m.VisitCardinalNeighbors(unit, nil, func(*pixmap.Node[int], geom.Rect) { cardinal++ })
	m.VisitAllNeighbors(unit, nil, func(*pixmap.Node[int], geom.Rect) { all++ })
	m.VisitDiagonalNeighbors(unit, nil, func(*pixmap.Node[int], geom.Rect) { diagonal++ })

	assert.Equal(t, 4, cardinal)
	assert.Equal(t, 4, diagonal)
	assert.Equal(t, cardinal+diagonal, all)
}
