package pixmap

import "github.com/katalvlaran/pixelgrid/geom"

// RayCastResult reports the outcome of a ray cast.
type RayCastResult struct {
	// Hit is true when some leaf satisfied the hit predicate.
	Hit bool

	// Point is the first pixel inside the hit leaf, meaningful only when
	// Hit is true.
	Point geom.Point

	// Distance is the Euclidean distance from the ray origin to Point,
	// meaningful only when Hit is true.
	Distance float64

	// Traversed counts the leaves inspected, the hit leaf included.
	Traversed int
}

// RayCast walks the segment pixel by pixel from l.A toward l.B and
// inspects the leaf under each pixel, skipping ahead past each
// non-hitting leaf's region so every leaf along the ray is inspected
// exactly once. The first leaf for which hit returns true stops the
// cast; the result records the entry pixel, its distance from l.A, and
// the number of leaves inspected. Pixels outside the logical bounds are
// stepped over without counting.
//
// Complexity: O(leaves crossed × log S).
func (m *Map[T]) RayCast(l geom.Line, hit LeafPredicate[T]) RayCastResult {
	var res RayCastResult
	it := geom.NewLineIterator(l)
	for {
		p, ok := it.Next()
		if !ok {
			return res
		}
		if !m.bounds.Contains(p) {
			continue
		}
		n := m.root.findNode(p)
		res.Traversed++
		sub := n.region.Rect().Intersect(m.bounds)
		if hit(n, sub) {
			res.Hit = true
			res.Point = p
			res.Distance = geom.Dist(l.A, p)

			return res
		}
		it.SeekPast(sub)
	}
}
