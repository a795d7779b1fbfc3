package pixmap

import "github.com/katalvlaran/pixelgrid/geom"

// VisitNeighbors enumerates the leaf or leaves abutting the given region
// on the edge (or corner, for diagonal directions) in the given
// direction. A query region smaller than its neighbor yields that one
// larger leaf; a query region larger than its neighbors yields every
// smaller leaf along the shared edge. The navigator re-descends from the
// root with boundary comparisons — nodes carry no parent pointers.
//
// Leaves are offered to pred first; visitor receives those accepted,
// together with the intersection of the leaf's region and the one-pixel
// edge strip. Queries at the map border produce no visits in that
// direction. Complexity: O(log S + neighbors found).
func (m *Map[T]) VisitNeighbors(region geom.Rect, dir geom.Direction, pred LeafPredicate[T], visitor LeafVisitor[T]) {
	rect := region.Intersect(m.bounds)
	if rect.Empty() {
		return
	}
	edge := outerEdge(rect, dir).Intersect(m.bounds)
	if edge.Empty() {
		return
	}
	m.root.visitLeavesInRect(edge, func(n *Node[T], sub geom.Rect) {
		if pred == nil || pred(n, sub) {
			visitor(n, sub)
		}
	})
}

// VisitAllNeighbors queries all eight directions in clockwise order from
// North.
func (m *Map[T]) VisitAllNeighbors(region geom.Rect, pred LeafPredicate[T], visitor LeafVisitor[T]) {
	for _, d := range geom.AllDirections {
		m.VisitNeighbors(region, d, pred, visitor)
	}
}

// VisitCardinalNeighbors queries N, E, S and W.
func (m *Map[T]) VisitCardinalNeighbors(region geom.Rect, pred LeafPredicate[T], visitor LeafVisitor[T]) {
	for _, d := range geom.CardinalDirections {
		m.VisitNeighbors(region, d, pred, visitor)
	}
}

// VisitDiagonalNeighbors queries NE, SE, SW and NW.
func (m *Map[T]) VisitDiagonalNeighbors(region geom.Rect, pred LeafPredicate[T], visitor LeafVisitor[T]) {
	for _, d := range geom.DiagonalDirections {
		m.VisitNeighbors(region, d, pred, visitor)
	}
}

// outerEdge returns the one-pixel-thick strip just across the given edge
// of rect: a full side strip for cardinal directions, a single corner
// pixel for diagonals.
func outerEdge(rect geom.Rect, dir geom.Direction) geom.Rect {
	switch dir {
	case geom.North:
		return geom.Rect{
			Min: geom.Pt(rect.Min.X, rect.Max.Y),
			Max: geom.Pt(rect.Max.X, rect.Max.Y+1),
		}
	case geom.South:
		return geom.Rect{
			Min: geom.Pt(rect.Min.X, rect.Min.Y-1),
			Max: geom.Pt(rect.Max.X, rect.Min.Y),
		}
	case geom.East:
		return geom.Rect{
			Min: geom.Pt(rect.Max.X, rect.Min.Y),
			Max: geom.Pt(rect.Max.X+1, rect.Max.Y),
		}
	case geom.West:
		return geom.Rect{
			Min: geom.Pt(rect.Min.X-1, rect.Min.Y),
			Max: geom.Pt(rect.Min.X, rect.Max.Y),
		}
	case geom.NorthEast:
		return geom.Rect{
			Min: rect.Max,
			Max: rect.Max.Add(geom.Pt(1, 1)),
		}
	case geom.NorthWest:
		return geom.Rect{
			Min: geom.Pt(rect.Min.X-1, rect.Max.Y),
			Max: geom.Pt(rect.Min.X, rect.Max.Y+1),
		}
	case geom.SouthEast:
		return geom.Rect{
			Min: geom.Pt(rect.Max.X, rect.Min.Y-1),
			Max: geom.Pt(rect.Max.X+1, rect.Min.Y),
		}
	case geom.SouthWest:
		return geom.Rect{
			Min: rect.Min.Sub(geom.Pt(1, 1)),
			Max: rect.Min,
		}
	}

	return geom.Rect{}
}
