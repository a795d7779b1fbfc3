package pixmap

import (
	"math/bits"

	"github.com/katalvlaran/pixelgrid/geom"
)

// Map is an addressable raster backed by an MX quadtree. It owns the
// root node, a logical (possibly non-square) pixel size distinct from
// the tree's square power-of-two backing region, and the minimum cell
// size below which subdivision stops.
//
// The zero value is not usable; construct with New.
type Map[T comparable] struct {
	root     Node[T]
	bounds   geom.Rect
	cellSize int
}

// New creates a Map with the given logical pixel dimensions, an initial
// uniform value, and a minimum cell size. The backing square side is the
// smallest power of two ≥ max(width, height).
//
// Returns ErrBadSize when width or height is not positive, and
// ErrBadCellSize when cellSize is not a power of two or exceeds the
// backing side.
func New[T comparable](width, height int, initial T, cellSize int) (*Map[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadSize
	}
	side := ceilPow2(max(width, height))
	if cellSize < 1 || !isPow2(cellSize) || cellSize > side {
		return nil, ErrBadCellSize
	}

	return &Map[T]{
		root:     newNode(NewRegion(0, 0, side), initial, true),
		bounds:   geom.NewRect(0, 0, width, height),
		cellSize: cellSize,
	}, nil
}

// Bounds returns the map's logical bounds. Every point and shape access
// is defined within this rectangle only.
func (m *Map[T]) Bounds() geom.Rect {
	return m.bounds
}

// Region returns the power-of-two backing square of the quadtree.
func (m *Map[T]) Region() Region {
	return m.root.region
}

// CellSize returns the minimum cell size. A node whose region is this
// size cannot be subdivided further.
func (m *Map[T]) CellSize() int {
	return m.cellSize
}

// Root returns the root node for read-only structural walks, such as
// serialization.
func (m *Map[T]) Root() *Node[T] {
	return &m.root
}

// Get returns the value of the pixel at p, or ErrOutOfBounds when p lies
// outside the logical bounds. Complexity: O(log S).
func (m *Map[T]) Get(p geom.Point) (T, error) {
	if !m.bounds.Contains(p) {
		var zero T

		return zero, ErrOutOfBounds
	}

	return m.root.findNode(p).value, nil
}

// Set assigns value to the pixel at p, or returns ErrOutOfBounds when p
// lies outside the logical bounds. Complexity: O(log S).
func (m *Map[T]) Set(p geom.Point, value T) error {
	if !m.bounds.Contains(p) {
		return ErrOutOfBounds
	}
	m.root.setPixel(p, m.cellSize, value)

	return nil
}

// Clear discards all pixel data and sets the whole map to value.
func (m *Map[T]) Clear(value T) {
	m.root.setValue(value)
}

// PathTo returns the path from the root to the leaf containing p, or
// ErrOutOfBounds when p lies outside the logical bounds.
func (m *Map[T]) PathTo(p geom.Point) (NodePath, error) {
	if !m.bounds.Contains(p) {
		return RootPath, ErrOutOfBounds
	}
	_, path := m.root.nodePath(p)

	return path, nil
}

// NodeAt resolves a path previously produced by PathTo. Returns
// ErrBadPath when the path runs past a leaf (the tree changed shape).
func (m *Map[T]) NodeAt(path NodePath) (*Node[T], error) {
	n := m.root.findByPath(path)
	if n == nil {
		return nil, ErrBadPath
	}

	return n, nil
}

// Visit invokes visitor for every leaf in pre-order.
func (m *Map[T]) Visit(visitor func(n *Node[T])) {
	m.root.visitLeaves(visitor)
}

// VisitRect invokes visitor for every leaf overlapping rect, passing the
// intersection of the leaf's region, rect, and the logical bounds.
func (m *Map[T]) VisitRect(rect geom.Rect, visitor LeafVisitor[T]) {
	sub := rect.Intersect(m.bounds)
	if sub.Empty() {
		return
	}
	m.root.visitLeavesInRect(sub, visitor)
}

// VisitPruned walks the tree within the logical bounds, consulting
// branch before descending into each branch node. A branch callback
// returning Skip prunes the subtree; a typical callback derives its
// Decision from Node.FillProfile. leaf receives every non-pruned leaf
// with its clipped sub-rectangle.
func (m *Map[T]) VisitPruned(branch BranchVisitor[T], leaf LeafVisitor[T]) {
	m.root.visitPruned(m.bounds, branch, leaf)
}

// AnyInRect reports whether any leaf overlapping rect matches f.
// overlapped is false when rect does not intersect the logical bounds,
// in which case matched is meaningless.
func (m *Map[T]) AnyInRect(rect geom.Rect, f LeafPredicate[T]) (matched, overlapped bool) {
	sub := rect.Intersect(m.bounds)
	if sub.Empty() {
		return false, false
	}

	return m.root.anyLeavesInRect(sub, f)
}

// AllInRect reports whether every leaf overlapping rect matches f.
// overlapped is false when rect does not intersect the logical bounds.
func (m *Map[T]) AllInRect(rect geom.Rect, f LeafPredicate[T]) (matched, overlapped bool) {
	sub := rect.Intersect(m.bounds)
	if sub.Empty() {
		return false, false
	}

	return m.root.allLeavesInRect(sub, f)
}

// CollectPoints gathers every pixel coordinate whose value satisfies
// pred. Uniform regions contribute their pixels in bulk from a single
// leaf without tree descent per pixel.
func (m *Map[T]) CollectPoints(pred Predicate[T]) map[geom.Point]struct{} {
	out := make(map[geom.Point]struct{})
	m.VisitRect(m.bounds, func(n *Node[T], sub geom.Rect) {
		if !pred(n.value) {
			return
		}
		sub.EachPixel(func(p geom.Point) {
			out[p] = struct{}{}
		})
	})

	return out
}

// VisitDirty invokes visitor for every dirty leaf, pruning any branch
// whose dirty flag is false. Dirty state is not changed.
func (m *Map[T]) VisitDirty(visitor func(n *Node[T])) {
	m.root.visitDirtyLeaves(visitor)
}

// DrainDirty invokes visitor for every dirty leaf and clears the dirty
// flags of all nodes traversed.
func (m *Map[T]) DrainDirty(visitor func(n *Node[T])) {
	m.root.drainDirtyLeaves(visitor)
}

// ClearDirty resets dirty bookkeeping. When deep is true every node in
// the tree is marked clean; otherwise only the root flag is reset,
// leaving descendants marked — useful for consumers that track dirtiness
// per level incrementally.
func (m *Map[T]) ClearDirty(deep bool) {
	if deep {
		m.DrainDirty(func(*Node[T]) {})

		return
	}
	m.root.clearDirtyShallow()
}

// Stats describes the current shape of the quadtree.
type Stats struct {
	// Nodes is the total node count, branches included.
	Nodes int

	// Leaves is the leaf node count.
	Leaves int

	// UnitCells is the number of leaves at the minimum cell size.
	UnitCells int
}

// Stats traverses the tree and collects node counts.
func (m *Map[T]) Stats() Stats {
	var s Stats
	m.root.visitNodes(func(n *Node[T]) {
		s.Nodes++
		if n.IsLeaf() {
			s.Leaves++
			if n.region.IsUnit(m.cellSize) {
				s.UnitCells++
			}
		}
	})

	return s
}

// isPow2 reports whether v is a positive power of two.
func isPow2(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// ceilPow2 returns the smallest power of two ≥ v, for v ≥ 1.
func ceilPow2(v int) int {
	if v <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(v-1))
}
