package pixmap

import "github.com/katalvlaran/pixelgrid/geom"

// Node is a quadtree node: either a leaf holding one value for its whole
// square region, or a branch owning exactly four children, one per
// quadrant. Nodes form a strict ownership tree with no parent pointers;
// algorithms that need global position re-descend from the root.
//
// The exported accessors form a stable recursive record of the tree
// shape (leaf vs. branch, child order, value), so an external serializer
// can persist and restore the exact structure rather than a flattened
// pixel grid.
type Node[T comparable] struct {
	region   Region
	value    T
	children *[4]Node[T]
	dirty    bool
}

func newNode[T comparable](region Region, value T, dirty bool) Node[T] {
	return Node[T]{region: region, value: value, dirty: dirty}
}

// Region returns the square region this node covers.
func (n *Node[T]) Region() Region { return n.region }

// Value returns the node's value. For a branch this is the value the
// region held when it was last uniform.
func (n *Node[T]) Value() T { return n.value }

// Dirty reports whether this node or any descendant changed since the
// dirty state was last cleared.
func (n *Node[T]) Dirty() bool { return n.dirty }

// IsLeaf reports whether the node has no children.
func (n *Node[T]) IsLeaf() bool { return n.children == nil }

// Child returns the child node in the given quadrant, or nil for a leaf.
func (n *Node[T]) Child(q Quadrant) *Node[T] {
	if n.children == nil {
		return nil
	}

	return &n.children[q]
}

// FillProfile classifies the node's region against the predicate:
// FillFull when every pixel satisfies it, FillEmpty when none does,
// FillMixed otherwise. Complexity: O(nodes in subtree), with
// short-circuit on the first mixed child pair.
func (n *Node[T]) FillProfile(pred Predicate[T]) CellFill {
	if n.children == nil {
		if pred(n.value) {
			return FillFull
		}

		return FillEmpty
	}

	first := n.children[0].FillProfile(pred)
	if first == FillMixed {
		return FillMixed
	}
	for i := 1; i < 4; i++ {
		if n.children[i].FillProfile(pred) != first {
			return FillMixed
		}
	}

	return first
}

// setValue overwrites the node's value, discarding any children, and
// marks the node dirty.
func (n *Node[T]) setValue(value T) {
	n.dirty = true
	n.value = value
	n.children = nil
}

// subdivide splits a leaf into four children carrying the leaf's value
// and dirty state. No-op on a branch.
func (n *Node[T]) subdivide() {
	if n.children != nil {
		return
	}
	n.children = &[4]Node[T]{
		newNode(n.region.Child(BottomLeft), n.value, n.dirty),
		newNode(n.region.Child(BottomRight), n.value, n.dirty),
		newNode(n.region.Child(TopRight), n.value, n.dirty),
		newNode(n.region.Child(TopLeft), n.value, n.dirty),
	}
}

// merge collapses the node back into a leaf when all four children are
// leaves holding the same value. Applied eagerly after every mutation so
// the tree never holds a branch of four equal leaves.
func (n *Node[T]) merge() {
	if n.children == nil {
		return
	}
	v := n.children[0].value
	for i := range n.children {
		c := &n.children[i]
		if c.children != nil || c.value != v {
			return
		}
	}
	n.setValue(v)
}

// recalcDirty re-derives a branch's dirty flag as the OR of its
// children's flags.
func (n *Node[T]) recalcDirty() {
	if n.children == nil {
		return
	}
	n.dirty = false
	for i := range n.children {
		if n.children[i].dirty {
			n.dirty = true

			return
		}
	}
}

// clearDirtyShallow resets only this node's flag.
func (n *Node[T]) clearDirtyShallow() {
	n.dirty = false
}

// findNode descends to the leaf containing p. p must lie within the
// node's region. Complexity: O(depth).
func (n *Node[T]) findNode(p geom.Point) *Node[T] {
	for n.children != nil {
		n = &n.children[n.region.QuadrantFor(p)]
	}

	return n
}

// nodePath descends to the leaf containing p, recording the quadrant
// choices taken.
func (n *Node[T]) nodePath(p geom.Point) (*Node[T], NodePath) {
	path := RootPath
	for n.children != nil {
		q := n.region.QuadrantFor(p)
		path = path.Append(q)
		n = &n.children[q]
	}

	return n, path
}

// findByPath resolves a path to a node, or nil when the path runs past
// a leaf.
func (n *Node[T]) findByPath(path NodePath) *Node[T] {
	for i := 0; i < path.Depth(); i++ {
		if n.children == nil {
			return nil
		}
		n = &n.children[path.QuadrantAt(i)]
	}

	return n
}

// setPixel sets the value of the single cell containing p, subdividing
// down to the minimum cell size as needed and eagerly merging afterward.
// p must lie within the node's region.
func (n *Node[T]) setPixel(p geom.Point, cellSize int, value T) {
	if n.children == nil && n.value == value {
		return
	}
	if n.region.IsUnit(cellSize) {
		n.setValue(value)

		return
	}
	n.subdivide()
	n.children[n.region.QuadrantFor(p)].setPixel(p, cellSize, value)
	n.merge()
	n.recalcDirty()
}

// drawRect sets the value of every cell overlapping rect, writing whole
// subtrees wherever rect fully covers a node's region.
func (n *Node[T]) drawRect(rect geom.Rect, cellSize int, value T) {
	if rect.ContainsRect(n.region.Rect()) {
		n.setValue(value)

		return
	}
	sub := rect.Intersect(n.region.Rect())
	if sub.Empty() {
		return
	}
	if n.children == nil && n.value == value {
		return
	}
	if n.region.IsUnit(cellSize) {
		n.setValue(value)

		return
	}
	n.subdivide()
	for i := range n.children {
		n.children[i].drawRect(sub, cellSize, value)
	}
	n.merge()
	n.recalcDirty()
}

// visitLeaves invokes visitor for every leaf in pre-order, bottom-left
// quadrant first.
func (n *Node[T]) visitLeaves(visitor func(n *Node[T])) {
	if n.children == nil {
		visitor(n)

		return
	}
	for i := range n.children {
		n.children[i].visitLeaves(visitor)
	}
}

// visitLeavesInRect invokes visitor for every leaf overlapping rect,
// passing the intersection of the leaf's region with rect.
func (n *Node[T]) visitLeavesInRect(rect geom.Rect, visitor LeafVisitor[T]) {
	sub := n.region.Rect().Intersect(rect)
	if sub.Empty() {
		return
	}
	if n.children == nil {
		visitor(n, sub)

		return
	}
	for i := range n.children {
		n.children[i].visitLeavesInRect(rect, visitor)
	}
}

// visitPruned walks the tree giving branch the chance to prune whole
// subtrees. Leaves overlapping rect are passed to leaf with their
// intersection sub-rect.
func (n *Node[T]) visitPruned(rect geom.Rect, branch BranchVisitor[T], leaf LeafVisitor[T]) {
	sub := n.region.Rect().Intersect(rect)
	if sub.Empty() {
		return
	}
	if n.children == nil {
		leaf(n, sub)

		return
	}
	if branch != nil && branch(n) == Skip {
		return
	}
	for i := range n.children {
		n.children[i].visitPruned(rect, branch, leaf)
	}
}

// anyLeavesInRect reports whether any leaf overlapping rect matches f,
// short-circuiting on the first match. The bool result is meaningless
// when overlapped is false.
func (n *Node[T]) anyLeavesInRect(rect geom.Rect, f LeafPredicate[T]) (matched, overlapped bool) {
	sub := n.region.Rect().Intersect(rect)
	if sub.Empty() {
		return false, false
	}
	if n.children == nil {
		return f(n, sub), true
	}
	for i := range n.children {
		if m, o := n.children[i].anyLeavesInRect(rect, f); o && m {
			return true, true
		}
	}

	return false, true
}

// allLeavesInRect reports whether every leaf overlapping rect matches f,
// short-circuiting on the first failure.
func (n *Node[T]) allLeavesInRect(rect geom.Rect, f LeafPredicate[T]) (matched, overlapped bool) {
	sub := n.region.Rect().Intersect(rect)
	if sub.Empty() {
		return false, false
	}
	if n.children == nil {
		return f(n, sub), true
	}
	for i := range n.children {
		if m, o := n.children[i].allLeavesInRect(rect, f); o && !m {
			return false, true
		}
	}

	return true, true
}

// visitDirtyLeaves invokes visitor for every dirty leaf, pruning clean
// branches.
func (n *Node[T]) visitDirtyLeaves(visitor func(n *Node[T])) {
	if !n.dirty {
		return
	}
	if n.children == nil {
		visitor(n)

		return
	}
	for i := range n.children {
		n.children[i].visitDirtyLeaves(visitor)
	}
}

// drainDirtyLeaves visits every dirty leaf and clears dirty flags on the
// way down.
func (n *Node[T]) drainDirtyLeaves(visitor func(n *Node[T])) {
	if !n.dirty {
		return
	}
	n.dirty = false
	if n.children == nil {
		visitor(n)

		return
	}
	for i := range n.children {
		n.children[i].drainDirtyLeaves(visitor)
	}
}

// visitNodes invokes visitor for every node, branches included,
// in pre-order.
func (n *Node[T]) visitNodes(visitor func(n *Node[T])) {
	visitor(n)
	if n.children == nil {
		return
	}
	for i := range n.children {
		n.children[i].visitNodes(visitor)
	}
}

// clone returns a deep copy of the subtree.
func (n *Node[T]) clone() Node[T] {
	out := *n
	if n.children != nil {
		out.children = &[4]Node[T]{}
		for i := range n.children {
			out.children[i] = n.children[i].clone()
		}
	}

	return out
}
