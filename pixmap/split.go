package pixmap

// Split partitions the map into four quadrant maps, one per Quadrant,
// each a deep copy of the corresponding subtree. The quadrants keep
// their global coordinates, so leaf regions, paths drawn into them, and
// a later Join all line up with the original map. The four results share
// no nodes with the receiver or each other; the sanctioned way to run
// batch mutations in parallel is to Split, mutate each quadrant on its
// own goroutine, and Join.
//
// A quadrant whose square lies entirely outside the logical bounds has
// empty bounds and rejects point access. Returns ErrNotSplit when the
// backing square is already a single cell.
func (m *Map[T]) Split() ([4]*Map[T], error) {
	if m.root.region.IsUnit(m.cellSize) {
		return [4]*Map[T]{}, ErrNotSplit
	}

	var out [4]*Map[T]
	for _, q := range Quadrants {
		var root Node[T]
		if m.root.children != nil {
			root = m.root.children[q].clone()
		} else {
			root = newNode(m.root.region.Child(q), m.root.value, m.root.dirty)
		}
		out[q] = &Map[T]{
			root:     root,
			bounds:   m.bounds.Intersect(root.region.Rect()),
			cellSize: m.cellSize,
		}
	}

	return out, nil
}

// Join recombines four quadrant maps, indexed by Quadrant, into one map
// covering their union. The quadrants must have equal backing sizes and
// cell sizes and sit adjacent in the 2×2 arrangement their indices name;
// otherwise Join returns ErrBadQuadrants. Subtrees are deep-copied, so
// the inputs stay usable, and the joined root merges eagerly when all
// four quadrants ended up uniform with the same value. The result is
// dirty exactly when any input is.
func Join[T comparable](quads [4]*Map[T]) (*Map[T], error) {
	for i := range quads {
		if quads[i] == nil {
			return nil, ErrBadQuadrants
		}
	}
	size := quads[BottomLeft].root.region.Size()
	cellSize := quads[BottomLeft].cellSize
	parent := NewRegion(quads[BottomLeft].root.region.X(), quads[BottomLeft].root.region.Y(), 2*size)
	for _, q := range Quadrants {
		r := quads[q].root.region
		if r.Size() != size || quads[q].cellSize != cellSize || r != parent.Child(q) {
			return nil, ErrBadQuadrants
		}
	}

	out := &Map[T]{
		root:     newNode(parent, quads[BottomLeft].root.value, false),
		cellSize: cellSize,
	}
	out.root.children = &[4]Node[T]{}
	dirty := false
	for _, q := range Quadrants {
		out.root.children[q] = quads[q].root.clone()
		dirty = dirty || out.root.children[q].dirty
		out.bounds = out.bounds.Union(quads[q].bounds)
	}
	out.root.merge()
	out.root.dirty = dirty

	return out, nil
}
