package pixmap

import "github.com/katalvlaran/pixelgrid/geom"

// Combiner merges the values of two corresponding pixels into one.
type Combiner[T comparable] func(a, b T) T

// Combine walks two maps of identical geometry in lock-step and produces
// a third map whose every pixel is fn(a-pixel, b-pixel). Neither input
// is mutated. Where one side is subdivided more finely than the other,
// the coarser leaf is split virtually, so the result's structure follows
// the finer of the two trees before eager merging collapses uniform
// quadrants bottom-up.
//
// Returns ErrGeometryMismatch when the backing squares, cell sizes or
// logical bounds differ. Complexity: O(nodes of the finer structure).
func Combine[T comparable](a, b *Map[T], fn Combiner[T]) (*Map[T], error) {
	if a.root.region != b.root.region || a.cellSize != b.cellSize || a.bounds != b.bounds {
		return nil, ErrGeometryMismatch
	}
	out := &Map[T]{
		bounds:   a.bounds,
		cellSize: a.cellSize,
	}
	out.root = combineNodes(&a.root, &b.root, fn)

	return out, nil
}

// CombineInto is Combine with the result written over a: a's tree is
// replaced wholesale by the combined tree.
func CombineInto[T comparable](a, b *Map[T], fn Combiner[T]) error {
	out, err := Combine(a, b, fn)
	if err != nil {
		return err
	}
	a.root = out.root

	return nil
}

func combineNodes[T comparable](a, b *Node[T], fn Combiner[T]) Node[T] {
	if a.children == nil && b.children == nil {
		return newNode(a.region, fn(a.value, b.value), true)
	}

	out := newNode(a.region, a.value, true)
	out.children = &[4]Node[T]{}
	for _, q := range Quadrants {
		ca := quadrantView(a, q)
		cb := quadrantView(b, q)
		out.children[q] = combineNodes(ca, cb, fn)
	}
	out.merge()

	return out
}

// quadrantView returns the child in quadrant q, splitting a leaf
// virtually: the synthetic child covers the quadrant's region with the
// leaf's value, without mutating the original tree.
func quadrantView[T comparable](n *Node[T], q Quadrant) *Node[T] {
	if n.children != nil {
		return &n.children[q]
	}
	v := newNode(n.region.Child(q), n.value, n.dirty)

	return &v
}

// Union returns a map that is true wherever either input is true.
func Union(a, b *Map[bool]) (*Map[bool], error) {
	return Combine(a, b, func(x, y bool) bool { return x || y })
}

// Intersect returns a map that is true wherever both inputs are true.
func Intersect(a, b *Map[bool]) (*Map[bool], error) {
	return Combine(a, b, func(x, y bool) bool { return x && y })
}

// Subtract returns a map that is true wherever a is true and b is not.
func Subtract(a, b *Map[bool]) (*Map[bool], error) {
	return Combine(a, b, func(x, y bool) bool { return x && !y })
}

// Xor returns a map that is true wherever exactly one input is true.
func Xor(a, b *Map[bool]) (*Map[bool], error) {
	return Combine(a, b, func(x, y bool) bool { return x != y })
}

// CombineRect applies fn to every pixel pair within rect only, mutating
// a in place and leaving pixels outside rect untouched. rect is clipped
// to the logical bounds.
func CombineRect[T comparable](a, b *Map[T], rect geom.Rect, fn Combiner[T]) error {
	if a.root.region != b.root.region || a.cellSize != b.cellSize {
		return ErrGeometryMismatch
	}
	sub := rect.Intersect(a.bounds)
	if sub.Empty() {
		return nil
	}

	type update struct {
		rect  geom.Rect
		value T
	}
	var updates []update
	a.VisitRect(sub, func(na *Node[T], suba geom.Rect) {
		b.VisitRect(suba, func(nb *Node[T], subb geom.Rect) {
			updates = append(updates, update{
				rect:  subb,
				value: fn(na.value, nb.value),
			})
		})
	})
	for _, u := range updates {
		a.root.drawRect(u.rect, a.cellSize, u.value)
	}

	return nil
}
