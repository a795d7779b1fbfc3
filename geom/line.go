package geom

// Line is a segment between two integer points, inclusive of both
// endpoints. Pixel traversal follows the classical Bresenham stepping
// from A toward B.
type Line struct {
	A, B Point
}

// Ln is shorthand for Line{a, b}.
func Ln(a, b Point) Line {
	return Line{A: a, B: b}
}

// IsHorizontal reports whether both endpoints share the same y.
func (l Line) IsHorizontal() bool {
	return l.A.Y == l.B.Y
}

// IsVertical reports whether both endpoints share the same x.
func (l Line) IsVertical() bool {
	return l.A.X == l.B.X
}

// IsAxisAligned reports whether the segment is horizontal or vertical.
func (l Line) IsAxisAligned() bool {
	return l.IsHorizontal() || l.IsVertical()
}

// AABB returns the tight half-open bounding rectangle of the segment.
func (l Line) AABB() Rect {
	r := RectFromCorners(l.A, l.B)
	r.Max = r.Max.Add(Pt(1, 1))

	return r
}

// EachPixel invokes fn for every pixel on the segment from A to B,
// inclusive, in traversal order. Complexity: O(max(|dx|,|dy|)).
func (l Line) EachPixel(fn func(p Point)) {
	it := NewLineIterator(l)
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		fn(p)
	}
}

// EachRun invokes fn once per maximal horizontal run of the segment's
// pixels, with the run's row and inclusive x extent. Batching runs keeps
// a rasterizer's write count proportional to the segment's vertical
// extent for shallow slopes.
func (l Line) EachRun(fn func(y, x0, x1 int)) {
	started := false
	var y, x0, x1 int
	l.EachPixel(func(p Point) {
		switch {
		case !started:
			started, y, x0, x1 = true, p.Y, p.X, p.X
		case p.Y == y && (p.X == x1+1 || p.X == x1-1):
			x1 = p.X
		default:
			if x0 > x1 {
				x0, x1 = x1, x0
			}
			fn(y, x0, x1)
			y, x0, x1 = p.Y, p.X, p.X
		}
	})
	if started {
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		fn(y, x0, x1)
	}
}

// IntersectsRect reports whether any part of the segment lies within r.
func (l Line) IntersectsRect(r Rect) bool {
	if r.Empty() {
		return false
	}
	if r.Contains(l.A) || r.Contains(l.B) {
		return true
	}
	// The segment may still cross the rectangle without either endpoint
	// inside it; test against each edge. Edges are expressed on the pixel
	// lattice with the Max corner pulled back inside the rectangle.
	in := Rect{Min: r.Min, Max: r.Max.Sub(Pt(1, 1))}
	edges := [4]Line{
		{Pt(in.Min.X, in.Min.Y), Pt(in.Max.X, in.Min.Y)},
		{Pt(in.Max.X, in.Min.Y), Pt(in.Max.X, in.Max.Y)},
		{Pt(in.Max.X, in.Max.Y), Pt(in.Min.X, in.Max.Y)},
		{Pt(in.Min.X, in.Max.Y), Pt(in.Min.X, in.Min.Y)},
	}
	for _, e := range edges {
		if segmentsIntersect(l.A, l.B, e.A, e.B) {
			return true
		}
	}

	return false
}

// segmentsIntersect reports whether segments pq and rs intersect,
// including collinear overlap.
func segmentsIntersect(p, q, r, s Point) bool {
	o1 := orientation(p, q, r)
	o2 := orientation(p, q, s)
	o3 := orientation(r, s, p)
	o4 := orientation(r, s, q)

	if o1 != o2 && o3 != o4 {
		return true
	}

	return (o1 == 0 && onSegment(p, r, q)) ||
		(o2 == 0 && onSegment(p, s, q)) ||
		(o3 == 0 && onSegment(r, p, s)) ||
		(o4 == 0 && onSegment(r, q, s))
}

// orientation returns 0 when a, b, c are collinear, 1 for clockwise and
// -1 for counterclockwise winding.
func orientation(a, b, c Point) int {
	v := (b.Y-a.Y)*(c.X-b.X) - (b.X-a.X)*(c.Y-b.Y)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}

	return 0
}

// onSegment reports whether collinear point b lies within the bounding
// box of segment ac.
func onSegment(a, b, c Point) bool {
	return b.X >= min(a.X, c.X) && b.X <= max(a.X, c.X) &&
		b.Y >= min(a.Y, c.Y) && b.Y <= max(a.Y, c.Y)
}

// LineIterator steps through the pixels of a segment one at a time.
// It supports skipping ahead past a rectangle, which ray casting uses to
// avoid revisiting pixels inside an already-inspected leaf region.
type LineIterator struct {
	cur, end  Point
	dx, dy    int
	sx, sy    int
	err       int
	exhausted bool
}

// NewLineIterator returns an iterator positioned on the first pixel of l.
func NewLineIterator(l Line) *LineIterator {
	dx := abs(l.B.X - l.A.X)
	dy := -abs(l.B.Y - l.A.Y)
	sx, sy := 1, 1
	if l.A.X > l.B.X {
		sx = -1
	}
	if l.A.Y > l.B.Y {
		sy = -1
	}

	return &LineIterator{
		cur: l.A, end: l.B,
		dx: dx, dy: dy,
		sx: sx, sy: sy,
		err: dx + dy,
	}
}

// Next returns the next pixel on the segment, or ok=false once the
// segment is exhausted.
func (it *LineIterator) Next() (Point, bool) {
	if it.exhausted {
		return Point{}, false
	}
	p := it.cur
	if it.cur == it.end {
		it.exhausted = true

		return p, true
	}
	it.advance()

	return p, true
}

// Peek returns the pixel Next would return, without advancing.
func (it *LineIterator) Peek() (Point, bool) {
	if it.exhausted {
		return Point{}, false
	}

	return it.cur, true
}

// SeekPast advances the iterator until the next pixel lies outside r.
func (it *LineIterator) SeekPast(r Rect) {
	for {
		p, ok := it.Peek()
		if !ok || !r.Contains(p) {
			return
		}
		_, _ = it.Next()
	}
}

func (it *LineIterator) advance() {
	e2 := 2 * it.err
	if e2 >= it.dy {
		it.err += it.dy
		it.cur.X += it.sx
	}
	if e2 <= it.dx {
		it.err += it.dx
		it.cur.Y += it.sy
	}
}
