package pixmap

import "github.com/katalvlaran/pixelgrid/geom"

// Shape is the union of geometric primitives the rasterizer accepts.
// Exactly one field is meaningful, selected by Kind.
type Shape struct {
	Kind        ShapeKind
	Point       geom.Point
	Line        geom.Line
	Rect        geom.Rect
	RotatedRect geom.RotatedRect
	Circle      geom.Circle
}

// ShapeKind selects the active member of a Shape.
type ShapeKind int

const (
	ShapePoint ShapeKind = iota
	ShapeLine
	ShapeRect
	ShapeRotatedRect
	ShapeCircle
)

// PointShape wraps a point as a Shape.
func PointShape(p geom.Point) Shape { return Shape{Kind: ShapePoint, Point: p} }

// LineShape wraps a segment as a Shape.
func LineShape(l geom.Line) Shape { return Shape{Kind: ShapeLine, Line: l} }

// RectShape wraps a rectangle as a Shape.
func RectShape(r geom.Rect) Shape { return Shape{Kind: ShapeRect, Rect: r} }

// RotatedRectShape wraps a rotated rectangle as a Shape.
func RotatedRectShape(rr geom.RotatedRect) Shape {
	return Shape{Kind: ShapeRotatedRect, RotatedRect: rr}
}

// CircleShape wraps a circle as a Shape.
func CircleShape(c geom.Circle) Shape { return Shape{Kind: ShapeCircle, Circle: c} }

// Draw rasterizes the shape with the given value. It reports whether the
// shape overlapped the logical bounds; a fully out-of-bounds shape is a
// no-op, not an error. Shapes partially outside are clipped.
func (m *Map[T]) Draw(s Shape, value T) bool {
	switch s.Kind {
	case ShapePoint:
		return m.DrawPoint(s.Point, value)
	case ShapeLine:
		return m.DrawLine(s.Line, value)
	case ShapeRect:
		return m.DrawRect(s.Rect, value)
	case ShapeRotatedRect:
		return m.DrawRotatedRect(s.RotatedRect, value)
	case ShapeCircle:
		return m.DrawCircle(s.Circle, value)
	}

	return false
}

// DrawPoint sets a single pixel, clipping silently: unlike Set, an
// out-of-bounds point is a no-op reported as false.
func (m *Map[T]) DrawPoint(p geom.Point, value T) bool {
	if !m.bounds.Contains(p) {
		return false
	}
	m.root.setPixel(p, m.cellSize, value)

	return true
}

// DrawLine rasterizes a segment using Bresenham stepping, batching each
// maximal horizontal run into one region write. Reports whether the
// segment overlapped the logical bounds.
func (m *Map[T]) DrawLine(l geom.Line, value T) bool {
	if !l.IntersectsRect(m.bounds) {
		return false
	}
	l.EachRun(func(y, x0, x1 int) {
		m.drawRun(y, x0, x1, value)
	})

	return true
}

// DrawRect fills an axis-aligned rectangle. A rectangle aligned with
// tree boundaries is a single bulk write; otherwise it decomposes into
// the tree's addressable sub-rectangles during descent. Reports whether
// the rectangle overlapped the logical bounds.
func (m *Map[T]) DrawRect(rect geom.Rect, value T) bool {
	sub := rect.Intersect(m.bounds)
	if sub.Empty() {
		return false
	}
	m.root.drawRect(sub, m.cellSize, value)

	return true
}

// DrawRotatedRect scan-converts a rotated rectangle: the largest
// inscribed axis-aligned rectangle is written in bulk, then each
// scanline span covers the remainder. Reports whether the shape's
// bounding box overlapped the logical bounds.
func (m *Map[T]) DrawRotatedRect(rr geom.RotatedRect, value T) bool {
	if !rr.AABB().Overlaps(m.bounds) {
		return false
	}
	inner := rr.InnerRect().Intersect(m.bounds)
	if !inner.Empty() {
		m.root.drawRect(inner, m.cellSize, value)
	}
	rr.EachSpan(func(y, x0, x1 int) {
		if y >= inner.Min.Y && y < inner.Max.Y && !inner.Empty() {
			// Rows crossing the inscribed rectangle only need the
			// flanks on either side of it.
			m.drawRun(y, x0, inner.Min.X-1, value)
			m.drawRun(y, inner.Max.X, x1, value)

			return
		}
		m.drawRun(y, x0, x1, value)
	})

	return true
}

// DrawCircle fills a circle using per-row spans: the inscribed square is
// written in bulk, then each row's span covers the remaining crescents.
// Reports whether the circle's bounding box overlapped the logical
// bounds.
func (m *Map[T]) DrawCircle(c geom.Circle, value T) bool {
	if !c.AABB().Overlaps(m.bounds) {
		return false
	}
	inner := c.InnerRect().Intersect(m.bounds)
	if !inner.Empty() {
		m.root.drawRect(inner, m.cellSize, value)
	}
	c.EachSpan(func(y, x0, x1 int) {
		if y >= inner.Min.Y && y < inner.Max.Y && !inner.Empty() {
			m.drawRun(y, x0, inner.Min.X-1, value)
			m.drawRun(y, inner.Max.X, x1, value)

			return
		}
		m.drawRun(y, x0, x1, value)
	})

	return true
}

// drawRun writes the inclusive horizontal run [x0,x1] on row y, clipped
// to the logical bounds.
func (m *Map[T]) drawRun(y, x0, x1 int, value T) {
	if x1 < x0 {
		return
	}
	run := geom.NewRect(x0, y, x1-x0+1, 1).Intersect(m.bounds)
	if run.Empty() {
		return
	}
	m.root.drawRect(run, m.cellSize, value)
}
