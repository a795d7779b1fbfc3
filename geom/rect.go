package geom

import "fmt"

// Rect is an axis-aligned rectangle with an inclusive Min corner and an
// exclusive Max corner, in the manner of image.Rectangle. A Rect is empty
// when Max.X <= Min.X or Max.Y <= Min.Y.
type Rect struct {
	Min, Max Point
}

// NewRect returns the rectangle with bottom-left corner (x, y) and the
// given width and height.
func NewRect(x, y, w, h int) Rect {
	return Rect{Min: Pt(x, y), Max: Pt(x+w, y+h)}
}

// RectFromCorners returns the canonical rectangle spanning the two given
// corner points, in any order.
func RectFromCorners(a, b Point) Rect {
	if a.X > b.X {
		a.X, b.X = b.X, a.X
	}
	if a.Y > b.Y {
		a.Y, b.Y = b.Y, a.Y
	}

	return Rect{Min: a, Max: b}
}

// Dx returns the width of r.
func (r Rect) Dx() int {
	return r.Max.X - r.Min.X
}

// Dy returns the height of r.
func (r Rect) Dy() int {
	return r.Max.Y - r.Min.Y
}

// Area returns the number of pixels covered by r, or 0 if r is empty.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}

	return r.Dx() * r.Dy()
}

// Empty reports whether r contains no pixels.
func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Contains reports whether p lies within r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// ContainsRect reports whether every pixel of s lies within r.
// An empty s is contained by any rectangle.
func (r Rect) ContainsRect(s Rect) bool {
	if s.Empty() {
		return true
	}

	return s.Min.X >= r.Min.X && s.Max.X <= r.Max.X &&
		s.Min.Y >= r.Min.Y && s.Max.Y <= r.Max.Y
}

// Intersect returns the largest rectangle contained by both r and s.
// If the two rectangles do not overlap, an empty rectangle is returned.
func (r Rect) Intersect(s Rect) Rect {
	if r.Min.X < s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y < s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X > s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y > s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	if r.Empty() {
		return Rect{}
	}

	return r
}

// Overlaps reports whether r and s share at least one pixel.
func (r Rect) Overlaps(s Rect) bool {
	return !r.Empty() && !s.Empty() &&
		r.Min.X < s.Max.X && s.Min.X < r.Max.X &&
		r.Min.Y < s.Max.Y && s.Min.Y < r.Max.Y
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	if r.Min.X > s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y > s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X < s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y < s.Max.Y {
		r.Max.Y = s.Max.Y
	}

	return r
}

// Center returns the integer center point of r, rounded toward Min.
func (r Rect) Center() Point {
	return Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
}

// Corners returns the four corner points of r in counterclockwise order
// starting from Min: bottom-left, bottom-right, top-right, top-left.
// Note that Max itself lies just outside the rectangle.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		r.Min,
		Pt(r.Max.X, r.Min.Y),
		r.Max,
		Pt(r.Min.X, r.Max.Y),
	}
}

// EachPixel invokes fn for every pixel of r in row-major order, bottom
// row first.
func (r Rect) EachPixel(fn func(p Point)) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			fn(Pt(x, y))
		}
	}
}

// String returns a "(x0,y0)-(x1,y1)" representation.
func (r Rect) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}
