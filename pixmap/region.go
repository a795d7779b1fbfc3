package pixmap

import (
	"fmt"

	"github.com/katalvlaran/pixelgrid/geom"
)

// Region is the square area a quadtree node covers: a bottom-left corner
// and a side length that is always a power of two.
type Region struct {
	x, y, size int
}

// NewRegion returns the square region with bottom-left corner (x, y) and
// the given side length.
func NewRegion(x, y, size int) Region {
	return Region{x: x, y: y, size: size}
}

// X returns the x coordinate of the bottom-left corner.
func (r Region) X() int { return r.x }

// Y returns the y coordinate of the bottom-left corner.
func (r Region) Y() int { return r.y }

// Size returns the side length.
func (r Region) Size() int { return r.size }

// Min returns the bottom-left corner point.
func (r Region) Min() geom.Point { return geom.Pt(r.x, r.y) }

// Center returns the center point of the region.
func (r Region) Center() geom.Point {
	return geom.Pt(r.x+r.size/2, r.y+r.size/2)
}

// Rect returns the region as a half-open rectangle.
func (r Region) Rect() geom.Rect {
	return geom.NewRect(r.x, r.y, r.size, r.size)
}

// Contains reports whether p lies within the region.
func (r Region) Contains(p geom.Point) bool {
	return p.X >= r.x && p.X < r.x+r.size && p.Y >= r.y && p.Y < r.y+r.size
}

// IsUnit reports whether the region has reached the minimum cell size and
// cannot be subdivided further.
func (r Region) IsUnit(cellSize int) bool {
	return r.size == cellSize
}

// QuadrantFor returns the quadrant of the region containing p.
// p must lie within the region.
func (r Region) QuadrantFor(p geom.Point) Quadrant {
	return QuadrantFor(p.Sub(r.Min()), r.size/2)
}

// Child returns the sub-region covered by the given quadrant.
func (r Region) Child(q Quadrant) Region {
	half := r.size / 2
	switch q {
	case BottomLeft:
		return NewRegion(r.x, r.y, half)
	case BottomRight:
		return NewRegion(r.x+half, r.y, half)
	case TopRight:
		return NewRegion(r.x+half, r.y+half, half)
	case TopLeft:
		return NewRegion(r.x, r.y+half, half)
	}

	return Region{}
}

// String returns a "(x,y)+size" representation.
func (r Region) String() string {
	return fmt.Sprintf("(%d,%d)+%d", r.x, r.y, r.size)
}
