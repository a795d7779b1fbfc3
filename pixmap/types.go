// Package pixmap defines core types, sentinel errors, and visitor
// contracts for the quadtree pixel map.
package pixmap

import (
	"errors"

	"github.com/katalvlaran/pixelgrid/geom"
)

// Sentinel errors for pixmap operations.
var (
	// ErrBadSize indicates a non-positive logical width or height.
	ErrBadSize = errors.New("pixmap: logical size must be positive")

	// ErrBadCellSize indicates a minimum cell size that is not a power of
	// two, or exceeds the backing square side.
	ErrBadCellSize = errors.New("pixmap: cell size must be a power of two no larger than the backing size")

	// ErrOutOfBounds indicates a single-point access outside the map's
	// logical bounds. Shapes are clipped instead; points are not.
	ErrOutOfBounds = errors.New("pixmap: point outside logical bounds")

	// ErrGeometryMismatch indicates two maps with different backing sizes
	// or minimum cell sizes were combined.
	ErrGeometryMismatch = errors.New("pixmap: maps have mismatched backing geometry")

	// ErrNotSplit indicates a split was requested on a map whose backing
	// square is already the minimum cell size.
	ErrNotSplit = errors.New("pixmap: backing square is a single cell; nothing to split")

	// ErrBadQuadrants indicates the four maps passed to Join do not form
	// a 2×2 block of equal-size, equally-configured quadrants.
	ErrBadQuadrants = errors.New("pixmap: quadrant maps are not four adjacent equal-size quadrants")

	// ErrBadPath indicates a node path that does not address a node in
	// this tree.
	ErrBadPath = errors.New("pixmap: node path does not resolve to a node")
)

// CellFill classifies a region's pixels against a predicate.
type CellFill int

const (
	// FillEmpty means no pixel in the region satisfies the predicate.
	FillEmpty CellFill = iota

	// FillFull means every pixel in the region satisfies the predicate.
	FillFull

	// FillMixed means the region holds both matching and non-matching pixels.
	FillMixed
)

// String returns the fill state's name.
func (f CellFill) String() string {
	switch f {
	case FillEmpty:
		return "Empty"
	case FillFull:
		return "Full"
	case FillMixed:
		return "Mixed"
	}

	return "?"
}

// Decision is returned by branch-level visitor callbacks to steer
// traversal. It is a tagged enumeration rather than a bool so call sites
// that derive it from a CellFill read naturally.
type Decision int

const (
	// Descend continues traversal into the branch's children.
	Descend Decision = iota

	// Skip prunes the branch: none of its leaves are visited.
	Skip
)

// Quadrant identifies one of the four children of a branch node.
// Children slices are indexed by Quadrant.
type Quadrant int

const (
	BottomLeft Quadrant = iota
	BottomRight
	TopRight
	TopLeft
)

// Quadrants lists the four quadrants in child-index order.
var Quadrants = [4]Quadrant{BottomLeft, BottomRight, TopRight, TopLeft}

// String returns the quadrant's name.
func (q Quadrant) String() string {
	switch q {
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	case TopRight:
		return "TopRight"
	case TopLeft:
		return "TopLeft"
	}

	return "?"
}

// QuadrantFor returns the quadrant of the given point relative to a
// region whose bottom-left corner is at origin and whose half size is
// center.
func QuadrantFor(p geom.Point, center int) Quadrant {
	if p.X < center {
		if p.Y >= center {
			return TopLeft
		}

		return BottomLeft
	}
	if p.Y >= center {
		return TopRight
	}

	return BottomRight
}

// Predicate classifies a pixel value, e.g. as filled or traversable.
type Predicate[T comparable] func(value T) bool

// LeafVisitor receives a leaf node and the sub-rectangle of its region
// relevant to the current query (the intersection of the leaf's region
// with the query bounds).
type LeafVisitor[T comparable] func(n *Node[T], sub geom.Rect)

// LeafPredicate reports whether a leaf node, restricted to the given
// sub-rectangle, matches a caller-defined condition.
type LeafPredicate[T comparable] func(n *Node[T], sub geom.Rect) bool

// BranchVisitor inspects a branch node before descent and returns a
// Decision. Returning Skip prunes the whole subtree.
type BranchVisitor[T comparable] func(n *Node[T]) Decision
