// Package pixmap implements a spatially-compressing pixel store over an
// MX quadtree: every pixel of a rectangular region has a value, and
// uniform square runs of values collapse into single nodes.
//
// What:
//
//   - Map wraps one root Node over a power-of-two backing square, clips
//     all access to a possibly smaller logical width×height, and stops
//     subdivision at a configurable minimum cell size.
//   - Mutation: Set, Clear, Draw* (point, line, rect, rotated rect,
//     circle) — each computes the minimal set of rectangular region
//     writes, so cost tracks shape complexity rather than area.
//   - Set combination: Combine walks two maps of matching geometry in
//     lock-step and produces a third; Union/Intersect/Subtract/Xor cover
//     the boolean cases for Map[bool].
//   - Query: Get, Visit, VisitRect, VisitPruned (branch callbacks return
//     Descend or Skip), AnyInRect, AllInRect, CollectPoints, FillProfile
//     via Node, Stats, RayCast.
//   - Dirty tracking: every mutation marks the touched nodes; VisitDirty,
//     DrainDirty and ClearDirty(deep) let incremental consumers follow
//     changes without full rescans.
//   - Neighbor navigation: VisitNeighbors enumerates the leaf or leaves
//     just across a cell edge, handling size mismatches in both
//     directions.
//   - Split/Join: partition a map into four independently-owned quadrant
//     maps (deep copies, no aliasing) and recombine them; the sanctioned
//     mechanism for parallel batch mutation.
//
// Why:
//
//   - Image-like and simulation rasters are mostly uniform; a quadtree
//     stores megapixel regions in a handful of nodes and answers region
//     queries without touching pixels.
//   - Algorithms downstream (contours, pathfinding) operate on leaves,
//     inheriting the compression.
//
// Complexity (S = backing side, so depth ≤ log2 S):
//
//   - Get/Set: O(log S).
//   - DrawRect: O(log S) per addressable sub-rectangle.
//   - Combine: O(nodes of the finer structure of the two trees).
//   - VisitNeighbors: O(log S + neighbors found).
//
// Concurrency: operations never lock. Mutations require exclusive access
// to the Map; read-only traversals may run concurrently with one another
// but never with a mutation. Split/Join is the supported route to
// parallel mutation.
//
// Errors:
//
//   - ErrBadSize: non-positive logical dimensions at construction.
//   - ErrBadCellSize: minimum cell size not a power of two, or larger
//     than the backing square.
//   - ErrOutOfBounds: single-point access outside logical bounds
//     (shapes clip instead).
//   - ErrGeometryMismatch: combining maps with different backing
//     geometry.
//   - ErrNotSplit / ErrBadQuadrants: invalid split or join.
//   - ErrBadPath: a NodePath that no longer resolves.
package pixmap
