// Package pathfind runs A* search over the leaves of a quadtree pixel
// map. The search graph is implicit: each leaf (clipped to the logical
// bounds) is a node, and edges connect leaves that share a border,
// discovered on the fly through neighbor navigation. Large uniform
// regions are crossed in a single step, so path cost on open terrain
// scales with tree structure, not with pixel count.
//
// What:
//
//   - FindPath searches from a start pixel to a goal pixel. Terrain is
//     described by a CostFunc mapping pixel values to a per-unit cost;
//     a value with non-positive or infinite cost is impassable.
//   - Movement defaults to the four cardinal borders; WithDiagonals adds
//     corner adjacency. WithMetric selects the heuristic (Euclidean by
//     default, Manhattan suits cardinal movement, Chebyshev diagonal).
//   - The result path runs through leaf centers, with the exact start
//     and goal pixels at the ends.
//
// Why:
//
//   - Searching leaves instead of pixels turns open-field pathfinding
//     from O(area) into O(boundary structure).
//
// The heuristic multiplies metric distance by 1, so optimality holds
// when every traversable cost is at least 1; smaller costs still find a
// path, just not necessarily the cheapest.
//
// Errors:
//
//   - A start or goal outside the logical bounds is reported as
//     pixmap.ErrOutOfBounds.
//   - An impassable start or goal, or no connecting corridor, is not an
//     error: FindPath reports ok=false.
//
// Complexity: O(E log V) over discovered leaves, as for A* with a
// binary heap.
package pathfind
