// Package contour extracts iso-contours from a quadtree pixel map: the
// closed boundary lines separating pixels that satisfy a predicate from
// pixels that do not.
//
// What:
//
//   - Extract walks the map's filled leaves, emits one unit-length edge
//     fragment for every pixel side facing an empty pixel (or the map
//     border), and stitches the fragments into IsoLines.
//   - IsoLine is a polyline on the corner lattice: vertices sit on pixel
//     corners, consecutive vertices are exactly one unit apart, and a
//     ring repeats its first vertex as its last.
//   - Simplify reduces an IsoLine with Ramer–Douglas–Peucker, dropping
//     vertices closer than a tolerance to the simplified chord.
//
// Why:
//
//   - Downstream geometry (physics outlines, mesh generation, vector
//     export) wants boundaries as polylines, not pixel sets.
//   - Extraction cost follows the tree structure: uniform interior
//     regions are skipped whole, so the work is proportional to the
//     boundary, not the area.
//
// Connectivity: filled pixels touching only diagonally belong to
// separate contours; the boundary between them passes through the shared
// corner, and at such a corner the chain follows the left turn so each
// region keeps its own ring. Rings wind counterclockwise around filled
// regions, so the filled side is always to the left of travel.
//
// Complexity: O(boundary pixels) fragments, chained in O(1) amortized
// per fragment via endpoint hashing.
package contour
