// Package pixelgrid is an in-memory, spatially-compressing store for
// per-pixel data over a 2D raster — an MX quadtree that holds a value for
// every pixel of a region while collapsing runs of identical values into
// single nodes.
//
// 🚀 What is pixelgrid?
//
//	A pure-Go library for callers that need to mutate large rasters cheaply
//	and run geometric/graph algorithms directly on the compressed tree:
//		• Quadtree pixel store: point/region reads & writes, eager merging,
//		  dirty tracking, fill-state classification
//		• Shape rasterization: points, lines, rectangles, rotated
//		  rectangles, circles — cost proportional to shape complexity,
//		  not area
//		• Boolean set combination of two maps (union, intersection,
//		  difference, xor) by structural co-recursion
//		• Neighbor navigation across non-uniform cell sizes
//		• Iso-contour extraction with Ramer–Douglas–Peucker simplification
//		• A* pathfinding over tree leaves as a weighted grid graph
//		• Quadrant split/join for independently-owned parallel mutation
//
// ✨ Why choose pixelgrid?
//
//   - Compressed by construction – uniform regions are one node, whatever
//     their size
//   - Deterministic – every operation is a pure function of state + input
//   - Pure Go – no cgo, no hidden deps
//   - Algorithm-friendly – contours, paths and neighbor queries run on the
//     tree itself, never on a flat pixel buffer
//
// Under the hood, everything is organized under four subpackages:
//
//	geom/     — integer geometry primitives: points, rects, lines,
//	            circles, rotated rects, compass directions
//	pixmap/   — the quadtree Map: node store, rasterizer, set combinator,
//	            neighbor navigator, split/join, dirty tracking
//	contour/  — iso-line extraction and simplification
//	pathfind/ — A* search over map leaves
//
// Quick ASCII example — an 8×8 map after one rectangle draw:
//
//	. . . . . . . .
//	. . █ █ █ █ . .
//	. . █ █ █ █ . .
//	. . █ █ █ █ . .
//	. . █ █ █ █ . .
//	. . . . . . . .
//
//	stored as a handful of leaves, not 64 pixels.
//
// The coordinate origin is at the bottom-left of the map; x grows east and
// y grows north. Dive into each package's doc.go for complexity notes,
// options and error contracts.
//
//	go get github.com/katalvlaran/pixelgrid
package pixelgrid
