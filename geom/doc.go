// Package geom provides the integer geometry primitives shared by the
// pixelgrid packages: points, half-open rectangles, line segments,
// circles, rotated rectangles and compass directions.
//
// What:
//
//   - Point: a 2D integer coordinate, origin at the bottom-left, x east,
//     y north.
//   - Rect: an axis-aligned rectangle with inclusive Min and exclusive Max,
//     in the manner of image.Rectangle.
//   - Line: an integer segment with Bresenham pixel traversal and
//     horizontal run generation for rasterizers.
//   - Circle: an integer circle with per-row span generation and a largest
//     inscribed rectangle.
//   - RotatedRect: a rectangle rotated about its center, with rotated
//     corners, edge segments, AABB, inscribed rectangle and scanline spans.
//   - Direction: the eight compass directions with unit vectors.
//
// Why:
//
//   - Shape rasterization into a quadtree wants runs and spans, not
//     per-pixel callbacks: every Each*Run/Each*Span method here yields
//     maximal horizontal extents so a caller can issue one region write
//     per run.
//   - Neighbor navigation and contour tracing need exact integer edge
//     arithmetic; everything in this package is pixel-exact.
//
// Complexity:
//
//   - Line traversal: O(max(|dx|,|dy|)).
//   - Circle spans: O(r).
//   - RotatedRect spans: O(perimeter).
//
// All types are immutable value types; none allocate beyond their results.
package geom
