package geom

import (
	"fmt"
	"math"
)

// Point is a 2D integer coordinate. The origin is at the bottom-left of a
// map; x grows east and y grows north.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by k.
func (p Point) Mul(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// In reports whether p lies within r.
func (p Point) In(r Rect) bool {
	return r.Contains(p)
}

// String returns a "(x,y)" representation.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// DistSquared returns the squared Euclidean distance between a and b.
func DistSquared(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	return math.Sqrt(DistSquared(a, b))
}

// ManhattanDist returns |dx|+|dy| between a and b.
func ManhattanDist(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// ChebyshevDist returns max(|dx|,|dy|) between a and b.
func ChebyshevDist(a, b Point) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx > dy {
		return dx
	}

	return dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
