package geom

import "math"

// Circle is an integer circle described by a center pixel and a radius.
// A pixel belongs to the circle when its squared distance from the center
// does not exceed radius².
type Circle struct {
	Center Point
	Radius int
}

// Circ is shorthand for Circle{center, radius}.
func Circ(center Point, radius int) Circle {
	return Circle{Center: center, Radius: radius}
}

// Contains reports whether p lies inside the circle.
func (c Circle) Contains(p Point) bool {
	d := p.Sub(c.Center)

	return d.X*d.X+d.Y*d.Y <= c.Radius*c.Radius
}

// AABB returns the half-open bounding rectangle of the circle.
func (c Circle) AABB() Rect {
	return Rect{
		Min: c.Center.Sub(Pt(c.Radius, c.Radius)),
		Max: c.Center.Add(Pt(c.Radius+1, c.Radius+1)),
	}
}

// InnerRect returns a square inscribed in the circle, centered on it,
// with half-side ⌊r/√2⌋.
func (c Circle) InnerRect() Rect {
	half := int(float64(c.Radius) * math.Sqrt2 / 2)

	return Rect{
		Min: c.Center.Sub(Pt(half, half)),
		Max: c.Center.Add(Pt(half+1, half+1)),
	}
}

// EachSpan invokes fn once per row of the circle, with the row and the
// inclusive x extent of the circle's pixels on that row. Rows are emitted
// bottom-up. Complexity: O(r).
func (c Circle) EachSpan(fn func(y, x0, x1 int)) {
	r := c.Radius
	for dy := -r; dy <= r; dy++ {
		half := int(math.Sqrt(float64(r*r - dy*dy)))
		fn(c.Center.Y+dy, c.Center.X-half, c.Center.X+half)
	}
}

// EachPixel invokes fn for every pixel of the circle, row by row.
func (c Circle) EachPixel(fn func(p Point)) {
	c.EachSpan(func(y, x0, x1 int) {
		for x := x0; x <= x1; x++ {
			fn(Pt(x, y))
		}
	})
}
