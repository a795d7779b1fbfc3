package geom

import (
	"math"
	"sort"
)

// RotatedRect is a rectangle rotated about its center by an angle in
// radians, counterclockwise.
type RotatedRect struct {
	// Rect is the original axis-aligned rectangle.
	Rect Rect

	// Angle is the rotation in radians.
	Angle float64
}

// NewRotatedRect returns r rotated by the given angle in radians.
func NewRotatedRect(r Rect, angle float64) RotatedRect {
	return RotatedRect{Rect: r, Angle: angle}
}

// Corners returns the rotated corner coordinates in the same order as
// Rect.Corners, as floating-point x/y pairs.
func (rr RotatedRect) Corners() [4][2]float64 {
	cx := float64(rr.Rect.Min.X+rr.Rect.Max.X) / 2
	cy := float64(rr.Rect.Min.Y+rr.Rect.Max.Y) / 2
	sin, cos := math.Sincos(rr.Angle)

	var out [4][2]float64
	for i, c := range rr.Rect.Corners() {
		x := float64(c.X) - cx
		y := float64(c.Y) - cy
		out[i] = [2]float64{
			cos*x - sin*y + cx,
			sin*x + cos*y + cy,
		}
	}

	return out
}

// Edges returns the four edge segments of the rotated rectangle, with
// corners rounded to the nearest pixel.
func (rr RotatedRect) Edges() [4]Line {
	c := rr.Corners()
	p := [4]Point{
		Pt(int(math.Round(c[0][0])), int(math.Round(c[0][1]))),
		Pt(int(math.Round(c[1][0])), int(math.Round(c[1][1]))),
		Pt(int(math.Round(c[2][0])), int(math.Round(c[2][1]))),
		Pt(int(math.Round(c[3][0])), int(math.Round(c[3][1]))),
	}

	return [4]Line{
		Ln(p[0], p[1]),
		Ln(p[1], p[2]),
		Ln(p[2], p[3]),
		Ln(p[3], p[0]),
	}
}

// AABB returns the half-open bounding rectangle of the rotated shape.
func (rr RotatedRect) AABB() Rect {
	c := rr.Corners()
	minX, minY := c[0][0], c[0][1]
	maxX, maxY := minX, minY
	for _, p := range c[1:] {
		minX = math.Min(minX, p[0])
		minY = math.Min(minY, p[1])
		maxX = math.Max(maxX, p[0])
		maxY = math.Max(maxY, p[1])
	}

	return Rect{
		Min: Pt(int(math.Floor(minX)), int(math.Floor(minY))),
		Max: Pt(int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1),
	}
}

// InnerRect returns the largest axis-aligned rectangle inscribed in the
// rotated rectangle, centered on the pivot.
func (rr RotatedRect) InnerRect() Rect {
	w := float64(rr.Rect.Dx())
	h := float64(rr.Rect.Dy())
	if w <= 0 || h <= 0 {
		return Rect{}
	}

	wide := w >= h
	long, short := w, h
	if !wide {
		long, short = h, w
	}

	sin := math.Abs(math.Sin(rr.Angle))
	cos := math.Abs(math.Cos(rr.Angle))

	var iw, ih float64
	if short <= 2*sin*cos*long || math.Abs(sin-cos) < 1e-10 {
		x := short / 2
		if wide {
			iw, ih = x/sin, x/cos
		} else {
			iw, ih = x/cos, x/sin
		}
	} else {
		cos2 := cos*cos - sin*sin
		iw = (w*cos - h*sin) / cos2
		ih = (h*cos - w*sin) / cos2
	}

	center := rr.Rect.Center()
	hw, hh := int(iw)/2, int(ih)/2

	return Rect{
		Min: center.Sub(Pt(hw, hh)),
		Max: center.Add(Pt(int(iw)-hw, int(ih)-hh)),
	}
}

// EachSpan invokes fn once per row of the rotated rectangle's interior,
// with the row and the inclusive x extent between the leftmost and
// rightmost edge pixels on that row. Rows are emitted bottom-up.
// Complexity: O(perimeter).
func (rr RotatedRect) EachSpan(fn func(y, x0, x1 int)) {
	type span struct{ x0, x1 int }
	rows := make(map[int]span)
	for _, e := range rr.Edges() {
		e.EachPixel(func(p Point) {
			s, ok := rows[p.Y]
			if !ok {
				rows[p.Y] = span{p.X, p.X}

				return
			}
			if p.X < s.x0 {
				s.x0 = p.X
			}
			if p.X > s.x1 {
				s.x1 = p.X
			}
			rows[p.Y] = s
		})
	}

	ys := make([]int, 0, len(rows))
	for y := range rows {
		ys = append(ys, y)
	}
	sort.Ints(ys)
	for _, y := range ys {
		fn(y, rows[y].x0, rows[y].x1)
	}
}

// EachPixel invokes fn for every interior pixel of the rotated rectangle.
func (rr RotatedRect) EachPixel(fn func(p Point)) {
	rr.EachSpan(func(y, x0, x1 int) {
		for x := x0; x <= x1; x++ {
			fn(Pt(x, y))
		}
	})
}
