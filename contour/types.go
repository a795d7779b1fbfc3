package contour

import "github.com/katalvlaran/pixelgrid/geom"

// IsoLine is a polyline on the pixel corner lattice. After Extract,
// consecutive points are exactly one unit apart; Simplify relaxes that.
// A closed line repeats its first point as its last.
type IsoLine struct {
	Points []geom.Point
}

// Len returns the number of points, the repeated closing point included.
func (l IsoLine) Len() int {
	return len(l.Points)
}

// IsEmpty reports whether the line has no points.
func (l IsoLine) IsEmpty() bool {
	return len(l.Points) == 0
}

// Closed reports whether the line is a ring: its last point equals its
// first.
func (l IsoLine) Closed() bool {
	return len(l.Points) > 1 && l.Points[0] == l.Points[len(l.Points)-1]
}

// AABB returns the rectangle spanned by the line's corner-lattice
// points. Because points are pixel corners, the result is exactly the
// pixel area a closed ring encloses. Empty for an empty line.
func (l IsoLine) AABB() geom.Rect {
	if len(l.Points) == 0 {
		return geom.Rect{}
	}
	r := geom.Rect{Min: l.Points[0], Max: l.Points[0]}
	for _, p := range l.Points[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}

	return r
}
