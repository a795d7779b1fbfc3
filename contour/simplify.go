package contour

import (
	"math"

	"github.com/katalvlaran/pixelgrid/geom"
)

// Simplify returns a copy of the line reduced with the
// Ramer–Douglas–Peucker algorithm: interior points whose perpendicular
// distance to the local chord is at most tolerance are dropped. End
// points always survive, so a closed ring stays closed. A tolerance of 0
// removes only collinear points.
//
// Complexity: O(n log n) typical, O(n²) worst case.
func Simplify(l IsoLine, tolerance float64) IsoLine {
	if len(l.Points) < 3 {
		return IsoLine{Points: append([]geom.Point(nil), l.Points...)}
	}
	keep := make([]bool, len(l.Points))
	keep[0], keep[len(l.Points)-1] = true, true
	rdp(l.Points, 0, len(l.Points)-1, tolerance, keep)

	out := make([]geom.Point, 0, len(l.Points))
	for i, p := range l.Points {
		if keep[i] {
			out = append(out, p)
		}
	}

	return IsoLine{Points: out}
}

// SimplifyAll applies Simplify to every line.
func SimplifyAll(lines []IsoLine, tolerance float64) []IsoLine {
	out := make([]IsoLine, len(lines))
	for i, l := range lines {
		out[i] = Simplify(l, tolerance)
	}

	return out
}

// rdp marks the points to keep between indices lo and hi, exclusive of
// the (already kept) ends.
func rdp(pts []geom.Point, lo, hi int, tolerance float64, keep []bool) {
	if hi-lo < 2 {
		return
	}
	far, dist := lo, -1.0
	for i := lo + 1; i < hi; i++ {
		if d := perpendicularDist(pts[i], pts[lo], pts[hi]); d > dist {
			far, dist = i, d
		}
	}
	if dist <= tolerance {
		return
	}
	keep[far] = true
	rdp(pts, lo, far, tolerance, keep)
	rdp(pts, far, hi, tolerance, keep)
}

// perpendicularDist returns the distance from p to the infinite line
// through a and b, or the distance to a when the chord is degenerate.
func perpendicularDist(p, a, b geom.Point) float64 {
	if a == b {
		return geom.Dist(p, a)
	}
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)

	return math.Abs(dy*float64(p.X-a.X)-dx*float64(p.Y-a.Y)) / math.Hypot(dx, dy)
}
