package contour

import (
	"github.com/katalvlaran/pixelgrid/geom"
	"github.com/katalvlaran/pixelgrid/pixmap"
)

// Extract returns the iso-contours of the region where pred holds. Each
// boundary between a matching and a non-matching pixel contributes one
// unit edge on the corner lattice; pixels beyond the logical bounds
// count as non-matching, so contours close along the map border. Rings
// wind counterclockwise around matching regions.
//
// Uniform subtrees are pruned whole, so only leaves on or near the
// boundary are inspected. The output order is deterministic for a given
// map shape.
func Extract[T comparable](m *pixmap.Map[T], pred pixmap.Predicate[T]) []IsoLine {
	st := newStitcher()
	m.VisitPruned(
		func(n *pixmap.Node[T]) pixmap.Decision {
			if n.FillProfile(pred) == pixmap.FillEmpty {
				return pixmap.Skip
			}

			return pixmap.Descend
		},
		func(n *pixmap.Node[T], sub geom.Rect) {
			if !pred(n.Value()) {
				return
			}
			eachPerimeterPixel(sub, func(p geom.Point) {
				emitExposedEdges(m, pred, sub, p, st)
			})
		},
	)

	return st.finish()
}

// emitExposedEdges feeds the stitcher one fragment per side of p that
// faces a non-matching pixel. Neighbors inside sub are matching by
// construction and are skipped without a tree lookup.
func emitExposedEdges[T comparable](m *pixmap.Map[T], pred pixmap.Predicate[T], sub geom.Rect, p geom.Point, st *stitcher) {
	for _, d := range geom.CardinalDirections {
		q := p.Add(d.Unit())
		if sub.Contains(q) {
			continue
		}
		if v, err := m.Get(q); err == nil && pred(v) {
			continue
		}
		a, b := exposedEdge(p, d)
		st.add(a, b)
	}
}

// exposedEdge returns the corner-lattice fragment along the d side of
// pixel p, oriented so the pixel lies to the left of travel.
func exposedEdge(p geom.Point, d geom.Direction) (a, b geom.Point) {
	switch d {
	case geom.North:
		return geom.Pt(p.X+1, p.Y+1), geom.Pt(p.X, p.Y+1)
	case geom.South:
		return geom.Pt(p.X, p.Y), geom.Pt(p.X+1, p.Y)
	case geom.East:
		return geom.Pt(p.X+1, p.Y), geom.Pt(p.X+1, p.Y+1)
	case geom.West:
		return geom.Pt(p.X, p.Y+1), geom.Pt(p.X, p.Y)
	}

	return p, p
}

// eachPerimeterPixel invokes fn for every pixel on the outermost ring of
// r: the full bottom and top rows plus the remaining side columns.
func eachPerimeterPixel(r geom.Rect, fn func(p geom.Point)) {
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		fn(geom.Pt(x, r.Min.Y))
	}
	if r.Dy() == 1 {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		fn(geom.Pt(x, r.Max.Y-1))
	}
	for y := r.Min.Y + 1; y < r.Max.Y-1; y++ {
		fn(geom.Pt(r.Min.X, y))
		if r.Dx() > 1 {
			fn(geom.Pt(r.Max.X-1, y))
		}
	}
}
