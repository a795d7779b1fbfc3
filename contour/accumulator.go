package contour

import "github.com/katalvlaran/pixelgrid/geom"

// fragment is one oriented unit edge on the corner lattice.
type fragment struct {
	a, b geom.Point
}

// stitcher chains unit edge fragments into polylines. Fragments arrive
// in arbitrary order but with consistent orientation (filled side to
// the left), so chaining is deferred until finish: only with every
// fragment recorded can a lattice corner shared by two boundaries be
// paired correctly.
type stitcher struct {
	frags []fragment
	out   map[geom.Point][]int // outgoing fragment indices per start point
}

func newStitcher() *stitcher {
	return &stitcher{out: make(map[geom.Point][]int)}
}

// add records the fragment a→b.
func (s *stitcher) add(a, b geom.Point) {
	s.out[a] = append(s.out[a], len(s.frags))
	s.frags = append(s.frags, fragment{a: a, b: b})
}

// finish chains the recorded fragments into polylines and resets the
// stitcher. Lines are emitted in order of their earliest fragment, so
// the output is deterministic for a given fragment sequence. A ring
// closes when the walk returns to its first point; closed rings repeat
// that point last. Every emitted ring is simple: a walk that re-enters
// a corner already on the line (a region boundary touching itself, as
// an outer ring and a hole meeting at one corner) pinches the enclosed
// loop off as a ring of its own.
func (s *stitcher) finish() []IsoLine {
	used := make([]bool, len(s.frags))
	var lines []IsoLine
	for i, f := range s.frags {
		if used[i] {
			continue
		}
		used[i] = true
		pts := []geom.Point{f.a, f.b}
		at := map[geom.Point]int{f.a: 0, f.b: 1}
		dir := f.b.Sub(f.a)
		for pts[len(pts)-1] != pts[0] {
			j, ok := s.takeNext(pts[len(pts)-1], dir, used)
			if !ok {
				// No continuation recorded; emit what we have as an
				// open line.
				break
			}
			used[j] = true
			next := s.frags[j].b
			dir = next.Sub(s.frags[j].a)
			if k, dup := at[next]; dup && k > 0 {
				ring := make([]geom.Point, 0, len(pts)-k+1)
				ring = append(ring, pts[k:]...)
				ring = append(ring, next)
				lines = append(lines, IsoLine{Points: ring})
				for _, p := range pts[k+1:] {
					delete(at, p)
				}
				pts = pts[:k+1]
				dir = pts[k].Sub(pts[k-1])

				continue
			}
			at[next] = len(pts)
			pts = append(pts, next)
		}
		lines = append(lines, IsoLine{Points: pts})
	}

	s.frags = s.frags[:0]
	s.out = make(map[geom.Point][]int)

	return lines
}

// takeNext picks the unused fragment leaving p. Two boundaries may share
// a lattice corner (diagonally-touching filled regions), leaving two
// outgoing fragments; the one turning left relative to dir keeps hugging
// the region being traced, so each boundary stays its own ring.
func (s *stitcher) takeNext(p, dir geom.Point, used []bool) (int, bool) {
	best, found := -1, false
	for _, j := range s.out[p] {
		if used[j] {
			continue
		}
		if !found || cross(dir, s.frags[j].b.Sub(p)) > 0 {
			best, found = j, true
		}
	}

	return best, found
}

// cross returns the z component of u×v.
func cross(u, v geom.Point) int {
	return u.X*v.Y - u.Y*v.X
}
