package geom_test

import (
	"testing"

	"github.com/katalvlaran/pixelgrid/geom"
)

//----------------------------------------------------------------------------//
// EachPixel Tests
//----------------------------------------------------------------------------//

// TestLine_EachPixel checks Bresenham traversal on axis-aligned, diagonal
// and shallow segments, including the degenerate single-pixel case.
func TestLine_EachPixel(t *testing.T) {
	cases := []struct {
		name string
		line geom.Line
		want []geom.Point
	}{
		{
			name: "SinglePixel",
			line: geom.Ln(geom.Pt(2, 2), geom.Pt(2, 2)),
			want: []geom.Point{geom.Pt(2, 2)},
		},
		{
			name: "Horizontal",
			line: geom.Ln(geom.Pt(0, 1), geom.Pt(3, 1)),
			want: []geom.Point{geom.Pt(0, 1), geom.Pt(1, 1), geom.Pt(2, 1), geom.Pt(3, 1)},
		},
		{
			name: "VerticalReversed",
			line: geom.Ln(geom.Pt(1, 3), geom.Pt(1, 0)),
			want: []geom.Point{geom.Pt(1, 3), geom.Pt(1, 2), geom.Pt(1, 1), geom.Pt(1, 0)},
		},
		{
			name: "Diagonal",
			line: geom.Ln(geom.Pt(0, 0), geom.Pt(3, 3)),
			want: []geom.Point{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(3, 3)},
		},
		{
			name: "Shallow",
			line: geom.Ln(geom.Pt(0, 0), geom.Pt(4, 2)),
			want: []geom.Point{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 1), geom.Pt(3, 2), geom.Pt(4, 2)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got []geom.Point
			tc.line.EachPixel(func(p geom.Point) { got = append(got, p) })
			if len(got) != len(tc.want) {
				t.Fatalf("pixel count = %d; want %d (%v)", len(got), len(tc.want), got)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("pixel[%d] = %v; want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

// TestLine_EachRun verifies that runs batch exactly the pixels EachPixel
// yields and that a shallow slope produces one run per row.
func TestLine_EachRun(t *testing.T) {
	l := geom.Ln(geom.Pt(0, 0), geom.Pt(6, 2))

	pixels := make(map[geom.Point]bool)
	l.EachPixel(func(p geom.Point) { pixels[p] = true })

	covered := make(map[geom.Point]bool)
	runs := 0
	l.EachRun(func(y, x0, x1 int) {
		runs++
		if x1 < x0 {
			t.Errorf("run on row %d has x1 < x0", y)
		}
		for x := x0; x <= x1; x++ {
			covered[geom.Pt(x, y)] = true
		}
	})

	if runs != 3 {
		t.Errorf("runs = %d; want 3 (one per row)", runs)
	}
	if len(covered) != len(pixels) {
		t.Fatalf("run coverage = %d pixels; want %d", len(covered), len(pixels))
	}
	for p := range pixels {
		if !covered[p] {
			t.Errorf("pixel %v missed by runs", p)
		}
	}
}

//----------------------------------------------------------------------------//
// IntersectsRect Tests
//----------------------------------------------------------------------------//

// TestLine_IntersectsRect covers endpoints inside, a pure crossing, a
// miss and an empty rectangle.
func TestLine_IntersectsRect(t *testing.T) {
	r := geom.NewRect(2, 2, 4, 4) // (2,2)-(6,6)
	cases := []struct {
		name string
		line geom.Line
		want bool
	}{
		{"EndpointInside", geom.Ln(geom.Pt(3, 3), geom.Pt(10, 10)), true},
		{"CrossesThrough", geom.Ln(geom.Pt(0, 4), geom.Pt(10, 4)), true},
		{"DiagonalCross", geom.Ln(geom.Pt(0, 0), geom.Pt(7, 7)), true},
		{"MissAbove", geom.Ln(geom.Pt(0, 8), geom.Pt(10, 8)), false},
		{"MissLeft", geom.Ln(geom.Pt(0, 0), geom.Pt(0, 10)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.line.IntersectsRect(r); got != tc.want {
				t.Errorf("IntersectsRect = %v; want %v", got, tc.want)
			}
		})
	}

	if geom.Ln(geom.Pt(0, 0), geom.Pt(5, 5)).IntersectsRect(geom.Rect{}) {
		t.Error("IntersectsRect(empty) = true; want false")
	}
}

//----------------------------------------------------------------------------//
// LineIterator Tests
//----------------------------------------------------------------------------//

// TestLineIterator_SeekPast verifies that skipping a rectangle resumes on
// the first pixel beyond it and that Peek does not advance.
func TestLineIterator_SeekPast(t *testing.T) {
	it := geom.NewLineIterator(geom.Ln(geom.Pt(0, 0), geom.Pt(9, 0)))

	p, ok := it.Next()
	if !ok || p != geom.Pt(0, 0) {
		t.Fatalf("first pixel = %v,%v; want (0,0),true", p, ok)
	}

	it.SeekPast(geom.NewRect(0, 0, 5, 1))
	p, ok = it.Peek()
	if !ok || p != geom.Pt(5, 0) {
		t.Fatalf("after SeekPast, Peek = %v,%v; want (5,0),true", p, ok)
	}
	p, ok = it.Next()
	if !ok || p != geom.Pt(5, 0) {
		t.Fatalf("after SeekPast, Next = %v,%v; want (5,0),true", p, ok)
	}

	// Seeking past a rectangle covering the rest exhausts the iterator.
	it.SeekPast(geom.NewRect(0, 0, 10, 1))
	if _, ok = it.Next(); ok {
		t.Error("iterator should be exhausted after seeking past the tail")
	}
}
