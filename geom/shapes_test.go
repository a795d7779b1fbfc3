package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pixelgrid/geom"
)

//----------------------------------------------------------------------------//
// Circle Tests
//----------------------------------------------------------------------------//

// TestCircle_SpansMatchContains brute-forces the bounding box and checks
// that EachSpan covers exactly the pixels Contains accepts.
func TestCircle_SpansMatchContains(t *testing.T) {
	for _, r := range []int{0, 1, 3, 7} {
		c := geom.Circ(geom.Pt(10, 10), r)

		spanned := make(map[geom.Point]bool)
		c.EachPixel(func(p geom.Point) { spanned[p] = true })

		c.AABB().EachPixel(func(p geom.Point) {
			if c.Contains(p) != spanned[p] {
				t.Errorf("r=%d: pixel %v Contains=%v spanned=%v", r, p, c.Contains(p), spanned[p])
			}
		})
	}
}

// TestCircle_InnerRect checks that every pixel of the inscribed square
// lies inside the circle.
func TestCircle_InnerRect(t *testing.T) {
	c := geom.Circ(geom.Pt(0, 0), 10)
	inner := c.InnerRect()
	if inner.Empty() {
		t.Fatal("inner rect is empty")
	}
	inner.EachPixel(func(p geom.Point) {
		if !c.Contains(p) {
			t.Errorf("inner pixel %v outside circle", p)
		}
	})
}

//----------------------------------------------------------------------------//
// RotatedRect Tests
//----------------------------------------------------------------------------//

// TestRotatedRect_ZeroAngle confirms that a zero rotation reproduces the
// original rectangle's pixels.
func TestRotatedRect_ZeroAngle(t *testing.T) {
	base := geom.NewRect(2, 3, 5, 4)
	rr := geom.NewRotatedRect(base, 0)

	got := make(map[geom.Point]bool)
	rr.EachPixel(func(p geom.Point) { got[p] = true })

	want := 0
	base.EachPixel(func(p geom.Point) {
		want++
		if !got[p] {
			t.Errorf("pixel %v missing at zero angle", p)
		}
	})
	if len(got) != want {
		t.Errorf("pixel count = %d; want %d", len(got), want)
	}
}

// TestRotatedRect_QuarterTurn checks that a 90° turn of a non-square
// rectangle swaps width and height of the covered area.
func TestRotatedRect_QuarterTurn(t *testing.T) {
	base := geom.NewRect(0, 0, 6, 2)
	rr := geom.NewRotatedRect(base, math.Pi/2)

	var minP, maxP geom.Point
	first := true
	rr.EachPixel(func(p geom.Point) {
		if first {
			minP, maxP, first = p, p, false

			return
		}
		minP.X = min(minP.X, p.X)
		minP.Y = min(minP.Y, p.Y)
		maxP.X = max(maxP.X, p.X)
		maxP.Y = max(maxP.Y, p.Y)
	})
	if first {
		t.Fatal("no pixels emitted")
	}

	w := maxP.X - minP.X + 1
	h := maxP.Y - minP.Y + 1
	if w > 3 || h < 5 {
		t.Errorf("quarter turn covers %dx%d; want a tall narrow footprint", w, h)
	}
}

// TestRotatedRect_InnerRectInside verifies that the inscribed rectangle
// stays within the rotated outline for a 45° square.
func TestRotatedRect_InnerRectInside(t *testing.T) {
	rr := geom.NewRotatedRect(geom.NewRect(0, 0, 10, 10), math.Pi/4)
	inner := rr.InnerRect()
	if inner.Empty() {
		t.Fatal("inner rect is empty")
	}

	covered := make(map[geom.Point]bool)
	rr.EachPixel(func(p geom.Point) { covered[p] = true })
	inner.EachPixel(func(p geom.Point) {
		if !covered[p] {
			t.Errorf("inner pixel %v outside rotated outline", p)
		}
	})
}

// TestRotatedRect_AABBContainsSpans confirms every emitted pixel lies in
// the bounding box.
func TestRotatedRect_AABBContainsSpans(t *testing.T) {
	rr := geom.NewRotatedRect(geom.NewRect(4, 4, 8, 3), 0.5)
	box := rr.AABB()
	rr.EachPixel(func(p geom.Point) {
		if !box.Contains(p) {
			t.Errorf("pixel %v outside AABB %v", p, box)
		}
	})
}
