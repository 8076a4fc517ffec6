package canvas

import (
	"image"
	"testing"
)

// ring sets a 1-pixel-thick square boundary on m, optionally leaving out
// one pixel.
func ring(m *Mask, x0, y0, x1, y1 int, gap *image.Point) {
	for x := x0; x <= x1; x++ {
		m.Set(x, y0, true)
		m.Set(x, y1, true)
	}
	for y := y0; y <= y1; y++ {
		m.Set(x0, y, true)
		m.Set(x1, y, true)
	}
	if gap != nil {
		m.Set(gap.X, gap.Y, true)
		m.Set(gap.X, gap.Y, false)
	}
}

func TestFillEmptyStrokeYieldsEmptyRegion(t *testing.T) {
	stroke := NewMask(50, 50)
	region := NewMask(50, 50)
	fillRegion(stroke, region)
	if !region.Empty() {
		t.Fatalf("fill on empty stroke produced %d pixels", region.Count())
	}
}

func TestFillExactInteriorOfClosedRing(t *testing.T) {
	stroke := NewMask(50, 50)
	region := NewMask(50, 50)
	ring(stroke, 10, 10, 40, 40, nil)
	fillRegion(stroke, region)

	// Interior is (11..39)^2 = 29*29 pixels, walls excluded.
	if n := region.Count(); n != 29*29 {
		t.Fatalf("expected %d interior pixels, got %d", 29*29, n)
	}
	if !region.At(25, 25) {
		t.Fatalf("interior center not filled")
	}
	if region.At(10, 25) {
		t.Fatalf("wall pixel included in region")
	}
	if region.At(5, 5) {
		t.Fatalf("exterior pixel included in region")
	}
}

func TestFillIsIdempotent(t *testing.T) {
	c := New()
	c.BeginFrame(testFrame(80, 80))
	b := NewBrush(2, 1, 20)
	drawSquare(c, b, 15, 15, 60, 60)

	c.Fill()
	first := c.Region().Clone()
	if first.Empty() {
		t.Fatalf("first fill produced no region")
	}
	c.Fill()
	if !c.Region().Equal(first) {
		t.Fatalf("second fill of unmodified stroke differs from first")
	}
}

func TestFillReplacesPreviousRegion(t *testing.T) {
	c := New()
	c.BeginFrame(testFrame(80, 80))
	b := NewBrush(2, 1, 20)
	drawSquare(c, b, 10, 10, 70, 70)
	c.Fill()
	big := c.Region().Count()

	// Erase the boundary and draw a smaller one; re-fill must not keep any
	// of the old region.
	c.Clear()
	drawSquare(c, b, 30, 30, 50, 50)
	c.Fill()
	small := c.Region().Count()
	if small >= big {
		t.Fatalf("refill did not replace region: big=%d small=%d", big, small)
	}
	if c.Region().At(15, 15) {
		t.Fatalf("stale region pixel survived refill")
	}
}

func TestFillLeaksThroughOnePixelGap(t *testing.T) {
	stroke := NewMask(50, 50)
	region := NewMask(50, 50)
	ring(stroke, 10, 10, 40, 40, &image.Point{X: 25, Y: 10})
	fillRegion(stroke, region)
	// The exterior floods through the gap, so (almost) nothing is
	// enclosed. Leaking is accepted behavior for open boundaries.
	if n := region.Count(); n > 2 {
		t.Fatalf("expected leak to empty the region, got %d pixels", n)
	}
}

func TestFillSquareDrawnWithBrush(t *testing.T) {
	c := New()
	c.BeginFrame(testFrame(100, 100))
	b := NewBrush(3, 1, 20)
	drawSquare(c, b, 30, 30, 70, 70)
	c.Fill()

	// A 40x40 square boundary encloses roughly 1600 pixels minus the wall
	// thickness eaten from each side.
	n := c.Region().Count()
	if n < 900 || n > 1700 {
		t.Fatalf("expected roughly 40x40 interior, got %d pixels", n)
	}
	if !c.Region().At(50, 50) {
		t.Fatalf("square center not filled")
	}
	if c.Region().At(30, 50) {
		t.Fatalf("boundary wall included in region")
	}
}
