package canvas

import "image"

// stampCapsule sets (on=true) or clears (on=false) every mask pixel whose
// distance to the segment a-b is at most r. The round caps cover both
// endpoint disks, so a degenerate segment (a == b) stamps a plain disk.
// Pixels outside the mask are clipped by Mask.Set.
func stampCapsule(m *Mask, a, b image.Point, r int, on bool) {
	if m == nil || r < 1 || m.w == 0 || m.h == 0 {
		return
	}
	minX, maxX := minInt(a.X, b.X)-r, maxInt(a.X, b.X)+r
	minY, maxY := minInt(a.Y, b.Y)-r, maxInt(a.Y, b.Y)+r
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > m.w-1 {
		maxX = m.w - 1
	}
	if maxY > m.h-1 {
		maxY = m.h - 1
	}

	abx := float64(b.X - a.X)
	aby := float64(b.Y - a.Y)
	ab2 := abx*abx + aby*aby
	r2 := float64(r * r)

	for y := minY; y <= maxY; y++ {
		row := y * m.w
		for x := minX; x <= maxX; x++ {
			// Project the pixel onto the segment and measure the squared
			// distance to the nearest point on it.
			px := float64(x - a.X)
			py := float64(y - a.Y)
			t := 0.0
			if ab2 > 0 {
				t = (px*abx + py*aby) / ab2
				if t < 0 {
					t = 0
				} else if t > 1 {
					t = 1
				}
			}
			dx := px - t*abx
			dy := py - t*aby
			if dx*dx+dy*dy <= r2 {
				if on {
					m.pix[row+x] = 0xff
				} else {
					m.pix[row+x] = 0
				}
			}
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
