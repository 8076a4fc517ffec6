package canvas

import "image"

// Mask is a single-channel bitmask covering one frame, one byte per pixel.
// A pixel is either unset (0) or set (255); no intermediate values are ever
// stored, so the buffer converts 1:1 into an 8-bit grayscale image for
// persistence.
type Mask struct {
	w, h int
	pix  []uint8
}

// NewMask returns an all-zero mask of the given dimensions.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{w: w, h: h, pix: make([]uint8, w*h)}
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.h }

// Bounds returns the mask extent as an image.Rectangle anchored at the origin.
func (m *Mask) Bounds() image.Rectangle { return image.Rect(0, 0, m.w, m.h) }

// At reports whether the pixel at (x, y) is set. Out-of-bounds reads
// return false.
func (m *Mask) At(x, y int) bool {
	if m == nil || x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.pix[y*m.w+x] != 0
}

// Set marks or clears the pixel at (x, y). Out-of-bounds writes are
// silently clipped.
func (m *Mask) Set(x, y int, on bool) {
	if m == nil || x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	if on {
		m.pix[y*m.w+x] = 0xff
	} else {
		m.pix[y*m.w+x] = 0
	}
}

// Reset clears every pixel.
func (m *Mask) Reset() {
	if m == nil {
		return
	}
	clear(m.pix)
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, v := range m.pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// Empty reports whether no pixel is set.
func (m *Mask) Empty() bool {
	if m == nil {
		return true
	}
	for _, v := range m.pix {
		if v != 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the mask.
func (m *Mask) Clone() *Mask {
	if m == nil {
		return nil
	}
	c := NewMask(m.w, m.h)
	copy(c.pix, m.pix)
	return c
}

// Equal reports whether both masks have identical dimensions and pixels.
func (m *Mask) Equal(o *Mask) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.w != o.w || m.h != o.h {
		return false
	}
	for i := range m.pix {
		if m.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// Gray converts the mask into a grayscale image (0 or 255 per pixel) for
// encoding. The returned image owns a copy of the pixels.
func (m *Mask) Gray() *image.Gray {
	if m == nil {
		return image.NewGray(image.Rectangle{})
	}
	g := image.NewGray(m.Bounds())
	copy(g.Pix, m.pix)
	return g
}

// Pixels exposes the flat backing slice (row-major, stride == Width) for
// read-only per-pixel loops in other packages. Mutating it bypasses
// clipping; callers must not resize it.
func (m *Mask) Pixels() []uint8 {
	if m == nil {
		return nil
	}
	return m.pix
}
