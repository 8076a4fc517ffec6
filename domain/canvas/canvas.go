package canvas

import "image"

// Canvas owns the mutable drawing buffers for the active frame: the stroke
// buffer accumulating boundary pixels and the region mask produced by Fill.
// Both buffers always match the bound frame's dimensions. A Canvas serves
// one frame at a time; BeginFrame rebinds it for the next one.
type Canvas struct {
	frame  *image.RGBA
	stroke *Mask
	region *Mask
}

// New returns an unbound canvas. BeginFrame must be called before drawing.
func New() *Canvas {
	return &Canvas{stroke: NewMask(0, 0), region: NewMask(0, 0)}
}

// BeginFrame binds a new frame and resets both buffers to zero. The buffers
// are reallocated only when the frame dimensions change.
func (c *Canvas) BeginFrame(frame *image.RGBA) {
	if c == nil {
		return
	}
	c.frame = frame
	w, h := 0, 0
	if frame != nil {
		w, h = frame.Bounds().Dx(), frame.Bounds().Dy()
	}
	if c.stroke.Width() != w || c.stroke.Height() != h {
		c.stroke = NewMask(w, h)
		c.region = NewMask(w, h)
		return
	}
	c.stroke.Reset()
	c.region.Reset()
}

// Frame returns the currently bound frame, or nil when unbound.
func (c *Canvas) Frame() *image.RGBA {
	if c == nil {
		return nil
	}
	return c.frame
}

// StrokeBuffer returns the live boundary pixels.
func (c *Canvas) StrokeBuffer() *Mask {
	if c == nil {
		return nil
	}
	return c.stroke
}

// Region returns the filled region mask.
func (c *Canvas) Region() *Mask {
	if c == nil {
		return nil
	}
	return c.region
}

// Draw stamps a thick segment between two consecutive pointer samples into
// the stroke buffer. A zero-length segment stamps a single disk, so a click
// without a drag still leaves a mark. Out-of-bounds coordinates are clipped.
func (c *Canvas) Draw(p0, p1 image.Point, b *Brush) {
	if c == nil || c.frame == nil {
		return
	}
	stampCapsule(c.stroke, p0, p1, b.Radius(), true)
}

// Erase clears a thick segment from the stroke buffer. The erase radius is
// doubled relative to the draw radius so one pass removes a drawn path.
func (c *Canvas) Erase(p0, p1 image.Point, b *Brush) {
	if c == nil || c.frame == nil {
		return
	}
	stampCapsule(c.stroke, p0, p1, b.Radius()*eraseScale, false)
}

// Clear zeroes both the stroke buffer and the region mask without changing
// the bound frame.
func (c *Canvas) Clear() {
	if c == nil {
		return
	}
	c.stroke.Reset()
	c.region.Reset()
}

// Fill derives the enclosed region from the current stroke buffer,
// replacing the previous region mask entirely. Filling an empty stroke
// buffer yields an empty mask. Fill is idempotent: repeated calls with an
// unmodified stroke buffer produce identical masks.
func (c *Canvas) Fill() {
	if c == nil {
		return
	}
	fillRegion(c.stroke, c.region)
}
