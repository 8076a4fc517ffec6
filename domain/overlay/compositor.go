package overlay

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"

	"github.com/soocke/gas-label-go/config"
	"github.com/soocke/gas-label-go/domain/canvas"
)

// Compositor blends the region mask and the live stroke over the source
// frame. Render produces the on-screen composite; Export produces the
// feathered overlay artifact written next to the mask. A Compositor is not
// safe for concurrent use; the labeling core is single-threaded.
type Compositor struct {
	tint         color.RGBA
	outline      color.RGBA
	displayAlpha float64
	exportAlpha  float64
	blurRadius   float64

	// scratch is reused across Render calls to avoid reallocating a
	// frame-sized buffer on every redraw.
	scratch *image.RGBA
}

// New returns a compositor using the colors and opacities from cfg.
func New(cfg *config.Config) *Compositor {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Compositor{
		tint:         color.RGBA{cfg.OverlayColor[0], cfg.OverlayColor[1], cfg.OverlayColor[2], 0xff},
		outline:      color.RGBA{cfg.OutlineColor[0], cfg.OutlineColor[1], cfg.OutlineColor[2], 0xff},
		displayAlpha: cfg.DisplayAlpha,
		exportAlpha:  cfg.ExportAlpha,
		blurRadius:   cfg.BlurRadius,
	}
}

// Render builds the display composite: region pixels are blended with the
// overlay tint at the display opacity, live stroke pixels are painted in
// the outline color so an in-progress boundary is distinguishable from a
// filled region, and every other pixel passes through byte-exact. The
// returned image is owned by the compositor and valid until the next call.
func (c *Compositor) Render(frame *image.RGBA, region, stroke *canvas.Mask) *image.RGBA {
	if c == nil || frame == nil {
		return nil
	}
	b := frame.Bounds()
	w, h := b.Dx(), b.Dy()
	if c.scratch == nil || !c.scratch.Bounds().Eq(b) {
		c.scratch = image.NewRGBA(b)
	}
	dst := c.scratch
	copy(dst.Pix, frame.Pix)

	a := c.displayAlpha
	regPix := region.Pixels()
	strokePix := stroke.Pixels()
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			i := row + x
			if regPix != nil && i < len(regPix) && regPix[i] != 0 {
				o := dst.PixOffset(b.Min.X+x, b.Min.Y+y)
				dst.Pix[o+0] = blend(dst.Pix[o+0], c.tint.R, a)
				dst.Pix[o+1] = blend(dst.Pix[o+1], c.tint.G, a)
				dst.Pix[o+2] = blend(dst.Pix[o+2], c.tint.B, a)
			}
			if strokePix != nil && i < len(strokePix) && strokePix[i] != 0 {
				o := dst.PixOffset(b.Min.X+x, b.Min.Y+y)
				dst.Pix[o+0] = c.outline.R
				dst.Pix[o+1] = c.outline.G
				dst.Pix[o+2] = c.outline.B
			}
		}
	}
	return dst
}

// Export builds the overlay artifact saved alongside the mask: the region
// mask is Gaussian-feathered and used as a soft alpha (scaled by the export
// opacity) for blending the overlay tint over the frame. The transient
// stroke outline is never part of the export. The returned image is freshly
// allocated and safe to retain.
func (c *Compositor) Export(frame *image.RGBA, region *canvas.Mask) *image.RGBA {
	if c == nil || frame == nil {
		return nil
	}
	b := frame.Bounds()
	out := image.NewRGBA(b)
	copy(out.Pix, frame.Pix)
	if region == nil || region.Empty() {
		return out
	}

	soft := blur.Gaussian(region.Gray(), c.blurRadius)
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := soft.PixOffset(x, y)
			v := soft.Pix[si] // feathered coverage, 0..255
			if v == 0 {
				continue
			}
			a := float64(v) / 255 * c.exportAlpha
			o := out.PixOffset(b.Min.X+x, b.Min.Y+y)
			out.Pix[o+0] = blend(out.Pix[o+0], c.tint.R, a)
			out.Pix[o+1] = blend(out.Pix[o+1], c.tint.G, a)
			out.Pix[o+2] = blend(out.Pix[o+2], c.tint.B, a)
		}
	}
	return out
}

// blend mixes src toward tint by alpha a in [0, 1].
func blend(src, tint uint8, a float64) uint8 {
	v := (1-a)*float64(src) + a*float64(tint)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v + 0.5)
}
