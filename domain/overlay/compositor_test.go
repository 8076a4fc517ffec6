package overlay

import (
	"image"
	"testing"

	"github.com/soocke/gas-label-go/config"
	"github.com/soocke/gas-label-go/domain/canvas"
)

// gradientFrame returns a frame whose pixels all differ, so any unintended
// write shows up in a comparison.
func gradientFrame(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			o := img.PixOffset(x, y)
			img.Pix[o+0] = uint8(x * 4)
			img.Pix[o+1] = uint8(y * 4)
			img.Pix[o+2] = uint8((x + y) * 2)
			img.Pix[o+3] = 0xff
		}
	}
	return img
}

func TestRenderPassesThroughWhereMaskUnset(t *testing.T) {
	cfg := config.DefaultConfig()
	comp := New(cfg)
	frame := gradientFrame(40, 40)
	region := canvas.NewMask(40, 40)
	stroke := canvas.NewMask(40, 40)
	region.Set(20, 20, true)
	stroke.Set(5, 5, true)

	out := comp.Render(frame, region, stroke)
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if (x == 20 && y == 20) || (x == 5 && y == 5) {
				continue
			}
			so := frame.PixOffset(x, y)
			do := out.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				if frame.Pix[so+c] != out.Pix[do+c] {
					t.Fatalf("pixel (%d,%d) channel %d modified outside mask: %d != %d",
						x, y, c, frame.Pix[so+c], out.Pix[do+c])
				}
			}
		}
	}
}

func TestRenderBlendsRegionPixels(t *testing.T) {
	cfg := config.DefaultConfig()
	comp := New(cfg)
	frame := gradientFrame(30, 30)
	region := canvas.NewMask(30, 30)
	stroke := canvas.NewMask(30, 30)
	region.Set(10, 10, true)

	out := comp.Render(frame, region, stroke)
	so := frame.PixOffset(10, 10)
	do := out.PixOffset(10, 10)
	want := blend(frame.Pix[so], cfg.OverlayColor[0], cfg.DisplayAlpha)
	if out.Pix[do] != want {
		t.Fatalf("expected blended red channel %d, got %d", want, out.Pix[do])
	}
}

func TestRenderPaintsStrokeOutline(t *testing.T) {
	cfg := config.DefaultConfig()
	comp := New(cfg)
	frame := gradientFrame(30, 30)
	region := canvas.NewMask(30, 30)
	stroke := canvas.NewMask(30, 30)
	stroke.Set(12, 7, true)

	out := comp.Render(frame, region, stroke)
	o := out.PixOffset(12, 7)
	if out.Pix[o+0] != cfg.OutlineColor[0] || out.Pix[o+1] != cfg.OutlineColor[1] || out.Pix[o+2] != cfg.OutlineColor[2] {
		t.Fatalf("stroke pixel not painted in outline color: got (%d,%d,%d)",
			out.Pix[o+0], out.Pix[o+1], out.Pix[o+2])
	}
}

func TestRenderReusesScratchBuffer(t *testing.T) {
	comp := New(config.DefaultConfig())
	frame := gradientFrame(20, 20)
	region := canvas.NewMask(20, 20)
	stroke := canvas.NewMask(20, 20)
	a := comp.Render(frame, region, stroke)
	b := comp.Render(frame, region, stroke)
	if a != b {
		t.Fatalf("expected scratch buffer reuse across renders")
	}
}

func TestExportEmptyRegionIsSourceCopy(t *testing.T) {
	comp := New(config.DefaultConfig())
	frame := gradientFrame(30, 30)
	out := comp.Export(frame, canvas.NewMask(30, 30))
	for i := range frame.Pix {
		if frame.Pix[i] != out.Pix[i] {
			t.Fatalf("export of empty region altered pixel index %d", i)
		}
	}
}

func TestExportFeathersRegionLocally(t *testing.T) {
	cfg := config.DefaultConfig()
	comp := New(cfg)
	frame := gradientFrame(80, 80)
	region := canvas.NewMask(80, 80)
	for y := 35; y <= 45; y++ {
		for x := 35; x <= 45; x++ {
			region.Set(x, y, true)
		}
	}

	out := comp.Export(frame, region)
	// Center of the blob is tinted.
	so := frame.PixOffset(40, 40)
	if out.Pix[so] == frame.Pix[so] && out.Pix[so+2] == frame.Pix[so+2] {
		t.Fatalf("blob center not tinted by export")
	}
	// Pixels far outside the blur reach are untouched.
	fo := frame.PixOffset(2, 2)
	for c := 0; c < 3; c++ {
		if out.Pix[fo+c] != frame.Pix[fo+c] {
			t.Fatalf("far pixel modified by export at channel %d", c)
		}
	}
}
