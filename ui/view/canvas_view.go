package view

import (
	"image"

	"github.com/soocke/gas-label-go/domain/session"
	"github.com/soocke/gas-label-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CanvasView displays the composited frame and translates Tk pointer events
// back into frame coordinates. Frames larger than the view area are scaled
// down for display; pointer positions are divided by the applied ratio so
// strokes land where the operator points.
type CanvasView struct {
	label     *LabelWidget
	maxW      int
	maxH      int
	ratio     float64 // display px per frame px, <= 1
	prevPhoto *Img    // last Tk photo image instance
}

// NewCanvasView creates the canvas label at the given grid row and wires
// pointer bindings. onPointer receives samples in frame coordinates,
// onScroll receives +1/-1 wheel steps for brush resizing.
func NewCanvasView(row, maxW, maxH int, onPointer func(session.PointerEvent), onScroll func(delta int)) *CanvasView {
	v := &CanvasView{maxW: maxW, maxH: maxH, ratio: 1}
	placeholder := image.NewRGBA(image.Rect(0, 0, maxW/2, maxH/2))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	v.label = Label(Image(photo), Borderwidth(1), Relief("sunken"))
	v.prevPhoto = photo
	Grid(v.label, Row(row), Column(0), Columnspan(5), Sticky("nsew"), Padx("0.4m"), Pady("0.4m"))

	emit := func(kind session.PointerKind, btn session.PointerButton) func(*Event) {
		return func(e *Event) {
			if onPointer == nil {
				return
			}
			onPointer(session.PointerEvent{Kind: kind, Button: btn, Pos: v.toFrame(e.X, e.Y)})
		}
	}
	Bind(v.label, "<ButtonPress-1>", Command(emit(session.PointerPress, session.ButtonDraw)))
	Bind(v.label, "<B1-Motion>", Command(emit(session.PointerMove, session.ButtonDraw)))
	Bind(v.label, "<ButtonRelease-1>", Command(emit(session.PointerRelease, session.ButtonDraw)))
	Bind(v.label, "<ButtonPress-3>", Command(emit(session.PointerPress, session.ButtonErase)))
	Bind(v.label, "<B3-Motion>", Command(emit(session.PointerMove, session.ButtonErase)))
	Bind(v.label, "<ButtonRelease-3>", Command(emit(session.PointerRelease, session.ButtonErase)))

	if onScroll != nil {
		Bind(v.label, "<MouseWheel>", Command(func(e *Event) {
			if e.Delta > 0 {
				onScroll(1)
			} else {
				onScroll(-1)
			}
		}))
		// X11 reports the wheel as buttons 4/5.
		Bind(v.label, "<Button-4>", Command(func() { onScroll(1) }))
		Bind(v.label, "<Button-5>", Command(func() { onScroll(-1) }))
	}
	return v
}

// Update replaces the displayed composite. Scaling happens here for
// display only; the underlying buffers stay at frame resolution.
func (v *CanvasView) Update(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	scaled, ratio := images.ScaleToFit(img, v.maxW, v.maxH)
	v.ratio = ratio
	photo := NewPhoto(Data(images.EncodePNG(scaled)))
	// Replace the previous photo to avoid retaining obsolete pixel buffers.
	v.label.Configure(Image(photo))
	v.prevPhoto = photo
}

// toFrame maps a widget-relative display position back to frame
// coordinates. The canvas clips out-of-range results.
func (v *CanvasView) toFrame(x, y int) image.Point {
	if v.ratio <= 0 || v.ratio == 1 {
		return image.Pt(x, y)
	}
	return image.Pt(int(float64(x)/v.ratio+0.5), int(float64(y)/v.ratio+0.5))
}
