package session

import (
	"image"

	"github.com/soocke/gas-label-go/domain/canvas"
)

// FrameState enumerates the lifecycle states of the active frame.
type FrameState int

const (
	StateLoaded FrameState = iota
	StateEditing
	StateCommitted
	StateSkipped
)

func (s FrameState) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateEditing:
		return "editing"
	case StateCommitted:
		return "committed"
	case StateSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// PointerKind distinguishes press, drag and release samples.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMove
	PointerRelease
)

// PointerButton identifies which mouse button drives the stroke.
type PointerButton int

const (
	ButtonDraw  PointerButton = iota // left button
	ButtonErase                      // right button
)

// PointerEvent is one pointer sample in frame coordinates. Out-of-bounds
// positions are legal; the canvas clips them.
type PointerEvent struct {
	Kind   PointerKind
	Button PointerButton
	Pos    image.Point
}

// Key enumerates the editing commands the shell dispatches to the
// controller.
type Key int

const (
	KeyFill Key = iota
	KeyCommit
	KeySkip
	KeyClear
	KeyQuit
	KeyBrushInc
	KeyBrushDec
)

func (k Key) String() string {
	switch k {
	case KeyFill:
		return "fill"
	case KeyCommit:
		return "commit"
	case KeySkip:
		return "skip"
	case KeyClear:
		return "clear"
	case KeyQuit:
		return "quit"
	case KeyBrushInc:
		return "brush-inc"
	case KeyBrushDec:
		return "brush-dec"
	default:
		return "unknown"
	}
}

// Store is the I/O collaborator contract: frame enumeration, decoding and
// artifact persistence. The controller treats any Store error as fatal to
// the current frame only; session state stays intact.
type Store interface {
	// Pending returns the ordered identifiers still to label.
	Pending() ([]string, error)
	// Total returns the number of supported frames found at startup,
	// labeled or not.
	Total() int
	Load(id string) (*image.RGBA, error)
	SaveMask(id string, mask *image.Gray) error
	SaveOverlay(id string, overlay image.Image) error
	// MarkSkipped records id in the skip ledger. Only called when the
	// remember-skips policy is enabled.
	MarkSkipped(id string) error
}

// Renderer narrows the overlay compositor to what the controller needs.
type Renderer interface {
	Render(frame *image.RGBA, region, stroke *canvas.Mask) *image.RGBA
	Export(frame *image.RGBA, region *canvas.Mask) *image.RGBA
}

// StateListener is called on each successful frame state transition.
type StateListener func(prev, next FrameState)

// Summary reports session totals for the end-of-session log.
type Summary struct {
	Committed int
	Skipped   int
	Remaining int
}
