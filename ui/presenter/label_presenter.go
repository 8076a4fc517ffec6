package presenter

import (
	"image"
	"time"

	"github.com/soocke/gas-label-go/domain/session"
	"github.com/soocke/gas-label-go/ui/model"
)

// Engine narrows the session controller to what the presenter needs.
type Engine interface {
	RenderFrame() *image.RGBA
	State() session.FrameState
	CurrentID() string
	BrushRadius() int
	Progress() (labeled, total int)
	Complete() bool
}

// LabelView updates the widgets the presenter owns.
type LabelView interface {
	UpdateCanvas(img image.Image)
	SetHUD(text string)
	SetStateLabel(text string)
}

// LabelPresenter reflects controller state into the view on each tick. It
// redraws only when an input event invalidated the composite or the frame
// state changed, so idle ticks stay cheap.
type LabelPresenter struct {
	eng   Engine
	view  LabelView
	prog  *model.ProgressModel
	dirty bool

	latest  session.FrameState // last reflected state
	lastID  string
	pending []session.FrameState
}

func NewLabelPresenter(eng Engine, view LabelView, prog *model.ProgressModel) *LabelPresenter {
	return &LabelPresenter{eng: eng, view: view, prog: prog, dirty: true}
}

// Invalidate marks the composite stale; the next Tick redraws it.
func (p *LabelPresenter) Invalidate() {
	if p == nil {
		return
	}
	p.dirty = true
}

// OnState queues a transitioned state from the controller listener.
//
// The latest queued state will be reflected on the next Tick.
func (p *LabelPresenter) OnState(prev, next session.FrameState) {
	if p == nil {
		return
	}
	p.pending = append(p.pending, next)
	p.dirty = true
}

// Tick flushes pending state changes and redraws the canvas and HUD when
// needed.
func (p *LabelPresenter) Tick(now time.Time) {
	if p == nil || p.eng == nil || p.view == nil {
		return
	}
	if len(p.pending) > 0 {
		last := p.pending[len(p.pending)-1]
		p.pending = p.pending[:0]
		if last != p.latest {
			p.latest = last
			p.view.SetStateLabel("State: " + last.String())
		}
	}
	if id := p.eng.CurrentID(); id != p.lastID {
		p.lastID = id
		p.dirty = true
	}
	if !p.dirty {
		return
	}
	p.dirty = false
	if frame := p.eng.RenderFrame(); frame != nil {
		p.view.UpdateCanvas(frame)
	}
	labeled, total := p.eng.Progress()
	p.prog.Update(labeled, total, p.eng.BrushRadius(), p.lastID)
	p.view.SetHUD(p.prog.HUD())
}
