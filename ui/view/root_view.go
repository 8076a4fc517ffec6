package view

import (
	"image"
	"log/slog"

	"github.com/soocke/gas-label-go/config"
	"github.com/soocke/gas-label-go/domain/session"
	"github.com/soocke/gas-label-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI
// callbacks. It owns the canvas subview and exposes minimal methods for
// the presenter.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	Canvas *CanvasView

	hudLabel   *LabelWidget
	stateLabel *LabelWidget
}

// UI abstracts the view operations needed by the presenter, decoupling it
// from the concrete RootView implementation.
type UI interface {
	UpdateCanvas(img image.Image)
	SetHUD(text string)
	SetStateLabel(text string)
}

// Handlers carries the user-action callbacks the shell supplies to Build.
type Handlers struct {
	OnPointer func(session.PointerEvent)
	OnKey     func(session.Key)
	OnScroll  func(delta int)
	OnExit    func()
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout: HUD and state labels on top, command
// buttons mirroring the key bindings, and the drawing canvas below.
func (rv *RootView) Build(h Handlers, canvasW, canvasH int) {
	if rv == nil {
		return
	}
	rv.hudLabel = Label(Txt(""), Style(theme.StyleHUDLabel), Borderwidth(1), Relief("ridge"))
	Grid(rv.hudLabel, Row(0), Column(0), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.stateLabel = Label(Txt("State: <none>"), Style(theme.StyleStateLabel), Borderwidth(1), Relief("ridge"))
	Grid(rv.stateLabel, Row(0), Column(3), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	key := func(k session.Key) func() {
		return func() {
			if h.OnKey != nil {
				h.OnKey(k)
			}
		}
	}
	btnFrame := Frame()
	Grid(btnFrame, Row(1), Column(0), Columnspan(5), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	fillBtn := Button(Txt("Fill [F]"), Style(theme.StylePrimaryButton), Command(key(session.KeyFill)))
	Grid(fillBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	saveBtn := Button(Txt("Save [Enter]"), Style(theme.StylePrimaryButton), Command(key(session.KeyCommit)))
	Grid(saveBtn, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	skipBtn := Button(Txt("Skip [N]"), Style(theme.StylePrimaryButton), Command(key(session.KeySkip)))
	Grid(skipBtn, In(btnFrame), Row(0), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	clearBtn := Button(Txt("Clear [C]"), Style(theme.StyleDangerButton), Command(key(session.KeyClear)))
	Grid(clearBtn, In(btnFrame), Row(0), Column(3), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit [Q]"), Style(theme.StyleDangerButton), Command(func() {
		if h.OnExit != nil {
			h.OnExit()
		}
	}))
	Grid(exitBtn, In(btnFrame), Row(0), Column(4), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	rv.Canvas = NewCanvasView(2, canvasW, canvasH, h.OnPointer, h.OnScroll)
}

// UpdateCanvas replaces the displayed composite.
func (rv *RootView) UpdateCanvas(img image.Image) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.Update(img)
	}
}

// SetHUD updates the progress/brush/filename line.
func (rv *RootView) SetHUD(text string) {
	if rv != nil && rv.hudLabel != nil {
		rv.hudLabel.Configure(Txt(text))
	}
}

// SetStateLabel updates the frame state label.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.stateLabel != nil {
		rv.stateLabel.Configure(Txt(text))
	}
}
