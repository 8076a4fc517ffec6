package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/gas-label-go/config"
	"github.com/soocke/gas-label-go/debug"
	"github.com/soocke/gas-label-go/domain/overlay"
	"github.com/soocke/gas-label-go/domain/session"
	"github.com/soocke/gas-label-go/frames"
	"github.com/soocke/gas-label-go/ui/model"
	"github.com/soocke/gas-label-go/ui/presenter"
	"github.com/soocke/gas-label-go/ui/theme"
	"github.com/soocke/gas-label-go/ui/view"
)

const tick = 50 * time.Millisecond

// ErrNoFrames is returned when the selected folder holds no supported
// images.
var ErrNoFrames = fmt.Errorf("no supported images in selected folder")

type app struct {
	cfg    *config.Config
	logger *slog.Logger
	width  int
	height int

	store   *frames.Store
	ctrl    *session.Controller
	rootV   *view.RootView
	pres    *presenter.LabelPresenter
	loop    *presenter.Loop
	afterID string
	closed  bool
}

// NewApp wires the store, controller and window for one labeling session
// over framesDir.
func NewApp(title string, width, height int, framesDir string, cfg *config.Config, logger *slog.Logger) (*app, error) {
	store, err := frames.NewStore(framesDir, cfg, logger)
	if err != nil {
		return nil, err
	}
	if store.Total() == 0 {
		return nil, ErrNoFrames
	}

	a := &app{
		cfg:    cfg,
		logger: logger,
		width:  width,
		height: height,
		store:  store,
		ctrl:   session.NewController(store, overlay.New(cfg), cfg, logger),
	}

	logger.Info("selected folder", "frames", framesDir,
		"masks", store.MasksDir(), "overlays", store.OverlaysDir(),
		"total", store.Total())

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a, nil
}

// Start builds the UI, loads the first frame and runs the Tk event loop
// until the session completes or the operator quits.
func (a *app) Start() error {
	theme.InitStyles()

	a.rootV = view.NewRootView(a.cfg, a.logger)
	a.rootV.Build(view.Handlers{
		OnPointer: a.handlePointer,
		OnKey:     a.handleKey,
		OnScroll:  a.handleScroll,
		OnExit:    func() { a.handleKey(session.KeyQuit) },
	}, a.width-20, a.height-120)

	a.pres = presenter.NewLabelPresenter(a.ctrl, a.rootV, model.NewProgressModel())
	a.ctrl.AddListener(a.pres.OnState)
	a.loop = presenter.NewLoop(a.pres, a.scheduleUpdate)

	a.bindKeys()

	if a.cfg.Debug {
		debug.StartMemLogger(2*time.Second, a.logger)
		debug.StartGoroutineLogger(2*time.Second, a.logger)
	}

	if err := a.ctrl.Start(); err != nil {
		return err
	}
	a.logSessionStart()

	a.scheduleUpdate()
	App.Wait()

	sum := a.ctrl.Summary()
	a.logger.Info("session summary",
		"committed", sum.Committed, "skipped", sum.Skipped, "remaining", sum.Remaining,
		"masks", a.store.MasksDir(), "overlays", a.store.OverlaysDir())
	return nil
}

// bindKeys installs the keyboard controls on the main window, matching
// the button labels.
func (a *app) bindKeys() {
	key := func(k session.Key) func() {
		return func() { a.handleKey(k) }
	}
	Bind(App, "<Key-f>", Command(key(session.KeyFill)))
	Bind(App, "<Return>", Command(key(session.KeyCommit)))
	Bind(App, "<space>", Command(key(session.KeyCommit)))
	Bind(App, "<Key-n>", Command(key(session.KeySkip)))
	Bind(App, "<Key-c>", Command(key(session.KeyClear)))
	Bind(App, "<plus>", Command(key(session.KeyBrushInc)))
	Bind(App, "<equal>", Command(key(session.KeyBrushInc)))
	Bind(App, "<minus>", Command(key(session.KeyBrushDec)))
	Bind(App, "<Key-q>", Command(key(session.KeyQuit)))
	Bind(App, "<Escape>", Command(key(session.KeyQuit)))
}

func (a *app) handlePointer(ev session.PointerEvent) {
	a.ctrl.HandlePointer(ev)
	a.pres.Invalidate()
}

func (a *app) handleScroll(delta int) {
	a.ctrl.HandleScroll(delta)
	a.pres.Invalidate()
}

func (a *app) handleKey(k session.Key) {
	if err := a.ctrl.HandleKey(k); err != nil {
		// Fatal to the current frame only; the session stays editable.
		a.logger.Error("frame commit failed", "error", err)
	}
	a.pres.Invalidate()
	if a.ctrl.Complete() {
		a.exitHandler()
	}
}

func (a *app) update() {
	if a.ctrl.Complete() {
		a.exitHandler()
		return
	}
	a.loop.Tick()
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.update() })
}

func (a *app) exitHandler() {
	if a.closed {
		return
	}
	a.closed = true
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	Destroy(App)
}

func (a *app) logSessionStart() {
	a.logger.Info("controls",
		"draw", "left mouse", "erase", "right mouse",
		"fill", "F", "save", "Enter/Space", "skip", "N",
		"clear", "C", "brush", "+/-/scroll", "quit", "Q/Esc")
}
