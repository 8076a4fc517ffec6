package session

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/google/uuid"

	"github.com/soocke/gas-label-go/config"
	"github.com/soocke/gas-label-go/domain/canvas"
)

// Controller sequences the per-frame labeling lifecycle over the pending
// queue: LOADED -> EDITING -> {COMMITTED, SKIPPED}, then the next frame.
// All methods run synchronously on the caller's (the Tk event loop's)
// thread; the controller owns every piece of mutable state and nothing
// else aliases it, so no locking is involved.
type Controller struct {
	logger    *slog.Logger
	cfg       *config.Config
	store     Store
	renderer  Renderer
	canvas    *canvas.Canvas
	brush     *canvas.Brush
	sessionID string

	queue     []string
	idx       int
	currentID string
	state     FrameState
	done      bool
	quit      bool

	committed int
	skipped   int
	listeners []StateListener

	pointer struct {
		active bool
		tool   canvas.Tool
		last   image.Point
	}
}

// NewController wires a controller with a fresh canvas and a session-sticky
// brush built from the configured bounds.
func NewController(store Store, renderer Renderer, cfg *config.Config, logger *slog.Logger) *Controller {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Controller{
		logger:    logger,
		cfg:       cfg,
		store:     store,
		renderer:  renderer,
		canvas:    canvas.New(),
		brush:     canvas.NewBrush(cfg.BrushSize, cfg.BrushMin, cfg.BrushMax),
		sessionID: uuid.NewString(),
	}
}

// Start builds the work queue and loads the first frame. It fails only
// when the pending list itself cannot be produced; unreadable frames are
// logged and passed over.
func (c *Controller) Start() error {
	pending, err := c.store.Pending()
	if err != nil {
		return fmt.Errorf("list pending frames: %w", err)
	}
	c.queue = pending
	c.idx = 0
	if c.logger != nil {
		c.logger.Info("session started",
			"session", c.sessionID,
			"pending", len(pending),
			"total", c.store.Total(),
		)
	}
	c.advance()
	return nil
}

// advance loads the next readable frame from the queue, skipping over
// frames the store cannot decode, and binds it to the canvas. When the
// queue runs out the session is complete.
func (c *Controller) advance() {
	for c.idx < len(c.queue) {
		id := c.queue[c.idx]
		img, err := c.store.Load(id)
		if err != nil {
			if c.logger != nil {
				c.logger.Warn("skipping unreadable frame", "frame", id, "error", err)
			}
			c.idx++
			continue
		}
		c.currentID = id
		c.canvas.BeginFrame(img)
		c.pointer.active = false
		c.state = StateLoaded
		if c.logger != nil {
			c.logger.Debug("frame loaded", "frame", id, "session", c.sessionID)
		}
		return
	}
	c.currentID = ""
	c.canvas.BeginFrame(nil)
	c.done = true
	if c.logger != nil {
		c.logger.Info("all frames processed", "session", c.sessionID,
			"committed", c.committed, "skipped", c.skipped)
	}
}

// HandlePointer applies one pointer sample. The first interaction moves
// the frame from LOADED to EDITING. A press stamps immediately so a click
// without a drag still marks a disk.
func (c *Controller) HandlePointer(ev PointerEvent) {
	if c == nil || c.Complete() || c.canvas.Frame() == nil {
		return
	}
	switch ev.Kind {
	case PointerPress:
		if c.state == StateLoaded {
			c.transition(StateEditing)
		}
		c.pointer.active = true
		c.pointer.tool = canvas.ToolDraw
		if ev.Button == ButtonErase {
			c.pointer.tool = canvas.ToolErase
		}
		c.pointer.last = ev.Pos
		c.applyStroke(ev.Pos, ev.Pos)
	case PointerMove:
		if !c.pointer.active {
			return
		}
		c.applyStroke(c.pointer.last, ev.Pos)
		c.pointer.last = ev.Pos
	case PointerRelease:
		c.pointer.active = false
	}
}

func (c *Controller) applyStroke(p0, p1 image.Point) {
	if c.pointer.tool == canvas.ToolErase {
		c.canvas.Erase(p0, p1, c.brush)
		return
	}
	c.canvas.Draw(p0, p1, c.brush)
}

// HandleScroll adjusts the brush radius by the sign of delta, clamped to
// the configured bounds.
func (c *Controller) HandleScroll(delta int) {
	if c == nil || delta == 0 {
		return
	}
	if delta > 0 {
		c.brush.Adjust(1)
	} else {
		c.brush.Adjust(-1)
	}
}

// HandleKey dispatches an editing command. It returns an error only for
// store failures during commit, which are fatal to the current frame but
// leave the session intact.
func (c *Controller) HandleKey(k Key) error {
	if c == nil {
		return nil
	}
	switch k {
	case KeyBrushInc:
		c.brush.Adjust(1)
		return nil
	case KeyBrushDec:
		c.brush.Adjust(-1)
		return nil
	case KeyQuit:
		c.quitSession()
		return nil
	}
	if c.Complete() || c.canvas.Frame() == nil {
		return nil
	}
	switch k {
	case KeyFill:
		if c.state == StateLoaded {
			c.transition(StateEditing)
		}
		c.canvas.Fill()
		if c.logger != nil {
			if n := c.canvas.Region().Count(); n > 0 {
				c.logger.Info("region filled", "frame", c.currentID, "pixels", n)
			} else {
				c.logger.Info("no enclosed region; draw a closed boundary first", "frame", c.currentID)
			}
		}
	case KeyClear:
		c.canvas.Clear()
		if c.logger != nil {
			c.logger.Debug("canvas cleared", "frame", c.currentID)
		}
	case KeyCommit:
		return c.commit()
	case KeySkip:
		c.skip()
	}
	return nil
}

// commit persists the mask and the exported overlay for the current frame,
// then advances. Committing an empty mask is a valid outcome ("no gas
// visible") and is logged rather than rejected.
func (c *Controller) commit() error {
	id := c.currentID
	region := c.canvas.Region()
	if region.Empty() && c.logger != nil {
		c.logger.Info("committing empty mask", "frame", id)
	}
	if err := c.store.SaveMask(id, region.Gray()); err != nil {
		if c.logger != nil {
			c.logger.Error("mask save failed", "frame", id, "error", err)
		}
		return fmt.Errorf("save mask %s: %w", id, err)
	}
	ov := c.renderer.Export(c.canvas.Frame(), region)
	if err := c.store.SaveOverlay(id, ov); err != nil {
		if c.logger != nil {
			c.logger.Error("overlay save failed", "frame", id, "error", err)
		}
		return fmt.Errorf("save overlay %s: %w", id, err)
	}
	c.committed++
	c.transition(StateCommitted)
	if c.logger != nil {
		c.logger.Info("frame committed", "frame", id, "pixels", region.Count())
	}
	c.idx++
	c.advance()
	return nil
}

// skip leaves no artifacts for the current frame. Under the default policy
// the frame is offered again next session; with RememberSkips the store
// records it in the skip ledger.
func (c *Controller) skip() {
	id := c.currentID
	if c.cfg.RememberSkips {
		if err := c.store.MarkSkipped(id); err != nil && c.logger != nil {
			c.logger.Warn("skip ledger update failed", "frame", id, "error", err)
		}
	}
	c.skipped++
	c.transition(StateSkipped)
	if c.logger != nil {
		c.logger.Info("frame skipped", "frame", id)
	}
	c.idx++
	c.advance()
}

// quitSession ends the whole session immediately, discarding uncommitted
// edits for the current frame only.
func (c *Controller) quitSession() {
	if c.quit {
		return
	}
	c.quit = true
	c.done = true
	if c.logger != nil {
		c.logger.Info("session quit", "session", c.sessionID,
			"committed", c.committed, "skipped", c.skipped)
	}
}

// transition performs a guarded state change with logging and listener
// fan-out. Same-state transitions are ignored.
func (c *Controller) transition(next FrameState) {
	prev := c.state
	if prev == next {
		return
	}
	c.state = next
	if c.logger != nil {
		c.logger.Debug("frame state transition",
			"frame", c.currentID, "from", prev.String(), "to", next.String())
	}
	for _, l := range c.listeners {
		l(prev, next)
	}
}

// AddListener registers a transition listener. Listeners run synchronously
// during the transition.
func (c *Controller) AddListener(l StateListener) {
	if c == nil || l == nil {
		return
	}
	c.listeners = append(c.listeners, l)
}

// RenderFrame returns the current display composite, or nil when the
// session is complete.
func (c *Controller) RenderFrame() *image.RGBA {
	if c == nil || c.canvas.Frame() == nil {
		return nil
	}
	return c.renderer.Render(c.canvas.Frame(), c.canvas.Region(), c.canvas.StrokeBuffer())
}

// State returns the active frame's lifecycle state.
func (c *Controller) State() FrameState { return c.state }

// CurrentID returns the identifier of the active frame, or "" when none.
func (c *Controller) CurrentID() string { return c.currentID }

// Complete reports whether the queue is exhausted or the session was quit.
func (c *Controller) Complete() bool { return c == nil || c.done }

// Quit requests immediate session end, equivalent to HandleKey(KeyQuit).
func (c *Controller) Quit() { c.quitSession() }

// BrushRadius returns the current brush radius for the HUD.
func (c *Controller) BrushRadius() int { return c.brush.Radius() }

// Progress returns how many frames carry a label (pre-existing plus
// committed this session) and the total frame count.
func (c *Controller) Progress() (labeled, total int) {
	total = c.store.Total()
	pre := total - len(c.queue)
	if pre < 0 {
		pre = 0
	}
	return pre + c.committed, total
}

// Summary reports the session totals.
func (c *Controller) Summary() Summary {
	remaining := len(c.queue) - c.idx
	if remaining < 0 {
		remaining = 0
	}
	return Summary{Committed: c.committed, Skipped: c.skipped, Remaining: remaining}
}
