package canvas

// Tool selects how pointer strokes mutate the stroke buffer.
type Tool int

const (
	ToolDraw Tool = iota
	ToolErase
)

func (t Tool) String() string {
	switch t {
	case ToolDraw:
		return "draw"
	case ToolErase:
		return "erase"
	default:
		return "unknown"
	}
}

// eraseScale widens the erase brush relative to the draw brush so a single
// pass removes a previously drawn path.
const eraseScale = 2

// Brush holds the session-sticky stroke radius. It is created once per
// session, passed by reference into canvas operations, and survives frame
// advances; adjustments are clamped to the configured bounds and never fail.
type Brush struct {
	radius int
	min    int
	max    int
}

// NewBrush returns a brush with the given radius clamped to [min, max].
// Degenerate bounds are normalized so the brush is always usable.
func NewBrush(radius, min, max int) *Brush {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	b := &Brush{min: min, max: max}
	b.SetRadius(radius)
	return b
}

// Radius returns the current draw radius.
func (b *Brush) Radius() int {
	if b == nil {
		return 1
	}
	return b.radius
}

// SetRadius sets the radius, clamped to the brush bounds.
func (b *Brush) SetRadius(r int) {
	if b == nil {
		return
	}
	if r < b.min {
		r = b.min
	}
	if r > b.max {
		r = b.max
	}
	b.radius = r
}

// Adjust changes the radius by delta, clamped to the brush bounds. A change
// takes effect on the next stroke segment only; already-stamped pixels are
// untouched.
func (b *Brush) Adjust(delta int) {
	if b == nil {
		return
	}
	b.SetRadius(b.radius + delta)
}
