package model

import "fmt"

// ProgressModel tracks labeling progress for the HUD line. It is decoupled
// from the UI; the presenter polls the session controller and pushes the
// formatted text into the view. The zero value is ready to use.
type ProgressModel struct {
	labeled int
	total   int
	brush   int
	current string
}

// NewProgressModel returns a pointer to a ready-to-use ProgressModel.
func NewProgressModel() *ProgressModel { return &ProgressModel{} }

// Update records the latest progress snapshot.
func (m *ProgressModel) Update(labeled, total, brush int, current string) {
	if m == nil {
		return
	}
	m.labeled = labeled
	m.total = total
	m.brush = brush
	m.current = current
}

// HUD formats the progress line shown above the canvas, mirroring the
// "position/total | brush | filename" layout operators are used to.
func (m *ProgressModel) HUD() string {
	if m == nil || m.total == 0 {
		return ""
	}
	pos := m.labeled + 1
	if pos > m.total {
		pos = m.total
	}
	return fmt.Sprintf("%d/%d  |  Brush: %d  |  %s", pos, m.total, m.brush, m.current)
}
