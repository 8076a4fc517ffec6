package presenter

import "time"

// Loop drives periodic presenter updates from the Tk after-callback.
//
// It ticks the label presenter and invokes a scheduler callback that
// re-arms the next tick. The zero value is usable (methods are nil-safe).
type Loop struct {
	Label    *LabelPresenter
	Schedule func()
}

func NewLoop(label *LabelPresenter, schedule func()) *Loop {
	return &Loop{Label: label, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	if l.Label != nil {
		l.Label.Tick(time.Now())
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
