package editor

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid repeated triggers into a single trailing-edge
// invocation: each trigger restarts the window, and only the last function
// runs once the window elapses.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
}

func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, fn)
}
