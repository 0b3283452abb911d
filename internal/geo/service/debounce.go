package service

import (
	"sync"
	"time"
)

// TypingDebounceInterval is how long input must stay quiescent before a
// typeahead search is dispatched.
const TypingDebounceInterval = 400 * time.Millisecond

// Debouncer holds at most one pending scheduled function. Scheduling a
// new function cancels the pending one, so only the latest survives
// (last-write-wins). An already-running function is not interrupted;
// superseding it is the caller's concern.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given quiescence delay.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Schedule arranges for fn to run after the delay, replacing any pending
// scheduled function.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Cancel drops the pending scheduled function, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
