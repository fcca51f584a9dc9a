// Package debounce provides a per-key delayed task scheduler. Scheduling a
// key that already has a pending task cancels and replaces it, so rapid
// repeats collapse into one execution per key while distinct keys stay
// independent.
package debounce

import (
	"sync"
	"time"
)

type Debouncer[K comparable] struct {
	mu      sync.Mutex
	delay   time.Duration
	pending map[K]*time.Timer
	stopped bool
}

func New[K comparable](delay time.Duration) *Debouncer[K] {
	return &Debouncer[K]{
		delay:   delay,
		pending: make(map[K]*time.Timer),
	}
}

// Schedule runs fn after the quiet period. A pending task for the same key is
// cancelled and replaced atomically; tasks for other keys are untouched.
func (d *Debouncer[K]) Schedule(key K, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if t, ok := d.pending[key]; ok {
		t.Stop()
	}
	d.pending[key] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.pending, key)
		d.mu.Unlock()
		fn()
	})
}

// Cancel drops the pending task for key, if any. Reports whether one existed.
func (d *Debouncer[K]) Cancel(key K) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	t, ok := d.pending[key]
	if ok {
		t.Stop()
		delete(d.pending, key)
	}
	return ok
}

// Flush runs every pending task immediately.
func (d *Debouncer[K]) Flush() {
	d.mu.Lock()
	timers := d.pending
	d.pending = make(map[K]*time.Timer)
	d.mu.Unlock()

	for _, t := range timers {
		// Reset to zero fires the callback now if it had not fired yet.
		if t.Stop() {
			t.Reset(0)
		}
	}
}

// Stop cancels all pending tasks. Tasks already running are not interrupted.
func (d *Debouncer[K]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	for key, t := range d.pending {
		t.Stop()
		delete(d.pending, key)
	}
}

// Len returns the number of pending tasks.
func (d *Debouncer[K]) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
