package position

import (
	"sync"
	"time"
)

// DefaultDebounce is the coalescing window for anchored recomputation.
const DefaultDebounce = 50 * time.Millisecond

// Tracker keeps an anchored overlay in place while the anchor or
// viewport can move. Resize and scroll events call Notify; bursts
// coalesce through a debounce window into a single recompute callback,
// so a fast scroll does not thrash layout.
//
// The tracker is a scoped resource: Stop is the single disposer, it
// cancels any pending recompute and blocks new ones from being
// scheduled. Stop is safe to call more than once.
type Tracker struct {
	mu        sync.Mutex
	recompute func()
	debounce  time.Duration
	timer     *time.Timer
	stopped   bool
}

// NewTracker creates a tracker that invokes recompute after each burst
// of Notify calls. A non-positive debounce falls back to DefaultDebounce.
func NewTracker(recompute func(), debounce time.Duration) *Tracker {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Tracker{
		recompute: recompute,
		debounce:  debounce,
	}
}

// Notify schedules a recompute. Repeated calls within the debounce
// window collapse into one invocation.
func (t *Tracker) Notify() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}
	if t.timer != nil {
		t.timer.Reset(t.debounce)
		return
	}
	t.timer = time.AfterFunc(t.debounce, t.fire)
}

func (t *Tracker) fire() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.timer = nil
	recompute := t.recompute
	t.mu.Unlock()

	if recompute != nil {
		recompute()
	}
}

// Stop tears the tracker down and cancels any pending recompute. A
// component must call Stop as part of its own teardown or it leaks the
// pending timer and risks recomputing against a dead element.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
