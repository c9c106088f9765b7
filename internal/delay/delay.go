// Package delay provides a cancellable delayed action with at most one
// pending call.
package delay

import (
	"sync"
	"time"
)

// Action runs a function once after a delay.
//
// Scheduling a new function replaces the pending one instead of queuing
// it. The zero value is ready to use.
type Action struct {
	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// Replace cancels the pending call, if any, and schedules fn to run after d.
func (a *Action) Replace(d time.Duration, fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopLocked()

	a.gen++
	gen := a.gen

	a.timer = time.AfterFunc(d, func() {
		a.mu.Lock()
		// A stale timer may fire after Stop lost the race.
		if gen != a.gen {
			a.mu.Unlock()
			return
		}

		a.timer = nil
		a.mu.Unlock()

		fn()
	})
}

// Cancel stops the pending call. It is a no-op when nothing is pending.
func (a *Action) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopLocked()
}

// Pending reports whether a call is scheduled and has not started yet.
func (a *Action) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.timer != nil
}

func (a *Action) stopLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}

	a.gen++
}
