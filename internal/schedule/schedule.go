// Package schedule models delayed UI feedback (scroll-into-view, indicator
// clears) as cancellable scheduled tasks, so rapid repeated triggers
// cancel-and-reschedule instead of leaving stale timers racing.
package schedule

import (
	"sync"
	"time"
)

// Task is a single-shot scheduled callback with an owning cancel token.
type Task struct {
	timer *time.Timer
}

// After schedules fn to run once after d and returns its task token.
func After(d time.Duration, fn func()) *Task {
	return &Task{timer: time.AfterFunc(d, fn)}
}

// Cancel stops the task. It reports whether the cancellation prevented the
// callback from running; cancelling an already-fired task returns false.
func (t *Task) Cancel() bool {
	if t == nil || t.timer == nil {
		return false
	}
	return t.timer.Stop()
}

// Debouncer owns at most one pending task. Scheduling a new callback
// cancels any pending one first, so the latest trigger wins.
type Debouncer struct {
	mu      sync.Mutex
	pending *Task
}

// Schedule cancels the pending task, if any, and arms fn after d.
func (db *Debouncer) Schedule(d time.Duration, fn func()) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.pending.Cancel()
	db.pending = After(d, fn)
}

// Cancel stops the pending task, if any.
func (db *Debouncer) Cancel() {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.pending.Cancel()
	db.pending = nil
}
