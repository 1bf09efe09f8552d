package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/Aashif-Raza/TrendNest/internal/schedule"
)

// Notification kind constants.
const (
	KindInfo    = "info"
	KindSuccess = "success"
	KindError   = "error"
	KindWarning = "warning"
	KindSearch  = "search"
)

// SearchResult is the structured payload of a search-result notification.
type SearchResult struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Notification is one transient, dismissible message. IDs are assigned by
// the queue, monotonically. A zero TTL falls back to the queue default.
type Notification struct {
	ID      int64         `json:"id"`
	Kind    string        `json:"kind"`
	Message string        `json:"message,omitempty"`
	Search  *SearchResult `json:"search,omitempty"`
	TTL     time.Duration `json:"-"`

	// ClearAction, when set, is invoked exactly once by TriggerClear
	// before the notification self-dismisses.
	ClearAction func() `json:"-"`
}

type entry struct {
	n       Notification
	task    *schedule.Task
	cleared bool
}

// Queue holds the active notifications in insertion order and dismisses
// each one automatically when its time-to-live elapses. Expiry timers fire
// on their own goroutines, so the queue guards its state with a mutex.
type Queue struct {
	mu         sync.Mutex
	entries    []*entry
	nextID     int64
	defaultTTL time.Duration
	logger     *slog.Logger
}

// NewQueue creates a queue with the given default time-to-live.
func NewQueue(defaultTTL time.Duration, logger *slog.Logger) *Queue {
	return &Queue{defaultTTL: defaultTTL, logger: logger}
}

// Push appends the notification, assigns its ID and arms the single-shot
// auto-dismiss timer measured from now.
func (q *Queue) Push(n Notification) int64 {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.nextID++
	n.ID = q.nextID
	if n.TTL <= 0 {
		n.TTL = q.defaultTTL
	}

	e := &entry{n: n}
	id := n.ID
	e.task = schedule.After(n.TTL, func() {
		q.Dismiss(id)
	})
	q.entries = append(q.entries, e)

	q.logger.Debug("notification pushed",
		slog.Int64("id", n.ID),
		slog.String("kind", n.Kind),
	)

	return n.ID
}

// Dismiss removes the notification and cancels its timer. Dismissing an
// unknown or already-dismissed ID is a no-op.
func (q *Queue) Dismiss(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.dismissLocked(id)
}

func (q *Queue) dismissLocked(id int64) {
	for i, e := range q.entries {
		if e.n.ID != id {
			continue
		}
		e.task.Cancel()
		q.entries = append(q.entries[:i], q.entries[i+1:]...)
		return
	}
}

// TriggerClear invokes the notification's clear action exactly once, then
// self-dismisses. Repeat triggers and notifications without an action are
// no-ops.
func (q *Queue) TriggerClear(id int64) {
	q.mu.Lock()

	var action func()
	for _, e := range q.entries {
		if e.n.ID != id {
			continue
		}
		if e.n.ClearAction != nil && !e.cleared {
			e.cleared = true
			action = e.n.ClearAction
		}
		break
	}
	if action != nil {
		q.dismissLocked(id)
	}
	q.mu.Unlock()

	// Run outside the lock: clear actions call back into the owning
	// controller.
	if action != nil {
		action()
	}
}

// Active returns the live notifications, oldest first.
func (q *Queue) Active() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Notification, len(q.entries))
	for i, e := range q.entries {
		out[i] = e.n
	}
	return out
}

// Len returns the number of live notifications.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Close cancels every pending auto-dismiss timer and empties the queue.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, e := range q.entries {
		e.task.Cancel()
	}
	q.entries = nil
}
