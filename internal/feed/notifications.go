package feed

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"fraudwatch/internal/types"
)

const (
	// MaxQueuedNotifications caps the queue; oldest entries beyond the cap
	// are dropped.
	MaxQueuedNotifications = 20
	// MaxVisibleNotifications is how many entries the consumer displays;
	// the remainder is reported as an overflow count.
	MaxVisibleNotifications = 5
)

// Notification is one toast-like item derived from an arriving detail
// record. Visible flips on shortly after creation (animated entry) and
// Exiting flips on just before timed removal (animated exit).
type Notification struct {
	ID        string             `json:"id"`
	Detail    types.DetailRecord `json:"transaction"`
	CreatedAt time.Time          `json:"createdAt"`
	Visible   bool               `json:"visible"`
	Exiting   bool               `json:"exiting"`
}

// NotificationTimings controls the per-item lifecycle schedule.
type NotificationTimings struct {
	ShowDelay  time.Duration // not-visible -> visible
	DisplayFor time.Duration // visible -> exiting
	ExitDelay  time.Duration // exiting -> removed
}

// DefaultNotificationTimings returns the production schedule.
func DefaultNotificationTimings() NotificationTimings {
	return NotificationTimings{
		ShowDelay:  50 * time.Millisecond,
		DisplayFor: 5 * time.Second,
		ExitDelay:  300 * time.Millisecond,
	}
}

type notificationEntry struct {
	Notification
	timers []*time.Timer
}

// NotificationQueue is a bounded, newest-first list of ephemeral
// notifications. Every item carries its own entry/exit timers; queue-level
// capping and manual dismissal are independent of those timers, which
// no-op safely when their target is already gone.
type NotificationQueue struct {
	mu      sync.Mutex
	items   []*notificationEntry // newest first
	timings NotificationTimings
	closed  bool
}

// NewNotificationQueue creates a queue with the given timings. Zero
// timings fall back to the defaults.
func NewNotificationQueue(timings NotificationTimings) *NotificationQueue {
	def := DefaultNotificationTimings()
	if timings.ShowDelay <= 0 {
		timings.ShowDelay = def.ShowDelay
	}
	if timings.DisplayFor <= 0 {
		timings.DisplayFor = def.DisplayFor
	}
	if timings.ExitDelay <= 0 {
		timings.ExitDelay = def.ExitDelay
	}
	return &NotificationQueue{timings: timings}
}

// Enqueue prepends a new notification for the given detail record and
// schedules its lifecycle. Returns the generated notification ID.
func (q *NotificationQueue) Enqueue(detail types.DetailRecord) string {
	entry := &notificationEntry{
		Notification: Notification{
			ID:        uuid.NewString(),
			Detail:    detail,
			CreatedAt: time.Now(),
		},
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ""
	}

	q.items = append([]*notificationEntry{entry}, q.items...)
	if len(q.items) > MaxQueuedNotifications {
		for _, dropped := range q.items[MaxQueuedNotifications:] {
			stopTimers(dropped)
		}
		q.items = q.items[:MaxQueuedNotifications]
	}

	id := entry.ID
	show := time.AfterFunc(q.timings.ShowDelay, func() {
		q.markVisible(id)
	})
	expire := time.AfterFunc(q.timings.DisplayFor, func() {
		q.beginExit(id)
	})
	entry.timers = append(entry.timers, show, expire)
	q.mu.Unlock()

	return id
}

// markVisible flips the entry-animation flag.
func (q *NotificationQueue) markVisible(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if entry := q.findLocked(id); entry != nil {
		entry.Visible = true
	}
}

// beginExit marks the item as exiting and schedules its removal through
// the same path manual dismissal uses.
func (q *NotificationQueue) beginExit(id string) {
	q.mu.Lock()
	entry := q.findLocked(id)
	if entry == nil || q.closed {
		q.mu.Unlock()
		return
	}
	entry.Exiting = true
	remove := time.AfterFunc(q.timings.ExitDelay, func() {
		q.Remove(id)
	})
	entry.timers = append(entry.timers, remove)
	q.mu.Unlock()
}

// Remove dismisses a notification and cancels its pending timers.
// Removing an id that is already gone is a no-op.
func (q *NotificationQueue) Remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, entry := range q.items {
		if entry.ID == id {
			stopTimers(entry)
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}

// Clear empties the queue immediately. In-flight timers no-op afterwards.
func (q *NotificationQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, entry := range q.items {
		stopTimers(entry)
	}
	q.items = nil
}

// Close clears the queue and rejects further enqueues.
func (q *NotificationQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	for _, entry := range q.items {
		stopTimers(entry)
	}
	q.items = nil
}

// Visible returns the display window (newest first, at most
// MaxVisibleNotifications) and the count of queued items beyond it.
func (q *NotificationQueue) Visible() ([]Notification, int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := len(q.items)
	if n > MaxVisibleNotifications {
		n = MaxVisibleNotifications
	}
	out := make([]Notification, 0, n)
	for _, entry := range q.items[:n] {
		out = append(out, entry.Notification)
	}
	return out, len(q.items) - n
}

// All returns a snapshot of every queued notification, newest first.
func (q *NotificationQueue) All() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Notification, 0, len(q.items))
	for _, entry := range q.items {
		out = append(out, entry.Notification)
	}
	return out
}

// Len returns the number of queued notifications.
func (q *NotificationQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *NotificationQueue) findLocked(id string) *notificationEntry {
	for _, entry := range q.items {
		if entry.ID == id {
			return entry
		}
	}
	return nil
}

func stopTimers(entry *notificationEntry) {
	for _, t := range entry.timers {
		t.Stop()
	}
}
