package feed

import (
	"fmt"
	"testing"
	"time"

	"fraudwatch/internal/types"
)

func detail(n int) types.DetailRecord {
	return types.DetailRecord{
		TransactionID:     fmt.Sprintf("card_%d", n),
		TransactionStatus: types.StatusApproved,
	}
}

func TestNotificationQueueCap(t *testing.T) {
	q := NewNotificationQueue(NotificationTimings{DisplayFor: time.Minute})
	defer q.Close()

	for n := 1; n <= MaxQueuedNotifications+5; n++ {
		q.Enqueue(detail(n))
	}

	if got := q.Len(); got != MaxQueuedNotifications {
		t.Fatalf("queue length = %d, want %d", got, MaxQueuedNotifications)
	}

	all := q.All()
	if all[0].Detail.TransactionID != "card_25" {
		t.Errorf("newest = %q, want card_25", all[0].Detail.TransactionID)
	}
	for _, n := range all {
		if n.Detail.TransactionID == "card_1" {
			t.Error("oldest entry should have been dropped beyond the cap")
		}
	}
}

func TestNotificationQueueVisibleWindow(t *testing.T) {
	q := NewNotificationQueue(NotificationTimings{DisplayFor: time.Minute})
	defer q.Close()

	for n := 1; n <= 8; n++ {
		q.Enqueue(detail(n))
	}

	visible, overflow := q.Visible()
	if len(visible) != MaxVisibleNotifications {
		t.Fatalf("visible = %d, want %d", len(visible), MaxVisibleNotifications)
	}
	if overflow != 3 {
		t.Errorf("overflow = %d, want 3", overflow)
	}
	if visible[0].Detail.TransactionID != "card_8" {
		t.Errorf("visible[0] = %q, want card_8 (newest first)", visible[0].Detail.TransactionID)
	}
}

func TestNotificationLifecycle(t *testing.T) {
	q := NewNotificationQueue(NotificationTimings{
		ShowDelay:  5 * time.Millisecond,
		DisplayFor: 60 * time.Millisecond,
		ExitDelay:  10 * time.Millisecond,
	})
	defer q.Close()

	id := q.Enqueue(detail(1))
	if id == "" {
		t.Fatal("Enqueue returned empty id")
	}

	all := q.All()
	if all[0].Visible {
		t.Error("notification should start hidden")
	}

	if !waitFor(t, time.Second, func() bool {
		items := q.All()
		return len(items) == 1 && items[0].Visible
	}) {
		t.Fatal("notification never became visible")
	}

	// It must pass through the exiting state before removal.
	sawExiting := waitFor(t, time.Second, func() bool {
		items := q.All()
		return len(items) == 0 || items[0].Exiting
	})
	if !sawExiting {
		t.Fatal("notification never began exiting")
	}

	if !waitFor(t, time.Second, func() bool { return q.Len() == 0 }) {
		t.Fatal("notification was never auto-removed")
	}
}

func TestNotificationManualDismissal(t *testing.T) {
	q := NewNotificationQueue(NotificationTimings{
		ShowDelay:  5 * time.Millisecond,
		DisplayFor: 50 * time.Millisecond,
		ExitDelay:  10 * time.Millisecond,
	})
	defer q.Close()

	id := q.Enqueue(detail(1))
	q.Remove(id)

	if q.Len() != 0 {
		t.Fatal("manual dismissal should remove immediately")
	}

	// Removing again is a no-op, and the cancelled auto-expiry must not
	// resurrect or double-remove anything.
	q.Remove(id)
	time.Sleep(100 * time.Millisecond)
	if q.Len() != 0 {
		t.Errorf("queue length = %d after timers elapsed, want 0", q.Len())
	}
}

func TestNotificationClearWithInFlightTimers(t *testing.T) {
	q := NewNotificationQueue(NotificationTimings{
		ShowDelay:  5 * time.Millisecond,
		DisplayFor: 30 * time.Millisecond,
		ExitDelay:  5 * time.Millisecond,
	})
	defer q.Close()

	for n := 1; n <= 10; n++ {
		q.Enqueue(detail(n))
	}
	q.Clear()

	if q.Len() != 0 {
		t.Fatal("Clear should empty the queue immediately")
	}

	// Any timers that already fired must no-op against the emptied queue.
	time.Sleep(80 * time.Millisecond)
	if q.Len() != 0 {
		t.Errorf("queue length = %d after timers elapsed, want 0", q.Len())
	}
}

func TestNotificationEnqueueAfterClose(t *testing.T) {
	q := NewNotificationQueue(NotificationTimings{})
	q.Close()

	if id := q.Enqueue(detail(1)); id != "" {
		t.Errorf("Enqueue after Close returned id %q, want empty", id)
	}
	if q.Len() != 0 {
		t.Error("closed queue should stay empty")
	}
}
