package ordersync

import (
	"testing"
	"time"

	"github.com/quickserve/quickserve/internal/domain/model"
)

func TestPendingTrackerRegisterAndPeek(t *testing.T) {
	tracker := NewPendingTracker(3 * time.Second)
	tracker.RegisterPending("FC-0001", model.OrderStatusOngoing)

	status, ok := tracker.Peek("FC-0001")
	if !ok || status != model.OrderStatusOngoing {
		t.Fatalf("expected pending ONGOING, got %q ok=%v", status, ok)
	}
	if !tracker.IsLocked("FC-0001") {
		t.Fatal("registered order must be locked")
	}
	if _, ok := tracker.Peek("FC-9999"); ok {
		t.Fatal("unknown order must not be pending")
	}
}

func TestPendingTrackerConfirmKeepsLock(t *testing.T) {
	tracker := NewPendingTracker(3 * time.Second)
	tracker.RegisterPending("FC-0001", model.OrderStatusOngoing)
	tracker.Confirm("FC-0001")

	if _, ok := tracker.Peek("FC-0001"); ok {
		t.Fatal("confirmed order must not be pending")
	}
	if !tracker.IsLocked("FC-0001") {
		t.Fatal("lock must survive confirmation until the grace deadline")
	}
}

func TestPendingTrackerDropClearsEverything(t *testing.T) {
	tracker := NewPendingTracker(3 * time.Second)
	tracker.RegisterPending("FC-0001", model.OrderStatusCancelled)
	tracker.Drop("FC-0001")

	if _, ok := tracker.Peek("FC-0001"); ok {
		t.Fatal("dropped order must not be pending")
	}
	if tracker.IsLocked("FC-0001") {
		t.Fatal("dropped order must not be locked")
	}
}

func TestPendingTrackerGraceExpiry(t *testing.T) {
	now := time.Now()
	tracker := NewPendingTracker(3 * time.Second)
	tracker.now = func() time.Time { return now }

	tracker.RegisterPending("FC-0001", model.OrderStatusOngoing)
	tracker.Confirm("FC-0001")

	now = now.Add(2 * time.Second)
	if !tracker.IsLocked("FC-0001") {
		t.Fatal("lock must hold inside the grace window")
	}

	now = now.Add(2 * time.Second)
	if tracker.IsLocked("FC-0001") {
		t.Fatal("lock must expire after the grace window")
	}
	if _, ok := tracker.Peek("FC-0001"); ok {
		t.Fatal("expired entry must be evicted")
	}
}

func TestPendingTrackerDefaultGrace(t *testing.T) {
	tracker := NewPendingTracker(0)
	if tracker.grace != 3*time.Second {
		t.Fatalf("expected default grace 3s, got %v", tracker.grace)
	}
}
