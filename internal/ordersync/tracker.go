package ordersync

import (
	"sync"
	"time"

	"github.com/quickserve/quickserve/internal/domain/model"
)

// PendingTracker records optimistic status changes that have not yet been
// confirmed against the remote order source. A registered order is also
// "locked": even after the pending status is confirmed and cleared, the lock
// lingers until the grace period elapses so that a lagging read issued before
// the write became visible cannot clobber the local state.
type PendingTracker struct {
	mu      sync.Mutex
	grace   time.Duration
	now     func() time.Time
	pending map[string]model.OrderStatus
	locked  map[string]time.Time
}

// NewPendingTracker constructs a tracker with the given grace period.
// The grace period is a tunable heuristic, not a correctness bound.
func NewPendingTracker(grace time.Duration) *PendingTracker {
	if grace <= 0 {
		grace = 3 * time.Second
	}
	return &PendingTracker{
		grace:   grace,
		now:     time.Now,
		pending: make(map[string]model.OrderStatus),
		locked:  make(map[string]time.Time),
	}
}

// RegisterPending records the intended status for an order and locks it.
func (t *PendingTracker) RegisterPending(orderID string, status model.OrderStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending[orderID] = status
	t.locked[orderID] = t.now().Add(t.grace)
}

// Confirm clears the pending status after the remote write succeeded.
// The lock is kept until its deadline passes.
func (t *PendingTracker) Confirm(orderID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.pending, orderID)
}

// Drop removes both the pending status and the lock immediately. Used when
// the remote write failed and ground truth must win again right away.
func (t *PendingTracker) Drop(orderID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.pending, orderID)
	delete(t.locked, orderID)
}

// Peek returns the pending status for an order, if any.
func (t *PendingTracker) Peek(orderID string) (model.OrderStatus, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.expired(orderID) {
		return "", false
	}
	status, ok := t.pending[orderID]
	return status, ok
}

// IsLocked reports whether the order is still within its grace window.
func (t *PendingTracker) IsLocked(orderID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.expired(orderID) {
		return false
	}
	_, ok := t.locked[orderID]
	return ok
}

// expired lazily evicts entries whose grace deadline has passed.
// Callers must hold t.mu.
func (t *PendingTracker) expired(orderID string) bool {
	deadline, ok := t.locked[orderID]
	if !ok {
		return true
	}
	if t.now().After(deadline) {
		delete(t.pending, orderID)
		delete(t.locked, orderID)
		return true
	}
	return false
}
