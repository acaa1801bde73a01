package test

import (
	"context"
	"sync"

	"github.com/quickserve/quickserve/internal/domain/model"
	"github.com/quickserve/quickserve/internal/ordersync"
	"github.com/quickserve/quickserve/internal/usecase"
)

// StatusCall records one remote status write observed by a stub.
type StatusCall struct {
	OrderID string
	To      model.OrderStatus
	Reason  string
	Note    string
}

// SyncSourceStub implements the sync session's remote source with
// overridable behaviour.
type SyncSourceStub struct {
	ListSinceFn       func(context.Context, int64, int64, int) ([]model.Order, error)
	ListRecentFn      func(context.Context, int) ([]model.Order, error)
	UpdateStatusFn    func(context.Context, ordersync.Profile, string, model.OrderStatus, string, string) (*model.Order, error)
	ListRestaurantsFn func(context.Context, string) ([]model.Restaurant, error)

	mu          sync.Mutex
	SinceCalls  []int64
	RecentCalls int
	Updates     []StatusCall
}

// ListSince returns the configured incremental batch.
func (s *SyncSourceStub) ListSince(ctx context.Context, restaurantID, sinceMillis int64, limit int) ([]model.Order, error) {
	s.mu.Lock()
	s.SinceCalls = append(s.SinceCalls, sinceMillis)
	s.mu.Unlock()
	if s.ListSinceFn != nil {
		return s.ListSinceFn(ctx, restaurantID, sinceMillis, limit)
	}
	return nil, nil
}

// ListRecent returns the configured full window.
func (s *SyncSourceStub) ListRecent(ctx context.Context, limit int) ([]model.Order, error) {
	s.mu.Lock()
	s.RecentCalls++
	s.mu.Unlock()
	if s.ListRecentFn != nil {
		return s.ListRecentFn(ctx, limit)
	}
	return nil, nil
}

// UpdateOrderStatus records the write and delegates to the override.
func (s *SyncSourceStub) UpdateOrderStatus(ctx context.Context, actor ordersync.Profile, orderID string, to model.OrderStatus, reason, note string) (*model.Order, error) {
	s.mu.Lock()
	s.Updates = append(s.Updates, StatusCall{OrderID: orderID, To: to, Reason: reason, Note: note})
	s.mu.Unlock()
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, actor, orderID, to, reason, note)
	}
	return &model.Order{ID: orderID, Status: to, RejectReason: reason, RejectNote: note}, nil
}

// ListRestaurants returns the configured storefront listing.
func (s *SyncSourceStub) ListRestaurants(ctx context.Context, hub string) ([]model.Restaurant, error) {
	if s.ListRestaurantsFn != nil {
		return s.ListRestaurantsFn(ctx, hub)
	}
	return nil, nil
}

// RecentCallCount reports full pulls observed so far.
func (s *SyncSourceStub) RecentCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.RecentCalls
}

// UpdateCalls returns a copy of the recorded status writes.
func (s *SyncSourceStub) UpdateCalls() []StatusCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]StatusCall(nil), s.Updates...)
}

// FeedStub delivers scripted order events to sync sessions and records
// published ones.
type FeedStub struct {
	Events chan model.OrderEvent

	mu        sync.Mutex
	Published []model.OrderEvent
	Stopped   bool
}

// NewFeedStub constructs a feed with a buffered event channel.
func NewFeedStub() *FeedStub {
	return &FeedStub{Events: make(chan model.OrderEvent, 16)}
}

// SubscribeOrders hands out the scripted channel.
func (f *FeedStub) SubscribeOrders(ctx context.Context) (<-chan model.OrderEvent, func(), error) {
	return f.Events, func() {
		f.mu.Lock()
		f.Stopped = true
		f.mu.Unlock()
	}, nil
}

// PublishOrderEvent records the event.
func (f *FeedStub) PublishOrderEvent(ctx context.Context, event model.OrderEvent) error {
	f.mu.Lock()
	f.Published = append(f.Published, event)
	f.mu.Unlock()
	return nil
}

// PublishedEvents returns a copy of the recorded events.
func (f *FeedStub) PublishedEvents() []model.OrderEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.OrderEvent(nil), f.Published...)
}

// AllocatorStub yields predictable base IDs.
type AllocatorStub struct {
	NextFn func(context.Context, string) string
	Calls  []string
}

// NextBaseID returns a deterministic identifier per call.
func (a *AllocatorStub) NextBaseID(ctx context.Context, hubCode string) string {
	a.Calls = append(a.Calls, hubCode)
	if a.NextFn != nil {
		return a.NextFn(ctx, hubCode)
	}
	return hubCode + "-0001"
}

// SequencerStub backs the ID allocator with an in-memory counter.
type SequencerStub struct {
	Counter int64
	Err     error
}

// Next increments and returns the counter, or the configured error.
func (s *SequencerStub) Next(ctx context.Context, name string) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.Counter++
	return s.Counter, nil
}

var (
	_ ordersync.Source       = &SyncSourceStub{}
	_ ordersync.Subscriber   = &FeedStub{}
	_ usecase.EventPublisher = &FeedStub{}
	_ usecase.IDAllocator    = &AllocatorStub{}
)

// MemorySnapshotStore is a map-backed snapshot store for session tests.
type MemorySnapshotStore struct {
	mu      sync.Mutex
	Objects map[string]any
}

// NewMemorySnapshotStore constructs an empty store.
func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{Objects: make(map[string]any)}
}

// Save keeps the value under key.
func (m *MemorySnapshotStore) Save(key string, v any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Objects[key] = v
}

// Load is intentionally inert: session tests seed caches through pulls.
func (m *MemorySnapshotStore) Load(key string, dest any) bool {
	return false
}
