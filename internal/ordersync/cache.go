package ordersync

import (
	"sort"
	"sync"

	"github.com/quickserve/quickserve/internal/domain/model"
)

// pendingView is the read-only slice of PendingTracker consulted during merge.
type pendingView interface {
	Peek(orderID string) (model.OrderStatus, bool)
	IsLocked(orderID string) bool
}

// OrderCache is the in-memory keyed collection of orders owned by a sync
// session. Merges are additive: a partial remote batch never evicts entries
// it does not mention. The high-water mark tracks the newest creation
// timestamp incorporated so far and only ever advances.
type OrderCache struct {
	mu        sync.RWMutex
	orders    map[string]model.Order
	highWater int64
}

// NewOrderCache constructs an empty cache.
func NewOrderCache() *OrderCache {
	return &OrderCache{orders: make(map[string]model.Order)}
}

// Merge reconciles a freshly fetched remote batch into the cache.
//
// Tie-break per record: pending-local > locked-without-pending > remote.
// A user who just pressed "Accept" must never see the order flicker back to
// PENDING because a slow poll landed before the write became visible.
func (c *OrderCache) Merge(batch []model.Order, pending pendingView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, remote := range batch {
		c.orders[remote.ID] = c.reconcile(remote, pending)
		if remote.CreatedAt > c.highWater {
			c.highWater = remote.CreatedAt
		}
	}
}

// ReplaceAll swaps the whole cache for a full-window batch, still honoring
// unconfirmed local intent. The high-water mark never regresses.
func (c *OrderCache) ReplaceAll(batch []model.Order, pending pendingView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make(map[string]model.Order, len(batch))
	for _, remote := range batch {
		next[remote.ID] = c.reconcile(remote, pending)
		if remote.CreatedAt > c.highWater {
			c.highWater = remote.CreatedAt
		}
	}
	c.orders = next
}

// reconcile applies the merge tie-break to a single remote record.
// Callers must hold c.mu.
func (c *OrderCache) reconcile(remote model.Order, pending pendingView) model.Order {
	if pending == nil {
		return remote
	}
	if status, ok := pending.Peek(remote.ID); ok {
		remote.Status = status
		return remote
	}
	if pending.IsLocked(remote.ID) {
		if local, ok := c.orders[remote.ID]; ok {
			remote.Status = local.Status
		}
	}
	return remote
}

// ApplyLocal overwrites a single cached record with an optimistic mutation.
func (c *OrderCache) ApplyLocal(order model.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orders[order.ID] = order
}

// Get returns a cached order by ID.
func (c *OrderCache) Get(orderID string) (model.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	order, ok := c.orders[orderID]
	return order, ok
}

// List returns cached orders, newest first.
func (c *OrderCache) List() []model.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]model.Order, 0, len(c.orders))
	for _, order := range c.orders {
		result = append(result, order)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt != result[j].CreatedAt {
			return result[i].CreatedAt > result[j].CreatedAt
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// Len returns the number of cached orders.
func (c *OrderCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.orders)
}

// HighWaterMark returns the newest creation timestamp seen so far.
func (c *OrderCache) HighWaterMark() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.highWater
}

// SeedHighWaterMark advances the mark from a restored snapshot.
func (c *OrderCache) SeedHighWaterMark(ts int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ts > c.highWater {
		c.highWater = ts
	}
}
