package repository

import (
	"context"

	"github.com/quickserve/quickserve/internal/domain/model"
)

// OrderRepository describes persistence operations with order tickets.
type OrderRepository interface {
	// InsertBatch stores sibling orders from one checkout atomically.
	InsertBatch(ctx context.Context, orders []model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	// ListSince returns orders created strictly after the given epoch-millisecond
	// timestamp, oldest first, capped at limit. A zero restaurantID means no
	// restaurant filter.
	ListSince(ctx context.Context, restaurantID int64, sinceMillis int64, limit int) ([]model.Order, error)
	// ListRecent returns the newest orders regardless of timestamp floor.
	ListRecent(ctx context.Context, limit int) ([]model.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error)
	// UpdateStatus applies a guarded status transition. It fails with
	// ErrInvalidTransition when the stored status does not allow the move.
	UpdateStatus(ctx context.Context, id string, to model.OrderStatus, reason, note string) (*model.Order, error)
}
