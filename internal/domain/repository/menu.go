package repository

import (
	"context"

	"github.com/quickserve/quickserve/internal/domain/model"
)

// MenuRepository describes persistence operations with menu items.
type MenuRepository interface {
	CreateItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)
	UpdateItem(ctx context.Context, item *model.MenuItem) error
	ArchiveItem(ctx context.Context, restaurantID, itemID int64) error
	GetItem(ctx context.Context, itemID int64) (*model.MenuItem, error)
	ListByRestaurant(ctx context.Context, restaurantID int64, includeArchived bool) ([]model.MenuItem, error)
}
