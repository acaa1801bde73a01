package repository

import (
	"context"

	"github.com/quickserve/quickserve/internal/domain/model"
)

// RestaurantRepository describes persistence operations with storefronts.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *model.Restaurant) (*model.Restaurant, error)
	GetByID(ctx context.Context, id int64) (*model.Restaurant, error)
	GetByVendor(ctx context.Context, vendorID int64) (*model.Restaurant, error)
	ListByHub(ctx context.Context, hub string, onlineOnly bool) ([]model.Restaurant, error)
	List(ctx context.Context) ([]model.Restaurant, error)
	SetOnline(ctx context.Context, id int64, online bool) error
	Update(ctx context.Context, restaurant *model.Restaurant) error
}
