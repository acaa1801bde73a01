package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/quickserve/quickserve/internal/domain/errors"
	"github.com/quickserve/quickserve/internal/domain/model"
	"github.com/quickserve/quickserve/internal/domain/repository"
)

// RestaurantUseCase manages storefront visibility and profile.
type RestaurantUseCase struct {
	restaurants repository.RestaurantRepository
	users       repository.UserRepository
}

// NewRestaurantUseCase constructs RestaurantUseCase.
func NewRestaurantUseCase(restaurants repository.RestaurantRepository, users repository.UserRepository) *RestaurantUseCase {
	return &RestaurantUseCase{restaurants: restaurants, users: users}
}

// SetOnline toggles customer-facing visibility. Going online requires the
// owning vendor account to be active; disabled vendors stay offline.
func (u *RestaurantUseCase) SetOnline(ctx context.Context, actor Actor, restaurantID int64, online bool) error {
	restaurant, err := u.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return err
	}
	if !actor.ownsRestaurant(restaurant.ID) {
		return domainErrors.ErrForbidden
	}
	if online && restaurant.VendorID != 0 {
		vendor, err := u.users.GetByID(ctx, restaurant.VendorID)
		if err != nil {
			return err
		}
		if !vendor.Active {
			return domainErrors.ErrVendorDisabled
		}
	}
	return u.restaurants.SetOnline(ctx, restaurantID, online)
}

// UpdateProfile changes the storefront name and logo.
func (u *RestaurantUseCase) UpdateProfile(ctx context.Context, actor Actor, restaurantID int64, name, logoURL string) error {
	restaurant, err := u.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return err
	}
	if !actor.ownsRestaurant(restaurant.ID) {
		return domainErrors.ErrForbidden
	}
	if name = strings.TrimSpace(name); name != "" {
		restaurant.Name = name
	}
	restaurant.LogoURL = logoURL
	return u.restaurants.Update(ctx, restaurant)
}

// Get returns one storefront.
func (u *RestaurantUseCase) Get(ctx context.Context, restaurantID int64) (*model.Restaurant, error) {
	return u.restaurants.GetByID(ctx, restaurantID)
}

// ListOnline returns the storefronts a customer in the hub can order from.
func (u *RestaurantUseCase) ListOnline(ctx context.Context, hub string) ([]model.Restaurant, error) {
	return u.restaurants.ListByHub(ctx, hub, true)
}

// List returns every storefront, for admin views.
func (u *RestaurantUseCase) List(ctx context.Context) ([]model.Restaurant, error) {
	return u.restaurants.List(ctx)
}
