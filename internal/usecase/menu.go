package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/quickserve/quickserve/internal/domain/errors"
	"github.com/quickserve/quickserve/internal/domain/model"
	"github.com/quickserve/quickserve/internal/domain/repository"
)

// MenuUseCase manages a restaurant's sellable items.
type MenuUseCase struct {
	menus repository.MenuRepository
}

// NewMenuUseCase constructs MenuUseCase.
func NewMenuUseCase(menus repository.MenuRepository) *MenuUseCase {
	return &MenuUseCase{menus: menus}
}

// CreateItem adds a menu item to the actor's restaurant.
func (u *MenuUseCase) CreateItem(ctx context.Context, actor Actor, item model.MenuItem) (*model.MenuItem, error) {
	if !actor.ownsRestaurant(item.RestaurantID) {
		return nil, domainErrors.ErrForbidden
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}
	item.Archived = false
	return u.menus.CreateItem(ctx, &item)
}

// UpdateItem replaces a menu item's fields, including its variant groups.
func (u *MenuUseCase) UpdateItem(ctx context.Context, actor Actor, item model.MenuItem) error {
	existing, err := u.menus.GetItem(ctx, item.ID)
	if err != nil {
		return err
	}
	if !actor.ownsRestaurant(existing.RestaurantID) {
		return domainErrors.ErrForbidden
	}
	if err := validateItem(item); err != nil {
		return err
	}
	item.RestaurantID = existing.RestaurantID
	return u.menus.UpdateItem(ctx, &item)
}

// ArchiveItem soft-deletes an item: hidden from customers, kept for history.
func (u *MenuUseCase) ArchiveItem(ctx context.Context, actor Actor, itemID int64) error {
	existing, err := u.menus.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if !actor.ownsRestaurant(existing.RestaurantID) {
		return domainErrors.ErrForbidden
	}
	return u.menus.ArchiveItem(ctx, existing.RestaurantID, itemID)
}

// VendorMenu lists every item of the actor's restaurant, archived included.
func (u *MenuUseCase) VendorMenu(ctx context.Context, actor Actor, restaurantID int64) ([]model.MenuItem, error) {
	if !actor.ownsRestaurant(restaurantID) {
		return nil, domainErrors.ErrForbidden
	}
	return u.menus.ListByRestaurant(ctx, restaurantID, true)
}

// CustomerMenu lists only the orderable items of a restaurant.
func (u *MenuUseCase) CustomerMenu(ctx context.Context, restaurantID int64) ([]model.MenuItem, error) {
	return u.menus.ListByRestaurant(ctx, restaurantID, false)
}

func validateItem(item model.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" || item.Price < 0 {
		return domainErrors.ErrInvalidMenuItem
	}
	for _, size := range item.Sizes {
		if strings.TrimSpace(size.Name) == "" {
			return domainErrors.ErrInvalidMenuItem
		}
	}
	for _, option := range item.Variants.Options {
		if strings.TrimSpace(option.Name) == "" {
			return domainErrors.ErrInvalidMenuItem
		}
	}
	return nil
}
