package usecase

import (
	"context"

	"github.com/quickserve/quickserve/internal/domain/model"
	"github.com/quickserve/quickserve/internal/domain/repository"
)

// AdminUseCase covers platform-wide vendor management.
type AdminUseCase struct {
	users       repository.UserRepository
	restaurants repository.RestaurantRepository
}

// NewAdminUseCase constructs AdminUseCase.
func NewAdminUseCase(users repository.UserRepository, restaurants repository.RestaurantRepository) *AdminUseCase {
	return &AdminUseCase{users: users, restaurants: restaurants}
}

// ListVendors returns every vendor account.
func (u *AdminUseCase) ListVendors(ctx context.Context) ([]model.User, error) {
	return u.users.ListByRole(ctx, model.RoleVendor)
}

// SetVendorActive enables or disables a vendor. Disabling also forces the
// storefront offline so customers stop seeing it immediately.
func (u *AdminUseCase) SetVendorActive(ctx context.Context, vendorID int64, active bool) error {
	vendor, err := u.users.GetByID(ctx, vendorID)
	if err != nil {
		return err
	}
	if err := u.users.SetActive(ctx, vendorID, active); err != nil {
		return err
	}
	if !active && vendor.RestaurantID != 0 {
		return u.restaurants.SetOnline(ctx, vendor.RestaurantID, false)
	}
	return nil
}
