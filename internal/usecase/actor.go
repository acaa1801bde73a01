package usecase

import "github.com/quickserve/quickserve/internal/domain/model"

// Actor is the authenticated principal performing an operation.
type Actor struct {
	UserID       int64
	Role         model.Role
	RestaurantID int64
}

// ownsRestaurant reports whether the actor may mutate the given storefront.
// Admins act on any restaurant (impersonating the vendor); vendors only on
// their own.
func (a Actor) ownsRestaurant(restaurantID int64) bool {
	switch a.Role {
	case model.RoleAdmin:
		return true
	case model.RoleVendor:
		return a.RestaurantID == restaurantID
	default:
		return false
	}
}
