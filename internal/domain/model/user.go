package model

import "time"

// Role distinguishes the three kinds of platform principals.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleVendor   Role = "VENDOR"
	RoleAdmin    Role = "ADMIN"
)

// User is a registered account. RestaurantID is set for vendors only;
// Active gates whether a vendor's storefront may go online.
type User struct {
	ID           int64     `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	RestaurantID int64     `json:"restaurant_id,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}
