package dto

import "github.com/quickserve/quickserve/internal/domain/model"

// VendorRegisterRequest describes the vendor signup payload.
type VendorRegisterRequest struct {
	Login          string `json:"login"`
	Password       string `json:"password"`
	RestaurantName string `json:"restaurant_name"`
	Hub            string `json:"hub"`
}

// LoginRequest describes login/password payload.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token together with the account.
type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user,omitempty"`
}

// TableSessionResponse is returned for the QR table entry.
type TableSessionResponse struct {
	Token string `json:"token"`
	Hub   string `json:"hub"`
	Table int    `json:"table"`
}
