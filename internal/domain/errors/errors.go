package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrKitchenOffline     = errors.New("kitchen is offline")
	ErrItemUnavailable    = errors.New("menu item unavailable")
	ErrAreaInactive       = errors.New("ordering area inactive")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrVendorDisabled     = errors.New("vendor account disabled")
	ErrForbidden          = errors.New("operation not permitted")
	ErrTotalMismatch      = errors.New("order total mismatch")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidMenuItem    = errors.New("invalid menu item")
	ErrReasonRequired     = errors.New("rejection reason required")
	ErrInvalidArea        = errors.New("invalid area")
)
