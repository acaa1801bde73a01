package dto

import "github.com/quickserve/quickserve/internal/domain/model"

// CheckoutRequest is the customer's cart submission. Total is what the
// customer's screen showed; the server recomputes and compares.
type CheckoutRequest struct {
	Items  []model.CartItem `json:"items"`
	Total  float64          `json:"total"`
	Remark string           `json:"remark"`
}

// StatusUpdateRequest moves an order along its lifecycle. Reason and Note
// only apply to cancellations.
type StatusUpdateRequest struct {
	Status model.OrderStatus `json:"status"`
	Reason string            `json:"reason"`
	Note   string            `json:"note"`
}
