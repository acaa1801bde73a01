package model

// OrderStatus describes the ticket lifecycle. Transitions are monotonic:
// PENDING -> ONGOING -> COMPLETED, or PENDING -> CANCELLED.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusOngoing   OrderStatus = "ONGOING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// CanTransition reports whether moving from one status to another is allowed.
// Terminal statuses never transition, and no path ever reverses.
func CanTransition(from, to OrderStatus) bool {
	switch from {
	case OrderStatusPending:
		return to == OrderStatusOngoing || to == OrderStatusCancelled
	case OrderStatusOngoing:
		return to == OrderStatusCompleted
	default:
		return false
	}
}

// Terminal reports whether a status ends the order lifecycle.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// OrderLine is an immutable snapshot of a menu item at order time.
type OrderLine struct {
	MenuItemID  int64   `json:"menu_item_id"`
	Name        string  `json:"name"`
	UnitPrice   float64 `json:"unit_price"`
	Size        string  `json:"size,omitempty"`
	Temperature string  `json:"temperature,omitempty"`
	Variant     string  `json:"variant,omitempty"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"line_total"`
}

// Order is one kitchen-bound ticket. IDs are hub-prefixed strings
// (for example "FC-0042", or "FC-0042-2" for a split cart sibling).
// CreatedAt/UpdatedAt are epoch milliseconds.
type Order struct {
	ID           string      `json:"id"`
	RestaurantID int64       `json:"restaurant_id"`
	CustomerID   string      `json:"customer_id"`
	Hub          string      `json:"hub"`
	TableNumber  int         `json:"table_number"`
	Items        []OrderLine `json:"items"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	Remark       string      `json:"remark,omitempty"`
	RejectReason string      `json:"reject_reason,omitempty"`
	RejectNote   string      `json:"reject_note,omitempty"`
	CreatedAt    int64       `json:"created_at"`
	UpdatedAt    int64       `json:"updated_at"`
}
