package model

// CartItem is a transient checkout line: a menu item reference plus the
// customer's selection. It exists only in the checkout request payload.
type CartItem struct {
	MenuItemID   int64   `json:"menu_item_id"`
	RestaurantID int64   `json:"restaurant_id"`
	Name         string  `json:"name"`
	UnitPrice    float64 `json:"unit_price"`
	Size         string  `json:"size,omitempty"`
	Temperature  string  `json:"temperature,omitempty"`
	Variant      string  `json:"variant,omitempty"`
	Quantity     int     `json:"quantity"`
}
