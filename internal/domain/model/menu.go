package model

// SizeOption is a named size variant with a price delta relative to the base price.
type SizeOption struct {
	Name       string  `json:"name"`
	PriceDelta float64 `json:"price_delta"`
}

// TemperatureOption toggles hot/cold serving with per-choice price deltas.
type TemperatureOption struct {
	Enabled   bool    `json:"enabled"`
	HotDelta  float64 `json:"hot_delta"`
	ColdDelta float64 `json:"cold_delta"`
}

// VariantOption is a single entry in a free-form variant group.
type VariantOption struct {
	Name       string  `json:"name"`
	PriceDelta float64 `json:"price_delta"`
}

// VariantGroup is an optional labelled group of extra choices
// ("Topping", "Spice level", ...).
type VariantGroup struct {
	Label   string          `json:"label,omitempty"`
	Options []VariantOption `json:"options,omitempty"`
}

// MenuItem is a sellable item owned by a restaurant. Archived items are
// soft-deleted: hidden from customers but retained for order history.
type MenuItem struct {
	ID           int64             `json:"id"`
	RestaurantID int64             `json:"restaurant_id"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Price        float64           `json:"price"`
	ImageURL     string            `json:"image_url,omitempty"`
	Category     string            `json:"category,omitempty"`
	Archived     bool              `json:"archived"`
	Sizes        []SizeOption      `json:"sizes,omitempty"`
	Temperature  TemperatureOption `json:"temperature"`
	Variants     VariantGroup      `json:"variants"`
}
