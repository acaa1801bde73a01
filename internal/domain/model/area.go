package model

// Area is a physical ordering zone (hub). Name is unique and serves as
// the customer's location key; Code prefixes order IDs allocated for the hub.
type Area struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Code        string `json:"code"`
	Active      bool   `json:"active"`
	MultiVendor bool   `json:"multi_vendor"`
}
