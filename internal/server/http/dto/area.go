package dto

// AreaRequest creates or updates an ordering hub.
type AreaRequest struct {
	Name        string `json:"name"`
	City        string `json:"city"`
	State       string `json:"state"`
	Code        string `json:"code"`
	MultiVendor bool   `json:"multi_vendor"`
}

// ActiveRequest toggles an active flag on hubs and vendor accounts.
type ActiveRequest struct {
	Active bool `json:"active"`
}
