package model

// Restaurant is a vendor storefront. Online controls customer-facing
// visibility and may only be true while the owning vendor is active.
type Restaurant struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	LogoURL  string `json:"logo_url,omitempty"`
	VendorID int64  `json:"vendor_id"`
	Hub      string `json:"hub"`
	Online   bool   `json:"online"`
}
