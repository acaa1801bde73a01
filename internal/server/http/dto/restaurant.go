package dto

// OnlineRequest toggles a storefront's customer-facing visibility.
type OnlineRequest struct {
	Online bool `json:"online"`
}

// ProfileRequest updates the storefront name and logo.
type ProfileRequest struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}
