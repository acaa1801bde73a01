package auth

import "time"

// Claims identifies a platform principal. Vendor and admin tokens carry a
// user ID; customer tokens carry a generated customer ID plus the hub/table
// the QR entry point bound them to.
type Claims struct {
	UserID       int64  `json:"uid,omitempty"`
	CustomerID   string `json:"cid,omitempty"`
	Role         string `json:"role"`
	RestaurantID int64  `json:"rid,omitempty"`
	Hub          string `json:"hub,omitempty"`
	Table        int    `json:"table,omitempty"`
	ExpiresAt    int64  `json:"exp"`
}

// Strategy issues and verifies auth tokens.
type Strategy interface {
	IssueToken(claims Claims) (string, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

// Options tune token issuance.
type Options struct {
	TTL time.Duration
}
