package handlers

import (
	"context"
	"io"

	"github.com/quickserve/quickserve/internal/domain/model"
	"github.com/quickserve/quickserve/internal/ordersync"
	pkgAuth "github.com/quickserve/quickserve/internal/pkg/auth"
	"github.com/quickserve/quickserve/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	RegisterVendor(ctx context.Context, login, password, restaurantName, hub string) (*model.User, string, error)
	Authenticate(ctx context.Context, login, password string) (*model.User, string, error)
	TableSession(ctx context.Context, hub string, table int) (string, error)
	ParseToken(token string) (pkgAuth.Claims, error)
}

// OrderFacade encapsulates checkout and reporting exposed via HTTP. Reads
// and status changes go through the sync session instead.
type OrderFacade interface {
	Checkout(ctx context.Context, customerID, hub string, table int, cart []model.CartItem, clientTotal float64, remark string) ([]model.Order, error)
	ExportOrdersCSV(ctx context.Context, w io.Writer, orders []model.Order) error
}

// MenuFacade provides menu management operations.
type MenuFacade interface {
	CreateMenuItem(ctx context.Context, actor usecase.Actor, item model.MenuItem) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, actor usecase.Actor, item model.MenuItem) error
	ArchiveMenuItem(ctx context.Context, actor usecase.Actor, itemID int64) error
	VendorMenu(ctx context.Context, actor usecase.Actor, restaurantID int64) ([]model.MenuItem, error)
	CustomerMenu(ctx context.Context, restaurantID int64) ([]model.MenuItem, error)
}

// RestaurantFacade provides storefront operations.
type RestaurantFacade interface {
	SetRestaurantOnline(ctx context.Context, actor usecase.Actor, restaurantID int64, online bool) error
	UpdateRestaurantProfile(ctx context.Context, actor usecase.Actor, restaurantID int64, name, logoURL string) error
	Restaurant(ctx context.Context, restaurantID int64) (*model.Restaurant, error)
	ListAllRestaurants(ctx context.Context) ([]model.Restaurant, error)
}

// AdminFacade provides hub and vendor administration.
type AdminFacade interface {
	ListVendors(ctx context.Context) ([]model.User, error)
	SetVendorActive(ctx context.Context, vendorID int64, active bool) error
	CreateArea(ctx context.Context, area model.Area) (*model.Area, error)
	UpdateArea(ctx context.Context, area model.Area) error
	SetAreaActive(ctx context.Context, id int64, active bool) error
	ListAreas(ctx context.Context, activeOnly bool) ([]model.Area, error)
}

// PlatformFacade aggregates the full set of operations used across handlers.
type PlatformFacade interface {
	AuthFacade
	OrderFacade
	MenuFacade
	RestaurantFacade
	AdminFacade
}

// SyncManager hands out per-principal sync sessions. *ordersync.Manager
// satisfies it.
type SyncManager interface {
	Session(profile ordersync.Profile) *ordersync.Session
	Drop(profile ordersync.Profile)
}
