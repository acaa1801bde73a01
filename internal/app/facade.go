package app

import (
	"context"
	"io"

	"github.com/quickserve/quickserve/internal/domain/model"
	"github.com/quickserve/quickserve/internal/ordersync"
	pkgAuth "github.com/quickserve/quickserve/internal/pkg/auth"
	"github.com/quickserve/quickserve/internal/usecase"
)

// PlatformFacade aggregates the use cases behind one surface. It doubles as
// the remote order source for sync sessions, so the session layer never
// talks to repositories directly.
type PlatformFacade struct {
	auth        *usecase.AuthUseCase
	orders      *usecase.OrderUseCase
	menus       *usecase.MenuUseCase
	restaurants *usecase.RestaurantUseCase
	areas       *usecase.AreaUseCase
	admin       *usecase.AdminUseCase
	export      *usecase.ExportUseCase
}

// NewPlatformFacade constructs the facade over the full use case set.
func NewPlatformFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	menus *usecase.MenuUseCase,
	restaurants *usecase.RestaurantUseCase,
	areas *usecase.AreaUseCase,
	admin *usecase.AdminUseCase,
	export *usecase.ExportUseCase,
) *PlatformFacade {
	return &PlatformFacade{
		auth:        auth,
		orders:      orders,
		menus:       menus,
		restaurants: restaurants,
		areas:       areas,
		admin:       admin,
		export:      export,
	}
}

func (f *PlatformFacade) RegisterVendor(ctx context.Context, login, password, restaurantName, hub string) (*model.User, string, error) {
	return f.auth.RegisterVendor(ctx, login, password, restaurantName, hub)
}

func (f *PlatformFacade) Authenticate(ctx context.Context, login, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, login, password)
}

func (f *PlatformFacade) TableSession(ctx context.Context, hub string, table int) (string, error) {
	return f.auth.TableSession(ctx, hub, table)
}

func (f *PlatformFacade) ParseToken(token string) (pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *PlatformFacade) EnsureAdmin(ctx context.Context, login, password string) error {
	return f.auth.EnsureAdmin(ctx, login, password)
}

func (f *PlatformFacade) Checkout(ctx context.Context, customerID, hub string, table int, cart []model.CartItem, clientTotal float64, remark string) ([]model.Order, error) {
	return f.orders.Checkout(ctx, customerID, hub, table, cart, clientTotal, remark)
}

func (f *PlatformFacade) ExportOrdersCSV(ctx context.Context, w io.Writer, orders []model.Order) error {
	return f.export.WriteCSV(ctx, w, orders)
}

func (f *PlatformFacade) CreateMenuItem(ctx context.Context, actor usecase.Actor, item model.MenuItem) (*model.MenuItem, error) {
	return f.menus.CreateItem(ctx, actor, item)
}

func (f *PlatformFacade) UpdateMenuItem(ctx context.Context, actor usecase.Actor, item model.MenuItem) error {
	return f.menus.UpdateItem(ctx, actor, item)
}

func (f *PlatformFacade) ArchiveMenuItem(ctx context.Context, actor usecase.Actor, itemID int64) error {
	return f.menus.ArchiveItem(ctx, actor, itemID)
}

func (f *PlatformFacade) VendorMenu(ctx context.Context, actor usecase.Actor, restaurantID int64) ([]model.MenuItem, error) {
	return f.menus.VendorMenu(ctx, actor, restaurantID)
}

func (f *PlatformFacade) CustomerMenu(ctx context.Context, restaurantID int64) ([]model.MenuItem, error) {
	return f.menus.CustomerMenu(ctx, restaurantID)
}

func (f *PlatformFacade) SetRestaurantOnline(ctx context.Context, actor usecase.Actor, restaurantID int64, online bool) error {
	return f.restaurants.SetOnline(ctx, actor, restaurantID, online)
}

func (f *PlatformFacade) UpdateRestaurantProfile(ctx context.Context, actor usecase.Actor, restaurantID int64, name, logoURL string) error {
	return f.restaurants.UpdateProfile(ctx, actor, restaurantID, name, logoURL)
}

func (f *PlatformFacade) Restaurant(ctx context.Context, restaurantID int64) (*model.Restaurant, error) {
	return f.restaurants.Get(ctx, restaurantID)
}

func (f *PlatformFacade) ListAllRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	return f.restaurants.List(ctx)
}

func (f *PlatformFacade) ListVendors(ctx context.Context) ([]model.User, error) {
	return f.admin.ListVendors(ctx)
}

func (f *PlatformFacade) SetVendorActive(ctx context.Context, vendorID int64, active bool) error {
	return f.admin.SetVendorActive(ctx, vendorID, active)
}

func (f *PlatformFacade) CreateArea(ctx context.Context, area model.Area) (*model.Area, error) {
	return f.areas.Create(ctx, area)
}

func (f *PlatformFacade) UpdateArea(ctx context.Context, area model.Area) error {
	return f.areas.Update(ctx, area)
}

func (f *PlatformFacade) SetAreaActive(ctx context.Context, id int64, active bool) error {
	return f.areas.SetActive(ctx, id, active)
}

func (f *PlatformFacade) ListAreas(ctx context.Context, activeOnly bool) ([]model.Area, error) {
	return f.areas.List(ctx, activeOnly)
}

// ListSince implements the sync session's incremental pull.
func (f *PlatformFacade) ListSince(ctx context.Context, restaurantID int64, sinceMillis int64, limit int) ([]model.Order, error) {
	return f.orders.ListSince(ctx, restaurantID, sinceMillis, limit)
}

// ListRecent implements the sync session's full pull window.
func (f *PlatformFacade) ListRecent(ctx context.Context, limit int) ([]model.Order, error) {
	return f.orders.ListRecent(ctx, limit)
}

// UpdateOrderStatus implements the sync session's remote write.
func (f *PlatformFacade) UpdateOrderStatus(ctx context.Context, actor ordersync.Profile, orderID string, to model.OrderStatus, reason, note string) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, usecase.Actor{
		UserID:       actor.UserID,
		Role:         actor.Role,
		RestaurantID: actor.RestaurantID,
	}, orderID, to, reason, note)
}

// ListRestaurants implements the sync session's storefront refresh. An empty
// hub means the whole platform.
func (f *PlatformFacade) ListRestaurants(ctx context.Context, hub string) ([]model.Restaurant, error) {
	if hub == "" {
		return f.restaurants.List(ctx)
	}
	return f.restaurants.ListOnline(ctx, hub)
}
