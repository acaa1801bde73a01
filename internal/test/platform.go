package test

import (
	"context"
	"io"

	domainErrors "github.com/quickserve/quickserve/internal/domain/errors"
	"github.com/quickserve/quickserve/internal/domain/model"
	pkgAuth "github.com/quickserve/quickserve/internal/pkg/auth"
	"github.com/quickserve/quickserve/internal/usecase"
)

// PlatformFacadeStub implements the HTTP layer's facade contract with
// overridable behaviour and safe defaults.
type PlatformFacadeStub struct {
	RegisterVendorFn  func(context.Context, string, string, string, string) (*model.User, string, error)
	AuthenticateFn    func(context.Context, string, string) (*model.User, string, error)
	TableSessionFn    func(context.Context, string, int) (string, error)
	ParseTokenFn      func(string) (pkgAuth.Claims, error)
	CheckoutFn        func(context.Context, string, string, int, []model.CartItem, float64, string) ([]model.Order, error)
	ExportFn          func(context.Context, io.Writer, []model.Order) error
	CreateMenuItemFn  func(context.Context, usecase.Actor, model.MenuItem) (*model.MenuItem, error)
	UpdateMenuItemFn  func(context.Context, usecase.Actor, model.MenuItem) error
	ArchiveMenuItemFn func(context.Context, usecase.Actor, int64) error
	VendorMenuFn      func(context.Context, usecase.Actor, int64) ([]model.MenuItem, error)
	CustomerMenuFn    func(context.Context, int64) ([]model.MenuItem, error)
	SetOnlineFn       func(context.Context, usecase.Actor, int64, bool) error
	UpdateProfileFn   func(context.Context, usecase.Actor, int64, string, string) error
	RestaurantFn      func(context.Context, int64) (*model.Restaurant, error)
	ListAllFn         func(context.Context) ([]model.Restaurant, error)
	ListVendorsFn     func(context.Context) ([]model.User, error)
	SetVendorActiveFn func(context.Context, int64, bool) error
	CreateAreaFn      func(context.Context, model.Area) (*model.Area, error)
	UpdateAreaFn      func(context.Context, model.Area) error
	SetAreaActiveFn   func(context.Context, int64, bool) error
	ListAreasFn       func(context.Context, bool) ([]model.Area, error)
}

func (s *PlatformFacadeStub) RegisterVendor(ctx context.Context, login, password, restaurantName, hub string) (*model.User, string, error) {
	if s.RegisterVendorFn != nil {
		return s.RegisterVendorFn(ctx, login, password, restaurantName, hub)
	}
	return &model.User{ID: 1, Login: login, Role: model.RoleVendor, RestaurantID: 1, Active: true}, "token", nil
}

func (s *PlatformFacadeStub) Authenticate(ctx context.Context, login, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return &model.User{ID: 1, Login: login, Role: model.RoleVendor, RestaurantID: 1, Active: true}, "token", nil
}

func (s *PlatformFacadeStub) TableSession(ctx context.Context, hub string, table int) (string, error) {
	if s.TableSessionFn != nil {
		return s.TableSessionFn(ctx, hub, table)
	}
	return "token", nil
}

func (s *PlatformFacadeStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return pkgAuth.Claims{UserID: 1, Role: string(model.RoleVendor), RestaurantID: 1}, nil
}

func (s *PlatformFacadeStub) Checkout(ctx context.Context, customerID, hub string, table int, cart []model.CartItem, clientTotal float64, remark string) ([]model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, customerID, hub, table, cart, clientTotal, remark)
	}
	return []model.Order{{ID: "HUB-0001", CustomerID: customerID, Status: model.OrderStatusPending}}, nil
}

func (s *PlatformFacadeStub) ExportOrdersCSV(ctx context.Context, w io.Writer, orders []model.Order) error {
	if s.ExportFn != nil {
		return s.ExportFn(ctx, w, orders)
	}
	_, err := w.Write([]byte("order_id,vendor,timestamp,status,items,total\n"))
	return err
}

func (s *PlatformFacadeStub) CreateMenuItem(ctx context.Context, actor usecase.Actor, item model.MenuItem) (*model.MenuItem, error) {
	if s.CreateMenuItemFn != nil {
		return s.CreateMenuItemFn(ctx, actor, item)
	}
	item.ID = 1
	return &item, nil
}

func (s *PlatformFacadeStub) UpdateMenuItem(ctx context.Context, actor usecase.Actor, item model.MenuItem) error {
	if s.UpdateMenuItemFn != nil {
		return s.UpdateMenuItemFn(ctx, actor, item)
	}
	return nil
}

func (s *PlatformFacadeStub) ArchiveMenuItem(ctx context.Context, actor usecase.Actor, itemID int64) error {
	if s.ArchiveMenuItemFn != nil {
		return s.ArchiveMenuItemFn(ctx, actor, itemID)
	}
	return nil
}

func (s *PlatformFacadeStub) VendorMenu(ctx context.Context, actor usecase.Actor, restaurantID int64) ([]model.MenuItem, error) {
	if s.VendorMenuFn != nil {
		return s.VendorMenuFn(ctx, actor, restaurantID)
	}
	return []model.MenuItem{{ID: 1, RestaurantID: restaurantID, Name: "Latte", Price: 5}}, nil
}

func (s *PlatformFacadeStub) CustomerMenu(ctx context.Context, restaurantID int64) ([]model.MenuItem, error) {
	if s.CustomerMenuFn != nil {
		return s.CustomerMenuFn(ctx, restaurantID)
	}
	return []model.MenuItem{{ID: 1, RestaurantID: restaurantID, Name: "Latte", Price: 5}}, nil
}

func (s *PlatformFacadeStub) SetRestaurantOnline(ctx context.Context, actor usecase.Actor, restaurantID int64, online bool) error {
	if s.SetOnlineFn != nil {
		return s.SetOnlineFn(ctx, actor, restaurantID, online)
	}
	return nil
}

func (s *PlatformFacadeStub) UpdateRestaurantProfile(ctx context.Context, actor usecase.Actor, restaurantID int64, name, logoURL string) error {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, actor, restaurantID, name, logoURL)
	}
	return nil
}

func (s *PlatformFacadeStub) Restaurant(ctx context.Context, restaurantID int64) (*model.Restaurant, error) {
	if s.RestaurantFn != nil {
		return s.RestaurantFn(ctx, restaurantID)
	}
	if restaurantID == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return &model.Restaurant{ID: restaurantID, Name: "Stub Kitchen", Hub: "Food Court", Online: true}, nil
}

func (s *PlatformFacadeStub) ListAllRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return []model.Restaurant{{ID: 1, Name: "Stub Kitchen"}}, nil
}

func (s *PlatformFacadeStub) ListVendors(ctx context.Context) ([]model.User, error) {
	if s.ListVendorsFn != nil {
		return s.ListVendorsFn(ctx)
	}
	return []model.User{{ID: 1, Login: "vendor", Role: model.RoleVendor, Active: true}}, nil
}

func (s *PlatformFacadeStub) SetVendorActive(ctx context.Context, vendorID int64, active bool) error {
	if s.SetVendorActiveFn != nil {
		return s.SetVendorActiveFn(ctx, vendorID, active)
	}
	return nil
}

func (s *PlatformFacadeStub) CreateArea(ctx context.Context, area model.Area) (*model.Area, error) {
	if s.CreateAreaFn != nil {
		return s.CreateAreaFn(ctx, area)
	}
	area.ID = 1
	return &area, nil
}

func (s *PlatformFacadeStub) UpdateArea(ctx context.Context, area model.Area) error {
	if s.UpdateAreaFn != nil {
		return s.UpdateAreaFn(ctx, area)
	}
	return nil
}

func (s *PlatformFacadeStub) SetAreaActive(ctx context.Context, id int64, active bool) error {
	if s.SetAreaActiveFn != nil {
		return s.SetAreaActiveFn(ctx, id, active)
	}
	return nil
}

func (s *PlatformFacadeStub) ListAreas(ctx context.Context, activeOnly bool) ([]model.Area, error) {
	if s.ListAreasFn != nil {
		return s.ListAreasFn(ctx, activeOnly)
	}
	return []model.Area{{ID: 1, Name: "Food Court", Code: "FC", Active: true}}, nil
}
