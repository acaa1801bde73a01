package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/quickserve/quickserve/internal/domain/errors"
	"github.com/quickserve/quickserve/internal/domain/model"
	"github.com/quickserve/quickserve/internal/ordersync"
	"github.com/quickserve/quickserve/internal/server/http/handlers"
	testhelpers "github.com/quickserve/quickserve/internal/test"
	"github.com/quickserve/quickserve/internal/usecase"
)

type facadeFixture struct {
	facade      *PlatformFacade
	users       *testhelpers.UserRepositoryStub
	restaurants *testhelpers.RestaurantRepositoryStub
	menus       *testhelpers.MenuRepositoryStub
	areas       *testhelpers.AreaRepositoryStub
	orders      *testhelpers.OrderRepositoryStub
}

func newFacadeFixture() *facadeFixture {
	f := &facadeFixture{
		users:       testhelpers.NewUserRepositoryStub(),
		restaurants: testhelpers.NewRestaurantRepositoryStub(),
		menus:       testhelpers.NewMenuRepositoryStub(),
		areas:       testhelpers.NewAreaRepositoryStub(),
		orders:      testhelpers.NewOrderRepositoryStub(),
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	f.facade = NewPlatformFacade(
		usecase.NewAuthUseCase(f.users, f.restaurants, f.areas, testhelpers.HasherStub{}, &testhelpers.StrategyStub{}),
		usecase.NewOrderUseCase(f.orders, f.restaurants, f.menus, f.areas, &testhelpers.AllocatorStub{}, testhelpers.NewFeedStub(), logger),
		usecase.NewMenuUseCase(f.menus),
		usecase.NewRestaurantUseCase(f.restaurants, f.users),
		usecase.NewAreaUseCase(f.areas),
		usecase.NewAdminUseCase(f.users, f.restaurants),
		usecase.NewExportUseCase(f.restaurants),
	)
	return f
}

func TestPlatformFacadeVendorOnboarding(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	if _, err := f.facade.CreateArea(ctx, model.Area{Name: "Food Court", Code: "fc", Active: true}); err != nil {
		t.Fatalf("create area: %v", err)
	}

	vendor, token, err := f.facade.RegisterVendor(ctx, "vendor1", "secret", "Coffee Stand", "Food Court")
	if err != nil {
		t.Fatalf("register vendor: %v", err)
	}
	if token != "token" || vendor.RestaurantID == 0 {
		t.Fatalf("unexpected registration %q %+v", token, vendor)
	}

	actor := usecase.Actor{UserID: vendor.ID, Role: model.RoleVendor, RestaurantID: vendor.RestaurantID}
	if err := f.facade.SetRestaurantOnline(ctx, actor, vendor.RestaurantID, true); err != nil {
		t.Fatalf("go online: %v", err)
	}
	if _, err := f.facade.CreateMenuItem(ctx, actor, model.MenuItem{RestaurantID: vendor.RestaurantID, Name: "Latte", Price: 10}); err != nil {
		t.Fatalf("create item: %v", err)
	}

	listing, err := f.facade.ListRestaurants(ctx, "Food Court")
	if err != nil {
		t.Fatalf("list restaurants: %v", err)
	}
	if len(listing) != 1 || !listing[0].Online {
		t.Fatalf("expected one online storefront, got %v", listing)
	}
}

func TestPlatformFacadeOrderLifecycleViaSource(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	if _, err := f.facade.CreateArea(ctx, model.Area{Name: "Food Court", Code: "FC", Active: true}); err != nil {
		t.Fatalf("create area: %v", err)
	}
	vendor, _, err := f.facade.RegisterVendor(ctx, "vendor1", "secret", "Coffee Stand", "Food Court")
	if err != nil {
		t.Fatalf("register vendor: %v", err)
	}
	actor := usecase.Actor{UserID: vendor.ID, Role: model.RoleVendor, RestaurantID: vendor.RestaurantID}
	if err := f.facade.SetRestaurantOnline(ctx, actor, vendor.RestaurantID, true); err != nil {
		t.Fatalf("go online: %v", err)
	}
	item, err := f.facade.CreateMenuItem(ctx, actor, model.MenuItem{RestaurantID: vendor.RestaurantID, Name: "Latte", Price: 10})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	orders, err := f.facade.Checkout(ctx, "cust-1", "Food Court", 4, []model.CartItem{{MenuItemID: item.ID, Quantity: 2}}, 0, "")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if len(orders) != 1 || orders[0].Total != 20 {
		t.Fatalf("unexpected checkout result %v", orders)
	}

	// The sync session's remote write path impersonates the vendor.
	profile := ordersync.Profile{UserID: vendor.ID, Role: model.RoleVendor, RestaurantID: vendor.RestaurantID}
	updated, err := f.facade.UpdateOrderStatus(ctx, profile, orders[0].ID, model.OrderStatusOngoing, "", "")
	if err != nil {
		t.Fatalf("status update: %v", err)
	}
	if updated.Status != model.OrderStatusOngoing {
		t.Fatalf("unexpected status %s", updated.Status)
	}

	foreign := ordersync.Profile{UserID: 99, Role: model.RoleVendor, RestaurantID: 42}
	if _, err := f.facade.UpdateOrderStatus(ctx, foreign, orders[0].ID, model.OrderStatusCompleted, "", ""); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for a foreign vendor, got %v", err)
	}

	since, err := f.facade.ListSince(ctx, vendor.RestaurantID, 0, 50)
	if err != nil || len(since) != 1 {
		t.Fatalf("unexpected incremental pull %v err=%v", since, err)
	}
	recent, err := f.facade.ListRecent(ctx, 200)
	if err != nil || len(recent) != 1 {
		t.Fatalf("unexpected full pull %v err=%v", recent, err)
	}
}

func TestPlatformFacadeListRestaurantsScope(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	if _, err := f.restaurants.Create(ctx, &model.Restaurant{Name: "Online", Hub: "Food Court", Online: true}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := f.restaurants.Create(ctx, &model.Restaurant{Name: "Offline", Hub: "Food Court"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	scoped, err := f.facade.ListRestaurants(ctx, "Food Court")
	if err != nil || len(scoped) != 1 {
		t.Fatalf("hub listing must be online-only, got %v err=%v", scoped, err)
	}

	// An empty hub is the admin view: everything, online or not.
	all, err := f.facade.ListRestaurants(ctx, "")
	if err != nil || len(all) != 2 {
		t.Fatalf("platform listing must include offline storefronts, got %v err=%v", all, err)
	}
}

var (
	_ handlers.PlatformFacade = (*PlatformFacade)(nil)
	_ ordersync.Source        = (*PlatformFacade)(nil)
)
