package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/quickserve/quickserve/internal/domain/errors"
	"github.com/quickserve/quickserve/internal/domain/model"
	testhelpers "github.com/quickserve/quickserve/internal/test"
	"github.com/quickserve/quickserve/internal/usecase"
)

type restaurantFixture struct {
	users       *testhelpers.UserRepositoryStub
	restaurants *testhelpers.RestaurantRepositoryStub
	uc          *usecase.RestaurantUseCase
	vendorID    int64
	kitchenID   int64
}

func newRestaurantFixture(t *testing.T) *restaurantFixture {
	t.Helper()
	f := &restaurantFixture{
		users:       testhelpers.NewUserRepositoryStub(),
		restaurants: testhelpers.NewRestaurantRepositoryStub(),
	}
	f.uc = usecase.NewRestaurantUseCase(f.restaurants, f.users)

	ctx := context.Background()
	vendor, err := f.users.Create(ctx, &model.User{Login: "vendor1", Role: model.RoleVendor, Active: true})
	if err != nil {
		t.Fatalf("seed vendor: %v", err)
	}
	kitchen, err := f.restaurants.Create(ctx, &model.Restaurant{Name: "Coffee Stand", Hub: "Food Court", VendorID: vendor.ID})
	if err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	f.vendorID, f.kitchenID = vendor.ID, kitchen.ID
	return f
}

func (f *restaurantFixture) vendorActor() usecase.Actor {
	return usecase.Actor{UserID: f.vendorID, Role: model.RoleVendor, RestaurantID: f.kitchenID}
}

func TestRestaurantSetOnline(t *testing.T) {
	f := newRestaurantFixture(t)
	ctx := context.Background()

	if err := f.uc.SetOnline(ctx, f.vendorActor(), f.kitchenID, true); err != nil {
		t.Fatalf("go online failed: %v", err)
	}
	if !f.restaurants.ByID[f.kitchenID].Online {
		t.Fatal("storefront must be online")
	}
	if err := f.uc.SetOnline(ctx, f.vendorActor(), f.kitchenID, false); err != nil {
		t.Fatalf("go offline failed: %v", err)
	}
	if f.restaurants.ByID[f.kitchenID].Online {
		t.Fatal("storefront must be offline")
	}
}

func TestRestaurantSetOnlineDisabledVendor(t *testing.T) {
	f := newRestaurantFixture(t)
	ctx := context.Background()

	if err := f.users.SetActive(ctx, f.vendorID, false); err != nil {
		t.Fatalf("disable vendor: %v", err)
	}
	if err := f.uc.SetOnline(ctx, f.vendorActor(), f.kitchenID, true); !errors.Is(err, domainErrors.ErrVendorDisabled) {
		t.Fatalf("expected ErrVendorDisabled, got %v", err)
	}
	// Going offline is always allowed.
	if err := f.uc.SetOnline(ctx, f.vendorActor(), f.kitchenID, false); err != nil {
		t.Fatalf("offline must not check the account, got %v", err)
	}
}

func TestRestaurantSetOnlineForeignActor(t *testing.T) {
	f := newRestaurantFixture(t)
	other := usecase.Actor{UserID: 99, Role: model.RoleVendor, RestaurantID: 42}

	if err := f.uc.SetOnline(context.Background(), other, f.kitchenID, true); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRestaurantUpdateProfile(t *testing.T) {
	f := newRestaurantFixture(t)
	ctx := context.Background()

	if err := f.uc.UpdateProfile(ctx, f.vendorActor(), f.kitchenID, "Brew Crew", "https://cdn/logo.png"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	stored := f.restaurants.ByID[f.kitchenID]
	if stored.Name != "Brew Crew" || stored.LogoURL != "https://cdn/logo.png" {
		t.Fatalf("unexpected profile %+v", stored)
	}

	// A blank name keeps the current one; the logo may be cleared.
	if err := f.uc.UpdateProfile(ctx, f.vendorActor(), f.kitchenID, "  ", ""); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	stored = f.restaurants.ByID[f.kitchenID]
	if stored.Name != "Brew Crew" || stored.LogoURL != "" {
		t.Fatalf("unexpected profile %+v", stored)
	}
}

func TestAdminSetVendorActive(t *testing.T) {
	f := newRestaurantFixture(t)
	admin := usecase.NewAdminUseCase(f.users, f.restaurants)
	ctx := context.Background()

	if err := f.restaurants.SetOnline(ctx, f.kitchenID, true); err != nil {
		t.Fatalf("seed online: %v", err)
	}

	// Disabling the vendor forces the storefront offline.
	if err := admin.SetVendorActive(ctx, f.vendorID, false); err != nil {
		t.Fatalf("disable failed: %v", err)
	}
	if f.users.ByID[f.vendorID].Active {
		t.Fatal("vendor must be inactive")
	}
	if f.restaurants.ByID[f.kitchenID].Online {
		t.Fatal("disabling a vendor must take the storefront offline")
	}

	// Re-enabling does not flip the storefront back on.
	if err := admin.SetVendorActive(ctx, f.vendorID, true); err != nil {
		t.Fatalf("enable failed: %v", err)
	}
	if f.restaurants.ByID[f.kitchenID].Online {
		t.Fatal("re-enabling must leave the storefront offline")
	}

	if err := admin.SetVendorActive(ctx, 999, false); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdminListVendors(t *testing.T) {
	f := newRestaurantFixture(t)
	admin := usecase.NewAdminUseCase(f.users, f.restaurants)
	ctx := context.Background()

	if _, err := f.users.Create(ctx, &model.User{Login: "admin", Role: model.RoleAdmin, Active: true}); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	vendors, err := admin.ListVendors(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(vendors) != 1 || vendors[0].Login != "vendor1" {
		t.Fatalf("expected only the vendor account, got %v", vendors)
	}
}
