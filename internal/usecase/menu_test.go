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

func newMenuUseCase() (*usecase.MenuUseCase, *testhelpers.MenuRepositoryStub) {
	menus := testhelpers.NewMenuRepositoryStub()
	return usecase.NewMenuUseCase(menus), menus
}

func TestMenuCreateItem(t *testing.T) {
	uc, _ := newMenuUseCase()
	vendor := usecase.Actor{UserID: 7, Role: model.RoleVendor, RestaurantID: 1}

	created, err := uc.CreateItem(context.Background(), vendor, model.MenuItem{
		RestaurantID: 1,
		Name:         "Latte",
		Price:        10,
		Archived:     true, // clients cannot create pre-archived items
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("item must get an ID")
	}
	if created.Archived {
		t.Fatal("new items must not be archived")
	}
}

func TestMenuCreateItemForeignRestaurant(t *testing.T) {
	uc, _ := newMenuUseCase()
	vendor := usecase.Actor{UserID: 7, Role: model.RoleVendor, RestaurantID: 1}

	if _, err := uc.CreateItem(context.Background(), vendor, model.MenuItem{RestaurantID: 2, Name: "Latte", Price: 10}); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestMenuCreateItemValidation(t *testing.T) {
	uc, _ := newMenuUseCase()
	vendor := usecase.Actor{UserID: 7, Role: model.RoleVendor, RestaurantID: 1}
	ctx := context.Background()

	cases := []model.MenuItem{
		{RestaurantID: 1, Name: "  ", Price: 10},
		{RestaurantID: 1, Name: "Latte", Price: -1},
		{RestaurantID: 1, Name: "Latte", Price: 10, Sizes: []model.SizeOption{{Name: ""}}},
		{RestaurantID: 1, Name: "Latte", Price: 10, Variants: model.VariantGroup{Options: []model.VariantOption{{Name: " "}}}},
	}
	for i, item := range cases {
		if _, err := uc.CreateItem(ctx, vendor, item); !errors.Is(err, domainErrors.ErrInvalidMenuItem) {
			t.Fatalf("case %d: expected ErrInvalidMenuItem, got %v", i, err)
		}
	}
}

func TestMenuUpdateItemKeepsOwnership(t *testing.T) {
	uc, menus := newMenuUseCase()
	vendor := usecase.Actor{UserID: 7, Role: model.RoleVendor, RestaurantID: 1}
	ctx := context.Background()

	created, err := uc.CreateItem(ctx, vendor, model.MenuItem{RestaurantID: 1, Name: "Latte", Price: 10})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// An update cannot move the item to another restaurant.
	update := *created
	update.Name = "Flat White"
	update.RestaurantID = 99
	if err := uc.UpdateItem(ctx, vendor, update); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	stored := menus.Items[created.ID]
	if stored.Name != "Flat White" || stored.RestaurantID != 1 {
		t.Fatalf("unexpected stored item %+v", stored)
	}

	other := usecase.Actor{UserID: 8, Role: model.RoleVendor, RestaurantID: 2}
	if err := uc.UpdateItem(ctx, other, *created); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("foreign vendor: expected ErrForbidden, got %v", err)
	}
}

func TestMenuArchiveHidesFromCustomers(t *testing.T) {
	uc, _ := newMenuUseCase()
	vendor := usecase.Actor{UserID: 7, Role: model.RoleVendor, RestaurantID: 1}
	ctx := context.Background()

	created, err := uc.CreateItem(ctx, vendor, model.MenuItem{RestaurantID: 1, Name: "Latte", Price: 10})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := uc.ArchiveItem(ctx, vendor, created.ID); err != nil {
		t.Fatalf("archive failed: %v", err)
	}

	customerView, err := uc.CustomerMenu(ctx, 1)
	if err != nil {
		t.Fatalf("customer menu failed: %v", err)
	}
	if len(customerView) != 0 {
		t.Fatalf("archived item leaked to customers: %v", customerView)
	}

	vendorView, err := uc.VendorMenu(ctx, vendor, 1)
	if err != nil {
		t.Fatalf("vendor menu failed: %v", err)
	}
	if len(vendorView) != 1 || !vendorView[0].Archived {
		t.Fatalf("vendor view must keep archived items, got %v", vendorView)
	}
}

func TestMenuVendorMenuForeignRestaurant(t *testing.T) {
	uc, _ := newMenuUseCase()
	vendor := usecase.Actor{UserID: 7, Role: model.RoleVendor, RestaurantID: 1}

	if _, err := uc.VendorMenu(context.Background(), vendor, 2); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	admin := usecase.Actor{UserID: 1, Role: model.RoleAdmin}
	if _, err := uc.VendorMenu(context.Background(), admin, 2); err != nil {
		t.Fatalf("admin must read any menu, got %v", err)
	}
}
