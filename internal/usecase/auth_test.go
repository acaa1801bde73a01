package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/quickserve/quickserve/internal/domain/errors"
	"github.com/quickserve/quickserve/internal/domain/model"
	pkgAuth "github.com/quickserve/quickserve/internal/pkg/auth"
	testhelpers "github.com/quickserve/quickserve/internal/test"
	"github.com/quickserve/quickserve/internal/usecase"
)

type authFixture struct {
	users       *testhelpers.UserRepositoryStub
	restaurants *testhelpers.RestaurantRepositoryStub
	areas       *testhelpers.AreaRepositoryStub
	strategy    *testhelpers.StrategyStub
	uc          *usecase.AuthUseCase
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		users:       testhelpers.NewUserRepositoryStub(),
		restaurants: testhelpers.NewRestaurantRepositoryStub(),
		areas:       testhelpers.NewAreaRepositoryStub(),
		strategy:    &testhelpers.StrategyStub{},
	}
	f.uc = usecase.NewAuthUseCase(f.users, f.restaurants, f.areas, testhelpers.HasherStub{}, f.strategy)

	if _, err := f.areas.Create(context.Background(), &model.Area{Name: "Food Court", Code: "FC", Active: true}); err != nil {
		t.Fatalf("seed area: %v", err)
	}
	return f
}

func TestRegisterVendorCreatesOfflineStorefront(t *testing.T) {
	f := newAuthFixture(t)

	usr, token, err := f.uc.RegisterVendor(context.Background(), "vendor1", "secret", "Coffee Stand", "Food Court")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}
	if usr.Role != model.RoleVendor || !usr.Active {
		t.Fatalf("unexpected account %+v", usr)
	}

	restaurant, err := f.restaurants.GetByID(context.Background(), usr.RestaurantID)
	if err != nil {
		t.Fatalf("storefront missing: %v", err)
	}
	if restaurant.Online {
		t.Fatal("new storefront must start offline")
	}
	if restaurant.VendorID != usr.ID {
		t.Fatalf("storefront not linked to vendor: %+v", restaurant)
	}
	if restaurant.Hub != "Food Court" {
		t.Fatalf("storefront placed in wrong hub %q", restaurant.Hub)
	}

	if len(f.strategy.Issued) != 1 {
		t.Fatalf("expected one issued token, got %d", len(f.strategy.Issued))
	}
	claims := f.strategy.Issued[0]
	if claims.UserID != usr.ID || claims.Role != string(model.RoleVendor) || claims.RestaurantID != restaurant.ID {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestRegisterVendorValidation(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	if _, _, err := f.uc.RegisterVendor(ctx, "  ", "secret", "Coffee Stand", "Food Court"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("blank login: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := f.uc.RegisterVendor(ctx, "vendor1", "secret", "Coffee Stand", "Nowhere"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("unknown hub: expected ErrNotFound, got %v", err)
	}

	area, _ := f.areas.GetByName(ctx, "Food Court")
	if err := f.areas.SetActive(ctx, area.ID, false); err != nil {
		t.Fatalf("deactivate area: %v", err)
	}
	if _, _, err := f.uc.RegisterVendor(ctx, "vendor1", "secret", "Coffee Stand", "Food Court"); !errors.Is(err, domainErrors.ErrAreaInactive) {
		t.Fatalf("inactive hub: expected ErrAreaInactive, got %v", err)
	}
}

func TestRegisterVendorDuplicateLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	if _, _, err := f.uc.RegisterVendor(ctx, "vendor1", "secret", "Coffee Stand", "Food Court"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := f.uc.RegisterVendor(ctx, "vendor1", "other", "Noodle Bar", "Food Court"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	password := testhelpers.RandomASCIIString(8, 24)
	if _, _, err := f.uc.RegisterVendor(ctx, "vendor1", password, "Coffee Stand", "Food Court"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	usr, token, err := f.uc.Authenticate(ctx, "vendor1", password)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if token != "token" || usr.Login != "vendor1" {
		t.Fatalf("unexpected result %q %+v", token, usr)
	}

	if _, _, err := f.uc.Authenticate(ctx, "vendor1", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := f.uc.Authenticate(ctx, "ghost", "secret"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("unknown login must not leak existence, got %v", err)
	}
}

func TestTableSessionIssuesCustomerClaims(t *testing.T) {
	f := newAuthFixture(t)

	token, err := f.uc.TableSession(context.Background(), "Food Court", 12)
	if err != nil {
		t.Fatalf("table session failed: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	claims := f.strategy.Issued[len(f.strategy.Issued)-1]
	if claims.Role != string(model.RoleCustomer) || claims.Hub != "Food Court" || claims.Table != 12 {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if claims.CustomerID == "" {
		t.Fatal("customer sessions must get a generated customer ID")
	}

	// Two sessions at the same table stay distinct.
	if _, err := f.uc.TableSession(context.Background(), "Food Court", 12); err != nil {
		t.Fatalf("second session failed: %v", err)
	}
	again := f.strategy.Issued[len(f.strategy.Issued)-1]
	if again.CustomerID == claims.CustomerID {
		t.Fatal("each table session must mint a fresh customer ID")
	}
}

func TestTableSessionInactiveHub(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	area, _ := f.areas.GetByName(ctx, "Food Court")
	if err := f.areas.SetActive(ctx, area.ID, false); err != nil {
		t.Fatalf("deactivate area: %v", err)
	}
	if _, err := f.uc.TableSession(ctx, "Food Court", 1); !errors.Is(err, domainErrors.ErrAreaInactive) {
		t.Fatalf("expected ErrAreaInactive, got %v", err)
	}
}

func TestParseTokenEmpty(t *testing.T) {
	f := newAuthFixture(t)
	if _, err := f.uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestEnsureAdmin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	if err := f.uc.EnsureAdmin(ctx, "admin", "secret"); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	admin, err := f.users.GetByLogin(ctx, "admin")
	if err != nil {
		t.Fatalf("admin missing: %v", err)
	}
	if admin.Role != model.RoleAdmin || !admin.Active {
		t.Fatalf("unexpected admin account %+v", admin)
	}

	// Second call is a no-op, not a duplicate error.
	if err := f.uc.EnsureAdmin(ctx, "admin", "secret"); err != nil {
		t.Fatalf("repeat bootstrap failed: %v", err)
	}

	// Unconfigured credentials skip bootstrap entirely.
	if err := f.uc.EnsureAdmin(ctx, "", ""); err != nil {
		t.Fatalf("empty bootstrap must be a no-op, got %v", err)
	}
}
