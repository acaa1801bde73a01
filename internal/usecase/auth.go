package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/quickserve/quickserve/internal/domain/errors"
	"github.com/quickserve/quickserve/internal/domain/model"
	"github.com/quickserve/quickserve/internal/domain/repository"
	pkgAuth "github.com/quickserve/quickserve/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle, token management, and the silent
// table-session entry used by the QR contract.
type AuthUseCase struct {
	users       repository.UserRepository
	restaurants repository.RestaurantRepository
	areas       repository.AreaRepository
	hasher      pkgAuth.PasswordHasher
	tokens      pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(
	users repository.UserRepository,
	restaurants repository.RestaurantRepository,
	areas repository.AreaRepository,
	hasher pkgAuth.PasswordHasher,
	strategy pkgAuth.Strategy,
) *AuthUseCase {
	return &AuthUseCase{users: users, restaurants: restaurants, areas: areas, hasher: hasher, tokens: strategy}
}

// RegisterVendor creates a vendor account together with its storefront in
// the given hub. The storefront starts offline.
func (u *AuthUseCase) RegisterVendor(ctx context.Context, login, password, restaurantName, hub string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	restaurantName = strings.TrimSpace(restaurantName)
	if login == "" || password == "" || restaurantName == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	area, err := u.areas.GetByName(ctx, hub)
	if err != nil {
		return nil, "", err
	}
	if !area.Active {
		return nil, "", domainErrors.ErrAreaInactive
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	restaurant, err := u.restaurants.Create(ctx, &model.Restaurant{
		Name: restaurantName,
		Hub:  area.Name,
	})
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, &model.User{
		Login:        login,
		PasswordHash: hash,
		Role:         model.RoleVendor,
		RestaurantID: restaurant.ID,
		Active:       true,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	restaurant.VendorID = usr.ID
	if err := u.restaurants.Update(ctx, restaurant); err != nil {
		return nil, "", err
	}

	token, err := u.issueUserToken(usr)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// Authenticate validates credentials and returns an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.issueUserToken(usr)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// TableSession establishes a customer session for an active hub and table,
// mirroring the ?loc=&table= QR entry contract.
func (u *AuthUseCase) TableSession(ctx context.Context, hub string, table int) (string, error) {
	area, err := u.areas.GetByName(ctx, hub)
	if err != nil {
		return "", err
	}
	if !area.Active {
		return "", domainErrors.ErrAreaInactive
	}

	return u.tokens.IssueToken(pkgAuth.Claims{
		CustomerID: uuid.NewString(),
		Role:       string(model.RoleCustomer),
		Hub:        area.Name,
		Table:      table,
	})
}

// ParseToken verifies a token and returns its claims.
func (u *AuthUseCase) ParseToken(token string) (pkgAuth.Claims, error) {
	if token == "" {
		return pkgAuth.Claims{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// EnsureAdmin creates the bootstrap admin account if configured and missing.
func (u *AuthUseCase) EnsureAdmin(ctx context.Context, login, password string) error {
	if login == "" || password == "" {
		return nil
	}
	if _, err := u.users.GetByLogin(ctx, login); err == nil {
		return nil
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return err
	}
	_, err = u.users.Create(ctx, &model.User{
		Login:        login,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		Active:       true,
	})
	return err
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

func (u *AuthUseCase) issueUserToken(usr *model.User) (string, error) {
	return u.tokens.IssueToken(pkgAuth.Claims{
		UserID:       usr.ID,
		Role:         string(usr.Role),
		RestaurantID: usr.RestaurantID,
	})
}
