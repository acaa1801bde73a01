package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/quickserve/quickserve/internal/domain/errors"
	"github.com/quickserve/quickserve/internal/domain/model"
	"github.com/quickserve/quickserve/internal/domain/repository"
)

// AreaUseCase manages the platform's physical ordering hubs.
type AreaUseCase struct {
	areas repository.AreaRepository
}

// NewAreaUseCase constructs AreaUseCase.
func NewAreaUseCase(areas repository.AreaRepository) *AreaUseCase {
	return &AreaUseCase{areas: areas}
}

// Create registers a new hub. The short code is normalized to upper case
// because it prefixes order IDs.
func (u *AreaUseCase) Create(ctx context.Context, area model.Area) (*model.Area, error) {
	area.Name = strings.TrimSpace(area.Name)
	area.Code = strings.ToUpper(strings.TrimSpace(area.Code))
	if area.Name == "" || area.Code == "" {
		return nil, domainErrors.ErrInvalidArea
	}
	return u.areas.Create(ctx, &area)
}

// Update replaces a hub's fields.
func (u *AreaUseCase) Update(ctx context.Context, area model.Area) error {
	area.Name = strings.TrimSpace(area.Name)
	area.Code = strings.ToUpper(strings.TrimSpace(area.Code))
	if area.Name == "" || area.Code == "" {
		return domainErrors.ErrInvalidArea
	}
	return u.areas.Update(ctx, &area)
}

// SetActive toggles whether the hub accepts new sessions and checkouts.
func (u *AreaUseCase) SetActive(ctx context.Context, id int64, active bool) error {
	return u.areas.SetActive(ctx, id, active)
}

// Get returns a hub by its unique name.
func (u *AreaUseCase) Get(ctx context.Context, name string) (*model.Area, error) {
	return u.areas.GetByName(ctx, name)
}

// List returns hubs, optionally only active ones.
func (u *AreaUseCase) List(ctx context.Context, activeOnly bool) ([]model.Area, error) {
	return u.areas.List(ctx, activeOnly)
}
