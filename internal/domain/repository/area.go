package repository

import (
	"context"

	"github.com/quickserve/quickserve/internal/domain/model"
)

// AreaRepository describes persistence operations with ordering hubs.
type AreaRepository interface {
	Create(ctx context.Context, area *model.Area) (*model.Area, error)
	Update(ctx context.Context, area *model.Area) error
	GetByName(ctx context.Context, name string) (*model.Area, error)
	List(ctx context.Context, activeOnly bool) ([]model.Area, error)
	SetActive(ctx context.Context, id int64, active bool) error
}
