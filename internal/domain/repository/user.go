package repository

import (
	"context"

	"github.com/quickserve/quickserve/internal/domain/model"
)

// UserRepository describes persistence operations with accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	SetActive(ctx context.Context, id int64, active bool) error
}
