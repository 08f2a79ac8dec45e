package repository

import (
	"context"

	"gimo/internal/domain/entity"
)

// UserFilter narrows admin user listings. Search matches email or username
// as a case-insensitive substring.
type UserFilter struct {
	Role   string
	Status string
	Search string
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter UserFilter, limit, offset int) ([]*entity.User, int64, error)
}
