package repository

import (
	"context"

	"gimo/internal/domain/entity"
)

type ArticleFilter struct {
	Category string
	AuthorID string
}

type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	GetByID(ctx context.Context, id string) (*entity.Article, error)
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ArticleFilter, limit, offset int) ([]*entity.Article, int64, error)

	// IncrementViews is an atomic single-document increment.
	IncrementViews(ctx context.Context, id string) error

	// DeleteByAuthor removes every article owned by the author. Used by the
	// admin cascade delete.
	DeleteByAuthor(ctx context.Context, authorID string) error
}
