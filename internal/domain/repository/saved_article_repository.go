package repository

import (
	"context"

	"gimo/internal/domain/entity"
)

type SavedArticleRepository interface {
	// Save is idempotent: saving the same article twice keeps one link.
	Save(ctx context.Context, saved *entity.SavedArticle) error
	Unsave(ctx context.Context, userID, articleID string) error
	ListByUser(ctx context.Context, userID string) ([]*entity.SavedArticle, error)
	DeleteByUser(ctx context.Context, userID string) error
}
