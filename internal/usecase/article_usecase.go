package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"gimo/internal/domain/entity"
	"gimo/internal/domain/repository"
	"gimo/internal/domain/service"
	"gimo/pkg/errors"
)

type ArticleUseCase struct {
	articleRepo repository.ArticleRepository
	savedRepo   repository.SavedArticleRepository
}

func NewArticleUseCase(articleRepo repository.ArticleRepository, savedRepo repository.SavedArticleRepository) *ArticleUseCase {
	return &ArticleUseCase{
		articleRepo: articleRepo,
		savedRepo:   savedRepo,
	}
}

type ArticleInput struct {
	Title    string
	Content  string
	Category string
	ImageURL string
}

func (uc *ArticleUseCase) Create(ctx context.Context, actor *entity.User, input ArticleInput) (*entity.Article, error) {
	if !entity.ValidCategory(input.Category) {
		return nil, errors.Validation("Invalid category", nil)
	}

	now := time.Now()
	article := &entity.Article{
		ID:             uuid.NewString(),
		Title:          strings.TrimSpace(input.Title),
		Content:        input.Content,
		Category:       input.Category,
		ImageURL:       strings.TrimSpace(input.ImageURL),
		AuthorID:       actor.ID,
		AuthorUsername: actor.Username,
		Views:          0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

func (uc *ArticleUseCase) GetByID(ctx context.Context, id string) (*entity.Article, error) {
	return uc.articleRepo.GetByID(ctx, id)
}

func (uc *ArticleUseCase) List(ctx context.Context, category string, limit, offset int) ([]*entity.Article, int64, error) {
	if category != "" && !entity.ValidCategory(category) {
		return nil, 0, errors.Validation("Invalid category", nil)
	}
	return uc.articleRepo.List(ctx, repository.ArticleFilter{Category: category}, limit, offset)
}

func (uc *ArticleUseCase) ListByAuthor(ctx context.Context, authorID string) ([]*entity.Article, error) {
	articles, _, err := uc.articleRepo.List(ctx, repository.ArticleFilter{AuthorID: authorID}, 0, 0)
	return articles, err
}

func (uc *ArticleUseCase) Update(ctx context.Context, actor *entity.User, id string, input ArticleInput) (*entity.Article, error) {
	article, err := uc.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.authorize(actor, article); err != nil {
		return nil, err
	}

	if !entity.ValidCategory(input.Category) {
		return nil, errors.Validation("Invalid category", nil)
	}

	article.Title = strings.TrimSpace(input.Title)
	article.Content = input.Content
	article.Category = input.Category
	article.ImageURL = strings.TrimSpace(input.ImageURL)

	if err := uc.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

func (uc *ArticleUseCase) Delete(ctx context.Context, actor *entity.User, id string) error {
	article, err := uc.articleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.authorize(actor, article); err != nil {
		return err
	}

	return uc.articleRepo.Delete(ctx, id)
}

// authorize runs the ownership check after the role gate already passed:
// the owning author or anyone with the admin-only capability may touch the
// article.
func (uc *ArticleUseCase) authorize(actor *entity.User, article *entity.Article) error {
	if article.AuthorID == actor.ID {
		return nil
	}
	if service.Allows(actor.Role, service.CapabilityAdminOnly) {
		return nil
	}
	return errors.Forbidden("You do not own this article", nil)
}

// IncrementViews is fire-and-forget from the caller's perspective: a missing
// article surfaces as NotFound, anything else counts one view.
func (uc *ArticleUseCase) IncrementViews(ctx context.Context, id string) error {
	return uc.articleRepo.IncrementViews(ctx, id)
}

func (uc *ArticleUseCase) SaveArticle(ctx context.Context, actor *entity.User, articleID string) error {
	if _, err := uc.articleRepo.GetByID(ctx, articleID); err != nil {
		return err
	}

	return uc.savedRepo.Save(ctx, &entity.SavedArticle{
		UserID:    actor.ID,
		ArticleID: articleID,
		CreatedAt: time.Now(),
	})
}

func (uc *ArticleUseCase) UnsaveArticle(ctx context.Context, actor *entity.User, articleID string) error {
	return uc.savedRepo.Unsave(ctx, actor.ID, articleID)
}

// ListSaved resolves each saved link to its article, skipping links whose
// article has been deleted since.
func (uc *ArticleUseCase) ListSaved(ctx context.Context, actor *entity.User) ([]*entity.Article, error) {
	links, err := uc.savedRepo.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	articles := make([]*entity.Article, 0, len(links))
	for _, link := range links {
		article, err := uc.articleRepo.GetByID(ctx, link.ArticleID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				continue
			}
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, nil
}
