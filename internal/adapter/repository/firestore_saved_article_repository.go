package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"

	"gimo/internal/domain/entity"
	"gimo/internal/domain/repository"
	"gimo/pkg/errors"
)

type firestoreSavedArticleRepository struct {
	client *firestore.Client
}

func NewFirestoreSavedArticleRepository(client *firestore.Client) repository.SavedArticleRepository {
	return &firestoreSavedArticleRepository{
		client: client,
	}
}

// The link document id is userID_articleID, so a repeated save overwrites
// the existing link instead of duplicating it.
func savedDocID(userID, articleID string) string {
	return userID + "_" + articleID
}

func (r *firestoreSavedArticleRepository) Save(ctx context.Context, saved *entity.SavedArticle) error {
	saved.ID = savedDocID(saved.UserID, saved.ArticleID)
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("saved_articles").Doc(saved.ID).Set(ctx, saved)
	if err != nil {
		return errors.Unavailable("Failed to save article link", err)
	}

	return nil
}

func (r *firestoreSavedArticleRepository) Unsave(ctx context.Context, userID, articleID string) error {
	_, err := r.client.Collection("saved_articles").Doc(savedDocID(userID, articleID)).Delete(ctx)
	if err != nil {
		return errors.Unavailable("Failed to remove article link", err)
	}

	return nil
}

func (r *firestoreSavedArticleRepository) ListByUser(ctx context.Context, userID string) ([]*entity.SavedArticle, error) {
	docs, err := r.client.Collection("saved_articles").Where("userId", "==", userID).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Unavailable("Failed to list saved articles", err)
	}

	var saved []*entity.SavedArticle
	for _, doc := range docs {
		var link entity.SavedArticle
		if err := doc.DataTo(&link); err != nil {
			return nil, errors.Internal("Failed to parse saved article data", err)
		}
		saved = append(saved, &link)
	}

	sort.Slice(saved, func(i, j int) bool { return saved[i].CreatedAt.After(saved[j].CreatedAt) })

	return saved, nil
}

func (r *firestoreSavedArticleRepository) DeleteByUser(ctx context.Context, userID string) error {
	docs, err := r.client.Collection("saved_articles").Where("userId", "==", userID).Documents(ctx).GetAll()
	if err != nil {
		return errors.Unavailable("Failed to query saved articles", err)
	}

	for _, doc := range docs {
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return errors.Unavailable("Failed to delete saved article link", err)
		}
	}

	return nil
}
