package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gimo/internal/domain/entity"
	"gimo/internal/domain/repository"
	"gimo/pkg/errors"
)

type firestoreArticleRepository struct {
	client *firestore.Client
}

func NewFirestoreArticleRepository(client *firestore.Client) repository.ArticleRepository {
	return &firestoreArticleRepository{
		client: client,
	}
}

func (r *firestoreArticleRepository) Create(ctx context.Context, article *entity.Article) error {
	if article.ID == "" {
		doc := r.client.Collection("articles").NewDoc()
		article.ID = doc.ID
	}

	now := time.Now()
	if article.CreatedAt.IsZero() {
		article.CreatedAt = now
	}
	article.UpdatedAt = now

	_, err := r.client.Collection("articles").Doc(article.ID).Set(ctx, article)
	if err != nil {
		return errors.Unavailable("Failed to create article", err)
	}

	return nil
}

func (r *firestoreArticleRepository) GetByID(ctx context.Context, id string) (*entity.Article, error) {
	doc, err := r.client.Collection("articles").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Article", err)
		}
		return nil, errors.Unavailable("Failed to get article", err)
	}

	var article entity.Article
	if err := doc.DataTo(&article); err != nil {
		return nil, errors.Internal("Failed to parse article data", err)
	}

	return &article, nil
}

func (r *firestoreArticleRepository) Update(ctx context.Context, article *entity.Article) error {
	article.UpdatedAt = time.Now()

	_, err := r.client.Collection("articles").Doc(article.ID).Set(ctx, article)
	if err != nil {
		return errors.Unavailable("Failed to update article", err)
	}

	return nil
}

func (r *firestoreArticleRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("articles").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Unavailable("Failed to delete article", err)
	}

	return nil
}

func (r *firestoreArticleRepository) List(ctx context.Context, filter repository.ArticleFilter, limit, offset int) ([]*entity.Article, int64, error) {
	query := r.client.Collection("articles").Query

	if filter.Category != "" {
		query = query.Where("category", "==", filter.Category)
	}
	if filter.AuthorID != "" {
		query = query.Where("authorId", "==", filter.AuthorID)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Unavailable("Failed to count articles", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var articles []*entity.Article

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Unavailable("Failed to iterate articles", err)
		}
		var article entity.Article
		if err := doc.DataTo(&article); err != nil {
			return nil, 0, errors.Internal("Failed to parse article data", err)
		}
		articles = append(articles, &article)
	}

	return articles, total, nil
}

func (r *firestoreArticleRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.client.Collection("articles").Doc(id).Update(ctx, []firestore.Update{
		{Path: "views", Value: firestore.Increment(1)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Article", err)
		}
		return errors.Unavailable("Failed to increment article views", err)
	}

	return nil
}

func (r *firestoreArticleRepository) DeleteByAuthor(ctx context.Context, authorID string) error {
	docs, err := r.client.Collection("articles").Where("authorId", "==", authorID).Documents(ctx).GetAll()
	if err != nil {
		return errors.Unavailable("Failed to query author articles", err)
	}

	for _, doc := range docs {
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return errors.Unavailable("Failed to delete author article", err)
		}
	}

	return nil
}
