package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gimo/internal/domain/entity"
	"gimo/internal/domain/repository"
	"gimo/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		doc := r.client.Collection("users").NewDoc()
		user.ID = doc.ID
	}

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Unavailable("Failed to create user", err)
	}

	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Unavailable("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getByField(ctx, "email", email)
}

func (r *firestoreUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getByField(ctx, "username", username)
}

func (r *firestoreUserRepository) getByField(ctx context.Context, field, value string) (*entity.User, error) {
	docs, err := r.client.Collection("users").Where(field, "==", value).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Unavailable("Failed to query users", err)
	}
	if len(docs) == 0 {
		return nil, errors.NotFound("User", nil)
	}

	var user entity.User
	if err := docs[0].DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Unavailable("Failed to update user", err)
	}

	return nil
}

func (r *firestoreUserRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("users").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Unavailable("Failed to delete user", err)
	}

	return nil
}

func (r *firestoreUserRepository) List(ctx context.Context, filter repository.UserFilter, limit, offset int) ([]*entity.User, int64, error) {
	query := r.client.Collection("users").Query

	if filter.Role != "" {
		query = query.Where("role", "==", filter.Role)
	}
	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	// Substring search has no Firestore operator, so match in memory over
	// the filtered set.
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Unavailable("Failed to list users", err)
	}

	search := strings.ToLower(filter.Search)
	var users []*entity.User
	for _, doc := range docs {
		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, 0, errors.Internal("Failed to parse user data", err)
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(user.Email), search) &&
			!strings.Contains(strings.ToLower(user.Username), search) {
			continue
		}
		users = append(users, &user)
	}

	total := int64(len(users))
	users = paginate(users, limit, offset)

	return users, total, nil
}

// paginate slices a fully materialized result set.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
