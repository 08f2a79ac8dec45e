package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"gimo/internal/domain/entity"
	"gimo/internal/domain/repository"
	"gimo/pkg/errors"
)

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, code), "expected %s, got %v", code, err)
}

// In-memory repository fakes backing the usecase tests. They mirror the
// Firestore adapters' filter and pagination semantics: limit 0 means no
// limit, substring filters are case-insensitive.

func slice[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return errors.NotFound("User", nil)
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) List(ctx context.Context, filter repository.UserFilter, limit, offset int) ([]*entity.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		if filter.Role != "" && user.Role != filter.Role {
			continue
		}
		if filter.Status != "" && user.Status != filter.Status {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(user.Email), needle) &&
				!strings.Contains(strings.ToLower(user.Username), needle) {
				continue
			}
		}
		clone := *user
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	total := int64(len(matched))
	return slice(matched, limit, offset), total, nil
}

type memArticleRepo struct {
	mu       sync.Mutex
	articles map[string]*entity.Article
}

func newMemArticleRepo() *memArticleRepo {
	return &memArticleRepo{articles: make(map[string]*entity.Article)}
}

func (r *memArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *article
	r.articles[article.ID] = &clone
	return nil
}

func (r *memArticleRepo) GetByID(ctx context.Context, id string) (*entity.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	article, ok := r.articles[id]
	if !ok {
		return nil, errors.NotFound("Article", nil)
	}
	clone := *article
	return &clone, nil
}

func (r *memArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.articles[article.ID]; !ok {
		return errors.NotFound("Article", nil)
	}
	clone := *article
	r.articles[article.ID] = &clone
	return nil
}

func (r *memArticleRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.articles[id]; !ok {
		return errors.NotFound("Article", nil)
	}
	delete(r.articles, id)
	return nil
}

func (r *memArticleRepo) List(ctx context.Context, filter repository.ArticleFilter, limit, offset int) ([]*entity.Article, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := make([]*entity.Article, 0, len(r.articles))
	for _, article := range r.articles {
		if filter.Category != "" && article.Category != filter.Category {
			continue
		}
		if filter.AuthorID != "" && article.AuthorID != filter.AuthorID {
			continue
		}
		clone := *article
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	total := int64(len(matched))
	return slice(matched, limit, offset), total, nil
}

func (r *memArticleRepo) IncrementViews(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	article, ok := r.articles[id]
	if !ok {
		return errors.NotFound("Article", nil)
	}
	article.Views++
	return nil
}

func (r *memArticleRepo) DeleteByAuthor(ctx context.Context, authorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, article := range r.articles {
		if article.AuthorID == authorID {
			delete(r.articles, id)
		}
	}
	return nil
}

type memPropertyRepo struct {
	mu         sync.Mutex
	properties map[string]*entity.Property
}

func newMemPropertyRepo() *memPropertyRepo {
	return &memPropertyRepo{properties: make(map[string]*entity.Property)}
}

func (r *memPropertyRepo) Create(ctx context.Context, property *entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *property
	r.properties[property.ID] = &clone
	return nil
}

func (r *memPropertyRepo) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	property, ok := r.properties[id]
	if !ok {
		return nil, errors.NotFound("Property", nil)
	}
	clone := *property
	return &clone, nil
}

func (r *memPropertyRepo) Update(ctx context.Context, property *entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.properties[property.ID]; !ok {
		return errors.NotFound("Property", nil)
	}
	clone := *property
	r.properties[property.ID] = &clone
	return nil
}

func (r *memPropertyRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.properties[id]; !ok {
		return errors.NotFound("Property", nil)
	}
	delete(r.properties, id)
	return nil
}

func (r *memPropertyRepo) List(ctx context.Context, filter repository.PropertyFilter, sortOrder string, limit, offset int) ([]*entity.Property, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := make([]*entity.Property, 0, len(r.properties))
	for _, property := range r.properties {
		if filter.Type != "" && property.Type != filter.Type {
			continue
		}
		if filter.Status != "" && property.Status != filter.Status {
			continue
		}
		if filter.AgentID != "" && property.AgentID != filter.AgentID {
			continue
		}
		if filter.City != "" && !strings.Contains(strings.ToLower(property.City), strings.ToLower(filter.City)) {
			continue
		}
		if filter.MinPrice > 0 && property.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && property.Price > filter.MaxPrice {
			continue
		}
		clone := *property
		matched = append(matched, &clone)
	}
	switch sortOrder {
	case repository.PropertySortPriceAsc:
		sort.Slice(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	case repository.PropertySortPriceDesc:
		sort.Slice(matched, func(i, j int) bool { return matched[i].Price > matched[j].Price })
	default:
		sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	}
	total := int64(len(matched))
	return slice(matched, limit, offset), total, nil
}

func (r *memPropertyRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	property, ok := r.properties[id]
	if !ok {
		return errors.NotFound("Property", nil)
	}
	property.Status = status
	return nil
}

func (r *memPropertyRepo) IncrementViews(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	property, ok := r.properties[id]
	if !ok {
		return errors.NotFound("Property", nil)
	}
	property.Views++
	return nil
}

func (r *memPropertyRepo) DeleteByAgent(ctx context.Context, agentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, property := range r.properties {
		if property.AgentID == agentID {
			delete(r.properties, id)
		}
	}
	return nil
}

type memPaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*entity.Payment

	// Shared so CreateReserving can flip the property status the way the
	// Firestore transaction does.
	properties *memPropertyRepo
}

func newMemPaymentRepo(properties *memPropertyRepo) *memPaymentRepo {
	return &memPaymentRepo{
		payments:   make(map[string]*entity.Payment),
		properties: properties,
	}
}

func (r *memPaymentRepo) CreateReserving(ctx context.Context, payment *entity.Payment) error {
	r.properties.mu.Lock()
	property, ok := r.properties.properties[payment.PropertyID]
	if !ok {
		r.properties.mu.Unlock()
		return errors.NotFound("Property", nil)
	}
	if property.Status != entity.PropertyStatusAvailable {
		r.properties.mu.Unlock()
		return errors.Conflict("Property is no longer available")
	}
	property.Status = entity.PropertyStatusReserved
	r.properties.mu.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *payment
	r.payments[payment.ID] = &clone
	return nil
}

func (r *memPaymentRepo) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment, ok := r.payments[id]
	if !ok {
		return nil, errors.NotFound("Payment", nil)
	}
	clone := *payment
	return &clone, nil
}

func (r *memPaymentRepo) Update(ctx context.Context, payment *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[payment.ID]; !ok {
		return errors.NotFound("Payment", nil)
	}
	clone := *payment
	r.payments[payment.ID] = &clone
	return nil
}

func (r *memPaymentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[id]; !ok {
		return errors.NotFound("Payment", nil)
	}
	delete(r.payments, id)
	return nil
}

func (r *memPaymentRepo) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := make([]*entity.Payment, 0)
	for _, payment := range r.payments {
		if payment.BuyerID == buyerID {
			clone := *payment
			matched = append(matched, &clone)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

func (r *memPaymentRepo) List(ctx context.Context, filter repository.PaymentFilter, limit, offset int) ([]*entity.Payment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := make([]*entity.Payment, 0, len(r.payments))
	for _, payment := range r.payments {
		if filter.Status != "" && payment.Status != filter.Status {
			continue
		}
		clone := *payment
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	total := int64(len(matched))
	return slice(matched, limit, offset), total, nil
}

type memSavedArticleRepo struct {
	mu    sync.Mutex
	saved map[string]*entity.SavedArticle
}

func newMemSavedArticleRepo() *memSavedArticleRepo {
	return &memSavedArticleRepo{saved: make(map[string]*entity.SavedArticle)}
}

func (r *memSavedArticleRepo) Save(ctx context.Context, saved *entity.SavedArticle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := saved.UserID + "_" + saved.ArticleID
	clone := *saved
	clone.ID = key
	r.saved[key] = &clone
	return nil
}

func (r *memSavedArticleRepo) Unsave(ctx context.Context, userID, articleID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.saved, userID+"_"+articleID)
	return nil
}

func (r *memSavedArticleRepo) ListByUser(ctx context.Context, userID string) ([]*entity.SavedArticle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := make([]*entity.SavedArticle, 0)
	for _, saved := range r.saved {
		if saved.UserID == userID {
			clone := *saved
			matched = append(matched, &clone)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

func (r *memSavedArticleRepo) DeleteByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, saved := range r.saved {
		if saved.UserID == userID {
			delete(r.saved, key)
		}
	}
	return nil
}

// staticTokenIssuer avoids signing real JWTs in usecase tests.
type staticTokenIssuer struct{}

func (staticTokenIssuer) Issue(userID string) (string, error) {
	return "token-for-" + userID, nil
}

func (staticTokenIssuer) Verify(raw string) (string, error) {
	return strings.TrimPrefix(raw, "token-for-"), nil
}
