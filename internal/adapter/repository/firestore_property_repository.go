package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gimo/internal/domain/entity"
	"gimo/internal/domain/repository"
	"gimo/pkg/errors"
)

type firestorePropertyRepository struct {
	client *firestore.Client
}

func NewFirestorePropertyRepository(client *firestore.Client) repository.PropertyRepository {
	return &firestorePropertyRepository{
		client: client,
	}
}

func (r *firestorePropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	if property.ID == "" {
		doc := r.client.Collection("properties").NewDoc()
		property.ID = doc.ID
	}

	now := time.Now()
	if property.CreatedAt.IsZero() {
		property.CreatedAt = now
	}
	property.UpdatedAt = now

	_, err := r.client.Collection("properties").Doc(property.ID).Set(ctx, property)
	if err != nil {
		return errors.Unavailable("Failed to create property", err)
	}

	return nil
}

func (r *firestorePropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	doc, err := r.client.Collection("properties").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Property", err)
		}
		return nil, errors.Unavailable("Failed to get property", err)
	}

	var property entity.Property
	if err := doc.DataTo(&property); err != nil {
		return nil, errors.Internal("Failed to parse property data", err)
	}

	return &property, nil
}

func (r *firestorePropertyRepository) Update(ctx context.Context, property *entity.Property) error {
	property.UpdatedAt = time.Now()

	_, err := r.client.Collection("properties").Doc(property.ID).Set(ctx, property)
	if err != nil {
		return errors.Unavailable("Failed to update property", err)
	}

	return nil
}

func (r *firestorePropertyRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("properties").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Unavailable("Failed to delete property", err)
	}

	return nil
}

// List applies equality filters in the store and city substring plus price
// range in memory. Firestore has no substring operator and rejects range
// filters combined with a different order-by field, so the filtered set is
// materialized and sorted here, the way title search does it.
func (r *firestorePropertyRepository) List(ctx context.Context, filter repository.PropertyFilter, sortOrder string, limit, offset int) ([]*entity.Property, int64, error) {
	query := r.client.Collection("properties").Query

	if filter.Type != "" {
		query = query.Where("type", "==", filter.Type)
	}
	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}
	if filter.AgentID != "" {
		query = query.Where("agentId", "==", filter.AgentID)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Unavailable("Failed to list properties", err)
	}

	city := strings.ToLower(filter.City)
	var properties []*entity.Property
	for _, doc := range docs {
		var property entity.Property
		if err := doc.DataTo(&property); err != nil {
			return nil, 0, errors.Internal("Failed to parse property data", err)
		}
		if city != "" && !strings.Contains(strings.ToLower(property.City), city) {
			continue
		}
		if filter.MinPrice > 0 && property.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && property.Price > filter.MaxPrice {
			continue
		}
		properties = append(properties, &property)
	}

	switch sortOrder {
	case repository.PropertySortPriceAsc:
		sort.Slice(properties, func(i, j int) bool { return properties[i].Price < properties[j].Price })
	case repository.PropertySortPriceDesc:
		sort.Slice(properties, func(i, j int) bool { return properties[i].Price > properties[j].Price })
	default:
		sort.Slice(properties, func(i, j int) bool { return properties[i].CreatedAt.After(properties[j].CreatedAt) })
	}

	total := int64(len(properties))
	properties = paginate(properties, limit, offset)

	return properties, total, nil
}

func (r *firestorePropertyRepository) UpdateStatus(ctx context.Context, id string, propertyStatus string) error {
	_, err := r.client.Collection("properties").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: propertyStatus},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Property", err)
		}
		return errors.Unavailable("Failed to update property status", err)
	}

	return nil
}

func (r *firestorePropertyRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.client.Collection("properties").Doc(id).Update(ctx, []firestore.Update{
		{Path: "views", Value: firestore.Increment(1)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Property", err)
		}
		return errors.Unavailable("Failed to increment property views", err)
	}

	return nil
}

func (r *firestorePropertyRepository) DeleteByAgent(ctx context.Context, agentID string) error {
	docs, err := r.client.Collection("properties").Where("agentId", "==", agentID).Documents(ctx).GetAll()
	if err != nil {
		return errors.Unavailable("Failed to query agent properties", err)
	}

	for _, doc := range docs {
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return errors.Unavailable("Failed to delete agent property", err)
		}
	}

	return nil
}
