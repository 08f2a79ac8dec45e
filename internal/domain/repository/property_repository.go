package repository

import (
	"context"

	"gimo/internal/domain/entity"
)

// PropertyFilter narrows public and admin property listings. City matches as
// a case-insensitive substring. Status is an exact match; an empty value
// means no status restriction (the usecase supplies the default).
type PropertyFilter struct {
	Type     string
	City     string
	Status   string
	MinPrice float64
	MaxPrice float64
	AgentID  string
}

const (
	PropertySortCreatedDesc = "created_desc"
	PropertySortPriceAsc    = "price_asc"
	PropertySortPriceDesc   = "price_desc"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	Update(ctx context.Context, property *entity.Property) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter PropertyFilter, sort string, limit, offset int) ([]*entity.Property, int64, error)

	// UpdateStatus overwrites the status field only. No state-machine edge is
	// enforced here; callers own the transition legality.
	UpdateStatus(ctx context.Context, id string, status string) error

	// IncrementViews is an atomic single-document increment.
	IncrementViews(ctx context.Context, id string) error

	// DeleteByAgent removes every property owned by the agent. Used by the
	// admin cascade delete.
	DeleteByAgent(ctx context.Context, agentID string) error
}
