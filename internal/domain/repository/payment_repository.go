package repository

import (
	"context"

	"gimo/internal/domain/entity"
)

type PaymentFilter struct {
	Status string
}

type PaymentRepository interface {
	// CreateReserving persists the payment and moves the referenced property
	// from available to reserved as a single transactional unit. It fails
	// with NotFound when the property is missing and with Conflict when the
	// property is not currently available.
	CreateReserving(ctx context.Context, payment *entity.Payment) error

	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
	Delete(ctx context.Context, id string) error
	ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Payment, error)
	List(ctx context.Context, filter PaymentFilter, limit, offset int) ([]*entity.Payment, int64, error)
}
