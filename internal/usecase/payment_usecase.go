package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gimo/internal/domain/entity"
	"gimo/internal/domain/repository"
	"gimo/internal/domain/service"
	"gimo/pkg/errors"
	"gimo/pkg/logger"
)

type PaymentUseCase struct {
	paymentRepo  repository.PaymentRepository
	propertyRepo repository.PropertyRepository
}

func NewPaymentUseCase(paymentRepo repository.PaymentRepository, propertyRepo repository.PropertyRepository) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo:  paymentRepo,
		propertyRepo: propertyRepo,
	}
}

type CreatePaymentInput struct {
	PropertyID string
	Amount     float64
	Currency   string
	Method     string
	Phone      string
}

// Create opens a reservation: a pending payment is written and the property
// moves available -> reserved as one unit. The availability check is
// re-run inside the store transaction, so two concurrent buyers cannot both
// reserve the same listing.
func (uc *PaymentUseCase) Create(ctx context.Context, actor *entity.User, input CreatePaymentInput) (*entity.Payment, error) {
	if input.Amount <= 0 {
		return nil, errors.Validation("Amount must be greater than zero", nil)
	}
	if !entity.ValidPaymentMethod(input.Method) {
		return nil, errors.Validation("Invalid payment method", nil)
	}
	if entity.MethodRequiresPhone(input.Method) && input.Phone == "" {
		return nil, errors.Validation("Phone number is required for this payment method", nil)
	}

	property, err := uc.propertyRepo.GetByID(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}
	if property.Status != entity.PropertyStatusAvailable {
		return nil, errors.Conflict("Property is no longer available")
	}

	now := time.Now()
	payment := &entity.Payment{
		ID:            uuid.NewString(),
		Reference:     service.NewPaymentReference(),
		PropertyID:    property.ID,
		PropertyTitle: property.Title,
		BuyerID:       actor.ID,
		BuyerEmail:    actor.Email,
		Amount:        input.Amount,
		Currency:      input.Currency,
		Method:        input.Method,
		Phone:         input.Phone,
		Status:        entity.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.paymentRepo.CreateReserving(ctx, payment); err != nil {
		return nil, err
	}

	logger.Info("Payment %s created for property %s by %s", payment.Reference, property.ID, actor.ID)

	return payment, nil
}

// UpdateStatus applies a back-office transition. Only confirmed and
// cancelled are accepted as targets; repeating a transition re-applies its
// property side effect. Property updates here are deliberately
// last-write-wins: cancellation resets to available no matter what happened
// to the listing in the interim.
func (uc *PaymentUseCase) UpdateStatus(ctx context.Context, id string, target string) (*entity.Payment, error) {
	if target != entity.PaymentStatusConfirmed && target != entity.PaymentStatusCancelled {
		return nil, errors.Validation("Invalid payment status", nil)
	}

	payment, err := uc.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payment.Status = target
	if err := uc.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	switch target {
	case entity.PaymentStatusCancelled:
		if err := uc.propertyRepo.UpdateStatus(ctx, payment.PropertyID, entity.PropertyStatusAvailable); err != nil {
			logger.LogWorkflowError(payment.ID, "cancel-release", err)
		}
	case entity.PaymentStatusConfirmed:
		property, err := uc.propertyRepo.GetByID(ctx, payment.PropertyID)
		if err != nil {
			logger.LogWorkflowError(payment.ID, "confirm-lookup", err)
			break
		}
		status := entity.PropertyStatusSold
		if property.Type == entity.PropertyTypeRent {
			status = entity.PropertyStatusRented
		}
		if err := uc.propertyRepo.UpdateStatus(ctx, property.ID, status); err != nil {
			logger.LogWorkflowError(payment.ID, "confirm-close", err)
		}
	}

	return payment, nil
}

// Delete removes a payment. A still-pending payment releases its
// reservation; the referenced property is not re-validated, so a missing
// property is ignored.
func (uc *PaymentUseCase) Delete(ctx context.Context, id string) error {
	payment, err := uc.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}

	if payment.Status == entity.PaymentStatusPending {
		if err := uc.propertyRepo.UpdateStatus(ctx, payment.PropertyID, entity.PropertyStatusAvailable); err != nil && !errors.Is(err, "NOT_FOUND") {
			logger.LogWorkflowError(payment.ID, "delete-release", err)
		}
	}

	return nil
}

func (uc *PaymentUseCase) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Payment, error) {
	return uc.paymentRepo.ListByBuyer(ctx, buyerID)
}

func (uc *PaymentUseCase) List(ctx context.Context, status string, limit, offset int) ([]*entity.Payment, int64, error) {
	if status != "" && status != entity.PaymentStatusPending &&
		status != entity.PaymentStatusConfirmed && status != entity.PaymentStatusCancelled {
		return nil, 0, errors.Validation("Invalid payment status", nil)
	}
	return uc.paymentRepo.List(ctx, repository.PaymentFilter{Status: status}, limit, offset)
}

func (uc *PaymentUseCase) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	return uc.paymentRepo.GetByID(ctx, id)
}
