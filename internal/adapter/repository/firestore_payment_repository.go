package repository

import (
	"context"
	goerrors "errors"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gimo/internal/domain/entity"
	"gimo/internal/domain/repository"
	"gimo/pkg/errors"
)

type firestorePaymentRepository struct {
	client *firestore.Client
}

func NewFirestorePaymentRepository(client *firestore.Client) repository.PaymentRepository {
	return &firestorePaymentRepository{
		client: client,
	}
}

// CreateReserving runs the reservation step as one Firestore transaction:
// re-read the property, require it to still be available, then write the
// pending payment and flip the property to reserved. A crash mid-request can
// not leave a pending payment against an available property.
func (r *firestorePaymentRepository) CreateReserving(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == "" {
		doc := r.client.Collection("payments").NewDoc()
		payment.ID = doc.ID
	}

	now := time.Now()
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = now
	}
	payment.UpdatedAt = now

	propertyRef := r.client.Collection("properties").Doc(payment.PropertyID)
	paymentRef := r.client.Collection("payments").Doc(payment.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(propertyRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Property", err)
			}
			return err
		}

		var property entity.Property
		if err := doc.DataTo(&property); err != nil {
			return err
		}

		if property.Status != entity.PropertyStatusAvailable {
			return errors.Conflict("Property is no longer available")
		}

		if err := tx.Set(paymentRef, payment); err != nil {
			return err
		}
		return tx.Update(propertyRef, []firestore.Update{
			{Path: "status", Value: entity.PropertyStatusReserved},
			{Path: "updatedAt", Value: now},
		})
	})
	if err != nil {
		var appErr *errors.AppError
		if goerrors.As(err, &appErr) {
			return appErr
		}
		return errors.Unavailable("Failed to create payment", err)
	}

	return nil
}

func (r *firestorePaymentRepository) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	doc, err := r.client.Collection("payments").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Payment", err)
		}
		return nil, errors.Unavailable("Failed to get payment", err)
	}

	var payment entity.Payment
	if err := doc.DataTo(&payment); err != nil {
		return nil, errors.Internal("Failed to parse payment data", err)
	}

	return &payment, nil
}

func (r *firestorePaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	payment.UpdatedAt = time.Now()

	_, err := r.client.Collection("payments").Doc(payment.ID).Set(ctx, payment)
	if err != nil {
		return errors.Unavailable("Failed to update payment", err)
	}

	return nil
}

func (r *firestorePaymentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("payments").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Unavailable("Failed to delete payment", err)
	}

	return nil
}

func (r *firestorePaymentRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Payment, error) {
	docs, err := r.client.Collection("payments").Where("buyerId", "==", buyerID).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Unavailable("Failed to list buyer payments", err)
	}

	var payments []*entity.Payment
	for _, doc := range docs {
		var payment entity.Payment
		if err := doc.DataTo(&payment); err != nil {
			return nil, errors.Internal("Failed to parse payment data", err)
		}
		payments = append(payments, &payment)
	}

	sort.Slice(payments, func(i, j int) bool { return payments[i].CreatedAt.After(payments[j].CreatedAt) })

	return payments, nil
}

func (r *firestorePaymentRepository) List(ctx context.Context, filter repository.PaymentFilter, limit, offset int) ([]*entity.Payment, int64, error) {
	query := r.client.Collection("payments").Query

	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Unavailable("Failed to list payments", err)
	}

	var payments []*entity.Payment
	for _, doc := range docs {
		var payment entity.Payment
		if err := doc.DataTo(&payment); err != nil {
			return nil, 0, errors.Internal("Failed to parse payment data", err)
		}
		payments = append(payments, &payment)
	}

	total := int64(len(payments))
	payments = paginate(payments, limit, offset)

	return payments, total, nil
}
