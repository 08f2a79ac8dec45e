package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"gimo/internal/domain/entity"
	"gimo/internal/domain/repository"
	"gimo/pkg/errors"
	"gimo/pkg/logger"
)

type AdminUseCase struct {
	userRepo     repository.UserRepository
	articleRepo  repository.ArticleRepository
	propertyRepo repository.PropertyRepository
	paymentRepo  repository.PaymentRepository
	savedRepo    repository.SavedArticleRepository
}

func NewAdminUseCase(
	userRepo repository.UserRepository,
	articleRepo repository.ArticleRepository,
	propertyRepo repository.PropertyRepository,
	paymentRepo repository.PaymentRepository,
	savedRepo repository.SavedArticleRepository,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:     userRepo,
		articleRepo:  articleRepo,
		propertyRepo: propertyRepo,
		paymentRepo:  paymentRepo,
		savedRepo:    savedRepo,
	}
}

type Stats struct {
	Users           int64 `json:"users"`
	Articles        int64 `json:"articles"`
	Properties      int64 `json:"properties"`
	Payments        int64 `json:"payments"`
	PendingPayments int64 `json:"pending_payments"`
	TotalViews      int64 `json:"total_views"`
}

func (uc *AdminUseCase) GetStats(ctx context.Context) (*Stats, error) {
	_, users, err := uc.userRepo.List(ctx, repository.UserFilter{}, 0, 0)
	if err != nil {
		return nil, err
	}
	articles, articleTotal, err := uc.articleRepo.List(ctx, repository.ArticleFilter{}, 0, 0)
	if err != nil {
		return nil, err
	}
	properties, propertyTotal, err := uc.propertyRepo.List(ctx, repository.PropertyFilter{}, "", 0, 0)
	if err != nil {
		return nil, err
	}
	_, payments, err := uc.paymentRepo.List(ctx, repository.PaymentFilter{}, 0, 0)
	if err != nil {
		return nil, err
	}
	_, pending, err := uc.paymentRepo.List(ctx, repository.PaymentFilter{Status: entity.PaymentStatusPending}, 0, 0)
	if err != nil {
		return nil, err
	}

	var views int64
	for _, a := range articles {
		views += int64(a.Views)
	}
	for _, p := range properties {
		views += int64(p.Views)
	}

	return &Stats{
		Users:           users,
		Articles:        articleTotal,
		Properties:      propertyTotal,
		Payments:        payments,
		PendingPayments: pending,
		TotalViews:      views,
	}, nil
}

func (uc *AdminUseCase) ListUsers(ctx context.Context, filter repository.UserFilter, limit, offset int) ([]*entity.User, int64, error) {
	if filter.Role != "" && !entity.ValidRole(filter.Role) {
		return nil, 0, errors.Validation("Invalid role", nil)
	}
	if filter.Status != "" && !entity.ValidUserStatus(filter.Status) {
		return nil, 0, errors.Validation("Invalid status", nil)
	}
	return uc.userRepo.List(ctx, filter, limit, offset)
}

// UpdateUserStatus toggles active/suspended. An admin can never change
// their own status, so they cannot lock themselves out.
func (uc *AdminUseCase) UpdateUserStatus(ctx context.Context, actor *entity.User, targetID, status string) (*entity.User, error) {
	if targetID == actor.ID {
		return nil, errors.Conflict("Cannot modify your own status")
	}
	if !entity.ValidUserStatus(status) {
		return nil, errors.Validation("Invalid status", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	user.Status = status
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateUserRole reassigns a role from the fixed four-role enum. An admin
// can never reassign their own role, so they cannot self-demote.
func (uc *AdminUseCase) UpdateUserRole(ctx context.Context, actor *entity.User, targetID, role string) (*entity.User, error) {
	if targetID == actor.ID {
		return nil, errors.Conflict("Cannot modify your own role")
	}
	if !entity.ValidRole(role) {
		return nil, errors.Validation("Invalid role", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes the user and cascades over owned resources in order:
// articles, properties, saved-article links, payments. The cascade is a
// best-effort batch; a failing step is logged and the rest still runs. A
// deleted pending payment releases the reservation on its property when
// that property still exists.
func (uc *AdminUseCase) DeleteUser(ctx context.Context, actor *entity.User, targetID string) error {
	if targetID == actor.ID {
		return errors.Conflict("Cannot delete your own account")
	}

	if _, err := uc.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}

	if err := uc.articleRepo.DeleteByAuthor(ctx, targetID); err != nil {
		logger.Warn("Cascade delete: articles for user %s: %v", targetID, err)
	}
	if err := uc.propertyRepo.DeleteByAgent(ctx, targetID); err != nil {
		logger.Warn("Cascade delete: properties for user %s: %v", targetID, err)
	}
	if err := uc.savedRepo.DeleteByUser(ctx, targetID); err != nil {
		logger.Warn("Cascade delete: saved articles for user %s: %v", targetID, err)
	}

	payments, err := uc.paymentRepo.ListByBuyer(ctx, targetID)
	if err != nil {
		logger.Warn("Cascade delete: payments lookup for user %s: %v", targetID, err)
	}
	for _, payment := range payments {
		if payment.Status == entity.PaymentStatusPending {
			if err := uc.propertyRepo.UpdateStatus(ctx, payment.PropertyID, entity.PropertyStatusAvailable); err != nil && !errors.Is(err, "NOT_FOUND") {
				logger.Warn("Cascade delete: release property %s: %v", payment.PropertyID, err)
			}
		}
		if err := uc.paymentRepo.Delete(ctx, payment.ID); err != nil {
			logger.Warn("Cascade delete: payment %s: %v", payment.ID, err)
		}
	}

	return uc.userRepo.Delete(ctx, targetID)
}

func (uc *AdminUseCase) ListArticles(ctx context.Context, category string, limit, offset int) ([]*entity.Article, int64, error) {
	return uc.articleRepo.List(ctx, repository.ArticleFilter{Category: category}, limit, offset)
}

func (uc *AdminUseCase) ListProperties(ctx context.Context, status string, limit, offset int) ([]*entity.Property, int64, error) {
	if status != "" && !entity.ValidPropertyStatus(status) {
		return nil, 0, errors.Validation("Invalid property status", nil)
	}
	return uc.propertyRepo.List(ctx, repository.PropertyFilter{Status: status}, "", limit, offset)
}

func (uc *AdminUseCase) ListPayments(ctx context.Context, status string, limit, offset int) ([]*entity.Payment, int64, error) {
	return uc.paymentRepo.List(ctx, repository.PaymentFilter{Status: status}, limit, offset)
}

// ExportCSV renders a full collection as CSV with a header row. Supported
// resources: users, articles, properties, payments.
func (uc *AdminUseCase) ExportCSV(ctx context.Context, resource string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	switch resource {
	case "users":
		w.Write([]string{"id", "username", "email", "role", "status", "created_at"})
		users, _, err := uc.userRepo.List(ctx, repository.UserFilter{}, 0, 0)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			w.Write([]string{u.ID, u.Username, u.Email, u.Role, u.Status, u.CreatedAt.Format(time.RFC3339)})
		}
	case "articles":
		w.Write([]string{"id", "title", "category", "author_id", "author_username", "views", "created_at"})
		articles, _, err := uc.articleRepo.List(ctx, repository.ArticleFilter{}, 0, 0)
		if err != nil {
			return nil, err
		}
		for _, a := range articles {
			w.Write([]string{a.ID, a.Title, a.Category, a.AuthorID, a.AuthorUsername, strconv.Itoa(a.Views), a.CreatedAt.Format(time.RFC3339)})
		}
	case "properties":
		w.Write([]string{"id", "title", "type", "price", "currency", "city", "status", "agent_id", "views", "created_at"})
		properties, _, err := uc.propertyRepo.List(ctx, repository.PropertyFilter{}, "", 0, 0)
		if err != nil {
			return nil, err
		}
		for _, p := range properties {
			w.Write([]string{p.ID, p.Title, p.Type, strconv.FormatFloat(p.Price, 'f', -1, 64), p.Currency, p.City, p.Status, p.AgentID, strconv.Itoa(p.Views), p.CreatedAt.Format(time.RFC3339)})
		}
	case "payments":
		w.Write([]string{"id", "reference", "property_id", "buyer_id", "buyer_email", "amount", "currency", "method", "status", "created_at"})
		payments, _, err := uc.paymentRepo.List(ctx, repository.PaymentFilter{}, 0, 0)
		if err != nil {
			return nil, err
		}
		for _, p := range payments {
			w.Write([]string{p.ID, p.Reference, p.PropertyID, p.BuyerID, p.BuyerEmail, strconv.FormatFloat(p.Amount, 'f', -1, 64), p.Currency, p.Method, p.Status, p.CreatedAt.Format(time.RFC3339)})
		}
	default:
		return nil, errors.Validation("Unknown export resource", nil)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Internal("Failed to write CSV", err)
	}

	return buf.Bytes(), nil
}
