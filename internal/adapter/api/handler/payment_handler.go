package handler

import (
	"github.com/labstack/echo/v4"

	"gimo/internal/adapter/api/middleware"
	"gimo/internal/usecase"
	"gimo/pkg/response"
	"gimo/pkg/utils"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

type createPaymentRequest struct {
	PropertyID string  `json:"property_id" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Currency   string  `json:"currency"`
	Method     string  `json:"method" validate:"required,oneof=orange_money mobile_money paycard bank_card"`
	Phone      string  `json:"phone"`
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	payment, err := h.paymentUseCase.Create(c.Request().Context(), middleware.CurrentUser(c), usecase.CreatePaymentInput{
		PropertyID: req.PropertyID,
		Amount:     req.Amount,
		Currency:   req.Currency,
		Method:     req.Method,
		Phone:      req.Phone,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, payment)
}

func (h *PaymentHandler) ListMyPayments(c echo.Context) error {
	payments, err := h.paymentUseCase.ListByBuyer(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, payments)
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	p := utils.GetPaginationParams(c)

	payments, total, err := h.paymentUseCase.List(c.Request().Context(), c.QueryParam("status"), p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, payments, total, p.Page, p.PageSize)
}

type paymentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *PaymentHandler) UpdatePaymentStatus(c echo.Context) error {
	var req paymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	payment, err := h.paymentUseCase.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, payment)
}

func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	if err := h.paymentUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"ok": true})
}
