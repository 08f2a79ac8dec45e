package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gimo/internal/adapter/api/middleware"
	"gimo/internal/domain/repository"
	"gimo/internal/usecase"
	"gimo/pkg/response"
	"gimo/pkg/utils"
)

type AdminHandler struct {
	adminUseCase    *usecase.AdminUseCase
	propertyUseCase *usecase.PropertyUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase, propertyUseCase *usecase.PropertyUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase:    adminUseCase,
		propertyUseCase: propertyUseCase,
	}
}

func (h *AdminHandler) GetStats(c echo.Context) error {
	stats, err := h.adminUseCase.GetStats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	p := utils.GetPaginationParams(c)

	users, total, err := h.adminUseCase.ListUsers(c.Request().Context(), repository.UserFilter{
		Role:   c.QueryParam("role"),
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
	}, p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, users, total, p.Page, p.PageSize)
}

type userStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *AdminHandler) UpdateUserStatus(c echo.Context) error {
	var req userStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.adminUseCase.UpdateUserStatus(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type userRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	var req userRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.adminUseCase.UpdateUserRole(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), req.Role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.adminUseCase.DeleteUser(c.Request().Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"ok": true})
}

func (h *AdminHandler) ListArticles(c echo.Context) error {
	p := utils.GetPaginationParams(c)

	articles, total, err := h.adminUseCase.ListArticles(c.Request().Context(), c.QueryParam("category"), p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, articles, total, p.Page, p.PageSize)
}

func (h *AdminHandler) ListProperties(c echo.Context) error {
	p := utils.GetPaginationParams(c)

	properties, total, err := h.adminUseCase.ListProperties(c.Request().Context(), c.QueryParam("status"), p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, properties, total, p.Page, p.PageSize)
}

type propertyStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *AdminHandler) OverridePropertyStatus(c echo.Context) error {
	var req propertyStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.propertyUseCase.OverrideStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"ok": true})
}

func (h *AdminHandler) ListPayments(c echo.Context) error {
	p := utils.GetPaginationParams(c)

	payments, total, err := h.adminUseCase.ListPayments(c.Request().Context(), c.QueryParam("status"), p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, payments, total, p.Page, p.PageSize)
}

func (h *AdminHandler) ExportCSV(c echo.Context) error {
	resource := c.Param("resource")

	data, err := h.adminUseCase.ExportCSV(c.Request().Context(), resource)
	if err != nil {
		return response.Error(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+resource+`.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}
