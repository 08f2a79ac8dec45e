package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"gimo/internal/adapter/api/middleware"
	"gimo/internal/usecase"
	"gimo/pkg/response"
	"gimo/pkg/utils"
)

type PropertyHandler struct {
	propertyUseCase *usecase.PropertyUseCase
}

func NewPropertyHandler(propertyUseCase *usecase.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{
		propertyUseCase: propertyUseCase,
	}
}

type propertyRequest struct {
	Title        string   `json:"title" validate:"required"`
	Type         string   `json:"type" validate:"required,oneof=buy sell rent"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	Currency     string   `json:"currency"`
	Description  string   `json:"description" validate:"required"`
	City         string   `json:"city" validate:"required"`
	Neighborhood string   `json:"neighborhood"`
	Address      string   `json:"address"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	SellerName   string   `json:"seller_name" validate:"required"`
	SellerPhone  string   `json:"seller_phone" validate:"required"`
	SellerEmail  string   `json:"seller_email" validate:"omitempty,email"`
	Images       []string `json:"images"`
	VideoURL     string   `json:"video_url"`
	Status       string   `json:"status" validate:"omitempty,oneof=available reserved sold rented"`
}

func (r propertyRequest) toInput() usecase.PropertyInput {
	return usecase.PropertyInput{
		Title:        r.Title,
		Type:         r.Type,
		Price:        r.Price,
		Currency:     r.Currency,
		Description:  r.Description,
		City:         r.City,
		Neighborhood: r.Neighborhood,
		Address:      r.Address,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		SellerName:   r.SellerName,
		SellerPhone:  r.SellerPhone,
		SellerEmail:  r.SellerEmail,
		Images:       r.Images,
		VideoURL:     r.VideoURL,
		Status:       r.Status,
	}
}

func (h *PropertyHandler) ListProperties(c echo.Context) error {
	p := utils.GetPaginationParams(c)

	minPrice, _ := strconv.ParseFloat(c.QueryParam("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(c.QueryParam("max_price"), 64)

	properties, total, err := h.propertyUseCase.List(c.Request().Context(), usecase.PropertyListInput{
		Type:     c.QueryParam("type"),
		City:     c.QueryParam("city"),
		Status:   c.QueryParam("status"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Sort:     c.QueryParam("sort"),
	}, p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, properties, total, p.Page, p.PageSize)
}

func (h *PropertyHandler) GetProperty(c echo.Context) error {
	property, err := h.propertyUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

func (h *PropertyHandler) IncrementViews(c echo.Context) error {
	if err := h.propertyUseCase.IncrementViews(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"ok": true})
}

func (h *PropertyHandler) ListMyProperties(c echo.Context) error {
	properties, err := h.propertyUseCase.ListByAgent(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, properties)
}

func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	property, err := h.propertyUseCase.Create(c.Request().Context(), middleware.CurrentUser(c), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, property)
}

func (h *PropertyHandler) UpdateProperty(c echo.Context) error {
	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	property, err := h.propertyUseCase.Update(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	if err := h.propertyUseCase.Delete(c.Request().Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"ok": true})
}
