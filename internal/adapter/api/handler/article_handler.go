package handler

import (
	"github.com/labstack/echo/v4"

	"gimo/internal/adapter/api/middleware"
	"gimo/internal/domain/entity"
	"gimo/internal/usecase"
	"gimo/pkg/response"
	"gimo/pkg/utils"
)

type ArticleHandler struct {
	articleUseCase *usecase.ArticleUseCase
}

func NewArticleHandler(articleUseCase *usecase.ArticleUseCase) *ArticleHandler {
	return &ArticleHandler{
		articleUseCase: articleUseCase,
	}
}

type articleRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

func (h *ArticleHandler) ListCategories(c echo.Context) error {
	return response.Success(c, map[string]interface{}{"categories": entity.Categories})
}

func (h *ArticleHandler) ListArticles(c echo.Context) error {
	p := utils.GetPaginationParams(c)

	articles, total, err := h.articleUseCase.List(c.Request().Context(), c.QueryParam("category"), p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, articles, total, p.Page, p.PageSize)
}

func (h *ArticleHandler) GetArticle(c echo.Context) error {
	article, err := h.articleUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, article)
}

func (h *ArticleHandler) IncrementViews(c echo.Context) error {
	if err := h.articleUseCase.IncrementViews(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"ok": true})
}

func (h *ArticleHandler) ListMyArticles(c echo.Context) error {
	articles, err := h.articleUseCase.ListByAuthor(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, articles)
}

func (h *ArticleHandler) CreateArticle(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	article, err := h.articleUseCase.Create(c.Request().Context(), middleware.CurrentUser(c), usecase.ArticleInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, article)
}

func (h *ArticleHandler) UpdateArticle(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	article, err := h.articleUseCase.Update(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), usecase.ArticleInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, article)
}

func (h *ArticleHandler) DeleteArticle(c echo.Context) error {
	if err := h.articleUseCase.Delete(c.Request().Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"ok": true})
}

func (h *ArticleHandler) SaveArticle(c echo.Context) error {
	if err := h.articleUseCase.SaveArticle(c.Request().Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"ok": true})
}

func (h *ArticleHandler) UnsaveArticle(c echo.Context) error {
	if err := h.articleUseCase.UnsaveArticle(c.Request().Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"ok": true})
}

func (h *ArticleHandler) ListSavedArticles(c echo.Context) error {
	articles, err := h.articleUseCase.ListSaved(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, articles)
}
