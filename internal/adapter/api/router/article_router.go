package router

import (
	"gimo/internal/adapter/api/handler"
	"gimo/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupArticleRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	articleHandler := handler.GetArticleHandler()

	// Public routes
	e.GET("/v1/categories", articleHandler.ListCategories)

	articles := e.Group("/v1/articles")
	articles.GET("", articleHandler.ListArticles)
	articles.GET("/:id", articleHandler.GetArticle)
	articles.POST("/:id/view", articleHandler.IncrementViews)

	// Saved articles, any authenticated user
	bookmarks := e.Group("/v1/articles")
	bookmarks.Use(authMiddleware.Authenticate)
	bookmarks.POST("/:id/save", articleHandler.SaveArticle)
	bookmarks.DELETE("/:id/save", articleHandler.UnsaveArticle)

	saved := e.Group("/v1/saved-articles")
	saved.Use(authMiddleware.Authenticate)
	saved.GET("", articleHandler.ListSavedArticles)

	// Authoring routes
	myArticles := e.Group("/v1/my-articles")
	myArticles.Use(authMiddleware.Authenticate)
	myArticles.Use(roleMiddleware.RequireAuthor)
	myArticles.GET("", articleHandler.ListMyArticles)
	myArticles.POST("", articleHandler.CreateArticle)
	myArticles.PUT("/:id", articleHandler.UpdateArticle)
	myArticles.DELETE("/:id", articleHandler.DeleteArticle)
}
