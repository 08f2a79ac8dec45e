package router

import (
	"gimo/internal/adapter/api/handler"
	"gimo/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.RequireAdmin)

	admin.GET("/stats", adminHandler.GetStats)

	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/status", adminHandler.UpdateUserStatus)
	admin.PUT("/users/:id/role", adminHandler.UpdateUserRole)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)

	admin.GET("/articles", adminHandler.ListArticles)
	admin.GET("/properties", adminHandler.ListProperties)
	admin.PUT("/properties/:id/status", adminHandler.OverridePropertyStatus)
	admin.GET("/payments", adminHandler.ListPayments)

	admin.GET("/export/:resource", adminHandler.ExportCSV)
}
