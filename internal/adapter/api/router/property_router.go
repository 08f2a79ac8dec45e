package router

import (
	"gimo/internal/adapter/api/handler"
	"gimo/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPropertyRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	propertyHandler := handler.GetPropertyHandler()

	// Public routes
	properties := e.Group("/v1/properties")
	properties.GET("", propertyHandler.ListProperties)
	properties.GET("/:id", propertyHandler.GetProperty)
	properties.POST("/:id/view", propertyHandler.IncrementViews)

	// Listing management routes
	myProperties := e.Group("/v1/my-properties")
	myProperties.Use(authMiddleware.Authenticate)
	myProperties.Use(roleMiddleware.RequireAgent)
	myProperties.GET("", propertyHandler.ListMyProperties)
	myProperties.POST("", propertyHandler.CreateProperty)
	myProperties.PUT("/:id", propertyHandler.UpdateProperty)
	myProperties.DELETE("/:id", propertyHandler.DeleteProperty)
}
