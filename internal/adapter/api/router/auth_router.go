package router

import (
	"gimo/internal/adapter/api/handler"
	"gimo/internal/adapter/api/middleware"
	"gimo/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, loginLimiter *ratelimit.RateLimiter) {
	authHandler := handler.GetAuthHandler()

	// Public routes
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login, middleware.LimitLogin(loginLimiter))

	// Protected routes
	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/me", authHandler.Me)
	protected.PUT("/profile", authHandler.UpdateProfile)
	protected.PUT("/password", authHandler.ChangePassword)
}
