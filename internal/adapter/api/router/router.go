package router

import (
	"gimo/internal/adapter/api/middleware"
	"gimo/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware, loginLimiter *ratelimit.RateLimiter) {
	SetupAuthRouter(e, authMiddleware, loginLimiter)
	SetupArticleRouter(e, authMiddleware, roleMiddleware)
	SetupPropertyRouter(e, authMiddleware, roleMiddleware)
	SetupPaymentRouter(e, authMiddleware, roleMiddleware)
	SetupAdminRouter(e, authMiddleware, roleMiddleware)
	SetupHealthRouter(e)
}
