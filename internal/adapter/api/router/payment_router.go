package router

import (
	"gimo/internal/adapter/api/handler"
	"gimo/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPaymentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	paymentHandler := handler.GetPaymentHandler()

	// Buyer routes
	payments := e.Group("/v1/payments")
	payments.Use(authMiddleware.Authenticate)
	payments.POST("", paymentHandler.CreatePayment)
	payments.GET("/my", paymentHandler.ListMyPayments)

	// Back-office transitions
	staff := e.Group("/v1/payments")
	staff.Use(authMiddleware.Authenticate)
	staff.Use(roleMiddleware.RequireAuthor)
	staff.GET("", paymentHandler.ListPayments)
	staff.PUT("/:id/status", paymentHandler.UpdatePaymentStatus)
	staff.DELETE("/:id", paymentHandler.DeletePayment, roleMiddleware.RequireAdmin)
}
