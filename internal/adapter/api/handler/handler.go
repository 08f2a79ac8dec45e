package handler

import (
	"gimo/internal/usecase"
)

var (
	authHandler     *AuthHandler
	articleHandler  *ArticleHandler
	propertyHandler *PropertyHandler
	paymentHandler  *PaymentHandler
	adminHandler    *AdminHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	articleUseCase *usecase.ArticleUseCase,
	propertyUseCase *usecase.PropertyUseCase,
	paymentUseCase *usecase.PaymentUseCase,
	adminUseCase *usecase.AdminUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	articleHandler = NewArticleHandler(articleUseCase)
	propertyHandler = NewPropertyHandler(propertyUseCase)
	paymentHandler = NewPaymentHandler(paymentUseCase)
	adminHandler = NewAdminHandler(adminUseCase, propertyUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetArticleHandler() *ArticleHandler {
	return articleHandler
}

func GetPropertyHandler() *PropertyHandler {
	return propertyHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}
