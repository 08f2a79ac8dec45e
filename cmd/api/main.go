package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"gimo/internal/adapter/api"
	"gimo/internal/adapter/api/handler"
	apimiddleware "gimo/internal/adapter/api/middleware"
	"gimo/internal/adapter/api/router"
	"gimo/internal/adapter/repository"
	"gimo/internal/infrastructure/auth"
	"gimo/internal/infrastructure/ratelimit"
	"gimo/internal/usecase"
	"gimo/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		log.Printf("Using Firestore credentials from file: %s", cfg.CredentialsFile)
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirestoreProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	articleRepo := repository.NewFirestoreArticleRepository(firestoreClient)
	propertyRepo := repository.NewFirestorePropertyRepository(firestoreClient)
	paymentRepo := repository.NewFirestorePaymentRepository(firestoreClient)
	savedArticleRepo := repository.NewFirestoreSavedArticleRepository(firestoreClient)

	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	loginLimiter := ratelimit.NewRateLimiter()
	loginLimiter.StartCleanupRoutine()

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenManager, cfg.BcryptCost)
	articleUseCase := usecase.NewArticleUseCase(articleRepo, savedArticleRepo)
	propertyUseCase := usecase.NewPropertyUseCase(propertyRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, propertyRepo)
	adminUseCase := usecase.NewAdminUseCase(userRepo, articleRepo, propertyRepo, paymentRepo, savedArticleRepo)

	handler.Setup(authUseCase, articleUseCase, propertyUseCase, paymentUseCase, adminUseCase)
	handler.SetupHealthHandler(firestoreClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenManager, userRepo)
	roleMiddleware := apimiddleware.NewRoleMiddleware()

	router.Setup(e, authMiddleware, roleMiddleware, loginLimiter)

	go func() {
		log.Printf("Starting server on port %s (environment: %s)", cfg.ServerPort, cfg.Environment)
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
}
