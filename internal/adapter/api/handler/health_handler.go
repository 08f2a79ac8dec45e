package handler

import (
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"google.golang.org/api/iterator"
)

type HealthHandler struct {
	client *firestore.Client
}

var healthHandler *HealthHandler

func NewHealthHandler(client *firestore.Client) *HealthHandler {
	return &HealthHandler{
		client: client,
	}
}

func SetupHealthHandler(client *firestore.Client) {
	healthHandler = NewHealthHandler(client)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *HealthHandler) CheckFirestoreHealth(c echo.Context) error {
	iter := h.client.Collections(c.Request().Context())
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status": "Firestore connection failed",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Firestore connected successfully",
	})
}
