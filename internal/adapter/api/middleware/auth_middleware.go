package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"gimo/internal/domain/entity"
	"gimo/internal/domain/repository"
	"gimo/internal/usecase"
	"gimo/pkg/errors"
	"gimo/pkg/response"
)

// AuthMiddleware is the authentication gate: it verifies the bearer
// credential and resolves it to a fresh user record on every request, since
// role or status may have changed after the token was issued.
//
// The gate does not check status == active; a suspended user's credential
// still authenticates.
type AuthMiddleware struct {
	tokens   usecase.TokenIssuer
	userRepo repository.UserRepository
}

func NewAuthMiddleware(tokens usecase.TokenIssuer, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.Unauthenticated("Authorization header is required", nil))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Error(c, errors.Unauthenticated("Invalid authorization format", nil))
		}

		userID, err := m.tokens.Verify(parts[1])
		if err != nil {
			return response.Error(c, errors.Unauthenticated("Invalid or expired token", err))
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				return response.Error(c, errors.SessionInvalid("Session expired", err))
			}
			return response.Error(c, err)
		}

		c.Set("user", user)
		c.Set("uid", user.ID)

		return next(c)
	}
}

// CurrentUser pulls the authenticated user a handler behind Authenticate can
// rely on.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get("user").(*entity.User)
	return user
}
