package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gimo/internal/adapter/api/handler"
	"gimo/internal/adapter/api/middleware"
	"gimo/internal/adapter/api/router"
	"gimo/internal/domain/entity"
	"gimo/internal/domain/repository"
	"gimo/internal/infrastructure/auth"
	"gimo/pkg/errors"
)

type singleUserRepo struct {
	user *entity.User
}

func (r singleUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (r singleUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, errors.NotFound("User", nil)
}

func (r singleUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, errors.NotFound("User", nil)
}

func (r singleUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return nil, errors.NotFound("User", nil)
}

func (r singleUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

func (r singleUserRepo) Delete(ctx context.Context, id string) error { return nil }

func (r singleUserRepo) List(ctx context.Context, filter repository.UserFilter, limit, offset int) ([]*entity.User, int64, error) {
	return nil, 0, nil
}

func TestHealthEndpoint(t *testing.T) {
	e := echo.New()
	handler.SetupHealthHandler(nil)
	router.SetupHealthRouter(e)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Server is running")
}

func newProtectedAPI(user *entity.User) (*echo.Echo, *auth.TokenManager) {
	e := echo.New()
	tokens := auth.NewTokenManager("test-secret", 3600)
	authMiddleware := middleware.NewAuthMiddleware(tokens, singleUserRepo{user: user})

	me := e.Group("/v1/auth")
	me.Use(authMiddleware.Authenticate)
	me.GET("/me", handler.NewAuthHandler(nil).Me)

	return e, tokens
}

func TestProtectedRouteRejectsAnonymous(t *testing.T) {
	e, _ := newProtectedAPI(nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestProtectedRouteResolvesBearerToken(t *testing.T) {
	user := &entity.User{ID: "u1", Username: "fatou", Role: entity.RoleAuthor, Status: entity.UserStatusActive}
	e, tokens := newProtectedAPI(user)

	token, err := tokens.Issue(user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"fatou"`)
}

func TestProtectedRouteRejectsDeletedUser(t *testing.T) {
	e, tokens := newProtectedAPI(nil)

	token, err := tokens.Issue("ghost")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_INVALID")
}
