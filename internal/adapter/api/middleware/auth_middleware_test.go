package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gimo/internal/domain/entity"
	"gimo/internal/domain/repository"
	"gimo/pkg/errors"
)

type stubTokens struct {
	subject string
	err     error
}

func (s stubTokens) Issue(userID string) (string, error) { return "token", nil }

func (s stubTokens) Verify(raw string) (string, error) { return s.subject, s.err }

type stubUserRepo struct {
	user *entity.User
}

func (s stubUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (s stubUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, errors.NotFound("User", nil)
	}
	return s.user, nil
}

func (s stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, errors.NotFound("User", nil)
}

func (s stubUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return nil, errors.NotFound("User", nil)
}

func (s stubUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

func (s stubUserRepo) Delete(ctx context.Context, id string) error { return nil }

func (s stubUserRepo) List(ctx context.Context, filter repository.UserFilter, limit, offset int) ([]*entity.User, int64, error) {
	return nil, 0, nil
}

func runAuthenticated(t *testing.T, m *AuthMiddleware, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := m.Authenticate(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, reached
}

func TestAuthenticateResolvesUser(t *testing.T) {
	user := &entity.User{ID: "u1", Role: entity.RoleAuthor, Status: entity.UserStatusActive}
	m := NewAuthMiddleware(stubTokens{subject: "u1"}, stubUserRepo{user: user})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer sometoken")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Authenticate(func(c echo.Context) error {
		assert.Equal(t, user, CurrentUser(c))
		assert.Equal(t, "u1", c.Get("uid"))
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticateMissingHeader(t *testing.T) {
	m := NewAuthMiddleware(stubTokens{subject: "u1"}, stubUserRepo{})

	rec, reached := runAuthenticated(t, m, "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestAuthenticateBadFormat(t *testing.T) {
	m := NewAuthMiddleware(stubTokens{subject: "u1"}, stubUserRepo{})

	rec, reached := runAuthenticated(t, m, "Basic dXNlcjpwYXNz")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateDeletedUser(t *testing.T) {
	m := NewAuthMiddleware(stubTokens{subject: "ghost"}, stubUserRepo{})

	rec, reached := runAuthenticated(t, m, "Bearer sometoken")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_INVALID")
}

func TestSuspendedUserStillPassesGate(t *testing.T) {
	user := &entity.User{ID: "u1", Role: entity.RoleVisitor, Status: entity.UserStatusSuspended}
	m := NewAuthMiddleware(stubTokens{subject: "u1"}, stubUserRepo{user: user})

	rec, reached := runAuthenticated(t, m, "Bearer sometoken")
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}
