package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryStatus(t *testing.T) {
	cases := []struct {
		err    *AppError
		code   string
		status int
	}{
		{Unauthenticated("m", nil), "UNAUTHENTICATED", http.StatusUnauthorized},
		{SessionInvalid("m", nil), "SESSION_INVALID", http.StatusUnauthorized},
		{Forbidden("m", nil), "FORBIDDEN", http.StatusForbidden},
		{NotFound("Article", nil), "NOT_FOUND", http.StatusNotFound},
		{Conflict("m"), "CONFLICT", http.StatusConflict},
		{Validation("m", nil), "VALIDATION_ERROR", http.StatusBadRequest},
		{Unavailable("m", nil), "UNAVAILABLE", http.StatusServiceUnavailable},
		{Internal("m", nil), "INTERNAL_ERROR", http.StatusInternalServerError},
		{TooManyRequests("m"), "TOO_MANY_REQUESTS", http.StatusTooManyRequests},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.status, tc.err.Status)
	}
}

func TestNotFoundMessage(t *testing.T) {
	assert.Equal(t, "Property not found", NotFound("Property", nil).Message)
}

func TestIsMatchesWrappedErrors(t *testing.T) {
	base := NotFound("Article", nil)
	wrapped := fmt.Errorf("loading saved article: %w", base)

	assert.True(t, Is(base, "NOT_FOUND"))
	assert.True(t, Is(wrapped, "NOT_FOUND"))
	assert.False(t, Is(wrapped, "CONFLICT"))
	assert.False(t, Is(fmt.Errorf("plain"), "NOT_FOUND"))
	assert.False(t, Is(nil, "NOT_FOUND"))
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("rpc failed")
	err := Unavailable("store unreachable", cause)
	assert.Equal(t, cause, err.Unwrap())
}
