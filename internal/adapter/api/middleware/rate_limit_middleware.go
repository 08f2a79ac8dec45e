package middleware

import (
	"github.com/labstack/echo/v4"

	"gimo/internal/infrastructure/ratelimit"
	"gimo/pkg/errors"
	"gimo/pkg/response"
)

// LimitLogin bounds login attempts per client address.
func LimitLogin(limiter *ratelimit.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, _ := limiter.Allow(c.RealIP(), "login")
			if !allowed {
				return response.Error(c, errors.TooManyRequests("Too many login attempts, try again later"))
			}
			return next(c)
		}
	}
}
