package middleware

import (
	"github.com/labstack/echo/v4"

	"gimo/internal/domain/service"
	"gimo/pkg/errors"
	"gimo/pkg/response"
)

// RoleMiddleware exposes one guard per capability. A failing guard always
// means "insufficient role", never "not authenticated"; Authenticate runs
// first and owns that distinction.
type RoleMiddleware struct{}

func NewRoleMiddleware() *RoleMiddleware {
	return &RoleMiddleware{}
}

func (m *RoleMiddleware) require(capability service.Capability, message string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return response.Error(c, errors.Unauthenticated("Authentication required", nil))
			}
			if !service.Allows(user.Role, capability) {
				return response.Error(c, errors.Forbidden(message, nil))
			}
			return next(c)
		}
	}
}

func (m *RoleMiddleware) RequireAuthor(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(service.CapabilityAuthorContent, "Author privileges required")(next)
}

func (m *RoleMiddleware) RequireAgent(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(service.CapabilityAgentListing, "Agent privileges required")(next)
}

func (m *RoleMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(service.CapabilityAdminOnly, "Admin privileges required")(next)
}
