package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/employee-system/internal/core/domain"
)

// RequireRole enforces role-based access control. Requests without a
// principal (including anonymous passthrough) are rejected.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, _ := c.Get(PrincipalKey).(*domain.Principal)
			if principal == nil {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			if _, ok := allowed[principal.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
