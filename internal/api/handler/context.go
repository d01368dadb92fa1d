package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/employee-system/internal/api/middleware"
	"github.com/peoplehub/employee-system/internal/core/domain"
)

// currentPrincipal extracts the principal injected by the auth gate. Handlers
// that require an identity call this and fail with 401 when the request came
// through as anonymous passthrough.
func currentPrincipal(c echo.Context) (*domain.Principal, error) {
	principal, _ := c.Get(middleware.PrincipalKey).(*domain.Principal)
	if principal == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return principal, nil
}
