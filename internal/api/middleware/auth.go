package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/employee-system/internal/core/ports"
)

// PrincipalKey is the echo context key under which the auth gate stores the
// authenticated *domain.Principal.
const PrincipalKey = "principal"

// Auth is the per-request auth gate. Paths under any skip prefix (the auth
// namespace) bypass enforcement entirely so unauthenticated callers can log
// in and recover passwords. Elsewhere a bearer token, when present, must
// validate; the derived principal is attached to the request context.
//
// A request with no Authorization header at all is governed by
// allowAnonymous: true reproduces the legacy passthrough to non-auth
// endpoints, false rejects with 401.
func Auth(tokens ports.TokenService, allowAnonymous bool, skipPrefixes ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range skipPrefixes {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				if allowAnonymous {
					return next(c)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			principal, err := tokens.Parse(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}
