package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// Context keys set by Auth.
const (
	ContextClaim = "claim"
	ContextEmail = "email"
)

// Auth verifies the bearer token and injects the identity claim into context.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			claim, err := tokens.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			c.Set(ContextClaim, claim)
			c.Set(ContextEmail, claim.Email)

			return next(c)
		}
	}
}

// Claim returns the identity claim stored by Auth.
func Claim(c echo.Context) (*ports.IdentityClaim, bool) {
	claim, ok := c.Get(ContextClaim).(*ports.IdentityClaim)
	return claim, ok && claim != nil
}
