package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// AdminChecker is the directory lookup RequireAdmin consults.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireAdmin allows the request only when the caller is currently an admin
// in the directory. The role is read on every call and never taken from the
// token, so promotions and deletions apply to the next request. Must run
// after Auth.
func RequireAdmin(directory AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claim, ok := Claim(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			admin, err := directory.IsAdmin(c.Request().Context(), claim.Email)
			if err != nil {
				return err
			}
			if !admin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden access"})
			}
			return next(c)
		}
	}
}

// RequireSelf rejects the request unless the email named by param (path
// parameter first, then query string) is the caller's own. Role does not
// matter. Must run after Auth.
func RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claim, ok := Claim(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			requested := c.Param(param)
			if requested == "" {
				requested = c.QueryParam(param)
			}
			if unescaped, err := url.PathUnescape(requested); err == nil {
				requested = unescaped
			}

			if domain.NormalizeEmail(requested) != domain.NormalizeEmail(claim.Email) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden access"})
			}
			return next(c)
		}
	}
}
