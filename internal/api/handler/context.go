package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/api/middleware"
)

// ctxEmail returns the caller's email injected by the Auth middleware. A
// missing value means the route was registered without Auth.
func ctxEmail(c echo.Context) (string, error) {
	claim, ok := middleware.Claim(c)
	if !ok || claim.Email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claim.Email, nil
}

// bindAndValidate decodes the request body into req and runs the struct
// validator. Malformed bodies are 400; validation failures are 422.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
