package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/api/metrics"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// UserHandler exposes the account directory.
type UserHandler struct {
	directory ports.DirectoryService
}

func NewUserHandler(directory ports.DirectoryService) *UserHandler {
	return &UserHandler{directory: directory}
}

// List handles GET /users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.directory.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// AdminStatus handles GET /users/admin/:email. The route is self-scoped, so
// the email is always the caller's own.
//
// @Summary      Check whether the caller is an admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Caller email"
// @Success      200    {object}  adminStatusResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /users/admin/{email} [get]
func (h *UserHandler) AdminStatus(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	admin, err := h.directory.IsAdmin(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminStatusResponse{Admin: admin})
}

// Create handles POST /users: inserts the user on first sign-in and is a
// no-op afterwards.
//
// @Summary      Create a user if absent
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User"
// @Success      201   {object}  domain.UpsertResult
// @Success      200   {object}  domain.UpsertResult
// @Failure      400   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.directory.UpsertIfAbsent(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		return err
	}

	if !res.Created {
		return c.JSON(http.StatusOK, res)
	}
	metrics.UsersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, res)
}

// Promote handles PATCH /users/admin/:id.
//
// @Summary      Promote a user to admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/admin/{id} [patch]
func (h *UserHandler) Promote(c echo.Context) error {
	if err := h.directory.Promote(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user promoted"})
}

// Delete handles DELETE /users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.directory.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}
