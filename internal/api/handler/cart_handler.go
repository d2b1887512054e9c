package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/core/ports"
)

type CartHandler struct {
	carts ports.CartService
}

func NewCartHandler(carts ports.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// List handles GET /carts?email=.
//
// @Summary      List a user's cart
// @Tags         carts
// @Produce      json
// @Param        email  query     string  true  "Owner email"
// @Success      200    {array}   domain.CartEntry
// @Failure      400    {object}  errorResponse
// @Router       /carts [get]
func (h *CartHandler) List(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	entries, err := h.carts.ListForUser(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Add handles POST /carts.
//
// @Summary      Add an item to a cart
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        body  body      addCartRequest  true  "Cart entry"
// @Success      201   {object}  insertedResponse
// @Failure      400   {object}  errorResponse
// @Router       /carts [post]
func (h *CartHandler) Add(c echo.Context) error {
	var req addCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.carts.Add(c.Request().Context(), ports.AddCartEntryInput{
		Email:  req.Email,
		MenuID: req.MenuID,
		Name:   req.Name,
		Image:  req.Image,
		Price:  req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, insertedResponse{InsertedID: id})
}

// Remove handles DELETE /carts/:id.
//
// @Summary      Remove a cart entry
// @Tags         carts
// @Produce      json
// @Param        id   path      string  true  "Cart entry id"
// @Success      200  {object}  deleteResponse
// @Failure      404  {object}  errorResponse
// @Router       /carts/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	if err := h.carts.RemoveOne(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{DeletedCount: 1})
}
