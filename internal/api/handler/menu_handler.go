package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// MenuHandler serves the menu catalog and the review list.
type MenuHandler struct {
	menu    ports.MenuService
	reviews ports.ReviewRepository
}

func NewMenuHandler(menu ports.MenuService, reviews ports.ReviewRepository) *MenuHandler {
	return &MenuHandler{menu: menu, reviews: reviews}
}

// List handles GET /menu.
//
// @Summary      List menu items
// @Tags         menu
// @Produce      json
// @Success      200  {array}  domain.MenuItem
// @Router       /menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.menu.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /menu/:id.
//
// @Summary      Get a menu item
// @Tags         menu
// @Produce      json
// @Param        id   path      string  true  "Menu item id"
// @Success      200  {object}  domain.MenuItem
// @Failure      404  {object}  errorResponse
// @Router       /menu/{id} [get]
func (h *MenuHandler) Get(c echo.Context) error {
	item, err := h.menu.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /menu.
//
// @Summary      Add a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      menuItemRequest  true  "Menu item"
// @Success      201   {object}  insertedResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /menu [post]
func (h *MenuHandler) Create(c echo.Context) error {
	var req menuItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.menu.Create(c.Request().Context(), domain.MenuItem{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Recipe:   req.Recipe,
		Image:    req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, insertedResponse{InsertedID: id})
}

// Update handles PATCH /menu/:id.
//
// @Summary      Update a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Menu item id"
// @Param        body  body      menuItemPatchRequest  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /menu/{id} [patch]
func (h *MenuHandler) Update(c echo.Context) error {
	var req menuItemPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.menu.Update(c.Request().Context(), c.Param("id"), req.toPatch()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "menu item updated"})
}

// Delete handles DELETE /menu/:id.
//
// @Summary      Delete a menu item
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Menu item id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /menu/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	if err := h.menu.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "menu item deleted"})
}

// Reviews handles GET /reviews.
//
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}  domain.Review
// @Router       /reviews [get]
func (h *MenuHandler) Reviews(c echo.Context) error {
	reviews, err := h.reviews.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}
