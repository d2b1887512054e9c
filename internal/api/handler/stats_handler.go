package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/core/ports"
)

type StatsHandler struct {
	stats ports.StatsService
}

func NewStatsHandler(stats ports.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// AdminStats handles GET /admin-stats.
//
// @Summary      Dashboard totals
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.AdminStats
// @Failure      403  {object}  errorResponse
// @Router       /admin-stats [get]
func (h *StatsHandler) AdminStats(c echo.Context) error {
	stats, err := h.stats.AdminStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// OrderStats handles GET /order-stats.
//
// @Summary      Ordered quantity and revenue per category
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.CategoryStats
// @Failure      403  {object}  errorResponse
// @Router       /order-stats [get]
func (h *StatsHandler) OrderStats(c echo.Context) error {
	stats, err := h.stats.OrderStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
