package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pantry/pkg/apperr"
	"pantry/pkg/price"
	"pantry/pkg/price/repository"
)

type PriceCtrl struct {
	updater *price.Updater
	repo    repository.PriceRepository
}

func New(updater *price.Updater, repo repository.PriceRepository) *PriceCtrl {
	return &PriceCtrl{updater, repo}
}

func (h *PriceCtrl) Refresh(c echo.Context) error {
	force := c.QueryParam("force") == "true"
	category := c.QueryParam("category")
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad limit"})
		}
		limit = n
	}
	stats, err := h.updater.Run(c.Request().Context(), force, category, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *PriceCtrl) History(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("ingredient_id"))
	limit := 50
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	records, err := h.repo.History(uint(id), limit)
	if err != nil {
		if apperr.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, records)
}

func (h *PriceCtrl) Prune(c echo.Context) error {
	days := 180
	if raw := c.QueryParam("retention_days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad retention_days"})
		}
		days = n
	}
	deleted, err := h.updater.Prune(days)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]int64{"deleted": deleted})
}
