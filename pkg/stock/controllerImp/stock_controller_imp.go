package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pantry/pkg/apperr"
	"pantry/pkg/stock/service"
)

type StockCtrl struct{ svc service.StockService }

func New(svc service.StockService) *StockCtrl { return &StockCtrl{svc} }

type adjustReq struct {
	Action   string  `json:"action"`
	Quantity float64 `json:"quantity"`
}

func writeErr(c echo.Context, err error) error {
	switch {
	case apperr.IsNotFound(err):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case apperr.IsInvalidInput(err):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func (h *StockCtrl) Adjust(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("ingredient_id"))
	var req adjustReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	e, err := h.svc.Adjust(uint(id), service.Action(req.Action), req.Quantity)
	if err != nil {
		return writeErr(c, err)
	}
	if e == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, e)
}

func (h *StockCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("ingredient_id"))
	e, err := h.svc.Get(uint(id))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, e)
}

func (h *StockCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("ingredient_id"))
	if err := h.svc.Delete(uint(id)); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *StockCtrl) Clear(c echo.Context) error {
	if err := h.svc.Clear(); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *StockCtrl) List(c echo.Context) error {
	sum, err := h.svc.List()
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, sum)
}
