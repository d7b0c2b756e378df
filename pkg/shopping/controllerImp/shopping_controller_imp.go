package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pantry/pkg/apperr"
	"pantry/pkg/shopping/service"
)

type ShoppingCtrl struct{ svc service.ShoppingService }

func New(svc service.ShoppingService) *ShoppingCtrl { return &ShoppingCtrl{svc} }

func writeErr(c echo.Context, err error) error {
	switch {
	case apperr.IsNotFound(err):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case apperr.IsInvalidInput(err):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func (h *ShoppingCtrl) Sync(c echo.Context) error {
	var events []service.PurchaseEvent
	if err := c.Bind(&events); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	count, err := h.svc.SyncPurchases(events)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"items_modified": count})
}

func (h *ShoppingCtrl) Generate(c echo.Context) error {
	list, err := h.svc.Generate()
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ShoppingCtrl) List(c echo.Context) error {
	var budget *float64
	if raw := c.QueryParam("budget"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad budget"})
		}
		budget = &v
	}
	list, err := h.svc.List(budget)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

type addReq struct {
	IngredientID uint    `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
}

func (h *ShoppingCtrl) Add(c echo.Context) error {
	var req addReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	item, err := h.svc.AddManual(req.IngredientID, req.Quantity)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

type quantityReq struct {
	Quantity float64 `json:"quantity"`
}

func (h *ShoppingCtrl) UpdateQuantity(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req quantityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	item, err := h.svc.UpdateQuantity(uint(id), req.Quantity)
	if err != nil {
		return writeErr(c, err)
	}
	if item == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ShoppingCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.svc.DeleteItem(uint(id)); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ShoppingCtrl) Purchase(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := h.svc.Purchase(uint(id))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ShoppingCtrl) History(c echo.Context) error {
	items, err := h.svc.History()
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ShoppingCtrl) ClearHistory(c echo.Context) error {
	if err := h.svc.ClearHistory(); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ShoppingCtrl) Export(c echo.Context) error {
	data, err := h.svc.ExportXLSX()
	if err != nil {
		return writeErr(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="shopping-list.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
