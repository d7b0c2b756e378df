package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"pantry/pkg/apperr"
	"pantry/pkg/mealplan/service"
)

type MealPlanCtrl struct{ svc service.MealPlanService }

func New(svc service.MealPlanService) *MealPlanCtrl { return &MealPlanCtrl{svc} }

func writeErr(c echo.Context, err error) error {
	switch {
	case apperr.IsNotFound(err):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case apperr.IsInvalidInput(err):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

type planReq struct {
	RecipeID  uint   `json:"recipe_id"`
	PlannedAt string `json:"planned_at"` // 2006-01-02
}

func (h *MealPlanCtrl) Plan(c echo.Context) error {
	var req planReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	at, err := time.Parse("2006-01-02", req.PlannedAt)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "planned_at must be YYYY-MM-DD"})
	}
	p, err := h.svc.Plan(req.RecipeID, at)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *MealPlanCtrl) List(c echo.Context) error {
	var prepared *bool
	if raw := c.QueryParam("prepared"); raw != "" {
		v := raw == "true"
		prepared = &v
	}
	var from, to *time.Time
	if raw := c.QueryParam("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "from must be YYYY-MM-DD"})
		}
		from = &t
	}
	if raw := c.QueryParam("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "to must be YYYY-MM-DD"})
		}
		to = &t
	}
	plans, err := h.svc.List(prepared, from, to)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, plans)
}

func (h *MealPlanCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.svc.Get(uint(id))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *MealPlanCtrl) Prepare(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.svc.Prepare(uint(id))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *MealPlanCtrl) Cancel(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.svc.Cancel(uint(id)); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *MealPlanCtrl) History(c echo.Context) error {
	plans, err := h.svc.History()
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, plans)
}
