package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pantry/entities"
	"pantry/pkg/apperr"
	"pantry/pkg/recipe/service"
)

type RecipeCtrl struct{ svc service.RecipeService }

func New(svc service.RecipeService) *RecipeCtrl { return &RecipeCtrl{svc} }

type lineReq struct {
	IngredientID uint    `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
}

type stepReq struct {
	Ordinal      int    `json:"ordinal"`
	Description  string `json:"description"`
	TimerMinutes *int   `json:"timer_minutes"`
}

type recipeReq struct {
	Name         string    `json:"name"`
	Instructions string    `json:"instructions"`
	Type         string    `json:"type"`
	PrepMinutes  *int      `json:"prep_minutes"`
	CookMinutes  *int      `json:"cook_minutes"`
	Image        string    `json:"image"`
	Ingredients  []lineReq `json:"ingredients"`
	Steps        []stepReq `json:"steps"`
}

func (r *recipeReq) parts(id uint) (*entities.Recipe, []entities.RecipeIngredient, []entities.RecipeStep) {
	rec := &entities.Recipe{
		ID: id, Name: r.Name, Instructions: r.Instructions, Type: r.Type,
		PrepMinutes: r.PrepMinutes, CookMinutes: r.CookMinutes, Image: r.Image,
	}
	lines := make([]entities.RecipeIngredient, 0, len(r.Ingredients))
	for _, l := range r.Ingredients {
		lines = append(lines, entities.RecipeIngredient{IngredientID: l.IngredientID, Quantity: l.Quantity})
	}
	steps := make([]entities.RecipeStep, 0, len(r.Steps))
	for i, st := range r.Steps {
		ord := st.Ordinal
		if ord == 0 {
			ord = i + 1
		}
		steps = append(steps, entities.RecipeStep{Ordinal: ord, Description: st.Description, TimerMinutes: st.TimerMinutes})
	}
	return rec, lines, steps
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

func (h *RecipeCtrl) Create(c echo.Context) error {
	var req recipeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.svc.Create(req.parts(0))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *RecipeCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req recipeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.svc.Update(req.parts(uint(id)))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RecipeCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.svc.Delete(uint(id)); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *RecipeCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := h.svc.Get(uint(id))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RecipeCtrl) Availability(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := h.svc.Get(uint(id))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out.Availability)
}

func (h *RecipeCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.QueryParam("type"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
