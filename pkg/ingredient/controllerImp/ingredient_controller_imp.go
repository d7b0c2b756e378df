package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pantry/entities"
	"pantry/pkg/apperr"
	"pantry/pkg/ingredient/service"
	"pantry/pkg/units"
)

type IngredientCtrl struct{ svc service.IngredientService }

func New(svc service.IngredientService) *IngredientCtrl { return &IngredientCtrl{svc} }

type ingredientReq struct {
	Name         string   `json:"name"`
	Unit         string   `json:"unit"`
	PricePerUnit float64  `json:"price_per_unit"`
	PieceWeightG *float64 `json:"piece_weight_g"`
	Category     string   `json:"category"`
	Image        string   `json:"image"`
	Calories     float64  `json:"calories"`
	Protein      float64  `json:"protein"`
	Carbs        float64  `json:"carbs"`
	Fat          float64  `json:"fat"`
	Fiber        float64  `json:"fiber"`
	Sugar        float64  `json:"sugar"`
	Salt         float64  `json:"salt"`
	Seasons      []string `json:"seasons"`
}

func (r *ingredientReq) entity(id uint) *entities.Ingredient {
	unit := r.Unit
	if unit == "" {
		unit = units.Gram
	}
	return &entities.Ingredient{
		ID: id, Name: r.Name, Unit: unit, PricePerUnit: r.PricePerUnit,
		PieceWeightG: r.PieceWeightG, Category: r.Category, Image: r.Image,
		Calories: r.Calories, Protein: r.Protein, Carbs: r.Carbs, Fat: r.Fat,
		Fiber: r.Fiber, Sugar: r.Sugar, Salt: r.Salt,
	}
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

func (h *IngredientCtrl) Create(c echo.Context) error {
	var req ingredientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.svc.Create(req.entity(0), req.Seasons)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *IngredientCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req ingredientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.svc.Update(req.entity(uint(id)), req.Seasons)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *IngredientCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.svc.Delete(uint(id)); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *IngredientCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := h.svc.Get(uint(id))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *IngredientCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.QueryParam("category"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
