package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pantry/pkg/apperr"
	"pantry/pkg/recommend/service"
)

type RecommendCtrl struct{ svc service.RecommendService }

func New(svc service.RecommendService) *RecommendCtrl { return &RecommendCtrl{svc} }

var weightParams = map[string]string{
	"w_season":       "season",
	"w_availability": "availability",
	"w_cost":         "cost",
	"w_time":         "time",
	"w_nutrition":    "nutrition",
	"w_variety":      "variety",
}

func (h *RecommendCtrl) Recommend(c echo.Context) error {
	req := service.Request{
		Season:       c.QueryParam("season"),
		Type:         c.QueryParam("type"),
		FeasibleOnly: c.QueryParam("feasible") == "true",
	}
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad limit"})
		}
		req.Limit = &n
	}
	for param, criterion := range weightParams {
		raw := c.QueryParam(param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad " + param})
		}
		if req.Weights == nil {
			req.Weights = map[string]float64{}
		}
		req.Weights[criterion] = v
	}

	ranked, err := h.svc.Recommend(req)
	if err != nil {
		if apperr.IsInvalidInput(err) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ranked)
}
