package router

import (
	"github.com/labstack/echo/v4"

	"pantry/pkg/middleware"
)

func New(
	e *echo.Echo,
	apiKey string,
	ingCtrl interface {
		Create(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
	},
	stockCtrl interface {
		Adjust(echo.Context) error
		Get(echo.Context) error
		Delete(echo.Context) error
		Clear(echo.Context) error
		List(echo.Context) error
	},
	recipeCtrl interface {
		Create(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		Get(echo.Context) error
		Availability(echo.Context) error
		List(echo.Context) error
	},
	shopCtrl interface {
		Sync(echo.Context) error
		Generate(echo.Context) error
		List(echo.Context) error
		Add(echo.Context) error
		UpdateQuantity(echo.Context) error
		Delete(echo.Context) error
		Purchase(echo.Context) error
		History(echo.Context) error
		ClearHistory(echo.Context) error
		Export(echo.Context) error
	},
	planCtrl interface {
		Plan(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Prepare(echo.Context) error
		Cancel(echo.Context) error
		History(echo.Context) error
	},
	recommendHandler func(echo.Context) error,
	priceCtrl interface {
		Refresh(echo.Context) error
		History(echo.Context) error
		Prune(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.APIKey(apiKey))

	e.GET("/health", healthCtrl.Health)

	e.POST("/ingredients", ingCtrl.Create)
	e.GET("/ingredients", ingCtrl.List)
	e.GET("/ingredients/:id", ingCtrl.Get)
	e.PUT("/ingredients/:id", ingCtrl.Update)
	e.DELETE("/ingredients/:id", ingCtrl.Delete)

	e.GET("/stock", stockCtrl.List)
	e.DELETE("/stock", stockCtrl.Clear)
	e.GET("/stock/:ingredient_id", stockCtrl.Get)
	e.POST("/stock/:ingredient_id", stockCtrl.Adjust)
	e.DELETE("/stock/:ingredient_id", stockCtrl.Delete)

	e.POST("/recipes", recipeCtrl.Create)
	e.GET("/recipes", recipeCtrl.List)
	e.GET("/recipes/:id", recipeCtrl.Get)
	e.GET("/recipes/:id/availability", recipeCtrl.Availability)
	e.PUT("/recipes/:id", recipeCtrl.Update)
	e.DELETE("/recipes/:id", recipeCtrl.Delete)

	g := e.Group("/shopping")
	g.POST("/sync", shopCtrl.Sync)
	g.POST("/generate", shopCtrl.Generate)
	g.GET("", shopCtrl.List)
	g.POST("", shopCtrl.Add)
	g.PATCH("/:id", shopCtrl.UpdateQuantity)
	g.DELETE("/:id", shopCtrl.Delete)
	g.POST("/:id/purchase", shopCtrl.Purchase)
	g.GET("/history", shopCtrl.History)
	g.DELETE("/history", shopCtrl.ClearHistory)
	g.GET("/export", shopCtrl.Export)

	p := e.Group("/mealplans")
	p.POST("", planCtrl.Plan)
	p.GET("", planCtrl.List)
	p.GET("/history", planCtrl.History)
	p.GET("/:id", planCtrl.Get)
	p.POST("/:id/prepare", planCtrl.Prepare)
	p.POST("/:id/cancel", planCtrl.Cancel)

	e.GET("/recommendations", recommendHandler)

	e.POST("/prices/refresh", priceCtrl.Refresh)
	e.POST("/prices/prune", priceCtrl.Prune)
	e.GET("/prices/:ingredient_id/history", priceCtrl.History)

	return e
}
