package main

import (
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"pantry/config"
	"pantry/database"
	"pantry/logger"
	"pantry/router"

	// Health
	healthCtrlImp "pantry/pkg/health/controllerImp"

	// Ingredient
	ingCtrlImp "pantry/pkg/ingredient/controllerImp"
	ingRepoImp "pantry/pkg/ingredient/repositoryImp"
	ingSvcImp "pantry/pkg/ingredient/serviceImp"

	// Stock
	stockCtrlImp "pantry/pkg/stock/controllerImp"
	stockSvcImp "pantry/pkg/stock/serviceImp"

	// Recipe
	recipeCtrlImp "pantry/pkg/recipe/controllerImp"
	recipeRepoImp "pantry/pkg/recipe/repositoryImp"
	recipeSvcImp "pantry/pkg/recipe/serviceImp"

	// Shopping
	shopCtrlImp "pantry/pkg/shopping/controllerImp"
	shopSvcImp "pantry/pkg/shopping/serviceImp"

	// Meal plans
	planCtrlImp "pantry/pkg/mealplan/controllerImp"
	planSvcImp "pantry/pkg/mealplan/serviceImp"

	// Recommendations
	recCtrlImp "pantry/pkg/recommend/controllerImp"
	recSvcImp "pantry/pkg/recommend/serviceImp"

	// Prices
	"pantry/pkg/price"
	priceCtrlImp "pantry/pkg/price/controllerImp"
	priceRepoImp "pantry/pkg/price/repositoryImp"
)

func main() {
	// 1) Config + logger
	cfg := config.Load()
	log := logger.New()
	defer log.Sync()

	// 2) DB (sqlite) + automigrate
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}

	// 3) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())

	// 4) Repos / services / controllers
	ingRepo := ingRepoImp.New(db)
	ingCtrl := ingCtrlImp.New(ingSvcImp.New(ingRepo))

	stockCtrl := stockCtrlImp.New(stockSvcImp.New(db))

	recipeRepo := recipeRepoImp.New(db)
	recipeCtrl := recipeCtrlImp.New(recipeSvcImp.New(db, recipeRepo))

	shopCtrl := shopCtrlImp.New(shopSvcImp.New(db))

	planCtrl := planCtrlImp.New(planSvcImp.New(db))

	recCtrl := recCtrlImp.New(recSvcImp.New(db, recipeRepo, cfg))

	// Price collection: Open Food Facts always, product pages when
	// configured via PRICE_PAGES (name=url,name=url).
	priceRepo := priceRepoImp.New(db)
	scrapers := []price.Scraper{price.NewOpenFoodFacts(cfg.OFFBaseURL)}
	if pages := parsePages(os.Getenv("PRICE_PAGES")); len(pages) > 0 {
		scrapers = append(scrapers, price.NewPageScraper(pages))
	}
	updater := price.NewUpdater(db, priceRepo, scrapers, log,
		cfg.PriceRefreshDays, cfg.PriceMinConfidence)
	priceCtrl := priceCtrlImp.New(updater, priceRepo)

	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 5) Router
	r := router.New(
		e,
		cfg.APIKey,
		ingCtrl,
		stockCtrl,
		recipeCtrl,
		shopCtrl,
		planCtrl,
		recCtrl.Recommend,
		priceCtrl,
		hCtrl,
	)

	// 6) Start
	log.Info("listening", zap.String("port", cfg.Port))
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func parsePages(raw string) map[string]string {
	if raw == "" {
		return nil
	}
	pages := map[string]string{}
	for _, pair := range strings.Split(raw, ",") {
		name, url, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		pages[strings.TrimSpace(name)] = strings.TrimSpace(url)
	}
	return pages
}
