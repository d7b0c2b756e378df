package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string
	APIKey   string

	// Recommendation defaults, overridable per request.
	CostCeiling   float64
	TimeCeilingM  int
	VarietyWindow int

	// Price collection.
	PriceRefreshDays   int
	PriceMinConfidence float64
	OFFBaseURL         string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getf := func(k string, def float64) float64 {
		if v, err := strconv.ParseFloat(os.Getenv(k), 64); err == nil {
			return v
		}
		return def
	}
	geti := func(k string, def int) int {
		if v, err := strconv.Atoi(os.Getenv(k)); err == nil {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:               get("PORT", "8080"),
		Timezone:           get("TZ", "Europe/Paris"),
		DBPath:             get("DB_PATH", "pantry.db"),
		APIKey:             get("API_KEY", ""),
		CostCeiling:        getf("RECO_COST_CEILING", 50.0),
		TimeCeilingM:       geti("RECO_TIME_CEILING_MIN", 120),
		VarietyWindow:      geti("RECO_VARIETY_WINDOW_DAYS", 14),
		PriceRefreshDays:   geti("PRICE_REFRESH_DAYS", 7),
		PriceMinConfidence: getf("PRICE_MIN_CONFIDENCE", 0.3),
		OFFBaseURL:         get("OFF_BASE_URL", "https://world.openfoodfacts.org"),
	}
	log.Printf("[cfg] port=%s db=%s", cfg.Port, cfg.DBPath)
	return cfg
}
