package price

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"pantry/entities"
	"pantry/pkg/apperr"
	"pantry/pkg/price/repository"
	priceRepoImp "pantry/pkg/price/repositoryImp"
	"pantry/pkg/units"
)

// Stats summarizes one collection run.
type Stats struct {
	Total     int `json:"total"`
	Skipped   int `json:"skipped"`
	Collected int `json:"collected"`
	Updated   int `json:"updated"`
	Errors    int `json:"errors"`
}

// Updater runs price collection over the ingredient catalog. It appends
// to the price history and may update Ingredient.PricePerUnit; nothing
// else in the system is touched.
type Updater struct {
	db            *gorm.DB
	repo          repository.PriceRepository
	scrapers      []Scraper
	log           *zap.Logger
	refreshDays   int
	minConfidence float64

	lastRunUpdated bool
}

func NewUpdater(db *gorm.DB, repo repository.PriceRepository, scrapers []Scraper,
	log *zap.Logger, refreshDays int, minConfidence float64) *Updater {
	if refreshDays <= 0 {
		refreshDays = 7
	}
	if minConfidence <= 0 {
		minConfidence = 0.3
	}
	return &Updater{db: db, repo: repo, scrapers: scrapers, log: log,
		refreshDays: refreshDays, minConfidence: minConfidence}
}

// Run collects prices for every ingredient, or the given category only.
// Fresh prices are skipped unless force is set.
func (u *Updater) Run(ctx context.Context, force bool, category string, limit int) (Stats, error) {
	for _, s := range u.scrapers {
		if err := u.repo.EnsureSource(s.Name(), 80, 0.85, ""); err != nil {
			return Stats{}, err
		}
	}

	q := u.db.Model(&entities.Ingredient{}).Order("id")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var ingredients []entities.Ingredient
	if err := q.Find(&ingredients).Error; err != nil {
		return Stats{}, err
	}

	stats := Stats{Total: len(ingredients)}
	for i := range ingredients {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		switch err := u.updateIngredient(ctx, &ingredients[i], force); {
		case err == errSkipped:
			stats.Skipped++
		case err != nil:
			u.log.Warn("price update failed",
				zap.String("ingredient", ingredients[i].Name), zap.Error(err))
			stats.Errors++
		default:
			stats.Collected++
			if u.lastRunUpdated {
				stats.Updated++
			}
		}
	}
	u.log.Info("price collection finished",
		zap.Int("total", stats.Total), zap.Int("collected", stats.Collected),
		zap.Int("updated", stats.Updated), zap.Int("skipped", stats.Skipped),
		zap.Int("errors", stats.Errors))
	return stats, nil
}

var errSkipped = errors.New("skipped")

func (u *Updater) updateIngredient(ctx context.Context, ing *entities.Ingredient, force bool) error {
	u.lastRunUpdated = false

	if !force && ing.PricePerUnit > 0 {
		if latest, err := u.repo.Latest(ing.ID); err == nil {
			age := time.Since(latest.CollectedAt)
			if age < time.Duration(u.refreshDays)*24*time.Hour {
				u.log.Debug("price fresh, skipping",
					zap.String("ingredient", ing.Name),
					zap.Duration("age", age))
				return errSkipped
			}
		} else if !apperr.IsNotFound(err) {
			return err
		}
	}

	if ing.Unit == units.Piece && (ing.PieceWeightG == nil || *ing.PieceWeightG <= 0) {
		u.log.Debug("piece ingredient without weight, skipping",
			zap.String("ingredient", ing.Name))
		return errSkipped
	}

	if len(u.scrapers) == 0 {
		return errSkipped
	}

	searchTerm := NormalizeName(ing.Name)
	if mapping, err := u.repo.BestMapping(ing.ID, u.scrapers[0].Name()); err == nil {
		searchTerm = mapping.SearchTerm
	} else if !apperr.IsNotFound(err) {
		return err
	}

	best, ok, err := u.bestQuote(ctx, ing, searchTerm)
	if err != nil {
		return err
	}
	if !ok {
		u.log.Debug("no quotes found", zap.String("ingredient", ing.Name))
		return errSkipped
	}

	// Per-piece ingredients store the price of one piece.
	price := best.Price
	if ing.Unit == units.Piece {
		price = units.PiecePrice(best.Price, ing.PieceWeightG)
	}

	recent, err := u.repo.RecentRecords(ing.ID, time.Now().AddDate(0, 0, -30), 0.5)
	if err != nil {
		return err
	}
	if anomalous, reason := DetectAnomaly(price, recent); anomalous {
		u.log.Warn("price anomaly",
			zap.String("ingredient", ing.Name), zap.String("reason", reason))
		best.Confidence = round2(best.Confidence * 0.5)
	}

	return u.db.Transaction(func(tx *gorm.DB) error {
		txRepo := priceRepoImp.New(tx)
		if err := txRepo.Append(&entities.PriceRecord{
			IngredientID: ing.ID,
			Price:        price,
			Source:       best.Source,
			SourceURL:    best.URL,
			Barcode:      best.Barcode,
			ProductName:  best.ProductName,
			RefQuantity:  best.RefQuantity,
			RefUnit:      best.RefUnit,
			Confidence:   best.Confidence,
		}); err != nil {
			return err
		}

		if best.Confidence >= u.minConfidence {
			if err := tx.Model(&entities.Ingredient{}).
				Where("id = ?", ing.ID).
				Update("price_per_unit", price).Error; err != nil {
				return err
			}
			u.lastRunUpdated = true
			u.log.Info("ingredient price updated",
				zap.String("ingredient", ing.Name),
				zap.Float64("old", ing.PricePerUnit),
				zap.Float64("new", price),
				zap.Float64("confidence", best.Confidence))
		}

		if best.Confidence >= 0.7 {
			if err := txRepo.SaveMapping(&entities.ProductMapping{
				IngredientID: ing.ID,
				SearchTerm:   searchTerm,
				Source:       best.Source,
				Barcode:      best.Barcode,
				ProductName:  best.ProductName,
				Validity:     best.Confidence,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (u *Updater) bestQuote(ctx context.Context, ing *entities.Ingredient, searchTerm string) (Quote, bool, error) {
	sources, err := u.repo.ActiveSources()
	if err != nil {
		return Quote{}, false, err
	}
	active := map[string]entities.PriceSource{}
	for _, s := range sources {
		active[s.Name] = s
	}

	var quotes []Quote
	for _, scraper := range u.scrapers {
		src, ok := active[scraper.Name()]
		if !ok {
			continue
		}
		found, err := scraper.Search(ctx, searchTerm, ing.Category)
		now := time.Now()
		if err != nil {
			u.log.Warn("source failed",
				zap.String("source", scraper.Name()), zap.Error(err))
			src.ConsecutiveErrors++
			_ = u.repo.SaveSource(&src)
			continue
		}
		src.LastRunAt = &now
		src.ConsecutiveErrors = 0
		if err := u.repo.SaveSource(&src); err != nil {
			return Quote{}, false, err
		}
		if len(found) > 3 {
			found = found[:3]
		}
		quotes = append(quotes, found...)
	}
	if len(quotes) == 0 {
		return Quote{}, false, nil
	}
	sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].Confidence > quotes[j].Confidence })
	return quotes[0], true, nil
}

// Prune drops low-confidence records older than the retention window and
// returns the number deleted.
func (u *Updater) Prune(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		retentionDays = 180
	}
	return u.repo.Prune(time.Now().AddDate(0, 0, -retentionDays), 0.7)
}
