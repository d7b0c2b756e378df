package repository

import (
	"time"

	"pantry/entities"
)

type PriceRepository interface {
	Append(r *entities.PriceRecord) error
	Latest(ingredientID uint) (*entities.PriceRecord, error)
	RecentRecords(ingredientID uint, since time.Time, minConfidence float64) ([]entities.PriceRecord, error)
	History(ingredientID uint, limit int) ([]entities.PriceRecord, error)
	Prune(before time.Time, maxConfidence float64) (int64, error)

	ActiveSources() ([]entities.PriceSource, error)
	SaveSource(s *entities.PriceSource) error
	EnsureSource(name string, priority int, reliability float64, description string) error

	BestMapping(ingredientID uint, source string) (*entities.ProductMapping, error)
	SaveMapping(m *entities.ProductMapping) error
}
