package repositoryImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"pantry/entities"
	"pantry/pkg/apperr"
	"pantry/pkg/price/repository"
)

type priceRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PriceRepository { return &priceRepo{db} }

func (r *priceRepo) Append(rec *entities.PriceRecord) error {
	if rec.CollectedAt.IsZero() {
		rec.CollectedAt = time.Now()
	}
	return r.db.Create(rec).Error
}

func (r *priceRepo) Latest(ingredientID uint) (*entities.PriceRecord, error) {
	var rec entities.PriceRecord
	err := r.db.Where("ingredient_id = ?", ingredientID).
		Order("collected_at DESC").First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("price record for ingredient", ingredientID)
		}
		return nil, err
	}
	return &rec, nil
}

func (r *priceRepo) RecentRecords(ingredientID uint, since time.Time, minConfidence float64) ([]entities.PriceRecord, error) {
	var out []entities.PriceRecord
	err := r.db.Where("ingredient_id = ? AND collected_at >= ? AND confidence >= ?",
		ingredientID, since, minConfidence).Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *priceRepo) History(ingredientID uint, limit int) ([]entities.PriceRecord, error) {
	q := r.db.Where("ingredient_id = ?", ingredientID).Order("collected_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []entities.PriceRecord
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *priceRepo) Prune(before time.Time, maxConfidence float64) (int64, error) {
	res := r.db.Where("collected_at < ? AND confidence < ?", before, maxConfidence).
		Delete(&entities.PriceRecord{})
	return res.RowsAffected, res.Error
}

func (r *priceRepo) ActiveSources() ([]entities.PriceSource, error) {
	var out []entities.PriceSource
	err := r.db.Where("active = ?", true).Order("priority DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *priceRepo) SaveSource(s *entities.PriceSource) error { return r.db.Save(s).Error }

func (r *priceRepo) EnsureSource(name string, priority int, reliability float64, description string) error {
	var s entities.PriceSource
	err := r.db.Where("name = ?", name).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&entities.PriceSource{
			Name: name, Active: true, Priority: priority,
			Reliability: reliability, Description: description,
		}).Error
	}
	return err
}

func (r *priceRepo) BestMapping(ingredientID uint, source string) (*entities.ProductMapping, error) {
	var m entities.ProductMapping
	err := r.db.Where("ingredient_id = ? AND source = ?", ingredientID, source).
		Order("validity DESC, use_count DESC").First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("product mapping for ingredient", ingredientID)
		}
		return nil, err
	}
	m.UseCount++
	m.LastUsedAt = time.Now()
	if err := r.db.Save(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *priceRepo) SaveMapping(m *entities.ProductMapping) error {
	var existing entities.ProductMapping
	err := r.db.Where("ingredient_id = ? AND search_term = ? AND source = ?",
		m.IngredientID, m.SearchTerm, m.Source).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m.UseCount = 1
		m.LastUsedAt = time.Now()
		return r.db.Create(m).Error
	}
	if err != nil {
		return err
	}
	existing.Validity = m.Validity
	existing.UseCount++
	existing.LastUsedAt = time.Now()
	if m.Barcode != "" {
		existing.Barcode = m.Barcode
	}
	if m.ProductName != "" {
		existing.ProductName = m.ProductName
	}
	return r.db.Save(&existing).Error
}
