package repository

import (
	"errors"

	"go-catalog-api/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConfigRepository interface {
	GetCategoryOrder() ([]string, error)
	SaveCategoryOrder(order []string) error
}

type configRepo struct {
	db *gorm.DB
}

func NewConfigRepo(db *gorm.DB) ConfigRepository {
	return &configRepo{db}
}

// GetCategoryOrder loads the persisted category order. A missing config row
// is not an error: it simply means no order has been saved yet.
func (r *configRepo) GetCategoryOrder() ([]string, error) {
	var cfg model.CategoryOrderConfig
	err := r.db.First(&cfg, "name = ?", model.CategoryOrderKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	if cfg.Order == nil {
		return []string{}, nil
	}
	return cfg.Order, nil
}

// SaveCategoryOrder upserts the full order sequence as the replacement value
// of the singleton config row (merge-write on the one column).
func (r *configRepo) SaveCategoryOrder(order []string) error {
	cfg := model.CategoryOrderConfig{
		Name:  model.CategoryOrderKey,
		Order: order,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"category_order"}),
	}).Create(&cfg).Error
}
