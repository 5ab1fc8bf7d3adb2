package repository

import (
	"go-catalog-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
	UpdateStatus(id uuid.UUID, status string, updatedBy string) error
	SearchAvailable(term string, limit int) ([]model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

// FindAll returns products in insertion order so the category reconciliation
// scan is deterministic across calls.
func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("created_at asc").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

func (r *productRepo) UpdateStatus(id uuid.UUID, status string, updatedBy string) error {
	return r.db.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"estado":       status,
			"fecha_update": gorm.Expr("NOW()"),
			"updated_by":   updatedBy,
		}).Error
}

// SearchAvailable backs the quote builder autocomplete: available products
// whose name or billing code contains the term.
func (r *productRepo) SearchAvailable(term string, limit int) ([]model.Product, error) {
	var products []model.Product
	pattern := "%" + term + "%"
	err := r.db.
		Where("estado <> ?", model.StatusUnavailable).
		Where("nombre ILIKE ? OR codigo_facturacion ILIKE ?", pattern, pattern).
		Order("created_at asc").
		Limit(limit).
		Find(&products).Error
	return products, err
}
