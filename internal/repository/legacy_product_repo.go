package repository

import (
	"go-inventory-genie/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LegacyProductRepository serves the flat pre-batch product table.
// Read-only apart from the account cascade; no new rows are created.
type LegacyProductRepository interface {
	FindAllByUser(userID uuid.UUID) ([]model.LegacyProduct, error)
	DeleteByUser(userID uuid.UUID) (int64, error)
}

type legacyProductRepo struct {
	db *gorm.DB
}

func NewLegacyProductRepo(db *gorm.DB) LegacyProductRepository {
	return &legacyProductRepo{db}
}

func (r *legacyProductRepo) FindAllByUser(userID uuid.UUID) ([]model.LegacyProduct, error) {
	var products []model.LegacyProduct
	err := r.db.Where("user_id = ?", userID).Find(&products).Error
	return products, err
}

func (r *legacyProductRepo) DeleteByUser(userID uuid.UUID) (int64, error) {
	res := r.db.Delete(&model.LegacyProduct{}, "user_id = ?", userID)
	return res.RowsAffected, res.Error
}
