package repository

import (
	"go-inventory-genie/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(tx *gorm.DB, sale *model.Sale) error
	FindAllByUser(userID uuid.UUID) ([]model.Sale, error)
	DeleteByUser(userID uuid.UUID) (int64, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

// Create accepts a transaction handle so the ledger insert can share
// the stock-decrement transaction. Pass nil to use the base handle.
func (r *saleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(sale).Error
}

func (r *saleRepo) FindAllByUser(userID uuid.UUID) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) DeleteByUser(userID uuid.UUID) (int64, error) {
	res := r.db.Delete(&model.Sale{}, "user_id = ?", userID)
	return res.RowsAffected, res.Error
}
