package repository

import (
	"go-inventory-genie/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseProductRepository interface {
	FindByIdentity(userID uuid.UUID, name, brand string) (*model.BaseProduct, error)
	FindAllByUser(userID uuid.UUID) ([]model.BaseProduct, error)
	Create(product *model.BaseProduct) error
	DeleteByUser(userID uuid.UUID) (int64, error)
}

type baseProductRepo struct {
	db *gorm.DB
}

func NewBaseProductRepo(db *gorm.DB) BaseProductRepository {
	return &baseProductRepo{db}
}

// FindByIdentity looks up the per-user deduplication key (name, brand).
func (r *baseProductRepo) FindByIdentity(userID uuid.UUID, name, brand string) (*model.BaseProduct, error) {
	var product model.BaseProduct
	err := r.db.Where("user_id = ? AND name = ? AND brand = ?", userID, name, brand).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *baseProductRepo) FindAllByUser(userID uuid.UUID) ([]model.BaseProduct, error) {
	var products []model.BaseProduct
	err := r.db.Where("user_id = ?", userID).Find(&products).Error
	return products, err
}

func (r *baseProductRepo) Create(product *model.BaseProduct) error {
	return r.db.Create(product).Error
}

func (r *baseProductRepo) DeleteByUser(userID uuid.UUID) (int64, error) {
	res := r.db.Delete(&model.BaseProduct{}, "user_id = ?", userID)
	return res.RowsAffected, res.Error
}
