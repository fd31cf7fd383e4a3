package repository

import (
	"go-inventory-genie/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BatchQuery narrows FindAllByUser. Zero value means no filtering.
type BatchQuery struct {
	Category string
	Name     string // case-insensitive substring match on base product name
}

type ProductBatchRepository interface {
	Create(batch *model.ProductBatch) error
	FindAllByUser(userID uuid.UUID, q BatchQuery) ([]model.ProductBatch, error)
	FindByIDForUser(userID, id uuid.UUID) (*model.ProductBatch, error)
	SKUExists(sku string) (bool, error)
	Save(batch *model.ProductBatch) error
	DeleteForUser(userID, id uuid.UUID) (int64, error)
	DeleteByUser(userID uuid.UUID) (int64, error)
	UpdateQuantity(tx *gorm.DB, id uuid.UUID, newQuantity int) error
}

type productBatchRepo struct {
	db *gorm.DB
}

func NewProductBatchRepo(db *gorm.DB) ProductBatchRepository {
	return &productBatchRepo{db}
}

func (r *productBatchRepo) Create(batch *model.ProductBatch) error {
	return r.db.Create(batch).Error
}

// FindAllByUser returns the user's batches in FIFO consumption order:
// ascending expiry date with never-expiring batches last.
func (r *productBatchRepo) FindAllByUser(userID uuid.UUID, q BatchQuery) ([]model.ProductBatch, error) {
	var batches []model.ProductBatch
	tx := r.db.Preload("BaseProduct").Where("user_id = ?", userID)
	if q.Category != "" {
		tx = tx.Joins("JOIN base_products ON base_products.id = product_batches.base_product_id").
			Where("base_products.category = ?", q.Category)
	}
	if q.Name != "" {
		tx = tx.Where("base_product_name ILIKE ?", "%"+q.Name+"%")
	}
	err := tx.Order("expiry_date ASC NULLS LAST").Find(&batches).Error
	return batches, err
}

func (r *productBatchRepo) FindByIDForUser(userID, id uuid.UUID) (*model.ProductBatch, error) {
	var batch model.ProductBatch
	err := r.db.Preload("BaseProduct").First(&batch, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *productBatchRepo) SKUExists(sku string) (bool, error) {
	var count int64
	err := r.db.Model(&model.ProductBatch{}).Where("sku = ?", sku).Count(&count).Error
	return count > 0, err
}

func (r *productBatchRepo) Save(batch *model.ProductBatch) error {
	return r.db.Save(batch).Error
}

func (r *productBatchRepo) DeleteForUser(userID, id uuid.UUID) (int64, error) {
	res := r.db.Delete(&model.ProductBatch{}, "id = ? AND user_id = ?", id, userID)
	return res.RowsAffected, res.Error
}

func (r *productBatchRepo) DeleteByUser(userID uuid.UUID) (int64, error) {
	res := r.db.Delete(&model.ProductBatch{}, "user_id = ?", userID)
	return res.RowsAffected, res.Error
}

// UpdateQuantity runs on the caller's transaction handle so stock
// changes stay inside the surrounding SELECT ... FOR UPDATE block.
func (r *productBatchRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, newQuantity int) error {
	return tx.Model(&model.ProductBatch{}).
		Where("id = ?", id).
		Update("quantity", newQuantity).Error
}
