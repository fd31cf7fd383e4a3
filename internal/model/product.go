package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BaseProduct is the product type shared across batches ("Aspirin"
// regardless of which stocked lot). Deduplicated per user by
// (user_id, name, brand).
type BaseProduct struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_base_products_identity,unique" json:"user_id"`
	Name        string    `gorm:"type:varchar(255);not null;index:idx_base_products_identity,unique" json:"name" validate:"required"`
	Brand       string    `gorm:"type:varchar(255);index:idx_base_products_identity,unique" json:"brand"`
	Category    string    `gorm:"type:varchar(100);default:'general'" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
}

// ProductBatch is a concrete sellable stock lot. Quantity is the sole
// source of truth for available stock and never goes below zero.
type ProductBatch struct {
	BaseModel
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	SKU               string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku"`
	BaseProductID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"base_product_id" validate:"uuid_required"`
	BaseProduct       *BaseProduct    `gorm:"foreignKey:BaseProductID" json:"base_product,omitempty"`
	BaseProductName   string          `gorm:"type:varchar(255);not null" json:"base_product_name"`
	BatchNumber       string          `gorm:"type:varchar(100)" json:"batch_number"`
	Quantity          int             `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	PurchasePrice     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"purchase_price"`
	SellingPrice      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"selling_price"`
	ExpiryDate        *time.Time      `json:"expiry_date,omitempty"`
	ManufacturingDate *time.Time      `json:"manufacturing_date,omitempty"`
	Supplier          string          `gorm:"type:varchar(255)" json:"supplier"`
	Location          string          `gorm:"type:varchar(255)" json:"location"`
}

// IsExpired reports whether the batch's expiry date has passed.
func (b *ProductBatch) IsExpired(now time.Time) bool {
	return b.ExpiryDate != nil && b.ExpiryDate.Before(now)
}

// ExpiresWithin reports whether the batch expires in the next n days
// (and is not already expired).
func (b *ProductBatch) ExpiresWithin(now time.Time, days int) bool {
	if b.ExpiryDate == nil || b.IsExpired(now) {
		return false
	}
	return b.ExpiryDate.Before(now.AddDate(0, 0, days))
}

// IsLowStock reports whether the quantity is at or below the threshold.
func (b *ProductBatch) IsLowStock(threshold int) bool {
	return b.Quantity <= threshold
}

// LegacyProduct is the flat pre-batch product shape, kept as a
// migration table only. Reads are served for compatibility and rows
// are removed with the owning account; nothing creates new ones.
type LegacyProduct struct {
	BaseModel
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name       string          `gorm:"type:varchar(255);not null" json:"name"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Quantity   int             `gorm:"not null;default:0" json:"quantity"`
	Category   string          `gorm:"type:varchar(100);default:'general'" json:"category"`
	ExpiryDate *time.Time      `json:"expiry_date,omitempty"`
}

func (LegacyProduct) TableName() string {
	return "legacy_products"
}
