package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is an immutable ledger entry. ProductName is a denormalized
// snapshot so the record survives deletion of the batch it references.
type Sale struct {
	BaseModel
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	ProductName string          `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity    int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"` // Snapshot price * quantity
	Date        time.Time       `gorm:"not null;index" json:"date"`
}
