package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReportSnapshot is a server-held copy of a monthly report, published
// under an opaque token so the owner can share a read-only link.
type ReportSnapshot struct {
	BaseModel
	UserID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Token   string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"token"`
	Payload datatypes.JSON `gorm:"not null" json:"payload"`
}
