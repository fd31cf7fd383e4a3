package repository

import (
	"go-inventory-genie/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportSnapshotRepository interface {
	Create(snapshot *model.ReportSnapshot) error
	FindByToken(token string) (*model.ReportSnapshot, error)
	DeleteByUser(userID uuid.UUID) (int64, error)
}

type reportSnapshotRepo struct {
	db *gorm.DB
}

func NewReportSnapshotRepo(db *gorm.DB) ReportSnapshotRepository {
	return &reportSnapshotRepo{db}
}

func (r *reportSnapshotRepo) Create(snapshot *model.ReportSnapshot) error {
	return r.db.Create(snapshot).Error
}

func (r *reportSnapshotRepo) FindByToken(token string) (*model.ReportSnapshot, error) {
	var snapshot model.ReportSnapshot
	if err := r.db.Where("token = ?", token).First(&snapshot).Error; err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *reportSnapshotRepo) DeleteByUser(userID uuid.UUID) (int64, error) {
	res := r.db.Delete(&model.ReportSnapshot{}, "user_id = ?", userID)
	return res.RowsAffected, res.Error
}
