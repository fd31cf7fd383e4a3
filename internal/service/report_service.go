package service

import (
	"encoding/json"
	"time"

	"go-inventory-genie/internal/model"
	"go-inventory-genie/internal/report"
	"go-inventory-genie/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SharedReport is a publicly readable snapshot payload.
type SharedReport struct {
	Token       string          `json:"token"`
	GeneratedAt time.Time       `json:"generated_at"`
	Summary     json.RawMessage `json:"summary"`
}

type ReportService interface {
	Monthly(userID uuid.UUID, referenceDate time.Time) (report.Summary, error)
	Share(userID uuid.UUID, referenceDate time.Time) (*SharedReport, error)
	Shared(token string) (*SharedReport, error)
}

type reportService struct {
	batchRepo  repository.ProductBatchRepository
	saleRepo   repository.SaleRepository
	reportRepo repository.ReportSnapshotRepository
}

func NewReportService(
	batchRepo repository.ProductBatchRepository,
	saleRepo repository.SaleRepository,
	reportRepo repository.ReportSnapshotRepository,
) ReportService {
	return &reportService{
		batchRepo:  batchRepo,
		saleRepo:   saleRepo,
		reportRepo: reportRepo,
	}
}

func (s *reportService) Monthly(userID uuid.UUID, referenceDate time.Time) (report.Summary, error) {
	batches, err := s.batchRepo.FindAllByUser(userID, repository.BatchQuery{})
	if err != nil {
		return report.Summary{}, err
	}
	sales, err := s.saleRepo.FindAllByUser(userID)
	if err != nil {
		return report.Summary{}, err
	}
	return report.MonthlySummary(batches, sales, referenceDate), nil
}

// Share computes the current monthly summary and stores it under an
// opaque token, replacing the old browser-held share links with a
// server-side read-only view.
func (s *reportService) Share(userID uuid.UUID, referenceDate time.Time) (*SharedReport, error) {
	summary, err := s.Monthly(userID, referenceDate)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	snapshot := &model.ReportSnapshot{
		UserID:  userID,
		Token:   uuid.NewString(),
		Payload: datatypes.JSON(payload),
	}
	if err := s.reportRepo.Create(snapshot); err != nil {
		return nil, err
	}

	return &SharedReport{
		Token:       snapshot.Token,
		GeneratedAt: snapshot.CreatedAt,
		Summary:     payload,
	}, nil
}

func (s *reportService) Shared(token string) (*SharedReport, error) {
	snapshot, err := s.reportRepo.FindByToken(token)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &SharedReport{
		Token:       snapshot.Token,
		GeneratedAt: snapshot.CreatedAt,
		Summary:     json.RawMessage(snapshot.Payload),
	}, nil
}
