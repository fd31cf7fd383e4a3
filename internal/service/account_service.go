package service

import (
	"log"

	"go-inventory-genie/internal/repository"

	"github.com/google/uuid"
)

// DeletedAccount reports what a cascading account deletion removed.
type DeletedAccount struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AccountService interface {
	DeleteAccount(userID uuid.UUID) (*DeletedAccount, error)
}

type accountService struct {
	userRepo   repository.UserRepository
	baseRepo   repository.BaseProductRepository
	batchRepo  repository.ProductBatchRepository
	legacyRepo repository.LegacyProductRepository
	saleRepo   repository.SaleRepository
	reportRepo repository.ReportSnapshotRepository
}

func NewAccountService(
	userRepo repository.UserRepository,
	baseRepo repository.BaseProductRepository,
	batchRepo repository.ProductBatchRepository,
	legacyRepo repository.LegacyProductRepository,
	saleRepo repository.SaleRepository,
	reportRepo repository.ReportSnapshotRepository,
) AccountService {
	return &accountService{
		userRepo:   userRepo,
		baseRepo:   baseRepo,
		batchRepo:  batchRepo,
		legacyRepo: legacyRepo,
		saleRepo:   saleRepo,
		reportRepo: reportRepo,
	}
}

// DeleteAccount removes everything the user owns, children before the
// parent, so a crash mid-sequence never strands a child record behind
// a deleted user. Every step is idempotent; a failing step is logged
// and the sequence continues so a retry can finish the job.
func (s *accountService) DeleteAccount(userID uuid.UUID) (*DeletedAccount, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	steps := []struct {
		name string
		run  func(uuid.UUID) (int64, error)
	}{
		{"sales", s.saleRepo.DeleteByUser},
		{"product batches", s.batchRepo.DeleteByUser},
		{"base products", s.baseRepo.DeleteByUser},
		{"legacy products", s.legacyRepo.DeleteByUser},
		{"report snapshots", s.reportRepo.DeleteByUser},
	}
	for _, step := range steps {
		if _, err := step.run(userID); err != nil {
			log.Printf("account delete: failed to remove %s for user %s: %v", step.name, userID, err)
		}
	}

	if err := s.userRepo.Delete(userID); err != nil {
		return nil, err
	}

	return &DeletedAccount{Username: user.Username, Email: user.Email}, nil
}
