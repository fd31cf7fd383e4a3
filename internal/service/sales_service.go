package service

import (
	"time"

	"go-inventory-genie/internal/model"
	"go-inventory-genie/internal/repository"
	"go-inventory-genie/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SellRequest records a sale against a product batch. Price is
// optional; when omitted the batch's selling price is used.
type SellRequest struct {
	ProductID uuid.UUID        `json:"product_id" validate:"uuid_required"`
	Quantity  int              `json:"quantity" validate:"required,gt=0"`
	Price     *decimal.Decimal `json:"price"`
}

type SalesService interface {
	Sell(userID uuid.UUID, req *SellRequest) (*model.Sale, error)
	ListSales(userID uuid.UUID) ([]model.Sale, error)
	ClearSales(userID uuid.UUID) (int64, error)
}

type salesService struct {
	saleRepo  repository.SaleRepository
	batchRepo repository.ProductBatchRepository
	db        *gorm.DB
	hub       *ws.Hub
}

func NewSalesService(saleRepo repository.SaleRepository, batchRepo repository.ProductBatchRepository, db *gorm.DB, hub *ws.Hub) SalesService {
	return &salesService{
		saleRepo:  saleRepo,
		batchRepo: batchRepo,
		db:        db,
		hub:       hub,
	}
}

// Sell decrements stock and writes the ledger entry as one unit. The
// stock check and decrement run under a row lock, so a sale exceeding
// the available quantity leaves no trace.
func (s *salesService) Sell(userID uuid.UUID, req *SellRequest) (*model.Sale, error) {
	if err := structValidationError(req); err != nil {
		return nil, err
	}
	if req.Price != nil && req.Price.IsNegative() {
		return nil, validationErrorf("price must not be negative")
	}

	var sale *model.Sale
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var batch model.ProductBatch
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&batch, "id = ? AND user_id = ?", req.ProductID, userID).Error; err != nil {
			return notFoundOr(err)
		}

		settled, err := settleSale(userID, &batch, req, time.Now())
		if err != nil {
			return err
		}

		if err := s.batchRepo.UpdateQuantity(tx, batch.ID, batch.Quantity-req.Quantity); err != nil {
			return err
		}

		sale = settled
		return s.saleRepo.Create(tx, sale)
	})
	if err != nil {
		return nil, err
	}

	go s.hub.Publish(userID, ws.Event{Type: "stock_update", Action: "sale_recorded", Payload: sale})
	return sale, nil
}

// settleSale checks the requested quantity against the locked batch
// and builds the ledger entry. Price falls back to the batch's selling
// price when the request omits it.
func settleSale(userID uuid.UUID, batch *model.ProductBatch, req *SellRequest, at time.Time) (*model.Sale, error) {
	if batch.Quantity < req.Quantity {
		return nil, ErrInsufficientStock
	}

	price := batch.SellingPrice
	if req.Price != nil && !req.Price.IsZero() {
		price = *req.Price
	}

	return &model.Sale{
		UserID:      userID,
		ProductID:   batch.ID,
		ProductName: batch.BaseProductName,
		Quantity:    req.Quantity,
		Price:       price,
		Total:       price.Mul(decimal.NewFromInt(int64(req.Quantity))),
		Date:        at,
	}, nil
}

func (s *salesService) ListSales(userID uuid.UUID) ([]model.Sale, error) {
	return s.saleRepo.FindAllByUser(userID)
}

func (s *salesService) ClearSales(userID uuid.UUID) (int64, error) {
	return s.saleRepo.DeleteByUser(userID)
}
