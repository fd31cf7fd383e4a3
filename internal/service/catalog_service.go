package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-inventory-genie/internal/model"
	"go-inventory-genie/internal/report"
	"go-inventory-genie/internal/repository"
	"go-inventory-genie/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Batch status filters for ListBatches.
const (
	StatusExpired  = "expired"
	StatusExpiring = "expiring"
	StatusLowStock = "low-stock"
)

// CreateBatchRequest carries both the base-product fields (name,
// category, brand, description) and the batch fields. The base product
// is found or created by its (user, name, brand) identity.
type CreateBatchRequest struct {
	Name              string          `json:"name" validate:"required"`
	Category          string          `json:"category"`
	Brand             string          `json:"brand"`
	Description       string          `json:"description"`
	BatchNumber       string          `json:"batch_number"`
	Quantity          int             `json:"quantity" validate:"gte=0"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SellingPrice      decimal.Decimal `json:"selling_price"`
	ExpiryDate        string          `json:"expiry_date"`
	ManufacturingDate string          `json:"manufacturing_date"`
	Supplier          string          `json:"supplier"`
	Location          string          `json:"location"`
}

// UpdateBatchRequest updates batch-level fields only; base-product
// fields are immutable through this path. Nil means "leave unchanged".
type UpdateBatchRequest struct {
	Quantity          *int             `json:"quantity"`
	PurchasePrice     *decimal.Decimal `json:"purchase_price"`
	SellingPrice      *decimal.Decimal `json:"selling_price"`
	ExpiryDate        *string          `json:"expiry_date"`
	ManufacturingDate *string          `json:"manufacturing_date"`
	BatchNumber       *string          `json:"batch_number"`
	Supplier          *string          `json:"supplier"`
	Location          *string          `json:"location"`
}

// ListOptions narrows ListBatches. Zero values mean no filtering.
type ListOptions struct {
	Category          string
	Status            string
	ExpiryWindowDays  int
	LowStockThreshold int
}

// GroupedBatches is one entry of the grouped catalog view.
type GroupedBatches struct {
	BaseProduct *model.BaseProduct   `json:"base_product"`
	Batches     []model.ProductBatch `json:"batches"`
}

type CatalogService interface {
	ListBatches(userID uuid.UUID, opts ListOptions) ([]model.ProductBatch, error)
	CreateBatch(userID uuid.UUID, req *CreateBatchRequest) (*model.ProductBatch, error)
	UpdateBatch(userID, batchID uuid.UUID, req *UpdateBatchRequest) (*model.ProductBatch, error)
	AdjustQuantity(userID, batchID uuid.UUID, delta int) (*model.ProductBatch, error)
	DeleteBatch(userID, batchID uuid.UUID) error
	GroupedByBaseProduct(userID uuid.UUID) (map[string]*GroupedBatches, error)
	FindBatchesByName(userID uuid.UUID, name string) ([]model.ProductBatch, error)
	Alerts(userID uuid.UUID, expiryWindowDays, lowStockThreshold int) (report.Alerts, error)
	LegacyProducts(userID uuid.UUID) ([]model.LegacyProduct, error)
}

type catalogService struct {
	baseRepo   repository.BaseProductRepository
	batchRepo  repository.ProductBatchRepository
	legacyRepo repository.LegacyProductRepository
	hub        *ws.Hub
}

func NewCatalogService(
	baseRepo repository.BaseProductRepository,
	batchRepo repository.ProductBatchRepository,
	legacyRepo repository.LegacyProductRepository,
	hub *ws.Hub,
) CatalogService {
	return &catalogService{
		baseRepo:   baseRepo,
		batchRepo:  batchRepo,
		legacyRepo: legacyRepo,
		hub:        hub,
	}
}

func (s *catalogService) ListBatches(userID uuid.UUID, opts ListOptions) ([]model.ProductBatch, error) {
	batches, err := s.batchRepo.FindAllByUser(userID, repository.BatchQuery{Category: opts.Category})
	if err != nil {
		return nil, err
	}
	if opts.Status == "" {
		return batches, nil
	}

	window := opts.ExpiryWindowDays
	if window <= 0 {
		window = report.DefaultExpiryWindowDays
	}
	threshold := opts.LowStockThreshold
	if threshold <= 0 {
		threshold = report.DefaultLowStockThreshold
	}

	now := time.Now()
	filtered := make([]model.ProductBatch, 0, len(batches))
	for _, b := range batches {
		switch opts.Status {
		case StatusExpired:
			if b.IsExpired(now) {
				filtered = append(filtered, b)
			}
		case StatusExpiring:
			if b.ExpiresWithin(now, window) {
				filtered = append(filtered, b)
			}
		case StatusLowStock:
			if b.IsLowStock(threshold) {
				filtered = append(filtered, b)
			}
		default:
			return nil, validationErrorf("unknown status filter '%s'", opts.Status)
		}
	}
	return filtered, nil
}

func (s *catalogService) CreateBatch(userID uuid.UUID, req *CreateBatchRequest) (*model.ProductBatch, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Brand = strings.TrimSpace(req.Brand)
	if err := structValidationError(req); err != nil {
		return nil, err
	}
	if req.PurchasePrice.IsNegative() || req.SellingPrice.IsNegative() {
		return nil, validationErrorf("prices must not be negative")
	}

	expiry, err := parseDate(req.ExpiryDate)
	if err != nil {
		return nil, validationErrorf("invalid expiry_date: %s", req.ExpiryDate)
	}
	manufactured, err := parseDate(req.ManufacturingDate)
	if err != nil {
		return nil, validationErrorf("invalid manufacturing_date: %s", req.ManufacturingDate)
	}

	base, err := s.findOrCreateBaseProduct(userID, req)
	if err != nil {
		return nil, err
	}

	sku, err := generateSKU(req.Name, strings.TrimSpace(req.BatchNumber), time.Now(), s.batchRepo.SKUExists)
	if err != nil {
		return nil, err
	}

	batch := &model.ProductBatch{
		UserID:            userID,
		SKU:               sku,
		BaseProductID:     base.ID,
		BaseProduct:       base,
		BaseProductName:   req.Name,
		BatchNumber:       strings.TrimSpace(req.BatchNumber),
		Quantity:          req.Quantity,
		PurchasePrice:     req.PurchasePrice,
		SellingPrice:      req.SellingPrice,
		ExpiryDate:        expiry,
		ManufacturingDate: manufactured,
		Supplier:          strings.TrimSpace(req.Supplier),
		Location:          strings.TrimSpace(req.Location),
	}
	if err := s.batchRepo.Create(batch); err != nil {
		return nil, err
	}

	s.publish("batch_created", userID, batch)
	return batch, nil
}

func (s *catalogService) findOrCreateBaseProduct(userID uuid.UUID, req *CreateBatchRequest) (*model.BaseProduct, error) {
	base, err := s.baseRepo.FindByIdentity(userID, req.Name, req.Brand)
	if err == nil {
		return base, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "general"
	}
	base = &model.BaseProduct{
		UserID:      userID,
		Name:        req.Name,
		Brand:       req.Brand,
		Category:    category,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.baseRepo.Create(base); err != nil {
		return nil, err
	}
	return base, nil
}

func (s *catalogService) UpdateBatch(userID, batchID uuid.UUID, req *UpdateBatchRequest) (*model.ProductBatch, error) {
	batch, err := s.batchRepo.FindByIDForUser(userID, batchID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, validationErrorf("quantity must not be negative")
		}
		batch.Quantity = *req.Quantity
	}
	if req.PurchasePrice != nil {
		batch.PurchasePrice = *req.PurchasePrice
	}
	if req.SellingPrice != nil {
		batch.SellingPrice = *req.SellingPrice
	}
	if req.ExpiryDate != nil {
		d, err := parseDate(*req.ExpiryDate)
		if err != nil {
			return nil, validationErrorf("invalid expiry_date: %s", *req.ExpiryDate)
		}
		batch.ExpiryDate = d
	}
	if req.ManufacturingDate != nil {
		d, err := parseDate(*req.ManufacturingDate)
		if err != nil {
			return nil, validationErrorf("invalid manufacturing_date: %s", *req.ManufacturingDate)
		}
		batch.ManufacturingDate = d
	}
	if req.BatchNumber != nil {
		batch.BatchNumber = strings.TrimSpace(*req.BatchNumber)
	}
	if req.Supplier != nil {
		batch.Supplier = strings.TrimSpace(*req.Supplier)
	}
	if req.Location != nil {
		batch.Location = strings.TrimSpace(*req.Location)
	}

	if err := s.batchRepo.Save(batch); err != nil {
		return nil, err
	}

	s.publish("batch_updated", userID, batch)
	return batch, nil
}

func (s *catalogService) AdjustQuantity(userID, batchID uuid.UUID, delta int) (*model.ProductBatch, error) {
	batch, err := s.batchRepo.FindByIDForUser(userID, batchID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	newQuantity := batch.Quantity + delta
	if newQuantity < 0 {
		return nil, ErrInsufficientStock
	}

	batch.Quantity = newQuantity
	if err := s.batchRepo.Save(batch); err != nil {
		return nil, err
	}

	s.publish("batch_updated", userID, batch)
	return batch, nil
}

func (s *catalogService) DeleteBatch(userID, batchID uuid.UUID) error {
	affected, err := s.batchRepo.DeleteForUser(userID, batchID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	s.publish("batch_deleted", userID, map[string]interface{}{"id": batchID})
	return nil
}

// GroupedByBaseProduct keys every batch under "name-brand" ("No Brand"
// when the base product carries none).
func (s *catalogService) GroupedByBaseProduct(userID uuid.UUID) (map[string]*GroupedBatches, error) {
	batches, err := s.batchRepo.FindAllByUser(userID, repository.BatchQuery{})
	if err != nil {
		return nil, err
	}

	grouped := make(map[string]*GroupedBatches)
	for _, batch := range batches {
		brand := "No Brand"
		if batch.BaseProduct != nil && batch.BaseProduct.Brand != "" {
			brand = batch.BaseProduct.Brand
		}
		key := fmt.Sprintf("%s-%s", batch.BaseProductName, brand)
		if grouped[key] == nil {
			grouped[key] = &GroupedBatches{BaseProduct: batch.BaseProduct}
		}
		grouped[key].Batches = append(grouped[key].Batches, batch)
	}
	return grouped, nil
}

func (s *catalogService) FindBatchesByName(userID uuid.UUID, name string) ([]model.ProductBatch, error) {
	return s.batchRepo.FindAllByUser(userID, repository.BatchQuery{Name: strings.TrimSpace(name)})
}

func (s *catalogService) Alerts(userID uuid.UUID, expiryWindowDays, lowStockThreshold int) (report.Alerts, error) {
	if expiryWindowDays <= 0 {
		expiryWindowDays = report.DefaultExpiryWindowDays
	}
	if lowStockThreshold <= 0 {
		lowStockThreshold = report.DefaultLowStockThreshold
	}

	batches, err := s.batchRepo.FindAllByUser(userID, repository.BatchQuery{})
	if err != nil {
		return report.Alerts{}, err
	}
	return report.BuildAlerts(batches, time.Now(), expiryWindowDays, lowStockThreshold), nil
}

func (s *catalogService) LegacyProducts(userID uuid.UUID) ([]model.LegacyProduct, error) {
	return s.legacyRepo.FindAllByUser(userID)
}

func (s *catalogService) publish(action string, userID uuid.UUID, payload interface{}) {
	go s.hub.Publish(userID, ws.Event{Type: "stock_update", Action: action, Payload: payload})
}

// notFoundOr collapses a missing row into the tenant-safe ErrNotFound.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// parseDate accepts an RFC3339 timestamp or a bare YYYY-MM-DD date.
// Empty input yields nil.
func parseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unparseable date %q", value)
}
