package service

import (
	"testing"
	"time"

	"go-inventory-genie/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sellableBatch(userID uuid.UUID, qty int, sellingPrice int64) *model.ProductBatch {
	batch := &model.ProductBatch{
		UserID:          userID,
		BaseProductName: "Aspirin",
		SKU:             "ASP-B1",
		Quantity:        qty,
		PurchasePrice:   decimal.NewFromInt(1),
		SellingPrice:    decimal.NewFromInt(sellingPrice),
	}
	batch.ID = uuid.New()
	return batch
}

func TestSettleSaleInsufficientStock(t *testing.T) {
	userID := uuid.New()
	batch := sellableBatch(userID, 5, 2)

	sale, err := settleSale(userID, batch, &SellRequest{ProductID: batch.ID, Quantity: 6}, time.Now())

	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Nil(t, sale)
}

func TestSettleSaleComputesTotal(t *testing.T) {
	userID := uuid.New()
	batch := sellableBatch(userID, 10, 2)
	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	sale, err := settleSale(userID, batch, &SellRequest{ProductID: batch.ID, Quantity: 3}, at)
	require.NoError(t, err)

	assert.Equal(t, userID, sale.UserID)
	assert.Equal(t, batch.ID, sale.ProductID)
	assert.Equal(t, "Aspirin", sale.ProductName)
	assert.Equal(t, 3, sale.Quantity)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(6)), "total %s", sale.Total)
	assert.Equal(t, at, sale.Date)
}

func TestSettleSaleDefaultsToSellingPrice(t *testing.T) {
	userID := uuid.New()
	batch := sellableBatch(userID, 10, 7)

	sale, err := settleSale(userID, batch, &SellRequest{ProductID: batch.ID, Quantity: 2}, time.Now())
	require.NoError(t, err)
	assert.True(t, sale.Price.Equal(decimal.NewFromInt(7)))
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(14)))

	zero := decimal.Zero
	sale, err = settleSale(userID, batch, &SellRequest{ProductID: batch.ID, Quantity: 2, Price: &zero}, time.Now())
	require.NoError(t, err)
	assert.True(t, sale.Price.Equal(decimal.NewFromInt(7)))
}

func TestSettleSaleHonorsExplicitPrice(t *testing.T) {
	userID := uuid.New()
	batch := sellableBatch(userID, 10, 7)
	price := decimal.NewFromInt(9)

	sale, err := settleSale(userID, batch, &SellRequest{ProductID: batch.ID, Quantity: 1, Price: &price}, time.Now())
	require.NoError(t, err)
	assert.True(t, sale.Price.Equal(price))
	assert.True(t, sale.Total.Equal(price))
}

func TestSettleSaleExactStockAllowed(t *testing.T) {
	userID := uuid.New()
	batch := sellableBatch(userID, 4, 2)

	sale, err := settleSale(userID, batch, &SellRequest{ProductID: batch.ID, Quantity: 4}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 4, sale.Quantity)
}
