package report

import (
	"math"
	"time"

	"go-inventory-genie/internal/model"
)

// Default alert thresholds.
const (
	DefaultExpiryWindowDays  = 7
	DefaultLowStockThreshold = 5
)

// AlertItem annotates a batch for the alerts view. DaysToExpiry is
// negative for already-expired batches.
type AlertItem struct {
	Batch        model.ProductBatch `json:"batch"`
	DaysToExpiry int                `json:"days_to_expiry,omitempty"`
}

// Alerts buckets a user's batches into the three warning categories.
type Alerts struct {
	Expired      []AlertItem `json:"expired"`
	ExpiringSoon []AlertItem `json:"expiring_soon"`
	LowStock     []AlertItem `json:"low_stock"`
}

// BuildAlerts classifies batches against the given thresholds. A batch
// can appear in both an expiry bucket and the low-stock bucket.
func BuildAlerts(batches []model.ProductBatch, now time.Time, expiryWindowDays, lowStockThreshold int) Alerts {
	a := Alerts{
		Expired:      []AlertItem{},
		ExpiringSoon: []AlertItem{},
		LowStock:     []AlertItem{},
	}

	for _, b := range batches {
		switch {
		case b.IsExpired(now):
			a.Expired = append(a.Expired, AlertItem{Batch: b, DaysToExpiry: daysBetween(now, *b.ExpiryDate)})
		case b.ExpiresWithin(now, expiryWindowDays):
			a.ExpiringSoon = append(a.ExpiringSoon, AlertItem{Batch: b, DaysToExpiry: daysBetween(now, *b.ExpiryDate)})
		}

		if b.IsLowStock(lowStockThreshold) {
			a.LowStock = append(a.LowStock, AlertItem{Batch: b})
		}
	}

	return a
}

func daysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}
