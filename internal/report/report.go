// Package report derives read-side summaries from a user's batches and
// sales. Everything here is a pure function over its inputs, safe to
// recompute on every request.
package report

import (
	"sort"
	"time"

	"go-inventory-genie/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Summary is the monthly sales report.
type Summary struct {
	Month              string                     `json:"month"` // YYYY-MM
	TotalRevenue       decimal.Decimal            `json:"total_revenue"`
	TotalItems         int                        `json:"total_items"`
	TotalTransactions  int                        `json:"total_transactions"`
	AverageTransaction decimal.Decimal            `json:"average_transaction"`
	DailyTotals        map[string]decimal.Decimal `json:"daily_totals"`    // dd/MM -> revenue
	CategoryTotals     map[string]decimal.Decimal `json:"category_totals"` // category -> revenue
	TopProducts        []ProductUnits             `json:"top_products"`
}

// ProductUnits is a units-sold ranking entry.
type ProductUnits struct {
	Name  string `json:"name"`
	Units int    `json:"units"`
}

const topProductsLimit = 5

// MonthlySummary aggregates the sales falling inside the calendar
// month containing referenceDate (inclusive bounds). Category revenue
// is attributed via the referenced batch; sales whose batch no longer
// exists fall into the "general" bucket.
func MonthlySummary(batches []model.ProductBatch, sales []model.Sale, referenceDate time.Time) Summary {
	start := time.Date(referenceDate.Year(), referenceDate.Month(), 1, 0, 0, 0, 0, referenceDate.Location())
	end := start.AddDate(0, 1, 0)

	categories := make(map[uuid.UUID]string, len(batches))
	for _, b := range batches {
		category := "general"
		if b.BaseProduct != nil && b.BaseProduct.Category != "" {
			category = b.BaseProduct.Category
		}
		categories[b.ID] = category
	}

	s := Summary{
		Month:              start.Format("2006-01"),
		TotalRevenue:       decimal.Zero,
		AverageTransaction: decimal.Zero,
		DailyTotals:        map[string]decimal.Decimal{},
		CategoryTotals:     map[string]decimal.Decimal{},
		TopProducts:        []ProductUnits{},
	}

	units := map[string]int{}
	for _, sale := range sales {
		if sale.Date.Before(start) || !sale.Date.Before(end) {
			continue
		}

		s.TotalRevenue = s.TotalRevenue.Add(sale.Total)
		s.TotalItems += sale.Quantity
		s.TotalTransactions++

		day := sale.Date.Format("02/01")
		s.DailyTotals[day] = s.DailyTotals[day].Add(sale.Total)

		category, ok := categories[sale.ProductID]
		if !ok {
			category = "general"
		}
		s.CategoryTotals[category] = s.CategoryTotals[category].Add(sale.Total)

		units[sale.ProductName] += sale.Quantity
	}

	if s.TotalTransactions > 0 {
		s.AverageTransaction = s.TotalRevenue.Div(decimal.NewFromInt(int64(s.TotalTransactions))).Round(2)
	}

	for name, n := range units {
		s.TopProducts = append(s.TopProducts, ProductUnits{Name: name, Units: n})
	}
	sort.Slice(s.TopProducts, func(i, j int) bool {
		if s.TopProducts[i].Units != s.TopProducts[j].Units {
			return s.TopProducts[i].Units > s.TopProducts[j].Units
		}
		return s.TopProducts[i].Name < s.TopProducts[j].Name
	})
	if len(s.TopProducts) > topProductsLimit {
		s.TopProducts = s.TopProducts[:topProductsLimit]
	}

	return s
}
