package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// skuPrefix builds the product part of a SKU: the first three
// characters of the name, upper-cased, with anything outside A-Z
// replaced by 'X'.
func skuPrefix(name string) string {
	runes := []rune(strings.ToUpper(name))
	if len(runes) > 3 {
		runes = runes[:3]
	}
	var b strings.Builder
	for _, r := range runes {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		} else {
			b.WriteRune('X')
		}
	}
	return b.String()
}

// skuSuffix prefers the batch number (first six characters,
// upper-cased); without one it falls back to the last six digits of
// the millisecond timestamp.
func skuSuffix(batchNumber string, now time.Time) string {
	if batchNumber != "" {
		if len(batchNumber) > 6 {
			batchNumber = batchNumber[:6]
		}
		return strings.ToUpper(batchNumber)
	}
	ts := strconv.FormatInt(now.UnixMilli(), 10)
	return ts[len(ts)-6:]
}

// generateSKU produces a globally unique SKU, appending -1, -2, ...
// until the existence check clears.
func generateSKU(name, batchNumber string, now time.Time, exists func(sku string) (bool, error)) (string, error) {
	base := fmt.Sprintf("%s-%s", skuPrefix(name), skuSuffix(batchNumber, now))

	sku := base
	for counter := 1; ; counter++ {
		taken, err := exists(sku)
		if err != nil {
			return "", err
		}
		if !taken {
			return sku, nil
		}
		sku = fmt.Sprintf("%s-%d", base, counter)
	}
}
