package domain

import (
	"fmt"
	"strings"
)

// ProductCodePrefix is the fixed prefix of every generated product code.
const ProductCodePrefix = "PROD-"

// Product is a sellable item. The code is assigned at creation from a
// monotonic sequence and never changes afterwards.
type Product struct {
	Code     string
	Name     string
	Price    float64
	SellerID int64
}

// ProductListing is a product joined with its owning seller's name,
// as returned by catalog-wide listings.
type ProductListing struct {
	SellerName string
	Code       string
	Name       string
	Price      float64
}

// FormatProductCode renders a sequence number as a product code,
// e.g. 7 -> "PROD-0007". Numbers beyond 9999 widen naturally.
func FormatProductCode(seq int64) string {
	return fmt.Sprintf("%s%04d", ProductCodePrefix, seq)
}

// NormalizeProductCode maps operator input to the canonical code form:
// trimmed and upper-cased, so "prod-0001 " matches "PROD-0001".
func NormalizeProductCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
