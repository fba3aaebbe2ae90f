package domain

import (
	"fmt"
	"math"
	"time"
)

// PaymentTolerance is the maximum difference allowed between the sum of a
// sale's payments and the sum of its line items. Covers float rounding of
// half-cent splits.
const PaymentTolerance = 0.005

// PaymentMethod identifies how (part of) a sale was paid.
type PaymentMethod string

// Accepted payment methods. Stored as open strings in the schema; the
// service layer only admits this set.
const (
	PaymentCash   PaymentMethod = "cash"
	PaymentPix    PaymentMethod = "pix"
	PaymentDebit  PaymentMethod = "debit"
	PaymentCredit PaymentMethod = "credit"
)

// PaymentMethods lists the accepted methods in display order.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentPix, PaymentDebit, PaymentCredit}

// Valid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentPix, PaymentDebit, PaymentCredit:
		return true
	}
	return false
}

// Sale is a persisted sale header. Total always equals the sum of the
// line items captured with it; sales are never updated after commit.
type Sale struct {
	ID         int64
	Reference  string
	SellerID   int64
	SellerName string
	Total      float64
	CreatedAt  time.Time
}

// SaleItem is one line of a sale. UnitPrice is the price at the time of
// sale, deliberately decoupled from the product's current price.
type SaleItem struct {
	ProductCode string
	Quantity    int
	UnitPrice   float64
}

// Payment is one (method, amount) entry of a sale. A sale may carry
// several payments (split payment).
type Payment struct {
	Method PaymentMethod
	Amount float64
}

// SaleDraft is a sale as assembled at the counter, before persistence.
type SaleDraft struct {
	SellerID int64
	Items    []SaleItem
	Payments []Payment
}

// ItemsTotal returns the sum of quantity times unit price over all items.
func (d SaleDraft) ItemsTotal() float64 {
	var total float64
	for _, it := range d.Items {
		total += float64(it.Quantity) * it.UnitPrice
	}
	return total
}

// PaymentsTotal returns the sum of all payment amounts.
func (d SaleDraft) PaymentsTotal() float64 {
	var total float64
	for _, p := range d.Payments {
		total += p.Amount
	}
	return total
}

// Validate checks the draft against the sale invariants: a known seller
// reference, at least one item and one payment, positive quantities,
// prices and amounts, known payment methods, and payments summing to the
// item total within PaymentTolerance.
func (d SaleDraft) Validate() error {
	if d.SellerID <= 0 {
		return fmt.Errorf("%w: seller id must be positive", ErrInvalidInput)
	}
	if len(d.Items) == 0 {
		return fmt.Errorf("%w: sale has no items", ErrInvalidInput)
	}
	if len(d.Payments) == 0 {
		return fmt.Errorf("%w: sale has no payments", ErrInvalidInput)
	}
	for _, it := range d.Items {
		if it.ProductCode == "" {
			return fmt.Errorf("%w: item without product code", ErrInvalidInput)
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be positive for %s", ErrInvalidInput, it.ProductCode)
		}
		if it.UnitPrice <= 0 {
			return fmt.Errorf("%w: unit price must be positive for %s", ErrInvalidInput, it.ProductCode)
		}
	}
	for _, p := range d.Payments {
		if !p.Method.Valid() {
			return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, p.Method)
		}
		if p.Amount <= 0 {
			return fmt.Errorf("%w: payment amount must be positive", ErrInvalidInput)
		}
	}
	if math.Abs(d.ItemsTotal()-d.PaymentsTotal()) > PaymentTolerance {
		return fmt.Errorf("%w: items %.2f, payments %.2f",
			ErrPaymentMismatch, d.ItemsTotal(), d.PaymentsTotal())
	}
	return nil
}
