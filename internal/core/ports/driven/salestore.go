package driven

import (
	"context"

	"github.com/daetec/vendas-cli/internal/core/domain"
)

// SaleStore persists sales and their line items and payments.
type SaleStore interface {
	// Register writes the sale header, its items and its payments as a
	// single transaction: either all rows commit or none do. Returns
	// the sale with its assigned id.
	Register(ctx context.Context, sale domain.Sale, items []domain.SaleItem, payments []domain.Payment) (domain.Sale, error)

	// List returns all sales joined with seller names, newest first.
	List(ctx context.Context) ([]domain.Sale, error)

	// Summary aggregates sales per seller for the report: sellers with
	// at least one sale, alphabetical, each with product quantity and
	// payment method totals.
	Summary(ctx context.Context) ([]domain.SellerSummary, error)

	// ClearHistory deletes all payments, items and sale headers in one
	// transaction. Sellers and products are untouched.
	ClearHistory(ctx context.Context) error
}
