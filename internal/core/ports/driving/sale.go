package driving

import (
	"context"

	"github.com/daetec/vendas-cli/internal/core/domain"
)

// SaleService records sales and manages the sales history.
type SaleService interface {
	// Register validates the draft (including the payments-equal-total
	// invariant) and persists it atomically. Returns the stored sale
	// with its id, receipt reference and timestamp.
	Register(ctx context.Context, draft domain.SaleDraft) (domain.Sale, error)

	// List returns all sales, newest first.
	List(ctx context.Context) ([]domain.Sale, error)

	// ClearHistory removes every sale with its items and payments.
	ClearHistory(ctx context.Context) error
}
