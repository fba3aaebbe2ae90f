package driven

import (
	"context"

	"github.com/daetec/vendas-cli/internal/core/domain"
)

// ProductStore persists products.
type ProductStore interface {
	// Add inserts a product and returns it with its generated code.
	// The code counter is monotonic: codes of deleted products are
	// never reissued.
	Add(ctx context.Context, product domain.Product) (domain.Product, error)

	// Delete removes a product by canonical code. Returns
	// domain.ErrNotFound when no row matches and domain.ErrInUse when
	// historical sale items still reference the product.
	Delete(ctx context.Context, code string) error

	// Get retrieves a product by canonical code.
	Get(ctx context.Context, code string) (*domain.Product, error)

	// List returns the whole catalog joined with seller names, ordered
	// by seller name then code.
	List(ctx context.Context) ([]domain.ProductListing, error)

	// ListBySeller returns one seller's products ordered by code.
	ListBySeller(ctx context.Context, sellerID int64) ([]domain.Product, error)
}
