package driving

import (
	"context"

	"github.com/daetec/vendas-cli/internal/core/domain"
)

// ProductService manages the product catalog.
type ProductService interface {
	// Add registers a product and returns it with its generated code.
	Add(ctx context.Context, name string, price float64, sellerID int64) (domain.Product, error)

	// Remove deletes a product by code (case-insensitive).
	Remove(ctx context.Context, code string) error

	// Get retrieves a product by code (case-insensitive).
	Get(ctx context.Context, code string) (*domain.Product, error)

	// List returns the whole catalog joined with seller names.
	List(ctx context.Context) ([]domain.ProductListing, error)

	// ListBySeller returns one seller's products.
	ListBySeller(ctx context.Context, sellerID int64) ([]domain.Product, error)
}
