package driving

import (
	"context"

	"github.com/daetec/vendas-cli/internal/core/domain"
)

// SellerService manages the seller registry.
type SellerService interface {
	// Add registers a seller. The name is trimmed and title-cased
	// before storage; duplicates yield domain.ErrAlreadyExists.
	Add(ctx context.Context, name string) (domain.Seller, error)

	// Remove deletes a seller by id. Yields domain.ErrNotFound or, when
	// products or sales still reference the seller, domain.ErrInUse.
	Remove(ctx context.Context, id int64) error

	// List returns all sellers ordered by id.
	List(ctx context.Context) ([]domain.Seller, error)
}
