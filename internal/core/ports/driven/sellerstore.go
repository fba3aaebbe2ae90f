package driven

import (
	"context"

	"github.com/daetec/vendas-cli/internal/core/domain"
)

// SellerStore persists sellers.
type SellerStore interface {
	// Add inserts a seller with the given (already normalized) name and
	// returns it with its assigned id. Returns domain.ErrAlreadyExists
	// when the name is taken.
	Add(ctx context.Context, name string) (domain.Seller, error)

	// Delete removes a seller by id. Returns domain.ErrNotFound when no
	// row matches and domain.ErrInUse when products or sales still
	// reference the seller.
	Delete(ctx context.Context, id int64) error

	// List returns all sellers ordered by id.
	List(ctx context.Context) ([]domain.Seller, error)
}
