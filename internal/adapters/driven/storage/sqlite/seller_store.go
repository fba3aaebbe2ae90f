package sqlite

import (
	"context"
	"fmt"

	"github.com/daetec/vendas-cli/internal/core/domain"
	"github.com/daetec/vendas-cli/internal/core/ports/driven"
)

// sellerStore implements driven.SellerStore.
type sellerStore struct {
	store *Store
}

var _ driven.SellerStore = (*sellerStore)(nil)

// Add inserts a seller and returns it with its assigned id.
func (s *sellerStore) Add(ctx context.Context, name string) (domain.Seller, error) {
	res, err := s.store.db.ExecContext(ctx, "INSERT INTO sellers (name) VALUES (?)", name)
	if err != nil {
		return domain.Seller{}, fmt.Errorf("inserting seller: %w", mapConstraintErr(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Seller{}, fmt.Errorf("reading seller id: %w", err)
	}

	return domain.Seller{ID: id, Name: name}, nil
}

// Delete removes a seller. Zero affected rows means the id does not
// exist; a foreign key violation means products or sales still point at
// the seller.
func (s *sellerStore) Delete(ctx context.Context, id int64) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM sellers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting seller: %w", mapConstraintErr(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns all sellers ordered by id.
func (s *sellerStore) List(ctx context.Context) ([]domain.Seller, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT id, name FROM sellers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying sellers: %w", err)
	}
	defer rows.Close()

	var sellers []domain.Seller //nolint:prealloc // size unknown from query
	for rows.Next() {
		var seller domain.Seller
		if err := rows.Scan(&seller.ID, &seller.Name); err != nil {
			return nil, fmt.Errorf("scanning seller: %w", err)
		}
		sellers = append(sellers, seller)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sellers: %w", err)
	}

	return sellers, nil
}
