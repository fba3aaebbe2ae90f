package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/daetec/vendas-cli/internal/core/domain"
	"github.com/daetec/vendas-cli/internal/core/ports/driven"
)

// productStore implements driven.ProductStore.
type productStore struct {
	store *Store
}

var _ driven.ProductStore = (*productStore)(nil)

// Add inserts a product and assigns its code from the row's
// autoincrement id, all within one transaction. The id sequence is
// monotonic and never reused, which keeps codes gap-free under
// sequential use and collision-free always.
func (s *productStore) Add(ctx context.Context, product domain.Product) (domain.Product, error) {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Product{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, `
		INSERT INTO products (code, name, price, seller_id)
		VALUES ('', ?, ?, ?)
	`, product.Name, product.Price, product.SellerID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("inserting product: %w", mapConstraintErr(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Product{}, fmt.Errorf("reading product id: %w", err)
	}

	product.Code = domain.FormatProductCode(id)
	if _, err := tx.ExecContext(ctx,
		"UPDATE products SET code = ? WHERE id = ?", product.Code, id); err != nil {
		return domain.Product{}, fmt.Errorf("assigning product code: %w", mapConstraintErr(err))
	}

	if err := tx.Commit(); err != nil {
		return domain.Product{}, fmt.Errorf("committing transaction: %w", err)
	}
	return product, nil
}

// Delete removes a product by code.
func (s *productStore) Delete(ctx context.Context, code string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM products WHERE code = ?", code)
	if err != nil {
		return fmt.Errorf("deleting product: %w", mapConstraintErr(err))
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

// Get retrieves a product by code.
func (s *productStore) Get(ctx context.Context, code string) (*domain.Product, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT code, name, price, seller_id FROM products WHERE code = ?
	`, code)

	var product domain.Product
	var sellerID sql.NullInt64
	if err := row.Scan(&product.Code, &product.Name, &product.Price, &sellerID); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning product: %w", err)
	}
	product.SellerID = sellerID.Int64

	return &product, nil
}

// List returns the whole catalog joined with seller names, ordered by
// seller name then code. Products whose seller reference is null sort
// under an empty seller name.
func (s *productStore) List(ctx context.Context) ([]domain.ProductListing, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT COALESCE(se.name, ''), p.code, p.name, p.price
		FROM products p
		LEFT JOIN sellers se ON se.id = p.seller_id
		ORDER BY se.name, p.code
	`)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var listings []domain.ProductListing //nolint:prealloc // size unknown from query
	for rows.Next() {
		var l domain.ProductListing
		if err := rows.Scan(&l.SellerName, &l.Code, &l.Name, &l.Price); err != nil {
			return nil, fmt.Errorf("scanning product listing: %w", err)
		}
		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return listings, nil
}

// ListBySeller returns one seller's products ordered by code.
func (s *productStore) ListBySeller(ctx context.Context, sellerID int64) ([]domain.Product, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT code, name, price, seller_id
		FROM products WHERE seller_id = ?
		ORDER BY code
	`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("querying seller products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product //nolint:prealloc // size unknown from query
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.Code, &product.Name, &product.Price, &product.SellerID); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating seller products: %w", err)
	}

	return products, nil
}
