package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/daetec/vendas-cli/internal/core/domain"
	"github.com/daetec/vendas-cli/internal/core/ports/driven"
)

// timeLayout is the textual timestamp format used in the sales table.
const timeLayout = time.RFC3339

// saleStore implements driven.SaleStore.
type saleStore struct {
	store *Store
}

var _ driven.SaleStore = (*saleStore)(nil)

// Register writes the sale header, its items and its payments in one
// transaction. A failure at any step rolls everything back; a partial
// sale is never visible.
func (s *saleStore) Register(ctx context.Context, sale domain.Sale, items []domain.SaleItem, payments []domain.Payment) (domain.Sale, error) {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, `
		INSERT INTO sales (reference, seller_id, total, created_at)
		VALUES (?, ?, ?, ?)
	`, sale.Reference, sale.SellerID, sale.Total, sale.CreatedAt.Format(timeLayout))
	if err != nil {
		return domain.Sale{}, fmt.Errorf("inserting sale: %w", mapConstraintErr(err))
	}

	saleID, err := res.LastInsertId()
	if err != nil {
		return domain.Sale{}, fmt.Errorf("reading sale id: %w", err)
	}

	itemStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO sale_items (sale_id, product_code, quantity, unit_price)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("preparing item statement: %w", err)
	}
	defer itemStmt.Close()

	for _, item := range items {
		if _, err := itemStmt.ExecContext(ctx, saleID, item.ProductCode, item.Quantity, item.UnitPrice); err != nil {
			return domain.Sale{}, fmt.Errorf("inserting sale item %s: %w", item.ProductCode, mapConstraintErr(err))
		}
	}

	payStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO sale_payments (sale_id, method, amount)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("preparing payment statement: %w", err)
	}
	defer payStmt.Close()

	for _, payment := range payments {
		if _, err := payStmt.ExecContext(ctx, saleID, string(payment.Method), payment.Amount); err != nil {
			return domain.Sale{}, fmt.Errorf("inserting sale payment: %w", mapConstraintErr(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.Sale{}, fmt.Errorf("committing transaction: %w", err)
	}

	sale.ID = saleID
	return sale, nil
}

// List returns all sales joined with seller names, newest first.
func (s *saleStore) List(ctx context.Context) ([]domain.Sale, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT s.id, s.reference, s.seller_id, se.name, s.total, s.created_at
		FROM sales s
		JOIN sellers se ON se.id = s.seller_id
		ORDER BY s.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying sales: %w", err)
	}
	defer rows.Close()

	var sales []domain.Sale //nolint:prealloc // size unknown from query
	for rows.Next() {
		var sale domain.Sale
		var createdAt string
		if err := rows.Scan(&sale.ID, &sale.Reference, &sale.SellerID,
			&sale.SellerName, &sale.Total, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning sale: %w", err)
		}
		if t, err := time.Parse(timeLayout, createdAt); err == nil {
			sale.CreatedAt = t
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sales: %w", err)
	}

	return sales, nil
}

// Summary aggregates sales per seller for the report.
func (s *saleStore) Summary(ctx context.Context) ([]domain.SellerSummary, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT se.id, se.name, SUM(s.total)
		FROM sales s
		JOIN sellers se ON se.id = s.seller_id
		GROUP BY se.id, se.name
		ORDER BY se.name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying sale totals: %w", err)
	}
	defer rows.Close()

	type sellerRow struct {
		id      int64
		summary domain.SellerSummary
	}
	var sellers []sellerRow //nolint:prealloc // size unknown from query
	for rows.Next() {
		var r sellerRow
		if err := rows.Scan(&r.id, &r.summary.SellerName, &r.summary.Total); err != nil {
			return nil, fmt.Errorf("scanning sale totals: %w", err)
		}
		sellers = append(sellers, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sale totals: %w", err)
	}

	summaries := make([]domain.SellerSummary, 0, len(sellers))
	for _, r := range sellers {
		products, err := s.productTotals(ctx, r.id)
		if err != nil {
			return nil, err
		}
		payments, err := s.methodTotals(ctx, r.id)
		if err != nil {
			return nil, err
		}

		r.summary.Products = products
		r.summary.Payments = payments
		summaries = append(summaries, r.summary)
	}

	return summaries, nil
}

// productTotals sums sold quantities per product for one seller,
// ordered by product name.
func (s *saleStore) productTotals(ctx context.Context, sellerID int64) ([]domain.ProductTotal, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT p.name, SUM(i.quantity)
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		JOIN products p ON p.code = i.product_code
		WHERE s.seller_id = ?
		GROUP BY p.name
		ORDER BY p.name
	`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("querying product totals: %w", err)
	}
	defer rows.Close()

	var totals []domain.ProductTotal //nolint:prealloc // size unknown from query
	for rows.Next() {
		var t domain.ProductTotal
		if err := rows.Scan(&t.ProductName, &t.Quantity); err != nil {
			return nil, fmt.Errorf("scanning product total: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product totals: %w", err)
	}

	return totals, nil
}

// methodTotals sums payment amounts per method for one seller, ordered
// by method name.
func (s *saleStore) methodTotals(ctx context.Context, sellerID int64) ([]domain.MethodTotal, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT sp.method, SUM(sp.amount)
		FROM sale_payments sp
		JOIN sales s ON s.id = sp.sale_id
		WHERE s.seller_id = ?
		GROUP BY sp.method
		ORDER BY sp.method
	`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("querying payment totals: %w", err)
	}
	defer rows.Close()

	var totals []domain.MethodTotal //nolint:prealloc // size unknown from query
	for rows.Next() {
		var t domain.MethodTotal
		if err := rows.Scan(&t.Method, &t.Amount); err != nil {
			return nil, fmt.Errorf("scanning payment total: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payment totals: %w", err)
	}

	return totals, nil
}

// ClearHistory deletes payments, items and sale headers in dependency
// order, children first, in one transaction.
func (s *saleStore) ClearHistory(ctx context.Context) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, stmt := range []string{
		"DELETE FROM sale_payments",
		"DELETE FROM sale_items",
		"DELETE FROM sales",
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing history (%s): %w", stmt, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
