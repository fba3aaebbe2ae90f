package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/daetec/vendas-cli/internal/core/domain"
	"github.com/daetec/vendas-cli/internal/core/ports/driven"
)

// Ensure SaleStore implements the interface.
var _ driven.SaleStore = (*SaleStore)(nil)

// storedSale keeps one sale with its rows, like the three SQLite tables.
type storedSale struct {
	sale     domain.Sale
	items    []domain.SaleItem
	payments []domain.Payment
}

// SaleStore is an in-memory implementation of driven.SaleStore. When
// wired to seller and product stores it rejects dangling references the
// way the SQLite foreign keys do, leaving nothing behind.
type SaleStore struct {
	mu     sync.RWMutex
	nextID int64
	sales  []storedSale

	sellers  *SellerStore
	products *ProductStore
}

// NewSaleStore creates an empty in-memory sale store.
func NewSaleStore(sellers *SellerStore, products *ProductStore) *SaleStore {
	return &SaleStore{sellers: sellers, products: products}
}

// Register stores the sale with its items and payments, all or nothing.
func (s *SaleStore) Register(_ context.Context, sale domain.Sale, items []domain.SaleItem, payments []domain.Payment) (domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Referential checks before anything is recorded.
	if s.sellers != nil && s.sellers.Get(sale.SellerID) == nil {
		return domain.Sale{}, fmt.Errorf("inserting sale: %w", domain.ErrNotFound)
	}
	if s.products != nil {
		for _, item := range items {
			if !s.products.Has(item.ProductCode) {
				return domain.Sale{}, fmt.Errorf("inserting sale item %s: %w", item.ProductCode, domain.ErrNotFound)
			}
		}
	}

	s.nextID++
	sale.ID = s.nextID
	if s.sellers != nil {
		if seller := s.sellers.Get(sale.SellerID); seller != nil {
			sale.SellerName = seller.Name
		}
	}

	s.sales = append(s.sales, storedSale{
		sale:     sale,
		items:    append([]domain.SaleItem(nil), items...),
		payments: append([]domain.Payment(nil), payments...),
	})
	return sale, nil
}

// List returns all sales, newest first.
func (s *SaleStore) List(_ context.Context) ([]domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sales := make([]domain.Sale, 0, len(s.sales))
	for i := len(s.sales) - 1; i >= 0; i-- {
		sales = append(sales, s.sales[i].sale)
	}
	return sales, nil
}

// Summary aggregates sales per seller, alphabetical by seller name.
func (s *SaleStore) Summary(_ context.Context) ([]domain.SellerSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type acc struct {
		name     string
		products map[string]int64
		methods  map[string]float64
		total    float64
	}
	bySeller := make(map[int64]*acc)

	for _, stored := range s.sales {
		a, ok := bySeller[stored.sale.SellerID]
		if !ok {
			a = &acc{
				name:     stored.sale.SellerName,
				products: make(map[string]int64),
				methods:  make(map[string]float64),
			}
			bySeller[stored.sale.SellerID] = a
		}
		a.total += stored.sale.Total
		for _, item := range stored.items {
			name := item.ProductCode
			if s.products != nil {
				if p, err := s.products.Get(context.Background(), item.ProductCode); err == nil {
					name = p.Name
				}
			}
			a.products[name] += int64(item.Quantity)
		}
		for _, payment := range stored.payments {
			a.methods[string(payment.Method)] += payment.Amount
		}
	}

	summaries := make([]domain.SellerSummary, 0, len(bySeller))
	for _, a := range bySeller {
		summary := domain.SellerSummary{SellerName: a.name, Total: a.total}
		for name, qty := range a.products {
			summary.Products = append(summary.Products, domain.ProductTotal{ProductName: name, Quantity: qty})
		}
		for method, amount := range a.methods {
			summary.Payments = append(summary.Payments, domain.MethodTotal{Method: method, Amount: amount})
		}
		sort.Slice(summary.Products, func(i, j int) bool {
			return summary.Products[i].ProductName < summary.Products[j].ProductName
		})
		sort.Slice(summary.Payments, func(i, j int) bool {
			return summary.Payments[i].Method < summary.Payments[j].Method
		})
		summaries = append(summaries, summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].SellerName < summaries[j].SellerName
	})
	return summaries, nil
}

// ClearHistory drops every sale with its items and payments.
func (s *SaleStore) ClearHistory(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = nil
	return nil
}

// HasSeller reports whether any sale belongs to the given seller.
func (s *SaleStore) HasSeller(sellerID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, stored := range s.sales {
		if stored.sale.SellerID == sellerID {
			return true
		}
	}
	return false
}

// HasProduct reports whether any sale item references the given code.
func (s *SaleStore) HasProduct(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, stored := range s.sales {
		for _, item := range stored.items {
			if item.ProductCode == code {
				return true
			}
		}
	}
	return false
}
