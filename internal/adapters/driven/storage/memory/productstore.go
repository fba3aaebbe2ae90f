package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/daetec/vendas-cli/internal/core/domain"
	"github.com/daetec/vendas-cli/internal/core/ports/driven"
)

// Ensure ProductStore implements the interface.
var _ driven.ProductStore = (*ProductStore)(nil)

// ProductStore is an in-memory implementation of driven.ProductStore.
type ProductStore struct {
	mu       sync.RWMutex
	nextSeq  int64
	products map[string]domain.Product

	sellers *SellerStore

	// referenced reports whether sale items still point at a product.
	referenced func(code string) bool
}

// NewProductStore creates an empty in-memory product store. The seller
// store, when given, supplies seller names for listings.
func NewProductStore(sellers *SellerStore) *ProductStore {
	return &ProductStore{
		products: make(map[string]domain.Product),
		sellers:  sellers,
	}
}

// SetReferenceCheck installs the referential check used by Delete.
func (s *ProductStore) SetReferenceCheck(check func(code string) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.referenced = check
}

// Add inserts a product with a code from the monotonic sequence.
func (s *ProductStore) Add(_ context.Context, product domain.Product) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSeq++
	product.Code = domain.FormatProductCode(s.nextSeq)
	s.products[product.Code] = product
	return product, nil
}

// Delete removes a product unless sale items still reference it.
func (s *ProductStore) Delete(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[code]; !ok {
		return domain.ErrNotFound
	}
	if s.referenced != nil && s.referenced(code) {
		return domain.ErrInUse
	}
	delete(s.products, code)
	return nil
}

// Get retrieves a product by code.
func (s *ProductStore) Get(_ context.Context, code string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &product, nil
}

// List returns the catalog joined with seller names, ordered by seller
// name then code.
func (s *ProductStore) List(_ context.Context) ([]domain.ProductListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listings := make([]domain.ProductListing, 0, len(s.products))
	for _, product := range s.products {
		var sellerName string
		if s.sellers != nil {
			if seller := s.sellers.Get(product.SellerID); seller != nil {
				sellerName = seller.Name
			}
		}
		listings = append(listings, domain.ProductListing{
			SellerName: sellerName,
			Code:       product.Code,
			Name:       product.Name,
			Price:      product.Price,
		})
	}
	sort.Slice(listings, func(i, j int) bool {
		if listings[i].SellerName != listings[j].SellerName {
			return listings[i].SellerName < listings[j].SellerName
		}
		return listings[i].Code < listings[j].Code
	})
	return listings, nil
}

// ListBySeller returns one seller's products ordered by code.
func (s *ProductStore) ListBySeller(_ context.Context, sellerID int64) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var products []domain.Product
	for _, product := range s.products {
		if product.SellerID == sellerID {
			products = append(products, product)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Code < products[j].Code })
	return products, nil
}

// Has reports whether a product with the given code exists. Used by the
// sale store for referential checks.
func (s *ProductStore) Has(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.products[code]
	return ok
}

// HasSeller reports whether any product belongs to the given seller.
func (s *ProductStore) HasSeller(sellerID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, product := range s.products {
		if product.SellerID == sellerID {
			return true
		}
	}
	return false
}
