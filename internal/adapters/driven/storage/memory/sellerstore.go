package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/daetec/vendas-cli/internal/core/domain"
	"github.com/daetec/vendas-cli/internal/core/ports/driven"
)

// Ensure SellerStore implements the interface.
var _ driven.SellerStore = (*SellerStore)(nil)

// SellerStore is an in-memory implementation of driven.SellerStore.
type SellerStore struct {
	mu      sync.RWMutex
	nextID  int64
	sellers map[int64]domain.Seller

	// referenced reports whether other records still point at a seller;
	// wired to the product and sale stores by the caller.
	referenced func(sellerID int64) bool
}

// NewSellerStore creates an empty in-memory seller store.
func NewSellerStore() *SellerStore {
	return &SellerStore{sellers: make(map[int64]domain.Seller)}
}

// SetReferenceCheck installs the referential check used by Delete,
// mimicking the SQLite foreign key constraint.
func (s *SellerStore) SetReferenceCheck(check func(sellerID int64) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.referenced = check
}

// Add inserts a seller, enforcing name uniqueness.
func (s *SellerStore) Add(_ context.Context, name string) (domain.Seller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.sellers {
		if existing.Name == name {
			return domain.Seller{}, domain.ErrAlreadyExists
		}
	}

	s.nextID++
	seller := domain.Seller{ID: s.nextID, Name: name}
	s.sellers[seller.ID] = seller
	return seller, nil
}

// Delete removes a seller unless other records still reference it.
func (s *SellerStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sellers[id]; !ok {
		return domain.ErrNotFound
	}
	if s.referenced != nil && s.referenced(id) {
		return domain.ErrInUse
	}
	delete(s.sellers, id)
	return nil
}

// List returns all sellers ordered by id.
func (s *SellerStore) List(_ context.Context) ([]domain.Seller, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sellers := make([]domain.Seller, 0, len(s.sellers))
	for _, seller := range s.sellers {
		sellers = append(sellers, seller)
	}
	sort.Slice(sellers, func(i, j int) bool { return sellers[i].ID < sellers[j].ID })
	return sellers, nil
}

// Get returns a seller by id, or nil when absent. Used by the sale
// store for referential checks.
func (s *SellerStore) Get(id int64) *domain.Seller {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seller, ok := s.sellers[id]
	if !ok {
		return nil
	}
	return &seller
}
