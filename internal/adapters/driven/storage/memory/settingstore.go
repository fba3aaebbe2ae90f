package memory

import (
	"context"
	"sync"

	"github.com/daetec/vendas-cli/internal/core/domain"
	"github.com/daetec/vendas-cli/internal/core/ports/driven"
)

// Ensure SettingStore implements the interface.
var _ driven.SettingStore = (*SettingStore)(nil)

// SettingStore is an in-memory implementation of driven.SettingStore.
type SettingStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewSettingStore creates an empty in-memory setting store.
func NewSettingStore() *SettingStore {
	return &SettingStore{values: make(map[string]string)}
}

// Get retrieves the value for a key.
func (s *SettingStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return value, nil
}

// Set inserts or replaces the value for a key.
func (s *SettingStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
