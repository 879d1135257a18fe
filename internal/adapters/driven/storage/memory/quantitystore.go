package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/complete/internal/core/domain"
	"github.com/custodia-labs/complete/internal/core/ports/driven"
)

// Ensure QuantityStore implements the interface.
var _ driven.QuantityStore = (*QuantityStore)(nil)

// QuantityStore is an in-memory implementation of driven.QuantityStore.
type QuantityStore struct {
	mu         sync.RWMutex
	quantities map[string]domain.Quantity
}

// NewQuantityStore creates a new in-memory quantity store.
func NewQuantityStore() *QuantityStore {
	return &QuantityStore{
		quantities: make(map[string]domain.Quantity),
	}
}

// Save stores or updates a quantity.
func (s *QuantityStore) Save(_ context.Context, quantity domain.Quantity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quantities[quantity.ID] = quantity
	return nil
}

// Get retrieves a quantity by ID.
func (s *QuantityStore) Get(_ context.Context, id string) (*domain.Quantity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quantities[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &q, nil
}

// Delete removes a quantity.
func (s *QuantityStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quantities, id)
	return nil
}

// List returns all quantities ordered by creation time, then name.
func (s *QuantityStore) List(_ context.Context) ([]domain.Quantity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Quantity, 0, len(s.quantities))
	for _, q := range s.quantities {
		result = append(result, q)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}
