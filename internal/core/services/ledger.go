package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/complete/internal/core/domain"
	"github.com/custodia-labs/complete/internal/core/ports/driven"
	"github.com/custodia-labs/complete/internal/core/ports/driving"
	"github.com/custodia-labs/complete/internal/logger"
)

// Ensure LedgerService implements the interface.
var _ driving.LedgerService = (*LedgerService)(nil)

// LedgerService records named complete numbers and applies the
// absorption algebra to them.
type LedgerService struct {
	store driven.QuantityStore
	now   func() time.Time
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(store driven.QuantityStore) *LedgerService {
	return &LedgerService{
		store: store,
		now:   time.Now,
	}
}

// Record stores a new quantity under a generated ID.
func (s *LedgerService) Record(ctx context.Context, name string, value domain.CompleteNumber) (*domain.Quantity, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if name == "" {
		return nil, fmt.Errorf("quantity name is required: %w", domain.ErrInvalidInput)
	}

	now := s.now()
	q := domain.Quantity{
		ID:        uuid.New().String(),
		Name:      name,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, q); err != nil {
		return nil, fmt.Errorf("saving quantity %s: %w", name, err)
	}

	logger.Debug("recorded %s (%s) = %s", q.Name, q.ID, q.Value)
	return &q, nil
}

// Get retrieves a quantity by ID.
func (s *LedgerService) Get(ctx context.Context, id string) (*domain.Quantity, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.Get(ctx, id)
}

// List returns all recorded quantities.
func (s *LedgerService) List(ctx context.Context) ([]domain.Quantity, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

// Remove deletes a quantity.
func (s *LedgerService) Remove(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	logger.Debug("removing quantity %s", id)
	return s.store.Delete(ctx, id)
}

// Scale multiplies a quantity by f. Zero absorbs it.
func (s *LedgerService) Scale(ctx context.Context, id string, f float64) (*domain.Quantity, error) {
	return s.apply(ctx, id, func(n domain.CompleteNumber) (domain.CompleteNumber, error) {
		return n.Mul(domain.Scalar(f))
	})
}

// Divide divides a quantity by f. Dividing by zero recovers a vanished
// quantity and fails with domain.ErrDivisionByZero for anything else.
func (s *LedgerService) Divide(ctx context.Context, id string, f float64) (*domain.Quantity, error) {
	return s.apply(ctx, id, func(n domain.CompleteNumber) (domain.CompleteNumber, error) {
		return n.Quo(domain.Scalar(f))
	})
}

// Vanish multiplies a quantity by zero.
func (s *LedgerService) Vanish(ctx context.Context, id string) (*domain.Quantity, error) {
	return s.Scale(ctx, id, 0)
}

// Recover divides a vanished quantity by zero.
func (s *LedgerService) Recover(ctx context.Context, id string) (*domain.Quantity, error) {
	return s.Divide(ctx, id, 0)
}

// Combine records a new quantity whose four fields are the field-wise sums
// of the given quantities. Combining vanished quantities and recovering the
// result yields the total of the originals.
func (s *LedgerService) Combine(ctx context.Context, name string, ids ...string) (*domain.Quantity, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("at least one quantity is required: %w", domain.ErrInvalidInput)
	}

	var re, im, ure, uim float64
	for _, id := range ids {
		q, err := s.store.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("loading quantity %s: %w", id, err)
		}
		r, i, ur, ui := q.Value.Parts()
		re += r
		im += i
		ure += ur
		uim += ui
	}

	logger.Debug("combining %d quantities into %s", len(ids), name)
	return s.Record(ctx, name, domain.NewWithAbsorbed(re, im, ure, uim))
}

// apply loads a quantity, replaces its value with op's result and saves it.
func (s *LedgerService) apply(
	ctx context.Context,
	id string,
	op func(domain.CompleteNumber) (domain.CompleteNumber, error),
) (*domain.Quantity, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}

	q, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading quantity %s: %w", id, err)
	}

	value, err := op(q.Value)
	if err != nil {
		return nil, err
	}

	logger.Debug("%s (%s): %s -> %s", q.Name, q.ID, q.Value, value)
	q.Value = value
	q.UpdatedAt = s.now()
	if err := s.store.Save(ctx, *q); err != nil {
		return nil, fmt.Errorf("saving quantity %s: %w", id, err)
	}
	return q, nil
}
