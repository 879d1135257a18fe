package driven

import (
	"context"

	"github.com/custodia-labs/complete/internal/core/domain"
)

// QuantityStore persists ledger quantities.
type QuantityStore interface {
	// Save stores or updates a quantity.
	Save(ctx context.Context, quantity domain.Quantity) error

	// Get retrieves a quantity by ID.
	// Returns domain.ErrNotFound if no quantity has that ID.
	Get(ctx context.Context, id string) (*domain.Quantity, error)

	// Delete removes a quantity.
	Delete(ctx context.Context, id string) error

	// List returns all quantities ordered by creation time, then name.
	List(ctx context.Context) ([]domain.Quantity, error)
}
