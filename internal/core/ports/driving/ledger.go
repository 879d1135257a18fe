package driving

import (
	"context"

	"github.com/custodia-labs/complete/internal/core/domain"
)

// LedgerService records named complete numbers and applies the absorption
// algebra to them.
type LedgerService interface {
	// Record stores a new quantity under a generated ID.
	Record(ctx context.Context, name string, value domain.CompleteNumber) (*domain.Quantity, error)

	// Get retrieves a quantity by ID.
	Get(ctx context.Context, id string) (*domain.Quantity, error)

	// List returns all recorded quantities.
	List(ctx context.Context) ([]domain.Quantity, error)

	// Remove deletes a quantity.
	Remove(ctx context.Context, id string) error

	// Scale multiplies a quantity by s. Zero absorbs it.
	Scale(ctx context.Context, id string, s float64) (*domain.Quantity, error)

	// Divide divides a quantity by s. Zero recovers an absorbed quantity.
	Divide(ctx context.Context, id string, s float64) (*domain.Quantity, error)

	// Vanish multiplies a quantity by zero.
	Vanish(ctx context.Context, id string) (*domain.Quantity, error)

	// Recover divides a vanished quantity by zero.
	Recover(ctx context.Context, id string) (*domain.Quantity, error)

	// Combine records a new quantity holding the field-wise sum of the given ones.
	Combine(ctx context.Context, name string, ids ...string) (*domain.Quantity, error)
}
