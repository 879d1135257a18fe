package domain

import "time"

// Quantity is a named complete number kept in the ledger.
// Vanishing a quantity multiplies it by zero; recovering divides it by zero.
type Quantity struct {
	// ID is the unique identifier for the quantity.
	ID string

	// Name is the human-readable label, e.g. "box".
	Name string

	// Value is the current complete number.
	Value CompleteNumber

	// CreatedAt is when the quantity was recorded.
	CreatedAt time.Time

	// UpdatedAt is when the value last changed.
	UpdatedAt time.Time
}

// IsVanished reports whether the quantity has been fully absorbed and can
// be recovered by dividing by zero.
func (q Quantity) IsVanished() bool {
	return q.Value.IsAbsorbed() && (q.Value.AbsorbedReal() != 0 || q.Value.AbsorbedImag() != 0)
}
