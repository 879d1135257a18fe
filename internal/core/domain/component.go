package domain

import "fmt"

// Slot identifies which field of a complete number a component came from.
type Slot uint8

// Component slots.
const (
	// SlotReal is the real part.
	SlotReal Slot = iota

	// SlotImag is the imaginary part.
	SlotImag
)

// String returns the slot name.
func (s Slot) String() string {
	switch s {
	case SlotReal:
		return "real"
	case SlotImag:
		return "imag"
	default:
		return fmt.Sprintf("Slot(%d)", uint8(s))
	}
}

// Suffix returns the marker appended to an absorbed value from this slot.
func (s Slot) Suffix() string {
	if s == SlotImag {
		return "uj"
	}
	return "u"
}

// Component is a read-only view of one scalar field of a CompleteNumber.
// It behaves like a plain float64 except when multiplied by exactly zero,
// where it remembers the value it would have destroyed.
type Component struct {
	value float64
	slot  Slot
}

// Value returns the wrapped scalar.
func (c Component) Value() float64 {
	return c.value
}

// Slot returns the field the component was taken from.
func (c Component) Slot() Slot {
	return c.slot
}

// Mul multiplies the component by s. Multiplying by zero yields an Absorbed
// product carrying the original value; any other factor yields a Plain
// product and drops the slot tag. Left multiplication is identical.
func (c Component) Mul(s float64) Product {
	if s == 0 {
		return Absorbed{Value: c.value, Slot: c.slot}
	}
	return Plain(c.value * s)
}

// Quo divides the component by s. Unlike CompleteNumber.Quo, a component
// never recovers anything across zero.
func (c Component) Quo(s float64) (float64, error) {
	if s == 0 {
		return 0, fmt.Errorf("%s component %s / 0: %w", c.slot, formatFloat(c.value), ErrDivisionByZero)
	}
	return c.value / s, nil
}

// QuoLeft computes s / c. A scalar divided by a component is not defined.
func (c Component) QuoLeft(s float64) (float64, error) {
	return 0, fmt.Errorf("%s / %s component: %w", formatFloat(s), c.slot, ErrUnsupportedOperand)
}

// String renders the wrapped scalar.
func (c Component) String() string {
	return formatFloat(c.value)
}

// Product is the result of multiplying a Component: either Plain or Absorbed.
type Product interface {
	fmt.Stringer

	// Number lifts the product into a CompleteNumber.
	Number() CompleteNumber

	product()
}

// Plain is an ordinary scalar product.
type Plain float64

func (Plain) product() {}

// Number returns p as the real part of a complete number.
func (p Plain) Number() CompleteNumber {
	return New(float64(p), 0)
}

// String renders the scalar.
func (p Plain) String() string {
	return formatFloat(float64(p))
}

// Absorbed is a zero that remembers the value and slot it absorbed.
type Absorbed struct {
	Value float64
	Slot  Slot
}

func (Absorbed) product() {}

// Number places the absorbed value in the matching absorbed field.
func (a Absorbed) Number() CompleteNumber {
	if a.Slot == SlotImag {
		return NewWithAbsorbed(0, 0, 0, a.Value)
	}
	return NewWithAbsorbed(0, 0, a.Value, 0)
}

// Recover returns the value that was absorbed, the scalar counterpart of
// dividing a fully absorbed complete number by zero.
func (a Absorbed) Recover() float64 {
	return a.Value
}

// String renders the value with a "u" (real) or "uj" (imaginary) suffix.
func (a Absorbed) String() string {
	return formatFloat(a.Value) + a.Slot.Suffix()
}
