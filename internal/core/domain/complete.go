package domain

import (
	"fmt"
	"math"
	"strings"
)

// CompleteNumber is a complex number extended with two absorbed fields that
// keep the real and imaginary parts alive through multiplication by zero.
//
// Values are immutable: every operation returns a new CompleteNumber.
type CompleteNumber struct {
	re, im   float64
	ure, uim float64
}

// New returns re + im·j with no absorbed parts.
func New(re, im float64) CompleteNumber {
	return CompleteNumber{re: re, im: im}
}

// NewWithAbsorbed returns re + im·j + ure·u + uim·uj.
func NewWithAbsorbed(re, im, ure, uim float64) CompleteNumber {
	return CompleteNumber{re: re, im: im, ure: ure, uim: uim}
}

// Real returns a view of the real part.
func (n CompleteNumber) Real() Component {
	return Component{value: n.re, slot: SlotReal}
}

// Imag returns a view of the imaginary part.
func (n CompleteNumber) Imag() Component {
	return Component{value: n.im, slot: SlotImag}
}

// AbsorbedReal returns the absorbed real field.
func (n CompleteNumber) AbsorbedReal() float64 {
	return n.ure
}

// AbsorbedImag returns the absorbed imaginary field.
func (n CompleteNumber) AbsorbedImag() float64 {
	return n.uim
}

// Parts returns all four fields in rendering order.
func (n CompleteNumber) Parts() (re, im, ure, uim float64) {
	return n.re, n.im, n.ure, n.uim
}

// IsAbsorbed reports whether only absorbed fields may be nonzero, i.e.
// whether n can be divided by zero.
func (n CompleteNumber) IsAbsorbed() bool {
	return n.re == 0 && n.im == 0
}

// Scale returns n·s. When s is zero the real and imaginary parts move into
// the absorbed fields, overwriting whatever was absorbed before. Otherwise
// only the real and imaginary parts are scaled and the absorbed fields are
// carried over unchanged.
func (n CompleteNumber) Scale(s float64) CompleteNumber {
	if s == 0 {
		return CompleteNumber{ure: n.re, uim: n.im}
	}
	return CompleteNumber{re: n.re * s, im: n.im * s, ure: n.ure, uim: n.uim}
}

// Mul returns n·op. Only scalar operands are supported.
func (n CompleteNumber) Mul(op Operand) (CompleteNumber, error) {
	switch v := op.(type) {
	case Scalar:
		return n.Scale(float64(v)), nil
	case CompleteNumber:
		return CompleteNumber{}, fmt.Errorf("(%s) * (%s): %w", n, v, ErrUnsupportedOperand)
	default:
		return CompleteNumber{}, fmt.Errorf("(%s) * %T: %w", n, op, ErrUnsupportedOperand)
	}
}

// QuoScalar returns n/s. Dividing by zero recovers the absorbed fields into
// the real and imaginary parts, and fails with ErrDivisionByZero unless n
// is fully absorbed. Any other divisor scales all four fields.
func (n CompleteNumber) QuoScalar(s float64) (CompleteNumber, error) {
	if s == 0 {
		if !n.IsAbsorbed() {
			return CompleteNumber{}, fmt.Errorf("(%s) / 0: %w", n, ErrDivisionByZero)
		}
		return CompleteNumber{re: n.ure, im: n.uim}, nil
	}
	return CompleteNumber{re: n.re / s, im: n.im / s, ure: n.ure / s, uim: n.uim / s}, nil
}

// Quo returns n/op. Only scalar operands are supported.
func (n CompleteNumber) Quo(op Operand) (CompleteNumber, error) {
	switch v := op.(type) {
	case Scalar:
		return n.QuoScalar(float64(v))
	case CompleteNumber:
		return CompleteNumber{}, fmt.Errorf("(%s) / (%s): %w", n, v, ErrUnsupportedOperand)
	default:
		return CompleteNumber{}, fmt.Errorf("(%s) / %T: %w", n, op, ErrUnsupportedOperand)
	}
}

// MulLeft returns lhs·n. Multiplication is commutative, so this is n.Mul(lhs).
func MulLeft(lhs Operand, n CompleteNumber) (CompleteNumber, error) {
	return n.Mul(lhs)
}

// QuoLeft returns lhs/n, which is undefined for every operand.
func QuoLeft(lhs Operand, n CompleteNumber) (CompleteNumber, error) {
	return CompleteNumber{}, fmt.Errorf("%v / (%s): %w", lhs, n, ErrUnsupportedOperand)
}

// Equal reports whether all four fields are equal.
func (n CompleteNumber) Equal(o CompleteNumber) bool {
	return n == o
}

// ApproxEqual reports whether each field of n is within tol of o's.
func (n CompleteNumber) ApproxEqual(o CompleteNumber, tol float64) bool {
	return math.Abs(n.re-o.re) <= tol &&
		math.Abs(n.im-o.im) <= tol &&
		math.Abs(n.ure-o.ure) <= tol &&
		math.Abs(n.uim-o.uim) <= tol
}

// String renders the nonzero terms in the order re, im·j, ure·u, uim·uj,
// for example "3.0 - 4.0j + 2.0u". The zero value renders as "0.0".
func (n CompleteNumber) String() string {
	parts := make([]string, 0, 4)
	if n.re != 0 || (n.im == 0 && n.ure == 0 && n.uim == 0) {
		parts = append(parts, formatFloat(n.re))
	}
	if n.im != 0 {
		parts = append(parts, formatFloat(n.im)+"j")
	}
	if n.ure != 0 {
		parts = append(parts, formatFloat(n.ure)+SlotReal.Suffix())
	}
	if n.uim != 0 {
		parts = append(parts, formatFloat(n.uim)+SlotImag.Suffix())
	}
	return strings.ReplaceAll(strings.Join(parts, " + "), " + -", " - ")
}

// Operand is the right-hand side of an arithmetic operation. It is
// implemented only by Scalar and CompleteNumber.
type Operand interface {
	operand()
}

// Scalar is a plain real operand.
type Scalar float64

func (Scalar) operand() {}

// String renders the scalar.
func (s Scalar) String() string {
	return formatFloat(float64(s))
}

func (CompleteNumber) operand() {}
