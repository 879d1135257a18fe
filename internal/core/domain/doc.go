// Package domain defines the core value types for complete numbers.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CompleteNumber: a complex number with absorbed real and imaginary fields
//   - Component: a view of one field with absorption-aware multiplication
//   - Product: a Plain or Absorbed result of multiplying a Component
//   - Quantity: a named complete number kept in the ledger
//
// # Absorption
//
// Multiplying a CompleteNumber by zero moves its real and imaginary parts
// into the absorbed fields instead of destroying them:
//
//	New(3, 4).Scale(0)                       // 3.0u + 4.0uj
//	NewWithAbsorbed(0, 0, 3, 4).QuoScalar(0) // 3.0 + 4.0j
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
package domain
