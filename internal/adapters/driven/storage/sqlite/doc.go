// Package sqlite provides a SQLite-based implementation of driven.QuantityStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// The four fields of a complete number are stored as REAL columns. SQLite
// stores NaN as NULL, so NULL columns are read back as NaN.
//
// # Data Location
//
// By default, the database is stored at ~/.complete/data/ledger.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
