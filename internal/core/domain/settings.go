package domain

import "fmt"

// LedgerBackend selects where ledger quantities are stored.
type LedgerBackend string

// Available ledger backends.
const (
	// LedgerBackendSQLite persists quantities in a SQLite database.
	LedgerBackendSQLite LedgerBackend = "sqlite"

	// LedgerBackendMemory keeps quantities for the lifetime of the process.
	LedgerBackendMemory LedgerBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b LedgerBackend) IsValid() bool {
	switch b {
	case LedgerBackendSQLite, LedgerBackendMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b LedgerBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b LedgerBackend) Description() string {
	switch b {
	case LedgerBackendSQLite:
		return "SQLite (persistent)"
	case LedgerBackendMemory:
		return "Memory (discarded on exit)"
	default:
		return "Unknown"
	}
}

// AllLedgerBackends returns all available backends.
func AllLedgerBackends() []LedgerBackend {
	return []LedgerBackend{LedgerBackendSQLite, LedgerBackendMemory}
}

// LedgerSettings configures the quantity ledger.
type LedgerSettings struct {
	// Backend selects the storage implementation.
	Backend LedgerBackend

	// DataDir is the directory holding the SQLite database.
	// Empty means the default location.
	DataDir string
}

// DisplaySettings configures terminal output.
type DisplaySettings struct {
	// Color enables styled headings when stdout is a terminal.
	Color bool
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Ledger  LedgerSettings
	Display DisplaySettings
}

// DefaultAppSettings returns the default application settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Ledger: LedgerSettings{
			Backend: LedgerBackendSQLite,
		},
		Display: DisplaySettings{
			Color: true,
		},
	}
}

// Validate checks the settings are usable.
func (s *AppSettings) Validate() error {
	if !s.Ledger.Backend.IsValid() {
		return fmt.Errorf("ledger backend %q: %w", s.Ledger.Backend, ErrInvalidInput)
	}
	return nil
}
