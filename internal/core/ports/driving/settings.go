package driving

import "github.com/custodia-labs/complete/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetLedgerBackend selects the ledger storage backend.
	SetLedgerBackend(backend domain.LedgerBackend) error

	// SetLedgerDataDir sets the directory holding the ledger database.
	SetLedgerDataDir(dir string) error

	// SetColor enables or disables styled output.
	SetColor(enabled bool) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
