package services

import (
	"fmt"

	"github.com/custodia-labs/complete/internal/core/domain"
	"github.com/custodia-labs/complete/internal/core/ports/driven"
	"github.com/custodia-labs/complete/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyLedgerBackend = "ledger.backend"
	keyLedgerDataDir = "ledger.data_dir"
	keyDisplayColor  = "display.color"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or unrecognised values fall back to the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	if s.configStore == nil {
		return nil, domain.ErrNotImplemented
	}

	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Ledger: domain.LedgerSettings{
			Backend: s.getBackend(defaults.Ledger.Backend),
			DataDir: s.configStore.GetString(keyLedgerDataDir),
		},
		Display: domain.DisplaySettings{
			Color: s.getBool(keyDisplayColor, defaults.Display.Color),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyLedgerBackend, settings.Ledger.Backend.String()); err != nil {
		return fmt.Errorf("save ledger backend: %w", err)
	}
	if err := s.configStore.Set(keyLedgerDataDir, settings.Ledger.DataDir); err != nil {
		return fmt.Errorf("save ledger data_dir: %w", err)
	}
	if err := s.configStore.Set(keyDisplayColor, settings.Display.Color); err != nil {
		return fmt.Errorf("save display color: %w", err)
	}

	return nil
}

// SetLedgerBackend selects the ledger storage backend.
func (s *SettingsService) SetLedgerBackend(backend domain.LedgerBackend) error {
	if !backend.IsValid() {
		return fmt.Errorf("invalid ledger backend %q: %w", backend, domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Ledger.Backend = backend

	return s.Save(settings)
}

// SetLedgerDataDir sets the directory holding the ledger database.
func (s *SettingsService) SetLedgerDataDir(dir string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Ledger.DataDir = dir

	return s.Save(settings)
}

// SetColor enables or disables styled output.
func (s *SettingsService) SetColor(enabled bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Display.Color = enabled

	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getBackend(defaultVal domain.LedgerBackend) domain.LedgerBackend {
	val := s.configStore.GetString(keyLedgerBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.LedgerBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
