// Command complete is a calculator and ledger for complete numbers.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/complete/internal/adapters/driven/config/file"
	"github.com/custodia-labs/complete/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/complete/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/complete/internal/adapters/driving/cli"
	"github.com/custodia-labs/complete/internal/core/domain"
	"github.com/custodia-labs/complete/internal/core/ports/driven"
	"github.com/custodia-labs/complete/internal/core/services"
	"github.com/custodia-labs/complete/internal/logger"
)

func main() {
	cli.SetBootstrap(bootstrap)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

// bootstrap wires the adapters selected by the settings in configDir.
func bootstrap(configDir string) (*cli.Services, func() error, error) {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("reading settings: %w", err)
	}

	var (
		quantities driven.QuantityStore
		closer     = func() error { return nil }
	)
	switch settings.Ledger.Backend {
	case domain.LedgerBackendMemory:
		quantities = memory.NewQuantityStore()
	default:
		dataDir := settings.Ledger.DataDir
		if dataDir == "" && configDir != "" {
			dataDir = filepath.Join(configDir, "data")
		}
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening ledger: %w", err)
		}
		logger.Debug("ledger database: %s", store.Path())
		quantities = store.QuantityStore()
		closer = store.Close
	}
	logger.Debug("config file: %s, ledger backend: %s", configStore.Path(), settings.Ledger.Backend)

	return &cli.Services{
		Ledger:   services.NewLedgerService(quantities),
		Demo:     services.NewDemoService(services.NewLedgerService(memory.NewQuantityStore())),
		Settings: settingsService,
	}, closer, nil
}
