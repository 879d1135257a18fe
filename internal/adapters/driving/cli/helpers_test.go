package cli

import (
	"bytes"
	"testing"

	"github.com/custodia-labs/complete/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/complete/internal/core/services"
)

// setupServices installs in-memory services and restores the previous ones on cleanup.
func setupServices(t *testing.T) {
	t.Helper()

	oldLedger, oldDemo, oldSettings := ledgerService, demoService, settingsService
	SetServices(Services{
		Ledger:   services.NewLedgerService(memory.NewQuantityStore()),
		Demo:     services.NewDemoService(services.NewLedgerService(memory.NewQuantityStore())),
		Settings: services.NewSettingsService(memory.NewConfigStore()),
	})
	t.Cleanup(func() {
		ledgerService, demoService, settingsService = oldLedger, oldDemo, oldSettings
	})
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
