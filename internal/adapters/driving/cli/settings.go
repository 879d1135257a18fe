package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/complete/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the ledger backend and display options.

Settings are stored in config.toml inside the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a setting",
	Long: `Change a setting.

Available keys:
  ledger.backend   - sqlite (persistent) or memory (discarded on exit)
  ledger.data_dir  - directory holding ledger.db (empty for the default)
  display.color    - true or false`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println(heading("Current Settings"))
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Ledger]")
	cmd.Printf("  Backend: %s\n", settings.Ledger.Backend.Description())
	if settings.Ledger.Backend == domain.LedgerBackendSQLite {
		dir := settings.Ledger.DataDir
		if dir == "" {
			dir = "(default)"
		}
		cmd.Printf("  Data directory: %s\n", dir)
	}
	cmd.Println()

	cmd.Println("[Display]")
	cmd.Printf("  Color: %t\n", settings.Display.Color)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	var err error
	switch key {
	case "ledger.backend":
		err = settingsService.SetLedgerBackend(domain.LedgerBackend(value))
	case "ledger.data_dir":
		err = settingsService.SetLedgerDataDir(value)
	case "display.color":
		var enabled bool
		enabled, err = strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("display.color must be true or false: %w", domain.ErrInvalidInput)
		}
		err = settingsService.SetColor(enabled)
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s to %s\n", key, value)
	return nil
}
