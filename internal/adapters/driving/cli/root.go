// Package cli implements the complete command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/complete/internal/core/ports/driving"
	"github.com/custodia-labs/complete/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services holds the core services used by commands.
type Services struct {
	Ledger   driving.LedgerService
	Demo     driving.DemoService
	Settings driving.SettingsService
}

// Bootstrap builds the services for a run once flags are parsed.
// The returned close function releases any resources they hold.
type Bootstrap func(configDir string) (*Services, func() error, error)

var (
	ledgerService   driving.LedgerService
	demoService     driving.DemoService
	settingsService driving.SettingsService

	bootstrap    Bootstrap
	closeFn      func() error
	verboseFlag  bool
	configDirArg string
)

var rootCmd = &cobra.Command{
	Use:   "complete",
	Short: "Arithmetic with complete numbers",
	Long: `Complete numbers extend complex numbers with absorbed components that
survive multiplication by zero. Multiplying by zero moves the real and
imaginary parts into the absorbed slots; dividing a fully absorbed number
by zero recovers them.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDirArg, "config-dir", "", "configuration directory (default ~/.complete)")
}

// SetServices sets the services used by commands.
func SetServices(s Services) {
	ledgerService = s.Ledger
	demoService = s.Demo
	settingsService = s.Settings
}

// SetBootstrap sets the function that builds services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// Execute runs the root command and releases bootstrapped resources.
func Execute() error {
	defer func() {
		if closeFn != nil {
			if err := closeFn(); err != nil {
				logger.Warn("closing services: %v", err)
			}
			closeFn = nil
		}
	}()
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	if bootstrap != nil && closeFn == nil {
		services, closer, err := bootstrap(configDirArg)
		if err != nil {
			return fmt.Errorf("initialising: %w", err)
		}
		SetServices(*services)
		closeFn = closer
	}

	configureStyles(cmd.OutOrStdout())
	return nil
}

// FormatError renders err for display on the terminal.
func FormatError(err error) string {
	return failure("Error: " + err.Error())
}
