package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the worked examples",
	Long: `Print worked examples of complete number arithmetic: multiplication by
zero, division by zero, and the vanishing summation where two quantities
are multiplied by zero, combined, and recovered by dividing by zero.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	if demoService == nil {
		return errors.New("demo service not configured")
	}
	cmd.Println(heading("Complete Numbers"))
	return demoService.Run(cmd.OutOrStdout())
}
