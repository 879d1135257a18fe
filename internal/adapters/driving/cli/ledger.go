package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/complete/internal/core/domain"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Record and transform named quantities",
	Long: `The ledger stores named complete numbers. Quantities can be vanished
(multiplied by zero), combined, and recovered (divided by zero).`,
}

var ledgerRecordCmd = &cobra.Command{
	Use:   "record NAME RE IM [U_RE U_IM]",
	Short: "Record a new quantity",
	Args:  cobra.RangeArgs(3, 5),
	RunE:  runLedgerRecord,
}

var ledgerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded quantities",
	Args:  cobra.NoArgs,
	RunE:  runLedgerList,
}

var ledgerShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a quantity",
	Args:  cobra.ExactArgs(1),
	RunE:  runLedgerShow,
}

var ledgerScaleCmd = &cobra.Command{
	Use:   "scale ID S",
	Short: "Multiply a quantity by a scalar",
	Args:  cobra.ExactArgs(2),
	RunE:  runLedgerScale,
}

var ledgerDivideCmd = &cobra.Command{
	Use:   "divide ID S",
	Short: "Divide a quantity by a scalar",
	Args:  cobra.ExactArgs(2),
	RunE:  runLedgerDivide,
}

var ledgerVanishCmd = &cobra.Command{
	Use:   "vanish ID",
	Short: "Multiply a quantity by zero",
	Args:  cobra.ExactArgs(1),
	RunE:  runLedgerVanish,
}

var ledgerRecoverCmd = &cobra.Command{
	Use:   "recover ID",
	Short: "Divide a vanished quantity by zero",
	Args:  cobra.ExactArgs(1),
	RunE:  runLedgerRecover,
}

var ledgerCombineCmd = &cobra.Command{
	Use:   "combine NAME ID...",
	Short: "Record the field-wise sum of quantities",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runLedgerCombine,
}

var ledgerRemoveCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove a quantity",
	Args:  cobra.ExactArgs(1),
	RunE:  runLedgerRemove,
}

func init() {
	ledgerCmd.AddCommand(ledgerRecordCmd)
	ledgerCmd.AddCommand(ledgerListCmd)
	ledgerCmd.AddCommand(ledgerShowCmd)
	ledgerCmd.AddCommand(ledgerScaleCmd)
	ledgerCmd.AddCommand(ledgerDivideCmd)
	ledgerCmd.AddCommand(ledgerVanishCmd)
	ledgerCmd.AddCommand(ledgerRecoverCmd)
	ledgerCmd.AddCommand(ledgerCombineCmd)
	ledgerCmd.AddCommand(ledgerRemoveCmd)
	rootCmd.AddCommand(ledgerCmd)
}

var errLedgerNotConfigured = errors.New("ledger service not configured")

func runLedgerRecord(cmd *cobra.Command, args []string) error {
	if ledgerService == nil {
		return errLedgerNotConfigured
	}
	if err := numberArgs(cmd, args[1:]); err != nil {
		return err
	}
	n, err := parseNumber(args[1:])
	if err != nil {
		return err
	}

	q, err := ledgerService.Record(context.Background(), args[0], n)
	if err != nil {
		return fmt.Errorf("failed to record quantity: %w", err)
	}
	printQuantity(cmd, q)
	return nil
}

func runLedgerList(cmd *cobra.Command, _ []string) error {
	if ledgerService == nil {
		return errLedgerNotConfigured
	}

	quantities, err := ledgerService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list quantities: %w", err)
	}
	if len(quantities) == 0 {
		cmd.Println("No quantities recorded.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVALUE")
	for i := range quantities {
		q := &quantities[i]
		fmt.Fprintf(w, "%s\t%s\t%s\n", q.ID, q.Name, renderNumber(q.Value))
	}
	return w.Flush()
}

func runLedgerShow(cmd *cobra.Command, args []string) error {
	if ledgerService == nil {
		return errLedgerNotConfigured
	}

	q, err := ledgerService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get quantity %s: %w", args[0], err)
	}

	re, im, ure, uim := q.Value.Parts()
	cmd.Println(heading(q.Name))
	cmd.Printf("  ID:            %s\n", q.ID)
	cmd.Printf("  Value:         %s\n", renderNumber(q.Value))
	cmd.Printf("  Real:          %s\n", domain.Plain(re))
	cmd.Printf("  Imaginary:     %s\n", domain.Plain(im))
	cmd.Printf("  Absorbed real: %s\n", domain.Plain(ure))
	cmd.Printf("  Absorbed imag: %s\n", domain.Plain(uim))
	cmd.Printf("  Vanished:      %t\n", q.IsVanished())
	cmd.Printf("  Created:       %s\n", q.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("  Updated:       %s\n", q.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func runLedgerScale(cmd *cobra.Command, args []string) error {
	if ledgerService == nil {
		return errLedgerNotConfigured
	}
	s, err := parseFloat(args[1])
	if err != nil {
		return err
	}

	q, err := ledgerService.Scale(context.Background(), args[0], s)
	if err != nil {
		return fmt.Errorf("failed to scale quantity %s: %w", args[0], err)
	}
	printQuantity(cmd, q)
	return nil
}

func runLedgerDivide(cmd *cobra.Command, args []string) error {
	if ledgerService == nil {
		return errLedgerNotConfigured
	}
	s, err := parseFloat(args[1])
	if err != nil {
		return err
	}

	q, err := ledgerService.Divide(context.Background(), args[0], s)
	if err != nil {
		return fmt.Errorf("failed to divide quantity %s: %w", args[0], err)
	}
	printQuantity(cmd, q)
	return nil
}

func runLedgerVanish(cmd *cobra.Command, args []string) error {
	if ledgerService == nil {
		return errLedgerNotConfigured
	}

	q, err := ledgerService.Vanish(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to vanish quantity %s: %w", args[0], err)
	}
	printQuantity(cmd, q)
	return nil
}

func runLedgerRecover(cmd *cobra.Command, args []string) error {
	if ledgerService == nil {
		return errLedgerNotConfigured
	}

	q, err := ledgerService.Recover(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to recover quantity %s: %w", args[0], err)
	}
	printQuantity(cmd, q)
	return nil
}

func runLedgerCombine(cmd *cobra.Command, args []string) error {
	if ledgerService == nil {
		return errLedgerNotConfigured
	}

	q, err := ledgerService.Combine(context.Background(), args[0], args[1:]...)
	if err != nil {
		return fmt.Errorf("failed to combine quantities: %w", err)
	}
	printQuantity(cmd, q)
	return nil
}

func runLedgerRemove(cmd *cobra.Command, args []string) error {
	if ledgerService == nil {
		return errLedgerNotConfigured
	}

	if err := ledgerService.Remove(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to remove quantity %s: %w", args[0], err)
	}
	cmd.Printf("Removed %s\n", args[0])
	return nil
}

func printQuantity(cmd *cobra.Command, q *domain.Quantity) {
	cmd.Printf("%s  %s = %s\n", q.ID, q.Name, renderNumber(q.Value))
}
