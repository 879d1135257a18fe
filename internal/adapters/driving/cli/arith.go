package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/complete/internal/core/domain"
	"github.com/custodia-labs/complete/internal/logger"
)

var (
	mulBy float64
	divBy float64
)

var mulCmd = &cobra.Command{
	Use:   "mul RE IM [U_RE U_IM] --by S",
	Short: "Multiply a complete number by a scalar",
	Long: `Multiply a complete number by a scalar.

Multiplying by zero moves the real and imaginary parts into the absorbed
slots, replacing anything absorbed before. Any other scalar scales the real
and imaginary parts and leaves the absorbed slots unchanged.`,
	Example: "  complete mul 3 4 --by 0\n  complete mul 0 0 3 4 --by 2\n  complete mul --by 2 -- 3 -4",
	Args:    numberArgs,
	RunE:    runMul,
}

var divCmd = &cobra.Command{
	Use:   "div RE IM [U_RE U_IM] --by S",
	Short: "Divide a complete number by a scalar",
	Long: `Divide a complete number by a scalar.

Dividing a number whose real and imaginary parts are zero by zero recovers
the absorbed slots. Dividing any other number by zero is an error. Any
other scalar divides all four parts.`,
	Example: "  complete div 0 0 3 4 --by 0\n  complete div 2 4 6 8 --by 2",
	Args:    numberArgs,
	RunE:    runDiv,
}

var componentCmd = &cobra.Command{
	Use:   "component real|imag RE IM mul|div S",
	Short: "Multiply or divide one component of a complete number",
	Long: `Take the real or imaginary component of a complete number and multiply
or divide it by a scalar.

A component multiplied by zero remembers its value and prints with a "u"
(real) or "uj" (imaginary) suffix. A component divided by zero is always
an error.`,
	Example: "  complete component real 3 4 mul 0\n  complete component imag 3 4 div 2",
	Args:    cobra.ExactArgs(5),
	RunE:    runComponent,
}

func init() {
	mulCmd.Flags().Float64Var(&mulBy, "by", 0, "scalar to multiply by")
	_ = mulCmd.MarkFlagRequired("by")
	divCmd.Flags().Float64Var(&divBy, "by", 0, "scalar to divide by")
	_ = divCmd.MarkFlagRequired("by")

	rootCmd.AddCommand(mulCmd)
	rootCmd.AddCommand(divCmd)
	rootCmd.AddCommand(componentCmd)
}

func runMul(cmd *cobra.Command, args []string) error {
	n, err := parseNumber(args)
	if err != nil {
		return err
	}

	result, err := n.Mul(domain.Scalar(mulBy))
	if err != nil {
		return err
	}
	logger.Debug("mul: %#v * %v = %#v", n, mulBy, result)

	cmd.Printf("(%s) * %s = %s\n", n, domain.Scalar(mulBy), renderNumber(result))
	return nil
}

func runDiv(cmd *cobra.Command, args []string) error {
	n, err := parseNumber(args)
	if err != nil {
		return err
	}

	result, err := n.Quo(domain.Scalar(divBy))
	if err != nil {
		return err
	}
	logger.Debug("div: %#v / %v = %#v", n, divBy, result)

	cmd.Printf("(%s) / %s = %s\n", n, domain.Scalar(divBy), renderNumber(result))
	return nil
}

func runComponent(cmd *cobra.Command, args []string) error {
	n, err := parseNumber(args[1:3])
	if err != nil {
		return err
	}
	s, err := parseFloat(args[4])
	if err != nil {
		return err
	}

	var c domain.Component
	switch args[0] {
	case "real":
		c = n.Real()
	case "imag":
		c = n.Imag()
	default:
		return fmt.Errorf("component must be real or imag, got %q: %w", args[0], domain.ErrInvalidInput)
	}

	switch args[3] {
	case "mul":
		p := c.Mul(s)
		out := p.String()
		if _, ok := p.(domain.Absorbed); ok {
			out = absorbed(out)
		}
		cmd.Printf("(%s).%s * %s = %s\n", n, c.Slot(), domain.Scalar(s), out)
	case "div":
		q, err := c.Quo(s)
		if err != nil {
			return err
		}
		cmd.Printf("(%s).%s / %s = %s\n", n, c.Slot(), domain.Scalar(s), domain.Plain(q))
	default:
		return fmt.Errorf("operation must be mul or div, got %q: %w", args[3], domain.ErrInvalidInput)
	}
	return nil
}

// numberArgs accepts RE IM or RE IM U_RE U_IM.
func numberArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 && len(args) != 4 {
		return fmt.Errorf("expected 2 or 4 numeric arguments, got %d", len(args))
	}
	return nil
}

// parseNumber builds a complete number from 2 or 4 numeric arguments.
func parseNumber(args []string) (domain.CompleteNumber, error) {
	vals := make([]float64, 4)
	for i, arg := range args {
		f, err := parseFloat(arg)
		if err != nil {
			return domain.CompleteNumber{}, err
		}
		vals[i] = f
	}
	return domain.NewWithAbsorbed(vals[0], vals[1], vals[2], vals[3]), nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", s, domain.ErrInvalidInput)
	}
	return f, nil
}

// renderNumber styles numbers that hold only absorbed parts.
func renderNumber(n domain.CompleteNumber) string {
	if n.IsAbsorbed() {
		return absorbed(n.String())
	}
	return n.String()
}
