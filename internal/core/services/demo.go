package services

import (
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/complete/internal/core/domain"
	"github.com/custodia-labs/complete/internal/core/ports/driving"
	"github.com/custodia-labs/complete/internal/logger"
)

// Ensure DemoService implements the interface.
var _ driving.DemoService = (*DemoService)(nil)

// DemoService prints the worked examples of the complete number algebra:
// multiplication, division and the vanishing summation.
type DemoService struct {
	ledger driving.LedgerService
}

// NewDemoService creates a demo service. The ledger holds the quantities of
// the vanishing summation scenario and should be a scratch ledger.
func NewDemoService(ledger driving.LedgerService) *DemoService {
	return &DemoService{ledger: ledger}
}

// Run writes every demonstration scenario to w.
func (s *DemoService) Run(w io.Writer) error {
	p := &printer{w: w}
	p.println("\n=== Complete Number System Tests ===")

	logger.Section("Multiplication")
	s.multiplication(p)

	logger.Section("Division")
	s.division(p)

	logger.Section("Vanishing Summation")
	if err := s.vanishingSummation(context.Background(), p); err != nil {
		return err
	}
	return p.err
}

func (s *DemoService) multiplication(p *printer) {
	p.println("\nBasic Multiplication Tests:")

	cu := domain.New(3, 4)
	p.printf("Initial number: %s\n", cu)

	p.println("\nCase 1 - Whole number * 0:")
	p.printf("(%s) * 0 = %s\n", cu, cu.Scale(0))

	p.println("\nCase 2 - Real component * 0:")
	p.printf("(%s).real * 0 = %s\n", cu, cu.Real().Mul(0))

	p.println("\nCase 3 - Imaginary component * 0:")
	p.printf("(%s).imag * 0 = %s\n", cu, cu.Imag().Mul(0))

	p.println("\nVerification of normal multiplication:")
	p.printf("Initial number: %s\n", cu)
	p.printf("(%s) * 1 = %s\n", cu, cu.Scale(1))
	p.printf("(%s).real * 1 = %s\n", cu, cu.Real().Mul(1))
	p.printf("(%s).imag * 1 = %s\n", cu, cu.Imag().Mul(1))
}

func (s *DemoService) division(p *printer) {
	p.println("\nBasic Division Tests:")

	cu := domain.New(3, 4)
	p.printf("Initial number: %s\n", cu)

	absorbed := cu.Scale(0)
	p.println("\nCase 1 - Complete absorbed number / 0:")
	if recovered, err := absorbed.QuoScalar(0); err != nil {
		p.printf("(%s) / 0 -> %v\n", absorbed, err)
	} else {
		p.printf("(%s) / 0 = %s\n", absorbed, recovered)
	}

	p.println("\nCase 2 - Real component / 0:")
	s.componentQuo(p, cu, cu.Real())

	p.println("\nCase 3 - Imaginary component / 0:")
	s.componentQuo(p, cu, cu.Imag())

	absorbedOnly := domain.NewWithAbsorbed(0, 0, 3, 4)
	p.println("\nCase 4 - Pure absorbed components / 0:")
	if recovered, err := absorbedOnly.QuoScalar(0); err != nil {
		p.printf("(%s) / 0 -> %v\n", absorbedOnly, err)
	} else {
		p.printf("(%s) / 0 = %s\n", absorbedOnly, recovered)
	}
}

func (s *DemoService) componentQuo(p *printer, n domain.CompleteNumber, c domain.Component) {
	if q, err := c.Quo(0); err != nil {
		p.printf("(%s).%s / 0 -> %v\n", n, c.Slot(), err)
	} else {
		p.printf("(%s).%s / 0 = %s\n", n, c.Slot(), domain.Plain(q))
	}
}

func (s *DemoService) vanishingSummation(ctx context.Context, p *printer) error {
	if s.ledger == nil {
		return domain.ErrNotImplemented
	}

	p.println("\nVanishing Summation Structure Demonstration:")

	box, err := s.ledger.Record(ctx, "box", domain.New(5, 0))
	if err != nil {
		return err
	}
	crate, err := s.ledger.Record(ctx, "crate", domain.New(3, 0))
	if err != nil {
		return err
	}
	p.println("Initial quantities:")
	p.printf("Box:   %s\n", box.Value)
	p.printf("Crate: %s\n", crate.Value)

	if box, err = s.ledger.Vanish(ctx, box.ID); err != nil {
		return err
	}
	if crate, err = s.ledger.Vanish(ctx, crate.ID); err != nil {
		return err
	}
	p.println("\nAfter multiplication by zero (vanishing of summation structure):")
	p.printf("Box:   %s\n", box.Value)
	p.printf("Crate: %s\n", crate.Value)

	total, err := s.ledger.Combine(ctx, "total", box.ID, crate.ID)
	if err != nil {
		return err
	}
	p.println("\nCombined vanished structures:")
	p.printf("Total: %s\n", total.Value)

	recovered, err := s.ledger.Recover(ctx, total.ID)
	if err != nil {
		p.printf("Error recovering total: %v\n", err)
		return nil
	}
	p.println("\nRecovered quantity from vanished structure:")
	p.printf("Total: %s\n", recovered.Value)
	return nil
}

// printer writes formatted lines and keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(s string) {
	p.printf("%s\n", s)
}
