/*
Package dispatch provides payroll.Dispatcher implementations.

PURPOSE:
  The engine's delivery contract is only to hand over a well-formed
  payment per disposition variant; these implementations stand in for
  the real-world channel (mail room, paymaster office, bank transfer):

    Console: Human-readable notice per payment to a writer
    Memory:  Records payments for tests
    Paystub: One-page PDF pay statement per payment
    Multi:   Fan-out to several dispatchers

  No retries, no delivery confirmation anywhere - transport proper is
  an external concern.
*/
package dispatch

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// CONSOLE DISPATCHER
// =============================================================================

// Console renders each payment as a notice on an io.Writer.
type Console struct {
	Out io.Writer
}

func NewConsole() *Console {
	return &Console{Out: os.Stdout}
}

func (c *Console) Dispatch(_ context.Context, p payroll.Payment) error {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	if _, err := fmt.Fprintln(out, Notice(p)); err != nil {
		return err
	}
	log.Printf("[Dispatch] employee %d paid %s via %s", p.EmployeeID, p.Amount, p.Disposition.Method())
	return nil
}

// Notice renders the human-readable payment notice for a payment,
// including every field of its disposition variant.
func Notice(p payroll.Payment) string {
	switch d := p.Disposition.(type) {
	case payroll.MailedHome:
		return fmt.Sprintf("Paid %s to employee %d (%s): check mailed to %s, %s, %s, %s %s",
			p.Amount, p.EmployeeID, p.Name,
			d.AddressLine1, d.AddressLine2, d.City, d.State, d.ZipCode)
	case payroll.HeldAtOffice:
		return fmt.Sprintf("Paid %s to employee %d (%s): check held at paymaster office %s",
			p.Amount, p.EmployeeID, p.Name, d.OfficeNumber)
	case payroll.DirectDeposit:
		return fmt.Sprintf("Paid %s to employee %d (%s): deposited to %s account %s routing %s",
			p.Amount, p.EmployeeID, p.Name,
			d.BankName, d.AccountNumber, d.RoutingNumber)
	default:
		// Unreachable: Disposition is sealed.
		return fmt.Sprintf("Paid %s to employee %d (%s)", p.Amount, p.EmployeeID, p.Name)
	}
}

var _ payroll.Dispatcher = (*Console)(nil)

// =============================================================================
// MEMORY DISPATCHER - Records payments (for tests)
// =============================================================================

type Memory struct {
	Payments []payroll.Payment
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Dispatch(_ context.Context, p payroll.Payment) error {
	m.Payments = append(m.Payments, p)
	return nil
}

var _ payroll.Dispatcher = (*Memory)(nil)

// =============================================================================
// MULTI DISPATCHER - Fan-out
// =============================================================================

// Multi dispatches each payment to every child in order. The first
// error stops the fan-out for that payment; the runner records it as a
// per-employee failure.
type Multi struct {
	Children []payroll.Dispatcher
}

func NewMulti(children ...payroll.Dispatcher) *Multi {
	return &Multi{Children: children}
}

func (m *Multi) Dispatch(ctx context.Context, p payroll.Payment) error {
	for _, child := range m.Children {
		if err := child.Dispatch(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

var _ payroll.Dispatcher = (*Multi)(nil)
