package dispatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// PAYSTUB DISPATCHER - PDF pay statements
// =============================================================================

// Paystub writes a one-page PDF pay statement per payment into Dir.
// Filenames are paystub-<runid>-<employeeid>.pdf.
type Paystub struct {
	Dir string
}

func NewPaystub(dir string) *Paystub {
	return &Paystub{Dir: dir}
}

func (ps *Paystub) Dispatch(_ context.Context, p payroll.Payment) error {
	if err := os.MkdirAll(ps.Dir, 0o755); err != nil {
		return fmt.Errorf("paystub dir: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Pay Statement")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (#%d)", p.Name, p.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Pay date: %s", p.Date))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Gross pay: %s", p.Amount))
	pdf.Ln(10)
	pdf.Cell(0, 8, deliveryLine(p.Disposition))

	path := filepath.Join(ps.Dir, fmt.Sprintf("paystub-%s-%d.pdf", p.RunID, p.EmployeeID))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write paystub: %w", err)
	}
	return nil
}

func deliveryLine(d payroll.Disposition) string {
	switch d := d.(type) {
	case payroll.MailedHome:
		return fmt.Sprintf("Delivery: mailed to %s, %s, %s, %s %s",
			d.AddressLine1, d.AddressLine2, d.City, d.State, d.ZipCode)
	case payroll.HeldAtOffice:
		return fmt.Sprintf("Delivery: held at paymaster office %s", d.OfficeNumber)
	case payroll.DirectDeposit:
		return fmt.Sprintf("Delivery: direct deposit, %s account %s routing %s",
			d.BankName, d.AccountNumber, d.RoutingNumber)
	default:
		return "Delivery: unknown"
	}
}

var _ payroll.Dispatcher = (*Paystub)(nil)
