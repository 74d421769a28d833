package dispatch_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/dispatch"
	"github.com/warp/payroll-engine/payroll"
)

func payment(disp payroll.Disposition) payroll.Payment {
	return payroll.Payment{
		RunID:       "run-1",
		EmployeeID:  3,
		Name:        "Hana Hourly",
		Date:        payroll.NewPayDate(2025, time.January, 10),
		Amount:      payroll.NewMoneyFromInt(7350),
		Disposition: disp,
	}
}

// =============================================================================
// NOTICE RENDERING
// =============================================================================

func TestNotice_MailedHomeIncludesFullAddress(t *testing.T) {
	n := dispatch.Notice(payment(payroll.MailedHome{
		AddressLine1: "123 Main St",
		AddressLine2: "Apt 4",
		City:         "Springfield",
		State:        "IL",
		ZipCode:      "62701",
	}))

	assert.Contains(t, n, "employee 3")
	assert.Contains(t, n, "7350.00")
	for _, field := range []string{"123 Main St", "Apt 4", "Springfield", "IL", "62701"} {
		assert.Contains(t, n, field)
	}
}

func TestNotice_HeldAtOfficeIncludesOfficeNumber(t *testing.T) {
	n := dispatch.Notice(payment(payroll.HeldAtOffice{OfficeNumber: "B-12"}))

	assert.Contains(t, n, "employee 3")
	assert.Contains(t, n, "7350.00")
	assert.Contains(t, n, "B-12")
}

func TestNotice_DirectDepositIncludesBankDetails(t *testing.T) {
	n := dispatch.Notice(payment(payroll.DirectDeposit{
		BankName:      "First National",
		AccountNumber: "882210045",
		RoutingNumber: "071000013",
	}))

	assert.Contains(t, n, "employee 3")
	assert.Contains(t, n, "First National")
	assert.Contains(t, n, "882210045")
	assert.Contains(t, n, "071000013")
}

// =============================================================================
// CONSOLE
// =============================================================================

func TestConsole_WritesNoticeToWriter(t *testing.T) {
	var buf bytes.Buffer
	console := &dispatch.Console{Out: &buf}

	err := console.Dispatch(context.Background(), payment(payroll.HeldAtOffice{OfficeNumber: "B-7"}))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "B-7")
}

// =============================================================================
// MULTI
// =============================================================================

type failing struct{}

func (failing) Dispatch(context.Context, payroll.Payment) error {
	return errors.New("channel down")
}

func TestMulti_FansOutInOrder(t *testing.T) {
	first := dispatch.NewMemory()
	second := dispatch.NewMemory()
	multi := dispatch.NewMulti(first, second)

	require.NoError(t, multi.Dispatch(context.Background(), payment(payroll.HeldAtOffice{OfficeNumber: "B-7"})))
	assert.Len(t, first.Payments, 1)
	assert.Len(t, second.Payments, 1)
}

func TestMulti_FirstErrorStopsFanOut(t *testing.T) {
	after := dispatch.NewMemory()
	multi := dispatch.NewMulti(failing{}, after)

	err := multi.Dispatch(context.Background(), payment(payroll.HeldAtOffice{OfficeNumber: "B-7"}))
	require.Error(t, err)
	assert.Empty(t, after.Payments)
}

// =============================================================================
// PAYSTUB
// =============================================================================

func TestPaystub_WritesPDFPerPayment(t *testing.T) {
	dir := t.TempDir()
	stub := dispatch.NewPaystub(dir)

	require.NoError(t, stub.Dispatch(context.Background(), payment(payroll.DirectDeposit{
		BankName:      "First National",
		AccountNumber: "882210045",
		RoutingNumber: "071000013",
	})))

	path := filepath.Join(dir, "paystub-run-1-3.pdf")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
