package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func money(n int) payroll.Money { return payroll.NewMoneyFromInt(n) }

func hourlyEmployee(id int, rate int) payroll.Employee {
	return payroll.Employee{
		ID:           payroll.EmployeeID(id),
		Name:         "hourly",
		Compensation: payroll.Hourly{HourlyRate: money(rate)},
		Disposition:  payroll.HeldAtOffice{OfficeNumber: "B-1"},
	}
}

func commissionedEmployee(id int, base int, rate float64) payroll.Employee {
	return payroll.Employee{
		ID:           payroll.EmployeeID(id),
		Name:         "commissioned",
		Compensation: payroll.Commissioned{BaseSalary: money(base), CommissionRate: decimal.NewFromFloat(rate)},
		Disposition:  payroll.HeldAtOffice{OfficeNumber: "B-1"},
	}
}

func hoursEntry(id, worked int) payroll.PayrollEntry {
	return payroll.PayrollEntry{EmployeeID: payroll.EmployeeID(id), Value: payroll.Hours{Worked: worked}}
}

func receiptsEntry(id, total int) payroll.PayrollEntry {
	return payroll.PayrollEntry{EmployeeID: payroll.EmployeeID(id), Value: payroll.SalesReceipts{Total: money(total)}}
}

// =============================================================================
// SALARIED
// =============================================================================

func TestSalaried_PaysMonthlySalary(t *testing.T) {
	e := payroll.Employee{
		ID:           1,
		Compensation: payroll.Salaried{MonthlySalary: money(32000)},
		Disposition:  payroll.HeldAtOffice{OfficeNumber: "B-1"},
	}

	// No payroll entry needed.
	pay, err := payroll.CalculatePay(nil, e)
	require.NoError(t, err)
	assert.True(t, pay.Equal(money(32000)), "got %s", pay)
}

// =============================================================================
// HOURLY WAGE
// =============================================================================

func TestHourlyWage(t *testing.T) {
	cases := []struct {
		name  string
		rate  int
		hours int
		want  payroll.Money
	}{
		{"under 40 hours is straight time", 150, 39, money(39 * 150)},
		{"exactly 40 hours has no overtime", 110, 40, money(4400)},
		{"46 hours at 150 pays overtime", 150, 46, money(7350)}, // 40*150 + 6*150*1.5
		{"zero hours pays zero", 150, 0, payroll.ZeroMoney()},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := hourlyEmployee(3, c.rate)
			pay, err := payroll.CalculatePay([]payroll.PayrollEntry{hoursEntry(3, c.hours)}, e)
			require.NoError(t, err)
			assert.True(t, pay.Equal(c.want), "got %s, want %s", pay, c.want)
		})
	}
}

func TestHourly_MissingEntryDefaultsToZeroHours(t *testing.T) {
	pay, err := payroll.CalculatePay(nil, hourlyEmployee(3, 150))
	require.NoError(t, err)
	assert.True(t, pay.IsZero(), "got %s", pay)
}

func TestHourly_SalesReceiptsEntryIsFatal(t *testing.T) {
	_, err := payroll.CalculatePay([]payroll.PayrollEntry{receiptsEntry(3, 500)}, hourlyEmployee(3, 150))
	require.Error(t, err)
	assert.ErrorIs(t, err, payroll.ErrWageOnSalesReceipts)

	var mismatch *payroll.TagMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, payroll.EmployeeID(3), mismatch.EmployeeID)
	assert.Equal(t, payroll.ValueHours, mismatch.Want)
	assert.Equal(t, payroll.ValueSalesReceipts, mismatch.Got)
}

// =============================================================================
// COMMISSION
// =============================================================================

func TestCommission_BasePlusRateTimesReceipts(t *testing.T) {
	e := commissionedEmployee(2, 25000, 0.10)
	pay, err := payroll.CalculatePay([]payroll.PayrollEntry{receiptsEntry(2, 10000)}, e)
	require.NoError(t, err)
	assert.True(t, pay.Equal(money(26000)), "got %s", pay) // 25000 + 10000*0.10
}

func TestCommission_MissingEntryPaysBaseSalaryExactly(t *testing.T) {
	pay, err := payroll.CalculatePay(nil, commissionedEmployee(2, 25000, 0.10))
	require.NoError(t, err)
	assert.True(t, pay.Equal(money(25000)), "got %s", pay)
}

func TestCommission_HoursEntryIsFatal(t *testing.T) {
	_, err := payroll.CalculatePay([]payroll.PayrollEntry{hoursEntry(2, 40)}, commissionedEmployee(2, 25000, 0.10))
	require.Error(t, err)
	assert.ErrorIs(t, err, payroll.ErrCommissionOnHours)
	assert.True(t, payroll.IsTagMismatch(err))
}

// =============================================================================
// LOOKUP SEMANTICS
// =============================================================================

func TestLookup_FirstMatchWins(t *testing.T) {
	// Duplicate entries for the same employee: no aggregation, no error.
	entries := []payroll.PayrollEntry{
		hoursEntry(3, 10),
		hoursEntry(3, 46),
	}

	pay, err := payroll.CalculatePay(entries, hourlyEmployee(3, 150))
	require.NoError(t, err)
	assert.True(t, pay.Equal(money(1500)), "first entry (10 hours) should win, got %s", pay)
}

func TestLookup_IgnoresOtherEmployeesEntries(t *testing.T) {
	entries := []payroll.PayrollEntry{
		receiptsEntry(9, 99999),
		hoursEntry(3, 46),
	}

	pay, err := payroll.CalculatePay(entries, hourlyEmployee(3, 150))
	require.NoError(t, err)
	assert.True(t, pay.Equal(money(7350)), "got %s", pay)
}

// =============================================================================
// PURITY
// =============================================================================

func TestCalculatePay_Idempotent(t *testing.T) {
	entries := []payroll.PayrollEntry{receiptsEntry(2, 10000)}
	e := commissionedEmployee(2, 25000, 0.10)

	first, err := payroll.CalculatePay(entries, e)
	require.NoError(t, err)
	second, err := payroll.CalculatePay(entries, e)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
}

func TestCalculatePay_ExactDecimalArithmetic(t *testing.T) {
	// 0.1 * 3 receipts of 0.1 style drift would show up with binary floats.
	e := commissionedEmployee(2, 0, 0.10)
	pay, err := payroll.CalculatePay([]payroll.PayrollEntry{
		{EmployeeID: 2, Value: payroll.SalesReceipts{Total: payroll.MustParseMoney("0.30")}},
	}, e)
	require.NoError(t, err)
	assert.Equal(t, "0.03", pay.String())
}
