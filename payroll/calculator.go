package payroll

import "github.com/shopspring/decimal"

// =============================================================================
// PAY CALCULATOR - Gross pay per compensation plan
// =============================================================================

// Overtime kicks in past 40 hours, at 1.5x for the excess.
var (
	regularHoursPerWeek = decimal.NewFromInt(40)
	overtimeMultiplier  = decimal.NewFromFloat(1.5)
)

// CalculatePay computes gross pay for one employee for the period.
// Pure: identical inputs always yield identical amounts.
//
// A missing payroll entry is a zero-activity default, not an error.
// An entry with the wrong value kind is a *TagMismatchError.
func CalculatePay(entries []PayrollEntry, e Employee) (Money, error) {
	switch comp := e.Compensation.(type) {
	case Salaried:
		return comp.MonthlySalary, nil
	case Commissioned:
		return calculateCommission(entries, e.ID, comp)
	case Hourly:
		return calculateWage(entries, e.ID, comp)
	default:
		// Unreachable: Compensation is sealed.
		return ZeroMoney(), nil
	}
}

func calculateCommission(entries []PayrollEntry, id EmployeeID, comp Commissioned) (Money, error) {
	value := lookupValue(entries, id, SalesReceipts{Total: ZeroMoney()})
	receipts, ok := value.(SalesReceipts)
	if !ok {
		return ZeroMoney(), &TagMismatchError{EmployeeID: id, Want: ValueSalesReceipts, Got: value.ValueKind()}
	}
	commission := receipts.Total.Mul(comp.CommissionRate)
	return comp.BaseSalary.Add(commission), nil
}

func calculateWage(entries []PayrollEntry, id EmployeeID, comp Hourly) (Money, error) {
	value := lookupValue(entries, id, Hours{Worked: 0})
	hours, ok := value.(Hours)
	if !ok {
		return ZeroMoney(), &TagMismatchError{EmployeeID: id, Want: ValueHours, Got: value.ValueKind()}
	}

	worked := decimal.NewFromInt(int64(hours.Worked))
	if worked.GreaterThan(regularHoursPerWeek) {
		// 40*rate + (h-40)*rate*1.5; exactly 40 pays straight time.
		regular := comp.HourlyRate.Mul(regularHoursPerWeek)
		overtime := comp.HourlyRate.Mul(worked.Sub(regularHoursPerWeek)).Mul(overtimeMultiplier)
		return regular.Add(overtime), nil
	}
	return comp.HourlyRate.Mul(worked), nil
}

// lookupValue finds the first entry for the employee, or the given
// zero-activity default. First-match semantics: duplicates are neither
// aggregated nor rejected.
func lookupValue(entries []PayrollEntry, id EmployeeID, fallback PayrollValue) PayrollValue {
	for _, entry := range entries {
		if entry.EmployeeID == id {
			return entry.Value
		}
	}
	return fallback
}
