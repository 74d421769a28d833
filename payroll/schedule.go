package payroll

import "time"

// =============================================================================
// PAY-DATE RULES - When each compensation plan is payable
// =============================================================================

// IsPayDate reports whether an employee on the given compensation plan is
// due pay on the given date. Pure function of (date, plan kind).
//
// Rules:
//   - Salaried:     last calendar day of the month
//   - Commissioned: Friday with an even civil day number ("every other
//     Friday" on a global cadence - all commissioned employees share it)
//   - Hourly:       every Friday
func IsPayDate(date PayDate, c Compensation) bool {
	switch c.Kind() {
	case KindSalaried:
		return date.IsLastDayOfMonth()
	case KindCommissioned:
		return date.Weekday() == time.Friday && date.DayNumber()%2 == 0
	case KindHourly:
		return date.Weekday() == time.Friday
	default:
		return false
	}
}

// PayDatesBetween returns every payable date for the plan in [from, to],
// in ascending order. Used by the schedule API.
func PayDatesBetween(from, to PayDate, c Compensation) []PayDate {
	var dates []PayDate
	for d := from; d.BeforeOrEqual(to); d = d.AddDays(1) {
		if IsPayDate(d, c) {
			dates = append(dates, d)
		}
	}
	return dates
}
