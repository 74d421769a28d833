package payroll_test

import (
	"testing"
	"time"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(year int, month time.Month, day int) payroll.PayDate {
	return payroll.NewPayDate(year, month, day)
}

var (
	salaried     = payroll.Salaried{MonthlySalary: payroll.NewMoneyFromInt(3000)}
	commissioned = payroll.Commissioned{BaseSalary: payroll.NewMoneyFromInt(1000)}
	hourly       = payroll.Hourly{HourlyRate: payroll.NewMoneyFromInt(20)}
)

// =============================================================================
// SALARIED - Last calendar day of the month
// =============================================================================

func TestSalaried_PayableOnLastDayOfMonth(t *testing.T) {
	cases := []struct {
		date payroll.PayDate
		want bool
	}{
		{date(2025, time.January, 31), true},
		{date(2025, time.January, 30), false},
		{date(2025, time.January, 1), false},
		{date(2025, time.April, 30), true},
		{date(2025, time.February, 28), true},  // non-leap February
		{date(2024, time.February, 29), true},  // leap February
		{date(2024, time.February, 28), false}, // not the end in a leap year
		{date(2025, time.December, 31), true},
	}

	for _, c := range cases {
		if got := payroll.IsPayDate(c.date, salaried); got != c.want {
			t.Errorf("IsPayDate(%s, salaried) = %v, want %v", c.date, got, c.want)
		}
	}
}

// =============================================================================
// HOURLY - Every Friday
// =============================================================================

func TestHourly_PayableOnFridays(t *testing.T) {
	for d := date(2025, time.January, 1); d.BeforeOrEqual(date(2025, time.January, 31)); d = d.AddDays(1) {
		want := d.Weekday() == time.Friday
		if got := payroll.IsPayDate(d, hourly); got != want {
			t.Errorf("IsPayDate(%s, hourly) = %v, want %v", d, got, want)
		}
	}
}

// =============================================================================
// COMMISSIONED - Fridays with an even civil day number
// =============================================================================

func TestCommissioned_EveryOtherFriday(t *testing.T) {
	cases := []struct {
		date payroll.PayDate
		want bool
	}{
		{date(2025, time.January, 3), false},  // Friday, odd day number
		{date(2025, time.January, 10), true},  // Friday, even day number
		{date(2025, time.January, 17), false}, // Friday, odd day number
		{date(2025, time.January, 24), true},  // Friday, even day number
		{date(2025, time.January, 31), false}, // Friday, odd day number
		{date(2025, time.January, 12), false}, // even day number but a Sunday
	}

	for _, c := range cases {
		if got := payroll.IsPayDate(c.date, commissioned); got != c.want {
			t.Errorf("IsPayDate(%s, commissioned) = %v, want %v", c.date, got, c.want)
		}
	}
}

func TestCommissioned_CadenceIsBiweekly(t *testing.T) {
	// Consecutive payable Fridays are exactly 14 days apart.
	dates := payroll.PayDatesBetween(date(2025, time.January, 1), date(2025, time.June, 30), commissioned)
	if len(dates) < 2 {
		t.Fatalf("expected multiple payable Fridays, got %d", len(dates))
	}
	for i := 1; i < len(dates); i++ {
		gap := dates[i].DayNumber() - dates[i-1].DayNumber()
		if gap != 14 {
			t.Errorf("gap between %s and %s = %d days, want 14", dates[i-1], dates[i], gap)
		}
	}
}

// =============================================================================
// SCHEDULE RANGES
// =============================================================================

func TestPayDatesBetween_January2025(t *testing.T) {
	from, to := date(2025, time.January, 1), date(2025, time.January, 31)

	if got := payroll.PayDatesBetween(from, to, salaried); len(got) != 1 || !got[0].Equal(date(2025, time.January, 31)) {
		t.Errorf("salaried pay dates = %v, want [2025-01-31]", got)
	}
	if got := payroll.PayDatesBetween(from, to, hourly); len(got) != 5 {
		t.Errorf("hourly pay dates = %v, want the 5 January Fridays", got)
	}
	if got := payroll.PayDatesBetween(from, to, commissioned); len(got) != 2 {
		t.Errorf("commissioned pay dates = %v, want 2 dates", got)
	}
}
