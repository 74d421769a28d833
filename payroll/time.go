package payroll

import (
	"time"
)

// =============================================================================
// PAY DATE - Day-granularity calendar date
// =============================================================================

// PayDate is a calendar date normalized to UTC midnight. All pay-date
// rules operate at day granularity.
type PayDate struct {
	Time time.Time
}

func NewPayDate(year int, month time.Month, day int) PayDate {
	return PayDate{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Today() PayDate {
	now := time.Now()
	return NewPayDate(now.Year(), now.Month(), now.Day())
}

// ParsePayDate parses a 2006-01-02 formatted date.
func ParsePayDate(s string) (PayDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return PayDate{}, err
	}
	return NewPayDate(t.Year(), t.Month(), t.Day()), nil
}

func (d PayDate) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Comparison
func (d PayDate) Before(o PayDate) bool { return d.normalize().Before(o.normalize()) }
func (d PayDate) After(o PayDate) bool  { return d.normalize().After(o.normalize()) }
func (d PayDate) Equal(o PayDate) bool  { return d.normalize().Equal(o.normalize()) }
func (d PayDate) BeforeOrEqual(o PayDate) bool { return d.Before(o) || d.Equal(o) }

// Arithmetic
func (d PayDate) AddDays(n int) PayDate { return PayDate{Time: d.Time.AddDate(0, 0, n)} }

// Properties
func (d PayDate) Year() int             { return d.Time.Year() }
func (d PayDate) Month() time.Month     { return d.Time.Month() }
func (d PayDate) Day() int              { return d.Time.Day() }
func (d PayDate) Weekday() time.Weekday { return d.Time.Weekday() }
func (d PayDate) IsZero() bool          { return d.Time.IsZero() }

// IsLastDayOfMonth is leap-aware: Feb 29 is the last day in leap years.
func (d PayDate) IsLastDayOfMonth() bool {
	return d.normalize().AddDate(0, 0, 1).Day() == 1
}

// DayNumber returns the civil day number: whole days since 1970-01-01.
// The biweekly commission cadence keys off the parity of this number,
// so the epoch is load-bearing for output compatibility.
func (d PayDate) DayNumber() int {
	return int(d.normalize().Unix() / 86400)
}

func (d PayDate) String() string {
	return d.Time.Format("2006-01-02")
}
