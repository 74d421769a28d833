/*
errors.go - Error types for the payroll engine

PURPOSE:
  Sentinel errors for the two fatal computation faults (payroll entry
  carrying the wrong value kind for the employee's plan) plus a
  structured error carrying the employee context. A missing payroll
  entry is NOT an error anywhere - it defaults to zero activity.

USAGE:
  if errors.Is(err, payroll.ErrCommissionOnHours) { ... }

  var mismatch *payroll.TagMismatchError
  if errors.As(err, &mismatch) {
      log.Printf("employee %d: %v", mismatch.EmployeeID, err)
  }
*/
package payroll

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrCommissionOnHours is returned when a commissioned employee's
	// payroll entry carries an hours value instead of sales receipts.
	ErrCommissionOnHours = errors.New("cannot calculate commission on hours")

	// ErrWageOnSalesReceipts is returned when an hourly employee's
	// payroll entry carries sales receipts instead of hours.
	ErrWageOnSalesReceipts = errors.New("cannot calculate wage on sales receipts")

	// ErrEmployeeNotFound is returned by sources and the API lookup path.
	ErrEmployeeNotFound = errors.New("employee not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry employee context
// =============================================================================

// TagMismatchError reports a payroll entry whose value kind does not match
// what the employee's compensation plan requires.
type TagMismatchError struct {
	EmployeeID EmployeeID
	Want       PayrollValueKind
	Got        PayrollValueKind
}

func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("employee %d: payroll entry has %s, plan requires %s",
		e.EmployeeID, e.Got, e.Want)
}

func (e *TagMismatchError) Unwrap() error {
	switch e.Want {
	case ValueSalesReceipts:
		return ErrCommissionOnHours
	case ValueHours:
		return ErrWageOnSalesReceipts
	default:
		return nil
	}
}

// IsTagMismatch returns true if the error is either value-kind fault.
func IsTagMismatch(err error) bool {
	return errors.Is(err, ErrCommissionOnHours) || errors.Is(err, ErrWageOnSalesReceipts)
}
