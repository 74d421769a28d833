/*
run.go - Pay-run orchestrator

PURPOSE:
  Ties the engine together for one execution: filter employees by the
  pay-date rules, compute gross pay for each survivor, dispatch each
  payment, and report what happened.

FAILURE ISOLATION:
  A bad payroll entry (wrong value kind) fails only that employee: the
  failure is recorded in the report and the run continues. Source
  errors abort the run - without inputs there is nothing to isolate.
  Employees failing the date check are silently skipped; that is the
  normal case, not an error.

ORDERING:
  The run is one linear pass preserving the source's employee order.
  No employee is processed twice.
*/
package payroll

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// RUN REPORT
// =============================================================================

// RunFailure records one employee the run could not pay.
type RunFailure struct {
	EmployeeID EmployeeID
	Err        error
}

// RunReport summarizes one pay-run execution.
type RunReport struct {
	RunID      string
	Date       PayDate
	Payments   []Payment
	Failures   []RunFailure
	TotalGross Money
	Elapsed    time.Duration
}

// Clean returns true when every payable employee was paid.
func (r *RunReport) Clean() bool { return len(r.Failures) == 0 }

// =============================================================================
// RUNNER
// =============================================================================

// Runner executes pay runs against a Source and Dispatcher.
type Runner struct {
	Source     Source
	Dispatcher Dispatcher
}

func NewRunner(source Source, dispatcher Dispatcher) *Runner {
	return &Runner{Source: source, Dispatcher: dispatcher}
}

// Run executes one pay run for the given date: filter by pay-date rule,
// compute pay, dispatch. Returns the report; the error is non-nil only
// when the source fails.
func (r *Runner) Run(ctx context.Context, date PayDate) (*RunReport, error) {
	report, err := r.execute(ctx, date, true)
	if err != nil {
		return nil, err
	}

	log.Printf("[PayRun] %s run %s: %d paid, %d failed, gross %s (%v)",
		date, report.RunID, len(report.Payments), len(report.Failures),
		report.TotalGross, report.Elapsed)
	return report, nil
}

// Preview computes the same report as Run without dispatching anything.
func (r *Runner) Preview(ctx context.Context, date PayDate) (*RunReport, error) {
	return r.execute(ctx, date, false)
}

func (r *Runner) execute(ctx context.Context, date PayDate, dispatch bool) (*RunReport, error) {
	start := time.Now()

	employees, err := r.Source.Employees(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := r.Source.Entries(ctx)
	if err != nil {
		return nil, err
	}

	report := &RunReport{
		RunID:      uuid.NewString(),
		Date:       date,
		TotalGross: ZeroMoney(),
	}

	for _, e := range employees {
		if !IsPayDate(date, e.Compensation) {
			continue
		}

		amount, err := CalculatePay(entries, e)
		if err != nil {
			log.Printf("[PayRun] employee %d skipped: %v", e.ID, err)
			report.Failures = append(report.Failures, RunFailure{EmployeeID: e.ID, Err: err})
			continue
		}

		payment := Payment{
			RunID:       report.RunID,
			EmployeeID:  e.ID,
			Name:        e.Name,
			Date:        date,
			Amount:      amount,
			Disposition: e.Disposition,
		}

		if dispatch {
			if err := r.Dispatcher.Dispatch(ctx, payment); err != nil {
				log.Printf("[PayRun] dispatch failed for employee %d: %v", e.ID, err)
				report.Failures = append(report.Failures, RunFailure{EmployeeID: e.ID, Err: err})
				continue
			}
		}

		report.Payments = append(report.Payments, payment)
		report.TotalGross = report.TotalGross.Add(amount)
	}

	report.Elapsed = time.Since(start)
	return report, nil
}
