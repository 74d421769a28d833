/*
main.go - Batch pay-run entry point

PURPOSE:
  Runs payroll once for today's date over the canonical fixture data
  and prints a notice for each payment, then a completion summary with
  the elapsed time.

INVOCATION:
  ./payday

  Takes no arguments; the run date is implicitly today. Exit code is 0
  when every payable employee was paid, 1 when any per-employee failure
  was recorded.

SEE ALSO:
  - payroll/run.go: The orchestrator this drives
  - cmd/server/main.go: The HTTP surface over the same engine
*/
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/warp/payroll-engine/dispatch"
	"github.com/warp/payroll-engine/fixtures"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/store/memory"
)

func main() {
	source := memory.New(fixtures.Canonical(), fixtures.CanonicalEntries())
	runner := payroll.NewRunner(source, dispatch.NewConsole())

	date := payroll.Today()
	fmt.Printf("Running payroll for %s\n", date)

	report, err := runner.Run(context.Background(), date)
	if err != nil {
		log.Fatalf("pay run failed: %v", err)
	}

	fmt.Printf("Paid %d employee(s), gross %s, in %v\n",
		len(report.Payments), report.TotalGross, report.Elapsed)

	if !report.Clean() {
		for _, f := range report.Failures {
			fmt.Fprintf(os.Stderr, "employee %d not paid: %v\n", f.EmployeeID, f.Err)
		}
		os.Exit(1)
	}
}
