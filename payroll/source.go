/*
source.go - Collaborator interfaces for the pay run

PURPOSE:
  Defines the two seams between the engine and the outside world:
  Source supplies the period's employee and payroll-entry collections,
  Dispatcher consumes computed payments and performs delivery.

CONTRACT:
  Source collections are ordered; the run preserves that order. The
  engine only ever reads. Implementations:
    - store/memory: fixture-backed, for tests and the batch binary
    - store/sqlite: database-backed

  Dispatcher implementations live in the dispatch package (console
  notices, in-memory recorder, PDF pay statements).
*/
package payroll

import "context"

// Source supplies the input collections for one pay period.
type Source interface {
	// Employees returns the employee collection in its stable order.
	Employees(ctx context.Context) ([]Employee, error)

	// Entries returns the period's payroll entries in insertion order.
	// Duplicate EmployeeIDs are allowed; consumers take the first match.
	Entries(ctx context.Context) ([]PayrollEntry, error)
}

// Dispatcher delivers one computed payment. The engine's contract is only
// that the payment carries the disposition; transport is external.
type Dispatcher interface {
	Dispatch(ctx context.Context, p Payment) error
}
