// Package memory provides an in-memory payroll.Source over fixture slices.
package memory

import (
	"context"
	"sync"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// MEMORY SOURCE - In-memory implementation (for testing/dev)
// =============================================================================

type Source struct {
	mu        sync.RWMutex
	employees []payroll.Employee
	entries   []payroll.PayrollEntry
}

func New(employees []payroll.Employee, entries []payroll.PayrollEntry) *Source {
	return &Source{employees: employees, entries: entries}
}

// Employees returns a copy so callers cannot mutate the fixture order.
func (s *Source) Employees(_ context.Context) ([]payroll.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]payroll.Employee, len(s.employees))
	copy(result, s.employees)
	return result, nil
}

func (s *Source) Entries(_ context.Context) ([]payroll.PayrollEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]payroll.PayrollEntry, len(s.entries))
	copy(result, s.entries)
	return result, nil
}

// Replace swaps both collections at once. Snapshot semantics: a run that
// already read its inputs is unaffected.
func (s *Source) Replace(employees []payroll.Employee, entries []payroll.PayrollEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = employees
	s.entries = entries
}

var _ payroll.Source = (*Source)(nil)
