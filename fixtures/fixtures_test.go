package fixtures_test

import (
	"reflect"
	"testing"

	"github.com/warp/payroll-engine/fixtures"
	"github.com/warp/payroll-engine/payroll"
)

func TestCanonical_IDsAreUnique(t *testing.T) {
	seen := make(map[payroll.EmployeeID]bool)
	for _, e := range fixtures.Canonical() {
		if seen[e.ID] {
			t.Fatalf("duplicate employee id %d", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestCanonical_CoversEveryVariant(t *testing.T) {
	comps := make(map[payroll.CompensationKind]bool)
	disps := make(map[payroll.DeliveryMethod]bool)
	for _, e := range fixtures.Canonical() {
		comps[e.Compensation.Kind()] = true
		disps[e.Disposition.Method()] = true
	}

	if len(comps) != 3 {
		t.Errorf("expected all 3 compensation kinds, got %v", comps)
	}
	if len(disps) != 3 {
		t.Errorf("expected all 3 delivery methods, got %v", disps)
	}
}

func TestCanonicalEntries_MatchPlanKinds(t *testing.T) {
	// Every fixture entry must carry the value kind its employee's plan
	// requires; the scenario tests depend on a mismatch-free baseline.
	employees := make(map[payroll.EmployeeID]payroll.Employee)
	for _, e := range fixtures.Canonical() {
		employees[e.ID] = e
	}

	for _, entry := range fixtures.CanonicalEntries() {
		e, ok := employees[entry.EmployeeID]
		if !ok {
			t.Fatalf("entry references unknown employee %d", entry.EmployeeID)
		}
		switch e.Compensation.Kind() {
		case payroll.KindHourly:
			if entry.Value.ValueKind() != payroll.ValueHours {
				t.Errorf("employee %d: hourly plan with %s entry", e.ID, entry.Value.ValueKind())
			}
		case payroll.KindCommissioned:
			if entry.Value.ValueKind() != payroll.ValueSalesReceipts {
				t.Errorf("employee %d: commissioned plan with %s entry", e.ID, entry.Value.ValueKind())
			}
		case payroll.KindSalaried:
			t.Errorf("employee %d: salaried plan should have no entry", e.ID)
		}
	}
}

func TestGenerate_SameSeedSamePopulation(t *testing.T) {
	emp1, ent1 := fixtures.Generate(50, 42)
	emp2, ent2 := fixtures.Generate(50, 42)

	if !reflect.DeepEqual(emp1, emp2) {
		t.Error("same seed should reproduce the same employees")
	}
	if !reflect.DeepEqual(ent1, ent2) {
		t.Error("same seed should reproduce the same entries")
	}
}

func TestGenerate_IDsAreSequentialAndUnique(t *testing.T) {
	employees, _ := fixtures.Generate(25, 7)
	if len(employees) != 25 {
		t.Fatalf("got %d employees, want 25", len(employees))
	}
	for i, e := range employees {
		if e.ID != payroll.EmployeeID(i+1) {
			t.Fatalf("employee at index %d has id %d", i, e.ID)
		}
	}
}

func TestGenerate_EntriesOnlyForVariablePay(t *testing.T) {
	employees, entries := fixtures.Generate(100, 3)

	kinds := make(map[payroll.EmployeeID]payroll.CompensationKind)
	for _, e := range employees {
		kinds[e.ID] = e.Compensation.Kind()
	}

	for _, entry := range entries {
		if kinds[entry.EmployeeID] == payroll.KindSalaried {
			t.Errorf("salaried employee %d has a payroll entry", entry.EmployeeID)
		}
	}
}
