/*
Package fixtures supplies employee and payroll-entry data sets.

PURPOSE:
  The engine treats its data source as an external collaborator; this
  package is the in-repo one. Canonical() is the small hand-written
  population the scenario tests are written against. Generate() fakes
  an arbitrary population for demos and load exercises.

DETERMINISM:
  Dispositions are decided HERE and passed to the core as explicit
  inputs - the engine never invents delivery channels. Generate() is
  seeded so the same seed reproduces the same population.
*/
package fixtures

import (
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/payroll"
)

// Canonical returns the fixed six-employee population covering every
// compensation plan and every delivery disposition.
func Canonical() []payroll.Employee {
	return []payroll.Employee{
		{
			ID:           1,
			Name:         "Mary Salaried",
			Compensation: payroll.Salaried{MonthlySalary: payroll.NewMoneyFromInt(32000)},
			Disposition: payroll.MailedHome{
				AddressLine1: "123 Main St",
				AddressLine2: "Apt 4",
				City:         "Springfield",
				State:        "IL",
				ZipCode:      "62701",
			},
		},
		{
			ID:           2,
			Name:         "Carlos Commissioned",
			Compensation: payroll.Commissioned{BaseSalary: payroll.NewMoneyFromInt(25000), CommissionRate: decimal.NewFromFloat(0.10)},
			Disposition: payroll.DirectDeposit{
				BankName:      "First National",
				AccountNumber: "882210045",
				RoutingNumber: "071000013",
			},
		},
		{
			ID:           3,
			Name:         "Hana Hourly",
			Compensation: payroll.Hourly{HourlyRate: payroll.NewMoneyFromInt(150)},
			Disposition:  payroll.HeldAtOffice{OfficeNumber: "B-12"},
		},
		{
			ID:           4,
			Name:         "Sam Salaried",
			Compensation: payroll.Salaried{MonthlySalary: payroll.NewMoneyFromInt(30500)},
			Disposition: payroll.DirectDeposit{
				BankName:      "Commerce Trust",
				AccountNumber: "550071923",
				RoutingNumber: "101000019",
			},
		},
		{
			ID:           5,
			Name:         "Cleo Commissioned",
			Compensation: payroll.Commissioned{BaseSalary: payroll.NewMoneyFromInt(20000), CommissionRate: decimal.NewFromFloat(0.15)},
			Disposition: payroll.MailedHome{
				AddressLine1: "9 Elm Ave",
				AddressLine2: "",
				City:         "Peoria",
				State:        "IL",
				ZipCode:      "61602",
			},
		},
		{
			ID:           6,
			Name:         "Hugo Hourly",
			Compensation: payroll.Hourly{HourlyRate: payroll.NewMoneyFromInt(110)},
			Disposition:  payroll.HeldAtOffice{OfficeNumber: "B-7"},
		},
	}
}

// CanonicalEntries returns the current period's inputs for the canonical
// population. Salaried employees have no entry on purpose.
func CanonicalEntries() []payroll.PayrollEntry {
	return []payroll.PayrollEntry{
		{EmployeeID: 2, Value: payroll.SalesReceipts{Total: payroll.NewMoneyFromInt(10000)}},
		{EmployeeID: 3, Value: payroll.Hours{Worked: 46}},
		{EmployeeID: 5, Value: payroll.SalesReceipts{Total: payroll.NewMoneyFromInt(8000)}},
		{EmployeeID: 6, Value: payroll.Hours{Worked: 40}},
	}
}
