package fixtures

import (
	"github.com/brianvoe/gofakeit"
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/payroll"
)

// Generate fakes a population of n employees with matching payroll
// entries. The same seed reproduces the same population byte for byte.
// IDs start at 1 and are unique.
func Generate(n int, seed int64) ([]payroll.Employee, []payroll.PayrollEntry) {
	gofakeit.Seed(seed)

	employees := make([]payroll.Employee, 0, n)
	var entries []payroll.PayrollEntry

	for i := 1; i <= n; i++ {
		id := payroll.EmployeeID(i)
		comp, entry := fakeCompensation(id)
		employees = append(employees, payroll.Employee{
			ID:           id,
			Name:         gofakeit.Name(),
			Compensation: comp,
			Disposition:  fakeDisposition(),
		})
		if entry != nil {
			entries = append(entries, *entry)
		}
	}

	return employees, entries
}

func fakeCompensation(id payroll.EmployeeID) (payroll.Compensation, *payroll.PayrollEntry) {
	switch gofakeit.Number(0, 2) {
	case 0:
		return payroll.Salaried{
			MonthlySalary: payroll.NewMoneyFromInt(gofakeit.Number(2500, 9000)),
		}, nil
	case 1:
		entry := payroll.PayrollEntry{
			EmployeeID: id,
			Value:      payroll.SalesReceipts{Total: payroll.NewMoneyFromInt(gofakeit.Number(0, 50000))},
		}
		return payroll.Commissioned{
			BaseSalary:     payroll.NewMoneyFromInt(gofakeit.Number(1000, 4000)),
			CommissionRate: decimal.NewFromInt(int64(gofakeit.Number(5, 25))).Div(decimal.NewFromInt(100)),
		}, &entry
	default:
		entry := payroll.PayrollEntry{
			EmployeeID: id,
			Value:      payroll.Hours{Worked: gofakeit.Number(0, 60)},
		}
		return payroll.Hourly{
			HourlyRate: payroll.NewMoneyFromInt(gofakeit.Number(15, 150)),
		}, &entry
	}
}

func fakeDisposition() payroll.Disposition {
	switch gofakeit.Number(0, 2) {
	case 0:
		return payroll.MailedHome{
			AddressLine1: gofakeit.Street(),
			AddressLine2: "",
			City:         gofakeit.City(),
			State:        gofakeit.StateAbr(),
			ZipCode:      gofakeit.Zip(),
		}
	case 1:
		return payroll.HeldAtOffice{
			OfficeNumber: gofakeit.Numerify("B-##"),
		}
	default:
		return payroll.DirectDeposit{
			BankName:      gofakeit.Company(),
			AccountNumber: gofakeit.Numerify("#########"),
			RoutingNumber: gofakeit.Numerify("#########"),
		}
	}
}
