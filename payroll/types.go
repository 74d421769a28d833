/*
Package payroll implements the core payroll computation engine.

PURPOSE:
  This package contains the domain model and the pay-run rule engine:
  which employees are due pay on a given date, how much each is owed
  under their compensation plan, and the payment record handed to a
  delivery channel.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: An exact decimal monetary amount
  - Employee: Identity + compensation plan + delivery disposition
  - Compensation: Closed set of pay plans (salaried, commissioned, hourly)
  - PayrollEntry: One period's variable-pay input (hours or sales receipts)
  - Disposition: Closed set of delivery channels (mail, office, deposit)
  - Payment: A computed payment ready for dispatch

DESIGN PRINCIPLES:
  1. Immutability: Employees and entries are constructed once per run
  2. Precision: Uses decimal.Decimal to avoid floating-point errors
  3. Closed unions: Variant sets are sealed interfaces so rule dispatch
     stays exhaustive

SEE ALSO:
  - schedule.go: Pay-date rules per compensation plan
  - calculator.go: Gross-pay computation
  - run.go: The pay-run orchestrator
*/
package payroll

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Exact decimal monetary amount
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value)}
}

func NewMoneyFromInt(value int) Money {
	return Money{Value: decimal.NewFromInt(int64(value))}
}

func MustParseMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{Value: decimal.Zero}
	}
	return Money{Value: d}
}

func ZeroMoney() Money { return Money{Value: decimal.Zero} }

func (m Money) Add(o Money) Money                { return Money{Value: m.Value.Add(o.Value)} }
func (m Money) Sub(o Money) Money                { return Money{Value: m.Value.Sub(o.Value)} }
func (m Money) Mul(s decimal.Decimal) Money      { return Money{Value: m.Value.Mul(s)} }
func (m Money) Equal(o Money) bool               { return m.Value.Equal(o.Value) }
func (m Money) GreaterThan(o Money) bool         { return m.Value.GreaterThan(o.Value) }
func (m Money) IsZero() bool                     { return m.Value.IsZero() }
func (m Money) IsNegative() bool                 { return m.Value.IsNegative() }

// String renders with two decimal places, the payment-notice format.
func (m Money) String() string { return m.Value.StringFixed(2) }

// =============================================================================
// IDENTIFIERS
// =============================================================================

type EmployeeID int

// =============================================================================
// COMPENSATION - Closed set of pay plans
// =============================================================================

type CompensationKind string

const (
	KindSalaried     CompensationKind = "salaried"
	KindCommissioned CompensationKind = "commissioned"
	KindHourly       CompensationKind = "hourly"
)

// Compensation is a sealed union: the only implementations are Salaried,
// Commissioned, and Hourly. Rule dispatch switches on these three.
type Compensation interface {
	Kind() CompensationKind
	isCompensation()
}

// Salaried employees earn a fixed monthly salary.
type Salaried struct {
	MonthlySalary Money
}

// Commissioned employees earn a base salary plus a fraction of the
// period's sales receipts.
type Commissioned struct {
	BaseSalary     Money
	CommissionRate decimal.Decimal // fraction, e.g. 0.10 = 10%
}

// Hourly employees earn an hourly rate, with overtime past 40 hours.
type Hourly struct {
	HourlyRate Money
}

func (Salaried) Kind() CompensationKind     { return KindSalaried }
func (Commissioned) Kind() CompensationKind { return KindCommissioned }
func (Hourly) Kind() CompensationKind       { return KindHourly }

func (Salaried) isCompensation()     {}
func (Commissioned) isCompensation() {}
func (Hourly) isCompensation()       {}

// Compile-time checks that all variants implement Compensation
var (
	_ Compensation = Salaried{}
	_ Compensation = Commissioned{}
	_ Compensation = Hourly{}
)

// =============================================================================
// PAYROLL ENTRY - One period's variable-pay input
// =============================================================================

type PayrollValueKind string

const (
	ValueHours         PayrollValueKind = "hours"
	ValueSalesReceipts PayrollValueKind = "sales_receipts"
)

// PayrollValue is a sealed union: Hours or SalesReceipts.
type PayrollValue interface {
	ValueKind() PayrollValueKind
	isPayrollValue()
}

type Hours struct {
	Worked int
}

type SalesReceipts struct {
	Total Money
}

func (Hours) ValueKind() PayrollValueKind         { return ValueHours }
func (SalesReceipts) ValueKind() PayrollValueKind { return ValueSalesReceipts }

func (Hours) isPayrollValue()         {}
func (SalesReceipts) isPayrollValue() {}

var (
	_ PayrollValue = Hours{}
	_ PayrollValue = SalesReceipts{}
)

// PayrollEntry links a period input metric to an employee. The collection
// may carry duplicates for an employee; lookup takes the first match.
type PayrollEntry struct {
	EmployeeID EmployeeID
	Value      PayrollValue
}

// =============================================================================
// DISPOSITION - Closed set of delivery channels
// =============================================================================

type DeliveryMethod string

const (
	MethodMail    DeliveryMethod = "mailed_home"
	MethodOffice  DeliveryMethod = "held_at_office"
	MethodDeposit DeliveryMethod = "direct_deposit"
)

// Disposition is a sealed union: MailedHome, HeldAtOffice, or DirectDeposit.
// Chosen once at employee-record creation and immutable after.
type Disposition interface {
	Method() DeliveryMethod
	isDisposition()
}

type MailedHome struct {
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	ZipCode      string
}

type HeldAtOffice struct {
	OfficeNumber string
}

type DirectDeposit struct {
	BankName      string
	AccountNumber string
	RoutingNumber string
}

func (MailedHome) Method() DeliveryMethod    { return MethodMail }
func (HeldAtOffice) Method() DeliveryMethod  { return MethodOffice }
func (DirectDeposit) Method() DeliveryMethod { return MethodDeposit }

func (MailedHome) isDisposition()    {}
func (HeldAtOffice) isDisposition()  {}
func (DirectDeposit) isDisposition() {}

var (
	_ Disposition = MailedHome{}
	_ Disposition = HeldAtOffice{}
	_ Disposition = DirectDeposit{}
)

// =============================================================================
// EMPLOYEE
// =============================================================================

// Employee is immutable once constructed. ID is unique across the
// employee collection for a run.
type Employee struct {
	ID           EmployeeID
	Name         string
	Compensation Compensation
	Disposition  Disposition
}

// =============================================================================
// PAYMENT - Computed pay ready for dispatch
// =============================================================================

type Payment struct {
	RunID       string
	EmployeeID  EmployeeID
	Name        string
	Date        PayDate
	Amount      Money
	Disposition Disposition
}
