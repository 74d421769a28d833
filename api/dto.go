/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for API communication, decoupling the domain model
  from the external contract. Sealed unions are flattened to a tag
  field plus the variant's fields.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data
  carriers.
*/
package api

import (
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// EMPLOYEE / ENTRY TYPES
// =============================================================================

// CompensationDTO flattens the compensation union: Kind selects which
// fields are populated.
type CompensationDTO struct {
	Kind           string `json:"kind"`
	MonthlySalary  string `json:"monthly_salary,omitempty"`
	BaseSalary     string `json:"base_salary,omitempty"`
	CommissionRate string `json:"commission_rate,omitempty"`
	HourlyRate     string `json:"hourly_rate,omitempty"`
}

// DispositionDTO flattens the disposition union.
type DispositionDTO struct {
	Method        string `json:"method"`
	AddressLine1  string `json:"address_line1,omitempty"`
	AddressLine2  string `json:"address_line2,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	ZipCode       string `json:"zip_code,omitempty"`
	OfficeNumber  string `json:"office_number,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	RoutingNumber string `json:"routing_number,omitempty"`
}

type EmployeeDTO struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Compensation CompensationDTO `json:"compensation"`
	Disposition  DispositionDTO  `json:"disposition"`
}

type EntryDTO struct {
	EmployeeID    int    `json:"employee_id"`
	Kind          string `json:"kind"`
	Hours         int    `json:"hours,omitempty"`
	SalesReceipts string `json:"sales_receipts,omitempty"`
}

// =============================================================================
// PAY RUN TYPES
// =============================================================================

type PaymentDTO struct {
	EmployeeID int    `json:"employee_id"`
	Name       string `json:"name"`
	Amount     string `json:"amount"`
	Method     string `json:"method"`
	Notice     string `json:"notice"`
	Date       string `json:"date"`
}

type FailureDTO struct {
	EmployeeID int    `json:"employee_id"`
	Error      string `json:"error"`
}

type RunReportDTO struct {
	RunID      string       `json:"run_id"`
	Date       string       `json:"date"`
	Payments   []PaymentDTO `json:"payments"`
	Failures   []FailureDTO `json:"failures"`
	TotalGross string       `json:"total_gross"`
	ElapsedMS  int64        `json:"elapsed_ms"`
	Clean      bool         `json:"clean"`
}

// ExecuteRunRequest triggers a pay run. Date defaults to today.
type ExecuteRunRequest struct {
	Date string `json:"date,omitempty"`
}

// ScheduleDTO reports the payable dates per compensation plan in a range.
type ScheduleDTO struct {
	From         string   `json:"from"`
	To           string   `json:"to"`
	Salaried     []string `json:"salaried"`
	Commissioned []string `json:"commissioned"`
	Hourly       []string `json:"hourly"`
}

// ErrorResponse wraps API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toEmployeeDTO(e payroll.Employee) EmployeeDTO {
	dto := EmployeeDTO{
		ID:   int(e.ID),
		Name: e.Name,
		Compensation: CompensationDTO{
			Kind: string(e.Compensation.Kind()),
		},
		Disposition: DispositionDTO{
			Method: string(e.Disposition.Method()),
		},
	}

	switch comp := e.Compensation.(type) {
	case payroll.Salaried:
		dto.Compensation.MonthlySalary = comp.MonthlySalary.String()
	case payroll.Commissioned:
		dto.Compensation.BaseSalary = comp.BaseSalary.String()
		dto.Compensation.CommissionRate = comp.CommissionRate.String()
	case payroll.Hourly:
		dto.Compensation.HourlyRate = comp.HourlyRate.String()
	}

	switch disp := e.Disposition.(type) {
	case payroll.MailedHome:
		dto.Disposition.AddressLine1 = disp.AddressLine1
		dto.Disposition.AddressLine2 = disp.AddressLine2
		dto.Disposition.City = disp.City
		dto.Disposition.State = disp.State
		dto.Disposition.ZipCode = disp.ZipCode
	case payroll.HeldAtOffice:
		dto.Disposition.OfficeNumber = disp.OfficeNumber
	case payroll.DirectDeposit:
		dto.Disposition.BankName = disp.BankName
		dto.Disposition.AccountNumber = disp.AccountNumber
		dto.Disposition.RoutingNumber = disp.RoutingNumber
	}

	return dto
}

func toEntryDTO(entry payroll.PayrollEntry) EntryDTO {
	dto := EntryDTO{
		EmployeeID: int(entry.EmployeeID),
		Kind:       string(entry.Value.ValueKind()),
	}
	switch v := entry.Value.(type) {
	case payroll.Hours:
		dto.Hours = v.Worked
	case payroll.SalesReceipts:
		dto.SalesReceipts = v.Total.String()
	}
	return dto
}
