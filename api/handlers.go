/*
handlers.go - HTTP API handlers for the payroll engine

PURPOSE:
  Exposes the pay-run engine over REST. Handles HTTP request/response,
  JSON serialization, and delegates to the runner.

ENDPOINTS:
  Employees:
    GET  /api/employees            List the employee collection
    GET  /api/employees/{id}       Get one employee
    GET  /api/entries              List the period's payroll entries

  Pay runs:
    POST /api/payruns              Execute a pay run (dispatches payments)
    GET  /api/payruns              History of executed runs (in-memory)
    GET  /api/payruns/preview      Compute without dispatching
    GET  /api/schedule             Payable dates per plan in a range

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Bad date or id in the request
  - 404: Unknown employee
  - 500: Source failures

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/warp/payroll-engine/dispatch"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Runner *payroll.Runner

	mu   sync.Mutex
	runs []*payroll.RunReport
}

// NewHandler creates a new handler around a runner.
func NewHandler(runner *payroll.Runner) *Handler {
	return &Handler{Runner: runner}
}

// =============================================================================
// EMPLOYEE ENDPOINTS
// =============================================================================

// ListEmployees returns the employee collection.
// GET /api/employees
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Runner.Source.Employees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}

	writeJSON(w, http.StatusOK, dtos)
}

// GetEmployee returns one employee by id.
// GET /api/employees/{id}
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid employee id", err)
		return
	}

	employees, err := h.Runner.Source.Employees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load employees", err)
		return
	}

	for _, e := range employees {
		if e.ID == payroll.EmployeeID(id) {
			writeJSON(w, http.StatusOK, toEmployeeDTO(e))
			return
		}
	}

	writeError(w, http.StatusNotFound, "Employee not found", payroll.ErrEmployeeNotFound)
}

// ListEntries returns the period's payroll entries.
// GET /api/entries
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Runner.Source.Entries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list entries", err)
		return
	}

	dtos := make([]EntryDTO, len(entries))
	for i, entry := range entries {
		dtos[i] = toEntryDTO(entry)
	}

	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// PAY RUN ENDPOINTS
// =============================================================================

// ExecuteRun runs payroll for the requested date (default today) and
// dispatches each payment.
// POST /api/payruns
func (h *Handler) ExecuteRun(w http.ResponseWriter, r *http.Request) {
	var req ExecuteRunRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	date, ok := parseDateParam(w, req.Date)
	if !ok {
		return
	}

	report, err := h.Runner.Run(r.Context(), date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Pay run failed", err)
		return
	}

	h.mu.Lock()
	h.runs = append(h.runs, report)
	h.mu.Unlock()

	writeJSON(w, http.StatusCreated, toRunReportDTO(report))
}

// PreviewRun computes the run for a date without dispatching.
// GET /api/payruns/preview?date=2025-01-10
func (h *Handler) PreviewRun(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateParam(w, r.URL.Query().Get("date"))
	if !ok {
		return
	}

	report, err := h.Runner.Preview(r.Context(), date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Preview failed", err)
		return
	}

	writeJSON(w, http.StatusOK, toRunReportDTO(report))
}

// ListRuns returns the executed runs, oldest first.
// GET /api/payruns
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	dtos := make([]RunReportDTO, len(h.runs))
	for i, report := range h.runs {
		dtos[i] = toRunReportDTO(report)
	}

	writeJSON(w, http.StatusOK, dtos)
}

// GetSchedule reports payable dates per compensation plan in [from, to].
// GET /api/schedule?from=2025-01-01&to=2025-01-31
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	from, err := payroll.ParsePayDate(r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid from date", err)
		return
	}
	to, err := payroll.ParsePayDate(r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid to date", err)
		return
	}
	if to.Before(from) {
		writeError(w, http.StatusBadRequest, "Range end before start", nil)
		return
	}

	dto := ScheduleDTO{
		From:         from.String(),
		To:           to.String(),
		Salaried:     formatDates(payroll.PayDatesBetween(from, to, payroll.Salaried{})),
		Commissioned: formatDates(payroll.PayDatesBetween(from, to, payroll.Commissioned{})),
		Hourly:       formatDates(payroll.PayDatesBetween(from, to, payroll.Hourly{})),
	}

	writeJSON(w, http.StatusOK, dto)
}

// =============================================================================
// HELPERS
// =============================================================================

// parseDateParam parses an optional date, defaulting to today. Writes the
// error response itself and returns ok=false on bad input.
func parseDateParam(w http.ResponseWriter, raw string) (payroll.PayDate, bool) {
	if raw == "" {
		return payroll.Today(), true
	}
	date, err := payroll.ParsePayDate(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date, want YYYY-MM-DD", err)
		return payroll.PayDate{}, false
	}
	return date, true
}

func toRunReportDTO(report *payroll.RunReport) RunReportDTO {
	payments := make([]PaymentDTO, len(report.Payments))
	for i, p := range report.Payments {
		payments[i] = PaymentDTO{
			EmployeeID: int(p.EmployeeID),
			Name:       p.Name,
			Amount:     p.Amount.String(),
			Method:     string(p.Disposition.Method()),
			Notice:     dispatch.Notice(p),
			Date:       p.Date.String(),
		}
	}

	failures := make([]FailureDTO, len(report.Failures))
	for i, f := range report.Failures {
		failures[i] = FailureDTO{EmployeeID: int(f.EmployeeID), Error: f.Err.Error()}
	}

	return RunReportDTO{
		RunID:      report.RunID,
		Date:       report.Date.String(),
		Payments:   payments,
		Failures:   failures,
		TotalGross: report.TotalGross.String(),
		ElapsedMS:  report.Elapsed.Milliseconds(),
		Clean:      report.Clean(),
	}
}

func formatDates(dates []payroll.PayDate) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
